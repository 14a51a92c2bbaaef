package sus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCat(t *testing.T) {
	assert.Equal(t, "input", Cat(nil))
	assert.Equal(t, "input", Cat([]string{"-"}))
	assert.Equal(t, "open --raw file.txt", Cat([]string{"file.txt"}))
	assert.Equal(t, `open --raw "my file.txt"`, Cat([]string{"my file.txt"}))
	assert.Equal(t,
		"[(open --raw a.txt), (open --raw b.txt)] | str join",
		Cat([]string{"a.txt", "b.txt"}))
	assert.Equal(t,
		"[(open --raw a.txt), input] | str join",
		Cat([]string{"a.txt", "-"}))
}

func TestCatDisplayFlags(t *testing.T) {
	assert.Equal(t,
		`open --raw f | lines | enumerate | each { |x| $"($x.index + 1)  ($x.item)" } | str join (char nl)`,
		Cat([]string{"-n", "f"}))
	assert.Equal(t,
		`open --raw f | lines | enumerate | each { |x| if ($x.item | str trim | str length) > 0 { $"($x.index + 1)  ($x.item)" } else { $x.item } } | str join (char nl)`,
		Cat([]string{"-b", "f"}))
	assert.Equal(t,
		"open --raw f | str replace --all (char nl) '$'",
		Cat([]string{"-E", "f"}))
	assert.Equal(t,
		"open --raw f | str replace --all (char tab) '^I'",
		Cat([]string{"-T", "f"}))
	assert.Equal(t,
		"open --raw f | lines | where ($it | str trim | str length) > 0 | str join (char nl)",
		Cat([]string{"-s", "f"}))

	// -u is a POSIX no-op.
	assert.Equal(t, "open --raw f", Cat([]string{"-u", "f"}))
}
