package sus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBasename(t *testing.T) {
	assert.Equal(t, "basename", Basename(nil))
	assert.Equal(t, "/path/to/file.txt | path basename", Basename([]string{"/path/to/file.txt"}))
	assert.Equal(t, `/path/to/file.txt | path basename | str replace --regex .txt$ ""`,
		Basename([]string{"/path/to/file.txt", ".txt"}))
	assert.Equal(t, `/path/to/file.txt | path basename | str replace --regex .txt$ ""`,
		Basename([]string{"-s", ".txt", "/path/to/file.txt"}))
	assert.Equal(t, `"/path/to/file with spaces.txt" | path basename`,
		Basename([]string{"/path/to/file with spaces.txt"}))
}

func TestBasenameMultiple(t *testing.T) {
	assert.Equal(t,
		"[/path/to/file1.txt /path/to/file2.txt] | each { |path| $path | path basename } | str join (char newline)",
		Basename([]string{"-a", "/path/to/file1.txt", "/path/to/file2.txt"}))
	assert.Equal(t,
		`[/path/to/file1.txt /path/to/file2.txt] | each { |path| $path | path basename | str replace --regex .txt$ "" } | str join (char newline)`,
		Basename([]string{"-a", "-s", ".txt", "/path/to/file1.txt", "/path/to/file2.txt"}))
	assert.Equal(t,
		"[/path/to/file1 /path/to/file2] | each { |path| $path | path basename } | str join (char null)",
		Basename([]string{"-z", "-a", "/path/to/file1", "/path/to/file2"}))
}
