package sus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSort(t *testing.T) {
	assert.Equal(t, "sort", Sort(nil))
	assert.Equal(t, "open file.txt | lines | sort", Sort([]string{"file.txt"}))
	assert.Equal(t, "open file.txt | lines | sort --reverse", Sort([]string{"-r", "file.txt"}))
	assert.Equal(t,
		"open numbers.txt | lines | where ($it | str trim | is-empty | not) | each { |line| $line | into int } | sort",
		Sort([]string{"-n", "numbers.txt"}))
	assert.Equal(t, "open file.txt | lines | sort | uniq", Sort([]string{"-u", "file.txt"}))
	assert.Equal(t, "open file.txt | lines | sort --ignore-case", Sort([]string{"-f", "file.txt"}))
	assert.Equal(t, "open file1.txt file2.txt | lines | sort", Sort([]string{"file1.txt", "file2.txt"}))
	assert.Equal(t, "open input.txt | lines | sort | save output.txt",
		Sort([]string{"-o", "output.txt", "input.txt"}))
}

func TestSortCombinedFlags(t *testing.T) {
	assert.Equal(t, "open file.txt | lines | sort --reverse | uniq", Sort([]string{"-ru", "file.txt"}))
	assert.Equal(t,
		"open numbers.txt | lines | where ($it | str trim | is-empty | not) | each { |line| $line | into int } | sort --reverse",
		Sort([]string{"-nr", "numbers.txt"}))
}

func TestSortStdin(t *testing.T) {
	assert.Equal(t, "sort", Sort([]string{"-x"}))
	assert.Equal(t, "sort --reverse", Sort([]string{"-r"}))
	assert.Equal(t, "split column ',' | sort-by column2",
		Sort([]string{"--key", "2", "--field-separator", ","}))
}
