package sus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWc(t *testing.T) {
	assert.Equal(t, "wc", Wc(nil))
	assert.Equal(t, "lines | length", Wc([]string{"-l"}))
	assert.Equal(t, "split words | length", Wc([]string{"-w"}))
	assert.Equal(t, "str length", Wc([]string{"-c"}))
	assert.Equal(t, "str length", Wc([]string{"-m"}))
	assert.Equal(t, "open --raw file.txt | lines | length", Wc([]string{"-l", "file.txt"}))
	assert.Equal(t, "open --raw file.txt | split words | length", Wc([]string{"-w", "file.txt"}))
	assert.Equal(t, "open --raw file.txt | str length", Wc([]string{"-c", "file.txt"}))
	assert.Equal(t, "lines | length", Wc([]string{"-l", "-"}))
}

func TestWcDefaults(t *testing.T) {
	// No flags means lines, words and characters.
	assert.Equal(t,
		"wc # multiple counts: lines | length, split words | length, str length",
		Wc([]string{"-l", "-w", "-m"}))
	assert.Equal(t, "open --raw x | wc # multiple counts", Wc([]string{"x"}))
}

func TestWcLinesAndWords(t *testing.T) {
	assert.Equal(t,
		"lines | {lines: length, words: ($it | str join ' ' | split words | length)}",
		Wc([]string{"-l", "-w"}))
	assert.Equal(t,
		"open --raw f.txt | lines | {lines: length, words: ($it | str join ' ' | split words | length)}",
		Wc([]string{"-l", "-w", "f.txt"}))
}

func TestWcMultipleFiles(t *testing.T) {
	assert.Equal(t,
		"open --raw file1.txt | lines | length; open --raw file2.txt | lines | length",
		Wc([]string{"-l", "file1.txt", "file2.txt"}))
}
