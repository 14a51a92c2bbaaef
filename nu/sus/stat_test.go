package sus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStat(t *testing.T) {
	assert.Equal(t, "stat", Stat(nil))
	assert.Equal(t, "file.txt | stat", Stat([]string{"file.txt"}))
	assert.Equal(t,
		"[file1.txt file2.txt] | each { |file| $file | stat } | to json -r",
		Stat([]string{"file1.txt", "file2.txt"}))
	assert.Equal(t, `"file with spaces.txt" | stat`, Stat([]string{"file with spaces.txt"}))
	assert.Equal(t, "file.txt | stat | select name size mode modified", Stat([]string{"-t", "file.txt"}))
	assert.Equal(t, "link.txt | stat", Stat([]string{"-L", "link.txt"}))
	assert.Equal(t, "/ | stat", Stat([]string{"-f", "/"}))
}

func TestStatFormats(t *testing.T) {
	assert.Equal(t, "file.txt | stat | get name", Stat([]string{"-c", "%n", "file.txt"}))
	assert.Equal(t, "file.txt | stat | get size", Stat([]string{"-c", "%s", "file.txt"}))
	assert.Equal(t, "file.txt | stat | get mode", Stat([]string{"-c", "%f", "file.txt"}))
	assert.Equal(t, "file.txt | stat", Stat([]string{"-c", "%Q", "file.txt"}))
}

func TestStatZeroTerminated(t *testing.T) {
	assert.Equal(t,
		"[file1.txt file2.txt] | each { |file| $file | stat } | str join (char null)",
		Stat([]string{"-z", "file1.txt", "file2.txt"}))
}
