package sus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChown(t *testing.T) {
	assert.Equal(t, "chown", Chown(nil))
	assert.Equal(t, "chown user file.txt # Note: uses external chown command",
		Chown([]string{"user", "file.txt"}))
	assert.Equal(t, "chown user:group file.txt # Note: uses external chown command",
		Chown([]string{"user:group", "file.txt"}))
	assert.Equal(t,
		"ls directory | each { |file| chown user $file.name } # Note: uses external chown command",
		Chown([]string{"-R", "user", "directory"}))
	assert.Equal(t, "chown user file.txt --verbose # Note: uses external chown command",
		Chown([]string{"-v", "user", "file.txt"}))
	assert.Equal(t, "chown user:group file1.txt file2.txt # Note: uses external chown command",
		Chown([]string{"user:group", "file1.txt", "file2.txt"}))
	assert.Equal(t, "chown --reference=ref.txt target.txt # Note: uses external chown command",
		Chown([]string{"--reference", "ref.txt", "target.txt"}))
	assert.Equal(t, "chown user file.txt --changes # Note: uses external chown command",
		Chown([]string{"-c", "user", "file.txt"}))
}
