package nu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverse(t *testing.T) {
	assert.Equal(t, "echo hello", Reverse("print hello"))
	assert.Equal(t, "ls | grep $it | grep test", Reverse("ls | where $it =~ test"))
	assert.Equal(t, "echo one\necho two", Reverse("print one\nprint two"))

	// Untranslated text passes through unchanged.
	assert.Equal(t, "open file.txt | lines", Reverse("open file.txt | lines"))
}
