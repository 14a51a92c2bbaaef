package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExit(t *testing.T) {
	assert.Equal(t, "exit", Exit(nil))
	assert.Equal(t, "exit 0", Exit([]string{"0"}))
	assert.Equal(t, "exit 42", Exit([]string{"42"}))
	assert.Equal(t, "exit 1", Exit([]string{"invalid"}))
	assert.Equal(t, "exit 2", Exit([]string{"2", "extra"}))
	assert.Equal(t, "exit 1", Exit([]string{"bad", "3"}))
}

func TestTrueFalse(t *testing.T) {
	assert.Equal(t, "true", True(nil))
	assert.Equal(t, "true", True([]string{"ignored", "--help"}))
	assert.Equal(t, "false", False(nil))
	assert.Equal(t, "false", False([]string{"ignored"}))
}
