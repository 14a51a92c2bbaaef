package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPwd(t *testing.T) {
	assert.Equal(t, "pwd", Pwd(nil))
	assert.Equal(t, "pwd", Pwd([]string{"-L"}))
	assert.Equal(t, "pwd", Pwd([]string{"--logical"}))
	assert.Equal(t, "pwd | path expand", Pwd([]string{"-P"}))
	assert.Equal(t, "pwd | path expand", Pwd([]string{"--physical"}))

	// Last flag wins.
	assert.Equal(t, "pwd | path expand", Pwd([]string{"-L", "-P"}))
}
