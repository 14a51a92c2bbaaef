package sus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAwk(t *testing.T) {
	assert.Equal(t, "^awk", Awk(nil))
	assert.Equal(t, `^awk "{ print $1 }"`, Awk([]string{"{ print $1 }"}))
	assert.Equal(t, `^awk "{ print $1 }" file.txt`, Awk([]string{"{ print $1 }", "file.txt"}))
	assert.Equal(t, `^awk -F : "{ print $1 }" /etc/passwd`,
		Awk([]string{"-F", ":", "{ print $1 }", "/etc/passwd"}))
	assert.Equal(t, `^awk -v var=value "{ print var }"`,
		Awk([]string{"-v", "var=value", "{ print var }"}))
	assert.Equal(t, "^awk -f script.awk", Awk([]string{"-f", "script.awk"}))
	assert.Equal(t, `^awk "/pattern/ { print $0 }"`, Awk([]string{"/pattern/ { print $0 }"}))
	assert.Equal(t, `^awk "BEGIN { FS=\":\" } /root/ { print $1 }" /etc/passwd`,
		Awk([]string{`BEGIN { FS=":" } /root/ { print $1 }`, "/etc/passwd"}))
}

func TestWhich(t *testing.T) {
	assert.Equal(t, "which", Which(nil))
	assert.Equal(t, "which ls", Which([]string{"ls"}))
	assert.Equal(t, "which -a python", Which([]string{"-a", "python"}))
	assert.Equal(t, "which nonexistent | ignore", Which([]string{"-s", "nonexistent"}))
	assert.Equal(t, "which ls cat grep", Which([]string{"ls", "cat", "grep"}))
	assert.Equal(t, `which "my command"`, Which([]string{"my command"}))
	assert.Equal(t, "[which -a python, which -a node] | each { |cmd| ^$cmd }",
		Which([]string{"-a", "python", "node"}))
}

func TestWhoami(t *testing.T) {
	assert.Equal(t, "$env.USER? | default (whoami)", Whoami(nil))
	assert.Equal(t, "whoami --help", Whoami([]string{"--help"}))
	assert.Equal(t, "whoami --version", Whoami([]string{"--version"}))
	assert.Equal(t, "whoami -x", Whoami([]string{"-x"}))
	assert.Equal(t, "whoami --help --version", Whoami([]string{"--help", "--version"}))
}

func TestPs(t *testing.T) {
	assert.Equal(t, "ps", Ps(nil))
	assert.Equal(t, "ps", Ps([]string{"-a"}))
	assert.Equal(t, "ps | where user == root # Note: user format not fully supported",
		Ps([]string{"-u", "root"}))
	assert.Equal(t, "ps | where pid == 1234", Ps([]string{"-p", "1234"}))
	assert.Equal(t, "ps # Note: full format not fully supported", Ps([]string{"-f"}))
	assert.Equal(t, "ps # Note: user format not fully supported", Ps([]string{"-aux"}))
	assert.Equal(t, "ps --help", Ps([]string{"--help"}))
	assert.Equal(t, "ps | where user == admin # Note: full format, user format not fully supported",
		Ps([]string{"-a", "-f", "-u", "admin"}))
	assert.Equal(t, "ps # Note: custom fields: pid,comm,user not fully supported",
		Ps([]string{"-o", "pid,comm,user"}))
	assert.Equal(t, "ps # Note: tree format not fully supported", Ps([]string{"-T"}))
}
