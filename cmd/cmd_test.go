package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the CLI against an in-memory filesystem and returns
// combined output.
func runCommand(t *testing.T, fsys afero.Fs, stdin string, args ...string) (string, error) {
	t.Helper()

	prevFs := appFs
	appFs = fsys
	t.Cleanup(func() { appFs = prevFs })

	// Flag variables persist across Execute calls.
	convertPretty = false
	convertFile = ""
	convertOutput = ""
	reverseFile = ""
	parseFile = ""
	parseFormat = "json"
	cfgPath = "."

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestConvertCommand(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "script.sh", []byte("echo hello\n"), 0644))

	out, err := runCommand(t, fsys, "", "convert", "script.sh")
	require.NoError(t, err)
	assert.Equal(t, "print hello\n", out)
}

func TestConvertCommandStdin(t *testing.T) {
	out, err := runCommand(t, afero.NewMemMapFs(), "ls -l | grep foo", "convert")
	require.NoError(t, err)
	assert.Equal(t, "ls --long | lines | where $it =~ foo\n", out)
}

func TestConvertCommandPretty(t *testing.T) {
	out, err := runCommand(t, afero.NewMemMapFs(), "if true then echo yes fi", "convert", "-p")
	require.NoError(t, err)
	assert.Equal(t, "if true {\n  print yes\n}\n\n", out)
}

func TestConvertCommandOutputFile(t *testing.T) {
	fsys := afero.NewMemMapFs()

	out, err := runCommand(t, fsys, "echo hi", "convert", "-o", "out.nu")
	require.NoError(t, err)
	assert.Empty(t, out)

	written, err := afero.ReadFile(fsys, "out.nu")
	require.NoError(t, err)
	assert.Equal(t, "print hi", string(written))
}

func TestConvertCommandMissingFile(t *testing.T) {
	_, err := runCommand(t, afero.NewMemMapFs(), "", "convert", "nope.sh")
	assert.Error(t, err)
}

func TestReverseCommand(t *testing.T) {
	out, err := runCommand(t, afero.NewMemMapFs(), "print hello", "reverse")
	require.NoError(t, err)
	assert.Equal(t, "echo hello\n", out)
}

func TestParseCommand(t *testing.T) {
	out, err := runCommand(t, afero.NewMemMapFs(), "echo hi", "parse")
	require.NoError(t, err)
	assert.Contains(t, out, `"type": "simple"`)
	assert.Contains(t, out, `"name": "echo"`)
}

func TestParseCommandYAML(t *testing.T) {
	out, err := runCommand(t, afero.NewMemMapFs(), "echo hi", "parse", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "name: echo")
	assert.Contains(t, out, "type: simple")
}

func TestParseCommandBadFormat(t *testing.T) {
	_, err := runCommand(t, afero.NewMemMapFs(), "echo hi", "parse", "--format", "toml")
	assert.Error(t, err)
}

func TestConvertersCommand(t *testing.T) {
	out, err := runCommand(t, afero.NewMemMapFs(), "", "converters")
	require.NoError(t, err)
	assert.Contains(t, out, "cd")
	assert.Contains(t, out, "sed")
	assert.Contains(t, out, "builtin")
	assert.Contains(t, out, "utility")
}

func TestInitCommand(t *testing.T) {
	fsys := afero.NewMemMapFs()

	_, err := runCommand(t, fsys, "", "init")
	require.NoError(t, err)

	exists, err := afero.Exists(fsys, "config.yaml")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestConvertCommandUsesConfig(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "config.yaml",
		[]byte("pretty: true\ncolor: never\nstrict_parser: false\n"), 0644))

	out, err := runCommand(t, fsys, "if true then echo yes fi", "convert")
	require.NoError(t, err)
	assert.Equal(t, "if true {\n  print yes\n}\n\n", out)
}
