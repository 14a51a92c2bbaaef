package nu

import (
	"path/filepath"
	"testing"

	"github.com/posix2nu/posix2nu/syntax"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// TestConvertGolden runs whole scripts through parse and convert and
// compares against fixtures. Regenerate with `go test -update`.
func TestConvertGolden(t *testing.T) {
	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
		goldie.WithTestNameForDir(true),
	)

	cases := map[string]string{
		"hello":       "#!/bin/sh\n# greet the user\nNAME=world\necho hello $NAME\n",
		"pipeline":    "ls -l | grep foo | wc -l\n",
		"conditional": "if true then echo yes fi\n",
		"loop":        "for x in a b c do echo $x done\n",
		"andor":       "true && echo ok\n",
		"utilities":   "cat notes.txt\nhead -n 5 log.txt\nsort -r names.txt\nbasename /usr/local/bin/tool\n",
	}

	for tn, script := range cases {
		t.Run(tn, func(t *testing.T) {
			parsed, err := syntax.Parse(script)
			require.NoError(t, err)

			out, err := Convert(parsed)
			require.NoError(t, err)

			g.Assert(t, tn, []byte(out))
		})
	}
}

// TestConvertNeverPanics feeds awkward inputs end to end. Conversion is
// total: whatever the parser produces must render.
func TestConvertNeverPanics(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"|",
		"| |",
		"&&",
		"a &&",
		"&& b",
		"if then fi",
		"for do done",
		"while do done",
		"case in esac",
		"{ }",
		"( )",
		"$(( ))",
		"x=",
		"=y",
		"echo \x00\xff",
		"\x1b[31mred\x1b[0m",
		"ls | | grep x",
		"test -f",
		"[ ]",
	}

	for _, input := range inputs {
		parsed, err := syntax.Parse(input)
		require.NoError(t, err, "input %q", input)
		_, err = Convert(parsed)
		require.NoError(t, err, "input %q", input)
	}
}
