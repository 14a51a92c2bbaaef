package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArg(t *testing.T) {
	cases := map[string]struct {
		in   string
		want string
	}{
		"plain":          {"hello", "hello"},
		"empty":          {"", ""},
		"path":           {"/tmp/file.txt", "/tmp/file.txt"},
		"space":          {"hello world", `"hello world"`},
		"dollar":         {"$HOME", `"$HOME"`},
		"single quote":   {"it's", `"it's"`},
		"double quote":   {`say "hi"`, `"say \"hi\""`},
		"whitespace arg": {"   ", `"   "`},
		"glob unquoted":  {"*.txt", "*.txt"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			assert.Equal(t, tc.want, Arg(tc.in))
		})
	}
}

func TestWord(t *testing.T) {
	cases := map[string]struct {
		in   string
		want string
	}{
		"plain":        {"hello", "hello"},
		"empty":        {"", ""},
		"space":        {"hello world", `"hello world"`},
		"dollar":       {"$HOME", `"$HOME"`},
		"star":         {"*.txt", `"*.txt"`},
		"question":     {"file?.go", `"file?.go"`},
		"single quote": {"it's", "it's"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			assert.Equal(t, tc.want, Word(tc.in))
		})
	}
}

// Requoting text that carries no hazard characters is the identity, and a
// word already wrapped in double quotes passes through Word untouched, so
// passing the same literal through the table rule twice never
// double-escapes.
func TestWordRequote(t *testing.T) {
	for _, s := range []string{"hello", "/tmp/file.txt", `"hello"`, "-n"} {
		assert.Equal(t, s, Word(Word(s)))
	}

	once := Word("a b")
	assert.Equal(t, `"a b"`, once)
	assert.Equal(t, Arg("plain"), Arg(Arg("plain")))
}

func TestWords(t *testing.T) {
	assert.Equal(t, "", Words(nil))
	assert.Equal(t, "a b c", Words([]string{"a", "b", "c"}))
	assert.Equal(t, `a "b c" "*.go"`, Words([]string{"a", "b c", "*.go"}))
}
