// Package builtin converts POSIX shell builtin invocations to Nushell
// syntax. One file per builtin; each registers itself at init time into a
// flat registry searched by exact name.
package builtin

import (
	"strings"

	"github.com/posix2nu/posix2nu/nu/quote"
)

// ConvertFunc maps a builtin's argument vector to Nushell text. Converters
// never fail: anything not understood degrades to a best-effort rendering
// or an inline comment.
type ConvertFunc func(args []string) string

// Converter is one registered builtin translation.
type Converter struct {
	Name  string
	Short string
	Fn    ConvertFunc
}

var all []Converter

func add(name, short string, fn ConvertFunc) {
	all = append(all, Converter{Name: name, Short: short, Fn: fn})
}

// Find returns the converter for the builtin name. `[` is an alias for
// `test`.
func Find(name string) (Converter, bool) {
	if name == "[" {
		name = "test"
	}
	for _, c := range all {
		if c.Name == name {
			return c, true
		}
	}
	return Converter{}, false
}

// Lookup converts the invocation when a converter is registered.
func Lookup(name string, args []string) (string, bool) {
	c, ok := Find(name)
	if !ok {
		return "", false
	}
	// Empty arguments quote to nothing, which can leave stray edge
	// whitespace in a converter's output. Normalize here so every
	// registered name yields clean text for any argument vector.
	return strings.TrimSpace(c.Fn(args)), true
}

// Convert translates the invocation, falling back to a quoted passthrough
// for unregistered names. It never fails.
func Convert(name string, args []string) string {
	if out, ok := Lookup(name, args); ok {
		return out
	}
	if len(args) == 0 {
		return name
	}
	return strings.TrimSpace(name + " " + quote.Words(args))
}

// Names returns every registered builtin name in registration order.
func Names() []string {
	names := make([]string, 0, len(all))
	for _, c := range all {
		names = append(names, c.Name)
	}
	return names
}
