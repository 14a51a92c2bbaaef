// Package sus converts invocations of well-known external (Single Unix
// Specification) utilities to Nushell syntax. One file per utility; each
// registers itself at init time into a flat registry searched by exact
// name.
//
// Converters never fail. Flag combinations without a Nushell mapping
// degrade to a quoted passthrough or carry an inline `# Note:` comment, so
// unsupported features are visible in the output rather than dropped.
package sus

import (
	"strings"

	"github.com/posix2nu/posix2nu/nu/quote"
)

// ConvertFunc maps a utility's argument vector to Nushell text.
type ConvertFunc func(args []string) string

// Converter is one registered utility translation.
type Converter struct {
	Name  string
	Short string
	Fn    ConvertFunc
}

var all []Converter

func add(name, short string, fn ConvertFunc) {
	all = append(all, Converter{Name: name, Short: short, Fn: fn})
}

// Find returns the converter registered for the utility name.
func Find(name string) (Converter, bool) {
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

// Names returns every registered utility name in registration order.
func Names() []string {
	names := make([]string, 0, len(all))
	for _, c := range all {
		names = append(names, c.Name)
	}
	return names
}
