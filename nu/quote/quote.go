// Package quote holds the argument quoting rules shared by the conversion
// dispatcher and the command tables. Generated Nushell text embeds literal
// arguments in two positions with slightly different hazard sets, so there
// are two rules rather than one.
package quote

import "strings"

// Arg quotes an argument for embedding in a generated statement. It wraps
// the argument in double quotes, escaping any internal double quote, when
// the argument contains a space, double quote, single quote, or dollar sign.
// Anything else is returned unchanged.
func Arg(arg string) string {
	if strings.ContainsAny(arg, " \"'$") {
		return `"` + strings.ReplaceAll(arg, `"`, `\"`) + `"`
	}
	return arg
}

// Word quotes an argument in command-table output. Glob characters carry
// meaning in Nushell argument position, so this rule quotes on `*` and `?`
// in addition to spaces and dollar signs.
func Word(arg string) string {
	if strings.ContainsAny(arg, " $*?") {
		return `"` + strings.ReplaceAll(arg, `"`, `\"`) + `"`
	}
	return arg
}

// Words formats an argument list, quoting each with Word and joining with
// single spaces.
func Words(args []string) string {
	quoted := make([]string, 0, len(args))
	for _, arg := range args {
		quoted = append(quoted, Word(arg))
	}
	return strings.Join(quoted, " ")
}
