package nu

import "strings"

// Reverse turns Nushell text back into an approximation of POSIX shell.
// Experimental: it is three literal substring replacements, nothing more,
// and makes no attempt at a real reverse translation.
func Reverse(script string) string {
	out := strings.ReplaceAll(script, "print ", "echo ")
	out = strings.ReplaceAll(out, " | where ", " | grep ")
	out = strings.ReplaceAll(out, " =~ ", " | grep ")
	return out
}
