package builtin

import (
	"strings"

	"github.com/posix2nu/posix2nu/nu/quote"
)

func init() {
	add("cd", "change the working directory", Cd)
}

// Cd converts cd invocations. Nushell's cd with no argument already goes
// home, so bare `cd` and `cd ~` collapse to `cd`.
func Cd(args []string) string {
	if len(args) == 0 {
		return "cd"
	}

	path := ""
	for _, arg := range args {
		switch {
		case arg == "-L" || arg == "-P":
			// Logical/physical resolution is not modeled.
		case arg == "-":
			return "cd -"
		case strings.HasPrefix(arg, "-"):
			// Unknown flag, skip.
		default:
			path = arg
		}
	}

	if path == "" || path == "~" {
		return "cd"
	}
	return "cd " + quote.Word(path)
}
