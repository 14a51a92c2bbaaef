package sus

import (
	"fmt"
	"strings"

	"github.com/posix2nu/posix2nu/nu/quote"
)

func init() {
	add("dirname", "strip the last path component", Dirname)
}

// Dirname converts dirname invocations.
func Dirname(args []string) string {
	if len(args) == 0 {
		return "dirname"
	}

	var paths []string
	zeroTerminated := false

	for i := 0; i < len(args); {
		arg := args[i]
		switch {
		case arg == "-z" || arg == "--zero":
			zeroTerminated = true
			i++
		case arg == "--help":
			return "dirname --help"
		case arg == "--version":
			return "dirname --version"
		case !strings.HasPrefix(arg, "-"):
			paths = append(paths, arg)
			i++
		default:
			// Unknown flag, skip.
			i++
		}
	}

	if len(paths) == 0 {
		return "dirname"
	}

	if len(paths) == 1 {
		return fmt.Sprintf("%s | path dirname", quote.Word(paths[0]))
	}

	result := fmt.Sprintf("[%s] | each { |path| $path | path dirname }", quote.Words(paths))
	if zeroTerminated {
		result += " | str join (char null)"
	} else {
		result += " | str join (char newline)"
	}
	return result
}
