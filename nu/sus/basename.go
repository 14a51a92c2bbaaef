package sus

import (
	"fmt"
	"strings"

	"github.com/posix2nu/posix2nu/nu/quote"
)

func init() {
	add("basename", "strip directory and suffix from paths", Basename)
}

// Basename converts basename invocations. The traditional two
// argument form treats the second argument as a suffix to strip.
func Basename(args []string) string {
	if len(args) == 0 {
		return "basename"
	}

	var paths []string
	var suffix string
	multiple := false
	zeroTerminated := false

	for i := 0; i < len(args); {
		arg := args[i]
		switch {
		case arg == "-s" || arg == "--suffix":
			if i+1 < len(args) {
				suffix = args[i+1]
				i += 2
			} else {
				i++
			}
		case arg == "-a" || arg == "--multiple":
			multiple = true
			i++
		case arg == "-z" || arg == "--zero":
			zeroTerminated = true
			i++
		case arg == "--help":
			return "basename --help"
		case arg == "--version":
			return "basename --version"
		case !strings.HasPrefix(arg, "-"):
			paths = append(paths, arg)
			i++
		default:
			// Unknown flag, skip.
			i++
		}
	}

	if len(paths) == 0 {
		return "basename"
	}

	stripSuffix := func(result string) string {
		if suffix == "" {
			return result
		}
		return result + fmt.Sprintf(` | str replace --regex %s$ ""`, quote.Word(suffix))
	}

	if len(paths) == 1 {
		result := stripSuffix(fmt.Sprintf("%s | path basename", quote.Word(paths[0])))
		if multiple && zeroTerminated {
			result += " | str join (char null)"
		}
		return result
	}

	result := stripSuffix(fmt.Sprintf("[%s] | each { |path| $path | path basename", quote.Words(paths)))
	result += " }"

	switch {
	case zeroTerminated:
		result += " | str join (char null)"
	case multiple:
		result += " | str join (char newline)"
	case len(paths) == 2:
		// basename PATH SUFFIX
		result = fmt.Sprintf(`%s | path basename | str replace --regex %s$ ""`,
			quote.Word(paths[0]), quote.Word(paths[1]))
	}

	return result
}
