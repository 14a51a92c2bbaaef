package sus

import (
	"fmt"
	"strings"

	"github.com/posix2nu/posix2nu/nu/quote"
)

func init() {
	add("realpath", "resolve absolute path names", Realpath)
}

// Realpath converts realpath invocations to path expand. Symlink
// resolution modes collapse to the same expansion.
func Realpath(args []string) string {
	if len(args) == 0 {
		return "realpath"
	}

	var paths []string
	var relativeTo string
	zeroTerminated := false

	for i := 0; i < len(args); {
		arg := args[i]
		switch {
		case arg == "-z" || arg == "--zero":
			zeroTerminated = true
			i++
		case arg == "-L" || arg == "--logical" || arg == "-P" || arg == "--physical":
			i++
		case arg == "-e" || arg == "--canonicalize-existing" || arg == "-m" || arg == "--canonicalize-missing":
			i++
		case arg == "--relative-to":
			if i+1 < len(args) {
				relativeTo = args[i+1]
				i += 2
			} else {
				i++
			}
		case arg == "--relative-base":
			if i+1 < len(args) {
				i += 2
			} else {
				i++
			}
		case arg == "--help":
			return "realpath --help"
		case arg == "--version":
			return "realpath --version"
		case !strings.HasPrefix(arg, "-"):
			paths = append(paths, arg)
			i++
		default:
			// Unknown flag, skip.
			i++
		}
	}

	if len(paths) == 0 {
		return "realpath"
	}

	if len(paths) == 1 {
		result := fmt.Sprintf("%s | path expand", quote.Word(paths[0]))
		if relativeTo != "" {
			result += fmt.Sprintf(" | path relative-to %s", quote.Word(relativeTo))
		}
		return result
	}

	result := fmt.Sprintf("[%s] | each { |path| $path | path expand", quote.Words(paths))
	if relativeTo != "" {
		result += fmt.Sprintf(" | path relative-to %s", quote.Word(relativeTo))
	}
	result += " }"

	if zeroTerminated {
		result += " | str join (char null)"
	} else {
		result += " | str join (char newline)"
	}
	return result
}
