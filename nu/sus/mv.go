package sus

import (
	"fmt"
	"strings"

	"github.com/posix2nu/posix2nu/nu/quote"
)

func init() {
	add("mv", "move or rename files", Mv)
}

// Mv converts mv invocations, normalizing flags the way Cp does.
func Mv(args []string) string {
	if len(args) == 0 {
		return "mv"
	}

	var force, noClobber, update, verbose bool
	var files []string

	for _, arg := range args {
		switch {
		case arg == "-f" || arg == "--force":
			force = true
		case arg == "-n" || arg == "--no-clobber":
			noClobber = true
		case arg == "-u" || arg == "--update":
			update = true
		case arg == "-v" || arg == "--verbose":
			verbose = true
		case arg == "-i" || arg == "--interactive":
		case strings.HasPrefix(arg, "-"):
			// Unknown flag, skip.
		default:
			files = append(files, arg)
		}
	}

	if len(files) < 2 {
		return fmt.Sprintf("mv %s", quote.Words(args))
	}

	var sb strings.Builder
	sb.WriteString("mv")

	if force {
		sb.WriteString(" --force")
	}
	if noClobber {
		sb.WriteString(" --no-clobber")
	}
	if update {
		sb.WriteString(" --update")
	}
	if verbose {
		sb.WriteString(" --verbose")
	}

	for _, file := range files {
		fmt.Fprintf(&sb, " %s", quote.Word(file))
	}

	return sb.String()
}
