package sus

import (
	"fmt"
	"strings"

	"github.com/posix2nu/posix2nu/nu/quote"
)

func init() {
	add("cp", "copy files and directories", Cp)
}

// Cp converts cp invocations. The native cp takes the same shape, so
// this mostly normalizes flags.
func Cp(args []string) string {
	if len(args) == 0 {
		return "cp"
	}

	var recursive, force, noClobber, update, verbose bool
	var files []string

	for _, arg := range args {
		switch {
		case arg == "-r" || arg == "-R" || arg == "--recursive":
			recursive = true
		case arg == "-p" || arg == "--preserve":
			// Attribute preservation has no flag on the other side.
		case arg == "-f" || arg == "--force":
			force = true
		case arg == "-n" || arg == "--no-clobber":
			noClobber = true
		case arg == "-u" || arg == "--update":
			update = true
		case arg == "-v" || arg == "--verbose":
			verbose = true
		case arg == "-i" || arg == "--interactive":
		case arg == "-l" || arg == "--link":
		case arg == "-s" || arg == "--symbolic-link":
		case strings.HasPrefix(arg, "-"):
			// Unknown flag, skip.
		default:
			files = append(files, arg)
		}
	}

	if len(files) < 2 {
		return fmt.Sprintf("cp %s", quote.Words(args))
	}

	var sb strings.Builder
	sb.WriteString("cp")

	if recursive {
		sb.WriteString(" -r")
	}
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
