package sus

import (
	"fmt"
	"strings"

	"github.com/posix2nu/posix2nu/nu/quote"
)

func init() {
	add("rm", "remove files or directories", Rm)
}

// Rm converts rm invocations.
func Rm(args []string) string {
	if len(args) == 0 {
		return "rm"
	}

	var recursive, force, interactive, verbose, trash bool
	var files []string

	for _, arg := range args {
		switch {
		case arg == "-r" || arg == "-R" || arg == "--recursive":
			recursive = true
		case arg == "-f" || arg == "--force":
			force = true
		case arg == "-i" || arg == "--interactive":
			interactive = true
		case arg == "-v" || arg == "--verbose":
			verbose = true
		case arg == "-t" || arg == "--trash":
			trash = true
		case arg == "-d" || arg == "--dir":
			// Empty directory removal needs no extra flag.
		case arg == "--preserve-root" || arg == "--no-preserve-root":
		case strings.HasPrefix(arg, "-"):
			// Unknown flag, skip.
		default:
			files = append(files, arg)
		}
	}

	if len(files) == 0 {
		return "rm"
	}

	var sb strings.Builder
	sb.WriteString("rm")

	if recursive {
		sb.WriteString(" -r")
	}
	if force {
		sb.WriteString(" --force")
	}
	if interactive {
		sb.WriteString(" --interactive")
	}
	if verbose {
		sb.WriteString(" --verbose")
	}
	if trash {
		sb.WriteString(" --trash")
	}

	for _, file := range files {
		fmt.Fprintf(&sb, " %s", quote.Word(file))
	}

	return sb.String()
}
