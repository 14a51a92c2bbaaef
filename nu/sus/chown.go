package sus

import (
	"fmt"
	"strings"

	"github.com/posix2nu/posix2nu/nu/quote"
)

func init() {
	add("chown", "change file owner and group", Chown)
}

// Chown converts chown invocations, keeping the external chown the
// same way Chmod does.
func Chown(args []string) string {
	if len(args) == 0 {
		return "chown"
	}

	var recursive, verbose, quiet, changes bool
	var referenceFile, ownerGroup string
	var files []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-R" || arg == "--recursive":
			recursive = true
		case arg == "-v" || arg == "--verbose":
			verbose = true
		case arg == "-f" || arg == "--silent" || arg == "--quiet":
			quiet = true
		case arg == "-c" || arg == "--changes":
			changes = true
		case arg == "--reference":
			if i+1 < len(args) {
				referenceFile = args[i+1]
				i++
			}
		case arg == "--from":
			if i+1 < len(args) {
				i++
			}
		case arg == "-h" || arg == "--no-dereference" || arg == "--dereference":
			// Symlink handling does not change the rendering.
		case strings.HasPrefix(arg, "-"):
			// Unknown flag, skip.
		default:
			if ownerGroup == "" && referenceFile == "" {
				ownerGroup = arg
			} else {
				files = append(files, arg)
			}
		}
	}

	if len(files) == 0 && referenceFile == "" {
		return "chown"
	}

	var sb strings.Builder

	if recursive {
		sb.WriteString("ls ")
		for _, file := range files {
			fmt.Fprintf(&sb, "%s ", quote.Word(file))
		}
		sb.WriteString("| each { |file| ")
		if referenceFile != "" {
			fmt.Fprintf(&sb, "chown --reference=%s $file.name", quote.Word(referenceFile))
		} else {
			fmt.Fprintf(&sb, "chown %s $file.name", quote.Word(ownerGroup))
		}
		sb.WriteString(" }")
	} else {
		if referenceFile != "" {
			fmt.Fprintf(&sb, "chown --reference=%s", quote.Word(referenceFile))
		} else {
			fmt.Fprintf(&sb, "chown %s", quote.Word(ownerGroup))
		}
		for _, file := range files {
			fmt.Fprintf(&sb, " %s", quote.Word(file))
		}
	}

	if verbose {
		sb.WriteString(" --verbose")
	}
	if quiet {
		sb.WriteString(" --quiet")
	}
	if changes {
		sb.WriteString(" --changes")
	}

	sb.WriteString(" # Note: uses external chown command")
	return sb.String()
}
