package sus

import (
	"fmt"
	"strings"

	"github.com/posix2nu/posix2nu/nu/quote"
)

func init() {
	add("chmod", "change file mode bits", Chmod)
}

// Chmod converts chmod invocations. There is no native permission
// command so the external chmod stays, wrapped in an each block for
// the recursive form.
func Chmod(args []string) string {
	if len(args) == 0 {
		return "chmod"
	}

	var recursive, verbose, quiet bool
	var referenceFile, mode string
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
			verbose = true
		case arg == "--reference":
			if i+1 < len(args) {
				referenceFile = args[i+1]
				i++
			}
		case strings.HasPrefix(arg, "-"):
			// Unknown flag, skip.
		default:
			if mode == "" && referenceFile == "" {
				mode = arg
			} else {
				files = append(files, arg)
			}
		}
	}

	if len(files) == 0 && referenceFile == "" {
		return "chmod"
	}

	var sb strings.Builder

	if recursive {
		sb.WriteString("ls ")
		for _, file := range files {
			fmt.Fprintf(&sb, "%s ", quote.Word(file))
		}
		sb.WriteString("| each { |file| ")
		if referenceFile != "" {
			fmt.Fprintf(&sb, "chmod --reference=%s $file.name", quote.Word(referenceFile))
		} else {
			fmt.Fprintf(&sb, "chmod %s $file.name", quote.Word(mode))
		}
		sb.WriteString(" }")
	} else {
		if referenceFile != "" {
			fmt.Fprintf(&sb, "chmod --reference=%s", quote.Word(referenceFile))
		} else {
			fmt.Fprintf(&sb, "chmod %s", quote.Word(mode))
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

	sb.WriteString(" # Note: uses external chmod command")
	return sb.String()
}
