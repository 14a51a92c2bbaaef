package sus

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/posix2nu/posix2nu/nu/quote"
)

func init() {
	add("tail", "output the last part of files", Tail)
}

// Tail converts tail invocations to last pipelines. The +N form turns
// into skip N-1 and -f degrades to a comment.
func Tail(args []string) string {
	if len(args) == 0 {
		return "last 10"
	}

	lineCount := 10
	var files []string
	verbose := false
	follow := false

	for i := 0; i < len(args); {
		arg := args[i]
		switch {
		case arg == "-n" || arg == "--lines":
			if i+1 < len(args) {
				if n, err := strconv.Atoi(args[i+1]); err == nil {
					lineCount = n
				} else {
					lineCount = 10
				}
				i += 2
			} else {
				i++
			}
		case arg == "-q" || arg == "--quiet" || arg == "--silent":
			i++
		case arg == "-v" || arg == "--verbose":
			verbose = true
			i++
		case arg == "-f" || arg == "--follow":
			follow = true
			i++
		case arg == "-c" || arg == "--bytes":
			if i+1 < len(args) {
				byteCount := 10
				if n, err := strconv.Atoi(args[i+1]); err == nil {
					byteCount = n
				}
				return fmt.Sprintf("last %d bytes", byteCount)
			}
			i++
		case isDashDigits(arg):
			if n, err := strconv.Atoi(arg[1:]); err == nil {
				lineCount = n
			} else {
				lineCount = 10
			}
			i++
		case strings.HasPrefix(arg, "+"):
			startLine := 1
			if n, err := strconv.Atoi(arg[1:]); err == nil {
				startLine = n
			}
			return fmt.Sprintf("skip %d", startLine-1)
		case strings.HasPrefix(arg, "-"):
			// Unknown flag, skip.
			i++
		default:
			files = append(files, arg)
			i++
		}
	}

	const followNote = " # follow mode not fully supported"

	switch len(files) {
	case 0:
		if follow {
			return fmt.Sprintf("last %d%s", lineCount, followNote)
		}
		return fmt.Sprintf("last %d", lineCount)
	case 1:
		file := files[0]
		if file == "-" {
			if follow {
				return fmt.Sprintf("last %d%s", lineCount, followNote)
			}
			return fmt.Sprintf("last %d", lineCount)
		}
		if follow {
			return fmt.Sprintf("open %s | lines | last %d%s", quote.Word(file), lineCount, followNote)
		}
		return fmt.Sprintf("open %s | lines | last %d", quote.Word(file), lineCount)
	}

	var sb strings.Builder
	for i, file := range files {
		if i > 0 {
			sb.WriteString("; ")
		}
		if verbose || len(files) > 1 {
			fmt.Fprintf(&sb, "print \"==> %s <==\"; ", quote.Word(file))
		}
		if file == "-" {
			fmt.Fprintf(&sb, "last %d", lineCount)
		} else {
			fmt.Fprintf(&sb, "open %s | lines | last %d", quote.Word(file), lineCount)
		}
	}
	if follow {
		sb.WriteString(followNote)
	}
	return sb.String()
}
