package sus

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/posix2nu/posix2nu/nu/quote"
)

func init() {
	add("head", "output the first part of files", Head)
}

// Head converts head invocations to first pipelines.
func Head(args []string) string {
	if len(args) == 0 {
		return "first 10"
	}

	lineCount := 10
	var files []string
	verbose := false

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
		case arg == "-c" || arg == "--bytes":
			if i+1 < len(args) {
				byteCount := 10
				if n, err := strconv.Atoi(args[i+1]); err == nil {
					byteCount = n
				}
				return fmt.Sprintf("first %d bytes", byteCount)
			}
			i++
		case isDashDigits(arg):
			if n, err := strconv.Atoi(arg[1:]); err == nil {
				lineCount = n
			} else {
				lineCount = 10
			}
			i++
		case strings.HasPrefix(arg, "-"):
			// Unknown flag, skip.
			i++
		default:
			files = append(files, arg)
			i++
		}
	}

	switch len(files) {
	case 0:
		return fmt.Sprintf("first %d", lineCount)
	case 1:
		if files[0] == "-" {
			return fmt.Sprintf("first %d", lineCount)
		}
		return fmt.Sprintf("open %s | lines | first %d", quote.Word(files[0]), lineCount)
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
			fmt.Fprintf(&sb, "first %d", lineCount)
		} else {
			fmt.Fprintf(&sb, "open %s | lines | first %d", quote.Word(file), lineCount)
		}
	}
	return sb.String()
}

// isDashDigits reports whether arg looks like -5, the historical line
// count shorthand.
func isDashDigits(arg string) bool {
	if len(arg) < 2 || arg[0] != '-' {
		return false
	}
	for _, c := range arg[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
