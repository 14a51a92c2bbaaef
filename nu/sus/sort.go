package sus

import (
	"fmt"
	"strings"

	"github.com/posix2nu/posix2nu/nu/quote"
)

func init() {
	add("sort", "sort lines of text", Sort)
}

// Sort converts sort invocations. Combined short flags like -ru are
// unpacked letter by letter.
func Sort(args []string) string {
	if len(args) == 0 {
		return "sort"
	}

	var reverse, numeric, unique, ignoreCase bool
	var keyField, fieldSeparator, outputFile string
	var files []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "-") && len(arg) > 1 && !strings.HasPrefix(arg, "--") {
			for _, ch := range arg[1:] {
				switch ch {
				case 'r':
					reverse = true
				case 'n':
					numeric = true
				case 'u':
					unique = true
				case 'f':
					ignoreCase = true
				case 'o':
					if i+1 < len(args) {
						outputFile = args[i+1]
						i++
					}
				}
			}
			continue
		}
		switch {
		case arg == "--reverse":
			reverse = true
		case arg == "--numeric-sort":
			numeric = true
		case arg == "--unique":
			unique = true
		case arg == "--ignore-case":
			ignoreCase = true
		case arg == "--key":
			if i+1 < len(args) {
				keyField = args[i+1]
				i++
			}
		case arg == "--field-separator":
			if i+1 < len(args) {
				fieldSeparator = args[i+1]
				i++
			}
		case arg == "--output":
			if i+1 < len(args) {
				outputFile = args[i+1]
				i++
			}
		case strings.HasPrefix(arg, "-"):
			// Unknown flag, skip.
		default:
			files = append(files, arg)
		}
	}

	var sb strings.Builder

	if len(files) > 0 {
		fmt.Fprintf(&sb, "open %s | ", quote.Words(files))
	}

	switch {
	case numeric:
		sb.WriteString("lines | where ($it | str trim | is-empty | not) | each { |line| $line | into int } | sort")
	case keyField != "":
		if fieldSeparator != "" {
			fmt.Fprintf(&sb, "lines | split column '%s' | sort-by column%s", fieldSeparator, keyField)
		} else {
			fmt.Fprintf(&sb, "lines | sort-by %s", keyField)
		}
	default:
		sb.WriteString("lines | sort")
	}

	result := sb.String()

	if reverse {
		result += " --reverse"
	}
	if ignoreCase {
		result += " --ignore-case"
	}
	if unique {
		result += " | uniq"
	}
	if outputFile != "" {
		result += fmt.Sprintf(" | save %s", quote.Word(outputFile))
	}

	// With no input files the pipeline reads stdin directly.
	if len(files) == 0 {
		result = strings.TrimPrefix(result, "lines | ")
	}

	if result == "" {
		result = "sort"
	}
	return result
}
