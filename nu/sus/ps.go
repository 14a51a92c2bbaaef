package sus

import (
	"fmt"
	"strings"

	"github.com/posix2nu/posix2nu/nu/quote"
)

func init() {
	add("ps", "report process status", Ps)
}

// Ps converts ps invocations to the native process table, noting
// format options it cannot honor.
func Ps(args []string) string {
	if len(args) == 0 {
		return "ps"
	}

	var showFull, showUser, showThreads, showTree bool
	var formatFields []string
	var userFilter, pidFilter string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-a" || arg == "--all" || arg == "-x" || arg == "-e" || arg == "--everyone":
			// The process table already covers every process.
		case arg == "-u" || arg == "--user":
			showUser = true
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				userFilter = args[i+1]
				i++
			}
		case arg == "-f" || arg == "--full":
			showFull = true
		case arg == "-H" || arg == "--show-threads":
			showThreads = true
		case arg == "-T" || arg == "--show-tree" || arg == "--forest":
			showTree = true
		case arg == "-p" || arg == "--pid":
			if i+1 < len(args) {
				pidFilter = args[i+1]
				i++
			}
		case arg == "-o" || arg == "--format":
			if i+1 < len(args) {
				formatFields = append(formatFields, args[i+1])
				i++
			}
		case arg == "--help":
			return "ps --help"
		case arg == "--version":
			return "ps --version"
		case strings.HasPrefix(arg, "-"):
			// Combined flags like -aux.
			for _, ch := range arg[1:] {
				switch ch {
				case 'u':
					showUser = true
				case 'f':
					showFull = true
				case 'H':
					showThreads = true
				case 'T':
					showTree = true
				}
			}
		default:
			if isDigits(arg) {
				pidFilter = arg
			} else {
				userFilter = arg
			}
		}
	}

	result := "ps"

	if userFilter != "" {
		result += fmt.Sprintf(" | where user == %s", quote.Word(userFilter))
	}
	if pidFilter != "" {
		result += fmt.Sprintf(" | where pid == %s", pidFilter)
	}

	var notes []string
	if showFull {
		notes = append(notes, "full format")
	}
	if showUser {
		notes = append(notes, "user format")
	}
	if showThreads {
		notes = append(notes, "show threads")
	}
	if showTree {
		notes = append(notes, "tree format")
	}
	if len(formatFields) > 0 {
		notes = append(notes, fmt.Sprintf("custom fields: %s", strings.Join(formatFields, ",")))
	}

	if len(notes) > 0 {
		result += fmt.Sprintf(" # Note: %s not fully supported", strings.Join(notes, ", "))
	}

	return result
}
