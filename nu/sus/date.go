package sus

import (
	"fmt"
	"strings"

	"github.com/posix2nu/posix2nu/nu/quote"
)

func init() {
	add("date", "print or set the system date", Date)
}

// Date converts date invocations to date now pipelines with optional
// timezone and format stages.
func Date(args []string) string {
	if len(args) == 0 {
		return "date now"
	}

	var formatString, setDate, referenceFile string
	utc := false
	iso8601 := false
	rfc3339 := false

	for i := 0; i < len(args); {
		arg := args[i]
		switch {
		case arg == "-d" || arg == "--date":
			if i+1 < len(args) {
				setDate = args[i+1]
				i += 2
			} else {
				i++
			}
		case arg == "-f" || arg == "--file":
			// Dates from a file have no direct equivalent.
			if i+1 < len(args) {
				i += 2
			} else {
				i++
			}
		case arg == "-r" || arg == "--reference":
			if i+1 < len(args) {
				referenceFile = args[i+1]
				i += 2
			} else {
				i++
			}
		case arg == "-R" || arg == "--rfc-2822":
			formatString = "%a, %d %b %Y %H:%M:%S %z"
			i++
		case arg == "-I" || arg == "--iso-8601":
			iso8601 = true
			i++
		case arg == "--rfc-3339":
			if i+1 < len(args) {
				switch args[i+1] {
				case "date":
					formatString = "%Y-%m-%d"
				case "seconds":
					formatString = "%Y-%m-%d %H:%M:%S%z"
				case "ns":
					formatString = "%Y-%m-%d %H:%M:%S.%f%z"
				default:
					rfc3339 = true
				}
				i += 2
			} else {
				rfc3339 = true
				i++
			}
		case arg == "-u" || arg == "--utc" || arg == "--universal":
			utc = true
			i++
		case arg == "-s" || arg == "--set":
			if i+1 < len(args) {
				setDate = args[i+1]
				i += 2
			} else {
				i++
			}
		case arg == "--help":
			return "date --help"
		case arg == "--version":
			return "date --version"
		case strings.HasPrefix(arg, "+"):
			formatString = arg[1:]
			i++
		default:
			// Might be a bare date string.
			if setDate == "" {
				setDate = arg
			}
			i++
		}
	}

	var sb strings.Builder

	switch {
	case referenceFile != "":
		fmt.Fprintf(&sb, "ls %s | get modified | first", quote.Word(referenceFile))
	case setDate != "":
		switch {
		case strings.Contains(setDate, "now"):
			sb.WriteString("date now")
		case strings.Contains(setDate, "today"):
			sb.WriteString("date now | date to-record | update hour 0 | update minute 0 | update second 0 | date from-record")
		case strings.Contains(setDate, "yesterday"):
			sb.WriteString("date now | date to-record | update day ($it.day - 1) | update hour 0 | update minute 0 | update second 0 | date from-record")
		case strings.Contains(setDate, "tomorrow"):
			sb.WriteString("date now | date to-record | update day ($it.day + 1) | update hour 0 | update minute 0 | update second 0 | date from-record")
		default:
			fmt.Fprintf(&sb, "%s | into datetime", quote.Word(setDate))
		}
	default:
		sb.WriteString("date now")
	}

	if utc {
		sb.WriteString(" | date to-timezone UTC")
	}

	switch {
	case formatString != "":
		fmt.Fprintf(&sb, " | format date %s", quote.Word(convertStrftimeFormat(formatString)))
	case iso8601:
		sb.WriteString(` | format date "%Y-%m-%dT%H:%M:%S%z"`)
	case rfc3339:
		sb.WriteString(` | format date "%Y-%m-%d %H:%M:%S%z"`)
	}

	return sb.String()
}

// convertStrftimeFormat maps strftime specifiers to the format date
// dialect. The common specifiers carry over unchanged.
func convertStrftimeFormat(format string) string {
	return format
}
