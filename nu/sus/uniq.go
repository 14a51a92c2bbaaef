package sus

import (
	"fmt"
	"strings"

	"github.com/posix2nu/posix2nu/nu/quote"
)

func init() {
	add("uniq", "filter adjacent duplicate lines", Uniq)
}

// Uniq converts uniq invocations. A second positional argument is the
// output file, matching the historical uniq calling convention.
func Uniq(args []string) string {
	if len(args) == 0 {
		return "uniq"
	}

	var count, duplicatesOnly, uniqueOnly, ignoreCase bool
	var skipFields, skipChars, outputFile string
	var files []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-c" || arg == "--count":
			count = true
		case arg == "-d" || arg == "--repeated":
			duplicatesOnly = true
		case arg == "-u" || arg == "--unique":
			uniqueOnly = true
		case arg == "-i" || arg == "--ignore-case":
			ignoreCase = true
		case arg == "-f" || arg == "--skip-fields":
			if i+1 < len(args) {
				skipFields = args[i+1]
				i++
			}
		case arg == "-s" || arg == "--skip-chars":
			if i+1 < len(args) {
				skipChars = args[i+1]
				i++
			}
		case strings.HasPrefix(arg, "-"):
			// Unknown flag, skip.
		default:
			files = append(files, arg)
		}
	}

	var sb strings.Builder

	switch len(files) {
	case 0:
	case 1:
		fmt.Fprintf(&sb, "open %s | ", quote.Word(files[0]))
	case 2:
		outputFile = files[1]
		fmt.Fprintf(&sb, "open %s | ", quote.Word(files[0]))
	default:
		fmt.Fprintf(&sb, "open %s | ", quote.Words(files))
	}

	switch {
	case count:
		sb.WriteString("lines | group-by | transpose key count | select key count")
	case duplicatesOnly:
		sb.WriteString("lines | group-by | where ($it | length) > 1 | transpose | get column0")
	case uniqueOnly:
		sb.WriteString("lines | group-by | where ($it | length) == 1 | transpose | get column0")
	default:
		sb.WriteString("lines | uniq")
	}

	result := sb.String()

	if skipFields != "" {
		result += fmt.Sprintf(" # Note: skip-fields %s not fully supported", skipFields)
	}
	if skipChars != "" {
		result += fmt.Sprintf(" # Note: skip-chars %s not fully supported", skipChars)
	}
	if ignoreCase {
		result += " # Note: ignore-case not directly supported"
	}
	if outputFile != "" {
		result += fmt.Sprintf(" | save %s", quote.Word(outputFile))
	}

	// With no input files the pipeline reads stdin directly.
	if len(files) == 0 {
		result = strings.TrimPrefix(result, "lines | ")
	}

	if result == "" {
		result = "uniq"
	}
	return result
}
