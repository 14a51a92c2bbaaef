package sus

import (
	"fmt"
	"strings"

	"github.com/posix2nu/posix2nu/nu/quote"
)

func init() {
	add("wc", "count lines, words, and bytes", Wc)
}

// Wc converts wc invocations to length pipelines. Without flags wc
// defaults to counting lines, words and characters.
func Wc(args []string) string {
	if len(args) == 0 {
		return "wc"
	}

	var countLines, countWords, countChars, countBytes bool
	var files []string
	anyFlag := false

	for _, arg := range args {
		switch {
		case arg == "-l" || arg == "--lines":
			countLines = true
			anyFlag = true
		case arg == "-w" || arg == "--words":
			countWords = true
			anyFlag = true
		case arg == "-c" || arg == "--bytes":
			countBytes = true
			anyFlag = true
		case arg == "-m" || arg == "--chars":
			countChars = true
			anyFlag = true
		case arg == "-L" || arg == "--max-line-length":
			// No direct equivalent for max line length.
			anyFlag = true
		case strings.HasPrefix(arg, "-"):
			// Unknown flag, skip.
		default:
			files = append(files, arg)
		}
	}

	if !anyFlag {
		countLines = true
		countWords = true
		countChars = true
	}

	var operations []string
	if countLines {
		operations = append(operations, "lines | length")
	}
	if countWords {
		operations = append(operations, "split words | length")
	}
	if countChars {
		operations = append(operations, "str length")
	}
	if countBytes {
		// Byte and character counts collapse to the same pipeline.
		operations = append(operations, "str length")
	}

	const lineWordRecord = "lines | {lines: length, words: ($it | str join ' ' | split words | length)}"

	switch len(files) {
	case 0:
		if len(operations) == 1 {
			return operations[0]
		}
		if len(operations) == 2 && countLines && countWords {
			return lineWordRecord
		}
		return fmt.Sprintf("wc # multiple counts: %s", strings.Join(operations, ", "))
	case 1:
		file := files[0]
		if file == "-" {
			if len(operations) == 1 {
				return operations[0]
			}
			return fmt.Sprintf("wc # multiple counts: %s", strings.Join(operations, ", "))
		}
		if len(operations) == 1 {
			return fmt.Sprintf("open --raw %s | %s", quote.Word(file), operations[0])
		}
		if len(operations) == 2 && countLines && countWords {
			return fmt.Sprintf("open --raw %s | %s", quote.Word(file), lineWordRecord)
		}
		return fmt.Sprintf("open --raw %s | wc # multiple counts", quote.Word(file))
	}

	var sb strings.Builder
	for i, file := range files {
		if i > 0 {
			sb.WriteString("; ")
		}
		if len(operations) == 1 {
			fmt.Fprintf(&sb, "open --raw %s | %s", quote.Word(file), operations[0])
		} else {
			fmt.Fprintf(&sb, "open --raw %s | wc", quote.Word(file))
		}
	}
	return sb.String()
}
