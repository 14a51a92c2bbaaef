package sus

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/posix2nu/posix2nu/nu/quote"
)

func init() {
	add("cut", "remove sections from each line", Cut)
}

// Cut converts cut invocations to split row and select pipelines.
func Cut(args []string) string {
	if len(args) == 0 {
		return "cut"
	}

	delimiter := "\t"
	var fields, characters, bytes []int
	var files []string
	var outputDelimiter *string
	onlyDelimited := false

	for i := 0; i < len(args); {
		arg := args[i]
		switch {
		case arg == "-d" || arg == "--delimiter":
			if i+1 < len(args) {
				delimiter = args[i+1]
				i += 2
			} else {
				i++
			}
		case arg == "-f" || arg == "--fields":
			if i+1 < len(args) {
				fields = parseRangeList(args[i+1])
				i += 2
			} else {
				i++
			}
		case arg == "-c" || arg == "--characters":
			if i+1 < len(args) {
				characters = parseRangeList(args[i+1])
				i += 2
			} else {
				i++
			}
		case arg == "-b" || arg == "--bytes":
			if i+1 < len(args) {
				bytes = parseRangeList(args[i+1])
				i += 2
			} else {
				i++
			}
		case arg == "--output-delimiter":
			if i+1 < len(args) {
				d := args[i+1]
				outputDelimiter = &d
				i += 2
			} else {
				i++
			}
		case arg == "-s" || arg == "--only-delimited":
			onlyDelimited = true
			i++
		case arg == "--complement":
			// Complement selection has no direct rendering.
			i++
		case !strings.HasPrefix(arg, "-"):
			files = append(files, arg)
			i++
		default:
			// Unknown flag, skip.
			i++
		}
	}

	var sb strings.Builder

	switch len(files) {
	case 0:
		sb.WriteString("lines")
	case 1:
		fmt.Fprintf(&sb, "open %s | lines", quote.Word(files[0]))
	default:
		fmt.Fprintf(&sb, "ls %s | each { |file| open $file.name | lines }", quote.Words(files))
	}

	switch {
	case len(fields) > 0:
		splitCmd := fmt.Sprintf("split row %s", quote.Word(delimiter))
		if delimiter == "\t" {
			splitCmd = `split row "\t"`
		} else if delimiter == " " {
			splitCmd = `split row " "`
		}
		fmt.Fprintf(&sb, " | each { |line| $line | %s | select ", splitCmd)

		indices := make([]string, 0, len(fields))
		for _, f := range fields {
			if f > 0 {
				indices = append(indices, strconv.Itoa(f-1))
			} else {
				indices = append(indices, "0")
			}
		}
		sb.WriteString(strings.Join(indices, " "))

		switch {
		case outputDelimiter != nil:
			fmt.Fprintf(&sb, " | str join %s", quote.Word(*outputDelimiter))
		case delimiter != "\t":
			fmt.Fprintf(&sb, " | str join %s", quote.Word(delimiter))
		default:
			sb.WriteString(` | str join "\t"`)
		}
		sb.WriteString(" }")

		if onlyDelimited {
			fmt.Fprintf(&sb, " | where ($it | str contains %s)", quote.Word(delimiter))
		}
	case len(characters) > 0:
		writeSubstringEach(&sb, characters)
	case len(bytes) > 0:
		// Byte positions extract the same way as character positions.
		writeSubstringEach(&sb, bytes)
	default:
		sb.WriteString(" # No fields, characters, or bytes specified")
	}

	return sb.String()
}

func writeSubstringEach(sb *strings.Builder, positions []int) {
	sb.WriteString(" | each { |line| ")

	var ops []string
	for _, pos := range positions {
		if pos > 0 {
			ops = append(ops, fmt.Sprintf("($line | str substring %d..%d)", pos-1, pos))
		}
	}

	if len(ops) == 0 {
		sb.WriteString("$line")
	} else {
		fmt.Fprintf(sb, `[%s] | str join ""`, strings.Join(ops, " "))
	}
	sb.WriteString(" }")
}

// parseRangeList expands a list like "1,3,5-7" into sorted unique
// positions.
func parseRangeList(rangeStr string) []int {
	var positions []int

	for _, part := range strings.Split(rangeStr, ",") {
		part = strings.TrimSpace(part)
		if strings.Contains(part, "-") {
			rangeParts := strings.Split(part, "-")
			if len(rangeParts) != 2 {
				continue
			}
			start, err1 := strconv.Atoi(rangeParts[0])
			end, err2 := strconv.Atoi(rangeParts[1])
			if err1 != nil || err2 != nil {
				continue
			}
			for pos := start; pos <= end; pos++ {
				positions = append(positions, pos)
			}
		} else if pos, err := strconv.Atoi(part); err == nil {
			positions = append(positions, pos)
		}
	}

	sort.Ints(positions)
	return dedupInts(positions)
}

func dedupInts(xs []int) []int {
	if len(xs) == 0 {
		return xs
	}
	out := xs[:1]
	for _, x := range xs[1:] {
		if x != out[len(out)-1] {
			out = append(out, x)
		}
	}
	return out
}
