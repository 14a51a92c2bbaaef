package sus

import (
	"fmt"
	"strings"

	"github.com/posix2nu/posix2nu/nu/quote"
)

func init() {
	add("grep", "filter lines by pattern", Grep)
}

// Grep converts grep invocations into where clauses over lines. Output
// modes (-q, -c, -n, -o) change the tail of the pipeline; a single file
// prepends an open. Multiple files fall back to a passthrough.
func Grep(args []string) string {
	if len(args) == 0 {
		return "grep"
	}

	pattern := ""
	var files []string
	quiet := false
	invert := false
	ignoreCase := false
	count := false
	lineNumber := false
	fixedString := false
	wordMatch := false
	onlyMatching := false

	for _, arg := range args {
		switch arg {
		case "-q", "--quiet", "--silent":
			quiet = true
		case "-v", "--invert-match":
			invert = true
		case "-i", "--ignore-case":
			ignoreCase = true
		case "-c", "--count":
			count = true
		case "-n", "--line-number":
			lineNumber = true
		case "-E", "--extended-regexp":
			// Nushell regexes are extended already.
		case "-F", "--fixed-strings":
			fixedString = true
		case "-w", "--word-regexp":
			wordMatch = true
		case "-o", "--only-matching":
			onlyMatching = true
		case "-l", "--files-with-matches", "-L", "--files-without-match",
			"-r", "-R", "--recursive", "-H", "--with-filename", "-h", "--no-filename":
			// Not modeled.
		default:
			if strings.HasPrefix(arg, "-") {
				continue
			}
			if pattern == "" {
				pattern = arg
			} else {
				files = append(files, arg)
			}
		}
	}

	if pattern == "" {
		return "grep"
	}

	matchPattern := pattern
	if wordMatch && !fixedString {
		matchPattern = `\b` + pattern + `\b`
	}
	op := "=~"
	if invert {
		op = "!~"
	}
	whereClause := fmt.Sprintf("where $it %s %s", op, quote.Word(matchPattern))
	if ignoreCase {
		whereClause += " # case-insensitive"
	}

	source := "lines"
	if len(files) == 1 {
		source = fmt.Sprintf("open %s | lines", quote.Word(files[0]))
	} else if len(files) > 1 {
		// Per-file labeling has no simple pipeline shape.
		return "grep " + quote.Words(args)
	}

	switch {
	case quiet:
		return fmt.Sprintf("%s | %s | length | $in > 0", source, whereClause)
	case count:
		return fmt.Sprintf("%s | %s | length", source, whereClause)
	case lineNumber:
		return fmt.Sprintf(`%s | enumerate | where ($it.item =~ %s) | each { |x| $"($x.index + 1): ($x.item)" }`, source, quote.Word(pattern))
	case onlyMatching:
		return fmt.Sprintf("%s | %s | each { |line| $line | str extract %s}", source, whereClause, quote.Word(pattern))
	default:
		return fmt.Sprintf("%s | %s", source, whereClause)
	}
}
