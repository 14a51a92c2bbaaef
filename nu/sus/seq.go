package sus

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/posix2nu/posix2nu/nu/quote"
)

func init() {
	add("seq", "print a sequence of numbers", Seq)
}

// Seq converts seq invocations to range expressions. Negative numbers
// stay positional even though they start with a dash.
func Seq(args []string) string {
	if len(args) == 0 {
		return "seq"
	}

	separator := "\n"
	equalWidth := false
	var format string
	var positional []string

	for i := 0; i < len(args); {
		arg := args[i]
		switch {
		case arg == "-s" || arg == "--separator":
			if i+1 < len(args) {
				separator = args[i+1]
				i += 2
			} else {
				i++
			}
		case arg == "-w" || arg == "--equal-width":
			equalWidth = true
			i++
		case arg == "-f" || arg == "--format":
			if i+1 < len(args) {
				format = args[i+1]
				i += 2
			} else {
				i++
			}
		case !strings.HasPrefix(arg, "-") || isInteger(arg):
			positional = append(positional, arg)
			i++
		default:
			// Unknown flag, skip.
			i++
		}
	}

	passthrough := fmt.Sprintf("seq %s", quote.Words(args))

	var start, increment, end int64
	switch len(positional) {
	case 1:
		last, err := strconv.ParseInt(positional[0], 10, 64)
		if err != nil {
			return passthrough
		}
		start, increment, end = 1, 1, last
	case 2:
		first, err1 := strconv.ParseInt(positional[0], 10, 64)
		last, err2 := strconv.ParseInt(positional[1], 10, 64)
		if err1 != nil || err2 != nil {
			return passthrough
		}
		start, end = first, last
		if first <= last {
			increment = 1
		} else {
			increment = -1
		}
	case 3:
		first, err1 := strconv.ParseInt(positional[0], 10, 64)
		inc, err2 := strconv.ParseInt(positional[1], 10, 64)
		last, err3 := strconv.ParseInt(positional[2], 10, 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return passthrough
		}
		start, increment, end = first, inc, last
	default:
		return passthrough
	}

	if increment == 0 {
		return passthrough
	}

	var result string
	switch {
	case increment == 1:
		result = fmt.Sprintf("%d..%d", start, end)
	case increment == -1 && start > end && len(positional) == 2:
		result = fmt.Sprintf("%d..%d | reverse", start, end)
	default:
		result = fmt.Sprintf("%d..%d | step %d", start, end, increment)
	}

	switch {
	case format != "":
		if strings.ContainsAny(format, "gfe") {
			result += fmt.Sprintf(" | each { |n| $n | format %s }", format)
		} else {
			result += fmt.Sprintf(" | each { |n| $n | format \"%s\" }", format)
		}
	case equalWidth:
		result += " | each { |n| $n | into string }"
	}

	if separator != "\n" {
		result += fmt.Sprintf(" | str join \"%s\"", strings.ReplaceAll(separator, `"`, `\"`))
	}

	return result
}

func isInteger(s string) bool {
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}
