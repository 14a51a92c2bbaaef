package sus

import (
	"fmt"
	"strings"

	"github.com/posix2nu/posix2nu/nu/quote"
)

func init() {
	add("cat", "concatenate and print files", Cat)
}

// Cat converts cat invocations. Stdin (no files or `-`) maps to input,
// files map to open --raw, and several display flags become line-oriented
// post-processing stages.
func Cat(args []string) string {
	if len(args) == 0 {
		return "input"
	}

	showEnds := false
	showTabs := false
	showNonprinting := false
	numberLines := false
	numberNonblank := false
	squeezeBlank := false
	var files []string

	for _, arg := range args {
		switch {
		case arg == "-A" || arg == "--show-all":
			showEnds = true
			showTabs = true
			showNonprinting = true
		case arg == "-E" || arg == "--show-ends":
			showEnds = true
		case arg == "-T" || arg == "--show-tabs":
			showTabs = true
		case arg == "-v" || arg == "--show-nonprinting":
			showNonprinting = true
		case arg == "-n" || arg == "--number":
			numberLines = true
		case arg == "-b" || arg == "--number-nonblank":
			numberNonblank = true
		case arg == "-s" || arg == "--squeeze-blank":
			squeezeBlank = true
		case arg == "-u":
			// POSIX compatibility flag, ignored.
		case arg == "-":
			files = append(files, arg)
		case strings.HasPrefix(arg, "-"):
			// Unknown flag, skip.
		default:
			files = append(files, arg)
		}
	}

	var result string
	switch {
	case len(files) == 0:
		result = "input"
	case len(files) == 1:
		if files[0] == "-" {
			result = "input"
		} else {
			result = "open --raw " + quote.Word(files[0])
		}
	default:
		opens := make([]string, 0, len(files))
		for _, f := range files {
			if f == "-" {
				opens = append(opens, "input")
			} else {
				opens = append(opens, fmt.Sprintf("(open --raw %s)", quote.Word(f)))
			}
		}
		result = fmt.Sprintf("[%s] | str join", strings.Join(opens, ", "))
	}

	var post []string
	if squeezeBlank {
		post = append(post, "lines | where ($it | str trim | str length) > 0 | str join (char nl)")
	}
	if numberLines {
		post = append(post, `lines | enumerate | each { |x| $"($x.index + 1)  ($x.item)" } | str join (char nl)`)
	} else if numberNonblank {
		post = append(post, `lines | enumerate | each { |x| if ($x.item | str trim | str length) > 0 { $"($x.index + 1)  ($x.item)" } else { $x.item } } | str join (char nl)`)
	}
	if showEnds {
		post = append(post, "str replace --all (char nl) '$'")
	}
	if showTabs {
		post = append(post, "str replace --all (char tab) '^I'")
	}
	if showNonprinting {
		post = append(post, "# show-nonprinting not fully supported")
	}

	if len(post) > 0 {
		result += " | " + strings.Join(post, " | ")
	}
	return result
}
