package sus

import (
	"strings"

	"github.com/posix2nu/posix2nu/nu/quote"
)

func init() {
	add("echo", "write arguments to standard output", Echo)
}

// Echo converts echo invocations to print. The -n/-e/-E flags are dropped:
// print adds no trailing newline handling of its own and interprets escapes
// contextually. Multiple arguments are joined into one quoted operand.
func Echo(args []string) string {
	var words []string
	for _, arg := range args {
		switch arg {
		case "-n", "-e", "-E":
			// No print equivalent needed.
		default:
			words = append(words, arg)
		}
	}

	if len(words) == 0 {
		return "print"
	}
	return "print " + quote.Word(strings.Join(words, " "))
}
