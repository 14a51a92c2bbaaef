package sus

import (
	"fmt"
	"strings"

	"github.com/posix2nu/posix2nu/nu/quote"
)

func init() {
	add("which", "locate a command", Which)
}

// Which converts which invocations.
func Which(args []string) string {
	if len(args) == 0 {
		return "which"
	}

	all := false
	silent := false
	var commands []string

	for _, arg := range args {
		switch {
		case arg == "-a" || arg == "--all":
			all = true
		case arg == "-s" || arg == "--silent":
			silent = true
		case arg == "-v" || arg == "--version":
		case arg == "-h" || arg == "--help":
		case strings.HasPrefix(arg, "-"):
			// Unknown flag, skip.
		default:
			commands = append(commands, arg)
		}
	}

	if len(commands) == 0 {
		return "which"
	}

	var result string
	if len(commands) == 1 {
		if all {
			result = fmt.Sprintf("which -a %s", quote.Word(commands[0]))
		} else {
			result = fmt.Sprintf("which %s", quote.Word(commands[0]))
		}
	} else if all {
		parts := make([]string, 0, len(commands))
		for _, command := range commands {
			parts = append(parts, fmt.Sprintf("which -a %s", quote.Word(command)))
		}
		result = fmt.Sprintf("[%s] | each { |cmd| ^$cmd }", strings.Join(parts, ", "))
	} else {
		result = fmt.Sprintf("which %s", quote.Words(commands))
	}

	if silent {
		result += " | ignore"
	}
	return result
}
