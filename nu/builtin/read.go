package builtin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/posix2nu/posix2nu/nu/quote"
)

func init() {
	add("read", "read a line of input into variables", Read)
}

// Read converts read invocations to `input`. Prompts become a leading
// print, -s maps to input -s, and variable names become $env assignments.
// Timeouts and custom delimiters have no input equivalent and surface as
// comments instead of being dropped.
func Read(args []string) string {
	if len(args) == 0 {
		return "input"
	}

	silent := false
	prompt := ""
	var timeout *int
	delimiter := "\n"
	var variables []string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-s":
			silent = true
		case "-p":
			if i+1 < len(args) {
				prompt = args[i+1]
				i++
			}
		case "-t":
			if i+1 < len(args) {
				if t, err := strconv.Atoi(args[i+1]); err == nil {
					timeout = &t
				}
				i++
			}
		case "-d":
			if i+1 < len(args) {
				delimiter = args[i+1]
				i++
			}
		case "-r":
			// Raw input; Nushell input is raw already.
		case "-n", "-u":
			// Character counts and descriptor sources are not modeled.
			if i+1 < len(args) {
				i++
			}
		default:
			if !strings.HasPrefix(args[i], "-") {
				variables = append(variables, args[i])
			}
		}
	}

	var out strings.Builder
	if prompt != "" {
		fmt.Fprintf(&out, "print %s; ", quote.Word(prompt))
	}
	if silent {
		out.WriteString("input -s")
	} else {
		out.WriteString("input")
	}
	if timeout != nil {
		fmt.Fprintf(&out, " # timeout: %ds", *timeout)
	}
	if delimiter != "\n" {
		fmt.Fprintf(&out, " # delimiter: %s", quote.Word(delimiter))
	}

	switch {
	case len(variables) == 1:
		fmt.Fprintf(&out, " | $env.%s = $in", variables[0])
	case len(variables) > 1:
		out.WriteString(" | split words | ")
		for i, name := range variables {
			if i > 0 {
				out.WriteString("; ")
			}
			fmt.Fprintf(&out, "$env.%s = ($in | get %d | default \"\")", name, i)
		}
	}

	return out.String()
}
