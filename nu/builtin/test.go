package builtin

import (
	"fmt"
	"strings"

	"github.com/posix2nu/posix2nu/nu/quote"
)

func init() {
	add("test", "evaluate a conditional expression", Test)
}

// Test converts test/[ invocations to Nushell conditional expressions.
// Dispatch is by argument count: one argument is a non-empty check, two is
// a unary operator, three is a binary operator, and longer vectors are
// treated as bracket-wrapped or logically connected expressions.
func Test(args []string) string {
	// A bare trailing ] comes from [ expr ] invocations where the opening
	// bracket was consumed as the command name. Bracket-wrapped vectors
	// keep both delimiters and are handled below.
	if n := len(args); n > 1 && args[n-1] == "]" && args[0] != "[" {
		args = args[:n-1]
	}
	switch len(args) {
	case 0:
		return "false"
	case 1:
		return testUnary(args)
	case 2:
		return testOperator(args)
	case 3:
		return testBinary(args)
	case 4:
		return testBracket(args)
	default:
		return testComplex(args)
	}
}

func testUnary(args []string) string {
	if args[0] == "]" {
		return "true"
	}
	return fmt.Sprintf("(%s | is-not-empty)", quote.Word(args[0]))
}

// testOperator handles the two argument form: a unary file or string
// operator and its operand.
func testOperator(args []string) string {
	op, arg := args[0], args[1]
	quoted := quote.Word(arg)

	switch op {
	case "-f", "-e", "-w", "-x":
		return fmt.Sprintf("(%s | path exists)", quoted)
	case "-d":
		return fmt.Sprintf("(%s | path type) == \"dir\"", quoted)
	case "-r":
		return fmt.Sprintf("(%s | path exists and (%s | path type) == \"file\")", quoted, quoted)
	case "-s":
		return fmt.Sprintf("(%s | path exists and (open %s | length) > 0)", quoted, quoted)
	case "-L":
		return fmt.Sprintf("(%s | path type) == \"symlink\"", quoted)
	case "-b":
		return fmt.Sprintf("(%s | path type) == \"block\"", quoted)
	case "-c":
		return fmt.Sprintf("(%s | path type) == \"char\"", quoted)
	case "-p":
		return fmt.Sprintf("(%s | path type) == \"fifo\"", quoted)
	case "-S":
		return fmt.Sprintf("(%s | path type) == \"socket\"", quoted)
	case "-t":
		return fmt.Sprintf("(%s | into int) in [0, 1, 2]", quoted)
	case "-z":
		return fmt.Sprintf("(%s | is-empty)", quoted)
	case "-n":
		return fmt.Sprintf("(%s | is-not-empty)", quoted)
	case "!":
		return fmt.Sprintf("not (%s)", Test(args[1:2]))
	default:
		return fmt.Sprintf("test %s %s", op, quoted)
	}
}

// testBinary handles the three argument form: left operand, binary
// operator, right operand.
func testBinary(args []string) string {
	left, op, right := args[0], args[1], args[2]
	ql, qr := quote.Word(left), quote.Word(right)

	switch op {
	case "=", "==":
		return fmt.Sprintf("%s == %s", ql, qr)
	case "!=":
		return fmt.Sprintf("%s != %s", ql, qr)
	case "-eq":
		return fmt.Sprintf("%s == %s", left, right)
	case "-ne":
		return fmt.Sprintf("%s != %s", left, right)
	case "-lt":
		return fmt.Sprintf("%s < %s", left, right)
	case "-le":
		return fmt.Sprintf("%s <= %s", left, right)
	case "-gt":
		return fmt.Sprintf("%s > %s", left, right)
	case "-ge":
		return fmt.Sprintf("%s >= %s", left, right)
	case "-nt":
		return fmt.Sprintf("(%s | path exists) and (%s | path exists) and ((%s | get modified) > (%s | get modified))", ql, qr, ql, qr)
	case "-ot":
		return fmt.Sprintf("(%s | path exists) and (%s | path exists) and ((%s | get modified) < (%s | get modified))", ql, qr, ql, qr)
	case "-ef":
		return fmt.Sprintf("(%s | path exists) and (%s | path exists) and ((%s | get inode) == (%s | get inode))", ql, qr, ql, qr)
	case "=~":
		return fmt.Sprintf("%s =~ %s", ql, qr)
	case "!~":
		return fmt.Sprintf("%s !~ %s", ql, qr)
	default:
		return fmt.Sprintf("test %s %s %s", left, op, right)
	}
}

// testBracket handles `[ EXPR ]` with a two-token expression inside.
func testBracket(args []string) string {
	if args[0] == "[" && args[3] == "]" {
		return testParts(args[1:3])
	}
	return testComplex(args)
}

// testComplex splits a longer expression on -a/-o (and their &&/||
// spellings), converts each fragment by length, and joins with and/or.
func testComplex(args []string) string {
	actual := args
	if len(actual) >= 2 && actual[0] == "[" && actual[len(actual)-1] == "]" {
		actual = actual[1 : len(actual)-1]
	}
	if len(actual) == 0 {
		return "false"
	}

	type fragment struct {
		parts     []string
		connector string
	}
	var fragments []fragment
	var current []string

	for _, arg := range actual {
		switch arg {
		case "-a", "&&":
			if len(current) > 0 {
				fragments = append(fragments, fragment{current, "and"})
				current = nil
			}
		case "-o", "||":
			if len(current) > 0 {
				fragments = append(fragments, fragment{current, "or"})
				current = nil
			}
		default:
			current = append(current, arg)
		}
	}
	if len(current) > 0 {
		fragments = append(fragments, fragment{current, ""})
	}
	if len(fragments) == 0 {
		return "false"
	}

	var out strings.Builder
	for i, frag := range fragments {
		if i > 0 {
			out.WriteString(" " + fragments[i-1].connector + " ")
		}
		fmt.Fprintf(&out, "(%s)", testParts(frag.parts))
	}
	return out.String()
}

// testParts dispatches a fragment by length.
func testParts(parts []string) string {
	switch len(parts) {
	case 1:
		return testUnary(parts)
	case 2:
		return testOperator(parts)
	case 3:
		return testBinary(parts)
	default:
		return "test " + quote.Words(parts)
	}
}
