// Package nu renders a parsed shell syntax tree as Nushell source text.
//
// Conversion is a single recursive walk. Command names resolve through the
// builtin table first, then the external-utility table, then a small legacy
// inline table, and finally a quoted passthrough, so conversion is total:
// any tree the parser produces renders to something.
package nu

import (
	"fmt"
	"strings"

	"github.com/posix2nu/posix2nu/nu/builtin"
	"github.com/posix2nu/posix2nu/nu/quote"
	"github.com/posix2nu/posix2nu/nu/sus"
	"github.com/posix2nu/posix2nu/syntax"
)

// Convert renders the script as Nushell text, one line per top-level
// command. The error is part of the contract for future strict rendering
// modes; the current renderer never fails.
func Convert(script *syntax.Script) (string, error) {
	var out strings.Builder
	for i, command := range script.Commands {
		if i > 0 {
			out.WriteByte('\n')
		}
		converted, err := convertCommand(command)
		if err != nil {
			return "", err
		}
		out.WriteString(converted)
	}
	return out.String(), nil
}

func convertCommand(command syntax.Command) (string, error) {
	switch c := command.(type) {
	case *syntax.Simple:
		return convertSimple(c)
	case *syntax.Pipeline:
		return convertPipeline(c)
	case *syntax.Compound:
		return convertCompound(c)
	case *syntax.AndOr:
		return convertAndOr(c)
	case *syntax.List:
		return convertList(c)
	default:
		return "", fmt.Errorf("unknown command node %T", command)
	}
}

func convertSimple(cmd *syntax.Simple) (string, error) {
	var out strings.Builder

	for _, assignment := range cmd.Assignments {
		fmt.Fprintf(&out, "$%s = \"%s\"; ", assignment.Name, assignment.Value)
	}

	if cmd.Name != "" {
		out.WriteString(convertName(cmd.Name, cmd.Args))
	}

	if len(cmd.Redirections) > 0 {
		if redir := convertRedirections(cmd.Redirections); redir != "" {
			out.WriteString(" " + redir)
		}
	}

	return out.String(), nil
}

// convertName resolves a command name through the translation tables.
// Builtins shadow external utilities of the same name. The trailing inline
// cases predate the table registrations for those names and are kept so the
// fallback chain stays total even if a registration is removed.
func convertName(name string, args []string) string {
	if out, ok := builtin.Lookup(name, args); ok {
		return out
	}
	if out, ok := sus.Lookup(name, args); ok {
		return out
	}

	switch name {
	case "awk":
		if len(args) == 1 {
			pattern := args[0]
			if strings.HasPrefix(pattern, "{") && strings.HasSuffix(pattern, "}") &&
				strings.Contains(pattern, "print") {
				return "each { |row| print $row }"
			}
		}
		if len(args) == 0 {
			return "awk"
		}
		return "awk " + formatArgs(args)
	case "which":
		return "which " + formatArgs(args)
	case "whoami":
		return "whoami"
	case "ps":
		return "ps"
	}

	if len(args) == 0 {
		return name
	}
	return name + " " + formatArgs(args)
}

func convertPipeline(pipe *syntax.Pipeline) (string, error) {
	parts := make([]string, 0, len(pipe.Commands))
	for _, command := range pipe.Commands {
		converted, err := convertCommand(command)
		if err != nil {
			return "", err
		}
		parts = append(parts, converted)
	}

	result := strings.Join(parts, " | ")
	if pipe.Negated {
		return fmt.Sprintf("not (%s)", result), nil
	}
	return result, nil
}

func convertCompound(comp *syntax.Compound) (string, error) {
	out, err := convertCompoundKind(comp.Kind)
	if err != nil {
		return "", err
	}
	if len(comp.Redirections) > 0 {
		if redir := convertRedirections(comp.Redirections); redir != "" {
			out += " " + redir
		}
	}
	return out, nil
}

func convertCompoundKind(kind syntax.CompoundKind) (string, error) {
	switch k := kind.(type) {
	case *syntax.BraceGroup:
		body, err := convertBody(k.Body)
		if err != nil {
			return "", err
		}
		return "{\n" + body + "}", nil

	case *syntax.Subshell:
		joined, err := convertJoined(k.Body, "; ")
		if err != nil {
			return "", err
		}
		return "(" + joined + ")", nil

	case *syntax.For:
		items := "$in"
		if len(k.Words) > 0 {
			quoted := make([]string, 0, len(k.Words))
			for _, w := range k.Words {
				quoted = append(quoted, quote.Arg(w))
			}
			items = "[" + strings.Join(quoted, ", ") + "]"
		}
		body, err := convertBody(k.Body)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s | each { |%s| \n%s}", items, k.Variable, body), nil

	case *syntax.While:
		cond, err := convertJoined(k.Condition, "; ")
		if err != nil {
			return "", err
		}
		body, err := convertBody(k.Body)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("while %s {\n%s}", cond, body), nil

	case *syntax.Until:
		cond, err := convertJoined(k.Condition, "; ")
		if err != nil {
			return "", err
		}
		body, err := convertBody(k.Body)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("while not (%s) {\n%s}", cond, body), nil

	case *syntax.If:
		cond, err := convertJoined(k.Condition, "; ")
		if err != nil {
			return "", err
		}
		var out strings.Builder
		fmt.Fprintf(&out, "if %s {\n", cond)
		thenBody, err := convertBody(k.ThenBody)
		if err != nil {
			return "", err
		}
		out.WriteString(thenBody)
		for _, elif := range k.ElifParts {
			elifCond, err := convertJoined(elif.Condition, "; ")
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&out, "} else if %s {\n", elifCond)
			elifBody, err := convertBody(elif.Body)
			if err != nil {
				return "", err
			}
			out.WriteString(elifBody)
		}
		if k.ElseBody != nil {
			out.WriteString("} else {\n")
			elseBody, err := convertBody(k.ElseBody)
			if err != nil {
				return "", err
			}
			out.WriteString(elseBody)
		}
		out.WriteByte('}')
		return out.String(), nil

	case *syntax.Case:
		var out strings.Builder
		fmt.Fprintf(&out, "match %s {\n", quote.Arg(k.Word))
		for _, item := range k.Items {
			patterns := make([]string, 0, len(item.Patterns))
			for _, p := range item.Patterns {
				patterns = append(patterns, quote.Arg(p))
			}
			fmt.Fprintf(&out, "  %s => {\n", strings.Join(patterns, " | "))
			for _, command := range item.Body {
				converted, err := convertCommand(command)
				if err != nil {
					return "", err
				}
				fmt.Fprintf(&out, "    %s\n", converted)
			}
			out.WriteString("  }\n")
		}
		out.WriteByte('}')
		return out.String(), nil

	case *syntax.Function:
		body, err := convertBody(k.Body)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("def %s [] {\n%s}", k.Name, body), nil

	case *syntax.Arithmetic:
		return fmt.Sprintf("math eval \"%s\"", k.Expression), nil

	default:
		return "", fmt.Errorf("unknown compound kind %T", kind)
	}
}

func convertAndOr(andOr *syntax.AndOr) (string, error) {
	left, err := convertCommand(andOr.Left)
	if err != nil {
		return "", err
	}
	right, err := convertCommand(andOr.Right)
	if err != nil {
		return "", err
	}
	if andOr.Operator == syntax.Or {
		return fmt.Sprintf("(%s) or (%s)", left, right), nil
	}
	return fmt.Sprintf("(%s) and (%s)", left, right), nil
}

func convertList(list *syntax.List) (string, error) {
	parts := make([]string, 0, len(list.Commands))
	for _, command := range list.Commands {
		converted, err := convertCommand(command)
		if err != nil {
			return "", err
		}
		parts = append(parts, converted)
	}
	if list.Separator == syntax.Background {
		return strings.Join(parts, " &"), nil
	}
	return strings.Join(parts, "; "), nil
}

func convertRedirections(redirections []syntax.Redirection) string {
	parts := make([]string, 0, len(redirections))
	for _, redir := range redirections {
		target := quote.Arg(redir.Target)
		switch redir.Operator {
		case syntax.Input:
			parts = append(parts, "< "+target)
		case syntax.Output, syntax.Clobber:
			parts = append(parts, "out> "+target)
		case syntax.Append:
			parts = append(parts, "out>> "+target)
		case syntax.InputOutput:
			parts = append(parts, "<> "+target)
		case syntax.InputHereDoc:
			// The document body becomes string input.
			parts = append(parts, fmt.Sprintf("echo %s | %s", target, "# stdin"))
		case syntax.InputHereString:
			parts = append(parts, fmt.Sprintf("echo %s |", target))
		case syntax.OutputDup:
			switch {
			case redir.FD == nil || *redir.FD == 1:
				parts = append(parts, "out> "+target)
			case *redir.FD == 2:
				parts = append(parts, "err> "+target)
			default:
				parts = append(parts, fmt.Sprintf("# TODO: output dup fd %d to %s", *redir.FD, redir.Target))
			}
		case syntax.InputDup:
			if redir.FD != nil {
				parts = append(parts, fmt.Sprintf("# TODO: input dup fd %d from %s", *redir.FD, redir.Target))
			} else {
				parts = append(parts, "< "+target)
			}
		}
	}
	return strings.Join(parts, " ")
}

// convertBody renders commands as indented lines, one per command, each
// newline terminated. Compound bodies embed it between braces.
func convertBody(commands []syntax.Command) (string, error) {
	var out strings.Builder
	for _, command := range commands {
		converted, err := convertCommand(command)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&out, "  %s\n", converted)
	}
	return out.String(), nil
}

func convertJoined(commands []syntax.Command, sep string) (string, error) {
	parts := make([]string, 0, len(commands))
	for _, command := range commands {
		converted, err := convertCommand(command)
		if err != nil {
			return "", err
		}
		parts = append(parts, converted)
	}
	return strings.Join(parts, sep), nil
}

func formatArgs(args []string) string {
	quoted := make([]string, 0, len(args))
	for _, arg := range args {
		quoted = append(quoted, quote.Arg(arg))
	}
	return strings.Join(quoted, " ")
}
