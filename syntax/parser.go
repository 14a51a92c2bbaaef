package syntax

import (
	"errors"
	"strings"
)

// ErrStrictParser reports that the strict grammar parser is not available
// and the heuristic parser was used instead.
var ErrStrictParser = errors.New("posix grammar parser not implemented")

// Parse turns POSIX shell script text into a Script.
//
// Parsing is two-tier: a strict grammar parser is tried first and the
// heuristic line parser is the fallback. The strict tier is an extension
// point that currently always fails, so in practice every parse is
// heuristic and the returned error is always nil. A future grammar parser
// can be slotted in without touching the tree or the converter.
func Parse(text string) (*Script, error) {
	if script, err := parseStrict(text); err == nil {
		return script, nil
	}
	return parseHeuristic(text), nil
}

// parseStrict is the strict-grammar injection point.
func parseStrict(text string) (*Script, error) {
	return nil, ErrStrictParser
}

// parseHeuristic parses line by line. Blank lines and comment lines are
// dropped; every other line becomes exactly one command. Multi-line
// constructs are not reassembled: a for/do/done spread over several lines is
// only recognized when it appears on one line.
func parseHeuristic(text string) *Script {
	script := &Script{}
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		script.Commands = append(script.Commands, parseLine(trimmed))
	}
	return script
}

// parseLine classifies one trimmed line and recurses into sub-strings for
// pipeline stages, conjunction halves, and compound bodies.
func parseLine(line string) Command {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return &Simple{Name: "", Args: nil}
	}

	// Pipelines. A line containing `||` is a conjunction, not a pipeline;
	// otherwise every `|` splits a stage.
	if strings.Contains(line, "|") && !strings.Contains(line, "||") {
		var stages []Command
		for _, part := range strings.Split(line, "|") {
			stages = append(stages, parseLine(strings.TrimSpace(part)))
		}
		return &Pipeline{Commands: stages, Negated: false}
	}

	// Conjunctions split at the first operator only; the right half
	// re-enters this rule, so chains nest to the right.
	if strings.Contains(line, "&&") || strings.Contains(line, "||") {
		op := And
		sep := "&&"
		if !strings.Contains(line, "&&") {
			op = Or
			sep = "||"
		}
		halves := strings.SplitN(line, sep, 2)
		right := ""
		if len(halves) == 2 {
			right = halves[1]
		}
		return &AndOr{
			Left:     parseLine(strings.TrimSpace(halves[0])),
			Operator: op,
			Right:    parseLine(strings.TrimSpace(right)),
		}
	}

	if cmd := parseKeywordLine(line); cmd != nil {
		return cmd
	}

	return parseSimple(parts)
}

// parseKeywordLine matches the fixed set of single-line compound forms.
// Each handler locates its closing keyword by literal substring search, not
// by grammar. Returns nil when the line is not a recognized compound.
func parseKeywordLine(line string) Command {
	if strings.HasPrefix(line, "if ") {
		if halves := strings.SplitN(line, " then ", 2); len(halves) == 2 {
			condition := strings.TrimPrefix(halves[0], "if ")
			thenBody := strings.TrimSuffix(halves[1], " fi")
			return &Compound{Kind: &If{
				Condition: []Command{parseLine(condition)},
				ThenBody:  []Command{parseLine(thenBody)},
			}}
		}
	}

	if strings.HasPrefix(line, "for ") {
		inPos := strings.Index(line, " in ")
		doPos := strings.Index(line, " do ")
		if inPos >= 4 && doPos >= inPos+4 {
			variable := line[4:inPos]
			words := strings.Fields(line[inPos+4 : doPos])
			body := strings.TrimSuffix(line[doPos+4:], " done")
			return &Compound{Kind: &For{
				Variable: variable,
				Words:    words,
				Body:     []Command{parseLine(body)},
			}}
		}
	}

	if strings.HasPrefix(line, "while ") {
		if doPos := strings.Index(line, " do "); doPos >= 6 {
			condition := strings.TrimSpace(line[6:doPos])
			body := strings.TrimSuffix(line[doPos+4:], " done")
			return &Compound{Kind: &While{
				Condition: []Command{parseLine(condition)},
				Body:      []Command{parseLine(body)},
			}}
		}
	}

	if strings.HasPrefix(line, "until ") {
		if doPos := strings.Index(line, " do "); doPos >= 6 {
			condition := strings.TrimSpace(line[6:doPos])
			body := strings.TrimSuffix(line[doPos+4:], " done")
			return &Compound{Kind: &Until{
				Condition: []Command{parseLine(condition)},
				Body:      []Command{parseLine(body)},
			}}
		}
	}

	if strings.HasPrefix(line, "case ") {
		if inPos := strings.Index(line, " in"); inPos >= 5 {
			word := strings.TrimSpace(line[5:inPos])
			// Case arms are not parsed from single-line input.
			return &Compound{Kind: &Case{Word: word}}
		}
	}

	if strings.HasPrefix(line, "{ ") && strings.HasSuffix(line, " }") && len(line) >= 4 {
		inner := line[2 : len(line)-2]
		return &Compound{Kind: &BraceGroup{Body: []Command{parseLine(inner)}}}
	}

	if strings.HasPrefix(line, "( ") && strings.HasSuffix(line, " )") && len(line) >= 4 {
		inner := line[2 : len(line)-2]
		return &Compound{Kind: &Subshell{Body: []Command{parseLine(inner)}}}
	}

	if strings.HasPrefix(line, "$(( ") && strings.HasSuffix(line, " ))") && len(line) >= 7 {
		expression := line[4 : len(line)-3]
		return &Compound{Kind: &Arithmetic{Expression: expression}}
	}

	return nil
}

// parseSimple peels leading NAME=VALUE assignments off the token list, then
// takes the first remaining token as the command name and the rest as args.
func parseSimple(parts []string) Command {
	var assignments []Assignment
	var words []string
	foundCommand := false

	for _, part := range parts {
		if !foundCommand && strings.Contains(part, "=") && !strings.HasPrefix(part, "-") {
			kv := strings.SplitN(part, "=", 2)
			if len(kv) == 2 {
				assignments = append(assignments, Assignment{Name: kv[0], Value: kv[1]})
				continue
			}
		}
		foundCommand = true
		words = append(words, part)
	}

	cmd := &Simple{Assignments: assignments}
	if len(words) > 0 {
		cmd.Name = words[0]
		cmd.Args = words[1:]
	}
	return cmd
}
