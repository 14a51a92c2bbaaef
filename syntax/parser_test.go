package syntax

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, input string) *Script {
	t.Helper()
	script, err := Parse(input)
	require.NoError(t, err)
	return script
}

func TestParseSimpleCommand(t *testing.T) {
	script := mustParse(t, "echo hello world")
	require.Len(t, script.Commands, 1)

	cmd, ok := script.Commands[0].(*Simple)
	require.True(t, ok, "expected simple command, got %T", script.Commands[0])
	assert.Equal(t, "echo", cmd.Name)
	assert.Equal(t, []string{"hello", "world"}, cmd.Args)
}

func TestParsePipeline(t *testing.T) {
	script := mustParse(t, "ls | grep test")
	require.Len(t, script.Commands, 1)

	pipe, ok := script.Commands[0].(*Pipeline)
	require.True(t, ok, "expected pipeline, got %T", script.Commands[0])
	assert.Len(t, pipe.Commands, 2)
	assert.False(t, pipe.Negated)
}

func TestParseAndOr(t *testing.T) {
	script := mustParse(t, "true && echo success")
	require.Len(t, script.Commands, 1)

	andOr, ok := script.Commands[0].(*AndOr)
	require.True(t, ok, "expected and-or, got %T", script.Commands[0])
	assert.Equal(t, And, andOr.Operator)

	left, ok := andOr.Left.(*Simple)
	require.True(t, ok)
	assert.Equal(t, "true", left.Name)
}

func TestParseChainedAndOr(t *testing.T) {
	// Splitting at the first operator must nest the remainder to the right.
	script := mustParse(t, "a && b && c")
	require.Len(t, script.Commands, 1)

	outer, ok := script.Commands[0].(*AndOr)
	require.True(t, ok)
	assert.Equal(t, And, outer.Operator)

	inner, ok := outer.Right.(*AndOr)
	require.True(t, ok, "right half should re-enter the conjunction rule")
	assert.Equal(t, And, inner.Operator)

	b, ok := inner.Left.(*Simple)
	require.True(t, ok)
	assert.Equal(t, "b", b.Name)
}

func TestParseAssignment(t *testing.T) {
	script := mustParse(t, "VAR=value echo $VAR")
	require.Len(t, script.Commands, 1)

	cmd, ok := script.Commands[0].(*Simple)
	require.True(t, ok)
	require.Len(t, cmd.Assignments, 1)
	assert.Equal(t, "VAR", cmd.Assignments[0].Name)
	assert.Equal(t, "value", cmd.Assignments[0].Value)
	assert.Equal(t, "echo", cmd.Name)
	assert.Equal(t, []string{"$VAR"}, cmd.Args)
}

func TestParseAssignmentOnly(t *testing.T) {
	script := mustParse(t, "VAR=value")
	require.Len(t, script.Commands, 1)

	cmd, ok := script.Commands[0].(*Simple)
	require.True(t, ok)
	require.Len(t, cmd.Assignments, 1)
	assert.Empty(t, cmd.Name)
	assert.Empty(t, cmd.Args)
}

func TestParseEmptyInput(t *testing.T) {
	script := mustParse(t, "")
	assert.Empty(t, script.Commands)
}

func TestParseComments(t *testing.T) {
	script := mustParse(t, "# This is a comment\necho hello")
	require.Len(t, script.Commands, 1)

	cmd, ok := script.Commands[0].(*Simple)
	require.True(t, ok)
	assert.Equal(t, "echo", cmd.Name)
	assert.Equal(t, []string{"hello"}, cmd.Args)
}

func TestParseIfStatement(t *testing.T) {
	script := mustParse(t, "if true then echo yes fi")
	require.Len(t, script.Commands, 1)

	comp, ok := script.Commands[0].(*Compound)
	require.True(t, ok, "expected compound, got %T", script.Commands[0])
	kind, ok := comp.Kind.(*If)
	require.True(t, ok, "expected if, got %T", comp.Kind)
	assert.NotEmpty(t, kind.Condition)
	assert.NotEmpty(t, kind.ThenBody)
	assert.Nil(t, kind.ElseBody)
}

func TestParseForLoop(t *testing.T) {
	script := mustParse(t, "for i in 1 2 3 do echo $i done")
	require.Len(t, script.Commands, 1)

	comp, ok := script.Commands[0].(*Compound)
	require.True(t, ok)
	kind, ok := comp.Kind.(*For)
	require.True(t, ok, "expected for, got %T", comp.Kind)
	assert.Equal(t, "i", kind.Variable)
	assert.Equal(t, []string{"1", "2", "3"}, kind.Words)
	assert.NotEmpty(t, kind.Body)
}

func TestParseWhileLoop(t *testing.T) {
	script := mustParse(t, "while true do echo running done")
	require.Len(t, script.Commands, 1)

	comp, ok := script.Commands[0].(*Compound)
	require.True(t, ok)
	kind, ok := comp.Kind.(*While)
	require.True(t, ok, "expected while, got %T", comp.Kind)
	assert.NotEmpty(t, kind.Condition)
	assert.NotEmpty(t, kind.Body)
}

func TestParseUntilLoop(t *testing.T) {
	script := mustParse(t, "until false do echo waiting done")
	require.Len(t, script.Commands, 1)

	comp, ok := script.Commands[0].(*Compound)
	require.True(t, ok)
	_, ok = comp.Kind.(*Until)
	assert.True(t, ok, "expected until, got %T", comp.Kind)
}

func TestParseBraceGroup(t *testing.T) {
	script := mustParse(t, "{ echo hello }")
	require.Len(t, script.Commands, 1)

	comp, ok := script.Commands[0].(*Compound)
	require.True(t, ok)
	kind, ok := comp.Kind.(*BraceGroup)
	require.True(t, ok, "expected brace group, got %T", comp.Kind)
	assert.Len(t, kind.Body, 1)
}

func TestParseSubshell(t *testing.T) {
	script := mustParse(t, "( echo hello )")
	require.Len(t, script.Commands, 1)

	comp, ok := script.Commands[0].(*Compound)
	require.True(t, ok)
	kind, ok := comp.Kind.(*Subshell)
	require.True(t, ok, "expected subshell, got %T", comp.Kind)
	assert.Len(t, kind.Body, 1)
}

func TestParseArithmetic(t *testing.T) {
	script := mustParse(t, "$(( 1 + 2 ))")
	require.Len(t, script.Commands, 1)

	comp, ok := script.Commands[0].(*Compound)
	require.True(t, ok)
	kind, ok := comp.Kind.(*Arithmetic)
	require.True(t, ok, "expected arithmetic, got %T", comp.Kind)
	assert.Equal(t, "1 + 2", kind.Expression)
}

func TestParseCase(t *testing.T) {
	script := mustParse(t, "case $x in")
	require.Len(t, script.Commands, 1)

	comp, ok := script.Commands[0].(*Compound)
	require.True(t, ok)
	kind, ok := comp.Kind.(*Case)
	require.True(t, ok, "expected case, got %T", comp.Kind)
	assert.Equal(t, "$x", kind.Word)
	assert.Empty(t, kind.Items)
}

func TestParseStrictFallsBack(t *testing.T) {
	_, err := parseStrict("echo hello")
	assert.ErrorIs(t, err, ErrStrictParser)

	// Parse itself must succeed via the heuristic tier.
	script := mustParse(t, "echo hello")
	assert.Len(t, script.Commands, 1)
}

func TestScriptMarshalsWithDiscriminators(t *testing.T) {
	script := mustParse(t, "ls | grep test")
	raw, err := json.Marshal(script)
	require.NoError(t, err)

	text := string(raw)
	assert.Contains(t, text, `"type":"pipeline"`)
	assert.Contains(t, text, `"type":"simple"`)
	assert.Contains(t, text, `"negated":false`)
}

func TestParseNeverPanics(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"|",
		"|||",
		"&&",
		"a &&",
		"&& b",
		"if then fi",
		"for in do done",
		"while do",
		"until do",
		"case in",
		"{ }",
		"( )",
		"$(( ))",
		"\x00\x01\x02",
		strings.Repeat("a | ", 100),
		strings.Repeat("x && ", 50),
		"VAR=",
		"=value cmd",
	}

	for _, input := range inputs {
		script, err := Parse(input)
		assert.NoError(t, err, "input %q", input)
		assert.NotNil(t, script, "input %q", input)
	}
}
