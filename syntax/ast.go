// Package syntax defines the shell command syntax tree and the heuristic
// parser that produces it from POSIX script text.
//
// The tree is plain immutable data: nodes are built bottom-up during one
// parse and read by one conversion pass, never shared or mutated. Every node
// serializes to JSON with a discriminator field so scripts can be inspected
// as structured data.
package syntax

import "encoding/json"

// Script is the root of a parse: an ordered sequence of commands.
type Script struct {
	Commands []Command `json:"commands"`
}

// Command is one shell command in any of its syntactic forms.
type Command interface {
	isCommand()
}

// Simple is a plain command invocation: optional leading assignments, a name
// (may be empty for a pure-assignment or blank line), and pre-split
// arguments. No quoting or expansion is modeled beyond word splitting.
type Simple struct {
	Name         string        `json:"name"`
	Args         []string      `json:"args"`
	Assignments  []Assignment  `json:"assignments,omitempty"`
	Redirections []Redirection `json:"redirections,omitempty"`
}

// Pipeline is a `|`-connected sequence of commands. Negated records a
// leading `!`; the heuristic parser never sets it, but the tree supports it
// for callers that build commands directly.
type Pipeline struct {
	Commands []Command `json:"commands"`
	Negated  bool      `json:"negated"`
}

// Compound is a construct with a nested body (loop, conditional, group,
// function, arithmetic expansion) plus redirections attached to the whole
// construct.
type Compound struct {
	Kind         CompoundKind  `json:"kind"`
	Redirections []Redirection `json:"redirections,omitempty"`
}

// AndOr is a single `&&` or `||` conjunction. Chains nest to the right:
// `a && b && c` parses as AndOr(a, AndOr(b, c)).
type AndOr struct {
	Left     Command   `json:"left"`
	Operator AndOrOp   `json:"operator"`
	Right    Command   `json:"right"`
}

// List is a `;` or `&` separated command sequence.
type List struct {
	Commands  []Command     `json:"commands"`
	Separator ListSeparator `json:"separator"`
}

func (*Simple) isCommand()   {}
func (*Pipeline) isCommand() {}
func (*Compound) isCommand() {}
func (*AndOr) isCommand()    {}
func (*List) isCommand()     {}

// AndOrOp selects between the two conjunction operators.
type AndOrOp int

const (
	And AndOrOp = iota
	Or
)

func (op AndOrOp) String() string {
	if op == Or {
		return "or"
	}
	return "and"
}

func (op AndOrOp) MarshalJSON() ([]byte, error) {
	return json.Marshal(op.String())
}

// ListSeparator selects between sequential and background list execution.
type ListSeparator int

const (
	Sequential ListSeparator = iota
	Background
)

func (s ListSeparator) String() string {
	if s == Background {
		return "background"
	}
	return "sequential"
}

func (s ListSeparator) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Assignment is a leading NAME=VALUE word on a simple command. Order
// matters; this engine only translates the syntax, it does not execute.
type Assignment struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Redirection is a single redirection operator with its target. FD is nil
// unless the source spelled an explicit descriptor number. Target holds a
// filename, a descriptor number, or a here-document body depending on the
// operator.
type Redirection struct {
	FD       *int       `json:"fd,omitempty"`
	Operator RedirectOp `json:"operator"`
	Target   string     `json:"target"`
}

// RedirectOp enumerates the modeled redirection operators.
type RedirectOp int

const (
	Input RedirectOp = iota
	Output
	Append
	InputOutput
	Clobber
	InputHereDoc
	InputHereString
	OutputDup
	InputDup
)

var redirectOpNames = map[RedirectOp]string{
	Input:           "input",
	Output:          "output",
	Append:          "append",
	InputOutput:     "input_output",
	Clobber:         "clobber",
	InputHereDoc:    "input_here_doc",
	InputHereString: "input_here_string",
	OutputDup:       "output_dup",
	InputDup:        "input_dup",
}

func (op RedirectOp) String() string {
	if name, ok := redirectOpNames[op]; ok {
		return name
	}
	return "unknown"
}

func (op RedirectOp) MarshalJSON() ([]byte, error) {
	return json.Marshal(op.String())
}

// CompoundKind is the closed set of compound construct shapes.
type CompoundKind interface {
	isCompoundKind()
}

// BraceGroup is a `{ ...; }` group.
type BraceGroup struct {
	Body []Command `json:"body"`
}

// Subshell is a `( ... )` group.
type Subshell struct {
	Body []Command `json:"body"`
}

// For is a `for VAR in WORDS; do ...; done` loop. An empty word list means
// "iterate piped input".
type For struct {
	Variable string    `json:"variable"`
	Words    []string  `json:"words"`
	Body     []Command `json:"body"`
}

// While is a `while COND; do ...; done` loop.
type While struct {
	Condition []Command `json:"condition"`
	Body      []Command `json:"body"`
}

// Until is an `until COND; do ...; done` loop.
type Until struct {
	Condition []Command `json:"condition"`
	Body      []Command `json:"body"`
}

// If is an `if/elif/else/fi` conditional. ElseBody is nil when there is no
// else clause; all other bodies are always present, possibly empty.
type If struct {
	Condition []Command  `json:"condition"`
	ThenBody  []Command  `json:"then_body"`
	ElifParts []ElifPart `json:"elif_parts,omitempty"`
	ElseBody  []Command  `json:"else_body,omitempty"`
}

// ElifPart is one `elif COND; then BODY` clause.
type ElifPart struct {
	Condition []Command `json:"condition"`
	Body      []Command `json:"body"`
}

// Case is a `case WORD in ... esac` construct.
type Case struct {
	Word  string     `json:"word"`
	Items []CaseItem `json:"items"`
}

// CaseItem is one `pattern|pattern) body ;;` arm.
type CaseItem struct {
	Patterns []string  `json:"patterns"`
	Body     []Command `json:"body"`
}

// Function is a `name() { ... }` definition.
type Function struct {
	Name string    `json:"name"`
	Body []Command `json:"body"`
}

// Arithmetic is a `$(( ... ))` expansion. The expression is kept as a raw
// string; no arithmetic grammar is parsed.
type Arithmetic struct {
	Expression string `json:"expression"`
}

func (*BraceGroup) isCompoundKind() {}
func (*Subshell) isCompoundKind()   {}
func (*For) isCompoundKind()        {}
func (*While) isCompoundKind()      {}
func (*Until) isCompoundKind()      {}
func (*If) isCompoundKind()         {}
func (*Case) isCompoundKind()       {}
func (*Function) isCompoundKind()   {}
func (*Arithmetic) isCompoundKind() {}

// typed wraps a payload with a discriminator for JSON output.
func typed(kind string, v interface{}) ([]byte, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, err
	}
	fields["type"] = kind
	return json.Marshal(fields)
}

func (c *Simple) MarshalJSON() ([]byte, error) {
	type plain Simple
	return typed("simple", (*plain)(c))
}

func (c *Pipeline) MarshalJSON() ([]byte, error) {
	type plain Pipeline
	return typed("pipeline", (*plain)(c))
}

func (c *Compound) MarshalJSON() ([]byte, error) {
	type plain Compound
	return typed("compound", (*plain)(c))
}

func (c *AndOr) MarshalJSON() ([]byte, error) {
	type plain AndOr
	return typed("and_or", (*plain)(c))
}

func (c *List) MarshalJSON() ([]byte, error) {
	type plain List
	return typed("list", (*plain)(c))
}

func (k *BraceGroup) MarshalJSON() ([]byte, error) {
	type plain BraceGroup
	return typed("brace_group", (*plain)(k))
}

func (k *Subshell) MarshalJSON() ([]byte, error) {
	type plain Subshell
	return typed("subshell", (*plain)(k))
}

func (k *For) MarshalJSON() ([]byte, error) {
	type plain For
	return typed("for", (*plain)(k))
}

func (k *While) MarshalJSON() ([]byte, error) {
	type plain While
	return typed("while", (*plain)(k))
}

func (k *Until) MarshalJSON() ([]byte, error) {
	type plain Until
	return typed("until", (*plain)(k))
}

func (k *If) MarshalJSON() ([]byte, error) {
	type plain If
	return typed("if", (*plain)(k))
}

func (k *Case) MarshalJSON() ([]byte, error) {
	type plain Case
	return typed("case", (*plain)(k))
}

func (k *Function) MarshalJSON() ([]byte, error) {
	type plain Function
	return typed("function", (*plain)(k))
}

func (k *Arithmetic) MarshalJSON() ([]byte, error) {
	type plain Arithmetic
	return typed("arithmetic", (*plain)(k))
}
