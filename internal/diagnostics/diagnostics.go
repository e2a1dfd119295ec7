// Package diagnostics defines the parser's error-collection record. Every
// recursive-descent contract in internal/parser returns diagnostics instead
// of raising; this package only renders them.
package diagnostics

import (
	"fmt"

	"github.com/cobalt-lang/cobaltfront/internal/token"
)

// Phase names the pipeline stage a diagnostic originated from. The parser
// only ever emits PhaseParser, but the shape is shared with whatever
// consumes the AST next.
type Phase string

const (
	PhaseParser Phase = "parser"
	PhaseType   Phase = "type"
)

// Code ranges: 2xx parser, 29x type parser, per the external interface.
type Code uint16

const (
	ErrUnknownTopLevel        Code = 201
	ErrStrayStatementToken    Code = 202
	ErrTrailingStatementToken Code = 203

	ErrConsecutivePeriod     Code = 211
	ErrConsecutiveIdentifier Code = 212

	ErrUnrecognizedTypeToken Code = 220

	ErrMissingParamColon     Code = 240
	ErrDefaultParamOrder     Code = 241
	ErrMissingReturnType     Code = 243
	ErrMissingDefOperand     Code = 233
	ErrFunctionBodyNeedsEq   Code = 245

	ErrUnclosedParen  Code = 250
	ErrUnmatchedParen Code = 251
	ErrUnclosedBrack  Code = 252
	ErrUnmatchedBrack Code = 253
	ErrUnclosedBrace  Code = 254
	ErrUnmatchedBrace Code = 255

	ErrNonUnaryPrefix  Code = 260
	ErrNonUnaryPostfix Code = 261

	ErrTrailingAfterInt    Code = 270
	ErrTrailingAfterFloat  Code = 271
	ErrTrailingAfterChar   Code = 272
	ErrTrailingAfterString Code = 273
	ErrModuleInStatement   Code = 275
	ErrGlobalNameInLocalFn Code = 276

	ErrMissingSemicolon    Code = 280
	ErrMisplacedAnnotation Code = 281

	ErrBadNumericWidth Code = 290
	ErrMissingType      Code = 291
)

var messages = map[Code]string{
	ErrUnknownTopLevel:        "unrecognized top-level token %s",
	ErrStrayStatementToken:    "stray token %s in statement position",
	ErrTrailingStatementToken: "trailing token %s before ';'",

	ErrConsecutivePeriod:     "consecutive '.' in path",
	ErrConsecutiveIdentifier: "consecutive identifier %s in path",

	ErrUnrecognizedTypeToken: "unrecognized token %s inside type",

	ErrMissingParamColon:  "expected ':' after parameter name, got %s",
	ErrDefaultParamOrder:  "parameter %s has no default but follows a defaulted parameter",
	ErrMissingReturnType:  "expected return type after ':'",
	ErrMissingDefOperand:  "definition needs a type or a value",
	ErrFunctionBodyNeedsEq: "function body should be introduced with '=', not '{'",

	ErrUnclosedParen:  "unclosed '('",
	ErrUnmatchedParen: "unmatched ')'",
	ErrUnclosedBrack:  "unclosed '['",
	ErrUnmatchedBrack: "unmatched ']'",
	ErrUnclosedBrace:  "unclosed '{'",
	ErrUnmatchedBrace: "unmatched '}'",

	ErrNonUnaryPrefix:  "operator %s is not a valid prefix operator",
	ErrNonUnaryPostfix: "operator %s is not a valid postfix operator",

	ErrTrailingAfterInt:    "unexpected token %s after integer literal",
	ErrTrailingAfterFloat:  "unexpected token %s after float literal",
	ErrTrailingAfterChar:   "unexpected token %s after char literal",
	ErrTrailingAfterString: "unexpected token %s after string literal",
	ErrModuleInStatement:   "'module' is not allowed inside a statement",
	ErrGlobalNameInLocalFn: "global name %s not allowed in local definition",

	ErrMissingSemicolon:    "expected ';' before next expression",
	ErrMisplacedAnnotation: "annotation is not attached to a definition",

	ErrBadNumericWidth: "could not parse numeric width %q",
	ErrMissingType:      "expected a type",
}

// Note is a secondary pointer attached to a Diagnostic, e.g. "first default
// here" for error 241.
type Note struct {
	Loc     token.Location
	Message string
}

// Diagnostic is the parser's error record: {location, code, message, notes}.
type Diagnostic struct {
	Loc   token.Location
	Code  Code
	Phase Phase
	Args  []interface{}
	Notes []Note
}

// Error satisfies the error interface so Diagnostic can be used wherever
// plain Go errors are expected (tests, CLI reporting).
func (d *Diagnostic) Error() string {
	template, ok := messages[d.Code]
	if !ok {
		return fmt.Sprintf("%s: unknown diagnostic %d", d.Loc, d.Code)
	}
	msg := fmt.Sprintf(template, d.Args...)
	phase := d.Phase
	if phase == "" {
		phase = PhaseParser
	}
	result := fmt.Sprintf("%s: [%s %d] %s", d.Loc, phase, d.Code, msg)
	for _, n := range d.Notes {
		result += fmt.Sprintf("\n  note: %s: %s", n.Loc, n.Message)
	}
	return result
}

// New builds a parser-phase diagnostic at tok's location.
func New(code Code, tok token.Token, args ...interface{}) *Diagnostic {
	return &Diagnostic{Loc: tok.Loc, Code: code, Phase: PhaseParser, Args: args}
}

// NewAt builds a parser-phase diagnostic at an explicit location, used when
// the triggering condition is "end of input" and no token is available —
// see the last_seen carry described in the design notes.
func NewAt(code Code, loc token.Location, args ...interface{}) *Diagnostic {
	return &Diagnostic{Loc: loc, Code: code, Phase: PhaseParser, Args: args}
}

// WithNote attaches a secondary location/message pair and returns the same
// diagnostic for chaining at the call site.
func (d *Diagnostic) WithNote(loc token.Location, message string) *Diagnostic {
	d.Notes = append(d.Notes, Note{Loc: loc, Message: message})
	return d
}
