package parser

import (
	"github.com/cobalt-lang/cobaltfront/internal/diagnostics"
	"github.com/cobalt-lang/cobaltfront/internal/token"
)

// Split is the delimiter-balanced splitter shared by the group/block parser
// (§4.E), the binary-operator parser (§4.H), and the top-level driver
// (§4.J). It walks toks left to right tracking () [] {} nesting depth and
// splits at top-level occurrences of sep. An unmatched closing delimiter at
// depth zero aborts the scan with the matching 251/253/255 diagnostic and
// returns whatever prefix was successfully split; an opener that never
// closes produces its own 250/252/254 diagnostic once the whole slice has
// been walked.
func Split(toks []token.Token, sep byte) ([][]token.Token, []*diagnostics.Diagnostic) {
	var (
		parts []([]token.Token)
		diags []*diagnostics.Diagnostic
		depth int
		start int
		stack []token.Token
	)
	for i, t := range toks {
		if t.Kind != token.SPECIAL {
			continue
		}
		switch t.Ch {
		case '(', '[', '{':
			depth++
			stack = append(stack, t)
		case ')':
			if depth == 0 {
				diags = append(diags, diagnostics.New(diagnostics.ErrUnmatchedParen, t))
				return append(parts, toks[start:i]), diags
			}
			depth--
			stack = stack[:len(stack)-1]
		case ']':
			if depth == 0 {
				diags = append(diags, diagnostics.New(diagnostics.ErrUnmatchedBrack, t))
				return append(parts, toks[start:i]), diags
			}
			depth--
			stack = stack[:len(stack)-1]
		case '}':
			if depth == 0 {
				diags = append(diags, diagnostics.New(diagnostics.ErrUnmatchedBrace, t))
				return append(parts, toks[start:i]), diags
			}
			depth--
			stack = stack[:len(stack)-1]
		default:
			if t.Ch == sep && depth == 0 {
				parts = append(parts, toks[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, toks[start:])
	if depth > 0 {
		opener := stack[len(stack)-1]
		code := diagnostics.ErrUnclosedParen
		switch opener.Ch {
		case '[':
			code = diagnostics.ErrUnclosedBrack
		case '{':
			code = diagnostics.ErrUnclosedBrace
		}
		diags = append(diags, diagnostics.New(code, opener))
	}
	return parts, diags
}

// depthDelta reports how a delimiter token changes nesting depth: +1 for an
// opener, -1 for a closer, 0 otherwise.
func depthDelta(t token.Token) int {
	if t.Kind != token.SPECIAL {
		return 0
	}
	switch t.Ch {
	case '(', '[', '{':
		return 1
	case ')', ']', '}':
		return -1
	}
	return 0
}
