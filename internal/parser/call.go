package parser

import (
	"github.com/cobalt-lang/cobaltfront/internal/ast"
	"github.com/cobalt-lang/cobaltfront/internal/diagnostics"
	"github.com/cobalt-lang/cobaltfront/internal/token"
)

// ParseCall is the call parser (§4.F). When the last token is ')', it scans
// backward for the matching '('; everything before that becomes the call
// target (re-entering the full expression pipeline), everything between is
// split on top-level ',' (component A) into argument expressions. Anything
// else, or a paren that turns out to belong to a plain group, falls through
// to the group/block parser (§4.E).
func ParseCall(toks []token.Token) (ast.Expression, []*diagnostics.Diagnostic) {
	if len(toks) == 0 {
		return &ast.NullLiteral{}, nil
	}
	n := len(toks)
	if !toks[n-1].IsSpecial(')') {
		return ParseGroupOrBlock(toks)
	}

	openIdx := matchingOpenFromEnd(toks)
	if openIdx <= 0 {
		return ParseGroupOrBlock(toks)
	}

	targetToks := toks[:openIdx]
	argToks := toks[openIdx+1 : n-1]

	target, diags := ParseExpression(targetToks)

	var args []ast.Expression
	if len(argToks) > 0 {
		parts, splitDiags := Split(argToks, ',')
		diags = append(diags, splitDiags...)
		for _, p := range parts {
			if len(p) == 0 {
				continue
			}
			a, aDiags := ParseExpression(p)
			diags = append(diags, aDiags...)
			args = append(args, a)
		}
	}

	return &ast.CallExpr{ExprBase: ast.ExprBase{Token: toks[openIdx]}, Target: target, Args: args}, diags
}

// matchingOpenFromEnd scans backward from the closing ')' at the end of toks
// and returns the index of the '(' that opens it, or -1 if the nesting never
// balances.
func matchingOpenFromEnd(toks []token.Token) int {
	depth := 0
	for i := len(toks) - 1; i >= 0; i-- {
		switch {
		case toks[i].IsSpecial(')'):
			depth++
		case toks[i].IsSpecial('('):
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
