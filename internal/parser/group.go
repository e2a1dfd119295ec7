package parser

import (
	"github.com/cobalt-lang/cobaltfront/internal/ast"
	"github.com/cobalt-lang/cobaltfront/internal/diagnostics"
	"github.com/cobalt-lang/cobaltfront/internal/token"
)

// ParseGroupOrBlock is the group/block parser (§4.E). A leading '(' strips
// to a parenthesized expression or comma-separated Group; a leading '{'
// scans its interior on top-level ';' (component A) into a shared ast.Block,
// used identically for function bodies and block expressions. Any other
// leading token falls through to the atom parser (§4.D). This is a
// whole-slice component: tokens left over past the matched closing
// delimiter become diagnostics rather than being returned unconsumed.
func ParseGroupOrBlock(toks []token.Token) (ast.Expression, []*diagnostics.Diagnostic) {
	if len(toks) == 0 {
		return &ast.NullLiteral{}, nil
	}
	first := toks[0]
	switch {
	case first.IsSpecial('('):
		return parseParenGroup(toks)
	case first.IsSpecial('{'):
		block, diags := parseBlockFromSlice(toks)
		return block, diags
	default:
		return ParseAtom(toks)
	}
}

func parseParenGroup(toks []token.Token) (ast.Expression, []*diagnostics.Diagnostic) {
	first := toks[0]
	closeIdx := matchingClose(toks)
	if closeIdx == -1 {
		diags := []*diagnostics.Diagnostic{diagnostics.New(diagnostics.ErrUnclosedParen, first)}
		if len(toks) == 1 {
			return &ast.NullLiteral{ExprBase: ast.ExprBase{Token: first}}, diags
		}
		expr, childDiags := ParseExpression(toks[1:])
		return expr, append(diags, childDiags...)
	}

	var diags []*diagnostics.Diagnostic
	inner := toks[1:closeIdx]
	var expr ast.Expression
	if len(inner) == 0 {
		expr = &ast.Group{ExprBase: ast.ExprBase{Token: first}}
	} else {
		parts, splitDiags := Split(inner, ',')
		diags = append(diags, splitDiags...)
		if len(parts) == 1 {
			var eDiags []*diagnostics.Diagnostic
			expr, eDiags = ParseExpression(parts[0])
			diags = append(diags, eDiags...)
		} else {
			elems := make([]ast.Expression, 0, len(parts))
			for _, p := range parts {
				if len(p) == 0 {
					continue
				}
				e, eDiags := ParseExpression(p)
				diags = append(diags, eDiags...)
				elems = append(elems, e)
			}
			expr = &ast.Group{ExprBase: ast.ExprBase{Token: first}, Elements: elems}
		}
	}

	for _, t := range toks[closeIdx+1:] {
		diags = append(diags, diagnostics.New(diagnostics.ErrStrayStatementToken, t, t.String()))
	}
	return expr, diags
}

func parseBlockFromSlice(toks []token.Token) (*ast.Block, []*diagnostics.Diagnostic) {
	first := toks[0]
	closeIdx := matchingClose(toks)
	if closeIdx == -1 {
		return &ast.Block{ExprBase: ast.ExprBase{Token: first}},
			[]*diagnostics.Diagnostic{diagnostics.New(diagnostics.ErrUnclosedBrace, first)}
	}

	inner := toks[1:closeIdx]
	block, diags := ParseBlockBody(first, inner)
	for _, t := range toks[closeIdx+1:] {
		diags = append(diags, diagnostics.New(diagnostics.ErrStrayStatementToken, t, t.String()))
	}
	return block, diags
}

// ParseBlockBody builds a Block from the tokens strictly between a matched
// '{' '}' pair, splitting on top-level ';' (component A) and parsing each
// resulting slice as a statement (component I). Shared by function bodies
// and block expressions alike.
func ParseBlockBody(openTok token.Token, inner []token.Token) (*ast.Block, []*diagnostics.Diagnostic) {
	parts, diags := Split(inner, ';')
	var stmts []ast.Statement
	for _, p := range parts {
		if len(p) == 0 {
			continue
		}
		stmt, sDiags := ParseStatement(p)
		diags = append(diags, sDiags...)
		stmts = append(stmts, stmt)
	}
	return &ast.Block{ExprBase: ast.ExprBase{Token: openTok}, Statements: stmts}, diags
}

// matchingClose returns the index within toks of the delimiter that closes
// the opener at toks[0], or -1 if none closes before the slice ends.
func matchingClose(toks []token.Token) int {
	depth := 0
	for i, t := range toks {
		depth += depthDelta(t)
		if depth == 0 {
			return i
		}
	}
	return -1
}
