package parser

import (
	"github.com/cobalt-lang/cobaltfront/internal/ast"
	"github.com/cobalt-lang/cobaltfront/internal/config"
	"github.com/cobalt-lang/cobaltfront/internal/diagnostics"
	"github.com/cobalt-lang/cobaltfront/internal/token"
)

// ParseUnary is the prefix/postfix stripper (§4.G). It peels whitelisted
// unary operators outside-in from both ends; a non-whitelisted operator at
// either end is reported and discarded, without consuming the expression
// underneath. What remains once neither end carries an operator is handed
// to the call parser (§4.F).
func ParseUnary(toks []token.Token) (ast.Expression, []*diagnostics.Diagnostic) {
	if len(toks) == 0 {
		return &ast.NullLiteral{}, nil
	}
	var diags []*diagnostics.Diagnostic

	for len(toks) > 0 {
		first := toks[0]
		if first.Kind == token.OPERATOR {
			if config.COBALTPreOps[first.Text] {
				inner, innerDiags := ParseUnary(toks[1:])
				diags = append(diags, innerDiags...)
				return &ast.PrefixExpr{ExprBase: ast.ExprBase{Token: first}, Op: first.Text, Expr: inner}, diags
			}
			diags = append(diags, diagnostics.New(diagnostics.ErrNonUnaryPrefix, first, first.Text))
			toks = toks[1:]
			continue
		}

		last := toks[len(toks)-1]
		if last.Kind == token.OPERATOR {
			if config.COBALTPostOps[last.Text] {
				inner, innerDiags := ParseUnary(toks[:len(toks)-1])
				diags = append(diags, innerDiags...)
				return &ast.PostfixExpr{ExprBase: ast.ExprBase{Token: last}, Op: last.Text, Expr: inner}, diags
			}
			diags = append(diags, diagnostics.New(diagnostics.ErrNonUnaryPostfix, last, last.Text))
			toks = toks[:len(toks)-1]
			continue
		}

		break
	}

	expr, callDiags := ParseCall(toks)
	diags = append(diags, callDiags...)
	return expr, diags
}
