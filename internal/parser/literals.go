package parser

import (
	"github.com/cobalt-lang/cobaltfront/internal/ast"
	"github.com/cobalt-lang/cobaltfront/internal/diagnostics"
	"github.com/cobalt-lang/cobaltfront/internal/token"
)

// ParseAtom is the literal/atom parser (§4.D), the innermost stage of the
// expression pipeline. It accepts exactly one leading token; any trailing
// tokens beyond an optional identifier suffix become one diagnostic each,
// with kind-specific message text (see the design notes on the
// "after integer literal" message bug).
func ParseAtom(toks []token.Token) (ast.Expression, []*diagnostics.Diagnostic) {
	if len(toks) == 0 {
		return &ast.NullLiteral{}, nil
	}
	first := toks[0]

	switch first.Kind {
	case token.INT:
		return finishLiteralAtom(toks, func(suffix string) ast.Expression {
			return &ast.IntLiteral{ExprBase: ast.ExprBase{Token: first}, Value: first.IntVal, Suffix: suffix}
		}, diagnostics.ErrTrailingAfterInt)
	case token.FLOAT:
		return finishLiteralAtom(toks, func(suffix string) ast.Expression {
			return &ast.FloatLiteral{ExprBase: ast.ExprBase{Token: first}, Value: first.FloatVal, Suffix: suffix}
		}, diagnostics.ErrTrailingAfterFloat)
	case token.CHAR:
		return finishLiteralAtom(toks, func(suffix string) ast.Expression {
			return &ast.CharLiteral{ExprBase: ast.ExprBase{Token: first}, Value: first.CharVal, Suffix: suffix}
		}, diagnostics.ErrTrailingAfterChar)
	case token.STR:
		return finishLiteralAtom(toks, func(suffix string) ast.Expression {
			return &ast.StringLiteral{ExprBase: ast.ExprBase{Token: first}, Value: first.Bytes, Suffix: suffix}
		}, diagnostics.ErrTrailingAfterString)
	case token.MACRO:
		return &ast.Intrinsic{ExprBase: ast.ExprBase{Token: first}, Name: first.MacroName, Args: first.MacroArgs}, strayDiags(toks[1:], nil)
	case token.IDENTIFIER:
		if first.Text == "null" && len(toks) == 1 {
			return &ast.NullLiteral{ExprBase: ast.ExprBase{Token: first}}, nil
		}
		name, consumed, diags := ParsePlainPath(toks, token.TerminatorSet(""))
		return &ast.VarGet{ExprBase: ast.ExprBase{Token: first}, Path: name}, strayDiags(toks[consumed:], diags)
	case token.SPECIAL:
		if first.Ch == '.' {
			name, consumed, diags := ParsePlainPath(toks, token.TerminatorSet(""))
			return &ast.VarGet{ExprBase: ast.ExprBase{Token: first}, Path: name}, strayDiags(toks[consumed:], diags)
		}
	}

	diags := []*diagnostics.Diagnostic{diagnostics.New(diagnostics.ErrStrayStatementToken, first, first.String())}
	for _, t := range toks[1:] {
		diags = append(diags, diagnostics.New(diagnostics.ErrStrayStatementToken, t, t.String()))
	}
	return &ast.NullLiteral{ExprBase: ast.ExprBase{Token: first}}, diags
}

// strayDiags appends one diagnostic per token in rest to diags.
func strayDiags(rest []token.Token, diags []*diagnostics.Diagnostic) []*diagnostics.Diagnostic {
	for _, t := range rest {
		diags = append(diags, diagnostics.New(diagnostics.ErrStrayStatementToken, t, t.String()))
	}
	return diags
}

// finishLiteralAtom consumes the leading literal token, an optional
// identifier suffix, and reports every remaining token as a diagnostic with
// literal-kind-specific text.
func finishLiteralAtom(toks []token.Token, build func(suffix string) ast.Expression, trailingCode diagnostics.Code) (ast.Expression, []*diagnostics.Diagnostic) {
	suffix := ""
	i := 1
	if i < len(toks) && toks[i].Kind == token.IDENTIFIER {
		suffix = toks[i].Text
		i++
	}
	node := build(suffix)
	var diags []*diagnostics.Diagnostic
	for ; i < len(toks); i++ {
		diags = append(diags, diagnostics.New(trailingCode, toks[i], toks[i].String()))
	}
	return node, diags
}
