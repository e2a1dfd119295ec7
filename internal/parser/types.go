package parser

import (
	"strconv"

	"github.com/cobalt-lang/cobaltfront/internal/ast"
	"github.com/cobalt-lang/cobaltfront/internal/config"
	"github.com/cobalt-lang/cobaltfront/internal/diagnostics"
	"github.com/cobalt-lang/cobaltfront/internal/token"
)

// typeBaseTerm is the terminator set the base-path segment of a type stops
// at: any token that could start a suffix, or any of the caller's own
// terminators, ends the base.
var typeBaseTerm = token.TerminatorSet("&*^[:,;)}=")

// ParseType parses a type expression: base suffix* (§4.C). It returns the
// number of tokens consumed from the front of toks.
func ParseType(toks []token.Token) (ast.Type, int, []*diagnostics.Diagnostic) {
	var diags []*diagnostics.Diagnostic
	if len(toks) == 0 {
		return &ast.ErrorType{}, 0, []*diagnostics.Diagnostic{
			diagnostics.New(diagnostics.ErrMissingType, token.Token{}),
		}
	}

	base, consumed, baseDiags := parseTypeBase(toks)
	diags = append(diags, baseDiags...)
	i := consumed

	for i < len(toks) {
		t := toks[i]
		switch {
		case t.Kind == token.OPERATOR && config.TypeSuffixOps[t.Text]:
			base = applySuffixOp(base, t.Text, false, t)
			i++
		case t.IsKeyword("const") || t.IsKeyword("mut"):
			mut := t.IsKeyword("mut")
			qualTok := t
			if i+1 < len(toks) && toks[i+1].Kind == token.OPERATOR && config.TypeSuffixOps[toks[i+1].Text] {
				base = applySuffixOp(base, toks[i+1].Text, mut, qualTok)
				i += 2
			} else {
				diags = append(diags, diagnostics.New(diagnostics.ErrUnrecognizedTypeToken, t, t.String()))
				i++
				return base, i, diags
			}
		case t.IsSpecial('['):
			depth := 1
			closeIdx := -1
			for j := i + 1; j < len(toks); j++ {
				depth += depthDelta(toks[j])
				if depth == 0 {
					closeIdx = j
					break
				}
			}
			if closeIdx == -1 {
				diags = append(diags, diagnostics.New(diagnostics.ErrUnclosedBrack, t))
				return base, i, diags
			}
			inner := toks[i+1 : closeIdx]
			if len(inner) == 0 {
				base = &ast.UnsizedArrayType{TypeBase: ast.TypeBase{Token: t}, Inner: base}
			} else {
				sizeExpr, exprDiags := ParseExpression(inner)
				diags = append(diags, exprDiags...)
				base = &ast.SizedArrayType{TypeBase: ast.TypeBase{Token: t}, Inner: base, Size: sizeExpr}
			}
			i = closeIdx + 1
		default:
			return base, i, diags
		}
	}
	return base, i, diags
}

// parseTypeBase parses the `base` production: a reserved numeric/primitive
// name or a dotted path. Returns the consumed token count.
func parseTypeBase(toks []token.Token) (ast.Type, int, []*diagnostics.Diagnostic) {
	first := toks[0]
	if first.Kind == token.IDENTIFIER {
		if w, ok, isInt := parseWidthName(first.Text); ok {
			if w < 0 {
				return &ast.ErrorType{TypeBase: ast.TypeBase{Token: first}}, 1, []*diagnostics.Diagnostic{
					diagnostics.New(diagnostics.ErrBadNumericWidth, first, first.Text),
				}
			}
			if isInt {
				return &ast.IntType{TypeBase: ast.TypeBase{Token: first}, Width: w}, 1, nil
			}
			return &ast.UIntType{TypeBase: ast.TypeBase{Token: first}, Width: w}, 1, nil
		}
		switch first.Text {
		case "isize":
			return &ast.ISizeType{TypeBase: ast.TypeBase{Token: first}}, 1, nil
		case "usize":
			return &ast.USizeType{TypeBase: ast.TypeBase{Token: first}}, 1, nil
		case "f16":
			return &ast.F16Type{TypeBase: ast.TypeBase{Token: first}}, 1, nil
		case "f32":
			return &ast.F32Type{TypeBase: ast.TypeBase{Token: first}}, 1, nil
		case "f64":
			return &ast.F64Type{TypeBase: ast.TypeBase{Token: first}}, 1, nil
		case "f128":
			return &ast.F128Type{TypeBase: ast.TypeBase{Token: first}}, 1, nil
		case "bool":
			return &ast.BoolType{TypeBase: ast.TypeBase{Token: first}}, 1, nil
		case "null":
			return &ast.NullType{TypeBase: ast.TypeBase{Token: first}}, 1, nil
		}
	}
	if first.Kind == token.IDENTIFIER || first.IsSpecial('.') {
		name, consumed, diags := ParsePlainPath(toks, typeBaseTerm)
		return &ast.OtherType{TypeBase: ast.TypeBase{Token: first}, Name: name}, consumed, diags
	}
	return &ast.ErrorType{TypeBase: ast.TypeBase{Token: first}}, 1, []*diagnostics.Diagnostic{
		diagnostics.New(diagnostics.ErrUnrecognizedTypeToken, first, first.String()),
	}
}

// parseWidthName recognizes iN / uN reserved names: first byte i/u,
// remaining bytes ASCII digits. ok is false when text doesn't match the
// shape at all; when ok is true and w < 0, the digits failed to parse
// (diagnostic 290).
func parseWidthName(text string) (w int, ok bool, isInt bool) {
	if len(text) < 2 {
		return 0, false, false
	}
	lead := text[0]
	if lead != 'i' && lead != 'u' {
		return 0, false, false
	}
	digits := text[1:]
	for k := 0; k < len(digits); k++ {
		if digits[k] < '0' || digits[k] > '9' {
			return 0, false, false
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return -1, true, lead == 'i'
	}
	return n, true, lead == 'i'
}

// applySuffixOp applies one suffix token's meaning onto the accumulating
// type. Doubled forms (&&, **, ^^) apply the named suffix twice, preserving
// the qualifier on both levels. const/mut qualifies only Reference/Pointer;
// Borrow consumes but ignores the qualifier.
func applySuffixOp(base ast.Type, op string, mut bool, tok token.Token) ast.Type {
	wrap := func(t ast.Type) ast.Type {
		switch op[0] {
		case '&':
			return &ast.ReferenceType{TypeBase: ast.TypeBase{Token: tok}, Inner: t, Mut: mut}
		case '*':
			return &ast.PointerType{TypeBase: ast.TypeBase{Token: tok}, Inner: t, Mut: mut}
		case '^':
			return &ast.BorrowType{TypeBase: ast.TypeBase{Token: tok}, Inner: t}
		}
		return t
	}
	result := wrap(base)
	if len(op) == 2 {
		result = wrap(result)
	}
	return result
}
