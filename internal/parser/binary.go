package parser

import (
	"github.com/cobalt-lang/cobaltfront/internal/ast"
	"github.com/cobalt-lang/cobaltfront/internal/config"
	"github.com/cobalt-lang/cobaltfront/internal/diagnostics"
	"github.com/cobalt-lang/cobaltfront/internal/token"
)

// ParseExpression is the expression pipeline's single entry point
// (H -> G -> F -> E -> D). Callers throughout the parser package route any
// expression-shaped token slice through this function rather than any one
// stage directly.
func ParseExpression(toks []token.Token) (ast.Expression, []*diagnostics.Diagnostic) {
	if len(toks) == 0 {
		return &ast.NullLiteral{}, nil
	}
	return parseBinaryGroup(toks, 0)
}

// parseBinaryGroup is the binary-operator parser (§4.H). It walks
// config.COBALTBinOps weakest-binding group first; within a group it never
// splits at position 0 or the last position, and never descends into nested
// delimiters (component A's depth tracking). The first group with no
// top-level match at all falls through to the next group, and the strongest
// group bottoms out at the unary stripper (§4.G).
func parseBinaryGroup(toks []token.Token, groupIdx int) (ast.Expression, []*diagnostics.Diagnostic) {
	if groupIdx >= len(config.COBALTBinOps) {
		return ParseUnary(toks)
	}
	group := config.COBALTBinOps[groupIdx]
	splitAt := findBinOpSplit(toks, group)
	if splitAt == -1 {
		return parseBinaryGroup(toks, groupIdx+1)
	}

	opTok := toks[splitAt]
	var lhs, rhs ast.Expression
	var lDiags, rDiags []*diagnostics.Diagnostic
	if group.Assoc == config.Rtl {
		lhs, lDiags = parseBinaryGroup(toks[:splitAt], groupIdx+1)
		rhs, rDiags = parseBinaryGroup(toks[splitAt+1:], groupIdx)
	} else {
		lhs, lDiags = parseBinaryGroup(toks[:splitAt], groupIdx)
		rhs, rDiags = parseBinaryGroup(toks[splitAt+1:], groupIdx+1)
	}

	diags := append(append([]*diagnostics.Diagnostic{}, lDiags...), rDiags...)
	return &ast.BinOpExpr{ExprBase: ast.ExprBase{Token: opTok}, Op: opTok.Text, Lhs: lhs, Rhs: rhs}, diags
}

// findBinOpSplit locates the split point for one precedence group: for a
// left-associative group it returns the rightmost top-level match (so the
// left side keeps re-splitting on the same group, building a left-leaning
// tree); for a right-associative group it returns the leftmost, so the
// right side re-splits instead.
func findBinOpSplit(toks []token.Token, group config.PrecedenceGroup) int {
	depth := 0
	found := -1
	for i, t := range toks {
		depth += depthDelta(t)
		if depth != 0 {
			continue
		}
		if i == 0 || i == len(toks)-1 {
			continue
		}
		if t.Kind != token.OPERATOR || !containsOp(group.Ops, t.Text) {
			continue
		}
		if group.Assoc == config.Rtl {
			return i
		}
		found = i
	}
	return found
}

func containsOp(ops []string, text string) bool {
	for _, o := range ops {
		if o == text {
			return true
		}
	}
	return false
}
