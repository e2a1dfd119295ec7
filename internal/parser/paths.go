package parser

import (
	"github.com/cobalt-lang/cobaltfront/internal/ast"
	"github.com/cobalt-lang/cobaltfront/internal/diagnostics"
	"github.com/cobalt-lang/cobaltfront/internal/token"
)

// ParsePlainPath parses a dotted identifier chain, halting at the first
// token in term. Reports consecutive-period (211) and consecutive-identifier
// (212) with hint notes, then keeps accumulating. Returns the number of
// tokens consumed from the front of toks.
func ParsePlainPath(toks []token.Token, term token.TerminatorSet) (ast.DottedName, int, []*diagnostics.Diagnostic) {
	var diags []*diagnostics.Diagnostic
	var startTok token.Token
	if len(toks) > 0 {
		startTok = toks[0]
	}

	i := 0
	global := false
	if i < len(toks) && toks[i].IsSpecial('.') {
		global = true
		i++
	}

	var ids []string
	lastWasIdent := false
	lastWasDot := global
	for i < len(toks) {
		t := toks[i]
		if term.Contains(t) {
			break
		}
		switch {
		case t.Kind == token.IDENTIFIER:
			if lastWasIdent {
				diags = append(diags, diagnostics.New(diagnostics.ErrConsecutiveIdentifier, t, t.Text).
					WithNote(t.Loc, "expected '.' before this identifier"))
			}
			ids = append(ids, t.Text)
			lastWasIdent, lastWasDot = true, false
			i++
		case t.IsSpecial('.'):
			if lastWasDot {
				diags = append(diags, diagnostics.New(diagnostics.ErrConsecutivePeriod, t).
					WithNote(t.Loc, "remove the extra '.'"))
			}
			lastWasDot, lastWasIdent = true, false
			i++
		default:
			return ast.DottedName{Token: startTok, IDs: ids, Global: global}, i, diags
		}
	}
	return ast.DottedName{Token: startTok, IDs: ids, Global: global}, i, diags
}

// ParseCompoundPath parses an import-style dotted path: in addition to plain
// identifier segments, a `*` operator becomes a glob segment, fusing onto an
// immediately preceding identifier or glob segment (textual concatenation)
// rather than forming a new segment. Terminates at `;` and, in nested
// context, also at `,` or `}` via term.
func ParseCompoundPath(toks []token.Token, term token.TerminatorSet) (ast.CompoundDottedName, int, []*diagnostics.Diagnostic) {
	var diags []*diagnostics.Diagnostic
	var startTok token.Token
	if len(toks) > 0 {
		startTok = toks[0]
	}

	i := 0
	global := false
	if i < len(toks) && toks[i].IsSpecial('.') {
		global = true
		i++
	}

	var segs []ast.CompoundSegment
	lastWasIdentOrGlob := false
	lastWasDot := global
	for i < len(toks) {
		t := toks[i]
		if term.Contains(t) {
			break
		}
		switch {
		case t.Kind == token.IDENTIFIER:
			if lastWasIdentOrGlob {
				diags = append(diags, diagnostics.New(diagnostics.ErrConsecutiveIdentifier, t, t.Text).
					WithNote(t.Loc, "expected '.' before this identifier"))
			}
			segs = append(segs, ast.IdentSegment{Name: t.Text})
			lastWasIdentOrGlob, lastWasDot = true, false
			i++
		case t.IsSpecial('.'):
			if lastWasDot {
				diags = append(diags, diagnostics.New(diagnostics.ErrConsecutivePeriod, t).
					WithNote(t.Loc, "remove the extra '.'"))
			}
			lastWasDot, lastWasIdentOrGlob = true, false
			i++
		case t.IsOperatorText("*"):
			if lastWasIdentOrGlob && len(segs) > 0 {
				switch s := segs[len(segs)-1].(type) {
				case ast.IdentSegment:
					segs[len(segs)-1] = ast.GlobSegment{Pattern: s.Name + "*"}
				case ast.GlobSegment:
					segs[len(segs)-1] = ast.GlobSegment{Pattern: s.Pattern + "*"}
				default:
					segs = append(segs, ast.GlobSegment{Pattern: "*"})
				}
			} else {
				segs = append(segs, ast.GlobSegment{Pattern: "*"})
			}
			lastWasIdentOrGlob, lastWasDot = true, false
			i++
		default:
			return ast.CompoundDottedName{Token: startTok, Segments: segs, Global: global}, i, diags
		}
	}
	return ast.CompoundDottedName{Token: startTok, Segments: segs, Global: global}, i, diags
}
