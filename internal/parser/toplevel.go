package parser

import (
	"github.com/cobalt-lang/cobaltfront/internal/ast"
	"github.com/cobalt-lang/cobaltfront/internal/diagnostics"
	"github.com/cobalt-lang/cobaltfront/internal/token"
)

// ParseTopLevelItems is the top-level driver (§4.J). It shares §4.I's
// keyword dispatch (with isGlobal=true) but additionally understands the
// three `module` forms and reports unrecognized top-level tokens by
// resyncing one token at a time rather than by statement boundary.
//
// When an unmatched '}' is found at top-level depth, parsing stops there:
// the caller receives the items collected so far, the offending token, and
// the unconsumed remainder, matching the "stopped at '}'" sentinel that
// §4.K resumes from.
func ParseTopLevelItems(toks []token.Token) (items []ast.Statement, diags []*diagnostics.Diagnostic, strayBrace *token.Token, remainder []token.Token) {
	for len(toks) > 0 {
		annotations, afterAnn := collectAnnotations(toks)
		if len(afterAnn) == 0 {
			return items, diags, nil, nil
		}
		head := afterAnn[0]

		if head.IsSpecial('}') {
			bt := head
			diags = append(diags, annotationOrphanDiags(annotations, bt)...)
			return items, diags, &bt, afterAnn[1:]
		}

		if head.IsKeyword("module") {
			diags = append(diags, annotationOrphanDiags(annotations, head)...)
			stmt, rest, modDiags := parseModuleDecl(afterAnn)
			diags = append(diags, modDiags...)
			items = append(items, stmt)
			toks = rest
			continue
		}

		isDef := head.IsKeyword("fn") || head.IsKeyword("let") || head.IsKeyword("mut") || head.IsKeyword("const")
		isOtherKeyword := head.IsKeyword("import") || head.IsKeyword("cr")

		if !isDef && !isOtherKeyword {
			diags = append(diags, annotationOrphanDiags(annotations, head)...)
			diags = append(diags, diagnostics.New(diagnostics.ErrUnknownTopLevel, head, head.String()))
			toks = afterAnn[1:]
			continue
		}
		if !isDef {
			diags = append(diags, annotationOrphanDiags(annotations, head)...)
		}

		itemToks, rest, stray := scanTopLevelItem(afterAnn)
		stmt, itemDiags := dispatchDefinition(head, itemToks, annotations, true)
		diags = append(diags, itemDiags...)
		items = append(items, stmt)

		if stray != nil {
			return items, diags, stray, rest
		}
		toks = rest
	}
	return items, diags, nil, nil
}

// resumeTopLevel drives ParseTopLevelItems to exhaustion: every stray
// top-level '}' becomes diagnostic 255, and parsing resumes on the
// remainder. Used both for the whole program (§4.K) and for a module's
// brace-delimited body.
func resumeTopLevel(toks []token.Token) ([]ast.Statement, []*diagnostics.Diagnostic) {
	var items []ast.Statement
	var diags []*diagnostics.Diagnostic
	for {
		batch, batchDiags, stray, rest := ParseTopLevelItems(toks)
		items = append(items, batch...)
		diags = append(diags, batchDiags...)
		if stray == nil {
			return items, diags
		}
		diags = append(diags, diagnostics.New(diagnostics.ErrUnmatchedBrace, *stray))
		toks = rest
	}
}

// annotationOrphanDiags reports every accumulated annotation as misplaced
// (281) when the construct they decorate turns out not to be a definition.
func annotationOrphanDiags(annotations []ast.Annotation, at token.Token) []*diagnostics.Diagnostic {
	var diags []*diagnostics.Diagnostic
	for range annotations {
		diags = append(diags, diagnostics.New(diagnostics.ErrMisplacedAnnotation, at))
	}
	return diags
}

// scanTopLevelItem finds one top-level item's extent: it stops at the first
// depth-zero ';' (consumed) or the first depth-zero '}' (not consumed, the
// stray-brace sentinel), whichever comes first, tracking delimiter nesting
// the same way component A does.
func scanTopLevelItem(toks []token.Token) (item []token.Token, rest []token.Token, strayBrace *token.Token) {
	depth := 0
	for i, t := range toks {
		if t.Kind != token.SPECIAL {
			continue
		}
		switch t.Ch {
		case '(', '[', '{':
			depth++
		case ')', ']':
			depth--
		case '}':
			if depth == 0 {
				bt := t
				return toks[:i], toks[i+1:], &bt
			}
			depth--
		case ';':
			if depth == 0 {
				return toks[:i], toks[i+1:], nil
			}
		}
	}
	return toks, nil, nil
}

// parseModuleDecl parses the three `module` forms (§4.J): `module name;`,
// `module name { ... }`, and `module name = path;`. afterAnn[0] is the
// `module` keyword.
func parseModuleDecl(afterAnn []token.Token) (ast.Statement, []token.Token, []*diagnostics.Diagnostic) {
	modTok := afterAnn[0]
	var diags []*diagnostics.Diagnostic
	i := 1

	name, consumed, nameDiags := ParsePlainPath(afterAnn[i:], token.TerminatorSet(";{="))
	diags = append(diags, nameDiags...)
	i += consumed

	if i >= len(afterAnn) {
		return &ast.ModuleDecl{StmtBase: ast.StmtBase{Token: modTok}, Name: name}, nil, diags
	}

	switch {
	case afterAnn[i].IsSpecial(';'):
		return &ast.ModuleDecl{StmtBase: ast.StmtBase{Token: modTok}, Name: name}, afterAnn[i+1:], diags

	case afterAnn[i].IsSpecial('{'):
		closeIdx := matchingClose(afterAnn[i:])
		if closeIdx == -1 {
			diags = append(diags, diagnostics.New(diagnostics.ErrUnclosedBrace, afterAnn[i]))
			return &ast.ModuleDecl{StmtBase: ast.StmtBase{Token: modTok}, Name: name}, nil, diags
		}
		inner := afterAnn[i+1 : i+closeIdx]
		rest := afterAnn[i+closeIdx+1:]
		items, innerDiags := resumeTopLevel(inner)
		diags = append(diags, innerDiags...)
		return &ast.ModuleDecl{StmtBase: ast.StmtBase{Token: modTok}, Name: name, Body: items}, rest, diags

	case afterAnn[i].IsOperatorText("="):
		i++
		path, pConsumed, pDiags := ParseCompoundPath(afterAnn[i:], token.TerminatorSet(";"))
		diags = append(diags, pDiags...)
		i += pConsumed
		path.Segments = append(path.Segments, ast.GlobSegment{Pattern: "*"})

		rest := afterAnn[i:]
		if i < len(afterAnn) && afterAnn[i].IsSpecial(';') {
			rest = afterAnn[i+1:]
		}
		imp := &ast.ImportStmt{StmtBase: ast.StmtBase{Token: modTok}, Path: path}
		body := []ast.Statement{imp}
		return &ast.ModuleDecl{StmtBase: ast.StmtBase{Token: modTok}, Name: name, Body: body}, rest, diags

	default:
		diags = append(diags, diagnostics.New(diagnostics.ErrMissingSemicolon, afterAnn[i]))
		return &ast.ModuleDecl{StmtBase: ast.StmtBase{Token: modTok}, Name: name}, afterAnn[i:], diags
	}
}
