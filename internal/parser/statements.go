package parser

import (
	"github.com/cobalt-lang/cobaltfront/internal/ast"
	"github.com/cobalt-lang/cobaltfront/internal/diagnostics"
	"github.com/cobalt-lang/cobaltfront/internal/token"
)

// ParseStatement is the statement parser (§4.I). toks is one slice already
// isolated between top-level ';' separators (component A); it does not
// include the ';' itself.
func ParseStatement(toks []token.Token) (ast.Statement, []*diagnostics.Diagnostic) {
	annotations, rest := collectAnnotations(toks)
	if len(rest) == 0 {
		return &ast.NullStmt{StmtBase: ast.StmtBase{Token: firstTok(toks)}}, nil
	}
	head := rest[0]
	if head.IsKeyword("module") {
		return &ast.NullStmt{StmtBase: ast.StmtBase{Token: head}},
			[]*diagnostics.Diagnostic{diagnostics.New(diagnostics.ErrModuleInStatement, head)}
	}
	return dispatchDefinition(head, rest, annotations, false)
}

// collectAnnotations strips leading Macro tokens, recording them as
// annotations for the next definition.
func collectAnnotations(toks []token.Token) ([]ast.Annotation, []token.Token) {
	i := 0
	var annotations []ast.Annotation
	for i < len(toks) && toks[i].Kind == token.MACRO {
		m := toks[i]
		annotations = append(annotations, ast.Annotation{Token: m, Name: m.MacroName, Args: m.MacroArgs})
		i++
	}
	return annotations, toks[i:]
}

func firstTok(toks []token.Token) token.Token {
	if len(toks) > 0 {
		return toks[0]
	}
	return token.Token{Kind: token.EOF}
}

// dispatchDefinition is the shared body of §4.I and §4.J: keyword dispatch
// over { import, fn, let, mut, const, cr }, falling through to a bare
// expression statement otherwise. isGlobal controls VarDef/MutDef's
// IsGlobal flag and whether a multi-segment or rooted name is accepted for
// fn/let/mut/const without the 276 diagnostic.
func dispatchDefinition(head token.Token, rest []token.Token, annotations []ast.Annotation, isGlobal bool) (ast.Statement, []*diagnostics.Diagnostic) {
	switch {
	case head.IsKeyword("import"):
		return parseImportStmt(rest)
	case head.IsKeyword("fn"):
		return parseFnDef(rest, annotations, isGlobal)
	case head.IsKeyword("let"):
		return parseVarLike(rest, annotations, varKindLet, isGlobal)
	case head.IsKeyword("mut"):
		return parseVarLike(rest, annotations, varKindMut, isGlobal)
	case head.IsKeyword("const"):
		return parseVarLike(rest, annotations, varKindConst, isGlobal)
	case head.IsKeyword("cr"):
		var diags []*diagnostics.Diagnostic
		for _, t := range rest[1:] {
			diags = append(diags, diagnostics.New(diagnostics.ErrTrailingStatementToken, t, t.String()))
		}
		return &ast.NullStmt{StmtBase: ast.StmtBase{Token: head}}, diags
	default:
		expr, diags := ParseExpression(rest)
		return &ast.ExprStmt{StmtBase: ast.StmtBase{Token: head}, Expr: expr}, diags
	}
}

func parseImportStmt(rest []token.Token) (ast.Statement, []*diagnostics.Diagnostic) {
	head := rest[0]
	path, consumed, diags := ParseCompoundPath(rest[1:], token.TerminatorSet(""))
	for _, t := range rest[1+consumed:] {
		diags = append(diags, diagnostics.New(diagnostics.ErrTrailingStatementToken, t, t.String()))
	}
	return &ast.ImportStmt{StmtBase: ast.StmtBase{Token: head}, Path: path}, diags
}

// parseFnDef parses `fn name(params): return_type = body;` (the ';' is not
// part of rest). The name is a plain path; a rooted or multi-segment name
// is a local-scope error (276) unless isGlobal.
func parseFnDef(rest []token.Token, annotations []ast.Annotation, isGlobal bool) (ast.Statement, []*diagnostics.Diagnostic) {
	fnTok := rest[0]
	var diags []*diagnostics.Diagnostic
	i := 1

	name, consumed, nameDiags := ParsePlainPath(rest[i:], token.TerminatorSet("("))
	diags = append(diags, nameDiags...)
	i += consumed

	fnName := ""
	if len(name.IDs) > 0 {
		fnName = name.IDs[len(name.IDs)-1]
	}
	if !isGlobal && (name.Global || len(name.IDs) > 1) {
		diags = append(diags, diagnostics.New(diagnostics.ErrGlobalNameInLocalFn, fnTok, fnName))
	}

	if i >= len(rest) || !rest[i].IsSpecial('(') {
		return &ast.FnDef{StmtBase: ast.StmtBase{Token: fnTok}, Name: fnName, Annotations: annotations}, diags
	}

	closeIdx := matchingClose(rest[i:])
	if closeIdx == -1 {
		diags = append(diags, diagnostics.New(diagnostics.ErrUnclosedParen, rest[i]))
		return &ast.FnDef{StmtBase: ast.StmtBase{Token: fnTok}, Name: fnName, Annotations: annotations}, diags
	}
	paramToks := rest[i+1 : i+closeIdx]
	i += closeIdx + 1

	params, paramDiags := parseParamList(paramToks)
	diags = append(diags, paramDiags...)

	var retType ast.Type
	hasColon := i < len(rest) && rest[i].IsSpecial(':')
	if !hasColon && i >= len(rest) {
		diags = append(diags, diagnostics.New(diagnostics.ErrMissingReturnType, fnTok))
	}
	if hasColon {
		i++
		if i >= len(rest) || rest[i].IsOperatorText("=") || rest[i].IsSpecial('{') {
			diags = append(diags, diagnostics.New(diagnostics.ErrMissingReturnType, fnTok))
		} else {
			var rConsumed int
			var rDiags []*diagnostics.Diagnostic
			retType, rConsumed, rDiags = ParseType(rest[i:])
			diags = append(diags, rDiags...)
			i += rConsumed
		}
	}

	var body *ast.Block
	switch {
	case i < len(rest) && rest[i].IsOperatorText("="):
		i++
		if i < len(rest) {
			b, bDiags := ParseExpression(rest[i:])
			diags = append(diags, bDiags...)
			body = asBlock(rest[i], b)
			i = len(rest)
		}
	case i < len(rest) && rest[i].IsSpecial('{'):
		diags = append(diags, diagnostics.New(diagnostics.ErrFunctionBodyNeedsEq, rest[i]).
			WithNote(rest[i].Loc, "insert '=' before the '{'"))
		b, bDiags := ParseGroupOrBlock(rest[i:])
		diags = append(diags, bDiags...)
		body = asBlock(rest[i], b)
		i = len(rest)
	}

	for ; i < len(rest); i++ {
		diags = append(diags, diagnostics.New(diagnostics.ErrTrailingStatementToken, rest[i], rest[i].String()))
	}

	return &ast.FnDef{
		StmtBase:    ast.StmtBase{Token: fnTok},
		Name:        fnName,
		ReturnType:  retType,
		Params:      params,
		Body:        body,
		Annotations: annotations,
	}, diags
}

// asBlock coerces an expression parsed where a function body was expected
// into a Block: a genuine block expression passes through, anything else is
// wrapped as its sole statement.
func asBlock(tok token.Token, e ast.Expression) *ast.Block {
	if b, ok := e.(*ast.Block); ok {
		return b
	}
	return &ast.Block{
		ExprBase:   ast.ExprBase{Token: tok},
		Statements: []ast.Statement{&ast.ExprStmt{StmtBase: ast.StmtBase{Token: tok}, Expr: e}},
	}
}

func parseParamList(toks []token.Token) ([]ast.Parameter, []*diagnostics.Diagnostic) {
	if len(toks) == 0 {
		return nil, nil
	}
	parts, diags := Split(toks, ',')
	var params []ast.Parameter
	var firstDefaultLoc *token.Location
	for _, p := range parts {
		if len(p) == 0 {
			continue
		}
		param, pDiags := parseParameter(p)
		diags = append(diags, pDiags...)
		if param.Default != nil {
			if firstDefaultLoc == nil {
				loc := p[0].Loc
				for _, t := range p {
					if t.IsOperatorText("=") {
						loc = t.Loc
						break
					}
				}
				firstDefaultLoc = &loc
			}
		} else if firstDefaultLoc != nil {
			diags = append(diags, diagnostics.New(diagnostics.ErrDefaultParamOrder, p[0], param.Name).
				WithNote(*firstDefaultLoc, "first default parameter here"))
		}
		params = append(params, param)
	}
	return params, diags
}

func parseParameter(toks []token.Token) (ast.Parameter, []*diagnostics.Diagnostic) {
	var diags []*diagnostics.Diagnostic
	i := 0
	kind := ast.ParamNormal
	if toks[i].IsKeyword("mut") {
		kind = ast.ParamMutable
		i++
	} else if toks[i].IsKeyword("const") {
		kind = ast.ParamConstant
		i++
	}

	name := ""
	if i < len(toks) && toks[i].Kind == token.IDENTIFIER {
		name = toks[i].Text
		i++
	}

	var typ ast.Type
	if i < len(toks) && toks[i].IsSpecial(':') {
		i++
		var consumed int
		var tDiags []*diagnostics.Diagnostic
		typ, consumed, tDiags = ParseType(toks[i:])
		diags = append(diags, tDiags...)
		i += consumed
	} else {
		tok := firstTok(toks)
		diags = append(diags, diagnostics.New(diagnostics.ErrMissingParamColon, tok, tok.String()))
	}

	var def ast.Expression
	if i < len(toks) && toks[i].IsOperatorText("=") {
		i++
		var dDiags []*diagnostics.Diagnostic
		def, dDiags = ParseExpression(toks[i:])
		diags = append(diags, dDiags...)
	}

	return ast.Parameter{Name: name, Kind: kind, Type: typ, Default: def}, diags
}

// varKind selects which node parseVarLike builds.
type varKind int

const (
	varKindLet varKind = iota
	varKindMut
	varKindConst
)

// parseVarLike parses `name (: type)? (= expr)?` for let/mut/const (§4.I,
// §4.J). At least one of type or value must be present (233).
func parseVarLike(rest []token.Token, annotations []ast.Annotation, kind varKind, isGlobal bool) (ast.Statement, []*diagnostics.Diagnostic) {
	kwTok := rest[0]
	var diags []*diagnostics.Diagnostic
	i := 1

	name := ""
	global := false
	if i < len(rest) && (rest[i].Kind == token.IDENTIFIER || rest[i].IsSpecial('.')) {
		nm, consumed, nDiags := ParsePlainPath(rest[i:], token.TerminatorSet(":="))
		diags = append(diags, nDiags...)
		i += consumed
		if len(nm.IDs) > 0 {
			name = nm.IDs[len(nm.IDs)-1]
		}
		global = nm.Global || len(nm.IDs) > 1
	}
	if !isGlobal && global {
		diags = append(diags, diagnostics.New(diagnostics.ErrGlobalNameInLocalFn, kwTok, name))
	}

	var typ ast.Type
	if i < len(rest) && rest[i].IsSpecial(':') {
		i++
		var consumed int
		var tDiags []*diagnostics.Diagnostic
		typ, consumed, tDiags = ParseType(rest[i:])
		diags = append(diags, tDiags...)
		i += consumed
	}

	var value ast.Expression
	if i < len(rest) && rest[i].IsOperatorText("=") {
		i++
		var vDiags []*diagnostics.Diagnostic
		value, vDiags = ParseExpression(rest[i:])
		diags = append(diags, vDiags...)
		i = len(rest)
	}

	if typ == nil && value == nil {
		diags = append(diags, diagnostics.New(diagnostics.ErrMissingDefOperand, kwTok))
	}

	for ; i < len(rest); i++ {
		diags = append(diags, diagnostics.New(diagnostics.ErrTrailingStatementToken, rest[i], rest[i].String()))
	}

	switch kind {
	case varKindLet:
		return &ast.VarDef{StmtBase: ast.StmtBase{Token: kwTok}, Name: name, Value: value, Type: typ, Annotations: annotations, IsGlobal: isGlobal}, diags
	case varKindMut:
		return &ast.MutDef{StmtBase: ast.StmtBase{Token: kwTok}, Name: name, Value: value, Type: typ, Annotations: annotations, IsGlobal: isGlobal}, diags
	default:
		return &ast.ConstDef{StmtBase: ast.StmtBase{Token: kwTok}, Name: name, Value: value, Type: typ, Annotations: annotations}, diags
	}
}
