// Package parser implements Cobalt's recursive-descent front-end parser:
// a token slice goes in, an *ast.TopLevel and a list of diagnostics come
// out. No stage raises; every sub-parser reports what it found wrong and
// keeps going so one bad statement never aborts the whole translation unit.
package parser

import (
	"github.com/cobalt-lang/cobaltfront/internal/ast"
	"github.com/cobalt-lang/cobaltfront/internal/config"
	"github.com/cobalt-lang/cobaltfront/internal/diagnostics"
	"github.com/cobalt-lang/cobaltfront/internal/token"
)

// Parse is the driver entry point (§4.K). Empty input yields an empty
// TopLevel. Otherwise the top-level driver (§4.J) runs to exhaustion,
// treating every stray top-level '}' as diagnostic 255 and resuming on the
// remainder, and every parsed item is gathered into one TopLevel node.
//
// flags is not consulted here: every diagnostic produced is always
// returned, regardless of ErrorCap/WarningsAsErrors. Those fields are a
// passthrough for callers to interpret on their own.
func Parse(tokens []token.Token, flags config.Flags) (*ast.TopLevel, []*diagnostics.Diagnostic) {
	if len(tokens) == 0 {
		return ast.NewTopLevel(token.Token{Kind: token.EOF}, nil), nil
	}
	items, diags := resumeTopLevel(tokens)
	return ast.NewTopLevel(tokens[0], items), diags
}
