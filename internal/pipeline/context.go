package pipeline

import (
	"github.com/cobalt-lang/cobaltfront/internal/ast"
	"github.com/cobalt-lang/cobaltfront/internal/config"
	"github.com/cobalt-lang/cobaltfront/internal/diagnostics"
	"github.com/cobalt-lang/cobaltfront/internal/token"
)

// Context holds the data passed between pipeline stages. The parser itself
// only needs Tokens/Flags in and AstRoot/Errors out; FilePath and Stream
// exist so the parser can be composed with other stages (a lexer feeding
// it, a later phase consuming it) without changing its own signature.
type Context struct {
	FilePath string
	Tokens   []token.Token
	Stream   TokenStream
	Flags    config.Flags

	AstRoot *ast.TopLevel
	Errors  []*diagnostics.Diagnostic
}

// NewContext creates and initializes a new Context over a token slice.
func NewContext(filePath string, tokens []token.Token, flags config.Flags) *Context {
	stream := SliceStream(tokens)
	return &Context{
		FilePath: filePath,
		Tokens:   tokens,
		Stream:   &stream,
		Flags:    flags,
		Errors:   []*diagnostics.Diagnostic{},
	}
}
