package parser

import (
	"github.com/cobalt-lang/cobaltfront/internal/pipeline"
)

// Processor adapts Parse to the pipeline.Processor interface, so parsing
// composes with whatever stages run before and after it.
type Processor struct{}

func (Processor) Process(ctx *pipeline.Context) error {
	root, diags := Parse(ctx.Tokens, ctx.Flags)
	ctx.AstRoot = root
	ctx.Errors = append(ctx.Errors, diags...)
	return nil
}
