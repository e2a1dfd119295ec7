package pipeline

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

// New builds a Pipeline from an ordered list of stages.
func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes every stage in order, stopping early only if a stage returns
// a fatal (non-diagnostic) error; parse diagnostics are collected on the
// Context and never stop the pipeline themselves.
func (p *Pipeline) Run(ctx *Context) error {
	for _, processor := range p.processors {
		if err := processor.Process(ctx); err != nil {
			return err
		}
	}
	return nil
}
