// Copyright © 2025 The Peano authors

package profiler

import (
	"context"
	"errors"

	"go.opencensus.io/trace"

	"github.com/peanolang/peano/peano"
)

var _ peano.Profiler = &ocAnnotator{}

type ocAnnotator struct {
	profiler
	currentContext context.Context
	currentSpan    *trace.Span
	contexts       []context.Context
}

// NewOpenCensusAnnotator returns a profiler that opens one OpenCensus span
// per application dispatch, parented on parentContext.
func NewOpenCensusAnnotator(runtime *peano.Runtime, parentContext context.Context, opts ...Option) *ocAnnotator {
	p := &ocAnnotator{
		profiler: profiler{
			runtime: runtime,
		},
		currentContext: parentContext,
	}
	p.profiler.applyConfigs(opts...)
	return p
}

func (p *ocAnnotator) Enable() error {
	p.runtime.Profiler = p
	if p.currentContext == nil {
		return errors.New("we can only append spans to a context that is linked to opencensus")
	}
	return p.profiler.Enable()
}

func (p *ocAnnotator) Complete() error {
	if p.currentSpan != nil {
		p.currentSpan.End()
	}
	return nil
}

func (p *ocAnnotator) Start(op *peano.PVal) func() {
	if p.skipTrace(op) {
		return func() {}
	}
	p.contexts = append(p.contexts, p.currentContext)
	p.currentContext, p.currentSpan = trace.StartSpan(p.currentContext, opName(op))
	file, line := getSource(op)
	p.currentSpan.AddAttributes(
		trace.StringAttribute("file", file),
		trace.Int64Attribute("line", int64(line)),
	)
	return func() {
		p.currentSpan.End()
		// And pop the current context back
		p.currentContext = p.contexts[len(p.contexts)-1]
		p.contexts = p.contexts[:len(p.contexts)-1]
		p.currentSpan = trace.FromContext(p.currentContext)
	}
}
