// Copyright © 2025 The Peano authors

// Package profiler provides peano.Profiler implementations that annotate
// application dispatch with tracing spans.
package profiler

import (
	"errors"
	"fmt"

	"github.com/peanolang/peano/peano"
)

// profiler is a minimal peano.Profiler embedded by the annotators.
type profiler struct {
	runtime    *peano.Runtime
	enabled    bool
	skipFilter SkipFilter
}

var _ peano.Profiler = &profiler{}

// SkipFilter returns true for operators that should not be traced.
type SkipFilter func(op *peano.PVal) bool

// Option configures an annotator.
type Option func(*profiler)

// WithSkipFilter installs a filter suppressing spans for selected operators.
func WithSkipFilter(f SkipFilter) Option {
	return func(p *profiler) {
		p.skipFilter = f
	}
}

func (p *profiler) applyConfigs(opts ...Option) {
	for _, opt := range opts {
		opt(p)
	}
}

func (p *profiler) IsEnabled() bool {
	return p.enabled
}

func (p *profiler) Enable() error {
	if p.enabled {
		return fmt.Errorf("profiler already enabled")
	}
	p.enabled = true
	return nil
}

func (p *profiler) SetFile(filename string) error {
	return errors.New("this profiler type does not write to a file")
}

func (p *profiler) Complete() error {
	return nil
}

func (p *profiler) Start(op *peano.PVal) func() {
	return func() {}
}

// skipTrace is a helper function to decide whether to skip tracing.
func (p *profiler) skipTrace(op *peano.PVal) bool {
	return !p.enabled || p.skipFilter != nil && p.skipFilter(op)
}

// opName returns a stable span label for an operator value.  Catalog-bound
// operators carry their catalog name; anonymous forms are labeled by kind.
func opName(op *peano.PVal) string {
	switch op.Type {
	case peano.PPrimitive, peano.PSpecialOp:
		return op.Str
	case peano.PBind:
		return "bind-form"
	case peano.PRecur:
		return "recurse-form"
	default:
		return op.Type.String()
	}
}

// getSource returns the source name and line of an operator, when known.
func getSource(op *peano.PVal) (string, int) {
	if op.Source != nil {
		return op.Source.File, op.Source.Line
	}
	return "no-source", 0
}
