// Copyright © 2025 The Peano authors

// Package interptest provides a harness for running rendered input/output
// sequences against isolated interpreters.
package interptest

import (
	"log"
	"strings"
	"testing"

	"github.com/peanolang/peano/parser"
	"github.com/peanolang/peano/peano"
)

// TestSequence is a sequence of expressions which are evaluated sequentially
// against one interpreter.  Result holds the canonical rendering of the
// expected value, or the rendered error for steps expected to fail.  Steps
// with Reduce set are rewritten under the restricted semantics instead of
// fully evaluated.
type TestSequence []struct {
	Expr   string // a peano expression
	Result string // the rendered result or error
	Reduce bool   // rewrite with Reduce instead of Eval
}

// TestSuite is a set of named TestSequences
type TestSuite []struct {
	Name string
	TestSequence
}

// RunTestSuite runs each TestSequence in tests on isolated interpreters.
func RunTestSuite(t *testing.T, tests TestSuite) {
	for i, test := range tests {
		log.Printf("test %d -- %s", i, test.Name)
		interp, err := NewInterp(t)
		if err != nil {
			t.Errorf("test %d %q: %v", i, test.Name, err)
			continue
		}
		for j, step := range test.TestSequence {
			expr, err := interp.Parse("test", step.Expr)
			if err != nil {
				if err.Error() != step.Result {
					t.Errorf("test %d %q: expr %d: parse error: %v", i, test.Name, j, err)
				}
				continue
			}
			var res *peano.PVal
			if step.Reduce {
				res = interp.Reduce(expr)
			} else {
				res = interp.Eval(expr)
			}
			if res.String() != step.Result {
				t.Errorf("test %d %q: expr %d: expected result %s (got %s)", i, test.Name, j, step.Result, res)
			}
		}
	}
}

// NewInterp constructs a fresh interpreter whose diagnostics are routed to
// the test log.
func NewInterp(t testing.TB, config ...peano.Config) (*peano.Interpreter, error) {
	opts := []peano.Config{
		peano.WithReader(parser.NewReader()),
		peano.WithStderr(NewLogger(t)),
	}
	opts = append(opts, config...)
	return peano.NewInterpreter(opts...)
}

// RunBenchmark runs a standard benchmark that evaluates expressions parsed
// from source against a fresh interpreter per iteration.
func RunBenchmark(b *testing.B, source string) {
	b.StopTimer()
	p := parser.NewReader()
	exprs, err := p.Read("benchmark", strings.NewReader(source))
	if err != nil {
		b.Fatalf("parse error: %v", err)
	}
	for i := 0; i < b.N; i++ {
		interp, err := peano.NewInterpreter(peano.WithReader(p))
		if err != nil {
			b.Fatal(err)
		}
		b.StartTimer()
		for _, expr := range exprs {
			res := interp.Eval(expr)
			if err := peano.GoError(res); err != nil {
				b.Fatalf("eval error: %v", err)
			}
		}
		b.StopTimer()
	}
}
