// Copyright © 2025 The Peano authors

package peano_test

import (
	"testing"

	"github.com/peanolang/peano/interptest"
)

func TestEvalScope(t *testing.T) {
	tests := interptest.TestSuite{
		{"parameters bind at the call site", interptest.TestSequence{
			{Expr: "Bind[x, Add[x, '1]]['4]", Result: "Succ[Succ[Succ[Succ[Succ[Zero]]]]]"},
			// Parameters do not leak out of the application.
			{Expr: "x", Result: "test:1:1: undefined-symbol: unbound symbol: x"},
		}},
		{"shadowing", interptest.TestSequence{
			// The inner x shadows the outer x inside the inner body only.
			{Expr: "Bind[x, Add[Bind[x, Succ[x]]['10], x]]['1]", Result: "Succ[Succ[Succ[Succ[Succ[Succ[Succ[Succ[Succ[Succ[Succ[Succ[Zero]]]]]]]]]]]]"},
		}},
		{"no lexical capture", interptest.TestSequence{
			// The inner bind form does not close over x from the enclosing
			// application.  When the result is applied at top level x is
			// unbound again.
			{Expr: "Bind[x, Bind[y, Add[x, y]]]['5]['6]", Result: "test:1:21: undefined-symbol: unbound symbol: x"},
		}},
		{"constructor operands are syntax", interptest.TestSequence{
			// Constructing the form does not evaluate x or the body.
			{Expr: "Bind[x, Add[x, '1]]", Result: "Bind[x, Add[x, Succ[Zero]]]"},
			{Expr: "Recurse[k, Succ[Self], Zero]", Result: "Recurse[k, Succ[Self], Zero]"},
		}},
		{"recursion variables are scoped to the step", interptest.TestSequence{
			{Expr: "Recurse[k, Self, Zero]['3]", Result: "Zero"},
			{Expr: "Self", Result: "test:1:1: undefined-symbol: unbound symbol: Self"},
			{Expr: "k", Result: "test:1:1: undefined-symbol: unbound symbol: k"},
		}},
		{"nested recursion", interptest.TestSequence{
			// The outer step body runs a fresh recursion per step:
			// rec(n) folds in inner(2) = 2 each step, so rec(3) = 6.
			{Expr: "Recurse[k, Add[Self, Recurse[j, Succ[Self], Zero]['2]], Zero]['3]", Result: "Succ[Succ[Succ[Succ[Succ[Succ[Zero]]]]]]"},
		}},
	}
	interptest.RunTestSuite(t, tests)
}
