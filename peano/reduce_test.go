// Copyright © 2025 The Peano authors

package peano_test

import (
	"testing"

	"github.com/peanolang/peano/interptest"
)

func TestReduce(t *testing.T) {
	tests := interptest.TestSuite{
		{"primitive applications normalize", interptest.TestSequence{
			{Expr: "Add['2, '3]", Result: "Succ[Succ[Succ[Succ[Succ[Zero]]]]]", Reduce: true},
			{Expr: "Succ[Add['1, '1]]", Result: "Succ[Succ[Succ[Zero]]]", Reduce: true},
			{Expr: "Add[Add['1, '1], Add['1, '2]]", Result: "Succ[Succ[Succ[Succ[Succ[Zero]]]]]", Reduce: true},
			{Expr: "Not[False]", Result: "True", Reduce: true},
			{Expr: "LessThan['1, '2]", Result: "True", Reduce: true},
			{Expr: "Equal['2, '2]", Result: "True", Reduce: true},
		}},
		{"values and constants", interptest.TestSequence{
			{Expr: "Zero", Result: "Zero", Reduce: true},
			{Expr: "'3", Result: "Succ[Succ[Succ[Zero]]]", Reduce: true},
			{Expr: "True", Result: "True", Reduce: true},
			{Expr: "Bind[x, x]", Result: "Bind[x, x]", Reduce: true},
		}},
		{"bind application is inert", interptest.TestSequence{
			{Expr: "Bind[x, x]['1]", Result: "Bind[x, x][Succ[Zero]]", Reduce: true},
			{Expr: "Bind[x, Add[x, '1]]['4]", Result: "Bind[x, Add[x, Succ[Zero]]][Succ[Succ[Succ[Succ[Zero]]]]]", Reduce: true},
		}},
		{"recursion is inert", interptest.TestSequence{
			{Expr: "Recurse[k, Succ[Self], Zero]['2]", Result: "Recurse[k, Succ[Self], Zero][Succ[Succ[Zero]]]", Reduce: true},
		}},
		{"special forms are inert", interptest.TestSequence{
			{Expr: "Evaluate[Add['1, '2]]", Result: "Evaluate[Succ[Succ[Succ[Zero]]]]", Reduce: true},
			{Expr: "Reduce[Not[True]]", Result: "Reduce[False]", Reduce: true},
		}},
		{"wrong operand kinds stay residual", interptest.TestSequence{
			{Expr: "Add[True, '1]", Result: "Add[True, Succ[Zero]]", Reduce: true},
			{Expr: "Succ[Bind[x, x]]", Result: "Succ[Bind[x, x]]", Reduce: true},
		}},
		{"evaluate and reduce diverge", interptest.TestSequence{
			{Expr: "Bind[x, x]['1]", Result: "Succ[Zero]"},
			{Expr: "Bind[x, x]['1]", Result: "Bind[x, x][Succ[Zero]]", Reduce: true},
			{Expr: "Recurse[k, Succ[Self], Zero]['2]", Result: "Succ[Succ[Zero]]"},
			{Expr: "Recurse[k, Succ[Self], Zero]['2]", Result: "Recurse[k, Succ[Self], Zero][Succ[Succ[Zero]]]", Reduce: true},
			// Where only primitives appear the semantics agree.
			{Expr: "Add['2, '2]", Result: "Succ[Succ[Succ[Succ[Zero]]]]"},
			{Expr: "Add['2, '2]", Result: "Succ[Succ[Succ[Succ[Zero]]]]", Reduce: true},
		}},
		{"symbols still resolve", interptest.TestSequence{
			{Expr: "Foo", Result: "test:1:1: undefined-symbol: unbound symbol: Foo", Reduce: true},
			{Expr: "Add[Foo, '1]", Result: "test:1:5: undefined-symbol: unbound symbol: Foo", Reduce: true},
		}},
	}
	interptest.RunTestSuite(t, tests)
}
