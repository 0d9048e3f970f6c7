// Copyright © 2025 The Peano authors

package rdparser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/peanolang/peano/parser/token"
	"github.com/peanolang/peano/peano"
	"github.com/stretchr/testify/assert"
)

func TestParser(t *testing.T) {
	tests := []struct {
		source string
		output string
	}{
		{`Zero`, `Zero`},
		{`x`, `x`},
		{`x1y2`, `x1y2`},
		{`'0`, `Zero`},
		{`'1`, `Succ[Zero]`},
		{`'3`, `Succ[Succ[Succ[Zero]]]`},
		{`Succ[Zero]`, `Succ[Zero]`},
		{`f[]`, `f[]`},
		{`Add['1, '2]`, `Add[Succ[Zero], Succ[Succ[Zero]]]`},
		{`Add[ '1 , '2 ]`, `Add[Succ[Zero], Succ[Succ[Zero]]]`},
		{`Bind[x, Add[x, '1]]`, `Bind[x, Add[x, Succ[Zero]]]`},
		{`Recurse[k, Succ[Self], Zero]`, `Recurse[k, Succ[Self], Zero]`},
		// Commas inside nested applications never split the outer list.
		{`f[g[x, y], z]`, `f[g[x, y], z]`},
		// Chained bracket groups apply left to right.
		{`f[x][y]`, `f[x][y]`},
		{`f[x]['1][z]`, `f[x][Succ[Zero]][z]`},
		{
			"Add[\n\t'1,\n\t'2\n]",
			`Add[Succ[Zero], Succ[Succ[Zero]]]`,
		},
	}

	for i, test := range tests {
		name := fmt.Sprintf("test%d", i)
		s := token.NewScanner(name, strings.NewReader(test.source))
		p := New(s)
		exprs, err := p.ParseProgram()
		if err != nil {
			t.Errorf("test %d: parse error: %v", i, err)
			continue
		}
		if len(exprs) != 1 {
			t.Errorf("test %d: parsed %d expressions", i, len(exprs))
			continue
		}
		testPValLocation(t, exprs[0])
		assert.Equal(t, test.output, exprs[0].String(), "test %d", i)
	}
}

func TestParseProgram(t *testing.T) {
	source := "'1\nAdd['1, '2]\nBind[x, x]\n"
	p := New(token.NewScanner("test", strings.NewReader(source)))
	exprs, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if len(exprs) != 3 {
		t.Fatalf("parsed %d expressions", len(exprs))
	}
	assert.Equal(t, `Succ[Zero]`, exprs[0].String())
	assert.Equal(t, `Add[Succ[Zero], Succ[Succ[Zero]]]`, exprs[1].String())
	assert.Equal(t, `Bind[x, x]`, exprs[2].String())
}

func TestParseProgramEmpty(t *testing.T) {
	p := New(token.NewScanner("test", strings.NewReader("  \n\t")))
	exprs, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	assert.Len(t, exprs, 0)
}

func TestErrors(t *testing.T) {
	tests := []struct {
		source    string
		condition string
	}{
		{`Add['1, '2`, peano.CondUnmatchedSyntax},
		{`f[`, peano.CondUnmatchedSyntax},
		{`]`, peano.CondParseError},
		{`,`, peano.CondParseError},
		{`f[x,]`, peano.CondParseError},
		{`f[x y]`, peano.CondParseError},
		{`'`, peano.CondScanError},
		{`'x`, peano.CondScanError},
		{`(`, peano.CondScanError},
		{`1`, peano.CondScanError},
	}
	for i, test := range tests {
		p := New(token.NewScanner("test", strings.NewReader(test.source)))
		_, err := p.ParseProgram()
		if err == nil {
			t.Errorf("test %d: %q: expected parse failure", i, test.source)
			continue
		}
		e, ok := err.(*peano.ErrorVal)
		if !ok {
			t.Errorf("test %d: %q: unexpected error type %T", i, test.source, err)
			continue
		}
		assert.Equal(t, test.condition, e.Condition(), "test %d: %q", i, test.source)
	}
}

func TestErrorLocation(t *testing.T) {
	p := New(token.NewScanner("test", strings.NewReader("Add['1,\n  ]")))
	_, err := p.ParseProgram()
	if err == nil {
		t.Fatal("expected parse failure")
	}
	assert.Contains(t, err.Error(), "test:2:")
}

func testPValLocation(t *testing.T, v *peano.PVal) {
	if v.Source == nil {
		t.Errorf("value missing source location: %v", v)
	}
	for _, cell := range v.Cells {
		testPValLocation(t, cell)
	}
}
