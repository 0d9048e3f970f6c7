// Copyright © 2025 The Peano authors

package peano

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNat(t *testing.T) {
	v := Nat(3)
	require.Equal(t, PNat, v.Type)
	assert.Equal(t, 3, v.Nat)

	v = Nat(-1)
	require.Equal(t, PError, v.Type)
	assert.Equal(t, CondInvalidConstruction, v.Str)
}

func TestRender(t *testing.T) {
	tests := []struct {
		v    *PVal
		want string
	}{
		{Nat(0), "Zero"},
		{Nat(1), "Succ[Zero]"},
		{Nat(3), "Succ[Succ[Succ[Zero]]]"},
		{Bool(true), "True"},
		{Bool(false), "False"},
		{Symbol("Foo"), "Foo"},
		{SpecialOp(SpecialEvaluate), "Evaluate"},
		{Primitive("Add", builtinAdd), "Add"},
		{AppExpr(Symbol("Add"), []*PVal{Nat(1), Bool(true)}), "Add[Succ[Zero], True]"},
		{AppExpr(Symbol("F"), nil), "F[]"},
		{Bind([]string{"x"}, Symbol("x")), "Bind[x, x]"},
		{Bind([]string{"x", "y"}, AppExpr(Symbol("Add"), []*PVal{Symbol("x"), Symbol("y")})), "Bind[x, y, Add[x, y]]"},
		{Recurse("k", AppExpr(Symbol("Succ"), []*PVal{Symbol(SelfSymbol)}), Symbol(ZeroSymbol)), "Recurse[k, Succ[Self], Zero]"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.v.String())
	}
}

func TestEqual(t *testing.T) {
	eq, ok := Equal(Nat(2), Nat(2))
	assert.True(t, ok)
	assert.True(t, eq)

	eq, ok = Equal(Nat(2), Nat(3))
	assert.True(t, ok)
	assert.False(t, eq)

	eq, ok = Equal(Bool(true), Bool(true))
	assert.True(t, ok)
	assert.True(t, eq)

	// Naturals and booleans both carry value equality but are never equal
	// to each other.
	eq, ok = Equal(Nat(1), Bool(true))
	assert.True(t, ok)
	assert.False(t, eq)

	// Symbols and applications have no value equality.
	_, ok = Equal(Symbol("x"), Symbol("x"))
	assert.False(t, ok)
	_, ok = Equal(Nat(1), Symbol("x"))
	assert.False(t, ok)
}

func TestIsValue(t *testing.T) {
	assert.True(t, Nat(0).IsValue())
	assert.True(t, Bool(false).IsValue())
	assert.True(t, Bind([]string{"x"}, Symbol("x")).IsValue())
	assert.True(t, SpecialOp(SpecialBind).IsValue())
	assert.False(t, Symbol("x").IsValue())
	assert.False(t, AppExpr(Symbol("F"), nil).IsValue())
}

func TestTypeStrings(t *testing.T) {
	assert.Equal(t, "natural", PNat.String())
	assert.Equal(t, "application", PAppExpr.String())
	assert.Equal(t, "INVALID", PInvalid.String())
	assert.Equal(t, "INVALID", PTypeMax.String())
}
