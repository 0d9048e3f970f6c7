// Copyright © 2025 The Peano authors

package peano_test

import (
	"strings"
	"testing"

	"github.com/peanolang/peano/interptest"
	"github.com/peanolang/peano/parser"
	"github.com/peanolang/peano/peano"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterpreterEvalString(t *testing.T) {
	interp, err := interptest.NewInterp(t)
	require.NoError(t, err)

	v, err := interp.EvalString("test", "Add['2, '3]")
	require.NoError(t, err)
	assert.Equal(t, "Succ[Succ[Succ[Succ[Succ[Zero]]]]]", peano.Render(v))

	v, err = interp.ReduceString("test", "Bind[x, x]['1]")
	require.NoError(t, err)
	assert.Equal(t, "Bind[x, x][Succ[Zero]]", peano.Render(v))

	// Error values come back as Go errors.
	_, err = interp.EvalString("test", "Foo")
	require.Error(t, err)
	assert.Equal(t, "test:1:1: undefined-symbol: unbound symbol: Foo", err.Error())
}

func TestInterpreterParse(t *testing.T) {
	interp, err := interptest.NewInterp(t)
	require.NoError(t, err)

	// Parse requires exactly one expression.
	_, err = interp.Parse("test", "'1 '2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected a single expression")

	_, err = interp.Parse("test", "")
	require.Error(t, err)

	exprs, err := interp.ParseProgram("test", strings.NewReader("'1\nAdd['1, '2]\n"))
	require.NoError(t, err)
	require.Len(t, exprs, 2)
	assert.Equal(t, "Succ[Zero]", peano.Render(exprs[0]))
	assert.Equal(t, "Add[Succ[Zero], Succ[Succ[Zero]]]", peano.Render(exprs[1]))
}

func TestInterpreterNoReader(t *testing.T) {
	interp, err := peano.NewInterpreter()
	require.NoError(t, err)

	_, err = interp.ParseProgram("test", strings.NewReader("'1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no reader")
}

func TestInterpreterMaxDepth(t *testing.T) {
	interp, err := interptest.NewInterp(t, peano.WithMaxDepth(4))
	require.NoError(t, err)

	v, err := interp.EvalString("test", "Succ[Succ[Succ['1]]]")
	require.NoError(t, err)
	assert.Equal(t, "Succ[Succ[Succ[Succ[Zero]]]]", peano.Render(v))

	_, err = interp.EvalString("test", "Succ[Succ[Succ[Succ[Succ['1]]]]]")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recursion-limit")
	assert.Contains(t, err.Error(), "maximum evaluation depth exceeded: 4")

	// The interpreter remains usable after the failure.
	v, err = interp.EvalString("test", "'2")
	require.NoError(t, err)
	assert.Equal(t, "Succ[Succ[Zero]]", peano.Render(v))
}

func TestInterpreterIsolation(t *testing.T) {
	a, err := peano.NewInterpreter(peano.WithReader(parser.NewReader()))
	require.NoError(t, err)
	b, err := peano.NewInterpreter(peano.WithReader(parser.NewReader()))
	require.NoError(t, err)

	// Environments are not shared between interpreters.
	a.Env().Put(peano.Symbol("Marker"), peano.Nat(1))
	v := a.Env().Get(peano.Symbol("Marker"))
	require.Equal(t, peano.PNat, v.Type)
	v = b.Env().Get(peano.Symbol("Marker"))
	assert.Equal(t, peano.PError, v.Type)
}

func TestRoundTrip(t *testing.T) {
	interp, err := interptest.NewInterp(t)
	require.NoError(t, err)

	// Rendered results parse back to expressions that evaluate to the same
	// rendering.
	for _, src := range []string{
		"Add['2, '3]",
		"LessThan['1, '2]",
		"Add[True, '1]",
		"Bind[x, Add[x, '1]]",
		"Recurse[k, Succ[Self], Zero]",
	} {
		v, err := interp.EvalString("test", src)
		require.NoError(t, err, "source %s", src)
		rendered := peano.Render(v)
		v2, err := interp.EvalString("render", rendered)
		require.NoError(t, err, "rendering %s", rendered)
		assert.Equal(t, rendered, peano.Render(v2), "source %s", src)
	}
}
