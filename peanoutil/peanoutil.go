// Copyright © 2025 The Peano authors

// Package peanoutil provides helpers for embedding the interpreter in Go
// programs.
package peanoutil

import (
	"errors"
	"strings"

	"github.com/peanolang/peano/peano"
)

// Function is a helper to construct primitive operators.
func Function(name string, fun peano.PBuiltin) *Builtin {
	return &Builtin{fun, name}
}

// Builtin captures Go functions that are callable from peano.
type Builtin struct {
	fun  peano.PBuiltin
	name string
}

// Name returns the catalog name of the operator.
func (fun *Builtin) Name() string {
	return fun.name
}

// Eval evaluates the operator on an environment.  A nil return signals the
// dispatcher to form a residual application.
func (fun *Builtin) Eval(env *peano.PEnv, args []*peano.PVal) *peano.PVal {
	return fun.fun(env, args)
}

var _ peano.PBuiltinDef = &Builtin{}

// Loader is a generic function to initialize an environment.  A chain of
// loaders may be formed to assemble a catalog beyond the bootstrap set.
type Loader func(env *peano.PEnv) *peano.PVal

// LoadAll returns a Loader applying each given loader in order, stopping at
// the first error value.
func LoadAll(loaders ...Loader) Loader {
	return func(env *peano.PEnv) *peano.PVal {
		for _, fn := range loaders {
			rc := fn(env)
			if rc.Type == peano.PError {
				return rc
			}
		}
		return peano.Bool(true)
	}
}

// WithBuiltins returns a peano.Config binding extra primitive operators in
// the root environment during initialization.
func WithBuiltins(funs ...peano.PBuiltinDef) peano.Config {
	return func(env *peano.PEnv) *peano.PVal {
		env.AddBuiltins(funs...)
		return peano.Bool(true)
	}
}

// EvalSource parses and evaluates every expression in source text against
// env, returning the final result.  The environment runtime must carry a
// Reader.
func EvalSource(env *peano.PEnv, name, src string) (*peano.PVal, error) {
	reader := env.Runtime.Reader
	if reader == nil {
		return nil, errors.New("no reader for environment runtime")
	}
	exprs, err := reader.Read(name, strings.NewReader(src))
	if err != nil {
		return nil, err
	}
	res := peano.Bool(true)
	for _, expr := range exprs {
		res = env.Eval(expr)
		if err := peano.GoError(res); err != nil {
			return nil, err
		}
	}
	return res, nil
}
