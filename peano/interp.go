// Copyright © 2025 The Peano authors

package peano

import (
	"io"
	"strings"
)

// Interpreter owns one root environment, constructed exactly once by the
// caller.  There is no ambient global state; independent interpreters do not
// share bindings.
type Interpreter struct {
	env *PEnv
}

// NewInterpreter constructs an interpreter with a bootstrapped root
// environment.  Callers that want to parse source text must supply a reader,
// typically WithReader(parser.NewReader()).
func NewInterpreter(config ...Config) (*Interpreter, error) {
	env := NewEnv(nil)
	rc := InitializeRootEnv(env, config...)
	if err := GoError(rc); err != nil {
		return nil, err
	}
	return &Interpreter{env: env}, nil
}

// Env returns the interpreter's root environment.
func (in *Interpreter) Env() *PEnv {
	return in.env
}

// Parse parses a single expression from src.  It is an error for src to
// contain anything beyond one expression.
func (in *Interpreter) Parse(name, src string) (*PVal, error) {
	exprs, err := in.ParseProgram(name, strings.NewReader(src))
	if err != nil {
		return nil, err
	}
	if len(exprs) != 1 {
		return nil, (*ErrorVal)(ErrorConditionf(CondParseError, "expected a single expression, got %d", len(exprs)))
	}
	return exprs[0], nil
}

// ParseProgram parses every expression contained in r, in order.
func (in *Interpreter) ParseProgram(name string, r io.Reader) ([]*PVal, error) {
	reader := in.env.Runtime.Reader
	if reader == nil {
		return nil, (*ErrorVal)(Errorf("no reader for environment runtime"))
	}
	return reader.Read(name, r)
}

// Eval evaluates expr against the root environment under the full
// semantics.
func (in *Interpreter) Eval(expr *PVal) *PVal {
	return in.env.Eval(expr)
}

// Reduce rewrites expr against the root environment under the restricted
// semantics.
func (in *Interpreter) Reduce(expr *PVal) *PVal {
	return in.env.Reduce(expr)
}

// EvalString parses a single expression from src and evaluates it.
func (in *Interpreter) EvalString(name, src string) (*PVal, error) {
	expr, err := in.Parse(name, src)
	if err != nil {
		return nil, err
	}
	res := in.Eval(expr)
	if err := GoError(res); err != nil {
		return nil, err
	}
	return res, nil
}

// ReduceString parses a single expression from src and reduces it.
func (in *Interpreter) ReduceString(name, src string) (*PVal, error) {
	expr, err := in.Parse(name, src)
	if err != nil {
		return nil, err
	}
	res := in.Reduce(expr)
	if err := GoError(res); err != nil {
		return nil, err
	}
	return res, nil
}

// Render returns the canonical text rendering of expr.
func Render(expr *PVal) string {
	return expr.String()
}
