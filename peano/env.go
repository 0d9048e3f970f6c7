// Copyright © 2025 The Peano authors

package peano

import (
	"fmt"

	"github.com/peanolang/peano/parser/token"
)

// PEnv is a node in a chain of scopes.  Bindings are defined in the local
// scope only; lookup walks the parent chain outward to the root.  Ancestor
// scopes are never mutated by evaluation, so independent evaluations may
// share a root environment for reads.
type PEnv struct {
	Loc     *token.Location
	Scope   map[string]*PVal
	Parent  *PEnv
	Runtime *Runtime
	ID      uint
}

// NewEnvRuntime initializes a root PEnv with an explicit runtime.  When rt is
// nil StandardRuntime is used.
func NewEnvRuntime(rt *Runtime) *PEnv {
	if rt == nil {
		rt = StandardRuntime()
	}
	return &PEnv{
		ID:      rt.GenEnvID(),
		Scope:   make(map[string]*PVal),
		Runtime: rt,
	}
}

// NewEnv initializes and returns a new PEnv.  A nil parent creates a root
// environment with a standard runtime.
func NewEnv(parent *PEnv) *PEnv {
	return newEnvN(parent, 0)
}

// newEnvN creates a child PEnv with its Scope pre-sized to hold n bindings.
// Callers that know the binding count up front (bind application, recursion
// steps) can avoid map growth by passing the exact count.
func newEnvN(parent *PEnv, n int) *PEnv {
	var runtime *Runtime
	var loc *token.Location
	if parent != nil {
		runtime = parent.Runtime
		loc = parent.Loc
	} else {
		runtime = StandardRuntime()
	}
	return &PEnv{
		ID:      runtime.GenEnvID(),
		Loc:     loc,
		Scope:   make(map[string]*PVal, n),
		Parent:  parent,
		Runtime: runtime,
	}
}

func (env *PEnv) root() *PEnv {
	for env.Parent != nil {
		env = env.Parent
	}
	return env
}

// Get returns the value bound to symbol k, walking from the local scope
// outward through parents.  When the chain is exhausted Get returns an
// undefined-symbol error value.
func (env *PEnv) Get(k *PVal) *PVal {
	if k.Type != PSymbol {
		return env.Errorf("key is not a symbol: %v", k.Type)
	}
	for {
		v, ok := env.Scope[k.Str]
		if ok {
			return v
		}
		if env.Parent == nil {
			return env.ErrorConditionf(CondUndefinedSymbol, "unbound symbol: %s", k.Str)
		}
		env = env.Parent
	}
}

// Put binds symbol k to v in the local scope only.  An existing local
// binding for k is overwritten; bindings are never removed.
func (env *PEnv) Put(k, v *PVal) *PVal {
	if k.Type != PSymbol {
		return env.Errorf("key is not a symbol: %v", k.Type)
	}
	env.Scope[k.Str] = v
	return Bool(true)
}

// Errorf returns an error value with condition "error", a formatted message,
// and env's current source location.
func (env *PEnv) Errorf(format string, v ...interface{}) *PVal {
	return env.ErrorConditionf("error", format, v...)
}

// ErrorConditionf returns an error value with the given condition name, a
// formatted message, and env's current source location.
func (env *PEnv) ErrorConditionf(condition string, format string, v ...interface{}) *PVal {
	return &PVal{
		Source: env.Loc,
		Type:   PError,
		Str:    condition,
		Cells:  []*PVal{{Type: PSymbol, Str: fmt.Sprintf(format, v...)}},
	}
}

// Eval evaluates v in the scope of env under the full call-by-value
// semantics and returns the result.  Eval does not modify v.
func (env *PEnv) Eval(v *PVal) *PVal {
	if v.Source != nil {
		env.Loc = v.Source
	}
	switch v.Type {
	case PSymbol:
		return env.Get(v)
	case PAppExpr:
		res := env.evalApp(v)
		if res.Type == PError && res.Source == nil {
			res.Source = env.Loc
		}
		return res
	case PError:
		return v
	default:
		// Naturals, booleans, bind and recurse forms, special operators, and
		// primitives are already values.
		return v
	}
}

// evalApp evaluates an application.  The operator is evaluated first.  When
// it names the Bind or Recurse constructor the operands are treated as
// syntax and assembled into a form without evaluation.  Otherwise operands
// are evaluated strictly left to right before dispatch on the operator's
// runtime kind.
func (env *PEnv) evalApp(v *PVal) *PVal {
	if !env.Runtime.enter() {
		return env.ErrorConditionf(CondRecursionLimit, "maximum evaluation depth exceeded: %d", env.Runtime.MaxDepth)
	}
	defer env.Runtime.leave()

	op := env.Eval(v.Cells[0])
	if op.Type == PError {
		return op
	}

	if p := env.Runtime.Profiler; p != nil && p.IsEnabled() {
		defer p.Start(op)()
	}

	if op.Type == PSpecialOp {
		switch op.Str {
		case SpecialBind:
			return env.makeBind(v.Cells[1:])
		case SpecialRecurse:
			return env.makeRecurse(v.Cells[1:])
		}
	}

	operands := v.Cells[1:]
	args := make([]*PVal, len(operands))
	for i, cell := range operands {
		args[i] = env.Eval(cell)
		if args[i].Type == PError {
			return args[i]
		}
	}

	switch op.Type {
	case PSpecialOp:
		if len(args) != 1 {
			return env.ErrorConditionf(CondArity, "%s expects 1 operand, got %d", op.Str, len(args))
		}
		if op.Str == SpecialEvaluate {
			return env.Eval(args[0])
		}
		return env.Reduce(args[0])
	case PBind:
		return env.applyBind(op, args)
	case PRecur:
		if len(args) != 1 {
			return env.ErrorConditionf(CondArity, "%s expects 1 operand, got %d", SpecialRecurse, len(args))
		}
		if args[0].Type != PNat {
			return env.ErrorConditionf(CondType, "recursion argument is not a natural number: %v", args[0].Type)
		}
		return env.recurse(op, args[0].Nat)
	case PPrimitive:
		if r := op.Fun(env, args); r != nil {
			return r
		}
		return AppExpr(op, args)
	default:
		// Anything else used as an operator forms a residual application.
		return AppExpr(op, args)
	}
}

// applyBind applies bind form op to evaluated args.  One child of the
// calling environment is allocated, each parameter is bound to the
// corresponding operand, and the body is evaluated in the child.  Free names
// in the body resolve against the call site, not a definition site.
func (env *PEnv) applyBind(op *PVal, args []*PVal) *PVal {
	if len(args) != len(op.Params) {
		return env.ErrorConditionf(CondArity, "bind form expects %d operands, got %d", len(op.Params), len(args))
	}
	child := newEnvN(env, len(args))
	for i, p := range op.Params {
		child.Scope[p] = args[i]
	}
	return child.Eval(op.Cells[0])
}

// recurse runs the structural-recursion algorithm for recurse form op
// applied to the natural n:
//
//	rec(0) = eval(base, env)
//	rec(k) = eval(recursive, env extended with indVar := k-1, Self := rec(k-1))
//
// The loop performs exactly n+1 case-body evaluations and carries the
// accumulator explicitly, so recursion depth does not grow with n.
func (env *PEnv) recurse(op *PVal, n int) *PVal {
	acc := env.Eval(op.Cells[1])
	if acc.Type == PError {
		return acc
	}
	for k := 1; k <= n; k++ {
		child := newEnvN(env, 2)
		child.Scope[op.Str] = Nat(k - 1)
		child.Scope[SelfSymbol] = acc
		acc = child.Eval(op.Cells[0])
		if acc.Type == PError {
			return acc
		}
	}
	return acc
}

// makeBind assembles a bind form from unevaluated constructor operands.  The
// final operand is the body; every preceding operand must be a bare symbol
// naming a parameter.
func (env *PEnv) makeBind(cells []*PVal) *PVal {
	if len(cells) == 0 {
		return env.ErrorConditionf(CondArity, "%s expects at least a body operand", SpecialBind)
	}
	params := make([]string, len(cells)-1)
	for i, cell := range cells[:len(cells)-1] {
		if cell.Type != PSymbol {
			return env.ErrorConditionf(CondType, "bind parameter is not a symbol: %v", cell.Type)
		}
		params[i] = cell.Str
	}
	return Bind(params, cells[len(cells)-1])
}

// makeRecurse assembles a recurse form from unevaluated constructor
// operands: the induction variable symbol, the recursive case, and the base
// case.
func (env *PEnv) makeRecurse(cells []*PVal) *PVal {
	if len(cells) != 3 {
		return env.ErrorConditionf(CondArity, "%s expects 3 operands, got %d", SpecialRecurse, len(cells))
	}
	if cells[0].Type != PSymbol {
		return env.ErrorConditionf(CondType, "induction variable is not a symbol: %v", cells[0].Type)
	}
	return Recurse(cells[0].Str, cells[1], cells[2])
}
