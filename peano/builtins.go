// Copyright © 2025 The Peano authors

package peano

import "math"

// PBuiltinDef describes a primitive operator for registration.
type PBuiltinDef interface {
	Name() string
	Eval(env *PEnv, args []*PVal) *PVal
}

type langBuiltin struct {
	name string
	fun  PBuiltin
}

func (fun *langBuiltin) Name() string { return fun.name }

func (fun *langBuiltin) Eval(env *PEnv, args []*PVal) *PVal {
	return fun.fun(env, args)
}

var langBuiltins = []*langBuiltin{
	{"And", builtinAnd},
	{"Or", builtinOr},
	{"Not", builtinNot},
	{"Equal", builtinEqual},
	{"Succ", builtinSucc},
	{"Add", builtinAdd},
	{"LessThan", builtinLessThan},
}

// DefaultBuiltins returns the native primitive operators of the language.
func DefaultBuiltins() []PBuiltinDef {
	ops := make([]PBuiltinDef, len(langBuiltins))
	for i, fun := range langBuiltins {
		ops[i] = fun
	}
	return ops
}

// AddBuiltins binds the given primitives in env.  When called with no
// arguments AddBuiltins adds the DefaultBuiltins.
func (env *PEnv) AddBuiltins(funs ...PBuiltinDef) {
	if len(funs) == 0 {
		funs = DefaultBuiltins()
	}
	for _, f := range funs {
		env.Put(Symbol(f.Name()), Primitive(f.Name(), f.Eval))
	}
}

// AddSpecialOps binds the Evaluate, Reduce, Bind, and Recurse operators in
// env.
func (env *PEnv) AddSpecialOps() {
	for _, name := range []string{SpecialEvaluate, SpecialReduce, SpecialBind, SpecialRecurse} {
		env.Put(Symbol(name), SpecialOp(name))
	}
}

// AddConstants binds the constant catalog entries Zero, True, and False in
// env.
func (env *PEnv) AddConstants() {
	env.Put(Symbol(ZeroSymbol), Nat(0))
	env.Put(Symbol(TrueSymbol), Bool(true))
	env.Put(Symbol(FalseSymbol), Bool(false))
}

// InitializeRootEnv populates env with the bootstrap catalog (constants,
// primitives, and special operators) and applies any config functions.  The
// front-end may assume every catalog name is present afterwards.
func InitializeRootEnv(env *PEnv, config ...Config) *PVal {
	if env.Parent != nil {
		return env.Errorf("environment is not a root environment")
	}
	env.AddConstants()
	env.AddBuiltins()
	env.AddSpecialOps()
	for _, fn := range config {
		rc := fn(env)
		if rc.Type == PError {
			return rc
		}
	}
	return Bool(true)
}

// Primitive implementations follow.  Each returns nil when an operand is
// outside its concrete-kind set, which the dispatcher turns into a residual
// application.  A nil return is never an error.

func builtinAnd(env *PEnv, args []*PVal) *PVal {
	if !allBool(args) || len(args) != 2 {
		return nil
	}
	return Bool(args[0].Bool && args[1].Bool)
}

func builtinOr(env *PEnv, args []*PVal) *PVal {
	if !allBool(args) || len(args) != 2 {
		return nil
	}
	return Bool(args[0].Bool || args[1].Bool)
}

func builtinNot(env *PEnv, args []*PVal) *PVal {
	if len(args) != 1 || args[0].Type != PBool {
		return nil
	}
	return Bool(!args[0].Bool)
}

func builtinEqual(env *PEnv, args []*PVal) *PVal {
	if len(args) != 2 {
		return nil
	}
	eq, ok := Equal(args[0], args[1])
	if !ok {
		return nil
	}
	return Bool(eq)
}

func builtinSucc(env *PEnv, args []*PVal) *PVal {
	if len(args) != 1 || args[0].Type != PNat {
		return nil
	}
	if args[0].Nat == math.MaxInt {
		return env.ErrorConditionf(CondOverflow, "successor overflows the host integer")
	}
	return Nat(args[0].Nat + 1)
}

func builtinAdd(env *PEnv, args []*PVal) *PVal {
	if !allNat(args) || len(args) != 2 {
		return nil
	}
	if args[0].Nat > math.MaxInt-args[1].Nat {
		return env.ErrorConditionf(CondOverflow, "sum overflows the host integer")
	}
	return Nat(args[0].Nat + args[1].Nat)
}

func builtinLessThan(env *PEnv, args []*PVal) *PVal {
	if !allNat(args) || len(args) != 2 {
		return nil
	}
	return Bool(args[0].Nat < args[1].Nat)
}

func allBool(args []*PVal) bool {
	for _, v := range args {
		if v.Type != PBool {
			return false
		}
	}
	return true
}

func allNat(args []*PVal) bool {
	for _, v := range args {
		if v.Type != PNat {
			return false
		}
	}
	return true
}
