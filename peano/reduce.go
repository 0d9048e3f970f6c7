// Copyright © 2025 The Peano authors

package peano

// Reduce rewrites v under the restricted semantics: only primitive-operator
// applications are normalized.  Bind application, structural recursion, and
// the Evaluate/Reduce special forms are never performed; applying any of
// them as an operator yields an inert residual term.  Reduce and Eval are
// two separate rewrite strategies over the same term grammar, each
// idempotent on its own normal forms.
func (env *PEnv) Reduce(v *PVal) *PVal {
	if v.Source != nil {
		env.Loc = v.Source
	}
	switch v.Type {
	case PSymbol:
		return env.Get(v)
	case PAppExpr:
		return env.reduceApp(v)
	case PError:
		return v
	default:
		return v
	}
}

func (env *PEnv) reduceApp(v *PVal) *PVal {
	if !env.Runtime.enter() {
		return env.ErrorConditionf(CondRecursionLimit, "maximum reduction depth exceeded: %d", env.Runtime.MaxDepth)
	}
	defer env.Runtime.leave()

	op := env.Reduce(v.Cells[0])
	if op.Type == PError {
		return op
	}

	// Operands of a Bind or Recurse constructor are syntax, not values.
	// They are carried into the residual untouched so that parameter names
	// and case bodies survive for a later Evaluate.
	if op.Type == PSpecialOp && (op.Str == SpecialBind || op.Str == SpecialRecurse) {
		return AppExpr(op, v.Cells[1:])
	}

	operands := v.Cells[1:]
	args := make([]*PVal, len(operands))
	for i, cell := range operands {
		args[i] = env.Reduce(cell)
		if args[i].Type == PError {
			return args[i]
		}
	}

	if op.Type == PPrimitive {
		if p := env.Runtime.Profiler; p != nil && p.IsEnabled() {
			defer p.Start(op)()
		}
		if r := op.Fun(env, args); r != nil {
			return r
		}
	}
	return AppExpr(op, args)
}
