// Copyright © 2025 The Peano authors

// Package peano implements a small expression language built on Peano-style
// natural numbers.  The language has two operational semantics over one term
// grammar: full evaluation (PEnv.Eval) applies binding forms, runs structural
// recursion, and honors the special forms, while restricted reduction
// (PEnv.Reduce) normalizes only primitive-operator applications and leaves
// every user-defined form inert.
package peano

import (
	"bytes"
	"strconv"

	"github.com/peanolang/peano/parser/token"
)

// PType is the type of a PVal.
type PType uint

// Possible PType values.
const (
	// PInvalid (0) is not a valid peano type.
	PInvalid PType = iota
	// PNat values store a non-negative integer in the PVal.Nat field.
	// Construction from a negative integer produces an invalid-construction
	// error value instead of a natural.
	PNat
	// PBool values store a bool in the PVal.Bool field.
	PBool
	// PError values store a condition name in PVal.Str and message data in
	// PVal.Cells.  See ErrorVal for the Go error adaptor.
	PError
	// PSymbol values store an unresolved name in the PVal.Str field.  A
	// symbol has no meaning until it is looked up in a PEnv.
	PSymbol
	// PAppExpr values store the operator in PVal.Cells[0] and the operands,
	// in order, in PVal.Cells[1:].  An application that no semantics can
	// rewrite further is called residual and is a value in its own right.
	PAppExpr
	// PBind values are lambda-like abstractions.  Parameter names are stored
	// in PVal.Params and the body in PVal.Cells[0].  A bind form captures no
	// environment; free names in the body resolve against the environment at
	// the application call site.
	PBind
	// PRecur values are structural-recursion combinators over one natural.
	// The induction variable name is stored in PVal.Str, the recursive case
	// in PVal.Cells[0] and the base case in PVal.Cells[1].
	PRecur
	// PSpecialOp values identify the operators whose dispatch is built into
	// the evaluator (Evaluate, Reduce, Bind, Recurse).  The operator name is
	// stored in PVal.Str and discriminates the form.
	PSpecialOp
	// PPrimitive values wrap a native operator.  The catalog name is stored
	// in PVal.Str and the implementation in PVal.Fun.  Primitives are not
	// constructible from source text, only reachable via environment lookup.
	PPrimitive
	// PTypeMax is not a real type.  It is numerically greater than all valid
	// PType values.
	PTypeMax
)

var ptypeStrings = []string{
	PInvalid:   "INVALID",
	PNat:       "natural",
	PBool:      "boolean",
	PError:     "error",
	PSymbol:    "symbol",
	PAppExpr:   "application",
	PBind:      "bind",
	PRecur:     "recurse",
	PSpecialOp: "special-operator",
	PPrimitive: "primitive",
}

func (t PType) String() string {
	if t >= PType(len(ptypeStrings)) {
		return ptypeStrings[PInvalid]
	}
	return ptypeStrings[t]
}

// Names of the special operators bound by the bootstrap catalog.  The
// evaluator dispatches PSpecialOp values on these names.
const (
	SpecialEvaluate = "Evaluate"
	SpecialReduce   = "Reduce"
	SpecialBind     = "Bind"
	SpecialRecurse  = "Recurse"
)

// Names of the constant catalog bindings and of the symbol bound to the
// predecessor result during structural recursion.
const (
	ZeroSymbol  = "Zero"
	TrueSymbol  = "True"
	FalseSymbol = "False"
	SelfSymbol  = "Self"
)

// PBuiltin is the native implementation of a primitive operator.  A builtin
// returns nil when its operands are not of the concrete kinds it computes on,
// which signals the caller to construct a residual application instead.  A
// nil return is not an error path.
type PBuiltin func(env *PEnv, args []*PVal) *PVal

// PVal is a peano language value.  Constructed values are immutable; a PVal
// may be referenced from many applications without copying.
type PVal struct {
	// Source is the value's originating location in source code, when one is
	// known.  The reference may be shared by multiple PVals.
	Source *token.Location

	// Str stores the symbol name (PSymbol), the catalog name (PPrimitive,
	// PSpecialOp), the induction variable (PRecur), or the error condition
	// (PError).
	Str string

	// Params stores the ordered parameter names of a PBind value.
	Params []string

	// Cells stores sub-expressions: operator and operands for PAppExpr, the
	// body for PBind, the recursive and base cases for PRecur, and message
	// values for PError.
	Cells []*PVal

	// Fun is the native implementation backing a PPrimitive value.
	Fun PBuiltin

	// Type is the variant tag for the value.
	Type PType

	// Nat stores the value of a PNat.  Always non-negative.
	Nat int

	// Bool stores the value of a PBool.
	Bool bool
}

var singletonTrue = &PVal{Type: PBool, Bool: true}
var singletonFalse = &PVal{Type: PBool, Bool: false}

// Nat returns a natural number value.  When n is negative Nat returns an
// invalid-construction error value.
func Nat(n int) *PVal {
	if n < 0 {
		return ErrorConditionf(CondInvalidConstruction, "natural number cannot be negative: %d", n)
	}
	return &PVal{Type: PNat, Nat: n}
}

// Bool returns a shared boolean value.
func Bool(b bool) *PVal {
	if b {
		return singletonTrue
	}
	return singletonFalse
}

// Symbol returns an unresolved symbol reference.
func Symbol(name string) *PVal {
	return &PVal{Type: PSymbol, Str: name}
}

// AppExpr returns an application of op to operands.  The operand count is
// fixed at construction; arity is checked at dispatch, not here.
func AppExpr(op *PVal, operands []*PVal) *PVal {
	cells := make([]*PVal, 0, len(operands)+1)
	cells = append(cells, op)
	cells = append(cells, operands...)
	return &PVal{Type: PAppExpr, Cells: cells}
}

// Bind returns a binding form abstracting body over the named parameters.
func Bind(params []string, body *PVal) *PVal {
	return &PVal{Type: PBind, Params: params, Cells: []*PVal{body}}
}

// Recurse returns a structural-recursion form.  indVar names the induction
// variable bound to the predecessor at each step of the recursion.
func Recurse(indVar string, recursive, base *PVal) *PVal {
	return &PVal{Type: PRecur, Str: indVar, Cells: []*PVal{recursive, base}}
}

// SpecialOp returns the special-operator value for one of the Special*
// names.
func SpecialOp(name string) *PVal {
	return &PVal{Type: PSpecialOp, Str: name}
}

// Primitive wraps a native operator implementation as a value.
func Primitive(name string, fn PBuiltin) *PVal {
	return &PVal{Type: PPrimitive, Str: name, Fun: fn}
}

// Operator returns the operator sub-expression of an application.
func (v *PVal) Operator() *PVal {
	if v.Type != PAppExpr {
		return Errorf("not an application: %v", v.Type)
	}
	return v.Cells[0]
}

// Operands returns the ordered operand sub-expressions of an application.
func (v *PVal) Operands() []*PVal {
	if v.Type != PAppExpr {
		return nil
	}
	return v.Cells[1:]
}

// Body returns the body of a bind form.
func (v *PVal) Body() *PVal {
	if v.Type != PBind {
		return Errorf("not a bind form: %v", v.Type)
	}
	return v.Cells[0]
}

// IsValue returns true when v is already a value under full evaluation, that
// is when Eval returns v itself without consulting an environment.
func (v *PVal) IsValue() bool {
	switch v.Type {
	case PNat, PBool, PBind, PRecur, PSpecialOp, PPrimitive:
		return true
	}
	return false
}

// Equal reports structural value equality between a and b.  Equality is
// defined only for naturals and booleans; for any other kind ok is false and
// eq is unspecified.
func Equal(a, b *PVal) (eq bool, ok bool) {
	if a.Type != b.Type {
		return false, a.equalable() && b.equalable()
	}
	switch a.Type {
	case PNat:
		return a.Nat == b.Nat, true
	case PBool:
		return a.Bool == b.Bool, true
	}
	return false, false
}

func (v *PVal) equalable() bool {
	return v.Type == PNat || v.Type == PBool
}

// String renders v in canonical form.  Naturals render as nested successor
// applications over Zero, booleans as True/False, applications as
// Operator[operand, ...], and bind/recurse forms via their constructor form.
func (v *PVal) String() string {
	var buf bytes.Buffer
	v.str(&buf)
	return buf.String()
}

func (v *PVal) str(buf *bytes.Buffer) {
	switch v.Type {
	case PNat:
		for i := 0; i < v.Nat; i++ {
			buf.WriteString("Succ[")
		}
		buf.WriteString(ZeroSymbol)
		for i := 0; i < v.Nat; i++ {
			buf.WriteByte(']')
		}
	case PBool:
		if v.Bool {
			buf.WriteString(TrueSymbol)
		} else {
			buf.WriteString(FalseSymbol)
		}
	case PSymbol, PSpecialOp, PPrimitive:
		buf.WriteString(v.Str)
	case PAppExpr:
		v.Cells[0].str(buf)
		strOperands(buf, v.Cells[1:])
	case PBind:
		buf.WriteString(SpecialBind)
		buf.WriteByte('[')
		for _, p := range v.Params {
			buf.WriteString(p)
			buf.WriteString(", ")
		}
		v.Cells[0].str(buf)
		buf.WriteByte(']')
	case PRecur:
		buf.WriteString(SpecialRecurse)
		buf.WriteByte('[')
		buf.WriteString(v.Str)
		buf.WriteString(", ")
		v.Cells[0].str(buf)
		buf.WriteString(", ")
		v.Cells[1].str(buf)
		buf.WriteByte(']')
	case PError:
		buf.WriteString((*ErrorVal)(v).Error())
	default:
		buf.WriteString("#<invalid ")
		buf.WriteString(strconv.Itoa(int(v.Type)))
		buf.WriteByte('>')
	}
}

func strOperands(buf *bytes.Buffer, operands []*PVal) {
	buf.WriteByte('[')
	for i, cell := range operands {
		if i > 0 {
			buf.WriteString(", ")
		}
		cell.str(buf)
	}
	buf.WriteByte(']')
}
