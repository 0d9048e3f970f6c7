// Copyright © 2025 The Peano authors

// Package pcparser provides an alternative peano parser built on parser
// combinators.
//
//	expr    := atom group*
//	atom    := nat | symbol
//	nat     := /'[0-9]+/
//	symbol  := /[\pL][\pL0-9]*/
//	group   := '[' (expr (',' expr)*)? ']'
//
// Each postfix bracket group applies the expression to its left, so chained
// groups produce nested applications exactly like the recursive descent parser.
package pcparser

import (
	"fmt"
	"io"
	"strconv"

	parsec "github.com/prataprc/goparsec"

	"github.com/peanolang/peano/peano"
)

// NewReader returns a peano.Reader.
func NewReader() peano.Reader {
	return &parsecReader{}
}

type parsecReader struct{}

func (p *parsecReader) Read(name string, r io.Reader) ([]*peano.PVal, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	vals, n, err := ParsePVal(b)
	if err != nil {
		return nil, err
	}
	if n != len(b) {
		return nil, io.ErrUnexpectedEOF
	}
	return vals, nil
}

const (
	nodeInvalid nodeType = iota
	nodeAtom
	nodeGroup
	nodeExpr
)

var nodeTypeStrings = []string{
	nodeInvalid: "INVALID",
	nodeAtom:    "ATOM",
	nodeGroup:   "GROUP",
	nodeExpr:    "EXPR",
}

// ParsePVal parses PVal values from text and returns them.  The number of
// bytes consumed is returned along with any error that was encountered in
// parsing.
func ParsePVal(text []byte) ([]*peano.PVal, int, error) {
	var v []*peano.PVal
	s := parsec.NewScanner(text)
	parser := newParsecParser()
	root, s := parser(s)
	for root != nil {
		val, err := getPVal(root)
		if err != nil {
			return v, s.GetCursor(), err
		}
		v = append(v, val)
		root, s = parser(s)
	}
	_, s = s.SkipWS()
	if !s.Endof() {
		b, _ := s.Match(`.{1,16}`)
		if len(b) > 15 {
			b = append(b[:15:15], []byte("...")...)
		}
		return v, s.GetCursor(), fmt.Errorf("unexpected source text possibly starting: %s", b)
	}
	return v, s.GetCursor(), nil
}

func newParsecParser() parsec.Parser {
	openB := parsec.Atom("[", "OPENB")
	closeB := parsec.Atom("]", "CLOSEB")
	comma := parsec.Atom(",", "COMMA")
	nat := parsec.Token(`'[0-9]+`, "NAT")
	symbol := parsec.Token(`\pL[\pL0-9]*`, "SYMBOL")

	var expr parsec.Parser // forward declaration allows for recursive parsing
	atom := parsec.OrdChoice(astNode(nodeAtom), nat, symbol)
	operands := parsec.Kleene(nil, &expr, comma)
	group := parsec.And(astNode(nodeGroup), openB, operands, closeB)
	groups := parsec.Kleene(nil, group)
	expr = parsec.And(astNode(nodeExpr), atom, groups)
	return expr
}

type nodeType uint

func (t nodeType) String() string {
	if int(t) >= len(nodeTypeStrings) {
		return "INVALID"
	}
	return nodeTypeStrings[t]
}

type ast struct {
	children []parsec.ParsecNode
	typ      nodeType
}

func astNode(typ nodeType) parsec.Nodify {
	return func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		return &ast{children: nodes, typ: typ}
	}
}

// getPVal converts a parse tree rooted at node into an expression.
func getPVal(node parsec.ParsecNode) (*peano.PVal, error) {
	root, ok := node.(*ast)
	if !ok || root.typ != nodeExpr {
		return nil, fmt.Errorf("unexpected parse node: %v", node)
	}
	expr, err := getAtom(root.children[0])
	if err != nil {
		return nil, err
	}
	groups, ok := root.children[1].([]parsec.ParsecNode)
	if !ok {
		// Kleene matched zero groups.
		return expr, nil
	}
	for _, g := range groups {
		operands, err := getGroup(g)
		if err != nil {
			return nil, err
		}
		expr = peano.AppExpr(expr, operands)
	}
	return expr, nil
}

func getAtom(node parsec.ParsecNode) (*peano.PVal, error) {
	a, ok := node.(*ast)
	if !ok || a.typ != nodeAtom || len(a.children) == 0 {
		return nil, fmt.Errorf("unexpected parse node: %v", node)
	}
	term, ok := a.children[0].(*parsec.Terminal)
	if !ok {
		return nil, fmt.Errorf("unexpected terminal node: %v", a.children[0])
	}
	switch term.Name {
	case "NAT":
		n, err := strconv.Atoi(term.Value[1:])
		if err != nil {
			return nil, fmt.Errorf("invalid natural literal %s: %v", term.Value, err)
		}
		v := peano.Nat(n)
		if err := peano.GoError(v); err != nil {
			return nil, err
		}
		return v, nil
	case "SYMBOL":
		return peano.Symbol(term.Value), nil
	default:
		return nil, fmt.Errorf("unexpected terminal %s", term.Name)
	}
}

func getGroup(node parsec.ParsecNode) ([]*peano.PVal, error) {
	g, ok := node.(*ast)
	if !ok || g.typ != nodeGroup {
		return nil, fmt.Errorf("unexpected parse node: %v", node)
	}
	// children are openB, operand list, closeB
	operands, ok := g.children[1].([]parsec.ParsecNode)
	if !ok {
		return nil, nil
	}
	vals := make([]*peano.PVal, 0, len(operands))
	for _, o := range operands {
		v, err := getPVal(o)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}
