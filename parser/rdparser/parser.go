// Copyright © 2025 The Peano authors

// Package rdparser implements the primary recursive descent parser for the
// peano grammar:
//
//	expression  := peanoLiteral | symbol | application
//	peanoLiteral:= "'" digits
//	symbol      := letter (letter|digit)*
//	application := expression "[" argList "]"
//	argList     := (expression ("," expression)*)?
//
// Operand splitting is bracket-depth aware by construction: each operand is
// parsed as a complete expression, so commas inside nested applications can
// never split an enclosing operand list.  The parser performs no semantic
// resolution; symbols stay unresolved until evaluation.
package rdparser

import (
	"io"
	"strconv"

	"github.com/peanolang/peano/parser/token"
	"github.com/peanolang/peano/peano"
)

type reader struct{}

// NewReader returns a peano.Reader to use in a peano.Runtime.
func NewReader() peano.Reader {
	return &reader{}
}

// Read implements peano.Reader.
func (*reader) Read(name string, r io.Reader) ([]*peano.PVal, error) {
	s := token.NewScanner(name, r)
	p := New(s)
	return p.ParseProgram()
}

// Parser parses peano expressions from a token stream.
type Parser struct {
	src *TokenSource
}

// NewFromSource initializes and returns a Parser that reads tokens from src.
func NewFromSource(src *TokenSource) *Parser {
	return &Parser{src: src}
}

// New initializes and returns a new Parser that reads tokens from scanner.
func New(scanner *token.Scanner) *Parser {
	return NewFromSource(NewTokenSource(scanner))
}

// Parse is a generic entry point that is similar to ParseExpression but is
// capable of handling EOF before reading an expression.
func (p *Parser) Parse() (*peano.PVal, error) {
	if p.src.IsEOF() {
		return nil, io.EOF
	}
	expr := p.ParseExpression()
	if expr.Type == peano.PError {
		return nil, peano.GoError(expr)
	}
	return expr, nil
}

// ParseProgram parses a series of expressions until the stream is exhausted.
func (p *Parser) ParseProgram() ([]*peano.PVal, error) {
	var exprs []*peano.PVal
	for {
		expr, err := p.Parse()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

// ParseExpression parses a single expression.  Unlike Parse, ParseExpression
// requires an expression to be present in the input stream and reports
// unexpected EOF tokens encountered.
func (p *Parser) ParseExpression() *peano.PVal {
	expr := p.parseAtom()
	if expr.Type == peano.PError {
		return expr
	}
	// Postfix bracket groups chain applications: f[x][y] applies the result
	// of f[x] to y.
	for p.PeekType() == token.BRACK_L {
		expr = p.parseApplication(expr)
		if expr.Type == peano.PError {
			return expr
		}
	}
	return expr
}

func (p *Parser) parseAtom() *peano.PVal {
	switch p.PeekType() {
	case token.NAT:
		return p.parseNat()
	case token.SYMBOL:
		p.src.Scan()
		return p.located(peano.Symbol(p.src.Token().Text))
	case token.ERROR:
		p.src.Scan()
		return p.errorCondf(peano.CondScanError, "%s", p.src.Token().Text)
	case token.EOF:
		return p.errorCondf(peano.CondUnmatchedSyntax, "unexpected end of input")
	default:
		p.src.Scan()
		return p.errorCondf(peano.CondParseError, "unexpected token: %v", p.src.Token().Type)
	}
}

func (p *Parser) parseNat() *peano.PVal {
	p.src.Scan()
	text := p.src.Token().Text
	n, err := strconv.Atoi(text[1:])
	if err != nil {
		return p.errorCondf(peano.CondInvalidLiteral, "invalid natural literal %s: %v", text, err)
	}
	v := peano.Nat(n)
	if v.Type == peano.PError {
		return v
	}
	return p.located(v)
}

// parseApplication parses one bracketed operand list and applies op to it.
// The opening bracket has been peeked but not consumed.
func (p *Parser) parseApplication(op *peano.PVal) *peano.PVal {
	p.src.Scan() // consume '['
	loc := p.src.Token().Source
	var operands []*peano.PVal
	if p.PeekType() != token.BRACK_R {
		for {
			arg := p.ParseExpression()
			if arg.Type == peano.PError {
				return arg
			}
			operands = append(operands, arg)
			if p.PeekType() != token.COMMA {
				break
			}
			p.src.Scan() // consume ','
		}
	}
	if p.PeekType() != token.BRACK_R {
		if p.PeekType() == token.EOF {
			return p.errorCondf(peano.CondUnmatchedSyntax, "unmatched bracket: [")
		}
		p.src.Scan()
		return p.errorCondf(peano.CondParseError, "unexpected token in operand list: %v", p.src.Token().Type)
	}
	p.src.Scan() // consume ']'
	expr := peano.AppExpr(op, operands)
	expr.Source = loc
	return expr
}

// PeekType returns the type of the next token in the stream.
func (p *Parser) PeekType() token.Type {
	return p.src.Peek().Type
}

func (p *Parser) located(v *peano.PVal) *peano.PVal {
	v.Source = p.src.Token().Source
	return v
}

func (p *Parser) errorCondf(condition string, format string, v ...interface{}) *peano.PVal {
	lerr := peano.ErrorConditionf(condition, format, v...)
	if tok := p.src.Token(); tok != nil {
		lerr.Source = tok.Source
	}
	return lerr
}
