// Copyright © 2025 The Peano authors

package rdparser

import "github.com/peanolang/peano/parser/token"

// TokenSource wraps a token.Scanner to provide one-token lookahead.
type TokenSource struct {
	scanner *token.Scanner
	tok     *token.Token
	peek    *token.Token
}

var _ token.Source = (*TokenSource)(nil)

// NewTokenSource initializes and returns a TokenSource reading from s.
func NewTokenSource(s *token.Scanner) *TokenSource {
	return &TokenSource{scanner: s}
}

// Token returns the current token.  Token returns nil if Scan has not been
// called.
func (s *TokenSource) Token() *token.Token {
	return s.tok
}

// Peek returns the next token in the stream without consuming it.
func (s *TokenSource) Peek() *token.Token {
	if s.peek == nil {
		s.peek = s.scanner.ScanToken()
	}
	return s.peek
}

// Scan advances the token stream.  Scan returns false once the stream is
// exhausted; the current token remains the EOF token afterwards.
func (s *TokenSource) Scan() bool {
	if s.tok != nil && s.tok.Type == token.EOF {
		return false
	}
	if s.peek != nil {
		s.tok = s.peek
		s.peek = nil
	} else {
		s.tok = s.scanner.ScanToken()
	}
	return s.tok.Type != token.EOF
}

// IsEOF returns true when the stream has no further tokens.
func (s *TokenSource) IsEOF() bool {
	return s.Peek().Type == token.EOF
}
