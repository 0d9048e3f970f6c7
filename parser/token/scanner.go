// Copyright © 2025 The Peano authors

package token

import (
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"
)

// Scanner produces tokens from a byte stream (io.Reader).  The grammar's
// tokens are single-rune delimiters, quoted digit runs, and symbols, so the
// whole stream is buffered up front and scanned by rune.
type Scanner struct {
	file string
	src  []byte

	pos  int // byte offset of the next rune
	line int // line number at pos
	col  int // column number at pos (runes on the line so far, plus one)

	readErr error
}

// NewScanner initializes and returns a new Scanner reading from r.
func NewScanner(file string, r io.Reader) *Scanner {
	src, err := io.ReadAll(r)
	return &Scanner{
		file:    file,
		src:     src,
		line:    1,
		col:     1,
		readErr: err,
	}
}

// ScanToken returns the next token in the stream.  At the end of the stream
// ScanToken returns EOF tokens forever.  Scan errors are reported as ERROR
// tokens carrying the message text.
func (s *Scanner) ScanToken() *Token {
	if s.readErr != nil {
		return s.errorf("read error: %v", s.readErr)
	}
	s.skipSpace()
	loc := s.location()
	c, size := s.peekRune()
	switch {
	case size == 0:
		return &Token{Type: EOF, Source: loc}
	case c == utf8.RuneError:
		return s.errorf("invalid UTF-8 sequence")
	case c == '[':
		s.advance(size)
		return &Token{Type: BRACK_L, Text: "[", Source: loc}
	case c == ']':
		s.advance(size)
		return &Token{Type: BRACK_R, Text: "]", Source: loc}
	case c == ',':
		s.advance(size)
		return &Token{Type: COMMA, Text: ",", Source: loc}
	case c == '\'':
		s.advance(size)
		return s.scanNat(loc)
	case unicode.IsLetter(c):
		return s.scanSymbol(loc)
	default:
		return s.errorf("unexpected character %q", c)
	}
}

// scanNat scans the digit run of a peano literal.  The leading quote has
// already been consumed.
func (s *Scanner) scanNat(loc *Location) *Token {
	start := s.pos
	for {
		c, size := s.peekRune()
		if size == 0 || c < '0' || c > '9' {
			break
		}
		s.advance(size)
	}
	if s.pos == start {
		return s.errorf("literal quote is not followed by digits")
	}
	return &Token{Type: NAT, Text: "'" + string(s.src[start:s.pos]), Source: loc}
}

// scanSymbol scans a symbol: a letter followed by letters and digits.
func (s *Scanner) scanSymbol(loc *Location) *Token {
	start := s.pos
	for {
		c, size := s.peekRune()
		if size == 0 || !(unicode.IsLetter(c) || unicode.IsDigit(c)) {
			break
		}
		s.advance(size)
	}
	return &Token{Type: SYMBOL, Text: string(s.src[start:s.pos]), Source: loc}
}

func (s *Scanner) skipSpace() {
	for {
		c, size := s.peekRune()
		if size == 0 || !unicode.IsSpace(c) {
			return
		}
		s.advance(size)
	}
}

func (s *Scanner) peekRune() (rune, int) {
	if s.pos >= len(s.src) {
		return 0, 0
	}
	return utf8.DecodeRune(s.src[s.pos:])
}

func (s *Scanner) advance(size int) {
	if s.src[s.pos] == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	s.pos += size
}

func (s *Scanner) location() *Location {
	return &Location{
		File: s.file,
		Pos:  s.pos,
		Line: s.line,
		Col:  s.col,
	}
}

func (s *Scanner) errorf(format string, v ...interface{}) *Token {
	return &Token{
		Type:   ERROR,
		Text:   fmt.Sprintf(format, v...),
		Source: s.location(),
	}
}
