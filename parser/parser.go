// Copyright © 2025 The Peano authors

package parser

import (
	"github.com/peanolang/peano/parser/rdparser"
	"github.com/peanolang/peano/peano"
)

// NewReader returns a new peano.Reader
func NewReader() peano.Reader {
	return rdparser.NewReader()
}
