// Copyright © 2025 The Peano authors

package peano

// Error condition names.  These are stable API for programmatic error
// classification by front-ends and tooling.
const (
	CondParseError          = "parse-error"
	CondScanError           = "scan-error"
	CondUnmatchedSyntax     = "unmatched-syntax"
	CondInvalidLiteral      = "invalid-literal"
	CondUndefinedSymbol     = "undefined-symbol"
	CondArity               = "arity-error"
	CondType                = "type-error"
	CondInvalidConstruction = "invalid-construction"
	CondRecursionLimit      = "recursion-limit"
	CondOverflow            = "integer-overflow-error"
)
