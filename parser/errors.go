package parser

import "fmt"

// UnknownIdentifierError is returned when an identifier fails §4.3's
// prefix-peeling resolution loop entirely — the driver maps this, and only
// this, to the UNKNOWN status; every other parser error is SYNTAX.
type UnknownIdentifierError struct {
	Lexeme string
}

func (e *UnknownIdentifierError) Error() string {
	return fmt.Sprintf("Don't recognize %q", e.Lexeme)
}

// SyntaxError reports a grammatical failure at a given byte offset.
type SyntaxError struct {
	Pos     int
	Message string
}

func (e *SyntaxError) Error() string { return e.Message }
