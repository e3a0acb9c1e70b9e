// Package token defines the token stream shared by the unit-spec lexer and parser.
package token

import "fmt"

// Type identifies the kind of a Token.
type Type int

const (
	// ILLEGAL marks a lexical error; Token.Err carries the diagnostic.
	ILLEGAL Type = iota
	EOF

	INT      // signed integer literal
	REAL     // signed real literal
	ID       // identifier (name, symbol, or prefix span)
	SHIFT    // @, after, from, since, ref
	MULTIPLY // -, ., *, ·, or a run of spaces between two non-operator tokens
	DIVIDE   // /, or "per" surrounded by ASCII space
	EXPONENT // ^N, **N, or a run of superscript digits

	DATE     // broken or packed calendar date, seconds since epoch midnight
	CLOCK    // broken or packed clock, seconds since midnight
	TZCLOCK  // signed timezone offset in seconds, East positive
	ZTOK     // "Z"
	GMTTOK   // "GMT"
	UTCTOK   // "UTC"
	LOGREF   // opening "<log>(re[:]" segment; payload is the log base
	LPAREN
	RPAREN
)

func (t Type) String() string {
	switch t {
	case ILLEGAL:
		return "ILLEGAL"
	case EOF:
		return "EOF"
	case INT:
		return "INT"
	case REAL:
		return "REAL"
	case ID:
		return "ID"
	case SHIFT:
		return "SHIFT"
	case MULTIPLY:
		return "MULTIPLY"
	case DIVIDE:
		return "DIVIDE"
	case EXPONENT:
		return "EXPONENT"
	case DATE:
		return "DATE"
	case CLOCK:
		return "CLOCK"
	case TZCLOCK:
		return "TZCLOCK"
	case ZTOK:
		return "Z"
	case GMTTOK:
		return "GMT"
	case UTCTOK:
		return "UTC"
	case LOGREF:
		return "LOGREF"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	default:
		return "UNKNOWN"
	}
}

// Token is a single lexical unit with its semantic payload.
//
// Only the field relevant to Type is populated; the rest are zero.
type Token struct {
	Type Type
	Pos  int // byte offset into the trimmed input, for error snippets

	IntVal  int64
	RealVal float64
	Str     string // ID lexeme, or the ILLEGAL diagnostic message
	Exp     int32  // EXPONENT payload

	Seconds float64 // DATE / CLOCK / TZCLOCK payload

	LogBase float64 // LOGREF payload
	Word    bool    // SHIFT payload: true for after/from/since/ref, false for "@"
}

func (t Token) String() string {
	switch t.Type {
	case ID:
		return fmt.Sprintf("ID(%q)", t.Str)
	case INT:
		return fmt.Sprintf("INT(%d)", t.IntVal)
	case REAL:
		return fmt.Sprintf("REAL(%g)", t.RealVal)
	case ILLEGAL:
		return fmt.Sprintf("ILLEGAL(%s)", t.Str)
	default:
		return t.Type.String()
	}
}

// Err reports the lexer-side diagnostic carried by an ILLEGAL token.
func (t Token) Err() error {
	if t.Type != ILLEGAL {
		return nil
	}
	return &LexError{Message: t.Str, Pos: t.Pos}
}

// LexError is a lexical diagnostic with the byte offset it occurred at.
type LexError struct {
	Message string
	Pos     int
}

func (e *LexError) Error() string {
	return e.Message
}
