// Package parser implements spec.md §4.4's grammar over the lexer's token
// stream, composing the unit expression by calling package unitsys's
// algebraic primitives and resolving identifiers per §4.3.
package parser

import (
	"fmt"

	"github.com/gounits/uparse/lexer"
	"github.com/gounits/uparse/token"
	"github.com/gounits/uparse/unitsys"
)

// Parser walks a single bounded token stream exactly once. It is not
// reentrant or safe for concurrent use; callers construct one Parser per
// parse, matching spec.md §9's per-parse-context design.
type Parser struct {
	sys *unitsys.System
	lex *lexer.Lexer
	tok token.Token

	// timeConvertible mirrors spec.md §3's "current product is a time
	// quantity" flag. The parser updates it each time a product-so-far is
	// reduced. The token right after the product (e.g. a SHIFT) has already
	// been lexed by then, but the token after a SHIFT is requested only
	// afterward, so the lexer's date/clock sub-scanner (consulted through
	// InTimeContext) sees an up-to-date value.
	timeConvertible bool
}

// New constructs a Parser over src, resolving identifiers against sys.
func New(sys *unitsys.System, src string) *Parser {
	p := &Parser{sys: sys}
	p.lex = lexer.New(src, p)
	p.advance()
	return p
}

// InTimeContext implements lexer.TimeContext.
func (p *Parser) InTimeContext() bool { return p.timeConvertible }

func (p *Parser) advance() { p.tok = p.lex.Next() }

// Parse runs spec := ε | shift. It does not check that the lookahead has
// reached EOF afterward: residual input is the caller's job to detect
// through AtEOF (the driver does so and reports the unconsumed tail by
// byte position).
func (p *Parser) Parse() (unitsys.Unit, error) {
	if p.tok.Type == token.ILLEGAL {
		return unitsys.Unit{}, p.tok.Err()
	}
	if p.tok.Type == token.EOF {
		return unitsys.DimensionlessOne(), nil
	}
	return p.parseShift()
}

// Pos reports the byte offset of the current lookahead token, used by the
// driver to build the "unexpected text after..." snippet.
func (p *Parser) Pos() int { return p.tok.Pos }

// AtEOF reports whether the parser's lookahead has reached end of input.
func (p *Parser) AtEOF() bool { return p.tok.Type == token.EOF }

func syntaxf(pos int, format string, args ...interface{}) error {
	return &SyntaxError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}
