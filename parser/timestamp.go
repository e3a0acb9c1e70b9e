package parser

import "github.com/gounits/uparse/token"

// parseTimestamp implements:
//
//	timestamp := DATE
//	           | DATE CLOCK
//	           | DATE CLOCK TZ_CLOCK           -> DATE + (CLOCK - TZ_CLOCK)
//	           | DATE CLOCK (Z|GMT|UTC)
//	           | DATE Z
//
// and returns the assembled seconds-since-epoch value. It is only called
// right after a SHIFT, so DATE is mandatory; anything else is a syntax
// error (this is exactly what turns "m since 2000" into SYNTAX, since a
// non-time-convertible product leaves the lexer's date sub-scanner
// disabled and "2000" arrives here as a plain INT instead of a DATE).
func (p *Parser) parseTimestamp() (float64, error) {
	if p.tok.Type == token.ILLEGAL {
		return 0, p.tok.Err()
	}
	if p.tok.Type != token.DATE {
		return 0, syntaxf(p.tok.Pos, "expected a date after the time-shift operator")
	}
	total := p.tok.Seconds
	p.advance()
	if p.tok.Type == token.ILLEGAL {
		return 0, p.tok.Err()
	}

	switch p.tok.Type {
	case token.ZTOK, token.GMTTOK, token.UTCTOK:
		p.advance()
		return total, nil
	case token.CLOCK:
		total += p.tok.Seconds
		p.advance()
	default:
		return total, nil
	}
	if p.tok.Type == token.ILLEGAL {
		return 0, p.tok.Err()
	}

	switch p.tok.Type {
	case token.ZTOK, token.GMTTOK, token.UTCTOK:
		p.advance()
	case token.TZCLOCK:
		total -= p.tok.Seconds
		p.advance()
	}
	return total, nil
}
