package lexer

import (
	"strconv"
	"strings"

	"github.com/gounits/uparse/token"
)

// readNumber reads spec.md §4.2.2's INT or REAL literal, optionally signed.
// The leading sign, if any, has already been left unconsumed by the caller.
func (l *Lexer) readNumber() token.Token {
	start := l.pos
	if l.cur() == '+' || l.cur() == '-' {
		l.advance()
	}

	digitsBefore := l.pos
	for isDigit(l.cur()) {
		l.advance()
	}
	hasIntPart := l.pos > digitsBefore

	hasDot := false
	if l.cur() == '.' {
		hasDot = true
		l.advance()
		for isDigit(l.cur()) {
			l.advance()
		}
	}

	if !hasIntPart && !hasDot {
		// Lone sign with nothing following; shouldn't reach here given the
		// caller's lookahead, but fail safe.
		return illegal(start, "malformed number")
	}

	hasExp := false
	if l.cur() == 'e' || l.cur() == 'E' {
		save := l.pos
		l.advance()
		if l.cur() == '+' || l.cur() == '-' {
			l.advance()
		}
		expStart := l.pos
		for isDigit(l.cur()) {
			l.advance()
		}
		if l.pos > expStart {
			hasExp = true
		} else {
			l.pos = save // not actually an exponent
		}
	}

	lexeme := string(l.text[start:l.pos])

	if !hasDot && !hasExp {
		n, err := strconv.ParseInt(lexeme, 10, 64)
		if err != nil {
			// Overflows int64: still a valid literal, represent as REAL.
			f, ferr := strconv.ParseFloat(lexeme, 64)
			if ferr != nil {
				return illegal(start, "malformed number %q", lexeme)
			}
			return token.Token{Type: token.REAL, RealVal: f, Pos: start}
		}
		return token.Token{Type: token.INT, IntVal: n, Pos: start}
	}

	f, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		return illegal(start, "malformed number %q", lexeme)
	}
	return token.Token{Type: token.REAL, RealVal: f, Pos: start}
}

// readExponentInt reads the <INT> half of "^N" or "**N". The cursor is at
// the character right after the operator lexeme already consumed; opStart
// is the operator's own position, used as the token's Pos.
func (l *Lexer) readExponentInt(opStart int) token.Token {
	sign := int32(1)
	if l.cur() == '+' || l.cur() == '-' {
		if l.cur() == '-' {
			sign = -1
		}
		l.advance()
	}
	digStart := l.pos
	for isDigit(l.cur()) {
		l.advance()
	}
	if l.pos == digStart {
		return illegal(opStart, "exponent operator not followed by an integer")
	}
	n, err := strconv.ParseInt(string(l.text[digStart:l.pos]), 10, 32)
	if err != nil {
		return illegal(opStart, "exponent out of range")
	}
	return token.Token{Type: token.EXPONENT, Exp: sign * int32(n), Pos: opStart}
}

func isSuperscriptStart(r rune) bool {
	return r == '⁺' || r == '⁻' || strings.ContainsRune(superscriptDigits, r)
}

// readSuperscriptExponent reads a run of Unicode superscript digits with an
// optional leading superscript sign.
func (l *Lexer) readSuperscriptExponent() token.Token {
	start := l.pos
	sign := int32(1)
	switch l.cur() {
	case '⁺':
		l.advance()
	case '⁻':
		sign = -1
		l.advance()
	}
	digStart := l.pos
	var digits strings.Builder
	for {
		idx := strings.IndexRune(superscriptDigits, l.cur())
		if idx < 0 {
			break
		}
		digits.WriteByte(byte('0' + idx))
		l.advance()
	}
	if l.pos == digStart {
		return illegal(start, "superscript sign not followed by superscript digits")
	}
	n, err := strconv.ParseInt(digits.String(), 10, 32)
	if err != nil {
		return illegal(start, "superscript exponent out of range")
	}
	return token.Token{Type: token.EXPONENT, Exp: sign * int32(n), Pos: start}
}

// forbiddenWordAt checks whether the letters starting at pos spell exactly
// "nan", "inf", or "infinity" (case-insensitive), per spec.md §4.2.2.
func (l *Lexer) forbiddenWordAt(pos int) (end int, ok bool) {
	end = pos
	for end < len(l.text) && isASCIILetter(l.text[end]) {
		end++
	}
	if end == pos {
		return pos, false
	}
	switch strings.ToLower(string(l.text[pos:end])) {
	case "nan", "inf", "infinity":
		return end, true
	}
	return pos, false
}

func isASCIILetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}
