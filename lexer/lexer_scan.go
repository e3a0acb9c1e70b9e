package lexer

import "github.com/gounits/uparse/token"

// lexRaw produces the next token ignoring the space-run juxtaposition rule,
// which Next applies on top of this result.
func (l *Lexer) lexRaw() token.Token {
	l.skipSpaces()

	if l.cur() == 0 {
		return token.Token{Type: token.EOF, Pos: l.pos}
	}

	if l.cur() == '\n' {
		return illegal(l.pos, "unexpected newline in unit specification")
	}

	// Timestamp continuation: only reachable while the parser is still
	// inside a SHIFT's right-hand side.
	switch l.ts {
	case tsAfterDate:
		if t, ok := l.tryLexClockOrMarker(); ok {
			return t
		}
		l.ts = tsNone
	case tsAfterClock:
		if t, ok := l.tryLexTZOrMarker(); ok {
			return t
		}
		l.ts = tsNone
	}

	if l.afterShift && l.inTimeContext() && (isDigit(l.cur()) || ((l.cur() == '+' || l.cur() == '-') && isDigit(l.peek(1)))) {
		if t, ok := l.tryLexDate(); ok {
			return t
		}
	}

	c := l.cur()

	switch {
	case c == '@':
		l.advance()
		return token.Token{Type: token.SHIFT, Pos: l.pos - 1}

	case c == '.':
		if isDigit(l.peek(1)) {
			return l.readNumber()
		}
		l.advance()
		return token.Token{Type: token.MULTIPLY, Pos: l.pos - 1}

	case c == '*':
		start := l.pos
		l.advance()
		if l.cur() == '*' {
			l.advance()
			return l.readExponentInt(start)
		}
		return token.Token{Type: token.MULTIPLY, Pos: start}

	case c == '·': // ·
		l.advance()
		return token.Token{Type: token.MULTIPLY, Pos: l.pos - 1}

	case c == '/':
		l.advance()
		return token.Token{Type: token.DIVIDE, Pos: l.pos - 1}

	case c == '^':
		start := l.pos
		l.advance()
		return l.readExponentInt(start)

	case c == '(':
		l.advance()
		return token.Token{Type: token.LPAREN, Pos: l.pos - 1}

	case c == ')':
		l.advance()
		return token.Token{Type: token.RPAREN, Pos: l.pos - 1}

	case isSuperscriptStart(c):
		return l.readSuperscriptExponent()

	case c == '+':
		return l.readSignDispatch()

	case c == '-':
		return l.readSignDispatch()

	case isDigit(c):
		return l.readNumber()

	case isStandaloneIdentChar(c):
		start := l.pos
		l.advance()
		return token.Token{Type: token.ID, Str: string(c), Pos: start}

	case isLetterLike(c):
		return l.readIdentifierOrWord()
	}

	l.advance()
	return illegal(l.pos-1, "unexpected character %q", c)
}

// readSignDispatch handles '+' and '-' per spec.md §4.2.4: a hyphen not
// immediately followed by a digit (or decimal point + digit) is MULTIPLY;
// otherwise the sign belongs to the following numeric literal. Both signs
// are also checked against the forbidden NaN/Inf/Infinity literals first.
func (l *Lexer) readSignDispatch() token.Token {
	start := l.pos
	sign := l.cur()
	if end, ok := l.forbiddenWordAt(l.pos + 1); ok {
		word := string(l.text[l.pos+1 : end])
		l.pos = end
		return illegal(start, "%c%s: NaN/Inf/Infinity literals are not allowed", sign, word)
	}

	followsNumber := isDigit(l.peek(1)) || (l.peek(1) == '.' && isDigit(l.peek(2)))
	if sign == '-' && !followsNumber {
		l.advance()
		return token.Token{Type: token.MULTIPLY, Pos: start}
	}
	if sign == '+' && !followsNumber {
		l.advance()
		return illegal(start, "unexpected character '+'")
	}
	return l.readNumber()
}
