package lexer

import (
	"strings"

	"github.com/gounits/uparse/token"
)

// readIdentifierOrWord reads spec.md §4.2.3's identifier lexeme and then
// classifies it: a forbidden NaN/Inf/Infinity literal, a SHIFT word, a
// "per" DIVIDE, the opening segment of a LOGREF, or a plain ID.
func (l *Lexer) readIdentifierOrWord() token.Token {
	start := l.pos
	l.advance() // first char already validated as letter-like
	for isLetterLike(l.cur()) || isDigit(l.cur()) {
		l.advance()
	}
	// Multichar identifiers cannot end in a digit; the trailing digits
	// belong to a following EXPONENT or number token instead.
	for l.pos > start+1 && isDigit(l.text[l.pos-1]) {
		l.pos--
	}

	word := string(l.text[start:l.pos])
	lower := strings.ToLower(word)

	switch lower {
	case "nan", "inf", "infinity":
		return illegal(start, "%q: NaN/Inf/Infinity literals are not allowed", word)
	}

	// Word-form shifts ("after"/"from"/"since"/"ref") always lex as SHIFT;
	// the parser restricts them to the offset_by_time production, unlike
	// "@" which also accepts a bare REAL/INT. That grammar-level split
	// (not this lexer) is what turns "m since 2000" into a syntax error.
	if wordOperators[lower] {
		return token.Token{Type: token.SHIFT, Pos: start, Word: true}
	}

	if lower == "per" && l.qualifiesAsDivide(start) {
		return token.Token{Type: token.DIVIDE, Pos: start}
	}

	if base, ok := logBases[lower]; ok {
		if consumed := l.tryLogrefTail(); consumed {
			return token.Token{Type: token.LOGREF, LogBase: base, Pos: start}
		}
	}

	return token.Token{Type: token.ID, Str: word, Pos: start}
}

// qualifiesAsDivide implements the "per"/"PER" DIVIDE rule: required ASCII
// space immediately before and after the word (so "mPer" is not division).
func (l *Lexer) qualifiesAsDivide(start int) bool {
	if start == 0 || l.text[start-1] != ' ' {
		return false
	}
	return l.cur() == ' '
}

// tryLogrefTail attempts to consume "<sp>* ( <sp>* re [:]? <sp>*" right
// after a log/lg/ln/lb keyword, per spec.md §4.2.6. On success it leaves
// the cursor positioned right after the consumed tail; the closing ')' is
// left for the parser. On failure the cursor is left unmoved.
func (l *Lexer) tryLogrefTail() bool {
	save := l.pos
	l.skipSpacesNoRecord()
	if l.cur() != '(' {
		l.pos = save
		return false
	}
	l.advance()
	l.skipSpacesNoRecord()

	if end, ok := l.matchWordCI(l.pos, "re"); ok {
		l.pos = end
	} else {
		l.pos = save
		return false
	}
	if l.cur() == ':' {
		l.advance()
	}
	l.skipSpacesNoRecord()
	return true
}

// skipSpacesNoRecord is like skipSpaces but does not disturb the
// juxtaposition-detection bookkeeping; used inside lookahead helpers.
func (l *Lexer) skipSpacesNoRecord() {
	for isSpace(l.cur()) {
		l.advance()
	}
}

// matchWordCI reports whether the letters at pos spell word, case-insensitive.
func (l *Lexer) matchWordCI(pos int, word string) (end int, ok bool) {
	end = pos
	for end < len(l.text) && isASCIILetter(l.text[end]) {
		end++
	}
	if strings.ToLower(string(l.text[pos:end])) == word {
		return end, true
	}
	return pos, false
}
