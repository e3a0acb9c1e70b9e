// Package lexer tokenizes unit specifications (e.g. "kg m s-2", "lg(re 1 mW)",
// "seconds since 2000-01-01T12:00:00Z") into the token stream consumed by
// package parser.
//
// The lexer is a hand-written, single-pass scanner over a rune slice. It is
// stateful in exactly the two ways spec.md §4.2 and §9 call for: it tracks
// whether it is positioned immediately to the right of a SHIFT token (to
// gate date/clock/timezone sub-lexing), and it consults a caller-supplied
// time-context predicate (whether the just-reduced product is convertible
// to seconds) rather than a package-level flag.
package lexer

import (
	"fmt"
	"unicode/utf8"

	"github.com/gounits/uparse/token"
)

// TimeContext reports whether the product expression that has just been
// reduced by the parser is convertible to seconds. The lexer consults it,
// through this single method, only when deciding whether a digit run
// immediately to the right of a SHIFT is a timestamp or a plain number.
type TimeContext interface {
	InTimeContext() bool
}

// wordOperators maps case-folded word lexemes to the SHIFT token they form.
var wordOperators = map[string]bool{
	"after": true,
	"from":  true,
	"since": true,
	"ref":   true,
}

// logBases maps case-folded logarithm keywords to their numeric base.
var logBases = map[string]float64{
	"log": 10,
	"lg":  10,
	"ln":  2.718281828459045,
	"lb":  2,
}

const superscriptDigits = "⁰¹²³⁴⁵⁶⁷⁸⁹"

// timestamp sub-lexer states, active only to the right of a SHIFT token.
type tsState int

const (
	tsNone tsState = iota
	tsWantDate
	tsAfterDate
	tsAfterClock
)

// Lexer scans a single bounded input string into a token at a time.
type Lexer struct {
	text []rune
	pos  int

	// byteOffsets[i] is the byte offset of rune i within the original src;
	// byteOffsets[len(text)] is len(src). Token.Pos is documented as a byte
	// offset into that same string, so every rune index the scanner works
	// with internally is translated through this table before a token
	// leaves Next.
	byteOffsets []int

	timeCtx TimeContext

	afterShift         bool
	ts                 tsState
	sawSpaceBeforeLast bool

	lastType token.Type
	haveLast bool
	pending  *token.Token
}

// New constructs a Lexer over src. timeCtx may be nil, in which case the
// lexer behaves as if no time context is ever active (spec.md §9's
// recommended degradation for "no second unit known").
func New(src string, timeCtx TimeContext) *Lexer {
	runes := []rune(src)
	offsets := make([]int, len(runes)+1)
	b := 0
	for i, r := range runes {
		offsets[i] = b
		b += utf8.RuneLen(r)
	}
	offsets[len(runes)] = b
	return &Lexer{text: runes, byteOffsets: offsets, timeCtx: timeCtx}
}

// toBytePos converts a rune index (as produced throughout the scanner) to
// the byte offset of that rune within the original src string.
func (l *Lexer) toBytePos(runeIdx int) int {
	switch {
	case runeIdx <= 0:
		return 0
	case runeIdx >= len(l.byteOffsets):
		return l.byteOffsets[len(l.byteOffsets)-1]
	default:
		return l.byteOffsets[runeIdx]
	}
}

func (l *Lexer) inTimeContext() bool {
	return l.timeCtx != nil && l.timeCtx.InTimeContext()
}

func (l *Lexer) cur() rune {
	if l.pos >= len(l.text) {
		return 0
	}
	return l.text[l.pos]
}

func (l *Lexer) peek(n int) rune {
	p := l.pos + n
	if p < 0 || p >= len(l.text) {
		return 0
	}
	return l.text[p]
}

func (l *Lexer) advance() { l.pos++ }

// isSpace reports whether r is whitespace per spec.md §4.2.1. Newline is
// deliberately excluded: it is not whitespace inside the grammar.
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\r', '\f', '\v':
		return true
	}
	return false
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// isLetterLike implements spec.md §4.2.3's identifier-letter set: ASCII
// letters and underscore, plus the Latin-1 letter-like block.
func isLetterLike(r rune) bool {
	switch {
	case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r == '_':
		return true
	case r == 0x00A0, r == 0x00AD, r == 0x00B0, r == 0x00B5:
		return true
	case r >= 0x00C0 && r <= 0x00D6:
		return true
	case r >= 0x00D8 && r <= 0x00F6:
		return true
	case r >= 0x00F8 && r <= 0x00FF:
		return true
	}
	return false
}

// isStandaloneIdentChar reports the single-character identifiers not
// covered by the Latin-1 letter-like set (° and µ already are).
func isStandaloneIdentChar(r rune) bool {
	switch r {
	case '%', '\'', '"':
		return true
	}
	return false
}

func endsExpr(t token.Type) bool {
	switch t {
	case token.ID, token.INT, token.REAL, token.RPAREN:
		return true
	}
	return false
}

func startsExpr(t token.Type) bool {
	switch t {
	case token.ID, token.INT, token.REAL, token.LPAREN, token.LOGREF:
		return true
	}
	return false
}

func illegal(pos int, format string, args ...interface{}) token.Token {
	return token.Token{Type: token.ILLEGAL, Pos: pos, Str: fmt.Sprintf(format, args...)}
}

// Next returns the next token in the stream. Callers drive the time-context
// predicate by reducing a product before requesting the token that follows
// a SHIFT.
func (l *Lexer) Next() token.Token {
	var t token.Token
	if l.pending != nil {
		t = *l.pending
		l.pending = nil
	} else {
		t = l.lexRaw()
		t = l.applyJuxtaposition(t)
	}
	l.record(t)
	t.Pos = l.toBytePos(t.Pos)
	return t
}

func (l *Lexer) record(t token.Token) {
	l.lastType = t.Type
	l.haveLast = true
	l.afterShift = t.Type == token.SHIFT
}

// applyJuxtaposition implements spec.md §4.2.4's space-run MULTIPLY rule:
// a run of space characters between two non-operator tokens is itself a
// MULTIPLY token. lexRaw already skipped the spaces before producing raw;
// here we only decide whether to splice a synthetic MULTIPLY ahead of it.
func (l *Lexer) applyJuxtaposition(raw token.Token) token.Token {
	if !l.sawSpaceBeforeLast {
		return raw
	}
	if l.haveLast && endsExpr(l.lastType) && startsExpr(raw.Type) {
		l.pending = &raw
		return token.Token{Type: token.MULTIPLY, Pos: raw.Pos}
	}
	return raw
}

// skipSpaces advances past run of space characters (not newline) and
// records whether any were skipped, for applyJuxtaposition.
func (l *Lexer) skipSpaces() {
	start := l.pos
	for isSpace(l.cur()) {
		l.advance()
	}
	l.sawSpaceBeforeLast = l.pos > start
}
