package lexer

import (
	"strconv"
	"time"

	"github.com/gounits/uparse/token"
)

// tryLexDate attempts spec.md §4.2.5's broken or packed date, only called
// when positioned right after a SHIFT with an active time context. Returns
// ok=false (without consuming input) if what follows is actually a plain
// number — e.g. a packed date with a decimal point.
func (l *Lexer) tryLexDate() (token.Token, bool) {
	start := l.pos
	sign := 1
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
	yearDigits := string(l.text[digStart:l.pos])
	if yearDigits == "" {
		l.pos = start
		return token.Token{}, false
	}

	if l.cur() == '.' {
		// Packed date with a decimal point is a REAL, not a date.
		l.pos = start
		return token.Token{}, false
	}

	var year, month, day int
	if l.cur() == '-' && isDigit(l.peek(1)) {
		year = sign * atoiSafe(yearDigits)
		l.advance()
		month = l.readDigitsMax(2)
		day = 1
		if l.cur() == '-' && isDigit(l.peek(1)) {
			l.advance()
			day = l.readDigitsMax(2)
		}
	} else {
		year, month, day = splitPackedDate(yearDigits)
		year *= sign
	}
	if year == 0 {
		year = 1
	}
	if month == 0 {
		month = 1
	}
	if day == 0 {
		day = 1
	}

	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	seconds := float64(t.Unix())

	// Swallow the trailing separator before an optional clock: either a
	// bare 'T' (no following space permitted) or a run of spaces.
	l.ts = tsAfterDate
	if l.cur() == 'T' {
		l.advance()
		if isSpace(l.cur()) {
			// A space after 'T' ends the timestamp: no clock may follow.
			l.ts = tsNone
		}
	} else {
		for isSpace(l.cur()) {
			l.advance()
		}
	}

	return token.Token{Type: token.DATE, Seconds: seconds, Pos: start}, true
}

func (l *Lexer) readDigitsMax(max int) int {
	s := l.pos
	for isDigit(l.cur()) && l.pos-s < max {
		l.advance()
	}
	return atoiSafe(string(l.text[s:l.pos]))
}

func atoiSafe(s string) int {
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// splitPackedDate implements spec.md §4.2.5's packed-date length table.
func splitPackedDate(digits string) (year, month, day int) {
	switch len(digits) {
	case 1, 2, 3, 4:
		return atoiSafe(digits), 1, 1
	case 5:
		return atoiSafe(digits[:4]), atoiSafe(digits[4:5]), 1
	case 6:
		return atoiSafe(digits[:4]), atoiSafe(digits[4:6]), 1
	case 7:
		return atoiSafe(digits[:4]), atoiSafe(digits[4:6]), atoiSafe(digits[6:7])
	default: // 8 or more: only the first 8 digits are meaningful
		return atoiSafe(digits[:4]), atoiSafe(digits[4:6]), atoiSafe(digits[6:8])
	}
}

// tryLexClockOrMarker is called only while l.ts == tsAfterDate: it expects
// either a CLOCK, a bare UTC marker (the "DATE Z" production), or neither
// (plain "DATE" timestamp).
func (l *Lexer) tryLexClockOrMarker() (token.Token, bool) {
	if t, ok := l.matchUTCMarker(); ok {
		l.ts = tsNone
		return t, true
	}
	if !isDigit(l.cur()) {
		return token.Token{}, false
	}

	start := l.pos
	digStart := l.pos
	for isDigit(l.cur()) {
		l.advance()
	}
	firstGroup := string(l.text[digStart:l.pos])

	var hour, minute, secWhole int
	var secFrac float64

	if l.cur() == ':' {
		hour = atoiSafe(firstGroup)
		l.advance()
		minute = l.readDigitsMax(2)
		if l.cur() == ':' {
			l.advance()
			s := l.pos
			for isDigit(l.cur()) {
				l.advance()
			}
			secWhole = atoiSafe(string(l.text[s:l.pos]))
			if l.cur() == '.' {
				l.advance()
				fs := l.pos
				for isDigit(l.cur()) {
					l.advance()
				}
				secFrac = fracValue(string(l.text[fs:l.pos]))
			}
		}
	} else {
		hour, minute, secWhole = splitPackedClock(firstGroup)
		if len(firstGroup) >= 5 && l.cur() == '.' {
			l.advance()
			fs := l.pos
			for isDigit(l.cur()) {
				l.advance()
			}
			secFrac = fracValue(string(l.text[fs:l.pos]))
		}
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 ||
		secWhole < 0 || secWhole > 60 || (secWhole == 60 && !(hour == 23 && minute == 59)) {
		return illegal(start, "clock field out of range"), true
	}
	if secWhole == 60 {
		// Leap second folds into second 00 of the next minute; 23:59:60
		// becomes 24:00:00, i.e. midnight of the following day.
		secWhole = 0
		minute++
		if minute == 60 {
			minute = 0
			hour++
		}
	}

	seconds := float64(hour*3600+minute*60+secWhole) + secFrac
	l.ts = tsAfterClock
	return token.Token{Type: token.CLOCK, Seconds: seconds, Pos: start}, true
}

func fracValue(digits string) float64 {
	if digits == "" {
		return 0
	}
	n := atoiSafe(digits)
	f := float64(n)
	for i := 0; i < len(digits); i++ {
		f /= 10
	}
	return f
}

// splitPackedClock implements spec.md §4.2.5's packed-clock length table:
// 1->0H0000, 2->HH0000, 3->HH0M00, 4->HHMM00, 5->HHMM0S, 6->HHMMSS.
func splitPackedClock(digits string) (hour, minute, sec int) {
	switch len(digits) {
	case 1:
		return atoiSafe(digits), 0, 0
	case 2:
		return atoiSafe(digits), 0, 0
	case 3:
		return atoiSafe(digits[:2]), atoiSafe(digits[2:3]), 0
	case 4:
		return atoiSafe(digits[:2]), atoiSafe(digits[2:4]), 0
	case 5:
		return atoiSafe(digits[:2]), atoiSafe(digits[2:4]), atoiSafe(digits[4:5])
	default:
		return atoiSafe(digits[:2]), atoiSafe(digits[2:4]), atoiSafe(digits[4:6])
	}
}

// tryLexTZOrMarker is called only while l.ts == tsAfterClock.
func (l *Lexer) tryLexTZOrMarker() (token.Token, bool) {
	if t, ok := l.matchUTCMarker(); ok {
		l.ts = tsNone
		return t, true
	}
	if l.cur() != '+' && l.cur() != '-' {
		return token.Token{}, false
	}

	start := l.pos
	neg := l.cur() == '-'
	l.advance()

	var hour, minute int
	if isDigit(l.cur()) && isDigit(l.peek(1)) && l.peek(2) == ':' {
		hour = l.readDigitsMax(2)
		l.advance() // ':'
		minute = l.readDigitsMax(2)
	} else {
		s := l.pos
		for isDigit(l.cur()) {
			l.advance()
		}
		digits := string(l.text[s:l.pos])
		switch len(digits) {
		case 1:
			hour = atoiSafe(digits)
		case 2:
			hour = atoiSafe(digits)
		case 3:
			hour = atoiSafe(digits[:2])
			minute = atoiSafe(digits[2:3]) * 10
		default:
			hour = atoiSafe(digits[:2])
			minute = atoiSafe(digits[2:4])
		}
	}

	l.ts = tsNone
	if neg && hour == 0 && minute == 0 {
		return illegal(start, "-00:00 is not a valid timezone offset"), true
	}
	if hour > 14 || minute > 59 {
		return illegal(start, "timezone offset out of range"), true
	}

	offset := float64(hour*3600 + minute*60)
	if neg {
		offset = -offset
	}
	return token.Token{Type: token.TZCLOCK, Seconds: offset, Pos: start}, true
}

func (l *Lexer) matchUTCMarker() (token.Token, bool) {
	start := l.pos
	if end, ok := l.matchWordCI(l.pos, "z"); ok {
		l.pos = end
		return token.Token{Type: token.ZTOK, Pos: start}, true
	}
	if end, ok := l.matchWordCI(l.pos, "gmt"); ok {
		l.pos = end
		return token.Token{Type: token.GMTTOK, Pos: start}, true
	}
	if end, ok := l.matchWordCI(l.pos, "utc"); ok {
		l.pos = end
		return token.Token{Type: token.UTCTOK, Pos: start}, true
	}
	return token.Token{}, false
}
