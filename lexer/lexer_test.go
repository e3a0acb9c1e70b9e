package lexer_test

import (
	"testing"

	"github.com/gounits/uparse/lexer"
	"github.com/gounits/uparse/token"
)

// alwaysTime is a TimeContext stub that reports every product as
// time-convertible, used to exercise the date/clock sub-lexer directly
// without involving the parser.
type alwaysTime struct{}

func (alwaysTime) InTimeContext() bool { return true }

type neverTime struct{}

func (neverTime) InTimeContext() bool { return false }

func tokenTypes(t *testing.T, src string, ctx lexer.TimeContext) []token.Type {
	t.Helper()
	l := lexer.New(src, ctx)
	var types []token.Type
	for {
		tok := l.Next()
		types = append(types, tok.Type)
		if tok.Type == token.EOF || tok.Type == token.ILLEGAL {
			break
		}
	}
	return types
}

func assertTypes(t *testing.T, got []token.Type, want ...token.Type) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d = %v, want %v (full: %v)", i, got[i], want[i], got)
		}
	}
}

func TestLexSimpleIdentifier(t *testing.T) {
	got := tokenTypes(t, "kg", neverTime{})
	assertTypes(t, got, token.ID, token.EOF)
}

func TestLexImplicitMultiplyBySpace(t *testing.T) {
	got := tokenTypes(t, "kg m", neverTime{})
	assertTypes(t, got, token.ID, token.MULTIPLY, token.ID, token.EOF)
}

func TestLexExplicitMultiplyOperators(t *testing.T) {
	for _, src := range []string{"kg*m", "kg.m", "kg·m"} {
		got := tokenTypes(t, src, neverTime{})
		assertTypes(t, got, token.ID, token.MULTIPLY, token.ID, token.EOF)
	}
}

func TestLexDivide(t *testing.T) {
	got := tokenTypes(t, "m/s", neverTime{})
	assertTypes(t, got, token.ID, token.DIVIDE, token.ID, token.EOF)
}

func TestLexPerAsDivide(t *testing.T) {
	got := tokenTypes(t, "m per s", neverTime{})
	assertTypes(t, got, token.ID, token.DIVIDE, token.ID, token.EOF)
}

func TestLexHyphenAsMultiplyWhenNotNumeric(t *testing.T) {
	got := tokenTypes(t, "kg-m", neverTime{})
	assertTypes(t, got, token.ID, token.MULTIPLY, token.ID, token.EOF)
}

func TestLexNegativeExponentAdjacent(t *testing.T) {
	got := tokenTypes(t, "s-2", neverTime{})
	assertTypes(t, got, token.ID, token.INT, token.EOF)
}

func TestLexCaretExponent(t *testing.T) {
	got := tokenTypes(t, "m^2", neverTime{})
	assertTypes(t, got, token.ID, token.EXPONENT, token.EOF)
}

func TestLexDoubleStarExponent(t *testing.T) {
	got := tokenTypes(t, "m**2", neverTime{})
	assertTypes(t, got, token.ID, token.EXPONENT, token.EOF)
}

func TestLexSuperscriptExponent(t *testing.T) {
	got := tokenTypes(t, "m²", neverTime{})
	assertTypes(t, got, token.ID, token.EXPONENT, token.EOF)
}

func TestLexLogRef(t *testing.T) {
	got := tokenTypes(t, "lg(re 1 mW)", neverTime{})
	assertTypes(t, got, token.LOGREF, token.INT, token.MULTIPLY, token.ID, token.RPAREN, token.EOF)
}

func TestLexAtShiftIsNotWord(t *testing.T) {
	l := lexer.New("@ 273.15", neverTime{})
	tok := l.Next()
	if tok.Type != token.SHIFT {
		t.Fatalf("tok.Type = %v, want SHIFT", tok.Type)
	}
	if tok.Word {
		t.Error("'@' token has Word = true, want false")
	}
}

func TestLexWordShiftIsWord(t *testing.T) {
	for _, word := range []string{"after", "from", "since", "ref"} {
		l := lexer.New(word+" 2000", neverTime{})
		tok := l.Next()
		if tok.Type != token.SHIFT {
			t.Fatalf("%q tok.Type = %v, want SHIFT", word, tok.Type)
		}
		if !tok.Word {
			t.Errorf("%q token has Word = false, want true", word)
		}
	}
}

func TestLexWordShiftUnconditionalRegardlessOfTimeContext(t *testing.T) {
	// Word-form SHIFT must lex the same way whether or not the current
	// product is time-convertible - the distinction is a parser-grammar
	// concern (see parser.parseAfterShift), never a lexer one.
	l := lexer.New("since 2000", neverTime{})
	tok := l.Next()
	if tok.Type != token.SHIFT || !tok.Word {
		t.Fatalf("got %v (word=%v), want SHIFT(word=true) regardless of time context", tok.Type, tok.Word)
	}
}

func TestLexDateOnlyActiveAfterShiftInTimeContext(t *testing.T) {
	// Without a preceding SHIFT, a digit run is always a plain number.
	got := tokenTypes(t, "2000", alwaysTime{})
	assertTypes(t, got, token.INT, token.EOF)
}

func TestLexDateAfterShiftWithTimeContext(t *testing.T) {
	l := lexer.New("since 2000-01-01T12:00:00Z", alwaysTime{})
	var types []token.Type
	for {
		tok := l.Next()
		types = append(types, tok.Type)
		if tok.Type == token.EOF || tok.Type == token.ILLEGAL {
			break
		}
	}
	assertTypes(t, types, token.SHIFT, token.DATE, token.CLOCK, token.ZTOK, token.EOF)
}

func TestLexDateSuppressedWithoutTimeContext(t *testing.T) {
	// "since" always lexes as SHIFT, but without time-context the digits
	// that follow are lexed as a plain number, not a DATE - it is the
	// parser's grammar (requiring a DATE after a word-form SHIFT) that then
	// turns this into a syntax error, not the lexer.
	l := lexer.New("since 2000", neverTime{})
	var types []token.Type
	for {
		tok := l.Next()
		types = append(types, tok.Type)
		if tok.Type == token.EOF || tok.Type == token.ILLEGAL {
			break
		}
	}
	assertTypes(t, types, token.SHIFT, token.INT, token.EOF)
}

func TestLexNanIsIllegal(t *testing.T) {
	l := lexer.New("nan", neverTime{})
	tok := l.Next()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("tok.Type = %v, want ILLEGAL", tok.Type)
	}
}

func TestLexInfIsIllegal(t *testing.T) {
	l := lexer.New("inf", neverTime{})
	tok := l.Next()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("tok.Type = %v, want ILLEGAL", tok.Type)
	}
}

func TestLexNegativeZeroTimezoneIsIllegal(t *testing.T) {
	l := lexer.New("since 2000-01-01T00:00:00-00:00", alwaysTime{})
	var last token.Token
	for {
		last = l.Next()
		if last.Type == token.EOF || last.Type == token.ILLEGAL {
			break
		}
	}
	if last.Type != token.ILLEGAL {
		t.Fatalf("last token = %v, want ILLEGAL for -00:00", last.Type)
	}
}

func TestLexLeapSecondAllowed(t *testing.T) {
	l := lexer.New("since 1998-12-31T23:59:60Z", alwaysTime{})
	var types []token.Type
	for {
		tok := l.Next()
		types = append(types, tok.Type)
		if tok.Type == token.EOF || tok.Type == token.ILLEGAL {
			break
		}
	}
	assertTypes(t, types, token.SHIFT, token.DATE, token.CLOCK, token.ZTOK, token.EOF)
}

func TestLexInvalidSecondOutOfRange(t *testing.T) {
	l := lexer.New("since 2000-01-01T12:00:60Z", alwaysTime{})
	var last token.Token
	for {
		last = l.Next()
		if last.Type == token.EOF || last.Type == token.ILLEGAL {
			break
		}
	}
	if last.Type != token.ILLEGAL {
		t.Fatalf("last token = %v, want ILLEGAL for :60 outside the leap-second exception", last.Type)
	}
}

func TestLexNewlineIsIllegal(t *testing.T) {
	l := lexer.New("kg\nm", neverTime{})
	l.Next() // "kg"
	tok := l.Next()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("tok.Type = %v, want ILLEGAL for embedded newline", tok.Type)
	}
}

func TestLexParens(t *testing.T) {
	got := tokenTypes(t, "(kg m)", neverTime{})
	assertTypes(t, got, token.LPAREN, token.ID, token.MULTIPLY, token.ID, token.RPAREN, token.EOF)
}
