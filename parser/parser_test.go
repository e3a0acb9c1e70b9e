package parser_test

import (
	"errors"
	"testing"

	"github.com/gounits/uparse/parser"
	"github.com/gounits/uparse/unitsys"
	"github.com/shopspring/decimal"
)

func newSystem() *unitsys.System {
	s := unitsys.NewSystem()
	unitsys.SeedDefault(s)
	return s
}

func mustParse(t *testing.T, sys *unitsys.System, src string) unitsys.Unit {
	t.Helper()
	p := parser.New(sys, src)
	u, err := p.Parse()
	if err != nil {
		t.Fatalf("Parse(%q) returned error: %v", src, err)
	}
	if !p.AtEOF() {
		t.Fatalf("Parse(%q) left residual input at pos %d", src, p.Pos())
	}
	return u
}

func TestParseNanosecond(t *testing.T) {
	sys := newSystem()
	u := mustParse(t, sys, "nanosecond")
	want := unitsys.Dims{2: 1}
	if u.Dims != want {
		t.Errorf("dims = %v, want %v", u.Dims, want)
	}
	if !u.Scale.Equal(decimal.NewFromFloat(1e-9)) {
		t.Errorf("scale = %s, want 1e-9", u.Scale)
	}
}

func TestParseNewtonFromBaseUnits(t *testing.T) {
	sys := newSystem()
	u := mustParse(t, sys, "kg m s-2")
	n := mustParse(t, sys, "newton")
	if u.Dims != n.Dims {
		t.Errorf("kg m s-2 dims = %v, want newton dims %v", u.Dims, n.Dims)
	}
	if !u.Scale.Equal(n.Scale) {
		t.Errorf("kg m s-2 scale = %s, want newton scale %s", u.Scale, n.Scale)
	}
}

func TestParseFractionThenMilli(t *testing.T) {
	sys := newSystem()
	u := mustParse(t, sys, "(1/3) s")
	ms := mustParse(t, sys, "ms")
	if u.Dims != ms.Dims {
		t.Errorf("dims mismatch: %v vs %v", u.Dims, ms.Dims)
	}
}

func TestParseLogRatio(t *testing.T) {
	sys := newSystem()
	u := mustParse(t, sys, "lg(re 1 mW)")
	if u.Log == nil {
		t.Fatal("expected a logarithmic unit")
	}
	if !u.Log.Base.Equal(decimal.NewFromInt(10)) {
		t.Errorf("log base = %s, want 10", u.Log.Base)
	}
}

func TestParseCelsiusOffset(t *testing.T) {
	sys := newSystem()
	u := mustParse(t, sys, "celsius @ 273.15")
	if u.Offset == nil {
		t.Fatal("expected an offset unit")
	}
}

func TestParseSecondsSinceEpoch(t *testing.T) {
	sys := newSystem()
	u := mustParse(t, sys, "seconds since 2000-01-01T12:00:00Z")
	if u.Origin == nil {
		t.Fatal("expected a time-origin unit")
	}
}

func TestParseNanSyntaxError(t *testing.T) {
	sys := newSystem()
	p := parser.New(sys, "nan")
	_, err := p.Parse()
	if err == nil {
		t.Fatal(`Parse("nan") succeeded, want a syntax error (NaN literals are forbidden)`)
	}
	var unknown *parser.UnknownIdentifierError
	if errors.As(err, &unknown) {
		t.Fatal(`Parse("nan") returned UnknownIdentifierError, want a lexical syntax error`)
	}
}

func TestParsePicoSecondUnknown(t *testing.T) {
	sys := newSystem()
	p := parser.New(sys, "pico second")
	_, err := p.Parse()
	var unknown *parser.UnknownIdentifierError
	if !errors.As(err, &unknown) {
		t.Fatalf("Parse(%q) error = %v, want *UnknownIdentifierError", "pico second", err)
	}
}

func TestParseMeterSinceDateIsSyntaxError(t *testing.T) {
	sys := newSystem()
	p := parser.New(sys, "m since 2000")
	_, err := p.Parse()
	if err == nil {
		t.Fatal("Parse(\"m since 2000\") succeeded, want a syntax error")
	}
	var unknown *parser.UnknownIdentifierError
	if errors.As(err, &unknown) {
		t.Fatalf("Parse(\"m since 2000\") returned UnknownIdentifierError, want a syntax error")
	}
	var synErr *parser.SyntaxError
	if !errors.As(err, &synErr) {
		t.Fatalf("Parse(\"m since 2000\") error = %v (%T), want *SyntaxError", err, err)
	}
}

func TestParseSecondsSinceDateSucceeds(t *testing.T) {
	sys := newSystem()
	mustParse(t, sys, "seconds since 2000")
}

func TestParseLeapSecondAllowed(t *testing.T) {
	sys := newSystem()
	mustParse(t, sys, "seconds since 1998-12-31T23:59:60Z")
}

func TestParseInvalidClockSyntaxError(t *testing.T) {
	sys := newSystem()
	p := parser.New(sys, "seconds since 2000-01-01T12:00:60Z")
	_, err := p.Parse()
	if err == nil {
		t.Fatal("expected a syntax error for an out-of-range clock second")
	}
}

func TestParseLeapDayNormalizes(t *testing.T) {
	sys := newSystem()
	// 1999 is not a leap year; Feb 29 normalizes forward to Mar 1.
	a := mustParse(t, sys, "seconds since 1999-02-29T00:00:00Z")
	b := mustParse(t, sys, "seconds since 1999-03-01T00:00:00Z")
	if a.Origin == nil || b.Origin == nil {
		t.Fatal("expected both to resolve to time-origin units")
	}
	if *a.Origin != *b.Origin {
		t.Errorf("1999-02-29 origin = %g, want %g (normalized to 1999-03-01)", *a.Origin, *b.Origin)
	}
}

func TestImplicitMultiplyMatchesExplicit(t *testing.T) {
	sys := newSystem()
	a := mustParse(t, sys, "kg m")
	b := mustParse(t, sys, "kg*m")
	c := mustParse(t, sys, "kg.m")
	if a.Dims != b.Dims || b.Dims != c.Dims {
		t.Errorf("dims differ across multiply spellings: %v %v %v", a.Dims, b.Dims, c.Dims)
	}
	if !a.Scale.Equal(b.Scale) || !b.Scale.Equal(c.Scale) {
		t.Errorf("scale differs across multiply spellings: %s %s %s", a.Scale, b.Scale, c.Scale)
	}
}

func TestExponentFormsEquivalent(t *testing.T) {
	sys := newSystem()
	a := mustParse(t, sys, "m2")
	b := mustParse(t, sys, "m^2")
	if a.Dims != b.Dims {
		t.Errorf("m2 dims = %v, m^2 dims = %v", a.Dims, b.Dims)
	}
}

func TestSymbolPrefixStackingLimitedToOnce(t *testing.T) {
	sys := newSystem()
	// "kk" would require stacking two symbol-prefixes ("k"+"k") to reach a
	// bare unit symbol with nothing left over; the resolver allows at most
	// one symbol-prefix peel, so this must fail to resolve.
	p := parser.New(sys, "kkg")
	_, err := p.Parse()
	if err == nil {
		t.Fatal("Parse(\"kkg\") succeeded, want an error from over-stacked symbol prefixes")
	}
}

func TestWhitespaceTrimIdempotent(t *testing.T) {
	sys := newSystem()
	a := mustParse(t, sys, "kg m s-2")
	b := mustParse(t, sys, "  kg m s-2  ")
	if a.Dims != b.Dims || !a.Scale.Equal(b.Scale) {
		t.Errorf("leading/trailing whitespace changed the result: %v/%s vs %v/%s", a.Dims, a.Scale, b.Dims, b.Scale)
	}
}
