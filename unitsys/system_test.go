package unitsys

import (
	"strings"
	"testing"
)

func TestSeedDefaultRegistersBaseUnits(t *testing.T) {
	s := NewSystem()
	SeedDefault(s)

	meter, ok := s.GetUnitByName("meter")
	if !ok {
		t.Fatal("expected meter to be registered")
	}
	if !meter.Scale.Equal(meter.Scale) {
		t.Fatal("sanity")
	}

	sym, ok := s.GetUnitBySymbol("m")
	if !ok || sym.Dims != meter.Dims {
		t.Fatalf("symbol m should resolve to meter's dimensions, got %v", sym.Dims)
	}
}

func TestMatchNamePrefixLongestMatch(t *testing.T) {
	s := NewSystem()
	SeedDefault(s)

	// "kilo" and a hypothetical shorter "k" style prefix would collide;
	// verify the longest registered name-prefix wins.
	prefix, scale, ok := s.MatchNamePrefix("kilogram")
	if !ok || prefix != "kilo" || scale != 1e3 {
		t.Fatalf("expected kilo/1e3, got %q/%v/%v", prefix, scale, ok)
	}
}

func TestMatchSymbolPrefix(t *testing.T) {
	s := NewSystem()
	SeedDefault(s)

	prefix, scale, ok := s.MatchSymbolPrefix("ks")
	if !ok || prefix != "k" || scale != 1e3 {
		t.Fatalf("expected k/1e3 prefix match, got %q/%v/%v", prefix, scale, ok)
	}
}

func TestAreConvertibleToSeconds(t *testing.T) {
	s := NewSystem()
	SeedDefault(s)

	second, _ := s.GetUnitByName("second")
	if !s.AreConvertibleToSeconds(second) {
		t.Fatal("second must be convertible to itself")
	}

	meter, _ := s.GetUnitByName("meter")
	if s.AreConvertibleToSeconds(meter) {
		t.Fatal("meter must not be convertible to seconds")
	}
}

func TestAreConvertibleToSecondsWithoutRegisteredSecond(t *testing.T) {
	s := NewSystem()
	s.RegisterUnit("meter", "m", baseUnit(dims(1, 0, 0, 0, 0, 0, 0)))

	if s.AreConvertibleToSeconds(baseUnit(dims(1, 0, 0, 0, 0, 0, 0))) {
		t.Fatal("expected false, not a panic, when no second unit is registered")
	}
}

func TestLoadCatalogAddsUnit(t *testing.T) {
	s := NewSystem()
	SeedDefault(s)

	doc := `
units:
  - name: furlong
    symbol: fur
    scale: 201.168
    length: 1
prefixes:
  - name: sesqui
    symbol: sq
    scale: 1.5
`
	if err := LoadCatalog(s, strings.NewReader(doc)); err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	u, ok := s.GetUnitByName("furlong")
	if !ok {
		t.Fatal("expected furlong to be registered")
	}
	if u.Dims[DimLength] != 1 {
		t.Fatalf("expected length dimension 1, got %v", u.Dims)
	}

	_, _, ok = s.MatchNamePrefix("sesquifoot")
	if !ok {
		t.Fatal("expected sesqui prefix to be registered from catalog")
	}
}
