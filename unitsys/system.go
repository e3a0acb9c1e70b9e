package unitsys

import "sort"

// System is a catalog of named/symbol units and name/symbol prefixes, plus
// the lookup machinery §4.3's identifier-resolution loop drives. It is the
// concrete stand-in for spec.md §6's external unit-system collaborator.
type System struct {
	names   map[string]Unit
	symbols map[string]Unit

	namePrefixes    map[string]prefixEntry
	symbolPrefixes  map[string]prefixEntry
	namePrefixesBy  []string // sorted longest-first, for greedy matching
	symPrefixesBy   []string
	secondsUnitName string
}

type prefixEntry struct {
	key   string
	scale float64
}

// NewSystem returns an empty catalog; callers populate it via RegisterUnit
// and RegisterPrefix, or start from SeedDefault.
func NewSystem() *System {
	return &System{
		names:          make(map[string]Unit),
		symbols:        make(map[string]Unit),
		namePrefixes:   make(map[string]prefixEntry),
		symbolPrefixes: make(map[string]prefixEntry),
	}
}

// RegisterUnit adds a unit under a name and, optionally, a symbol. Either
// may be empty to register only one form.
func (s *System) RegisterUnit(name, symbol string, u Unit) {
	if name != "" {
		s.names[name] = u
	}
	if symbol != "" {
		s.symbols[symbol] = u
	}
}

// RegisterPrefix adds a multiplicative prefix under a name and/or symbol
// (e.g. name "kilo"/symbol "k", scale 1000).
func (s *System) RegisterPrefix(name, symbol string, scale float64) {
	if name != "" {
		s.namePrefixes[name] = prefixEntry{key: name, scale: scale}
		s.namePrefixesBy = insertSortedByLenDesc(s.namePrefixesBy, name)
	}
	if symbol != "" {
		s.symbolPrefixes[symbol] = prefixEntry{key: symbol, scale: scale}
		s.symPrefixesBy = insertSortedByLenDesc(s.symPrefixesBy, symbol)
	}
}

func insertSortedByLenDesc(list []string, item string) []string {
	list = append(list, item)
	sort.Slice(list, func(i, j int) bool { return len(list[i]) > len(list[j]) })
	return list
}

// Names returns every registered unit name, unsorted.
func (s *System) Names() []string {
	out := make([]string, 0, len(s.names))
	for n := range s.names {
		out = append(out, n)
	}
	return out
}

// Symbols returns every registered unit symbol, unsorted.
func (s *System) Symbols() []string {
	out := make([]string, 0, len(s.symbols))
	for n := range s.symbols {
		out = append(out, n)
	}
	return out
}

// GetUnitByName looks up a unit by its full registered name.
func (s *System) GetUnitByName(name string) (Unit, bool) {
	u, ok := s.names[name]
	return u, ok
}

// GetUnitBySymbol looks up a unit by its full registered symbol.
func (s *System) GetUnitBySymbol(symbol string) (Unit, bool) {
	u, ok := s.symbols[symbol]
	return u, ok
}

// MatchNamePrefix greedily finds the longest registered name-prefix that is
// a leading span of ident, per §4.3 step 3.
func (s *System) MatchNamePrefix(ident string) (prefix string, scale float64, ok bool) {
	for _, p := range s.namePrefixesBy {
		if len(p) < len(ident) && ident[:len(p)] == p {
			return p, s.namePrefixes[p].scale, true
		}
	}
	return "", 0, false
}

// MatchSymbolPrefix greedily finds the longest registered symbol-prefix
// that is a leading span of ident, per §4.3 step 4.
func (s *System) MatchSymbolPrefix(ident string) (prefix string, scale float64, ok bool) {
	for _, p := range s.symPrefixesBy {
		if len(p) < len(ident) && ident[:len(p)] == p {
			return p, s.symbolPrefixes[p].scale, true
		}
	}
	return "", 0, false
}

// SetSecondsUnitName records which registered name denotes the canonical
// "second" unit, used by AreConvertibleToSeconds.
func (s *System) SetSecondsUnitName(name string) {
	s.secondsUnitName = name
}

// AreConvertibleToSeconds reports whether u shares a dimension vector with
// the catalog's canonical second unit. Returns false (never errors/panics)
// when no second unit has been registered — degradation per DESIGN.md.
func (s *System) AreConvertibleToSeconds(u Unit) bool {
	if s.secondsUnitName == "" {
		return false
	}
	sec, ok := s.names[s.secondsUnitName]
	if !ok {
		return false
	}
	return AreConvertible(u, sec)
}
