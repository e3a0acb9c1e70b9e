package unitsys

import (
	"github.com/martinlindhe/unit"
	"github.com/shopspring/decimal"
)

// SeedDefault populates s with the seven SI base units, a representative
// set of named/derived units, and the full SI prefix table. Conversion
// factors for non-SI units are sourced from martinlindhe/unit rather than
// hand-copied constants, mirroring how the teacher's unit_library.go builds
// its registry from the same package.
func SeedDefault(s *System) {
	seedBaseUnits(s)
	seedLengthUnits(s)
	seedMassUnits(s)
	seedVolumeUnits(s)
	seedTemperatureUnits(s)
	seedDerivedUnits(s)
	seedPrefixes(s)
	s.SetSecondsUnitName("second")
}

func dims(length, mass, t, current, temp, amount, luminosity int) Dims {
	return Dims{length, mass, t, current, temp, amount, luminosity}
}

func baseUnit(d Dims) Unit {
	return Unit{Scale: decimal.NewFromInt(1), Dims: d}
}

func scaled(factor float64, d Dims) Unit {
	return Unit{Scale: decimal.NewFromFloat(factor), Dims: d}
}

func seedBaseUnits(s *System) {
	s.RegisterUnit("meter", "m", baseUnit(dims(1, 0, 0, 0, 0, 0, 0)))
	s.RegisterUnit("metre", "", s.names["meter"])
	s.RegisterUnit("gram", "g", scaled(0.001, dims(0, 1, 0, 0, 0, 0, 0)))
	s.RegisterUnit("second", "s", baseUnit(dims(0, 0, 1, 0, 0, 0, 0)))
	s.RegisterUnit("seconds", "", s.names["second"])
	s.RegisterUnit("ampere", "A", baseUnit(dims(0, 0, 0, 1, 0, 0, 0)))
	s.RegisterUnit("kelvin", "K", baseUnit(dims(0, 0, 0, 0, 1, 0, 0)))
	s.RegisterUnit("mole", "mol", baseUnit(dims(0, 0, 0, 0, 0, 1, 0)))
	s.RegisterUnit("candela", "cd", baseUnit(dims(0, 0, 0, 0, 0, 0, 1)))
}

// seedLengthUnits grounds non-metric length units on martinlindhe/unit,
// following the conversion shape of unit_library.go's addLengthUnits.
func seedLengthUnits(s *System) {
	meters := func(l unit.Length) float64 { return l.Meters() }
	L := dims(1, 0, 0, 0, 0, 0, 0)

	s.RegisterUnit("foot", "ft", scaled(meters(unit.Foot), L))
	s.RegisterUnit("", "feet", s.names["foot"])
	s.RegisterUnit("inch", "in", scaled(meters(unit.Inch), L))
	s.RegisterUnit("yard", "yd", scaled(meters(unit.Yard), L))
	s.RegisterUnit("mile", "mi", scaled(meters(unit.Mile), L))
	s.RegisterUnit("nautical_mile", "nmi", scaled(meters(unit.NauticalMile), L))
}

func seedMassUnits(s *System) {
	kilograms := func(m unit.Mass) float64 { return m.Kilograms() }
	M := dims(0, 1, 0, 0, 0, 0, 0)

	s.RegisterUnit("tonne", "t", scaled(kilograms(unit.Tonne), M))
	s.RegisterUnit("pound", "lb", scaled(kilograms(unit.AvoirdupoisPound), M))
	s.RegisterUnit("ounce", "oz", scaled(kilograms(unit.AvoirdupoisOunce), M))
}

func seedVolumeUnits(s *System) {
	liters := func(v unit.Volume) float64 { return v.Liters() }
	V := dims(3, 0, 0, 0, 0, 0, 0)

	s.RegisterUnit("liter", "l", scaled(0.001, V))
	s.RegisterUnit("litre", "", s.names["liter"])
	s.RegisterUnit("us_gallon", "gal", scaled(0.001*liters(unit.USLiquidGallon), V))
	s.RegisterUnit("us_pint", "pt", scaled(0.001*liters(unit.USLiquidPint), V))
	s.RegisterUnit("us_quart", "qt", scaled(0.001*liters(unit.USLiquidQuart), V))
	s.RegisterUnit("us_tablespoon", "tbsp", scaled(0.001*liters(unit.USTableSpoon), V))
	s.RegisterUnit("us_teaspoon", "tsp", scaled(0.001*liters(unit.USTeaSpoon), V))
}

// seedTemperatureUnits registers celsius/fahrenheit as offset units over
// the kelvin base, per spec.md's worked example "celsius @ 273.15".
func seedTemperatureUnits(s *System) {
	T := dims(0, 0, 0, 0, 1, 0, 0)

	celsius, _ := Offset(baseUnit(T), decimal.NewFromFloat(273.15))
	s.RegisterUnit("celsius", "", celsius)

	fahrenheitUnit := scaled(5.0/9.0, T)
	fahrenheit, _ := Offset(fahrenheitUnit, decimal.NewFromFloat(273.15-32*5.0/9.0))
	s.RegisterUnit("fahrenheit", "", fahrenheit)
}

// seedDerivedUnits covers named SI-derived quantities used in the worked
// examples (watts, pascals, newtons, joules, hertz, volts) plus the
// milliwatt reference quantity used by "lg(re 1 mW)".
func seedDerivedUnits(s *System) {
	newton := baseUnit(dims(1, 1, -2, 0, 0, 0, 0))
	s.RegisterUnit("newton", "N", newton)

	joule := baseUnit(dims(2, 1, -2, 0, 0, 0, 0))
	s.RegisterUnit("joule", "J", joule)

	watt := baseUnit(dims(2, 1, -3, 0, 0, 0, 0))
	s.RegisterUnit("watt", "W", watt)

	pascal := baseUnit(dims(-1, 1, -2, 0, 0, 0, 0))
	s.RegisterUnit("pascal", "Pa", pascal)

	hertz := baseUnit(dims(0, 0, -1, 0, 0, 0, 0))
	s.RegisterUnit("hertz", "Hz", hertz)

	volt := baseUnit(dims(2, 1, -3, -1, 0, 0, 0))
	s.RegisterUnit("volt", "V", volt)

	// Reference power level for "dB re 1 mW"-style logarithmic ratios.
	milliwatt := scaled(0.001, dims(2, 1, -3, 0, 0, 0, 0))
	s.RegisterUnit("", "mW", milliwatt)
}

// seedPrefixes registers the full SI decimal prefix table by name and
// symbol; every prefix participates in §4.3's greedy peeling loop.
func seedPrefixes(s *System) {
	type p struct {
		name   string
		symbol string
		scale  float64
	}
	table := []p{
		{"yotta", "Y", 1e24},
		{"zetta", "Z", 1e21},
		{"exa", "E", 1e18},
		{"peta", "P", 1e15},
		{"tera", "T", 1e12},
		{"giga", "G", 1e9},
		{"mega", "M", 1e6},
		{"kilo", "k", 1e3},
		{"hecto", "h", 1e2},
		{"deka", "da", 1e1},
		{"deci", "d", 1e-1},
		{"centi", "c", 1e-2},
		{"milli", "m", 1e-3},
		{"micro", "µ", 1e-6},
		{"nano", "n", 1e-9},
		{"pico", "p", 1e-12},
		{"femto", "f", 1e-15},
		{"atto", "a", 1e-18},
		{"zepto", "z", 1e-21},
		{"yocto", "y", 1e-24},
	}
	for _, e := range table {
		s.RegisterPrefix(e.name, e.symbol, e.scale)
	}
}
