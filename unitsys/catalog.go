package unitsys

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// catalogFile is the YAML shape accepted by LoadCatalog: an ambient,
// human-editable supplement to SeedDefault's built-in units, matching
// spec.md's "pluggable unit system" framing rather than any format mandated
// by the spec itself.
type catalogFile struct {
	Units []struct {
		Name   string  `yaml:"name"`
		Symbol string  `yaml:"symbol"`
		Scale  float64 `yaml:"scale"`
		Length int     `yaml:"length"`
		Mass   int     `yaml:"mass"`
		Time   int     `yaml:"time"`
		Amp    int     `yaml:"current"`
		Temp   int     `yaml:"temperature"`
		Amount int     `yaml:"amount"`
		Lum    int     `yaml:"luminosity"`
		Offset *float64 `yaml:"offset"`
	} `yaml:"units"`
	Prefixes []struct {
		Name   string  `yaml:"name"`
		Symbol string  `yaml:"symbol"`
		Scale  float64 `yaml:"scale"`
	} `yaml:"prefixes"`
}

// LoadCatalog reads a YAML catalog document and registers every unit and
// prefix it declares into s, in addition to whatever SeedDefault already
// populated. A malformed document returns an error without partially
// mutating s beyond whatever entries were already parsed successfully.
func LoadCatalog(s *System, r io.Reader) error {
	var doc catalogFile
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("unitsys: decode catalog: %w", err)
	}

	for _, u := range doc.Units {
		if u.Name == "" && u.Symbol == "" {
			return fmt.Errorf("unitsys: catalog unit missing both name and symbol")
		}
		d := dims(u.Length, u.Mass, u.Time, u.Amp, u.Temp, u.Amount, u.Lum)
		built := scaled(u.Scale, d)
		if u.Offset != nil {
			var err error
			built, err = Offset(built, decimal.NewFromFloat(*u.Offset))
			if err != nil {
				return fmt.Errorf("unitsys: catalog unit %q: %w", u.Name, err)
			}
		}
		s.RegisterUnit(u.Name, u.Symbol, built)
	}

	for _, p := range doc.Prefixes {
		if p.Name == "" && p.Symbol == "" {
			return fmt.Errorf("unitsys: catalog prefix missing both name and symbol")
		}
		s.RegisterPrefix(p.Name, p.Symbol, p.Scale)
	}
	return nil
}
