package unitsys

import (
	"errors"

	"github.com/shopspring/decimal"
)

// ErrIncommensurable reports that two units don't share a dimension
// vector. The primitives in this package do not return it: Offset accepts
// any non-logarithmic unit and AreConvertible returns a bool.
var ErrIncommensurable = errors.New("unitsys: incommensurable units")

// DimensionlessOne returns the scalar unit 1, used for bare numeric
// literals (spec.md §4.4's "number := INT | REAL -> scale(n, dimensionless_one)").
func DimensionlessOne() Unit {
	return Unit{Scale: decimal.NewFromInt(1)}
}

// Scale multiplies a unit's scale factor by factor, leaving its dimension
// untouched.
func Scale(factor decimal.Decimal, u Unit) Unit {
	u.Scale = u.Scale.Mul(factor)
	return u
}

// Multiply composes two units, adding dimension vectors and multiplying
// scale factors. Log and offset units cannot participate in multiply per
// the udunits convention that those constructs are terminal.
func Multiply(a, b Unit) (Unit, error) {
	if a.Offset != nil || b.Offset != nil || a.Log != nil || b.Log != nil {
		return Unit{}, errors.New("unitsys: cannot multiply an offset or logarithmic unit")
	}
	return Unit{Scale: a.Scale.Mul(b.Scale), Dims: a.Dims.add(b.Dims)}, nil
}

// Divide composes a/b, subtracting dimension vectors.
func Divide(a, b Unit) (Unit, error) {
	if a.Offset != nil || b.Offset != nil || a.Log != nil || b.Log != nil {
		return Unit{}, errors.New("unitsys: cannot divide an offset or logarithmic unit")
	}
	if b.Scale.IsZero() {
		return Unit{}, errors.New("unitsys: division by zero unit")
	}
	return Unit{Scale: a.Scale.Div(b.Scale), Dims: a.Dims.sub(b.Dims)}, nil
}

// Raise raises u to an integer power, scaling the dimension vector and
// exponentiating the scale factor.
func Raise(u Unit, n int) (Unit, error) {
	if u.Offset != nil || u.Log != nil {
		return Unit{}, errors.New("unitsys: cannot raise an offset or logarithmic unit")
	}
	scale := decimal.NewFromInt(1)
	base := u.Scale
	exp := n
	if exp < 0 {
		if base.IsZero() {
			return Unit{}, errors.New("unitsys: raising a zero-scale unit to a negative power")
		}
		base = decimal.NewFromInt(1).Div(base)
		exp = -exp
	}
	for i := 0; i < exp; i++ {
		scale = scale.Mul(base)
	}
	return Unit{Scale: scale, Dims: u.Dims.scale(n)}, nil
}

// Offset attaches an additive origin to u (e.g. celsius = offset(kelvin, 273.15)).
func Offset(u Unit, amount decimal.Decimal) (Unit, error) {
	if u.Log != nil {
		return Unit{}, errors.New("unitsys: cannot offset a logarithmic unit")
	}
	o := amount
	u.Offset = &o
	return u, nil
}

// OffsetByTime attaches a time origin (seconds since the epoch) to u,
// producing a "quantity since <timestamp>" unit.
func OffsetByTime(u Unit, secondsSinceEpoch float64) (Unit, error) {
	if u.Log != nil {
		return Unit{}, errors.New("unitsys: cannot time-offset a logarithmic unit")
	}
	t := secondsSinceEpoch
	u.Origin = &t
	return u, nil
}

// Log builds a logarithmic unit with the given base and reference quantity.
func Log(base decimal.Decimal, reference Unit) Unit {
	return Unit{
		Scale: decimal.NewFromInt(1),
		Log:   &LogDescriptor{Base: base, Reference: reference},
	}
}

// AreConvertible reports whether a and b share a dimension vector (ignoring
// scale, offset, and log descriptors) — the test the parser uses to decide
// whether a just-reduced product is convertible to seconds.
func AreConvertible(a, b Unit) bool {
	return a.Dims == b.Dims
}
