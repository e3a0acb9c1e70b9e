// Package unitsys is a concrete implementation of spec.md §6's external
// "unit system" collaborator: a catalog of base/named/derived units and
// prefixes, plus the algebraic primitives the parser composes expressions
// with. The parser package never reaches past this package's exported
// surface, matching spec.md §1's "out of scope, fixed only by interface"
// boundary.
package unitsys

import "github.com/shopspring/decimal"

// Dims is a dimension vector over the seven SI base quantities. Multiply
// adds vectors, Divide subtracts, Raise scales by an integer exponent.
type Dims [7]int

const (
	DimLength = iota
	DimMass
	DimTime
	DimCurrent
	DimTemperature
	DimAmount
	DimLuminosity
)

func (a Dims) add(b Dims) Dims {
	var r Dims
	for i := range r {
		r[i] = a[i] + b[i]
	}
	return r
}

func (a Dims) sub(b Dims) Dims {
	var r Dims
	for i := range r {
		r[i] = a[i] - b[i]
	}
	return r
}

func (a Dims) scale(n int) Dims {
	var r Dims
	for i := range r {
		r[i] = a[i] * n
	}
	return r
}

// LogDescriptor records a logarithmic unit's base and reference quantity.
type LogDescriptor struct {
	Base      decimal.Decimal
	Reference Unit
}

// Unit is an owned unit expression: a decimal scale factor over a dimension
// vector, with optional additive offset, time origin, or log descriptor.
// Per spec.md §3, every primitive below returns a freshly owned Unit; Go's
// value semantics and garbage collector make the manual free/alias
// discipline spec.md calls for automatic.
type Unit struct {
	Scale  decimal.Decimal
	Dims   Dims
	Offset *decimal.Decimal
	Origin *float64 // seconds since epoch, set by OffsetByTime
	Log    *LogDescriptor
}
