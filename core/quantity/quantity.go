// Package quantity implements dimension-tracked magnitudes.
//
// Every intermediate value of the expression evaluator carries two
// dimensional powers: a size power and a time power. A byte size is
// (1, 0), a duration is (0, 1), a transfer rate is (1, -1) and a bare
// scalar is (0, 0). Addition and subtraction demand matching powers;
// multiplication and division combine them. This is what rejects
// nonsensical arithmetic such as adding a size to a duration.
package quantity

import (
	"math"

	"bytesize/internal/errors"
)

// Value is a magnitude tagged with its dimensional powers
type Value struct {
	// Magnitude is the numeric value: bytes for sizes, seconds for
	// durations, bytes per second for rates
	Magnitude float64

	// SizePow is the exponent of the byte dimension
	SizePow int

	// TimePow is the exponent of the time dimension
	TimePow int
}

// Size wraps a byte count
func Size(bytes float64) Value {
	return Value{Magnitude: bytes, SizePow: 1}
}

// Duration wraps a second count
func Duration(seconds float64) Value {
	return Value{Magnitude: seconds, TimePow: 1}
}

// Rate wraps a bytes-per-second magnitude
func Rate(bytesPerSecond float64) Value {
	return Value{Magnitude: bytesPerSecond, SizePow: 1, TimePow: -1}
}

// Scalar wraps a dimensionless number
func Scalar(x float64) Value {
	return Value{Magnitude: x}
}

// IsSize reports whether the value carries the byte-size signature
func (v Value) IsSize() bool {
	return v.SizePow == 1 && v.TimePow == 0
}

// IsRate reports whether the value carries the bytes-per-second signature
func (v Value) IsRate() bool {
	return v.SizePow == 1 && v.TimePow == -1
}

// IsDuration reports whether the value carries the duration signature
func (v Value) IsDuration() bool {
	return v.SizePow == 0 && v.TimePow == 1
}

// IsScalar reports whether the value is dimensionless
func (v Value) IsScalar() bool {
	return v.SizePow == 0 && v.TimePow == 0
}

// SamePowers reports whether two values share both dimensional powers
func (v Value) SamePowers(o Value) bool {
	return v.SizePow == o.SizePow && v.TimePow == o.TimePow
}

// Neg negates the magnitude without touching the powers
func (v Value) Neg() Value {
	v.Magnitude = -v.Magnitude
	return v
}

// Add sums two values of identical dimension
func (v Value) Add(o Value) (Value, *errors.Error) {
	if !v.SamePowers(o) {
		return Value{}, errors.IncompatibleUnits("+")
	}
	return v.checked(Value{v.Magnitude + o.Magnitude, v.SizePow, v.TimePow})
}

// Sub subtracts a value of identical dimension
func (v Value) Sub(o Value) (Value, *errors.Error) {
	if !v.SamePowers(o) {
		return Value{}, errors.IncompatibleUnits("-")
	}
	return v.checked(Value{v.Magnitude - o.Magnitude, v.SizePow, v.TimePow})
}

// Mul multiplies magnitudes and adds powers
func (v Value) Mul(o Value) (Value, *errors.Error) {
	return v.checked(Value{
		Magnitude: v.Magnitude * o.Magnitude,
		SizePow:   v.SizePow + o.SizePow,
		TimePow:   v.TimePow + o.TimePow,
	})
}

// Div divides magnitudes and subtracts powers. A zero-magnitude divisor
// is an error.
func (v Value) Div(o Value) (Value, *errors.Error) {
	if o.Magnitude == 0 {
		return Value{}, errors.DivisionByZero()
	}
	return v.checked(Value{
		Magnitude: v.Magnitude / o.Magnitude,
		SizePow:   v.SizePow - o.SizePow,
		TimePow:   v.TimePow - o.TimePow,
	})
}

// checked fails fast on overflow or NaN so a corrupted magnitude never
// propagates through the rest of an expression.
func (v Value) checked(result Value) (Value, *errors.Error) {
	if math.IsInf(result.Magnitude, 0) || math.IsNaN(result.Magnitude) {
		return Value{}, errors.NonFinite()
	}
	return result, nil
}
