// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeMalformedLiteral indicates input that does not match the
	// `number unit?` literal shape at all
	TypeMalformedLiteral Type = "MALFORMED_LITERAL"

	// TypeUnknownUnit indicates a unit token that does not resolve under
	// the requested standard after fallback and rejection rules
	TypeUnknownUnit Type = "UNKNOWN_UNIT"

	// TypeUnknownDurationUnit indicates an unrecognized duration unit,
	// kept distinct from TypeUnknownUnit so expression errors can say
	// which sub-grammar failed
	TypeUnknownDurationUnit Type = "UNKNOWN_DURATION_UNIT"

	// TypeIncompatibleUnits indicates addition or subtraction across
	// differing dimensional powers
	TypeIncompatibleUnits Type = "INCOMPATIBLE_UNITS"

	// TypeDimensionMismatch indicates a fully evaluated expression that
	// does not carry the power signature the caller asked for
	TypeDimensionMismatch Type = "DIMENSION_MISMATCH"

	// TypeDivisionByZero indicates a division whose right operand has
	// zero magnitude
	TypeDivisionByZero Type = "DIVISION_BY_ZERO"

	// TypeNonFiniteResult indicates an arithmetic step that overflowed
	// or produced NaN
	TypeNonFiniteResult Type = "NON_FINITE_RESULT"

	// TypeFractionalBits indicates a non-integral bit quantity rejected
	// under strict-bit mode
	TypeFractionalBits Type = "FRACTIONAL_BITS"

	// TypeNegativeSize indicates an attempt to construct a negative
	// byte size
	TypeNegativeSize Type = "NEGATIVE_SIZE"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type   `json:"type"`
	Message string `json:"message"`

	// Position is the character offset within the original input where
	// the error was detected, or -1 when unknown
	Position int   `json:"position"`
	Cause    error `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// AtPosition returns a copy of the error anchored at the given character
// offset. An offset already set is kept.
func (e *Error) AtPosition(pos int) *Error {
	if e.Position >= 0 {
		return e
	}
	clone := *e
	clone.Position = pos
	return &clone
}

// ShiftPosition moves the error's offset by delta, anchoring it first if
// it was unset. The expression evaluator uses this to translate a
// literal-relative offset into a whole-input offset.
func (e *Error) ShiftPosition(delta int) *Error {
	clone := *e
	if clone.Position < 0 {
		clone.Position = 0
	}
	clone.Position += delta
	return &clone
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:     errType,
		Message:  message,
		Position: -1,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:     errType,
		Message:  fmt.Sprintf(format, args...),
		Position: -1,
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:     errType,
		Message:  message,
		Position: -1,
		Cause:    cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// MalformedLiteral creates a malformed literal error
func MalformedLiteral(input string) *Error {
	return Newf(TypeMalformedLiteral, "malformed literal: %q", input)
}

// UnknownUnit creates an unknown unit error carrying the offending token
func UnknownUnit(token string) *Error {
	return Newf(TypeUnknownUnit, "unknown unit: %q", token)
}

// UnknownDurationUnit creates an unknown duration unit error
func UnknownDurationUnit(token string) *Error {
	return Newf(TypeUnknownDurationUnit, "unknown duration unit: %q", token)
}

// IncompatibleUnits creates an incompatible units error
func IncompatibleUnits(op string) *Error {
	return Newf(TypeIncompatibleUnits, "incompatible units for %q", op)
}

// DivisionByZero creates a division by zero error
func DivisionByZero() *Error {
	return New(TypeDivisionByZero, "division by zero in expression")
}

// NonFinite creates a non-finite result error
func NonFinite() *Error {
	return New(TypeNonFiniteResult, "invalid value: arithmetic result is not finite")
}

// FractionalBits creates a strict-bit mode rejection error
func FractionalBits(input string) *Error {
	return Newf(TypeFractionalBits, "fractional bits not allowed: %q", input)
}

// NegativeSize creates a negative size error
func NegativeSize() *Error {
	return New(TypeNegativeSize, "byte size must be non-negative")
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
