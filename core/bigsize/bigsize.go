// Package bigsize parses size literals into exact integer byte counts.
//
// A bare-integer literal whose unit multiplier is itself an exact
// integer is computed entirely in big.Int arithmetic, so exabyte-scale
// values never round through a float64. Anything else (fractional
// numerals, the lone bit unit "b") is validated by the literal parser,
// recomputed as an exact decimal product and then rounded to an integer
// under a caller-selected mode. Both paths agree with the
// double-precision parser wherever float64 is exact, i.e. below 2^53
// bytes.
package bigsize

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"bytesize/core/literal"
	"bytesize/core/numeral"
	"bytesize/core/standard"
	"bytesize/core/unit"
	"bytesize/internal/errors"
)

// Rounding selects how the fallback path converts a fractional byte
// magnitude into an integer
type Rounding int

const (
	// RoundNearest rounds half away from zero
	RoundNearest Rounding = iota

	// RoundFloor rounds toward zero
	RoundFloor

	// RoundCeil rounds away from zero
	RoundCeil
)

// Result is an exact integer byte count plus parse metadata
type Result struct {
	// Bytes is the integer byte magnitude
	Bytes *big.Int

	// Meta carries the literal diagnostics (normalized numeral,
	// detected symbol, bit flag)
	Meta literal.Meta

	// Exact reports whether the integer fast path ran; false means the
	// value went through the decimal product and the rounding step
	Exact bool
}

// Parse parses a size literal into an exact byte count, rounding to
// nearest when the fallback path runs
func Parse(input string, std standard.Standard, strictBits bool) (Result, *errors.Error) {
	return ParseRounded(input, std, strictBits, RoundNearest)
}

// ParseRounded is Parse with an explicit rounding mode for the fallback
func ParseRounded(input string, std standard.Standard, strictBits bool, mode Rounding) (Result, *errors.Error) {
	if res, ok, err := fastPath(input, std); err != nil {
		return Result{}, err
	} else if ok {
		return res, nil
	}

	v, meta, err := literal.ParseSize(input, std, strictBits)
	if err != nil {
		return Result{}, err
	}
	if v.Magnitude < 0 {
		return Result{}, errors.NegativeSize()
	}

	product, derr := decimalProduct(meta)
	if derr != nil {
		return Result{}, derr
	}
	return Result{Bytes: roundDecimal(product, mode), Meta: meta}, nil
}

// decimalProduct recomputes numeral times multiplier as an exact
// decimal, so fractional literals like "1.5 EB" do not round through a
// float64 on their way to an integer.
func decimalProduct(meta literal.Meta) (decimal.Decimal, *errors.Error) {
	d, err := decimal.NewFromString(meta.Normalized)
	if err != nil {
		return decimal.Decimal{}, errors.MalformedLiteral(meta.Normalized)
	}
	var mult decimal.Decimal
	switch {
	case meta.Entry.Symbol == "":
		mult = decimal.NewFromInt(1)
	case meta.Entry.BytesInt != nil:
		mult = decimal.NewFromBigInt(meta.Entry.BytesInt, 0)
	default:
		// only the lone bit unit "b" has a non-integral multiplier
		mult = decimal.New(125, -3)
	}
	return d.Mul(mult), nil
}

// roundDecimal converts a non-negative decimal byte magnitude to an
// integer under the chosen mode
func roundDecimal(d decimal.Decimal, mode Rounding) *big.Int {
	switch mode {
	case RoundFloor:
		return d.Truncate(0).BigInt()
	case RoundCeil:
		return d.Ceil().BigInt()
	default:
		return d.Round(0).BigInt()
	}
}

// fastPath handles `sign? digits unit?` with an integral multiplier.
// ok is false when the literal does not fit the fast shape and the
// caller should fall back.
func fastPath(input string, std standard.Standard) (Result, bool, *errors.Error) {
	num, rest, ok := literal.Split(input)
	if !ok {
		return Result{}, false, errors.MalformedLiteral(input).AtPosition(0)
	}

	normalized := numeral.Normalize(num)
	if strings.ContainsRune(normalized, '.') {
		return Result{}, false, nil
	}
	n, valid := new(big.Int).SetString(normalized, 10)
	if !valid {
		return Result{}, false, errors.MalformedLiteral(input).AtPosition(0)
	}

	meta := literal.Meta{Normalized: normalized, Symbol: "B"}
	meta.Raw, _ = new(big.Float).SetInt(n).Float64()
	mult := big.NewInt(1)
	if rest != "" {
		entry, rerr := unit.Resolve(rest, std)
		if rerr != nil {
			return Result{}, false, rerr
		}
		if entry.BytesInt == nil {
			return Result{}, false, nil
		}
		meta.Symbol = entry.Symbol
		meta.Bit = entry.Bit
		meta.Entry = entry
		mult = entry.BytesInt
	}

	bytes := new(big.Int).Mul(n, mult)
	if bytes.Sign() < 0 {
		return Result{}, false, errors.NegativeSize()
	}
	return Result{Bytes: bytes, Meta: meta, Exact: true}, true, nil
}
