// Package format renders byte counts and rates as display text.
//
// It is the consuming side of the parsing engine: it takes a resolved
// magnitude plus a standard and never re-parses. Exact division by the
// unit multiplier goes through shopspring/decimal so display values do
// not drift at large scales. Locale handling is a formatter strategy
// passed in by the caller; there is no process-wide registration.
package format

import (
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"bytesize/core/standard"
	"bytesize/core/unit"
	"bytesize/internal/errors"
)

// NumeralFormatter renders a scaled decimal value as numeral text
type NumeralFormatter interface {
	Format(value decimal.Decimal) string
}

// Plain renders with a dot decimal separator and no grouping: 1234.56
type Plain struct{}

// Format implements NumeralFormatter
func (Plain) Format(value decimal.Decimal) string {
	return value.String()
}

// CommaDecimal renders with a comma decimal separator and no-break
// space grouping: 1 234,56
type CommaDecimal struct{}

// Format implements NumeralFormatter
func (CommaDecimal) Format(value decimal.Decimal) string {
	s := value.String()
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart := s
	frac := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, frac = s[:dot], s[dot+1:]
	}

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	out := strings.Join(groups, " ")
	if frac != "" {
		out += "," + frac
	}
	if neg {
		out = "-" + out
	}
	return out
}

// Options tunes humanization
type Options struct {
	// Precision is the number of fraction digits to keep, default 2
	Precision int32

	// Formatter renders the scaled numeral; Plain when nil
	Formatter NumeralFormatter

	// ForceUnit pins the output to one canonical byte symbol instead
	// of auto-selecting the largest fitting unit
	ForceUnit string
}

// Humanize renders a byte magnitude under a standard, e.g.
// Humanize(1536, standard.IEC, Options{}) == "1.5 KiB".
func Humanize(bytes float64, std standard.Standard, opts Options) (string, error) {
	if math.IsInf(bytes, 0) || math.IsNaN(bytes) {
		return "", errors.NonFinite()
	}

	symbol := opts.ForceUnit
	if symbol == "" {
		symbol = pickUnit(bytes, std)
	}
	mult, ok := unit.ByteMultiplier(symbol, std)
	if !ok {
		return "", errors.UnknownUnit(symbol)
	}

	precision := opts.Precision
	if precision == 0 {
		precision = 2
	}
	scaled := decimal.NewFromFloat(bytes).
		DivRound(decimal.NewFromBigInt(mult, 0), precision+4).
		Round(precision)

	formatter := opts.Formatter
	if formatter == nil {
		formatter = Plain{}
	}
	return formatter.Format(scaled) + " " + symbol, nil
}

// HumanizeRate renders a bytes-per-second magnitude as "<size>/s"
func HumanizeRate(bytesPerSecond float64, std standard.Standard, opts Options) (string, error) {
	s, err := Humanize(bytesPerSecond, std, opts)
	if err != nil {
		return "", err
	}
	return s + "/s", nil
}

// HumanizeBig renders an exact integer byte count, keeping the division
// exact however large the value
func HumanizeBig(bytes *big.Int, std standard.Standard, opts Options) (string, error) {
	approx, _ := new(big.Float).SetInt(bytes).Float64()
	symbol := opts.ForceUnit
	if symbol == "" {
		symbol = pickUnit(approx, std)
	}
	mult, ok := unit.ByteMultiplier(symbol, std)
	if !ok {
		return "", errors.UnknownUnit(symbol)
	}

	precision := opts.Precision
	if precision == 0 {
		precision = 2
	}
	scaled := decimal.NewFromBigInt(bytes, 0).
		DivRound(decimal.NewFromBigInt(mult, 0), precision+4).
		Round(precision)

	formatter := opts.Formatter
	if formatter == nil {
		formatter = Plain{}
	}
	return formatter.Format(scaled) + " " + symbol, nil
}

// pickUnit selects the largest unit whose multiplier does not exceed
// the magnitude, falling back to bytes
func pickUnit(bytes float64, std standard.Standard) string {
	symbols := unit.Symbols(std)
	abs := math.Abs(bytes)
	chosen := symbols[0]
	for _, sym := range symbols[1:] {
		mult, _ := unit.ByteMultiplier(sym, std)
		f, _ := new(big.Float).SetInt(mult).Float64()
		if abs < f {
			break
		}
		chosen = sym
	}
	return chosen
}
