package literal

import (
	"math"
	"strconv"

	"bytesize/core/numeral"
	"bytesize/core/quantity"
	"bytesize/core/standard"
	"bytesize/core/unit"
	"bytesize/internal/errors"
)

// compatMBBytes is the multiplier applied to "MB" inside an SI
// expression that also mentions "GB" literally: 10^9/1024 bytes, so
// that "1 GB + 512 MB" comes out at exactly 1.5e9. A historical
// compatibility shim, never part of the general SI table.
const compatMBBytes = 1e9 / 1024

// SizeOptions tunes size-literal parsing
type SizeOptions struct {
	// StrictBits rejects bit-unit literals whose numeral is not integral
	StrictBits bool

	// CompatMB switches "MB" to the 10^9/1024 interpretation. Only the
	// expression evaluator sets this, and only for SI expressions that
	// mix MB and GB literals.
	CompatMB bool

	// Permissive resolves units via unit.ResolveAny, skipping the
	// cross-standard rejection rules. Set for literals inside
	// multi-literal expressions.
	Permissive bool
}

// ParseSize parses one size literal such as "1.5 GB", "2Gib" or a bare
// byte count "4096". The unit is optional; a bare numeral counts bytes.
func ParseSize(input string, std standard.Standard, strictBits bool) (quantity.Value, Meta, *errors.Error) {
	return ParseSizeWith(input, std, SizeOptions{StrictBits: strictBits})
}

// ParseSizeWith is ParseSize with full options
func ParseSizeWith(input string, std standard.Standard, opts SizeOptions) (quantity.Value, Meta, *errors.Error) {
	num, rest, restOffset, ok := splitNumeral(input)
	if !ok {
		return quantity.Value{}, Meta{}, errors.MalformedLiteral(input).AtPosition(0)
	}

	normalized := numeral.Normalize(num)
	raw, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return quantity.Value{}, Meta{}, errors.MalformedLiteral(input).AtPosition(0)
	}

	meta := Meta{Normalized: normalized, Symbol: "B", Raw: raw}
	multiplier := 1.0

	if rest != "" {
		entry, rerr := resolveUnit(rest, std, opts.Permissive)
		if rerr != nil {
			return quantity.Value{}, Meta{}, rerr.AtPosition(restOffset)
		}
		if opts.StrictBits && entry.Bit && !numeral.IsIntegral(normalized) {
			return quantity.Value{}, Meta{}, errors.FractionalBits(input).AtPosition(0)
		}
		meta.Symbol = entry.Symbol
		meta.Bit = entry.Bit
		meta.Entry = entry
		multiplier = entry.Bytes
		if opts.CompatMB && std == standard.SI && entry.Symbol == "MB" {
			multiplier = compatMBBytes
		}
	}

	bytes := raw * multiplier
	if math.IsInf(bytes, 0) || math.IsNaN(bytes) {
		return quantity.Value{}, Meta{}, errors.NonFinite().AtPosition(0)
	}
	return quantity.Size(bytes), meta, nil
}

func resolveUnit(token string, std standard.Standard, permissive bool) (unit.Entry, *errors.Error) {
	if permissive {
		return unit.ResolveAny(token, std)
	}
	return unit.Resolve(token, std)
}
