package literal

import (
	"math"
	"strconv"
	"strings"

	"bytesize/core/numeral"
	"bytesize/core/quantity"
	"bytesize/core/standard"
	"bytesize/internal/errors"
)

// RateMeta extends Meta with the canonical external rate quantity
type RateMeta struct {
	Meta

	// BitsPerSecond is the canonical externally visible rate; the
	// internal magnitude is bytes per second
	BitsPerSecond float64
}

// LooksLikeRate reports whether input is rate-shaped: a throughput
// suffix ("/s" or a trailing "ps") plus at least one digit.
func LooksLikeRate(input string) bool {
	s := strings.TrimSpace(input)
	if !strings.ContainsAny(s, "0123456789") {
		return false
	}
	return strings.Contains(s, "/") || strings.HasSuffix(s, "ps")
}

// RateOptions tunes rate-literal parsing
type RateOptions struct {
	// StrictBits rejects bit-unit literals whose numeral is not integral
	StrictBits bool

	// Permissive skips the cross-standard rejection rules; set for
	// literals inside multi-literal expressions
	Permissive bool
}

// ParseRate parses one rate literal such as "100 MB/s", "50 Mbps" or
// "1 GiB/s". The unit part is mandatory and must carry a throughput
// suffix; the byte-or-bit prefix goes through the same
// standard/fallback/rejection policy as size units, which is what makes
// "1 MB/s" unknown under an IEC request while "1 Mbps" stays valid.
func ParseRate(input string, std standard.Standard, strictBits bool) (quantity.Value, RateMeta, *errors.Error) {
	return ParseRateWith(input, std, RateOptions{StrictBits: strictBits})
}

// ParseRateWith is ParseRate with full options
func ParseRateWith(input string, std standard.Standard, opts RateOptions) (quantity.Value, RateMeta, *errors.Error) {
	num, rest, restOffset, ok := splitNumeral(input)
	if !ok {
		return quantity.Value{}, RateMeta{}, errors.MalformedLiteral(input).AtPosition(0)
	}

	// whitespace around the slash is tolerated: "1 MB / s" and
	// "1 MB/s" read the same
	var unitTok string
	if slash := strings.LastIndexByte(rest, '/'); slash >= 0 {
		if strings.TrimSpace(rest[slash+1:]) != "s" {
			return quantity.Value{}, RateMeta{}, errors.MalformedLiteral(input).AtPosition(restOffset)
		}
		unitTok = strings.TrimSpace(rest[:slash])
	} else if strings.HasSuffix(rest, "ps") {
		unitTok = strings.TrimSuffix(rest, "ps")
	} else {
		return quantity.Value{}, RateMeta{}, errors.MalformedLiteral(input).AtPosition(restOffset)
	}
	if unitTok == "" {
		return quantity.Value{}, RateMeta{}, errors.UnknownUnit(rest).AtPosition(restOffset)
	}

	normalized := numeral.Normalize(num)
	raw, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return quantity.Value{}, RateMeta{}, errors.MalformedLiteral(input).AtPosition(0)
	}

	entry, rerr := resolveUnit(unitTok, std, opts.Permissive)
	if rerr != nil {
		return quantity.Value{}, RateMeta{}, rerr.AtPosition(restOffset)
	}
	if opts.StrictBits && entry.Bit && !numeral.IsIntegral(normalized) {
		return quantity.Value{}, RateMeta{}, errors.FractionalBits(input).AtPosition(0)
	}

	bytesPerSecond := raw * entry.Bytes
	if math.IsInf(bytesPerSecond, 0) || math.IsNaN(bytesPerSecond) {
		return quantity.Value{}, RateMeta{}, errors.NonFinite().AtPosition(0)
	}

	meta := RateMeta{
		Meta: Meta{
			Normalized: normalized,
			Symbol:     entry.Symbol + "/s",
			Bit:        entry.Bit,
			Raw:        raw,
			Entry:      entry,
		},
		BitsPerSecond: bytesPerSecond * 8,
	}
	return quantity.Rate(bytesPerSecond), meta, nil
}
