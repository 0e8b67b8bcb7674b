package literal

import (
	"regexp"
	"strconv"
	"strings"

	"bytesize/core/numeral"
	"bytesize/core/quantity"
	"bytesize/internal/errors"
)

// durationUnits maps lowercased duration-unit tokens to their length in
// seconds, nanoseconds through days
var durationUnits = map[string]float64{
	"ns": 1e-9, "nanosecond": 1e-9, "nanoseconds": 1e-9,
	"us": 1e-6, "µs": 1e-6, "μs": 1e-6, "microsecond": 1e-6, "microseconds": 1e-6,
	"ms": 1e-3, "millisecond": 1e-3, "milliseconds": 1e-3,
	"s": 1, "sec": 1, "secs": 1, "second": 1, "seconds": 1,
	"m": 60, "min": 60, "mins": 60, "minute": 60, "minutes": 60,
	"h": 3600, "hr": 3600, "hrs": 3600, "hour": 3600, "hours": 3600,
	"d": 86400, "day": 86400, "days": 86400,
}

// durationShape recognizes literals whose trailing token is a duration
// unit. The expression evaluator uses it to route a literal into the
// duration sub-grammar before falling back to the size grammar.
var durationShape = regexp.MustCompile(`(?i)\d\s*(?:ns|us|µs|μs|ms|s|sec|secs|m|min|mins|h|hr|hrs|d|[a-z]*seconds?|minutes?|hours?|days?)$`)

// LooksLikeDuration reports whether input is duration-shaped
func LooksLikeDuration(input string) bool {
	return durationShape.MatchString(strings.TrimSpace(input))
}

// ParseDuration parses one duration literal such as "5s", "1.5 h" or
// "250ms". A duration unit is mandatory: there is no unitless duration.
// An unrecognized unit yields TypeUnknownDurationUnit, deliberately
// distinct from TypeUnknownUnit so expression errors can name the
// sub-grammar that failed. strictBits is accepted for parity with the
// other literal parsers; durations carry no bit dimension.
func ParseDuration(input string, strictBits bool) (quantity.Value, Meta, *errors.Error) {
	num, rest, restOffset, ok := splitNumeral(input)
	if !ok {
		return quantity.Value{}, Meta{}, errors.MalformedLiteral(input).AtPosition(0)
	}
	if rest == "" {
		return quantity.Value{}, Meta{}, errors.UnknownDurationUnit("").AtPosition(len(input))
	}

	normalized := numeral.Normalize(num)
	raw, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return quantity.Value{}, Meta{}, errors.MalformedLiteral(input).AtPosition(0)
	}

	seconds, found := durationUnits[strings.ToLower(rest)]
	if !found {
		return quantity.Value{}, Meta{}, errors.UnknownDurationUnit(rest).AtPosition(restOffset)
	}

	meta := Meta{Normalized: normalized, Symbol: strings.ToLower(rest), Raw: raw}
	return quantity.Duration(raw * seconds), meta, nil
}
