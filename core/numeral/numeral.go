// Package numeral canonicalizes locale-formatted numeral strings.
//
// Inputs such as "1 234,56", "1.234,56", "1,234.56" and "12_345.67" all
// normalize to plain float-literal form ("1234.56", "12345.67"). The
// decimal separator is whichever of ',' or '.' occurs last; every earlier
// occurrence of either character is treated as a grouping mark and removed.
package numeral

import "strings"

// grouping marks stripped anywhere in the numeral: regular space,
// no-break space, narrow no-break space, thin space, underscore
const groupingMarks = "    _"

// Normalize converts a locale-formatted numeral into canonical form
// parseable by strconv.ParseFloat. The result has an optional leading
// sign, a non-empty integer part and at most one '.' separator.
// Normalize is total and idempotent; it does not validate that the
// remaining characters are digits.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)

	var sign string
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		sign = string(s[0])
		s = s[1:]
	}

	var b strings.Builder
	for _, r := range s {
		if strings.ContainsRune(groupingMarks, r) {
			continue
		}
		b.WriteRune(r)
	}
	s = b.String()

	last := strings.LastIndexAny(s, ",.")
	if last < 0 {
		if s == "" {
			return sign + "0"
		}
		return sign + s
	}

	intPart := strings.Map(dropSeparators, s[:last])
	fracPart := s[last+1:]

	if fracPart == "" {
		if intPart == "" {
			return sign + "0"
		}
		return sign + intPart
	}
	if intPart == "" {
		intPart = "0"
	}
	return sign + intPart + "." + fracPart
}

// IsIntegral reports whether a normalized numeral carries no fractional
// part beyond trailing zeros ("2", "2.0" and "2.000" are integral,
// "1.5" is not).
func IsIntegral(normalized string) bool {
	dot := strings.IndexByte(normalized, '.')
	if dot < 0 {
		return true
	}
	return strings.Trim(normalized[dot+1:], "0") == ""
}

func dropSeparators(r rune) rune {
	if r == ',' || r == '.' {
		return -1
	}
	return r
}
