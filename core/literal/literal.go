// Package literal parses the three literal grammars: byte sizes,
// durations and transfer rates.
//
// All three share the shape `sign? digits (separator digits)? unit?`.
// Numeral handling is delegated to core/numeral, unit handling to
// core/unit. Each parser returns a dimension-tagged quantity plus the
// diagnostic metadata callers need for round-tripping.
package literal

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"bytesize/core/unit"
)

// Meta carries diagnostic detail about one parsed literal
type Meta struct {
	// Normalized is the canonical form of the numeral part
	Normalized string

	// Symbol is the canonical unit symbol that resolved, "B" for a
	// bare size numeral
	Symbol string

	// Bit reports whether the input used a bit unit
	Bit bool

	// Raw is the numeric value before the unit multiplier was applied
	Raw float64

	// Entry is the resolved unit entry; zero value for a bare numeral
	Entry unit.Entry
}

// numeralBody holds every rune allowed inside a numeral after the sign:
// separators, grouping marks and underscores; digits are checked
// separately
const numeralBody = ",._    "

// splitNumeral cuts a literal into its numeral prefix and unit
// remainder, returning the unit's byte offset within the input. The
// numeral prefix is the longest run of digits, separators and grouping
// marks after an optional sign.
func splitNumeral(input string) (num, rest string, restOffset int, ok bool) {
	s := input
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsDigit(r) {
			digits++
			i += size
			continue
		}
		if strings.ContainsRune(numeralBody, r) {
			i += size
			continue
		}
		break
	}
	if digits == 0 {
		return "", "", 0, false
	}
	num = strings.TrimRight(s[:i], numeralBody)
	rest = strings.TrimSpace(s[i:])
	restOffset = i + leadingSpace(s[i:])
	return num, rest, restOffset, true
}

// Split cuts a literal into its numeral and unit parts without parsing
// either. ok is false when no digits are present.
func Split(input string) (num, unitToken string, ok bool) {
	num, unitToken, _, ok = splitNumeral(input)
	return num, unitToken, ok
}

// UnitToken extracts the unit remainder of a literal, or "" when the
// literal is bare or malformed. The expression evaluator uses it to
// pre-scan an expression's unit symbols without fully parsing.
func UnitToken(input string) string {
	_, rest, ok := Split(input)
	if !ok {
		return ""
	}
	return rest
}

func leadingSpace(s string) int {
	return len(s) - len(strings.TrimLeft(s, " \t"))
}
