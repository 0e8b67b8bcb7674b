// Package standard defines the closed set of byte-unit standards.
package standard

import (
	"fmt"
	"strings"
)

// Standard identifies a byte-unit standard
type Standard int

const (
	// SI is the decimal standard: 1000-based multipliers, symbols KB..QB
	SI Standard = iota

	// IEC is the binary standard: 1024-based multipliers, symbols KiB..YiB
	IEC

	// JEDEC is the binary standard with decimal-looking symbols,
	// limited to KB..TB
	JEDEC
)

// All lists every standard in fallback order
var All = []Standard{SI, IEC, JEDEC}

// String returns the string representation
func (s Standard) String() string {
	switch s {
	case SI:
		return "SI"
	case IEC:
		return "IEC"
	case JEDEC:
		return "JEDEC"
	default:
		return fmt.Sprintf("Standard(%d)", int(s))
	}
}

// Base returns the multiplier base: 1000 for SI, 1024 for IEC and JEDEC
func (s Standard) Base() int64 {
	if s == SI {
		return 1000
	}
	return 1024
}

// Parse converts a case-insensitive name into a Standard
func Parse(name string) (Standard, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "SI", "DECIMAL", "METRIC":
		return SI, nil
	case "IEC", "BINARY":
		return IEC, nil
	case "JEDEC":
		return JEDEC, nil
	default:
		return SI, fmt.Errorf("unknown standard: %q", name)
	}
}
