// Package unit resolves byte/bit unit symbols into multipliers.
//
// Three incompatible standards coexist: SI (decimal, KB..QB), IEC
// (binary, KiB..YiB) and JEDEC (binary multipliers behind decimal
// symbols, KB..TB only). Resolution follows the requested standard's
// table first and falls back to the others under an ordered rejection
// policy, see Resolve.
package unit

import (
	"math/big"

	"bytesize/core/standard"
)

// Entry describes one resolved unit symbol
type Entry struct {
	// Symbol is the canonical symbol for round-tripping ("MB", "KiB", "Gb")
	Symbol string

	// Standard is the standard whose table resolved the symbol
	Standard standard.Standard

	// Bytes is the multiplier converting the numeral to bytes; for bit
	// units this is the bit multiplier divided by 8
	Bytes float64

	// BytesInt is the same multiplier as an exact integer, or nil when
	// the multiplier is not integral (e.g. the lone bit unit "b")
	BytesInt *big.Int

	// Bit reports whether the source symbol denoted bits rather than bytes
	Bit bool
}

var (
	siPrefixes  = []string{"K", "M", "G", "T", "P", "E", "Z", "Y", "R", "Q"}
	iecPrefixes = []string{"Ki", "Mi", "Gi", "Ti", "Pi", "Ei", "Zi", "Yi"}

	// JEDEC stops at TB. There is no JEDEC PB.
	jedecPrefixes = []string{"K", "M", "G", "T"}
)

// prefixWords maps spelled-out decimal prefixes to their symbol,
// position-aligned with siPrefixes
var prefixWords = map[string]string{
	"kilo": "K", "mega": "M", "giga": "G", "tera": "T", "peta": "P",
	"exa": "E", "zetta": "Z", "yotta": "Y", "ronna": "R", "quetta": "Q",
}

// binaryPrefixWords maps spelled-out binary prefixes to their symbol
var binaryPrefixWords = map[string]string{
	"kibi": "Ki", "mebi": "Mi", "gibi": "Gi", "tebi": "Ti",
	"pebi": "Pi", "exbi": "Ei", "zebi": "Zi", "yobi": "Yi",
}

// tableEntry is one row of a standard's byte-symbol table
type tableEntry struct {
	symbol string   // canonical byte symbol
	bytes  *big.Int // exact byte multiplier
}

var (
	siTable    map[string]tableEntry
	iecTable   map[string]tableEntry
	jedecTable map[string]tableEntry
)

func buildTable(prefixes []string, base int64, suffix string) map[string]tableEntry {
	t := make(map[string]tableEntry, len(prefixes)+1)
	t["B"] = tableEntry{symbol: "B", bytes: big.NewInt(1)}
	mult := big.NewInt(1)
	b := big.NewInt(base)
	for _, p := range prefixes {
		mult = new(big.Int).Mul(mult, b)
		sym := p + suffix
		t[upperKey(sym)] = tableEntry{symbol: sym, bytes: mult}
	}
	return t
}

func init() {
	siTable = buildTable(siPrefixes, 1000, "B")
	iecTable = buildTable(iecPrefixes, 1024, "B")
	jedecTable = buildTable(jedecPrefixes, 1024, "B")
}

func tableFor(std standard.Standard) map[string]tableEntry {
	switch std {
	case standard.SI:
		return siTable
	case standard.IEC:
		return iecTable
	default:
		return jedecTable
	}
}

// ByteMultiplier returns the exact byte multiplier of a canonical byte
// symbol under one standard
func ByteMultiplier(symbol string, std standard.Standard) (*big.Int, bool) {
	row, ok := tableFor(std)[upperKey(symbol)]
	if !ok {
		return nil, false
	}
	return new(big.Int).Set(row.bytes), true
}

// Symbols returns the canonical byte symbols of a standard in ascending
// multiplier order, starting at "B". Used by the humanizer to pick a
// display unit.
func Symbols(std standard.Standard) []string {
	var prefixes []string
	switch std {
	case standard.SI:
		prefixes = siPrefixes
	case standard.IEC:
		prefixes = iecPrefixes
	default:
		prefixes = jedecPrefixes
	}
	out := make([]string, 0, len(prefixes)+1)
	out = append(out, "B")
	for _, p := range prefixes {
		out = append(out, p+"B")
	}
	return out
}
