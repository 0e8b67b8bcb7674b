package unit

import (
	"math/big"
	"strings"

	"bytesize/core/standard"
	"bytesize/internal/errors"
)

// octetAliases maps uppercased French octet symbols (o, ko, Mo, Go, ...)
// to the equivalent decimal byte symbol, built from siPrefixes in init
var octetAliases map[string]string

func init() {
	octetAliases = make(map[string]string, len(siPrefixes)+1)
	octetAliases["O"] = "B"
	for _, p := range siPrefixes {
		octetAliases[upperKey(p+"o")] = p + "B"
	}
}

func upperKey(s string) string {
	return strings.ToUpper(s)
}

// normalizeWordForm rewrites a spelled-out unit name ("kilobytes",
// "gibibit", "kilooctets", "octet") into its symbolic form ("KB", "Gib",
// "KB", "B"). Tokens that are not word forms pass through unchanged.
func normalizeWordForm(token string) string {
	lower := strings.ToLower(token)
	lower = strings.TrimSuffix(lower, "s")

	var tail, prefix string
	switch {
	case strings.HasSuffix(lower, "byte"):
		tail, prefix = "B", strings.TrimSuffix(lower, "byte")
	case strings.HasSuffix(lower, "octet"):
		tail, prefix = "B", strings.TrimSuffix(lower, "octet")
	case strings.HasSuffix(lower, "bit"):
		tail, prefix = "b", strings.TrimSuffix(lower, "bit")
	default:
		return token
	}

	if prefix == "" {
		return tail
	}
	if sym, ok := prefixWords[prefix]; ok {
		return sym + tail
	}
	if sym, ok := binaryPrefixWords[prefix]; ok {
		return sym + tail
	}
	return token
}

// splitBitSuffix detects the bit-vs-byte distinction: a trailing
// lowercase 'b' marks a bit unit. It returns the uppercase byte-table
// key and the bit flag.
func splitBitSuffix(token string) (key string, bit bool) {
	if strings.HasSuffix(token, "b") {
		return upperKey(token[:len(token)-1] + "B"), true
	}
	return upperKey(token), false
}

// isIECSymbol reports whether key is an IEC-only byte symbol (KIB..YIB)
func isIECSymbol(key string) bool {
	if key == "B" {
		return false
	}
	_, ok := iecTable[key]
	return ok
}

// isSIByteSymbol reports whether key is a decimal SI byte symbol (KB..QB)
func isSIByteSymbol(key string) bool {
	if key == "B" {
		return false
	}
	_, ok := siTable[key]
	return ok
}

// Resolve maps a raw unit token to a byte multiplier under the
// requested standard.
//
// The requested standard's table is consulted first; on a miss the
// other standards are tried in the fixed order SI, IEC, JEDEC. Two
// rejection rules run before any fallback and are authoritative:
//
//  1. IEC-only symbols (KiB..YiB, Kib..Yib) never resolve under an SI
//     or JEDEC request.
//  2. Decimal SI byte symbols (KB..QB) never resolve under an IEC
//     request, except when the token is a bit unit (so "Mbps" stays
//     valid under IEC).
func Resolve(token string, std standard.Standard) (Entry, *errors.Error) {
	return resolve(token, std, true)
}

// ResolveAny resolves with cross-standard fallback but without the
// rejection rules. The expression evaluator uses it for literals inside
// multi-literal expressions, which is what lets "1 GiB + 256 MB"
// evaluate under any requested standard while the lone literal
// "1.5 KiB" still hard-fails under SI.
func ResolveAny(token string, std standard.Standard) (Entry, *errors.Error) {
	return resolve(token, std, false)
}

func resolve(token string, std standard.Standard, strict bool) (Entry, *errors.Error) {
	tok := strings.TrimSpace(token)
	if tok == "" {
		return Entry{}, errors.UnknownUnit(token)
	}

	tok = normalizeWordForm(tok)
	if alias, ok := octetAliases[upperKey(tok)]; ok {
		tok = alias
	}

	key, bit := splitBitSuffix(tok)

	if strict {
		if isIECSymbol(key) && std != standard.IEC {
			return Entry{}, errors.UnknownUnit(token)
		}
		if std == standard.IEC && !bit && isSIByteSymbol(key) {
			return Entry{}, errors.UnknownUnit(token)
		}
	}

	if row, ok := tableFor(std)[key]; ok {
		return newEntry(row, std, bit), nil
	}
	for _, other := range standard.All {
		if other == std {
			continue
		}
		if row, ok := tableFor(other)[key]; ok {
			return newEntry(row, other, bit), nil
		}
	}
	return Entry{}, errors.UnknownUnit(token)
}

var eight = big.NewInt(8)

func newEntry(row tableEntry, std standard.Standard, bit bool) Entry {
	e := Entry{
		Symbol:   row.symbol,
		Standard: std,
		Bit:      bit,
		BytesInt: new(big.Int).Set(row.bytes),
	}
	if bit {
		e.Symbol = row.symbol[:len(row.symbol)-1] + "b"
		var rem big.Int
		q, _ := new(big.Int).QuoRem(e.BytesInt, eight, &rem)
		if rem.Sign() == 0 {
			e.BytesInt = q
		} else {
			e.BytesInt = nil
		}
	}
	if e.BytesInt != nil {
		e.Bytes, _ = new(big.Float).SetInt(e.BytesInt).Float64()
	} else {
		f, _ := new(big.Float).SetInt(row.bytes).Float64()
		e.Bytes = f / 8
	}
	return e
}
