package unit

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bytesize/core/standard"
	"bytesize/internal/errors"
)

func TestRoundTripMultipliers(t *testing.T) {
	// every canonical symbol of a standard resolves to the exact
	// multiplier its table declares
	for _, std := range standard.All {
		for _, sym := range Symbols(std) {
			entry, err := Resolve(sym, std)
			require.Nil(t, err, "%s under %s", sym, std)
			want, ok := ByteMultiplier(sym, std)
			require.True(t, ok)
			assert.Equal(t, 0, entry.BytesInt.Cmp(want), "%s under %s", sym, std)
			assert.Equal(t, sym, entry.Symbol)
		}
	}
}

func TestStandardMultipliers(t *testing.T) {
	tests := []struct {
		token string
		std   standard.Standard
		bytes *big.Int
	}{
		{"KB", standard.SI, big.NewInt(1000)},
		{"MB", standard.SI, big.NewInt(1000 * 1000)},
		{"GB", standard.SI, big.NewInt(1000 * 1000 * 1000)},
		{"KiB", standard.IEC, big.NewInt(1024)},
		{"MiB", standard.IEC, big.NewInt(1024 * 1024)},
		{"GiB", standard.IEC, big.NewInt(1024 * 1024 * 1024)},
		{"KB", standard.JEDEC, big.NewInt(1024)},
		{"MB", standard.JEDEC, big.NewInt(1024 * 1024)},
		{"TB", standard.JEDEC, big.NewInt(1024 * 1024 * 1024 * 1024)},
		// JEDEC has no PB; decimal fallback applies
		{"PB", standard.JEDEC, big.NewInt(1000_000_000_000_000)},
		{"B", standard.SI, big.NewInt(1)},
	}
	for _, tt := range tests {
		entry, err := Resolve(tt.token, tt.std)
		require.Nil(t, err, "%s under %s", tt.token, tt.std)
		assert.Equal(t, 0, entry.BytesInt.Cmp(tt.bytes), "%s under %s", tt.token, tt.std)
	}
}

func TestRejectionRules(t *testing.T) {
	// IEC-only symbols never resolve under SI or JEDEC
	for _, std := range []standard.Standard{standard.SI, standard.JEDEC} {
		for _, tok := range []string{"KiB", "MiB", "GiB", "YiB", "Kib"} {
			_, err := Resolve(tok, std)
			require.NotNil(t, err, "%s under %s", tok, std)
			assert.True(t, err.Is(errors.TypeUnknownUnit))
		}
	}

	// decimal SI byte symbols never resolve under IEC
	for _, tok := range []string{"KB", "MB", "GB", "QB"} {
		_, err := Resolve(tok, standard.IEC)
		require.NotNil(t, err, "%s under IEC", tok)
		assert.True(t, err.Is(errors.TypeUnknownUnit))
	}

	// ...except when the token is a bit unit
	entry, err := Resolve("Mb", standard.IEC)
	require.Nil(t, err)
	assert.True(t, entry.Bit)
	assert.Equal(t, 0, entry.BytesInt.Cmp(big.NewInt(125000)))
}

func TestResolveAnySkipsRejections(t *testing.T) {
	entry, err := ResolveAny("GiB", standard.SI)
	require.Nil(t, err)
	assert.Equal(t, 0, entry.BytesInt.Cmp(big.NewInt(1<<30)))

	entry, err = ResolveAny("MB", standard.IEC)
	require.Nil(t, err)
	assert.Equal(t, 0, entry.BytesInt.Cmp(big.NewInt(1000*1000)))
}

func TestBitUnits(t *testing.T) {
	entry, err := Resolve("Kb", standard.SI)
	require.Nil(t, err)
	assert.True(t, entry.Bit)
	assert.Equal(t, "Kb", entry.Symbol)
	assert.Equal(t, 0, entry.BytesInt.Cmp(big.NewInt(125)))

	// the lone bit is an eighth of a byte; no exact integer multiplier
	entry, err = Resolve("b", standard.SI)
	require.Nil(t, err)
	assert.True(t, entry.Bit)
	assert.Nil(t, entry.BytesInt)
	assert.Equal(t, 0.125, entry.Bytes)

	// uppercase B stays a byte
	entry, err = Resolve("B", standard.SI)
	require.Nil(t, err)
	assert.False(t, entry.Bit)
}

func TestWordForms(t *testing.T) {
	tests := []struct {
		token string
		std   standard.Standard
		bytes int64
		bit   bool
	}{
		{"kilobyte", standard.SI, 1000, false},
		{"kilobytes", standard.SI, 1000, false},
		{"gigabits", standard.SI, 125_000_000, true},
		{"kibibyte", standard.IEC, 1024, false},
		{"kibibit", standard.IEC, 128, true},
		{"bytes", standard.SI, 1, false},
		{"kilooctets", standard.SI, 1000, false},
		{"octet", standard.SI, 1, false},
	}
	for _, tt := range tests {
		entry, err := Resolve(tt.token, tt.std)
		require.Nil(t, err, "%s under %s", tt.token, tt.std)
		assert.Equal(t, 0, entry.BytesInt.Cmp(big.NewInt(tt.bytes)), "%s", tt.token)
		assert.Equal(t, tt.bit, entry.Bit, "%s", tt.token)
	}
}

func TestOctetSymbols(t *testing.T) {
	entry, err := Resolve("Mo", standard.SI)
	require.Nil(t, err)
	assert.Equal(t, "MB", entry.Symbol)
	assert.Equal(t, 0, entry.BytesInt.Cmp(big.NewInt(1000*1000)))

	entry, err = Resolve("ko", standard.SI)
	require.Nil(t, err)
	assert.Equal(t, "KB", entry.Symbol)
}

func TestUnknownUnits(t *testing.T) {
	for _, tok := range []string{"", "XB", "foo", "KBs", "parsec"} {
		_, err := Resolve(tok, standard.SI)
		require.NotNil(t, err, "%q", tok)
		assert.True(t, err.Is(errors.TypeUnknownUnit), "%q", tok)
	}
}
