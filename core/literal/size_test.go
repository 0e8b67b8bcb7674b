package literal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bytesize/core/standard"
	"bytesize/internal/errors"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		input  string
		std    standard.Standard
		bytes  float64
		symbol string
	}{
		{"1.5 GB", standard.SI, 1.5e9, "GB"},
		{"1.5GB", standard.SI, 1.5e9, "GB"},
		{"2 GiB", standard.IEC, 2 * 1024 * 1024 * 1024, "GiB"},
		{"1 MB", standard.JEDEC, 1024 * 1024, "MB"},
		{"1 MB", standard.SI, 1e6, "MB"},
		{"4096", standard.SI, 4096, "B"},
		{"100 kB", standard.SI, 100000, "KB"},
		{"8 Mb", standard.SI, 1e6, "Mb"},
		{"1,5 kilooctets", standard.SI, 1500, "KB"},
		{"1 234,56 KB", standard.SI, 1234560, "KB"},
		{"0.5 KiB", standard.IEC, 512, "KiB"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, meta, err := ParseSize(tt.input, tt.std, false)
			require.Nil(t, err)
			assert.True(t, v.IsSize())
			assert.InDelta(t, tt.bytes, v.Magnitude, 1e-6)
			assert.Equal(t, tt.symbol, meta.Symbol)
		})
	}
}

func TestParseSizeMalformed(t *testing.T) {
	for _, input := range []string{"", "GB", "  ", "abc", "--1"} {
		_, _, err := ParseSize(input, standard.SI, false)
		require.NotNil(t, err, "%q", input)
		assert.True(t, err.Is(errors.TypeMalformedLiteral), "%q", input)
	}
}

func TestParseSizeUnknownUnit(t *testing.T) {
	_, _, err := ParseSize("1.5 KiB", standard.SI, false)
	require.NotNil(t, err)
	assert.True(t, err.Is(errors.TypeUnknownUnit))

	_, _, err = ParseSize("1 MB", standard.IEC, false)
	require.NotNil(t, err)
	assert.True(t, err.Is(errors.TypeUnknownUnit))
}

func TestStrictBits(t *testing.T) {
	// a fractional bit quantity is rejected only under strict mode
	_, _, err := ParseSize("1.5 Mb", standard.SI, true)
	require.NotNil(t, err)
	assert.True(t, err.Is(errors.TypeFractionalBits))

	v, _, err := ParseSize("2 Mb", standard.SI, true)
	require.Nil(t, err)
	assert.Equal(t, 250000.0, v.Magnitude)

	_, _, err = ParseSize("1.5 Mb", standard.SI, false)
	require.Nil(t, err)

	// strict mode leaves byte units alone
	_, _, err = ParseSize("1.5 MB", standard.SI, true)
	require.Nil(t, err)
}

func TestCompatMBMultiplier(t *testing.T) {
	v, _, err := ParseSizeWith("512 MB", standard.SI, SizeOptions{CompatMB: true})
	require.Nil(t, err)
	assert.Equal(t, 512*(1e9/1024), v.Magnitude)

	// gate is SI-only
	v, _, err = ParseSizeWith("1 MB", standard.JEDEC, SizeOptions{CompatMB: true})
	require.Nil(t, err)
	assert.Equal(t, float64(1024*1024), v.Magnitude)
}

func TestParseSizeBitMetadata(t *testing.T) {
	v, meta, err := ParseSize("16 Kib", standard.IEC, false)
	require.Nil(t, err)
	assert.True(t, meta.Bit)
	assert.Equal(t, "Kib", meta.Symbol)
	assert.Equal(t, 16*128.0, v.Magnitude)
	assert.Equal(t, "16", meta.Normalized)
	assert.Equal(t, 16.0, meta.Raw)
}
