package format

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bytesize/core/parse"
	"bytesize/core/standard"
)

func TestHumanize(t *testing.T) {
	tests := []struct {
		name  string
		bytes float64
		std   standard.Standard
		opts  Options
		want  string
	}{
		{"iec kibibytes", 1536, standard.IEC, Options{}, "1.5 KiB"},
		{"si gigabytes", 1.5e9, standard.SI, Options{}, "1.5 GB"},
		{"jedec megabytes", 1 << 20, standard.JEDEC, Options{}, "1 MB"},
		{"bytes stay bytes", 512, standard.SI, Options{}, "512 B"},
		{"forced unit", 1.5e9, standard.SI, Options{ForceUnit: "MB"}, "1500 MB"},
		{"precision", 1536, standard.SI, Options{Precision: 1}, "1.5 KB"},
		{"negative", -1536, standard.IEC, Options{}, "-1.5 KiB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Humanize(tt.bytes, tt.std, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHumanizeRate(t *testing.T) {
	got, err := HumanizeRate(1e8, standard.SI, Options{})
	require.NoError(t, err)
	assert.Equal(t, "100 MB/s", got)
}

func TestHumanizeRejectsNonFinite(t *testing.T) {
	_, err := Humanize(math.Inf(1), standard.SI, Options{})
	assert.Error(t, err)
}

func TestCommaDecimalFormatter(t *testing.T) {
	got, err := Humanize(1234567, standard.SI, Options{
		Formatter: CommaDecimal{},
		ForceUnit: "B",
	})
	require.NoError(t, err)
	assert.Equal(t, "1 234 567 B", got)

	got, err = Humanize(1.5e9, standard.SI, Options{Formatter: CommaDecimal{}})
	require.NoError(t, err)
	assert.Equal(t, "1,5 GB", got)
}

func TestHumanizeBig(t *testing.T) {
	n := new(big.Int).Lsh(big.NewInt(3), 40) // 3 TiB
	got, err := HumanizeBig(n, standard.IEC, Options{})
	require.NoError(t, err)
	assert.Equal(t, "3 TiB", got)
}

func TestHumanizeParseRoundTrip(t *testing.T) {
	for _, input := range []string{"1.5 KiB", "2 MiB", "512 B"} {
		t.Run(input, func(t *testing.T) {
			v, err := parse.ParseSize(input, standard.IEC, false)
			require.NoError(t, err)
			got, herr := Humanize(v.Magnitude, standard.IEC, Options{})
			require.NoError(t, herr)
			assert.Equal(t, input, got)
		})
	}
}
