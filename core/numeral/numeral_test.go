package numeral

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain integer", "1234", "1234"},
		{"plain decimal", "1234.56", "1234.56"},
		{"us grouping", "1,234.56", "1234.56"},
		{"european grouping", "1.234,56", "1234.56"},
		{"nbsp grouping with comma decimal", "1 234,56", "1234.56"},
		{"narrow nbsp grouping", "1 234,56", "1234.56"},
		{"underscore grouping", "12_345.67", "12345.67"},
		{"space grouping", "1 234 567", "1234567"},
		{"leading sign kept", "-1.234,5", "-1234.5"},
		{"plus sign kept", "+42", "+42"},
		{"trailing separator degrades to integer", "1234.", "1234"},
		{"leading separator degrades to zero int part", ",5", "0.5"},
		{"lone separator", ".", "0"},
		{"empty", "", "0"},
		{"last separator wins", "1,234", "1.234"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"1234", "1,234.56", "1.234,56", "1 234,56", "12_345.67",
		"-1.5", "+0,25", "", ".", "1 000 000",
	}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize(normalize(%q))", in)
	}
}

func TestIsIntegral(t *testing.T) {
	assert.True(t, IsIntegral("2"))
	assert.True(t, IsIntegral("2.0"))
	assert.True(t, IsIntegral("2.000"))
	assert.False(t, IsIntegral("1.5"))
	assert.False(t, IsIntegral("0.001"))
}
