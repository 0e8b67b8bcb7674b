package standard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		want Standard
	}{
		{"SI", SI},
		{"si", SI},
		{"decimal", SI},
		{"metric", SI},
		{"IEC", IEC},
		{"binary", IEC},
		{"jedec", JEDEC},
		{" JEDEC ", JEDEC},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Parse("bogus")
	assert.Error(t, err)
}

func TestBase(t *testing.T) {
	assert.Equal(t, int64(1000), SI.Base())
	assert.Equal(t, int64(1024), IEC.Base())
	assert.Equal(t, int64(1024), JEDEC.Base())
}

func TestString(t *testing.T) {
	assert.Equal(t, "SI", SI.String())
	assert.Equal(t, "IEC", IEC.String())
	assert.Equal(t, "JEDEC", JEDEC.String())
}
