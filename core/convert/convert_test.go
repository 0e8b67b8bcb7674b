package convert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bytesize/internal/errors"
)

func TestNewByteCount(t *testing.T) {
	c, err := NewByteCount(1536)
	require.Nil(t, err)
	assert.Equal(t, 1536.0, c.Bytes())

	_, err = NewByteCount(-1)
	require.NotNil(t, err)
	assert.True(t, err.Is(errors.TypeNegativeSize))

	_, err = NewByteCount(math.NaN())
	require.NotNil(t, err)
	assert.True(t, err.Is(errors.TypeNonFiniteResult))
}

func TestByteCountAccessors(t *testing.T) {
	c, err := NewByteCount(1.5e9)
	require.Nil(t, err)
	assert.Equal(t, 1.5e6, c.KB())
	assert.Equal(t, 1500.0, c.MB())
	assert.Equal(t, 1.5, c.GB())
	assert.Equal(t, 1.5e-3, c.TB())
	assert.InDelta(t, 1.3969838619232178, c.GiB(), 1e-12)
}

func TestByteCountInt64(t *testing.T) {
	c, _ := NewByteCount(4096)
	n, ok := c.Int64()
	require.True(t, ok)
	assert.Equal(t, int64(4096), n)

	c, _ = NewByteCount(0.5)
	_, ok = c.Int64()
	assert.False(t, ok)

	c, _ = NewByteCount(math.Ldexp(1, 54))
	_, ok = c.Int64()
	assert.False(t, ok)
}

func TestBitRate(t *testing.T) {
	r, err := NewBitRate(6.25e6)
	require.Nil(t, err)
	assert.Equal(t, 6.25e6, r.BytesPerSecond())
	assert.Equal(t, 5e7, r.BitsPerSecond())

	_, err = NewBitRate(-1)
	assert.NotNil(t, err)
}
