package quantity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bytesize/internal/errors"
)

func TestDimensionSignatures(t *testing.T) {
	assert.True(t, Size(1).IsSize())
	assert.True(t, Duration(1).IsDuration())
	assert.True(t, Rate(1).IsRate())
	assert.True(t, Scalar(1).IsScalar())
	assert.False(t, Size(1).IsRate())
}

func TestAddSubSameDimension(t *testing.T) {
	sum, err := Size(1000).Add(Size(24))
	require.Nil(t, err)
	assert.Equal(t, 1024.0, sum.Magnitude)
	assert.True(t, sum.IsSize())

	diff, err := Rate(100).Sub(Rate(40))
	require.Nil(t, err)
	assert.Equal(t, 60.0, diff.Magnitude)
	assert.True(t, diff.IsRate())
}

func TestAddAcrossDimensionsFails(t *testing.T) {
	_, err := Size(1).Add(Duration(1))
	require.NotNil(t, err)
	assert.True(t, err.Is(errors.TypeIncompatibleUnits))

	_, err = Size(1).Sub(Rate(1))
	require.NotNil(t, err)
	assert.True(t, err.Is(errors.TypeIncompatibleUnits))
}

func TestMulDivCombinePowers(t *testing.T) {
	// size / duration = rate
	rate, err := Size(1000).Div(Duration(5))
	require.Nil(t, err)
	assert.True(t, rate.IsRate())
	assert.Equal(t, 200.0, rate.Magnitude)

	// rate * duration = size
	size, err := Rate(200).Mul(Duration(5))
	require.Nil(t, err)
	assert.True(t, size.IsSize())
	assert.Equal(t, 1000.0, size.Magnitude)

	// scalar scaling keeps the dimension
	double, err := Size(512).Mul(Scalar(2))
	require.Nil(t, err)
	assert.True(t, double.IsSize())
	assert.Equal(t, 1024.0, double.Magnitude)
}

func TestDivisionByZero(t *testing.T) {
	_, err := Size(1).Div(Scalar(0))
	require.NotNil(t, err)
	assert.True(t, err.Is(errors.TypeDivisionByZero))
}

func TestNonFiniteFailsFast(t *testing.T) {
	_, err := Size(math.MaxFloat64).Mul(Scalar(2))
	require.NotNil(t, err)
	assert.True(t, err.Is(errors.TypeNonFiniteResult))

	_, err = Size(math.MaxFloat64).Add(Size(math.MaxFloat64))
	require.NotNil(t, err)
	assert.True(t, err.Is(errors.TypeNonFiniteResult))
}

func TestNegKeepsPowers(t *testing.T) {
	v := Size(5).Neg()
	assert.Equal(t, -5.0, v.Magnitude)
	assert.True(t, v.IsSize())
}
