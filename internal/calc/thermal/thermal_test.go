package thermal

import (
	"math"
	"testing"

	"Ampere/internal/calc/cable"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify(t *testing.T) {
	c := Verify(143, 10, 300, 0.02)
	assert.Equal(t, 2044900.0, c.CableEnergy)
	assert.InDelta(t, 1800, float64(c.LetThrough), 1e-9)
	assert.True(t, c.OK)
}

func TestVerifyBoundary(t *testing.T) {
	// (k·S)² equal to I²t passes.
	c := Verify(100, 1, 100, 1)
	assert.Equal(t, c.CableEnergy, float64(c.LetThrough))
	assert.True(t, c.OK)

	c = Verify(100, 1, 100, 1.0001)
	assert.False(t, c.OK)
}

func TestVerifyMatchesDefinition(t *testing.T) {
	for _, s := range []float64{1.5, 2.5, 10, 50} {
		for _, ik := range []float64{50, 500, 5000} {
			for _, tt := range []float64{0.01, 0.4, 5} {
				c := Verify(143, s, ik, tt)
				assert.Equal(t, math.Pow(143*s, 2) >= ik*ik*tt, c.OK)
			}
		}
	}
}

func TestVerifyUnboundedTrip(t *testing.T) {
	c := Verify(143, 300, 10, math.Inf(1))
	assert.False(t, c.OK)
	assert.False(t, c.LetThrough.Finite())

	c = Verify(143, 300, 0, math.Inf(1))
	assert.False(t, c.OK)
}

func TestK(t *testing.T) {
	assert.Equal(t, 143.0, K(cable.Copper))
	assert.Equal(t, 94.0, K(cable.Aluminium))
}

func TestMinimumSize(t *testing.T) {
	assert.InDelta(t, math.Sqrt(1000*1000*0.1)/143, MinimumSize(1000, 0.1, 143), 1e-12)
	s, ok := MinimumStandardSize(1000, 0.1, 143)
	assert.True(t, ok)
	assert.Equal(t, 2.5, s)
	_, ok = MinimumStandardSize(1e6, 5, 94)
	assert.False(t, ok)
}

func TestCalculate(t *testing.T) {
	res, err := Calculate(Input{Material: "Al", SizeMM2: 16, IkMinA: 2000, TripTimeS: 0.5})
	require.NoError(t, err)
	assert.Equal(t, 94.0, res.K)
	assert.True(t, res.OK)
	assert.Equal(t, 16.0, res.StandardMM2)

	_, err = Calculate(Input{Material: "Cu", SizeMM2: 10, IkMinA: math.NaN()})
	assert.ErrorIs(t, err, cable.ErrInvalidInput)
}
