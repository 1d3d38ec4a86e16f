package impedance

import (
	"math"
	"testing"

	"Ampere/internal/calc/cable"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	p := Lookup(cable.Copper, 10, cable.ThreePhase)
	assert.Equal(t, PerKm{R: 1.83, X: 0.082, Tabulated: true}, p)

	p = Lookup(cable.Copper, 10, cable.SinglePhase)
	assert.Equal(t, 0.089, p.X)

	t.Run("aluminium three-phase borrows 4-core reactance", func(t *testing.T) {
		p := Lookup(cable.Aluminium, 95, cable.ThreePhase)
		assert.Equal(t, PerKm{R: 0.321, X: 0.082, Tabulated: true}, p)
	})
	t.Run("fallback by resistivity", func(t *testing.T) {
		p := Lookup(cable.Aluminium, 10, cable.ThreePhase)
		assert.InDelta(t, 2.83, p.R, 1e-9)
		assert.Equal(t, 0.08, p.X)
		assert.False(t, p.Tabulated)
	})
	t.Run("resistance falls with size", func(t *testing.T) {
		prev := math.Inf(1)
		for _, s := range cable.StandardSizes {
			r := Lookup(cable.Copper, s, cable.ThreePhase).R
			assert.Less(t, r, prev, "size %v", s)
			prev = r
		}
	})
}

func TestAtTemperature(t *testing.T) {
	assert.InDelta(t, 1.0*(1+0.00393*50), AtTemperature(1, cable.Copper, 70), 1e-12)
	assert.Equal(t, 2.0, AtTemperature(2, cable.Aluminium, 20))
}

func TestZ(t *testing.T) {
	z := Z{R: 1, X: 0.5}.Add(Z{R: 2, X: 0.5})
	assert.Equal(t, Z{R: 3, X: 1}, z)
	assert.Equal(t, Z{R: 4.5, X: 1}, z.Hot())
	assert.Equal(t, Z{R: 1.5, X: 0.5}, z.Scale(0.5))
	assert.Equal(t, complex(3.0, 1.0), z.Complex())
}

func TestVoltageDrop(t *testing.T) {
	per := PerKm{R: 1.83, X: 0.082}
	t.Run("three-phase unity power factor", func(t *testing.T) {
		d := VoltageDrop(per, 50, Load{CurrentA: 35, CosPhi: 1, Phases: cable.ThreePhase, VoltageV: 400})
		want := 0.05 * 35 * 1.83 * math.Sqrt(3)
		assert.InDelta(t, want, d.Volts, 1e-9)
		assert.InDelta(t, 100*d.Volts/400, d.Percent, 1e-12)
	})
	t.Run("single-phase uses factor two", func(t *testing.T) {
		d := VoltageDrop(per, 20, Load{CurrentA: 10, CosPhi: 0.8, Phases: cable.SinglePhase, VoltageV: 230})
		want := 0.02 * 10 * (1.83*0.8 + 0.082*0.6) * 2
		assert.InDelta(t, want, d.Volts, 1e-9)
	})
	t.Run("resistivity formula", func(t *testing.T) {
		d := VoltageDropResistivity(cable.Copper, 10, 50, Load{CurrentA: 35, CosPhi: 1, Phases: cable.ThreePhase, VoltageV: 400})
		assert.InDelta(t, 0.0225*50/10*35, d.Volts, 1e-9)
	})
}

func TestCalculate(t *testing.T) {
	res, err := Calculate(Input{
		Material: "Cu", Phases: 3, VoltageV: 400, CurrentA: 20, CosPhi: 0.9,
		Segments: []Segment{{LengthM: 30, SizeMM2: 6}, {LengthM: 20, SizeMM2: 4}},
	})
	require.NoError(t, err)
	require.Len(t, res.Segments, 2)
	assert.InDelta(t, res.Segments[0].Drop.Volts+res.Segments[1].Drop.Volts, res.Drop.Volts, 1e-12)
	assert.InDelta(t, res.Segments[0].Drop.Percent+res.Segments[1].Drop.Percent, res.Drop.Percent, 1e-12)
	assert.InDelta(t, 100*res.Drop.Volts/400, res.Drop.Percent, 1e-9)
	assert.InDelta(t, 3.08*0.03+4.61*0.02, res.Z.R, 1e-12)

	_, err = Calculate(Input{Material: "Cu", VoltageV: 400, CurrentA: math.NaN(), Segments: []Segment{{10, 6}}})
	assert.ErrorIs(t, err, cable.ErrInvalidInput)
}
