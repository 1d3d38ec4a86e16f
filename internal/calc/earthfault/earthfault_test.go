package earthfault

import (
	"testing"

	"Ampere/internal/calc/cable"
	"Ampere/internal/calc/fuse"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func device(t *testing.T, family string, rating float64) fuse.Spec {
	t.Helper()
	d, err := fuse.Lookup("", family, rating)
	require.NoError(t, err)
	return d
}

func tnCircuit(t *testing.T, length float64) Params {
	return Params{
		System:       TN,
		VoltageV:     230,
		SourceZsOhm:  0.3,
		Material:     cable.Copper,
		Construction: cable.MultiCore,
		Segments:     []Segment{{LengthM: length, PhaseMM2: 2.5}},
		Device:       device(t, "mcb-b", 16),
		Class:        Final,
	}
}

func TestTNShortCircuitClears(t *testing.T) {
	res, err := Analyze(tnCircuit(t, 30))
	require.NoError(t, err)

	r1 := 7.41 * (1 + 0.00393*50) * 0.03
	r2 := 7.41 * 0.03
	assert.InDelta(t, r1, res.R1Ohm, 1e-9)
	assert.InDelta(t, r2, res.R2Ohm, 1e-9)
	assert.InDelta(t, 0.3+r1+r2, res.ZsOhm, 1e-9)
	assert.InDelta(t, 230/res.ZsOhm, res.FaultCurrentA, 1e-9)
	assert.Equal(t, 0.4, res.RequiredTimeS)
	assert.True(t, res.DisconnectionOK)
	assert.False(t, res.RCD.Required)
	assert.True(t, res.Compliant)
	assert.Greater(t, res.ZsMaxOhm, res.ZsOhm)
}

func TestTNLongLoopNeedsRCD(t *testing.T) {
	res, err := Analyze(tnCircuit(t, 300))
	require.NoError(t, err)
	assert.False(t, res.DisconnectionOK)
	assert.True(t, res.RCD.Required)
	assert.Equal(t, 300, res.RCD.SensitivityMA)
	assert.True(t, res.Compliant, "compliant once the RCD is fitted")
	assert.Less(t, res.ZsMaxOhm, res.ZsOhm)
}

func TestBathroomEscalates(t *testing.T) {
	p := tnCircuit(t, 300)
	p.Bathroom = true
	res, err := Analyze(p)
	require.NoError(t, err)
	assert.Equal(t, 30, res.RCD.SensitivityMA)
}

func TestTT(t *testing.T) {
	p := tnCircuit(t, 20)
	p.System = TT
	p.RaOhm = 50

	res, err := Analyze(p)
	require.NoError(t, err)
	assert.Equal(t, 30, res.RCD.SensitivityMA)
	assert.InDelta(t, 1.5, res.TouchVoltageV, 1e-9)
	assert.InDelta(t, res.ZsOhm+50, res.EffectiveZsOhm, 1e-12)
	assert.True(t, res.Compliant)
	assert.Empty(t, res.Warnings)

	p.RaOhm = 2000
	res, err = Analyze(p)
	require.NoError(t, err)
	assert.InDelta(t, 60, res.TouchVoltageV, 1e-9)
	assert.False(t, res.Compliant)
	assert.NotEmpty(t, res.Warnings)

	p.RaOhm = 0
	_, err = Analyze(p)
	assert.ErrorIs(t, err, cable.ErrInvalidInput)
}

func TestDistributionClass(t *testing.T) {
	p := tnCircuit(t, 30)
	p.Class = Distribution
	p.Device = device(t, "neozed", 35)
	p.Segments = []Segment{{LengthM: 40, PhaseMM2: 10}}
	p.PEProtected = true
	res, err := Analyze(p)
	require.NoError(t, err)
	assert.Equal(t, 5.0, res.RequiredTimeS)
	assert.True(t, res.RCD.Recommended)
	assert.False(t, res.RCD.Required)
	assert.True(t, res.RCD.Delayed)
	assert.Empty(t, res.Warnings)
}

func TestDistributionPEBelowMainEarth(t *testing.T) {
	p := tnCircuit(t, 30)
	p.Class = Distribution
	p.Device = device(t, "neozed", 35)
	p.Segments = []Segment{{LengthM: 40, PhaseMM2: 10}}
	p.PEProtected = false
	res, err := Analyze(p)
	require.NoError(t, err)
	assert.Equal(t, 16.0, res.MainEarthMinMM2)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "main earthing minimum")

	p.Class = Final
	res, err = Analyze(p)
	require.NoError(t, err)
	for _, w := range res.Warnings {
		assert.NotContains(t, w, "main earthing minimum")
	}
}

func TestMinimumPE(t *testing.T) {
	tests := []struct {
		phase float64
		c     cable.Construction
		want  float64
	}{
		{10, cable.SingleCore, 10},
		{16, cable.SingleCore, 16},
		{25, cable.SingleCore, 16},
		{35, cable.SingleCore, 16},
		{50, cable.SingleCore, 25},
		{95, cable.SingleCore, 50},
		{95, cable.MultiCore, 95},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MinimumPE(tt.phase, cable.Copper, tt.c, TN, Final), "%v %s", tt.phase, tt.c)
	}
	assert.Equal(t, 6.0, MinimumPE(95, cable.Copper, cable.SingleCore, TT, Distribution))
	assert.Equal(t, 10.0, MinimumPE(95, cable.Aluminium, cable.SingleCore, TT, Distribution))
}

func TestMainEarthMinimum(t *testing.T) {
	assert.Equal(t, 6.0, MainEarthMinimum(cable.Copper, true))
	assert.Equal(t, 16.0, MainEarthMinimum(cable.Copper, false))
	assert.Equal(t, 16.0, MainEarthMinimum(cable.Aluminium, true))
	assert.Equal(t, 25.0, MainEarthMinimum(cable.Aluminium, false))
}

func TestUndersizedPEWarns(t *testing.T) {
	p := tnCircuit(t, 30)
	p.Segments = []Segment{{LengthM: 30, PhaseMM2: 2.5, PEMM2: 1.5}}
	res, err := Analyze(p)
	require.NoError(t, err)
	assert.NotEmpty(t, res.Warnings)
	assert.Equal(t, 1.5, res.Segments[0].PEMM2)
}

func TestCalculateDefaults(t *testing.T) {
	res, err := Calculate(Input{
		Material: "Cu",
		Segments: []Segment{{LengthM: 25, PhaseMM2: 1.5}},
		Device:   fuse.Device{Family: "mcb-b", RatingA: 10},
		Socket:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, TN, res.System)
	assert.Equal(t, 30, res.RCD.SensitivityMA)

	_, err = Calculate(Input{Material: "Cu", Segments: []Segment{{LengthM: 25, PhaseMM2: 1.5}}, Device: fuse.Device{Family: "mcb-b", RatingA: 11}})
	assert.ErrorIs(t, err, fuse.ErrRatingUnavailable)
}
