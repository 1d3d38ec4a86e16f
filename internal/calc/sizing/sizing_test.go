package sizing

import (
	"encoding/json"
	"math"
	"testing"

	"Ampere/internal/calc/ampacity"
	"Ampere/internal/calc/cable"
	"Ampere/internal/calc/fuse"
	"Ampere/internal/calc/shortcircuit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var grid = shortcircuit.Source{VoltageV: 400, IminSupplyA: 1000, IkTrafoA: 16000, CosTrafo: 0.3}

func freeAir() Circuit {
	return Circuit{
		Name:       "Feeder",
		Material:   "Cu",
		Phases:     3,
		VoltageV:   400,
		CurrentA:   35,
		CosPhi:     1,
		MaxDropPct: 3,
		Segments:   []Segment{{Method: "C", LengthM: 50}},
		Device:     fuse.Device{Family: "mcb-c", RatingA: 40},
		Source:     grid,
	}
}

func TestSelectsSmallestSurvivingSize(t *testing.T) {
	o, err := Evaluate(freeAir())
	require.NoError(t, err)
	assert.Equal(t, FirstPass, o.Selection)
	assert.Equal(t, 6.0, o.SizeMM2)
	assert.True(t, o.Compliant)
	assert.Empty(t, o.Violations)
	body, err := json.Marshal(o)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"selection":"first-pass"`)

	// Every smaller size fails ampacity or voltage drop.
	c, err := freeAir().prepare()
	require.NoError(t, err)
	for _, s := range c.ladder() {
		if s >= o.SizeMM2 {
			break
		}
		cand, err := c.try(c.uniform(s))
		require.NoError(t, err)
		assert.True(t, cand.failed(CheckAmpacity) || cand.failed(CheckVoltageDrop), "size %g", s)
	}
}

func TestChosenSizeHoldsInvariants(t *testing.T) {
	in := freeAir()
	in.Segments = []Segment{
		{Method: "C", LengthM: 20, AmbientC: 40, Grouped: 3},
		{Method: "72", LengthM: 30, Grouped: 2, SpacingM: 0.25},
	}
	o, err := Evaluate(in)
	require.NoError(t, err)
	require.True(t, o.Found())

	var volts, pct float64
	for _, s := range o.Segments {
		assert.Equal(t, o.SizeMM2, s.SizeMM2)
		assert.GreaterOrEqual(t, s.IzA*s.Kt*s.Kj*s.Kgrp, s.RequiredA)
		assert.InDelta(t, 100*s.Drop.Volts/400, s.Drop.Percent, 1e-9)
		volts += s.Drop.Volts
		pct += s.Drop.Percent
	}
	assert.InDelta(t, volts, o.Drop.Volts, 1e-9)
	assert.InDelta(t, pct, o.Drop.Percent, 1e-9)
	assert.InDelta(t, 100*o.Drop.Volts/400, o.Drop.Percent, 1e-9)
	assert.Equal(t, 1.5, o.Segments[1].Kj)
}

func TestNoTableEntry(t *testing.T) {
	in := freeAir()
	in.Segments = []Segment{{Method: "E", LengthM: 50}}
	o, err := Evaluate(in)
	require.NoError(t, err)
	assert.Equal(t, NoneFound, o.Selection)
	assert.False(t, o.Found())
	assert.Zero(t, o.SizeMM2)
	assert.False(t, o.Compliant)
	assert.False(t, o.TripTimeS.Finite())
	require.NotEmpty(t, o.Violations)
	assert.Equal(t, CheckNoData, o.Violations[0].Check)

	_, err = o.Downstream()
	assert.ErrorIs(t, err, ErrUpstreamUnresolved)
}

func TestFallbackOnDisconnection(t *testing.T) {
	in := freeAir()
	in.CurrentA = 40
	in.MaxDropPct = 5
	in.Segments = []Segment{{Method: "C", LengthM: 20}}
	in.Device = fuse.Device{Family: "diazed", RatingA: 63}
	in.Source = shortcircuit.Source{VoltageV: 400, IminSupplyA: 150}

	o, err := Evaluate(in)
	require.NoError(t, err)
	assert.Equal(t, Fallback, o.Selection)
	assert.True(t, o.Found())
	assert.False(t, o.Compliant)
	assert.True(t, o.Flags.Ampacity)
	assert.True(t, o.Flags.VoltageDrop)
	assert.False(t, o.Flags.Disconnection)
	assert.True(t, hasCheck(o.Violations, CheckDisconnection))
	assert.Equal(t, DefaultMaxTripTime, o.MaxTripTimeS)
	assert.Nil(t, o.IkMax)
}

func TestFallbackFewestViolations(t *testing.T) {
	in := freeAir()
	in.CurrentA = 2000
	in.MaxDropPct = 5
	in.Segments = []Segment{{Method: "C", LengthM: 10}}
	in.Device = fuse.Device{Family: "mcb-d", RatingA: 63}

	o, err := Evaluate(in)
	require.NoError(t, err)
	assert.Equal(t, Fallback, o.Selection)
	assert.Equal(t, 400.0, o.SizeMM2)
	assert.False(t, o.Flags.Ampacity)
	assert.False(t, o.Compliant)
	assert.True(t, hasCheck(o.Violations, CheckAmpacity))
}

func TestManualKeepsSizes(t *testing.T) {
	in := freeAir()
	in.Manual = true
	in.Segments = []Segment{{Method: "C", LengthM: 50, SizeMM2: 2.5}}

	o, err := Evaluate(in)
	require.NoError(t, err)
	assert.Equal(t, Manual, o.Selection)
	assert.Equal(t, 2.5, o.SizeMM2)
	assert.False(t, o.Flags.Ampacity)
	assert.False(t, o.Compliant)

	in.Segments[0].SizeMM2 = 0
	_, err = Evaluate(in)
	assert.ErrorIs(t, err, cable.ErrInvalidInput)
}

func TestParallelConductors(t *testing.T) {
	in := freeAir()
	in.Tier = Distribution
	in.CurrentA = 400
	in.Parallel = 2
	in.MaxDropPct = 5
	in.Segments = []Segment{{Method: "C", LengthM: 200}}
	in.Device = fuse.Device{Family: "nh1", RatingA: 250}
	in.Source = shortcircuit.Source{VoltageV: 400, IminSupplyA: 10000, IkTrafoA: 20000, CosTrafo: 0.3}

	o, err := Evaluate(in)
	require.NoError(t, err)
	require.True(t, o.Found())
	assert.Equal(t, 2, o.Parallel)
	assert.Equal(t, 200.0, o.Segments[0].RequiredA)
	require.NotNil(t, o.IkMinOneLost)
	assert.Less(t, o.IkMinOneLost.Magnitude, o.IkMin.Magnitude)
}

func TestStepsAreLabeled(t *testing.T) {
	in := freeAir()
	in.EarthFault = &EarthFault{System: "TN", SourceZsOhm: 0.2}
	o, err := Evaluate(in)
	require.NoError(t, err)

	var cats []Category
	for _, s := range o.Steps {
		cats = append(cats, s.Category)
		assert.NotEmpty(t, s.Lines)
		assert.NotEmpty(t, s.Result)
	}
	assert.Equal(t, []Category{CategoryOverload, CategoryShortCircuit, CategoryVoltageDrop, CategoryEarthFault}, cats)
}

func TestEarthFaultOnChosenSize(t *testing.T) {
	in := Circuit{
		Tier:       Group,
		Material:   "Cu",
		Phases:     1,
		CurrentA:   16,
		Segments:   []Segment{{Method: "C", LengthM: 20}},
		Device:     fuse.Device{Family: "mcb-b", RatingA: 16},
		Source:     shortcircuit.Source{VoltageV: 230, IminSupplyA: 600},
		EarthFault: &EarthFault{System: "TN", SourceZsOhm: 0.3},
	}
	o, err := Evaluate(in)
	require.NoError(t, err)
	require.NotNil(t, o.EarthFault)
	assert.Equal(t, 5.0, o.MaxDropPct)
	assert.Equal(t, 0.4, o.EarthFault.RequiredTimeS)
	assert.Equal(t, o.EarthFault.Compliant, o.Flags.EarthFault)
	assert.Equal(t, o.SizeMM2, o.EarthFault.Segments[0].PhaseMM2)
}

func TestDeterministic(t *testing.T) {
	in := freeAir()
	in.Parallel = 2
	a, err := Evaluate(in)
	require.NoError(t, err)
	b, err := Evaluate(in)
	require.NoError(t, err)
	ja, err := json.Marshal(a)
	require.NoError(t, err)
	jb, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, ja, jb)
}

func TestInvalidInput(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*Circuit)
		want   error
	}{
		{"nan current", func(c *Circuit) { c.CurrentA = math.NaN() }, cable.ErrInvalidInput},
		{"inf length", func(c *Circuit) { c.Segments[0].LengthM = math.Inf(1) }, cable.ErrInvalidInput},
		{"no segments", func(c *Circuit) { c.Segments = nil }, cable.ErrInvalidInput},
		{"phases", func(c *Circuit) { c.Phases = 2 }, cable.ErrInvalidInput},
		{"method", func(c *Circuit) { c.Segments[0].Method = "99" }, ampacity.ErrUnknownMethod},
		{"rating", func(c *Circuit) { c.Device.RatingA = 41 }, fuse.ErrRatingUnavailable},
		{"source", func(c *Circuit) { c.Source = shortcircuit.Source{} }, shortcircuit.ErrNoSource},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := freeAir()
			tc.modify(&in)
			_, err := Evaluate(in)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func serviceTier() Circuit {
	return Circuit{
		Name:     "Service",
		Tier:     Service,
		Material: "Cu",
		Phases:   3,
		CurrentA: 63,
		Segments: []Segment{{Method: "C", LengthM: 30}},
		Device:   fuse.Device{Family: "neozed", RatingA: 63},
		Source:   grid,
	}
}

func groupTier() Circuit {
	return Circuit{
		Name:     "Group 1",
		Tier:     Group,
		Material: "Cu",
		Phases:   1,
		CurrentA: 16,
		Segments: []Segment{{Method: "C", LengthM: 20}},
		Device:   fuse.Device{Family: "mcb-b", RatingA: 16},
	}
}

func TestChainComposesSources(t *testing.T) {
	res := EvaluateChain([]Circuit{serviceTier(), groupTier()})
	require.Len(t, res, 2)
	require.NoError(t, res[0].Err())
	require.NoError(t, res[1].Err())

	up, down := res[0].Outcome, res[1].Outcome
	assert.Less(t, down.IkMin.Magnitude, up.IkMin.Magnitude)

	// The group tier sees the service cable as hot upstream impedance.
	next, err := up.Downstream()
	require.NoError(t, err)
	assert.InDelta(t, up.CableZ.R*1.5, next.UpstreamMin.R, 1e-12)
	assert.Equal(t, up.CableZ, next.UpstreamMax)
}

func TestChainBlocksOnlyBelow(t *testing.T) {
	bad := serviceTier()
	bad.Segments = []Segment{{Method: "E", LengthM: 30}}
	res := EvaluateChain([]Circuit{bad, groupTier(), groupTier()})
	require.Len(t, res, 3)
	require.NotNil(t, res[0].Outcome)
	assert.Equal(t, NoneFound, res[0].Outcome.Selection)
	for _, r := range res[1:] {
		assert.Nil(t, r.Outcome)
		assert.NotEmpty(t, r.Error)
		assert.True(t, r.Blocked())
	}

	broken := groupTier()
	broken.CurrentA = math.NaN()
	res = EvaluateChain([]Circuit{serviceTier(), broken, groupTier()})
	require.NotNil(t, res[0].Outcome)
	assert.ErrorIs(t, res[1].Err(), cable.ErrInvalidInput)
	assert.False(t, res[1].Blocked())
	assert.True(t, res[2].Blocked())
}
