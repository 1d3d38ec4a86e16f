package autodesign

import (
	"testing"

	"Ampere/internal/calc/cable"
	"Ampere/internal/calc/fuse"
	"Ampere/internal/calc/loads"
	"Ampere/internal/calc/shortcircuit"
	"Ampere/internal/calc/sizing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func circuit() sizing.Circuit {
	return sizing.Circuit{
		Material: "Cu",
		Phases:   3,
		Segments: []sizing.Segment{{Method: "C", LengthM: 40}},
		Device:   fuse.Device{Family: "neozed"},
		Source:   shortcircuit.Source{VoltageV: 400, IminSupplyA: 1200, IkTrafoA: 12000, CosTrafo: 0.4},
	}
}

func TestDesignFromArea(t *testing.T) {
	res, err := Design(Input{
		Load:    &loads.Input{Method: loads.MethodArea, AreaM2: 200, Occupancy: loads.Office, MarginPct: 25},
		Circuit: circuit(),
	})
	require.NoError(t, err)
	assert.InDelta(t, 10000, res.PowerW, 1e-9)
	assert.InDelta(t, 10000/(1.7320508075688772*400), res.CurrentA, 1e-9)
	assert.Equal(t, "neozed", res.Device.Family)
	assert.Equal(t, 16.0, res.Device.RatingA)
	require.NotNil(t, res.Outcome)
	assert.True(t, res.Outcome.Found())
	assert.InDelta(t, res.CurrentA, res.Outcome.Segments[0].RequiredA, 1e-9)
}

func TestDesignFromFeeder(t *testing.T) {
	c := circuit()
	c.Device = fuse.Device{Family: "nh00", RatingA: 125}
	res, err := Design(Input{
		Feeder: &loads.FeederInput{
			Mode: loads.AggregateVelander,
			Units: []loads.Input{
				{Method: loads.MethodVelander, AverageKW: 4},
				{Method: loads.MethodVelander, AverageKW: 4},
				{Method: loads.MethodVelander, AverageKW: 4},
			},
		},
		Circuit: c,
	})
	require.NoError(t, err)
	assert.InDelta(t, loads.Velander(12)*1000, res.PowerW, 1e-9)
	assert.Equal(t, 125.0, res.Device.RatingA)
}

func TestDesignNeedsLoad(t *testing.T) {
	_, err := Design(Input{Circuit: circuit()})
	assert.ErrorIs(t, err, cable.ErrInvalidInput)

	_, err = Design(Input{Load: &loads.Input{}, Feeder: &loads.FeederInput{}, Circuit: circuit()})
	assert.ErrorIs(t, err, cable.ErrInvalidInput)
}
