package loads

import (
	"math"
	"testing"

	"Ampere/internal/calc/cable"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManual(t *testing.T) {
	res, err := Calculate(Input{Method: MethodManual, Phases: 3, VoltageV: 400, CosPhi: 0.9, CurrentA: 32})
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(3)*400*32*0.9, res.PowerW, 1e-9)
	assert.InDelta(t, 32, res.CurrentA, 1e-9)

	res, err = Calculate(Input{Method: MethodManual, Phases: 1, PowerW: 2300})
	require.NoError(t, err)
	assert.InDelta(t, 10, res.CurrentA, 1e-9)
}

func TestArea(t *testing.T) {
	cases := []struct {
		occ  Occupancy
		want float64
	}{
		{Residential, 3000},
		{Supermarket, 11000},
		{Retail, 7000},
		{Office, 4000},
		{Warehouse, 1000},
	}
	for _, tc := range cases {
		t.Run(string(tc.occ), func(t *testing.T) {
			res, err := Calculate(Input{Method: MethodArea, AreaM2: 100, Occupancy: tc.occ})
			require.NoError(t, err)
			assert.InDelta(t, tc.want, res.BasePowerW, 1e-9)
		})
	}

	_, err := Calculate(Input{Method: MethodArea, AreaM2: 100, Occupancy: "stadium"})
	assert.ErrorIs(t, err, cable.ErrInvalidInput)
}

func TestVelander(t *testing.T) {
	assert.InDelta(t, 0.24*4+2.31*2, Velander(4), 1e-12)
	assert.Zero(t, Velander(0))

	res, err := Calculate(Input{Method: MethodVelander, AverageKW: 4, MarginPct: 10})
	require.NoError(t, err)
	assert.InDelta(t, (0.24*4+2.31*2)*1000, res.BasePowerW, 1e-9)
	assert.InDelta(t, res.BasePowerW*1.1, res.PowerW, 1e-9)
	assert.InDelta(t, res.PowerW/(math.Sqrt(3)*400), res.CurrentA, 1e-9)
}

func TestMarginAppliesToEveryMethod(t *testing.T) {
	for _, in := range []Input{
		{Method: MethodManual, CurrentA: 10, MarginPct: 20},
		{Method: MethodArea, AreaM2: 50, Occupancy: Office, MarginPct: 20},
		{Method: MethodVelander, AverageKW: 3, MarginPct: 20},
	} {
		res, err := Calculate(in)
		require.NoError(t, err)
		assert.InDelta(t, res.BasePowerW*1.2, res.PowerW, 1e-9, in.Method)
	}
}

func TestInvalid(t *testing.T) {
	for _, in := range []Input{
		{Method: MethodManual},
		{Method: MethodManual, CurrentA: math.NaN()},
		{Method: MethodManual, CurrentA: 10, Phases: 2},
		{Method: MethodManual, CurrentA: 10, CosPhi: 1.2},
		{Method: MethodVelander},
		{Method: "guess", CurrentA: 10},
	} {
		_, err := Calculate(in)
		assert.ErrorIs(t, err, cable.ErrInvalidInput)
	}
}

func TestAggregate(t *testing.T) {
	units := []Input{
		{Method: MethodManual, Phases: 1, CurrentA: 10, AverageKW: 4},
		{Method: MethodManual, Phases: 1, CurrentA: 20, AverageKW: 5},
	}

	res, err := Aggregate(FeederInput{Units: units, Mode: AggregateSum})
	require.NoError(t, err)
	assert.InDelta(t, 30, res.CurrentA, 1e-9)
	assert.InDelta(t, 6900, res.PowerW, 1e-9)

	res, err = Aggregate(FeederInput{Units: units, Mode: AggregateDiversity})
	require.NoError(t, err)
	assert.InDelta(t, 0.7*6900, res.PowerW, 1e-9)
	assert.InDelta(t, 0.7*6900/(math.Sqrt(3)*400), res.CurrentA, 1e-9)

	res, err = Aggregate(FeederInput{Units: units, Mode: AggregateVelander})
	require.NoError(t, err)
	assert.InDelta(t, Velander(9)*1000, res.PowerW, 1e-9)

	res, err = Aggregate(FeederInput{Mode: AggregateManual, ManualCurrentA: 50})
	require.NoError(t, err)
	assert.Equal(t, 50.0, res.CurrentA)

	_, err = Aggregate(FeederInput{Units: []Input{{Method: MethodManual, CurrentA: 5}}, Mode: AggregateVelander})
	assert.ErrorIs(t, err, cable.ErrInvalidInput)
	_, err = Aggregate(FeederInput{Mode: AggregateSum})
	assert.ErrorIs(t, err, cable.ErrInvalidInput)
}

func TestAggregateMarginEveryMode(t *testing.T) {
	units := []Input{
		{Method: MethodManual, Phases: 3, PowerW: 10000, AverageKW: 10},
		{Method: MethodManual, Phases: 3, PowerW: 10000, AverageKW: 10},
	}
	for _, mode := range []Aggregation{AggregateSum, AggregateDiversity, AggregateVelander, AggregateManual} {
		t.Run(string(mode), func(t *testing.T) {
			in := FeederInput{Units: units, Mode: mode, ManualCurrentA: 40}
			base, err := Aggregate(in)
			require.NoError(t, err)
			in.MarginPct = 20
			withMargin, err := Aggregate(in)
			require.NoError(t, err)
			assert.InDelta(t, 1.2*base.PowerW, withMargin.PowerW, 1e-6)
			assert.InDelta(t, 1.2*base.CurrentA, withMargin.CurrentA, 1e-9)
		})
	}
}
