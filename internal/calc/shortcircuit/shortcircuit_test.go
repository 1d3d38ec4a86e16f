package shortcircuit

import (
	"math"
	"math/cmplx"
	"testing"

	"Ampere/internal/calc/cable"
	"Ampere/internal/calc/impedance"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var src = Source{VoltageV: 400, IminSupplyA: 1000, IkTrafoA: 16000, CosTrafo: 0.3}

func TestMinAtEnd(t *testing.T) {
	run := impedance.Z{R: 0.1, X: 0.01}
	ik, err := MinAtEnd(src, run)
	require.NoError(t, err)

	want := complex(400, 0) / (complex(0.4, 0) + 2*complex(0.15, 0.01))
	assert.Equal(t, Minimum, ik.Kind)
	assert.InDelta(t, cmplx.Abs(want), ik.Magnitude, 1e-9)
	assert.InDelta(t, cmplx.Phase(want)*180/math.Pi, ik.AngleDeg, 1e-9)
	assert.Less(t, ik.AngleDeg, 0.0)
}

func TestMinFallsWithLength(t *testing.T) {
	per := impedance.Lookup(cable.Copper, 10, cable.ThreePhase)
	prev := math.Inf(1)
	for _, l := range []float64{0, 10, 50, 200} {
		ik, err := MinAtEnd(src, per.Of(l))
		require.NoError(t, err)
		assert.Less(t, ik.Magnitude, prev)
		prev = ik.Magnitude
	}
}

func TestMaxAtEnd(t *testing.T) {
	ik, err := MaxAtEnd(src, impedance.Z{})
	require.NoError(t, err)
	assert.InDelta(t, 16000, ik.Magnitude, 1e-6)
	assert.InDelta(t, -math.Acos(0.3)*180/math.Pi, ik.AngleDeg, 1e-9)

	run := impedance.Z{R: 0.05, X: 0.005}
	hot, err := MinAtEnd(src, run)
	require.NoError(t, err)
	cold, err := MaxAtEnd(src, run)
	require.NoError(t, err)
	assert.Greater(t, cold.Magnitude, hot.Magnitude)

	_, err = MaxAtEnd(Source{VoltageV: 400, IminSupplyA: 100}, run)
	assert.ErrorIs(t, err, ErrNoSource)
}

func TestExplicitTrafo(t *testing.T) {
	z, err := TransformerImpedance(400, 400, 4, 4.6)
	require.NoError(t, err)
	assert.InDelta(t, 0.016, z.Abs(), 1e-9)
	assert.InDelta(t, 4600*400.0*400/(400000.0*400000), z.R, 1e-12)

	s := Source{VoltageV: 400, IminSupplyA: 500, Trafo: &z}
	ik, err := MaxAtEnd(s, impedance.Z{})
	require.NoError(t, err)
	assert.InDelta(t, 25000, ik.Magnitude, 1e-6)

	_, err = TransformerImpedance(400, 400, 1, 50)
	assert.ErrorIs(t, err, cable.ErrInvalidInput)
}

func TestNetworkImpedance(t *testing.T) {
	z, err := NetworkImpedance(400, 250, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, 400.0*400/250e6, z.Abs(), 1e-12)
	assert.InDelta(t, 0.1, z.R/z.X, 1e-12)
}

func TestDownstreamComposes(t *testing.T) {
	feeder := impedance.Z{R: 0.02, X: 0.004}
	branch := impedance.Z{R: 0.3, X: 0.01}

	board := src.Downstream(feeder)
	assert.Equal(t, feeder.Hot(), board.UpstreamMin)
	assert.Equal(t, feeder, board.UpstreamMax)

	chained, err := MinAtEnd(board, branch)
	require.NoError(t, err)

	whole, err := MinAtEnd(src, impedance.Z{R: feeder.R + branch.R, X: feeder.X + branch.X})
	require.NoError(t, err)
	assert.InDelta(t, whole.Magnitude, chained.Magnitude, 1e-9)
}

func TestFromUpstreamCurrent(t *testing.T) {
	s := FromUpstreamCurrent(400, Current{Magnitude: 800}, Current{Magnitude: 9000, AngleDeg: -60})
	assert.Equal(t, 800.0, s.IminSupplyA)
	assert.InDelta(t, 0.5, s.CosTrafo, 1e-12)
	ik, err := MinAtEnd(s, impedance.Z{})
	require.NoError(t, err)
	assert.InDelta(t, 800, ik.Magnitude, 1e-9)
}

func TestAtVoltageKeepsImpedance(t *testing.T) {
	s := src.AtVoltage(230)
	zs, err := s.SupplyMin()
	require.NoError(t, err)
	z0, err := src.SupplyMin()
	require.NoError(t, err)
	assert.InDelta(t, real(z0), real(zs), 1e-12)
	assert.Equal(t, src, src.AtVoltage(0))
}

func TestParallel(t *testing.T) {
	z := impedance.Z{R: 0.3, X: 0.06}
	normal, lost := ParallelRun(z, 3)
	assert.InDelta(t, 0.1, normal.R, 1e-12)
	assert.InDelta(t, 0.15, lost.R, 1e-12)

	i1, i2, imb := SplitCurrent(100, z, z)
	assert.InDelta(t, 50, i1, 1e-9)
	assert.InDelta(t, 50, i2, 1e-9)
	assert.Zero(t, imb)

	i1, i2, imb = SplitCurrent(100, z, z.Scale(2))
	assert.InDelta(t, 66.6667, i1, 1e-3)
	assert.InDelta(t, 33.3333, i2, 1e-3)
	assert.InDelta(t, 33.3333, imb, 1e-3)
}

func TestCalculate(t *testing.T) {
	res, err := Calculate(Input{
		Source: src, Material: "Cu", Phases: 3, Parallel: 2,
		Segments: []Segment{{LengthM: 40, SizeMM2: 95}},
	})
	require.NoError(t, err)
	require.NotNil(t, res.IkMax)
	require.NotNil(t, res.IkMinFault)
	assert.Less(t, res.IkMinFault.Magnitude, res.IkMin.Magnitude)
	assert.InDelta(t, 0.194*0.04/2, res.Cable.R, 1e-12)

	_, err = Calculate(Input{Source: Source{VoltageV: math.NaN()}, Material: "Cu", Segments: []Segment{{10, 10}}})
	assert.ErrorIs(t, err, cable.ErrInvalidInput)
}
