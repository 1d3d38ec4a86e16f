package shortcircuit

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"Ampere/internal/calc/cable"
	"Ampere/internal/calc/impedance"
)

var ErrNoSource = errors.New("source not defined")

type Kind string

const (
	Minimum Kind = "min"
	Maximum Kind = "max"
)

// Current is a prospective fault current.
type Current struct {
	Kind      Kind    `json:"kind"`
	Magnitude float64 `json:"ik_a"`
	AngleDeg  float64 `json:"angle_deg"`
}

func newCurrent(k Kind, i complex128) Current {
	return Current{Kind: k, Magnitude: cmplx.Abs(i), AngleDeg: cmplx.Phase(i) * 180 / math.Pi}
}

// Source is what a circuit sees at its supply terminals. The upstream
// impedances carry the cables already solved between the transformer and
// this point: UpstreamMin hot-weighted, UpstreamMax cold.
type Source struct {
	VoltageV    float64      `json:"voltage_v"`
	IminSupplyA float64      `json:"imin_supply_a"`
	IkTrafoA    float64      `json:"ik_trafo_a"`
	CosTrafo    float64      `json:"cos_trafo"`
	Trafo       *impedance.Z `json:"trafo_z,omitempty"`
	UpstreamMin impedance.Z  `json:"upstream_min"`
	UpstreamMax impedance.Z  `json:"upstream_max"`
}

func (s Source) validate() error {
	if err := cable.Validate(map[string]float64{
		"voltage_v": s.VoltageV, "imin_supply_a": s.IminSupplyA, "ik_trafo_a": s.IkTrafoA, "cos_trafo": s.CosTrafo,
	}); err != nil {
		return err
	}
	if s.VoltageV <= 0 {
		return fmt.Errorf("%w: voltage must be positive", cable.ErrInvalidInput)
	}
	return nil
}

// SupplyMin is the weakest source impedance, Uₙ / Imin.
func (s Source) SupplyMin() (complex128, error) {
	if err := s.validate(); err != nil {
		return 0, err
	}
	if s.IminSupplyA <= 0 {
		return 0, fmt.Errorf("%w: minimum supply current", ErrNoSource)
	}
	return complex(s.VoltageV/s.IminSupplyA, 0), nil
}

// SupplyMax is the strongest source impedance. An explicit transformer
// impedance wins over Ik and cosφ.
func (s Source) SupplyMax() (complex128, error) {
	if err := s.validate(); err != nil {
		return 0, err
	}
	if s.Trafo != nil {
		return s.Trafo.Complex(), nil
	}
	if s.IkTrafoA <= 0 {
		return 0, fmt.Errorf("%w: transformer short-circuit current", ErrNoSource)
	}
	cos := s.CosTrafo
	if cos <= 0 || cos > 1 {
		cos = 1
	}
	sin := math.Sqrt(1 - cos*cos)
	return complex(s.VoltageV/s.IkTrafoA, 0) * complex(cos, sin), nil
}

// MinAtEnd solves the phase-to-protective-conductor loop at the far end of
// a cable: Ik,min = Uₙ / (Zsup + 2·(Zupstream + 1.5R + jX)).
func MinAtEnd(src Source, run impedance.Z) (Current, error) {
	zsup, err := src.SupplyMin()
	if err != nil {
		return Current{}, err
	}
	loop := src.UpstreamMin.Add(run.Hot())
	ztot := zsup + 2*loop.Complex()
	if ztot == 0 {
		return Current{}, fmt.Errorf("%w: zero loop impedance", cable.ErrInvalidInput)
	}
	return newCurrent(Minimum, complex(src.VoltageV, 0)/ztot), nil
}

// MaxAtEnd uses the strongest source and cold conductor impedance.
func MaxAtEnd(src Source, run impedance.Z) (Current, error) {
	zsup, err := src.SupplyMax()
	if err != nil {
		return Current{}, err
	}
	ztot := zsup + src.UpstreamMax.Add(run).Complex()
	if ztot == 0 {
		return Current{}, fmt.Errorf("%w: zero source impedance", cable.ErrInvalidInput)
	}
	return newCurrent(Maximum, complex(src.VoltageV, 0)/ztot), nil
}

// Downstream is the source seen by the next tier fed through run.
func (s Source) Downstream(run impedance.Z) Source {
	next := s
	next.UpstreamMin = s.UpstreamMin.Add(run.Hot())
	next.UpstreamMax = s.UpstreamMax.Add(run)
	return next
}

// FromUpstreamCurrent builds a source from the fault currents already
// solved at a board, with no further upstream impedance.
func FromUpstreamCurrent(voltage float64, ikMin, ikMax Current) Source {
	return Source{
		VoltageV:    voltage,
		IminSupplyA: ikMin.Magnitude,
		IkTrafoA:    ikMax.Magnitude,
		CosTrafo:    math.Cos(-ikMax.AngleDeg * math.Pi / 180),
	}
}

// TransformerImpedance from rating kVA, secondary voltage, short-circuit
// voltage ek% and copper losses kW.
func TransformerImpedance(kVA, voltage, ekPct, pcuKW float64) (impedance.Z, error) {
	if kVA <= 0 || voltage <= 0 || ekPct <= 0 || pcuKW < 0 {
		return impedance.Z{}, fmt.Errorf("%w: transformer data", cable.ErrInvalidInput)
	}
	s := kVA * 1000
	zk := ekPct / 100 * voltage * voltage / s
	rk := pcuKW * 1000 * voltage * voltage / (s * s)
	if rk > zk {
		return impedance.Z{}, fmt.Errorf("%w: copper losses exceed short-circuit voltage", cable.ErrInvalidInput)
	}
	return impedance.Z{R: rk, X: math.Sqrt(zk*zk - rk*rk)}, nil
}

// NetworkImpedance of the supply network from its short-circuit power in
// MVA and R/X ratio.
func NetworkImpedance(voltage, skMVA, rx float64) (impedance.Z, error) {
	if voltage <= 0 || skMVA <= 0 || rx < 0 {
		return impedance.Z{}, fmt.Errorf("%w: network data", cable.ErrInvalidInput)
	}
	zq := voltage * voltage / (skMVA * 1e6)
	xq := zq / math.Sqrt(1+rx*rx)
	return impedance.Z{R: rx * xq, X: xq}, nil
}

// AtVoltage re-expresses the source at another nominal voltage without
// changing its impedances.
func (s Source) AtVoltage(v float64) Source {
	if v <= 0 || s.VoltageV <= 0 || v == s.VoltageV {
		return s
	}
	r := v / s.VoltageV
	s.IminSupplyA *= r
	s.IkTrafoA *= r
	s.VoltageV = v
	return s
}

// ParallelRun returns the impedance of n equal conductors in parallel and
// with one of them lost.
func ParallelRun(z impedance.Z, n int) (normal, oneLost impedance.Z) {
	if n <= 1 {
		return z, z
	}
	return z.Scale(1 / float64(n)), z.Scale(1 / float64(n-1))
}

// SplitCurrent shares i between two unequal parallel paths. imbalance is
// the difference between the shares as a percentage of i.
func SplitCurrent(i float64, z1, z2 impedance.Z) (i1, i2, imbalance float64) {
	sum := cmplx.Abs(z1.Complex() + z2.Complex())
	if sum == 0 {
		return i / 2, i / 2, 0
	}
	i1 = i * z2.Abs() / sum
	i2 = i * z1.Abs() / sum
	if i > 0 {
		imbalance = 100 * math.Abs(i1-i2) / i
	}
	return i1, i2, imbalance
}
