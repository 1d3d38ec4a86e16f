package impedance

import (
	"fmt"
	"math"

	"Ampere/internal/calc/cable"
)

// Z is a series resistance/reactance pair in ohms.
type Z struct {
	R float64 `json:"r_ohm"`
	X float64 `json:"x_ohm"`
}

func (z Z) Add(o Z) Z { return Z{z.R + o.R, z.X + o.X} }

func (z Z) Scale(f float64) Z { return Z{z.R * f, z.X * f} }

// Hot weights the resistance for conductor heating during a fault.
func (z Z) Hot() Z { return Z{z.R * 1.5, z.X} }

func (z Z) Complex() complex128 { return complex(z.R, z.X) }

func (z Z) Abs() float64 { return math.Hypot(z.R, z.X) }

// PerKm holds conductor data for one size.
type PerKm struct {
	R         float64 `json:"r_ohm_km"`
	X         float64 `json:"x_ohm_km"`
	Tabulated bool    `json:"tabulated"`
}

// Lookup returns R and X per km at 20 °C. Sizes missing from the tables
// fall back to resistivity and a nominal reactance.
func Lookup(m cable.Material, size float64, p cable.Phases) PerKm {
	r, rok := resistance[m][size]
	xt := reactance4
	if !p.Single() {
		xt = reactance3
	}
	x, xok := xt[m][size]
	if !xok {
		x, xok = reactance4[m][size]
	}
	if !rok && size > 0 {
		r = resistivity[m] * 1000 / size
	}
	if !xok {
		x = fallbackReactance
	}
	return PerKm{R: r, X: x, Tabulated: rok && xok}
}

// AtTemperature corrects a 20 °C resistance to conductor temperature t.
func AtTemperature(r20 float64, m cable.Material, t float64) float64 {
	return r20 * (1 + alpha[m]*(t-20))
}

// Of returns the impedance of lengthM metres of conductor.
func (p PerKm) Of(lengthM float64) Z {
	return Z{R: p.R * lengthM / 1000, X: p.X * lengthM / 1000}
}

type Formula string

const (
	// FormulaImpedance uses tabulated R and X.
	FormulaImpedance Formula = "impedance"
	// FormulaResistivity uses ρ·L/S with a fixed reactance of 0.08 Ω/km.
	FormulaResistivity Formula = "resistivity"
)

// Resistivity at operating temperature used by the simplified formula.
var operatingResistivity = map[cable.Material]float64{cable.Copper: 0.0225, cable.Aluminium: 0.036}

type Load struct {
	CurrentA float64
	CosPhi   float64
	Phases   cable.Phases
	VoltageV float64
}

type Drop struct {
	Volts   float64 `json:"du_v"`
	Percent float64 `json:"du_pct"`
}

func (d Drop) Add(o Drop) Drop { return Drop{d.Volts + o.Volts, d.Percent + o.Percent} }

func sinOf(cos float64) float64 {
	return math.Sqrt(math.Max(0, 1-cos*cos))
}

func phaseFactor(p cable.Phases) float64 {
	if p.Single() {
		return 2
	}
	return math.Sqrt(3)
}

// VoltageDrop is (L/1000)·I·(R cosφ + X sinφ)·factor, with factor √3 for
// three-phase and 2 for single-phase.
func VoltageDrop(per PerKm, lengthM float64, l Load) Drop {
	du := lengthM / 1000 * l.CurrentA * (per.R*l.CosPhi + per.X*sinOf(l.CosPhi)) * phaseFactor(l.Phases)
	return Drop{Volts: du, Percent: percent(du, l.VoltageV)}
}

// VoltageDropResistivity is b·(ρ·L/S·cosφ + λ·L·sinφ)·I with b = 1 for
// three-phase and 2 for single-phase.
func VoltageDropResistivity(m cable.Material, size, lengthM float64, l Load) Drop {
	b := 1.0
	if l.Phases.Single() {
		b = 2
	}
	lambda := fallbackReactance / 1000
	du := b * (operatingResistivity[m]*lengthM/size*l.CosPhi + lambda*lengthM*sinOf(l.CosPhi)) * l.CurrentA
	return Drop{Volts: du, Percent: percent(du, l.VoltageV)}
}

func percent(du, un float64) float64 {
	if un <= 0 {
		return 0
	}
	return 100 * du / un
}

type Segment struct {
	LengthM float64 `json:"length_m"`
	SizeMM2 float64 `json:"size_mm2"`
}

type Input struct {
	Material string    `json:"material"`
	Phases   int       `json:"phases"`
	VoltageV float64   `json:"voltage_v"`
	CurrentA float64   `json:"current_a"`
	CosPhi   float64   `json:"cos_phi"`
	Formula  Formula   `json:"formula"`
	Segments []Segment `json:"segments"`
}

type SegmentResult struct {
	PerKm PerKm `json:"per_km"`
	Z     Z     `json:"z"`
	Drop  Drop  `json:"drop"`
}

type Result struct {
	Segments []SegmentResult `json:"segments"`
	Z        Z               `json:"z_total"`
	Drop     Drop            `json:"drop_total"`
}

func Calculate(in Input) (Result, error) {
	mat, err := cable.ParseMaterial(in.Material)
	if err != nil {
		return Result{}, err
	}
	if len(in.Segments) == 0 || in.VoltageV <= 0 || in.CurrentA < 0 {
		return Result{}, fmt.Errorf("%w: segments, voltage and current required", cable.ErrInvalidInput)
	}
	if in.CosPhi <= 0 || in.CosPhi > 1 {
		in.CosPhi = 1
	}
	fields := map[string]float64{"voltage_v": in.VoltageV, "current_a": in.CurrentA, "cos_phi": in.CosPhi}
	for i, s := range in.Segments {
		fields[fmt.Sprintf("segments[%d].length_m", i)] = s.LengthM
		fields[fmt.Sprintf("segments[%d].size_mm2", i)] = s.SizeMM2
	}
	if err := cable.Validate(fields); err != nil {
		return Result{}, err
	}
	load := Load{CurrentA: in.CurrentA, CosPhi: in.CosPhi, Phases: cable.Phases(in.Phases), VoltageV: in.VoltageV}
	var res Result
	for _, s := range in.Segments {
		if s.SizeMM2 <= 0 || s.LengthM < 0 {
			return Result{}, fmt.Errorf("%w: segment size and length", cable.ErrInvalidInput)
		}
		per := Lookup(mat, s.SizeMM2, load.Phases)
		d := VoltageDrop(per, s.LengthM, load)
		if in.Formula == FormulaResistivity {
			d = VoltageDropResistivity(mat, s.SizeMM2, s.LengthM, load)
		}
		z := per.Of(s.LengthM)
		res.Segments = append(res.Segments, SegmentResult{PerKm: per, Z: z, Drop: d})
		res.Z = res.Z.Add(z)
		res.Drop = res.Drop.Add(d)
	}
	return res, nil
}
