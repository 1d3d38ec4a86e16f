// Package earthfault checks automatic disconnection for TN and TT earthing
// systems and sizes the protective conductor.
package earthfault

import (
	"fmt"
	"math"

	"Ampere/internal/calc/cable"
	"Ampere/internal/calc/fuse"
	"Ampere/internal/calc/impedance"
)

type System string

const (
	TN System = "TN"
	TT System = "TT"
)

type Class string

const (
	Final        Class = "final"
	Distribution Class = "distribution"
)

// DisconnectionTime is the required clearing time for a circuit class.
func DisconnectionTime(c Class) float64 {
	if c == Distribution {
		return 5
	}
	return 0.4
}

const (
	touchLimitV      = 50.0
	phaseTemperature = 70.0
	raWarnOhm        = 100.0
)

// RCD is the residual-current protection a circuit needs.
type RCD struct {
	Required      bool   `json:"required"`
	Recommended   bool   `json:"recommended"`
	SensitivityMA int    `json:"sensitivity_ma"`
	Delayed       bool   `json:"time_delayed"`
	Reason        string `json:"reason,omitempty"`
}

func (r RCD) amps() float64 { return float64(r.SensitivityMA) / 1000 }

type Segment struct {
	LengthM  float64 `json:"length_m"`
	PhaseMM2 float64 `json:"phase_mm2"`
	PEMM2    float64 `json:"pe_mm2"`
}

type Params struct {
	System       System
	VoltageV     float64
	SourceZsOhm  float64
	RaOhm        float64
	Material     cable.Material
	Construction cable.Construction
	Segments     []Segment
	Device       fuse.Spec
	Class        Class
	Socket       bool
	Bathroom     bool
	Outdoor      bool
	PEProtected  bool
}

type SegmentResult struct {
	PhaseMM2 float64 `json:"phase_mm2"`
	PEMM2    float64 `json:"pe_mm2"`
	MinPEMM2 float64 `json:"min_pe_mm2"`
	R1Ohm    float64 `json:"r1_ohm"`
	R2Ohm    float64 `json:"r2_ohm"`
}

type Result struct {
	System          System          `json:"system"`
	Segments        []SegmentResult `json:"segments"`
	R1Ohm           float64         `json:"r1_ohm"`
	R2Ohm           float64         `json:"r2_ohm"`
	ZsOhm           float64         `json:"zs_ohm"`
	EffectiveZsOhm  float64         `json:"effective_zs_ohm"`
	FaultCurrentA   float64         `json:"fault_current_a"`
	TripTimeS       cable.Float     `json:"trip_time_s"`
	RequiredTimeS   float64         `json:"required_time_s"`
	ZsMaxOhm        float64         `json:"zs_max_ohm"`
	DisconnectionOK bool            `json:"disconnection_ok"`
	TouchVoltageV   float64         `json:"touch_voltage_v"`
	RCD             RCD             `json:"rcd"`
	MainEarthMinMM2 float64         `json:"main_earth_min_mm2"`
	Compliant       bool            `json:"compliant"`
	Warnings        []string        `json:"warnings,omitempty"`
}

func (p Params) validate() error {
	fields := map[string]float64{"voltage_v": p.VoltageV, "source_zs_ohm": p.SourceZsOhm, "ra_ohm": p.RaOhm}
	for i, s := range p.Segments {
		fields[fmt.Sprintf("segments[%d].length_m", i)] = s.LengthM
		fields[fmt.Sprintf("segments[%d].phase_mm2", i)] = s.PhaseMM2
		fields[fmt.Sprintf("segments[%d].pe_mm2", i)] = s.PEMM2
	}
	if err := cable.Validate(fields); err != nil {
		return err
	}
	switch {
	case p.System != TN && p.System != TT:
		return fmt.Errorf("%w: earthing system %q", cable.ErrInvalidInput, p.System)
	case p.VoltageV <= 0:
		return fmt.Errorf("%w: voltage must be positive", cable.ErrInvalidInput)
	case len(p.Segments) == 0:
		return fmt.Errorf("%w: no segments", cable.ErrInvalidInput)
	case p.Device.Family == nil:
		return fmt.Errorf("%w: protective device", cable.ErrInvalidInput)
	case p.System == TT && p.RaOhm <= 0:
		return fmt.Errorf("%w: TT needs an electrode resistance", cable.ErrInvalidInput)
	case p.SourceZsOhm < 0:
		return fmt.Errorf("%w: negative source impedance", cable.ErrInvalidInput)
	}
	for _, s := range p.Segments {
		if s.PhaseMM2 <= 0 || s.LengthM < 0 || s.PEMM2 < 0 {
			return fmt.Errorf("%w: segment size and length", cable.ErrInvalidInput)
		}
	}
	return nil
}

// Analyze evaluates the earth-fault loop of a circuit.
func Analyze(p Params) (Result, error) {
	if err := p.validate(); err != nil {
		return Result{}, err
	}
	res := Result{System: p.System, RequiredTimeS: DisconnectionTime(p.Class)}

	for _, s := range p.Segments {
		minPE := MinimumPE(s.PhaseMM2, p.Material, p.Construction, p.System, p.Class)
		pe := s.PEMM2
		if pe == 0 {
			pe = minPE
		} else if pe < minPE {
			res.Warnings = append(res.Warnings, fmt.Sprintf("PE %g mm² below the %g mm² minimum for %g mm² phase", pe, minPE, s.PhaseMM2))
		}
		r1 := impedance.AtTemperature(impedance.Lookup(p.Material, s.PhaseMM2, cable.ThreePhase).R, p.Material, phaseTemperature) * s.LengthM / 1000
		r2 := impedance.Lookup(p.Material, pe, cable.ThreePhase).R * s.LengthM / 1000
		res.Segments = append(res.Segments, SegmentResult{PhaseMM2: s.PhaseMM2, PEMM2: pe, MinPEMM2: minPE, R1Ohm: r1, R2Ohm: r2})
		res.R1Ohm += r1
		res.R2Ohm += r2
	}
	res.MainEarthMinMM2 = MainEarthMinimum(p.Material, p.PEProtected)
	if p.Class == Distribution {
		smallest := math.Inf(1)
		for _, s := range res.Segments {
			smallest = math.Min(smallest, s.PEMM2)
		}
		if smallest < res.MainEarthMinMM2 {
			res.Warnings = append(res.Warnings, fmt.Sprintf("PE %g mm² below the %g mm² main earthing minimum", smallest, res.MainEarthMinMM2))
		}
	}

	res.ZsOhm = p.SourceZsOhm + res.R1Ohm + res.R2Ohm
	res.EffectiveZsOhm = res.ZsOhm
	if p.System == TT {
		res.EffectiveZsOhm += p.RaOhm
	}
	if res.EffectiveZsOhm <= 0 {
		return Result{}, fmt.Errorf("%w: zero loop impedance", cable.ErrInvalidInput)
	}
	res.FaultCurrentA = p.VoltageV / res.EffectiveZsOhm
	trip := p.Device.TripTime(res.FaultCurrentA)
	res.TripTimeS = cable.Float(trip)
	res.DisconnectionOK = trip <= res.RequiredTimeS
	if ia := p.Device.CurrentFor(res.RequiredTimeS); !math.IsInf(ia, 0) && ia > 0 {
		res.ZsMaxOhm = p.VoltageV / ia
	}

	res.RCD = RequiredRCD(p, res.DisconnectionOK)

	switch p.System {
	case TN:
		res.TouchVoltageV = res.FaultCurrentA * res.R2Ohm
		res.Compliant = res.DisconnectionOK || (res.RCD.Required && res.ZsOhm*res.RCD.amps() <= p.VoltageV)
		if res.TouchVoltageV > touchLimitV && !res.DisconnectionOK {
			res.Warnings = append(res.Warnings, fmt.Sprintf("touch voltage %.0f V exceeds %.0f V", res.TouchVoltageV, touchLimitV))
		}
	case TT:
		res.TouchVoltageV = p.RaOhm * res.RCD.amps()
		res.Compliant = res.RCD.Required && res.TouchVoltageV <= touchLimitV
		if p.RaOhm > raWarnOhm {
			res.Warnings = append(res.Warnings, fmt.Sprintf("electrode resistance %.0f Ω is high, improve the earth electrode", p.RaOhm))
		}
	}
	return res, nil
}

// RequiredRCD applies the residual-current rules in priority order.
func RequiredRCD(p Params, disconnectionOK bool) RCD {
	switch {
	case p.Bathroom || p.Outdoor:
		return RCD{Required: true, SensitivityMA: 30, Reason: "bathroom or outdoor circuit"}
	case p.Socket && p.Class != Distribution && p.Device.Rating <= 20:
		return RCD{Required: true, SensitivityMA: 30, Reason: "socket-outlet circuit up to 20 A"}
	case p.System == TT && p.Class != Distribution:
		return RCD{Required: true, SensitivityMA: 30, Reason: "TT final circuit"}
	case p.System == TT:
		return RCD{Required: true, SensitivityMA: 300, Delayed: true, Reason: "TT distribution circuit"}
	case !disconnectionOK:
		return RCD{Required: true, SensitivityMA: 300, Reason: "loop impedance too high for disconnection by the overcurrent device"}
	case p.Class == Distribution:
		return RCD{Recommended: true, SensitivityMA: 300, Delayed: true, Reason: "selective protection of the distribution circuit"}
	}
	return RCD{}
}

// MinimumPE is the smallest protective conductor for a phase conductor.
// Cores of a multi-core cable share the phase size; separate conductors
// follow S up to 16 mm², 16 mm² up to 35 mm², then S/2.
func MinimumPE(phase float64, m cable.Material, c cable.Construction, s System, class Class) float64 {
	if s == TT && class == Distribution {
		if m == cable.Aluminium {
			return 10
		}
		return 6
	}
	if c != cable.SingleCore {
		return phase
	}
	switch {
	case phase <= 16:
		return phase
	case phase <= 35:
		return 16
	}
	half := phase / 2
	for _, size := range cable.StandardSizes {
		if size >= half {
			return size
		}
	}
	return half
}

// MainEarthMinimum is the smallest main earthing conductor.
func MainEarthMinimum(m cable.Material, protected bool) float64 {
	switch {
	case m == cable.Aluminium && protected:
		return 16
	case m == cable.Aluminium:
		return 25
	case protected:
		return 6
	}
	return 16
}
