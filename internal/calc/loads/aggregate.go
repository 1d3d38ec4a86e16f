package loads

import (
	"fmt"
	"math"

	"Ampere/internal/calc/cable"
)

type Aggregation string

const (
	AggregateSum       Aggregation = "sum"
	AggregateDiversity Aggregation = "diversity"
	AggregateVelander  Aggregation = "velander"
	AggregateManual    Aggregation = "manual"
)

const defaultDiversity = 0.7

type FeederInput struct {
	Units          []Input     `json:"units"`
	Mode           Aggregation `json:"mode"`
	Diversity      float64     `json:"diversity"`
	ManualCurrentA float64     `json:"manual_current_a"`
	Phases         int         `json:"phases"`
	VoltageV       float64     `json:"voltage_v"`
	CosPhi         float64     `json:"cos_phi"`
	MarginPct      float64     `json:"margin_pct"`
}

type FeederResult struct {
	Mode     Aggregation `json:"mode"`
	Units    []Result    `json:"units"`
	PowerW   float64     `json:"power_w"`
	CurrentA float64     `json:"current_a"`
	Notes    string      `json:"notes"`
}

// Aggregate combines the units sharing one feeder.
func Aggregate(in FeederInput) (FeederResult, error) {
	feeder := Input{Phases: in.Phases, VoltageV: in.VoltageV, CosPhi: in.CosPhi, MarginPct: in.MarginPct}
	feeder.defaults()
	if err := feeder.validate(); err != nil {
		return FeederResult{}, err
	}
	if err := cable.Validate(map[string]float64{"diversity": in.Diversity, "manual_current_a": in.ManualCurrentA}); err != nil {
		return FeederResult{}, err
	}
	if in.Mode == "" {
		in.Mode = AggregateSum
	}
	if in.Mode != AggregateManual && len(in.Units) == 0 {
		return FeederResult{}, fmt.Errorf("%w: no units", cable.ErrInvalidInput)
	}
	out := FeederResult{Mode: in.Mode}
	var sumP, sumI, sumW float64
	for i, u := range in.Units {
		r, err := Calculate(u)
		if err != nil {
			return FeederResult{}, fmt.Errorf("unit %d: %w", i+1, err)
		}
		out.Units = append(out.Units, r)
		sumP += r.PowerW
		sumI += r.CurrentA
		sumW += u.AverageKW
	}
	ph := cable.Phases(feeder.Phases)
	switch in.Mode {
	case AggregateSum:
		out.PowerW = sumP
		out.CurrentA = sumI
		out.Notes = "Sum of unit currents."
	case AggregateDiversity:
		f := in.Diversity
		if f <= 0 || f > 1 {
			f = defaultDiversity
		}
		out.PowerW = f * sumP
		out.CurrentA = Current(out.PowerW, feeder.VoltageV, feeder.CosPhi, ph)
		out.Notes = fmt.Sprintf("Diversity factor %.2f on summed power.", f)
	case AggregateVelander:
		for i, u := range in.Units {
			if u.AverageKW <= 0 {
				return FeederResult{}, fmt.Errorf("%w: unit %d has no average consumption", cable.ErrInvalidInput, i+1)
			}
		}
		out.PowerW = Velander(sumW) * 1000
		out.CurrentA = Current(out.PowerW, feeder.VoltageV, feeder.CosPhi, ph)
		out.Notes = fmt.Sprintf("Velander across %d units, W = %.1f kW.", len(in.Units), sumW)
	case AggregateManual:
		if in.ManualCurrentA <= 0 {
			return FeederResult{}, fmt.Errorf("%w: manual feeder current required", cable.ErrInvalidInput)
		}
		out.CurrentA = in.ManualCurrentA
		out.PowerW = Power(in.ManualCurrentA, feeder.VoltageV, feeder.CosPhi, ph)
		out.Notes = "Manual feeder current."
	default:
		return FeederResult{}, fmt.Errorf("%w: aggregation %q", cable.ErrInvalidInput, in.Mode)
	}
	// The feeder margin applies to every mode.
	out.PowerW = WithMargin(out.PowerW, feeder.MarginPct)
	out.CurrentA = WithMargin(out.CurrentA, feeder.MarginPct)
	if math.IsNaN(out.CurrentA) {
		return FeederResult{}, fmt.Errorf("%w: feeder current", cable.ErrInvalidInput)
	}
	return out, nil
}
