package autodesign

import (
	"fmt"

	"Ampere/internal/calc/cable"
	"Ampere/internal/calc/loads"
	"Ampere/internal/calc/premium/recommend"
	"Ampere/internal/calc/sizing"
)

// Input describes a circuit by its load instead of its current. Either
// Load or Feeder is set. A device without a rating is rated from the load.
type Input struct {
	Load    *loads.Input       `json:"load,omitempty"`
	Feeder  *loads.FeederInput `json:"feeder,omitempty"`
	Circuit sizing.Circuit     `json:"circuit"`
}

type Result struct {
	PowerW   float64          `json:"power_w"`
	CurrentA float64          `json:"current_a"`
	Device   recommend.Result `json:"device"`
	Outcome  *sizing.Outcome  `json:"outcome"`
	Notes    string           `json:"notes"`
}

func Design(in Input) (Result, error) {
	c := in.Circuit
	var res Result
	switch {
	case in.Load != nil && in.Feeder != nil:
		return Result{}, fmt.Errorf("%w: give either a load or a feeder", cable.ErrInvalidInput)
	case in.Load != nil:
		l := *in.Load
		inherit(&l.Phases, &l.VoltageV, &l.CosPhi, c)
		lr, err := loads.Calculate(l)
		if err != nil {
			return Result{}, err
		}
		res.PowerW, res.CurrentA = lr.PowerW, lr.CurrentA
	case in.Feeder != nil:
		f := *in.Feeder
		inherit(&f.Phases, &f.VoltageV, &f.CosPhi, c)
		fr, err := loads.Aggregate(f)
		if err != nil {
			return Result{}, err
		}
		res.PowerW, res.CurrentA = fr.PowerW, fr.CurrentA
	default:
		return Result{}, fmt.Errorf("%w: load description required", cable.ErrInvalidInput)
	}
	c.CurrentA = res.CurrentA

	if c.Device.RatingA == 0 {
		rec, err := recommend.Device(recommend.Input{Family: c.Device.Family, LoadA: res.CurrentA, Method: firstMethod(c)})
		if err != nil {
			return Result{}, err
		}
		c.Device.Family, c.Device.RatingA = rec.Family, rec.RatingA
		res.Device = rec
	} else {
		res.Device = recommend.Result{Family: c.Device.Family, RatingA: c.Device.RatingA, Notes: "Device given."}
	}

	o, err := sizing.Evaluate(c)
	if err != nil {
		return Result{}, err
	}
	res.Outcome = o
	res.Notes = fmt.Sprintf("%.0f W at %.1f A on %s: %s", res.PowerW, res.CurrentA, o.Device, selectionNote(o))
	return res, nil
}

// inherit fills the load's electrical system from the circuit.
func inherit(phases *int, voltage, cos *float64, c sizing.Circuit) {
	if *phases == 0 {
		*phases = c.Phases
	}
	if *voltage == 0 {
		*voltage = c.VoltageV
	}
	if *cos == 0 {
		*cos = c.CosPhi
	}
}

func firstMethod(c sizing.Circuit) string {
	if len(c.Segments) == 0 {
		return ""
	}
	return c.Segments[0].Method
}

func selectionNote(o *sizing.Outcome) string {
	switch o.Selection {
	case sizing.FirstPass:
		return fmt.Sprintf("%g mm² selected", o.SizeMM2)
	case sizing.Fallback:
		return fmt.Sprintf("no compliant size, %g mm² is the least non-compliant", o.SizeMM2)
	case sizing.Manual:
		return fmt.Sprintf("%g mm² as given", o.SizeMM2)
	}
	return "no cross-section found"
}
