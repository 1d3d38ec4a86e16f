package fuse

import (
	"fmt"

	"Ampere/internal/calc/cable"
)

// Device names a protective device by manufacturer, family and rating.
type Device struct {
	Manufacturer string  `json:"manufacturer"`
	Family       string  `json:"family"`
	RatingA      float64 `json:"rating_a"`
}

func (d Device) Spec() (Spec, error) { return Lookup(d.Manufacturer, d.Family, d.RatingA) }

type Input struct {
	Manufacturer string  `json:"manufacturer"`
	Family       string  `json:"family"`
	RatingA      float64 `json:"rating_a"`
	IkA          float64 `json:"ik_a"`
}

type Result struct {
	Device    Spec        `json:"device"`
	Imin      float64     `json:"imin_a"`
	Multiple  float64     `json:"multiple"`
	TripTimeS cable.Float `json:"trip_time_s"`
	Trips     bool        `json:"trips"`
	Bracket   []Point     `json:"bracket,omitempty"`
	Curve     Curve       `json:"curve"`
	Available []float64   `json:"available_ratings"`
}

func Calculate(in Input) (Result, error) {
	if err := cable.Validate(map[string]float64{"rating_a": in.RatingA, "ik_a": in.IkA}); err != nil {
		return Result{}, err
	}
	if in.IkA < 0 {
		return Result{}, fmt.Errorf("%w: negative fault current", cable.ErrInvalidInput)
	}
	spec, err := Lookup(in.Manufacturer, in.Family, in.RatingA)
	if err != nil {
		return Result{}, err
	}
	t := spec.TripTime(in.IkA)
	res := Result{
		Device:    spec,
		Imin:      spec.Imin(),
		Multiple:  in.IkA / spec.Rating,
		TripTimeS: cable.Float(t),
		Trips:     cable.Float(t).Finite(),
		Curve:     spec.Absolute(),
		Available: spec.Family.Ratings(),
	}
	if lo, hi, ok := spec.Bracket(in.IkA); ok {
		res.Bracket = []Point{lo, hi}
	}
	return res, nil
}
