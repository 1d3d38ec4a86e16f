package shortcircuit

import (
	"fmt"

	"Ampere/internal/calc/cable"
	"Ampere/internal/calc/impedance"
)

type Segment struct {
	LengthM float64 `json:"length_m"`
	SizeMM2 float64 `json:"size_mm2"`
}

type Input struct {
	Source   Source    `json:"source"`
	Material string    `json:"material"`
	Phases   int       `json:"phases"`
	Parallel int       `json:"parallel"`
	Segments []Segment `json:"segments"`
}

type Result struct {
	Cable      impedance.Z `json:"cable_z"`
	IkMin      Current     `json:"ik_min"`
	IkMax      *Current    `json:"ik_max,omitempty"`
	IkMinFault *Current    `json:"ik_min_one_lost,omitempty"`
	Downstream Source      `json:"downstream"`
}

func Calculate(in Input) (Result, error) {
	mat, err := cable.ParseMaterial(in.Material)
	if err != nil {
		return Result{}, err
	}
	if len(in.Segments) == 0 {
		return Result{}, fmt.Errorf("%w: no segments", cable.ErrInvalidInput)
	}
	var run impedance.Z
	for _, s := range in.Segments {
		if err := cable.Validate(map[string]float64{"length_m": s.LengthM, "size_mm2": s.SizeMM2}); err != nil {
			return Result{}, err
		}
		if s.SizeMM2 <= 0 || s.LengthM < 0 {
			return Result{}, fmt.Errorf("%w: segment size and length", cable.ErrInvalidInput)
		}
		run = run.Add(impedance.Lookup(mat, s.SizeMM2, cable.Phases(in.Phases)).Of(s.LengthM))
	}
	normal, lost := ParallelRun(run, in.Parallel)
	res := Result{Cable: normal, Downstream: in.Source.Downstream(normal)}
	if res.IkMin, err = MinAtEnd(in.Source, normal); err != nil {
		return Result{}, err
	}
	if ik, err := MaxAtEnd(in.Source, normal); err == nil {
		res.IkMax = &ik
	}
	if in.Parallel > 1 {
		if ik, err := MinAtEnd(in.Source, lost); err == nil {
			res.IkMinFault = &ik
		}
	}
	return res, nil
}
