package earthfault

import (
	"strings"

	"Ampere/internal/calc/cable"
	"Ampere/internal/calc/fuse"
)

type Input struct {
	System       string      `json:"system"`
	VoltageV     float64     `json:"voltage_v"`
	SourceZsOhm  float64     `json:"source_zs_ohm"`
	RaOhm        float64     `json:"ra_ohm"`
	Material     string      `json:"material"`
	Construction string      `json:"construction"`
	Segments     []Segment   `json:"segments"`
	Device       fuse.Device `json:"device"`
	Class        string      `json:"class"`
	Socket       bool        `json:"socket"`
	Bathroom     bool        `json:"bathroom"`
	Outdoor      bool        `json:"outdoor"`
	PEProtected  bool        `json:"pe_protected"`
}

// Params converts the JSON form, applying the 230 V default.
func (in Input) Params() (Params, error) {
	mat, err := cable.ParseMaterial(in.Material)
	if err != nil {
		return Params{}, err
	}
	dev, err := in.Device.Spec()
	if err != nil {
		return Params{}, err
	}
	p := Params{
		System:       System(strings.ToUpper(strings.TrimSpace(in.System))),
		VoltageV:     in.VoltageV,
		SourceZsOhm:  in.SourceZsOhm,
		RaOhm:        in.RaOhm,
		Material:     mat,
		Construction: cable.Construction(strings.ToLower(in.Construction)),
		Segments:     in.Segments,
		Device:       dev,
		Class:        Class(strings.ToLower(in.Class)),
		Socket:       in.Socket,
		Bathroom:     in.Bathroom,
		Outdoor:      in.Outdoor,
		PEProtected:  in.PEProtected,
	}
	if p.System == "" {
		p.System = TN
	}
	if p.VoltageV == 0 {
		p.VoltageV = 230
	}
	if p.Class == "" {
		p.Class = Final
	}
	if p.Construction == "" {
		p.Construction = cable.MultiCore
	}
	return p, nil
}

func Calculate(in Input) (Result, error) {
	p, err := in.Params()
	if err != nil {
		return Result{}, err
	}
	return Analyze(p)
}
