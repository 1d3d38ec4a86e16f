package sizing

import (
	"fmt"
	"math"

	"Ampere/internal/calc/ampacity"
	"Ampere/internal/calc/derating"
	"Ampere/internal/calc/impedance"
	"Ampere/internal/calc/shortcircuit"
)

// Check names one constraint a candidate size is screened against.
type Check string

const (
	CheckNoData        Check = "no-data"
	CheckAmpacity      Check = "ampacity"
	CheckVoltageDrop   Check = "voltage-drop"
	CheckDisconnection Check = "disconnection"
	CheckThermal       Check = "thermal"
	CheckEarthFault    Check = "earth-fault"
)

type Violation struct {
	Check  Check  `json:"check"`
	Detail string `json:"detail"`
}

type SegmentTrace struct {
	Name     string       `json:"name"`
	Method   string       `json:"method"`
	Ref      ampacity.Ref `json:"ref"`
	Buried   bool         `json:"buried"`
	LengthM  float64      `json:"length_m"`
	AmbientC float64      `json:"ambient_c"`
	SizeMM2  float64      `json:"size_mm2"`
	derating.Factors
	IzA          float64         `json:"iz_a"`
	IzCorrectedA float64         `json:"iz_corrected_a"`
	RequiredA    float64         `json:"required_a"`
	PerKm        impedance.PerKm `json:"per_km"`
	Z            impedance.Z     `json:"z"`
	Drop         impedance.Drop  `json:"drop"`
}

// candidate is one trial of the size ladder.
type candidate struct {
	size       float64
	segments   []SegmentTrace
	drop       impedance.Drop
	run        impedance.Z
	normal     impedance.Z
	lost       impedance.Z
	ikMin      shortcircuit.Current
	trip       float64
	violations []Violation
}

func (c *candidate) failed(k Check) bool {
	for _, v := range c.violations {
		if v.Check == k {
			return true
		}
	}
	return false
}

// tabulated reports whether every segment had ampacity data.
func (c *candidate) tabulated() bool { return !c.failed(CheckNoData) }

// screened reports whether the candidate passed the ampacity and voltage
// drop screens.
func (c *candidate) screened() bool {
	return c.tabulated() && !c.failed(CheckAmpacity) && !c.failed(CheckVoltageDrop)
}

// try evaluates the circuit with the given size per segment and applies
// the search screens.
func (c *circuit) try(sizes []float64) (*candidate, error) {
	cand := &candidate{size: sizes[0]}
	req := c.required()
	for i, s := range c.segments {
		size := sizes[i]
		if size < cand.size {
			cand.size = size
		}
		iz, ref := ampacity.LookupMethod(c.material, s.insulation, s.method, size, s.loaded)
		f := derating.For(s.method, derating.Conditions{
			Insulation: s.insulation,
			Ambient:    s.AmbientC,
			Grouped:    s.Grouped,
			SpacingM:   s.SpacingM,
			Soil:       s.Soil,
		})
		per := impedance.Lookup(c.material, size, c.phases)
		var drop impedance.Drop
		if c.Formula == impedance.FormulaResistivity {
			drop = impedance.VoltageDropResistivity(c.material, size, s.LengthM, c.load())
		} else {
			drop = impedance.VoltageDrop(per, s.LengthM, c.load())
		}
		tr := SegmentTrace{
			Name:         s.Name,
			Method:       s.method.Code,
			Ref:          ref,
			Buried:       s.method.Buried,
			LengthM:      s.LengthM,
			AmbientC:     s.AmbientC,
			SizeMM2:      size,
			Factors:      f,
			IzA:          iz,
			IzCorrectedA: derating.Corrected(iz, f),
			RequiredA:    req,
			PerKm:        per,
			Z:            per.Of(s.LengthM),
			Drop:         drop,
		}
		switch {
		case iz == 0:
			cand.violations = append(cand.violations, Violation{CheckNoData,
				fmt.Sprintf("%s: no ampacity data for %g mm² by method %s", s.Name, size, s.method.Code)})
		case tr.IzCorrectedA < req:
			cand.violations = append(cand.violations, Violation{CheckAmpacity,
				fmt.Sprintf("%s: Iz %.1f A < %.1f A required", s.Name, tr.IzCorrectedA, req)})
		}
		cand.segments = append(cand.segments, tr)
		cand.drop = cand.drop.Add(drop)
		cand.run = cand.run.Add(tr.Z)
	}
	if cand.drop.Percent > c.MaxDropPct {
		cand.violations = append(cand.violations, Violation{CheckVoltageDrop,
			fmt.Sprintf("ΔU %.2f %% > %.2f %%", cand.drop.Percent, c.MaxDropPct)})
	}

	cand.normal, cand.lost = shortcircuit.ParallelRun(cand.run, c.parallel)
	ik, err := shortcircuit.MinAtEnd(c.Source, cand.normal)
	if err != nil {
		return nil, err
	}
	cand.ikMin = ik
	cand.trip = c.device.TripTime(ik.Magnitude)
	if c.device.Melting() && !(cand.trip <= c.maxTrip) {
		cand.violations = append(cand.violations, Violation{CheckDisconnection,
			fmt.Sprintf("trip time %s at Ik,min %.0f A exceeds %.1f s", formatTime(cand.trip), ik.Magnitude, c.maxTrip)})
	}
	return cand, nil
}

func (c *circuit) uniform(size float64) []float64 {
	out := make([]float64, len(c.segments))
	for i := range out {
		out[i] = size
	}
	return out
}

func (c *circuit) manualSizes() []float64 {
	out := make([]float64, len(c.segments))
	for i, s := range c.segments {
		out[i] = s.SizeMM2
	}
	return out
}

// search walks the ladder. The first pass returns the first size passing
// every screen. Failing that, the second pass picks the fastest-clearing
// size among those passing ampacity and voltage drop, and then the size
// with the fewest violations among those with table data.
func (c *circuit) search() (*candidate, Selection, error) {
	var all []*candidate
	for _, size := range c.ladder() {
		cand, err := c.try(c.uniform(size))
		if err != nil {
			return nil, "", err
		}
		if len(cand.violations) == 0 {
			return cand, FirstPass, nil
		}
		all = append(all, cand)
	}

	var best *candidate
	for _, cand := range all {
		if cand.screened() && (best == nil || cand.trip < best.trip) {
			best = cand
		}
	}
	if best != nil {
		return best, Fallback, nil
	}
	for _, cand := range all {
		if !cand.tabulated() {
			continue
		}
		if best == nil || len(cand.violations) <= len(best.violations) {
			best = cand
		}
	}
	if best != nil {
		return best, Fallback, nil
	}
	return nil, NoneFound, nil
}

func formatTime(t float64) string {
	if math.IsInf(t, 1) {
		return "∞"
	}
	return fmt.Sprintf("%.3f s", t)
}
