package sizing

import (
	"fmt"
	"math"

	"Ampere/internal/calc/cable"
	"Ampere/internal/calc/derating"
	"Ampere/internal/calc/earthfault"
	"Ampere/internal/calc/impedance"
	"Ampere/internal/calc/shortcircuit"
	"Ampere/internal/calc/thermal"
)

// Selection records how the reported size was reached.
type Selection string

const (
	FirstPass Selection = "first-pass"
	Fallback  Selection = "fallback"
	Manual    Selection = "manual"
	NoneFound Selection = "none"
)

// lostConductorShare is the fraction of Ik,min a parallel run must keep
// with one conductor lost before a warning is raised.
const lostConductorShare = 0.8

// Flags are the per-constraint results for the reported size.
type Flags struct {
	Ampacity      bool `json:"ampacity"`
	VoltageDrop   bool `json:"voltage_drop"`
	Disconnection bool `json:"disconnection"`
	Thermal       bool `json:"thermal"`
	EarthFault    bool `json:"earth_fault"`
}

// Outcome is the full result of one circuit evaluation.
type Outcome struct {
	Name         string                `json:"name,omitempty"`
	Tier         Tier                  `json:"tier"`
	Selection    Selection             `json:"selection"`
	SizeMM2      float64               `json:"size_mm2"`
	Parallel     int                   `json:"parallel"`
	Device       string                `json:"device"`
	Compliant    bool                  `json:"compliant"`
	Flags        Flags                 `json:"flags"`
	Segments     []SegmentTrace        `json:"segments"`
	Drop         impedance.Drop        `json:"drop"`
	MaxDropPct   float64               `json:"max_drop_pct"`
	CableZ       impedance.Z           `json:"cable_z"`
	IkMin        *shortcircuit.Current `json:"ik_min,omitempty"`
	IkMax        *shortcircuit.Current `json:"ik_max,omitempty"`
	IkMinOneLost *shortcircuit.Current `json:"ik_min_one_lost,omitempty"`
	TripTimeS    cable.Float           `json:"trip_time_s"`
	MaxTripTimeS float64               `json:"max_trip_time_s,omitempty"`
	Thermal      *thermal.Check        `json:"thermal,omitempty"`
	EarthFault   *earthfault.Result    `json:"earth_fault,omitempty"`
	Violations   []Violation           `json:"violations,omitempty"`
	Warnings     []string              `json:"warnings,omitempty"`
	Steps        []Step                `json:"steps"`
	NextSource   *shortcircuit.Source  `json:"downstream_source,omitempty"`
}

// Found reports whether a size was chosen.
func (o *Outcome) Found() bool { return o.Selection != NoneFound }

// Downstream is the source seen by a circuit fed from the far end of this
// one.
func (o *Outcome) Downstream() (shortcircuit.Source, error) {
	if o.NextSource == nil {
		return shortcircuit.Source{}, fmt.Errorf("%w: %s has no size", ErrUpstreamUnresolved, o.label())
	}
	return *o.NextSource, nil
}

func (o *Outcome) label() string {
	if o.Name != "" {
		return o.Name
	}
	return string(o.Tier)
}

// Evaluate sizes one circuit. Automatic circuits walk the size ladder,
// manual circuits keep the cross-section given per segment.
func Evaluate(in Circuit) (*Outcome, error) {
	c, err := in.prepare()
	if err != nil {
		return nil, err
	}
	var (
		cand *candidate
		sel  Selection
	)
	if c.Manual {
		if cand, err = c.try(c.manualSizes()); err != nil {
			return nil, err
		}
		sel = Manual
	} else if cand, sel, err = c.search(); err != nil {
		return nil, err
	}

	out := &Outcome{
		Name:       c.Name,
		Tier:       c.Tier,
		Selection:  sel,
		Parallel:   c.parallel,
		Device:     c.device.String(),
		MaxDropPct: c.MaxDropPct,
		TripTimeS:  cable.Float(math.Inf(1)),
	}
	if c.device.Melting() {
		out.MaxTripTimeS = c.maxTrip
	}
	if cand == nil {
		out.Violations = []Violation{{CheckNoData, "no cross-section on the ladder has ampacity data for this installation"}}
		out.Steps = c.noneSteps()
		return out, nil
	}
	if err := c.finish(out, cand); err != nil {
		return nil, err
	}
	return out, nil
}

// finish recomputes the full result set for the chosen candidate.
func (c *circuit) finish(out *Outcome, cand *candidate) error {
	out.SizeMM2 = cand.size
	out.Segments = cand.segments
	out.Drop = cand.drop
	out.CableZ = cand.normal
	out.Violations = append(out.Violations, cand.violations...)

	ikMin := cand.ikMin
	out.IkMin = &ikMin
	if ik, err := shortcircuit.MaxAtEnd(c.Source, cand.normal); err == nil {
		out.IkMax = &ik
	}
	if c.parallel > 1 {
		if ik, err := shortcircuit.MinAtEnd(c.Source, cand.lost); err == nil {
			out.IkMinOneLost = &ik
			if ik.Magnitude < lostConductorShare*ikMin.Magnitude {
				out.Warnings = append(out.Warnings, fmt.Sprintf(
					"with one of %d conductors lost Ik,min falls to %.0f A (%.0f %% of %.0f A)",
					c.parallel, ik.Magnitude, 100*ik.Magnitude/ikMin.Magnitude, ikMin.Magnitude))
			}
		}
		if ikMin.Magnitude < 2*c.device.Rating {
			out.Warnings = append(out.Warnings, fmt.Sprintf(
				"Ik,min %.0f A is below twice the %g A device rating of the parallel run", ikMin.Magnitude, c.device.Rating))
		}
	}
	out.TripTimeS = cable.Float(cand.trip)

	// Breakers are not screened during the search but must still trip.
	if !c.device.Melting() && !cable.Float(cand.trip).Finite() {
		out.Violations = append(out.Violations, Violation{CheckDisconnection,
			fmt.Sprintf("%s does not trip at Ik,min %.0f A", c.device, ikMin.Magnitude)})
	}

	th := thermal.Verify(c.k, cand.size, ikMin.Magnitude, cand.trip)
	out.Thermal = &th
	if !th.OK {
		out.Violations = append(out.Violations, Violation{CheckThermal,
			fmt.Sprintf("let-through %s A²s exceeds cable withstand %.0f A²s", th.LetThrough, th.CableEnergy)})
	}

	if c.earth != nil {
		p := *c.earth
		for _, s := range cand.segments {
			p.Segments = append(p.Segments, earthfault.Segment{LengthM: s.LengthM, PhaseMM2: s.SizeMM2, PEMM2: c.EarthFault.PEMM2})
		}
		ef, err := earthfault.Analyze(p)
		if err != nil {
			return err
		}
		out.EarthFault = &ef
		out.Warnings = append(out.Warnings, ef.Warnings...)
		if !ef.Compliant {
			out.Violations = append(out.Violations, Violation{CheckEarthFault,
				fmt.Sprintf("%s earth fault not cleared: Zs %.3f Ω, Ia %.0f A", ef.System, ef.EffectiveZsOhm, ef.FaultCurrentA)})
		}
	}

	for _, s := range c.segments {
		if _, w := derating.BundlingWarning(s.Grouped, false); w != "" {
			out.Warnings = append(out.Warnings, s.Name+": "+w)
		}
		if s.method.Buried {
			if w := derating.SoilSpacingWarning(s.Grouped, s.SpacingM); w != "" {
				out.Warnings = append(out.Warnings, s.Name+": "+w)
			}
		}
		if c.Manual && !cable.IsStandard(s.SizeMM2) {
			out.Warnings = append(out.Warnings, fmt.Sprintf("%s: %g mm² is not a standard size", s.Name, s.SizeMM2))
		}
	}

	out.Flags = Flags{
		Ampacity:      !cand.failed(CheckNoData) && !cand.failed(CheckAmpacity),
		VoltageDrop:   !cand.failed(CheckVoltageDrop),
		Disconnection: !hasCheck(out.Violations, CheckDisconnection),
		Thermal:       th.OK,
		EarthFault:    out.EarthFault == nil || out.EarthFault.Compliant,
	}
	out.Compliant = len(out.Violations) == 0

	next := c.Source.Downstream(cand.normal)
	out.NextSource = &next
	out.Steps = c.steps(out, cand)
	return nil
}

func hasCheck(vs []Violation, k Check) bool {
	for _, v := range vs {
		if v.Check == k {
			return true
		}
	}
	return false
}
