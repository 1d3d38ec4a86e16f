package sizing

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"Ampere/internal/calc/ampacity"
	"Ampere/internal/calc/cable"
	"Ampere/internal/calc/earthfault"
	"Ampere/internal/calc/fuse"
	"Ampere/internal/calc/impedance"
	"Ampere/internal/calc/shortcircuit"
	"Ampere/internal/calc/thermal"
)

var ErrUpstreamUnresolved = errors.New("upstream tier unresolved")

// DefaultMaxTripTime is the disconnection ceiling for melting fuses
// protecting feeder-class circuits.
const DefaultMaxTripTime = 5.0

// Tier is the position of a circuit in the supply chain.
type Tier string

const (
	Service      Tier = "service"
	Distribution Tier = "distribution"
	Group        Tier = "group"
)

// Default voltage-drop limit per tier, in percent.
var defaultMaxDrop = map[Tier]float64{Service: 1.0, Distribution: 1.0, Group: 5.0}

type Segment struct {
	Name       string  `json:"name"`
	Method     string  `json:"method"`
	LengthM    float64 `json:"length_m"`
	AmbientC   float64 `json:"ambient_c"`
	Insulation string  `json:"insulation"`
	Grouped    int     `json:"grouped"`
	SpacingM   float64 `json:"spacing_m"`
	Soil       float64 `json:"soil_factor"`
	Loaded     int     `json:"loaded_conductors"`
	SizeMM2    float64 `json:"size_mm2"`
}

// EarthFault selects the earthing system check run on the chosen size.
type EarthFault struct {
	System       string  `json:"system"`
	SourceZsOhm  float64 `json:"source_zs_ohm"`
	RaOhm        float64 `json:"ra_ohm"`
	Construction string  `json:"construction"`
	Class        string  `json:"class"`
	PEMM2        float64 `json:"pe_mm2"`
	Socket       bool    `json:"socket"`
	Bathroom     bool    `json:"bathroom"`
	Outdoor      bool    `json:"outdoor"`
	PEProtected  bool    `json:"pe_protected"`
}

// Circuit is one cable run from its source to its load.
type Circuit struct {
	Name         string              `json:"name"`
	Tier         Tier                `json:"tier"`
	Material     string              `json:"material"`
	Phases       int                 `json:"phases"`
	VoltageV     float64             `json:"voltage_v"`
	CurrentA     float64             `json:"current_a"`
	CosPhi       float64             `json:"cos_phi"`
	MaxDropPct   float64             `json:"max_drop_pct"`
	Segments     []Segment           `json:"segments"`
	Device       fuse.Device         `json:"device"`
	Source       shortcircuit.Source `json:"source"`
	Parallel     int                 `json:"parallel"`
	Manual       bool                `json:"manual"`
	MaxTripTimeS float64             `json:"max_trip_time_s"`
	K            float64             `json:"k"`
	Formula      impedance.Formula   `json:"formula"`
	EarthFault   *EarthFault         `json:"earth_fault,omitempty"`
}

// segment is a Segment with its method and insulation resolved.
type segment struct {
	Segment
	method     ampacity.Method
	insulation cable.Insulation
	loaded     int
}

// circuit is a validated Circuit with defaults applied.
type circuit struct {
	Circuit
	material cable.Material
	phases   cable.Phases
	device   fuse.Spec
	segments []segment
	parallel int
	maxTrip  float64
	k        float64
	earth    *earthfault.Params
}

func (c Circuit) prepare() (*circuit, error) {
	if err := cable.Validate(map[string]float64{
		"voltage_v": c.VoltageV, "current_a": c.CurrentA, "cos_phi": c.CosPhi, "max_drop_pct": c.MaxDropPct,
		"max_trip_time_s": c.MaxTripTimeS, "k": c.K,
	}); err != nil {
		return nil, err
	}
	p := &circuit{Circuit: c}
	var err error
	if p.material, err = cable.ParseMaterial(c.Material); err != nil {
		return nil, err
	}
	if p.Tier == "" {
		p.Tier = Group
	}
	if _, ok := defaultMaxDrop[p.Tier]; !ok {
		return nil, fmt.Errorf("%w: tier %q", cable.ErrInvalidInput, c.Tier)
	}
	if p.Phases == 0 {
		p.Phases = 3
	}
	if p.Phases != 1 && p.Phases != 3 {
		return nil, fmt.Errorf("%w: phases must be 1 or 3", cable.ErrInvalidInput)
	}
	p.phases = cable.Phases(p.Phases)
	p.VoltageV = c.nominalVoltage()
	if p.CosPhi == 0 {
		p.CosPhi = 1
	}
	if p.MaxDropPct == 0 {
		p.MaxDropPct = defaultMaxDrop[p.Tier]
	}
	switch {
	case p.VoltageV < 0:
		return nil, fmt.Errorf("%w: voltage must be positive", cable.ErrInvalidInput)
	case p.CurrentA <= 0:
		return nil, fmt.Errorf("%w: current must be positive", cable.ErrInvalidInput)
	case p.CosPhi < 0 || p.CosPhi > 1:
		return nil, fmt.Errorf("%w: power factor must be in (0, 1]", cable.ErrInvalidInput)
	case p.MaxDropPct < 0:
		return nil, fmt.Errorf("%w: voltage-drop limit", cable.ErrInvalidInput)
	case len(c.Segments) == 0:
		return nil, fmt.Errorf("%w: no segments", cable.ErrInvalidInput)
	}
	switch p.Formula {
	case "":
		p.Formula = impedance.FormulaImpedance
	case impedance.FormulaImpedance, impedance.FormulaResistivity:
	default:
		return nil, fmt.Errorf("%w: formula %q", cable.ErrInvalidInput, c.Formula)
	}

	if p.device, err = c.Device.Spec(); err != nil {
		return nil, err
	}
	p.parallel = c.Parallel
	if p.parallel < 1 {
		p.parallel = 1
	}
	p.maxTrip = c.MaxTripTimeS
	if p.maxTrip <= 0 {
		p.maxTrip = DefaultMaxTripTime
	}
	p.k = c.K
	if p.k <= 0 {
		p.k = thermal.K(p.material)
	}

	if p.Source.VoltageV == 0 {
		p.Source.VoltageV = p.VoltageV
	}
	if _, err := p.Source.SupplyMin(); err != nil {
		return nil, err
	}

	for i, s := range c.Segments {
		if err := cable.Validate(map[string]float64{
			"length_m": s.LengthM, "ambient_c": s.AmbientC, "spacing_m": s.SpacingM, "soil_factor": s.Soil, "size_mm2": s.SizeMM2,
		}); err != nil {
			return nil, fmt.Errorf("segment %d: %w", i+1, err)
		}
		if s.LengthM < 0 || s.SpacingM < 0 || s.Soil < 0 || s.SizeMM2 < 0 || s.Grouped < 0 {
			return nil, fmt.Errorf("%w: segment %d has a negative figure", cable.ErrInvalidInput, i+1)
		}
		if c.Manual && s.SizeMM2 == 0 {
			return nil, fmt.Errorf("%w: segment %d needs a cross-section in manual mode", cable.ErrInvalidInput, i+1)
		}
		seg := segment{Segment: s}
		if seg.method, err = ampacity.Resolve(s.Method); err != nil {
			return nil, fmt.Errorf("segment %d: %w", i+1, err)
		}
		if seg.insulation, err = cable.ParseInsulation(s.Insulation); err != nil {
			return nil, fmt.Errorf("segment %d: %w", i+1, err)
		}
		if seg.Name == "" {
			seg.Name = fmt.Sprintf("Segment %d", i+1)
		}
		if seg.AmbientC == 0 {
			seg.AmbientC = 30
			if seg.method.Buried {
				seg.AmbientC = 20
			}
		}
		seg.loaded = s.Loaded
		if seg.loaded == 0 {
			seg.loaded = p.phases.LoadedConductors()
		}
		p.segments = append(p.segments, seg)
	}

	if ef := c.EarthFault; ef != nil {
		if err := cable.Validate(map[string]float64{
			"source_zs_ohm": ef.SourceZsOhm, "ra_ohm": ef.RaOhm, "pe_mm2": ef.PEMM2,
		}); err != nil {
			return nil, err
		}
		sys := earthfault.System(strings.ToUpper(strings.TrimSpace(ef.System)))
		if sys == "" {
			sys = earthfault.TN
		}
		class := earthfault.Class(strings.ToLower(ef.Class))
		if class == "" {
			class = earthfault.Final
			if p.Tier != Group {
				class = earthfault.Distribution
			}
		}
		construction := cable.Construction(strings.ToLower(ef.Construction))
		if construction == "" {
			construction = cable.MultiCore
		}
		p.earth = &earthfault.Params{
			System:       sys,
			VoltageV:     phaseToEarth(p.VoltageV, p.phases),
			SourceZsOhm:  ef.SourceZsOhm,
			RaOhm:        ef.RaOhm,
			Material:     p.material,
			Construction: construction,
			Device:       p.device,
			Class:        class,
			Socket:       ef.Socket,
			Bathroom:     ef.Bathroom,
			Outdoor:      ef.Outdoor,
			PEProtected:  ef.PEProtected,
		}
	}
	return p, nil
}

// nominalVoltage defaults to 400 V three-phase and 230 V single-phase.
func (c Circuit) nominalVoltage() float64 {
	switch {
	case c.VoltageV != 0:
		return c.VoltageV
	case c.Phases == 1:
		return 230
	}
	return 400
}

// phaseToEarth is U₀ for the circuit's nominal voltage.
func phaseToEarth(v float64, p cable.Phases) float64 {
	if p.Single() {
		return v
	}
	return v / math.Sqrt(3)
}

// required is the current each parallel conductor must carry.
func (c *circuit) required() float64 { return c.CurrentA / float64(c.parallel) }

func (c *circuit) load() impedance.Load {
	return impedance.Load{CurrentA: c.required(), CosPhi: c.CosPhi, Phases: c.phases, VoltageV: c.VoltageV}
}

// ladder returns the candidate sizes. Group circuits keep single-phase
// copper at 35 mm² or below.
func (c *circuit) ladder() []float64 {
	return cable.Ladder(c.material, c.phases, c.Tier == Group)
}
