package derating

import (
	"fmt"
	"sort"

	"Ampere/internal/calc/ampacity"
	"Ampere/internal/calc/cable"
)

type point struct{ t, k float64 }

// Ambient correction, reference 30 °C in air and 20 °C in ground.
var ktAir = map[cable.Insulation][]point{
	cable.XLPE: {{10, 1.15}, {15, 1.12}, {20, 1.08}, {25, 1.04}, {30, 1.00}, {35, 0.96}, {40, 0.91}, {45, 0.87}, {50, 0.82}, {55, 0.76}, {60, 0.71}, {65, 0.65}, {70, 0.58}, {75, 0.50}, {80, 0.41}},
	cable.PVC:  {{10, 1.22}, {15, 1.17}, {20, 1.12}, {25, 1.06}, {30, 1.00}, {35, 0.94}, {40, 0.87}, {45, 0.79}, {50, 0.71}, {55, 0.61}, {60, 0.50}},
}

var ktGround = map[cable.Insulation][]point{
	cable.XLPE: {{10, 1.07}, {15, 1.04}, {20, 1.00}, {25, 0.96}, {30, 0.93}, {35, 0.89}, {40, 0.85}, {45, 0.80}, {50, 0.76}, {55, 0.71}, {60, 0.65}, {65, 0.60}, {70, 0.53}, {75, 0.46}, {80, 0.38}},
	cable.PVC:  {{10, 1.10}, {15, 1.05}, {20, 1.00}, {25, 0.95}, {30, 0.89}, {35, 0.84}, {40, 0.77}, {45, 0.71}, {50, 0.63}, {55, 0.55}, {60, 0.45}},
}

type group struct {
	n int
	k float64
}

var kgrpRow = []group{{1, 1.00}, {2, 0.80}, {3, 0.70}, {4, 0.65}, {5, 0.60}, {6, 0.57}, {7, 0.54}, {8, 0.52}, {9, 0.50}, {12, 0.45}, {16, 0.41}, {20, 0.38}}

// Kt interpolates the ambient temperature factor linearly and clamps at
// the ends of the table.
func Kt(ins cable.Insulation, ambient float64, buried bool) float64 {
	tbl := ktAir[ins]
	if buried {
		tbl = ktGround[ins]
	}
	if tbl == nil {
		tbl = ktAir[cable.XLPE]
		if buried {
			tbl = ktGround[cable.XLPE]
		}
	}
	if ambient <= tbl[0].t {
		return tbl[0].k
	}
	last := tbl[len(tbl)-1]
	if ambient >= last.t {
		return last.k
	}
	i := sort.Search(len(tbl), func(i int) bool { return tbl[i].t >= ambient })
	lo, hi := tbl[i-1], tbl[i]
	return lo.k + (hi.k-lo.k)*(ambient-lo.t)/(hi.t-lo.t)
}

// Kgrp uses the nearest lower tabulated cable count. Buried cables spaced
// more than 0.5 m apart are not derated.
func Kgrp(n int, buried bool, spacingM float64) float64 {
	if n <= 1 {
		return 1
	}
	if buried && spacingM > 0.5 {
		return 1
	}
	k := 1.0
	for _, g := range kgrpRow {
		if g.n > n {
			break
		}
		k = g.k
	}
	return k
}

// Kj is the soil factor; it only applies to buried methods.
func Kj(soil float64, buried bool) float64 {
	if !buried || soil <= 0 {
		return 1
	}
	return soil
}

type Factors struct {
	Kt   float64 `json:"kt"`
	Kj   float64 `json:"kj"`
	Kgrp float64 `json:"kgrp"`
}

func (f Factors) Total() float64 { return f.Kt * f.Kj * f.Kgrp }

// Corrected returns Iz × kt × Kj × kgrp.
func Corrected(iz float64, f Factors) float64 { return iz * f.Total() }

type Conditions struct {
	Insulation cable.Insulation
	Ambient    float64
	Grouped    int
	SpacingM   float64
	Soil       float64
}

// For works out all three factors for an installation method.
func For(method ampacity.Method, c Conditions) Factors {
	soil := c.Soil
	if soil <= 0 {
		soil = method.SoilFactor
	}
	return Factors{
		Kt:   Kt(c.Insulation, c.Ambient, method.Buried),
		Kj:   Kj(soil, method.Buried),
		Kgrp: Kgrp(c.Grouped, method.Buried, c.SpacingM),
	}
}

var bundled = []group{{2, 0.80}, {3, 0.73}, {4, 0.65}, {5, 0.60}, {6, 0.56}, {7, 0.52}, {8, 0.50}, {9, 0.48}, {10, 0.46}, {12, 0.45}}
var singleLayer = []group{{2, 0.90}, {3, 0.87}, {4, 0.85}, {5, 0.83}, {6, 0.81}, {7, 0.79}, {8, 0.78}, {9, 0.77}, {10, 0.76}, {12, 0.75}}

// BundlingWarning reports the factor for cables run together, and a warning
// once it drops under 0.7.
func BundlingWarning(n int, layer bool) (float64, string) {
	if n < 2 {
		return 1, ""
	}
	tbl := bundled
	if layer {
		tbl = singleLayer
	}
	k := tbl[0].k
	for _, g := range tbl {
		if g.n > n {
			break
		}
		k = g.k
	}
	if k < 0.7 {
		return k, fmt.Sprintf("%d cables bundled: factor %.2f, consider spreading the run", n, k)
	}
	return k, ""
}

// SoilSpacingWarning flags buried cables laid closer than 0.25 m.
func SoilSpacingWarning(n int, spacingM float64) string {
	if n > 1 && spacingM > 0 && spacingM < 0.25 {
		return fmt.Sprintf("buried cables %.2f m apart: mutual heating, minimum 0.25 m recommended", spacingM)
	}
	return ""
}

type Input struct {
	Method     string  `json:"method"`
	Insulation string  `json:"insulation"`
	AmbientC   float64 `json:"ambient_c"`
	Grouped    int     `json:"grouped"`
	SpacingM   float64 `json:"spacing_m"`
	Soil       float64 `json:"soil_factor"`
	IzTable    float64 `json:"iz_table_a"`
}

type Result struct {
	Factors
	Total       float64  `json:"total"`
	IzCorrected float64  `json:"iz_corrected_a"`
	Warnings    []string `json:"warnings,omitempty"`
}

func Calculate(in Input) (Result, error) {
	method, err := ampacity.Resolve(in.Method)
	if err != nil {
		return Result{}, err
	}
	ins, err := cable.ParseInsulation(in.Insulation)
	if err != nil {
		return Result{}, err
	}
	if err := cable.Validate(map[string]float64{
		"ambient_c": in.AmbientC, "spacing_m": in.SpacingM, "soil_factor": in.Soil, "iz_table_a": in.IzTable,
	}); err != nil {
		return Result{}, err
	}
	f := For(method, Conditions{Insulation: ins, Ambient: in.AmbientC, Grouped: in.Grouped, SpacingM: in.SpacingM, Soil: in.Soil})
	res := Result{Factors: f, Total: f.Total(), IzCorrected: Corrected(in.IzTable, f)}
	if method.Buried {
		if w := SoilSpacingWarning(in.Grouped, in.SpacingM); w != "" {
			res.Warnings = append(res.Warnings, w)
		}
	} else if _, w := BundlingWarning(in.Grouped, false); w != "" {
		res.Warnings = append(res.Warnings, w)
	}
	return res, nil
}
