package thermal

import (
	"fmt"
	"math"

	"Ampere/internal/calc/cable"
)

// K is the adiabatic constant of the conductor material. Insulation class
// does not change it here.
func K(m cable.Material) float64 {
	if m == cable.Aluminium {
		return 94
	}
	return 143
}

type Check struct {
	K           float64     `json:"k"`
	SizeMM2     float64     `json:"size_mm2"`
	IkMinA      float64     `json:"ik_min_a"`
	TripTimeS   cable.Float `json:"trip_time_s"`
	CableEnergy float64     `json:"cable_energy_a2s"`
	LetThrough  cable.Float `json:"let_through_a2s"`
	OK          bool        `json:"ok"`
}

// Verify compares (k·S)² with Ik,min²·t. An unbounded trip time never
// passes.
func Verify(k, size, ikMin, trip float64) Check {
	eCable := math.Pow(k*size, 2)
	eLet := ikMin * ikMin * trip
	if math.IsInf(trip, 1) {
		eLet = math.Inf(1)
	}
	return Check{
		K:           k,
		SizeMM2:     size,
		IkMinA:      ikMin,
		TripTimeS:   cable.Float(trip),
		CableEnergy: eCable,
		LetThrough:  cable.Float(eLet),
		OK:          !math.IsNaN(eLet) && eCable >= eLet,
	}
}

// MinimumSize is the smallest cross-section that withstands I²t,
// S = √(I²t)/k.
func MinimumSize(ik, t, k float64) float64 {
	if k <= 0 || ik <= 0 || t <= 0 {
		return 0
	}
	return math.Sqrt(ik*ik*t) / k
}

// MinimumStandardSize rounds MinimumSize up to the ladder; ok is false
// when nothing on the ladder is large enough.
func MinimumStandardSize(ik, t, k float64) (float64, bool) {
	need := MinimumSize(ik, t, k)
	for _, s := range cable.StandardSizes {
		if s >= need {
			return s, true
		}
	}
	return 0, false
}

type Input struct {
	Material  string  `json:"material"`
	K         float64 `json:"k"`
	SizeMM2   float64 `json:"size_mm2"`
	IkMinA    float64 `json:"ik_min_a"`
	TripTimeS float64 `json:"trip_time_s"`
}

type Result struct {
	Check
	MinimumMM2  float64 `json:"minimum_mm2"`
	StandardMM2 float64 `json:"standard_mm2,omitempty"`
}

func Calculate(in Input) (Result, error) {
	mat, err := cable.ParseMaterial(in.Material)
	if err != nil {
		return Result{}, err
	}
	if err := cable.Validate(map[string]float64{
		"k": in.K, "size_mm2": in.SizeMM2, "ik_min_a": in.IkMinA, "trip_time_s": in.TripTimeS,
	}); err != nil {
		return Result{}, err
	}
	if in.SizeMM2 <= 0 || in.IkMinA < 0 || in.TripTimeS < 0 {
		return Result{}, fmt.Errorf("%w: size, current and time", cable.ErrInvalidInput)
	}
	k := in.K
	if k <= 0 {
		k = K(mat)
	}
	res := Result{Check: Verify(k, in.SizeMM2, in.IkMinA, in.TripTimeS)}
	res.MinimumMM2 = MinimumSize(in.IkMinA, in.TripTimeS, k)
	res.StandardMM2, _ = MinimumStandardSize(in.IkMinA, in.TripTimeS, k)
	return res, nil
}
