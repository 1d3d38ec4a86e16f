package ampacity

import (
	"fmt"

	"Ampere/internal/calc/cable"
)

// Lookup returns the tabulated ampacity for one reference method, or 0 when
// the table has no entry. A size between tabulated sizes takes the nearest
// lower tabulated value.
func Lookup(m cable.Material, ins cable.Insulation, ref Ref, size float64, loaded int) float64 {
	if loaded != 2 {
		loaded = 3
	}
	col, ok := tables[tableKey{m, ins, ref, loaded}]
	if !ok {
		return 0
	}
	iz := 0.0
	for i, s := range col.sizes {
		if s > size {
			break
		}
		iz = col.amps[i]
	}
	return iz
}

// LookupMethod returns the lowest ampacity among the method's reference
// methods. Any untabulated reference makes the result 0.
func LookupMethod(m cable.Material, ins cable.Insulation, method Method, size float64, loaded int) (float64, Ref) {
	best, bestRef := 0.0, Ref("")
	for i, r := range method.Refs {
		iz := Lookup(m, ins, r, size, loaded)
		if iz == 0 {
			return 0, r
		}
		if i == 0 || iz < best {
			best, bestRef = iz, r
		}
	}
	return best, bestRef
}

type Input struct {
	Material   string  `json:"material"`
	Insulation string  `json:"insulation"`
	Method     string  `json:"method"`
	SizeMM2    float64 `json:"size_mm2"`
	Loaded     int     `json:"loaded_conductors"`
}

type Result struct {
	Method    Method  `json:"method"`
	Ref       Ref     `json:"ref"`
	Iz        float64 `json:"iz_a"`
	Tabulated bool    `json:"tabulated"`
	Ladder    []Rung  `json:"ladder"`
}

type Rung struct {
	SizeMM2 float64 `json:"size_mm2"`
	Iz      float64 `json:"iz_a"`
}

func Calculate(in Input) (Result, error) {
	mat, err := cable.ParseMaterial(in.Material)
	if err != nil {
		return Result{}, err
	}
	ins, err := cable.ParseInsulation(in.Insulation)
	if err != nil {
		return Result{}, err
	}
	method, err := Resolve(in.Method)
	if err != nil {
		return Result{}, err
	}
	if err := cable.Validate(map[string]float64{"size_mm2": in.SizeMM2}); err != nil {
		return Result{}, err
	}
	if in.SizeMM2 < 0 {
		return Result{}, fmt.Errorf("%w: negative size", cable.ErrInvalidInput)
	}
	iz, ref := LookupMethod(mat, ins, method, in.SizeMM2, in.Loaded)
	res := Result{Method: method, Ref: ref, Iz: iz, Tabulated: iz > 0}
	for _, s := range cable.StandardSizes {
		v, _ := LookupMethod(mat, ins, method, s, in.Loaded)
		res.Ladder = append(res.Ladder, Rung{SizeMM2: s, Iz: v})
	}
	return res, nil
}
