// Package cable holds the conductor vocabulary shared by the calculation
// tools: materials, insulation classes, phase systems and the standard
// cross-section ladder.
package cable

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

var ErrInvalidInput = errors.New("invalid input")

type Material string

const (
	Copper    Material = "Cu"
	Aluminium Material = "Al"
)

func ParseMaterial(s string) (Material, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cu", "copper", "kobber", "":
		return Copper, nil
	case "al", "aluminium", "aluminum":
		return Aluminium, nil
	}
	return "", fmt.Errorf("%w: material %q", ErrInvalidInput, s)
}

type Insulation string

const (
	XLPE Insulation = "XLPE"
	PVC  Insulation = "PVC"
)

func ParseInsulation(s string) (Insulation, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "XLPE", "PEX", "":
		return XLPE, nil
	case "PVC":
		return PVC, nil
	}
	return "", fmt.Errorf("%w: insulation %q", ErrInvalidInput, s)
}

// Phases is 1 or 3. The zero value is treated as three-phase.
type Phases int

const (
	SinglePhase Phases = 1
	ThreePhase  Phases = 3
)

func (p Phases) Single() bool { return p == SinglePhase }

// LoadedConductors is the count used to pick the ampacity column.
func (p Phases) LoadedConductors() int {
	if p.Single() {
		return 2
	}
	return 3
}

type Construction string

const (
	MultiCore  Construction = "multi-core"
	SingleCore Construction = "single-core"
)

var StandardSizes = []float64{1.5, 2.5, 4, 6, 10, 16, 25, 35, 50, 70, 95, 120, 150, 185, 240, 300, 400}

// Ladder returns the candidate sizes for a material and phase system.
// Aluminium starts at 16 mm². With limitSingle set, single-phase copper
// stops at 35 mm².
func Ladder(m Material, p Phases, limitSingle bool) []float64 {
	out := make([]float64, 0, len(StandardSizes))
	for _, s := range StandardSizes {
		if m == Aluminium && s < 16 {
			continue
		}
		if limitSingle && m == Copper && p.Single() && s > 35 {
			continue
		}
		out = append(out, s)
	}
	return out
}

// IsStandard reports whether s is on the standard ladder.
func IsStandard(s float64) bool {
	for _, v := range StandardSizes {
		if v == s {
			return true
		}
	}
	return false
}

// Validate rejects NaN and infinite values. Fields are checked in name
// order so the reported field is stable.
func Validate(fields map[string]float64) error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if v := fields[name]; math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not a finite number", ErrInvalidInput, name)
		}
	}
	return nil
}

// Float marshals non-finite values as null.
type Float float64

func (f Float) Finite() bool {
	v := float64(f)
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (f Float) MarshalJSON() ([]byte, error) {
	if !f.Finite() {
		return []byte("null"), nil
	}
	return json.Marshal(float64(f))
}

func (f *Float) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = Float(math.Inf(1))
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

func (f Float) String() string {
	if !f.Finite() {
		return "∞"
	}
	return fmt.Sprintf("%.4g", float64(f))
}
