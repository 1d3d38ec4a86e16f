package recommend

import (
	"fmt"
	"strings"

	"Ampere/internal/calc/cable"
	"Ampere/internal/calc/fuse"
)

type Input struct {
	Family string  `json:"family"`
	LoadA  float64 `json:"load_a"`
	IkMinA float64 `json:"ik_min_a"`
	Method string  `json:"method"`
}

type Result struct {
	Family    string    `json:"family"`
	RatingA   float64   `json:"rating_a"`
	Available []float64 `json:"available_ratings"`
	Notes     string    `json:"notes"`
}

// Rating returns the smallest rating of the family that carries load.
func Rating(f *fuse.Family, load float64) (float64, error) {
	for _, r := range f.Ratings() {
		if r >= load {
			return r, nil
		}
	}
	return 0, &fuse.RatingError{Family: f.Name, Rating: load, Available: f.Ratings()}
}

// BreakerFamily picks the MCB curve. With a known Ik,min the thresholds
// are 100 A and 200 A; without one, the rating and installation decide.
func BreakerFamily(ikMin, rating float64, method string) *fuse.Family {
	if ikMin > 0 {
		switch {
		case ikMin > 200:
			return fuse.MCBD
		case ikMin > 100:
			return fuse.MCBC
		}
		return fuse.MCBB
	}
	if rating > 63 {
		return fuse.MCBD
	}
	m := strings.ToUpper(strings.TrimSpace(method))
	if rating <= 16 && (strings.HasPrefix(m, "A") || strings.HasPrefix(m, "B") || m == "C") {
		return fuse.MCBB
	}
	return fuse.MCBC
}

func Device(in Input) (Result, error) {
	if err := cable.Validate(map[string]float64{"load_a": in.LoadA, "ik_min_a": in.IkMinA}); err != nil {
		return Result{}, err
	}
	if in.LoadA <= 0 {
		return Result{}, fmt.Errorf("%w: load current required", cable.ErrInvalidInput)
	}
	var fam *fuse.Family
	notes := "Smallest rating carrying the load."
	if in.Family == "" || strings.EqualFold(in.Family, "mcb") {
		// Rate on type C first; all breaker types share the same ratings.
		r, err := Rating(fuse.MCBC, in.LoadA)
		if err != nil {
			return Result{}, err
		}
		fam = BreakerFamily(in.IkMinA, r, in.Method)
		notes = fmt.Sprintf("%s chosen for Ik,min %.0f A.", fam.Name, in.IkMinA)
		if in.IkMinA > 0 && in.IkMinA <= 50 {
			notes += " Ik,min is very low, check the loop impedance."
		}
	} else {
		var err error
		if fam, err = fuse.FamilyByID(in.Family); err != nil {
			return Result{}, err
		}
	}
	r, err := Rating(fam, in.LoadA)
	if err != nil {
		return Result{}, err
	}
	return Result{Family: fam.ID, RatingA: r, Available: fam.Ratings(), Notes: notes}, nil
}
