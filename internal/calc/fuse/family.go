package fuse

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
)

var (
	ErrRatingUnavailable   = errors.New("fuse rating unavailable")
	ErrUnknownFamily       = errors.New("unknown fuse family")
	ErrUnknownManufacturer = errors.New("unknown manufacturer")
)

// Kind separates melting fuses from circuit breakers.
type Kind string

const (
	MeltingFuse Kind = "fuse"
	Breaker     Kind = "breaker"
)

// Axis is the unit of a curve's current axis.
type Axis string

const (
	Absolute   Axis = "absolute"
	Multiplier Axis = "multiplier"
)

// Point is one curve sample: current in amperes (or multiple of the
// rating) and time in seconds.
type Point struct {
	X float64 `json:"x"`
	T float64 `json:"t"`
}

type Curve []Point

// Family describes a device family once so callers never classify devices
// by name.
type Family struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Kind       Kind    `json:"kind"`
	Axis       Axis    `json:"axis"`
	IminFactor float64 `json:"imin_factor"`

	aliases []string
	ratings []float64
	curve   func(rating float64) Curve
}

func (f *Family) Melting() bool { return f.Kind == MeltingFuse }

// Ratings lists the rated currents with curve data, ascending.
func (f *Family) Ratings() []float64 {
	return append([]float64(nil), f.ratings...)
}

func (f *Family) has(rating float64) bool {
	for _, r := range f.ratings {
		if r == rating {
			return true
		}
	}
	return false
}

func keys(m map[float64]Curve) []float64 {
	out := make([]float64, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Float64s(out)
	return out
}

func fromTable(m map[float64]Curve) func(float64) Curve {
	return func(r float64) Curve { return m[r] }
}

// scaledShape turns the normalised gG shape into an absolute curve.
func scaledShape(r float64) Curve {
	out := make(Curve, len(gGShape))
	for i, p := range gGShape {
		out[i] = Point{X: p.X * r, T: p.T}
	}
	return out
}

var (
	Diazed = &Family{
		ID: "diazed", Name: "Diazed gG D2/D3/D4", Kind: MeltingFuse, Axis: Absolute, IminFactor: 5,
		aliases: []string{"diazed d2/d3/d4", "diazed gg", "d2/d3/d4"},
		ratings: keys(diazedCurves), curve: fromTable(diazedCurves),
	}
	Neozed = &Family{
		ID: "neozed", Name: "Neozed gG D01/D02/D03", Kind: MeltingFuse, Axis: Absolute, IminFactor: 5,
		aliases: []string{"neozed gg", "d01/d02/d03"},
		ratings: keys(neozedCurves), curve: fromTable(neozedCurves),
	}
	NH00 = &Family{
		ID: "nh00", Name: "NH00 gG", Kind: MeltingFuse, Axis: Absolute, IminFactor: 5,
		ratings: []float64{2, 4, 6, 10, 16, 20, 25, 32, 35, 40, 50, 63, 80, 100, 125, 160},
		curve:   scaledShape,
	}
	NH0 = &Family{
		ID: "nh0", Name: "NH0 gG", Kind: MeltingFuse, Axis: Absolute, IminFactor: 5,
		ratings: []float64{6, 10, 16, 20, 25, 32, 35, 40, 50, 63, 80, 100, 125, 160},
		curve:   scaledShape,
	}
	NH1 = &Family{
		ID: "nh1", Name: "NH1 gG", Kind: MeltingFuse, Axis: Absolute, IminFactor: 5,
		ratings: []float64{16, 20, 25, 35, 40, 50, 63, 80, 100, 125, 160, 200, 224, 250},
		curve:   scaledShape,
	}
	MCBB = &Family{
		ID: "mcb-b", Name: "MCB type B", Kind: Breaker, Axis: Multiplier, IminFactor: 5,
		aliases: []string{"mcb b", "b"},
		ratings: mcbRatings, curve: mcbCurve('B'),
	}
	MCBC = &Family{
		ID: "mcb-c", Name: "MCB type C", Kind: Breaker, Axis: Multiplier, IminFactor: 10,
		aliases: []string{"mcb c", "c"},
		ratings: mcbRatings, curve: mcbCurve('C'),
	}
	MCBD = &Family{
		ID: "mcb-d", Name: "MCB type D", Kind: Breaker, Axis: Multiplier, IminFactor: 20,
		aliases: []string{"mcb d", "d"},
		ratings: mcbRatings, curve: mcbCurve('D'),
	}
)

var families = []*Family{Diazed, Neozed, NH00, NH0, NH1, MCBB, MCBC, MCBD}

// Families returns every registered family.
func Families() []*Family { return append([]*Family(nil), families...) }

// FamilyByID matches an ID, display name or alias, ignoring case.
func FamilyByID(id string) (*Family, error) {
	key := strings.ToLower(strings.TrimSpace(id))
	for _, f := range families {
		if key == f.ID || key == strings.ToLower(f.Name) {
			return f, nil
		}
		for _, a := range f.aliases {
			if key == a {
				return f, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, id)
}

// RatingError lists the ratings a family does offer.
type RatingError struct {
	Family    string
	Rating    float64
	Available []float64
}

func (e *RatingError) Error() string {
	return fmt.Sprintf("%s: no curve for %g A, available %v", e.Family, e.Rating, e.Available)
}

func (e *RatingError) Unwrap() error { return ErrRatingUnavailable }

const DefaultManufacturer = "standard"

// Spec is one device: a family at a rating with its curve.
type Spec struct {
	Family *Family `json:"family"`
	Rating float64 `json:"rating_a"`
	curve  Curve
}

// Lookup finds the curve for a device. Only the built-in catalogue is
// available; an empty manufacturer selects it.
func Lookup(manufacturer, family string, rating float64) (Spec, error) {
	switch strings.ToLower(strings.TrimSpace(manufacturer)) {
	case "", DefaultManufacturer, "generic":
	default:
		return Spec{}, fmt.Errorf("%w: %q", ErrUnknownManufacturer, manufacturer)
	}
	f, err := FamilyByID(family)
	if err != nil {
		return Spec{}, err
	}
	if math.IsNaN(rating) || !f.has(rating) {
		return Spec{}, &RatingError{Family: f.Name, Rating: rating, Available: f.Ratings()}
	}
	return Spec{Family: f, Rating: rating, curve: f.curve(rating)}, nil
}

func (s Spec) Melting() bool { return s.Family != nil && s.Family.Melting() }

// Imin is the minimum current the device is assumed to need to clear a
// fault, In × IminFactor.
func (s Spec) Imin() float64 { return s.Rating * s.Family.IminFactor }

// Curve returns the characteristic on its native axis.
func (s Spec) Curve() Curve { return append(Curve(nil), s.curve...) }

// Absolute returns the characteristic with the current axis in amperes.
func (s Spec) Absolute() Curve {
	out := s.Curve()
	if s.Family.Axis == Multiplier {
		for i := range out {
			out[i].X *= s.Rating
		}
	}
	return out
}

func (s Spec) String() string { return fmt.Sprintf("%s %g A", s.Family.Name, s.Rating) }
