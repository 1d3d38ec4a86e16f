package ampacity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrUnknownMethod = errors.New("unknown installation method")

// Ref is a reference installation method.
type Ref string

const (
	A1 Ref = "A1"
	A2 Ref = "A2"
	B1 Ref = "B1"
	B2 Ref = "B2"
	C  Ref = "C"
	D1 Ref = "D1"
	D2 Ref = "D2"
	E  Ref = "E"
	F  Ref = "F"
	G  Ref = "G"
)

// Buried reports whether the reference method is laid in ground.
func (r Ref) Buried() bool { return strings.HasPrefix(string(r), "D") }

// Tabulated reports whether ampacity data exists for the reference method.
func (r Ref) Tabulated() bool {
	switch r {
	case A1, A2, B1, B2, C, D1, D2:
		return true
	}
	return false
}

// Method is a resolved installation method. Numbered methods may name
// several reference methods; Refs keeps them in table order.
type Method struct {
	Code        string  `json:"code"`
	Refs        []Ref   `json:"refs"`
	Buried      bool    `json:"buried"`
	SoilFactor  float64 `json:"soil_factor"`
	Description string  `json:"description"`
}

type numbered struct {
	refs []Ref
	kj   float64
	desc string
}

var installation = map[int]numbered{
	1:  {[]Ref{A1}, 1, "Insulated conductors or single-core cables in conduit in a thermally insulated wall"},
	2:  {[]Ref{A2}, 1, "Multi-core cables in conduit in a thermally insulated wall"},
	3:  {[]Ref{A1}, 1, "Multi-core cable direct in a thermally insulated wall"},
	4:  {[]Ref{B1}, 1, "Insulated conductors or single-core cables in conduit on a wooden or masonry wall"},
	5:  {[]Ref{B2}, 1, "Multi-core cables in conduit on a wooden or masonry wall"},
	6:  {[]Ref{B1}, 1, "Insulated conductors or single-core cables in trunking on a wall, horizontal"},
	7:  {[]Ref{B1}, 1, "Insulated conductors or single-core cables in trunking on a wall, vertical"},
	8:  {[]Ref{B2}, 1, "Multi-core cables in trunking on a wall, horizontal"},
	9:  {[]Ref{B2}, 1, "Multi-core cables in trunking on a wall, vertical"},
	10: {[]Ref{B1}, 1, "Insulated conductors or single-core cables in suspended trunking"},
	11: {[]Ref{B2}, 1, "Multi-core cable in suspended trunking"},
	12: {[]Ref{A1}, 1, "Insulated conductors or single-core cables run in mouldings"},
	15: {[]Ref{A1}, 1, "Conductors in conduit or cables in architrave"},
	16: {[]Ref{A1}, 1, "Conductors in conduit or cables in window frames"},
	20: {[]Ref{C}, 1, "Cables fixed on, or spaced less than 0.3 x diameter from, a wooden or masonry wall"},
	21: {[]Ref{C}, 1, "Cables fixed directly under a wooden or masonry ceiling"},
	22: {[]Ref{E}, 1, "Cables spaced from a ceiling"},
	23: {[]Ref{C}, 1, "Fixed installation of suspended current-using equipment"},
	30: {[]Ref{C}, 1, "Cables on unperforated trays"},
	31: {[]Ref{E, F}, 1, "Cables on perforated trays"},
	32: {[]Ref{E, F}, 1, "Cables on brackets or wire mesh trays"},
	33: {[]Ref{E, F, G}, 1, "Cables spaced more than 0.3 x diameter from a wall"},
	34: {[]Ref{E, F}, 1, "Cables on ladders"},
	35: {[]Ref{E, F}, 1, "Cable suspended from or incorporating a support wire"},
	36: {[]Ref{G}, 1, "Bare or insulated conductors on insulators"},
	40: {[]Ref{B1, B2}, 1, "Cables in a building void"},
	41: {[]Ref{B1, B2}, 1, "Insulated conductor in conduit in a building void"},
	42: {[]Ref{B1, B2}, 1, "Cables in conduit in a building void"},
	43: {[]Ref{B1, B2}, 1, "Insulated conductors in cable ducting in a building void"},
	44: {[]Ref{B1, B2}, 1, "Cables in cable ducting in a building void"},
	45: {[]Ref{B1, B2}, 1, "Insulated conductors in cable ducting in masonry"},
	46: {[]Ref{B1, B2}, 1, "Cables in cable ducting in masonry"},
	47: {[]Ref{B1, B2}, 1, "Cables in a ceiling void or under a raised floor"},
	50: {[]Ref{B1}, 1, "Insulated conductors or single-core cable in flush floor trunking"},
	51: {[]Ref{B2}, 1, "Multi-core cable in flush floor trunking"},
	52: {[]Ref{B1}, 1, "Insulated conductors or single-core cables in embedded trunking"},
	53: {[]Ref{B2}, 1, "Multi-core cable in embedded trunking"},
	54: {[]Ref{B1, B2}, 1, "Conductors in conduit in an unventilated cable channel"},
	55: {[]Ref{B1}, 1, "Insulated conductors in conduit in an open or ventilated floor channel"},
	56: {[]Ref{B1}, 1, "Sheathed cables in an open or ventilated floor channel"},
	57: {[]Ref{C}, 1, "Cables direct in masonry without added mechanical protection"},
	58: {[]Ref{C}, 1, "Cables direct in masonry with added mechanical protection"},
	59: {[]Ref{B1}, 1, "Insulated conductors or single-core cables in conduit in masonry"},
	60: {[]Ref{B2}, 1, "Multi-core cables in conduit in masonry"},
	70: {[]Ref{D1}, 1, "Multi-core cable in conduit or ducting in the ground"},
	71: {[]Ref{D1}, 1, "Single-core cable in conduit or ducting in the ground"},
	72: {[]Ref{D2}, 1.5, "Sheathed cables direct in the ground without added mechanical protection"},
	73: {[]Ref{D2}, 1.5, "Sheathed cables direct in the ground with added mechanical protection"},
}

// Resolve accepts a numbered installation method ("1".."73") or a
// reference method code ("C", "D2", "B1/B2").
func Resolve(code string) (Method, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if n, err := strconv.Atoi(code); err == nil {
		m, ok := installation[n]
		if !ok {
			return Method{}, fmt.Errorf("%w: %d", ErrUnknownMethod, n)
		}
		return Method{
			Code:        code,
			Refs:        m.refs,
			Buried:      m.refs[0].Buried(),
			SoilFactor:  m.kj,
			Description: m.desc,
		}, nil
	}
	var refs []Ref
	for _, part := range strings.Split(code, "/") {
		r := Ref(strings.TrimSpace(part))
		switch r {
		case A1, A2, B1, B2, C, D1, D2, E, F, G:
			refs = append(refs, r)
		default:
			return Method{}, fmt.Errorf("%w: %q", ErrUnknownMethod, code)
		}
	}
	return Method{Code: code, Refs: refs, Buried: refs[0].Buried(), SoilFactor: 1}, nil
}

// Numbers lists the defined numbered methods in ascending order.
func Numbers() []int {
	out := make([]int, 0, len(installation))
	for n := 1; n <= 73; n++ {
		if _, ok := installation[n]; ok {
			out = append(out, n)
		}
	}
	return out
}
