package importer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"Ampere/internal/calc/fuse"
	"Ampere/internal/calc/shortcircuit"
	"Ampere/internal/calc/sizing"
)

var ErrEmptySheet = errors.New("empty sheet")

// Columns recognised in the header row. Only name, method, length_m,
// current_a and family/rating_a are required; rows repeating the previous
// name add a segment to that circuit.
var columns = []string{
	"name", "tier", "material", "phases", "voltage_v", "current_a", "cos_phi", "max_drop_pct",
	"method", "length_m", "ambient_c", "insulation", "grouped",
	"family", "rating_a", "imin_supply_a", "ik_trafo_a", "cos_trafo", "parallel",
}

var required = []string{"name", "method", "length_m", "current_a", "family", "rating_a"}

type RowError struct {
	Row   int    `json:"row"`
	Error string `json:"error"`
}

// Parse reads circuits from the first sheet of an xlsx workbook.
func Parse(r io.Reader) ([]sizing.Circuit, []RowError, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, nil, err
	}
	if len(rows) < 2 {
		return nil, nil, ErrEmptySheet
	}
	idx := header(rows[0])
	for _, c := range required {
		if _, ok := idx[c]; !ok {
			return nil, nil, fmt.Errorf("missing column %q", c)
		}
	}

	var (
		out    []sizing.Circuit
		errs   []RowError
		broken string
	)
	for i := 1; i < len(rows); i++ {
		row := cells{rows[i], idx}
		if row.blank() {
			continue
		}
		name := row.str("name")
		if n := len(out); name != "" && n > 0 && out[n-1].Name == name {
			seg, err := parseSegment(row)
			if err != nil {
				errs = append(errs, RowError{Row: i + 1, Error: err.Error()})
				continue
			}
			out[n-1].Segments = append(out[n-1].Segments, seg)
			continue
		}
		if name != "" && name == broken {
			errs = append(errs, RowError{Row: i + 1, Error: "circuit header row is invalid"})
			continue
		}
		c, err := parseCircuit(row)
		if err != nil {
			broken = name
			errs = append(errs, RowError{Row: i + 1, Error: err.Error()})
			continue
		}
		out = append(out, c)
	}
	return out, errs, nil
}

func header(row []string) map[string]int {
	idx := make(map[string]int, len(row))
	for i, h := range row {
		key := strings.ToLower(strings.TrimSpace(h))
		for _, c := range columns {
			if key == c {
				idx[c] = i
			}
		}
	}
	return idx
}

type cells struct {
	row []string
	idx map[string]int
}

func (c cells) str(col string) string {
	i, ok := c.idx[col]
	if !ok || i >= len(c.row) {
		return ""
	}
	return strings.TrimSpace(c.row[i])
}

func (c cells) blank() bool {
	for _, v := range c.row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// num parses a number, accepting a decimal comma. Empty cells are zero.
func (c cells) num(col string) (float64, error) {
	s := c.str(col)
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", col, s)
	}
	return v, nil
}

func (c cells) nums(cols ...string) ([]float64, error) {
	out := make([]float64, len(cols))
	for i, col := range cols {
		v, err := c.num(col)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseSegment(c cells) (sizing.Segment, error) {
	v, err := c.nums("length_m", "ambient_c", "grouped")
	if err != nil {
		return sizing.Segment{}, err
	}
	return sizing.Segment{
		Method:     c.str("method"),
		LengthM:    v[0],
		AmbientC:   v[1],
		Insulation: c.str("insulation"),
		Grouped:    int(v[2]),
	}, nil
}

func parseCircuit(c cells) (sizing.Circuit, error) {
	v, err := c.nums("phases", "voltage_v", "current_a", "cos_phi", "max_drop_pct",
		"rating_a", "imin_supply_a", "ik_trafo_a", "cos_trafo", "parallel")
	if err != nil {
		return sizing.Circuit{}, err
	}
	seg, err := parseSegment(c)
	if err != nil {
		return sizing.Circuit{}, err
	}
	return sizing.Circuit{
		Name:       c.str("name"),
		Tier:       sizing.Tier(strings.ToLower(c.str("tier"))),
		Material:   c.str("material"),
		Phases:     int(v[0]),
		VoltageV:   v[1],
		CurrentA:   v[2],
		CosPhi:     v[3],
		MaxDropPct: v[4],
		Segments:   []sizing.Segment{seg},
		Device:     fuse.Device{Family: c.str("family"), RatingA: v[5]},
		Source: shortcircuit.Source{
			IminSupplyA: v[6],
			IkTrafoA:    v[7],
			CosTrafo:    v[8],
		},
		Parallel: int(v[9]),
	}, nil
}
