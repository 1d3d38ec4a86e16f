package report

import (
	"fmt"

	"Ampere/internal/calc/cable"
	"Ampere/internal/calc/shortcircuit"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Summary"
	segmentSheet = "Segments"
	stepSheet    = "Steps"
	defaultSheet = "Sheet1"
)

// Workbook exports the chain as a spreadsheet with one sheet per view.
func (d *Document) Workbook() (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(defaultSheet, summarySheet); err != nil {
		return nil, err
	}
	for _, name := range []string{segmentSheet, stepSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
	}

	summary := [][]interface{}{{
		"Tier", "Name", "Level", "Selection", "Size (mm²)", "Parallel", "Device",
		"Ik,min (A)", "Ik,max (A)", "Trip time (s)", "ΔU (%)", "ΔU limit (%)", "Compliant", "Error",
	}}
	segments := [][]interface{}{{
		"Tier", "Segment", "Method", "Length (m)", "Ambient (°C)", "Size (mm²)",
		"kt", "kgrp", "Kj", "Iz (A)", "Iz corrected (A)", "Required (A)", "ΔU (V)", "ΔU (%)",
	}}
	steps := [][]interface{}{{"Tier", "Category", "Title", "Line"}}

	for i, r := range d.Results {
		c := d.Tiers[i]
		o := r.Outcome
		if o == nil {
			summary = append(summary, []interface{}{i + 1, c.Name, string(c.Tier), "", nil, nil, "", nil, nil, nil, nil, nil, false, r.Error})
			continue
		}
		summary = append(summary, []interface{}{
			i + 1, c.Name, string(o.Tier), string(o.Selection), o.SizeMM2, o.Parallel, o.Device,
			current(o.IkMin), current(o.IkMax), number(o.TripTimeS), o.Drop.Percent, o.MaxDropPct, o.Compliant, "",
		})
		for _, s := range o.Segments {
			segments = append(segments, []interface{}{
				i + 1, s.Name, s.Method, s.LengthM, s.AmbientC, s.SizeMM2,
				s.Kt, s.Kgrp, s.Kj, s.IzA, s.IzCorrectedA, s.RequiredA, s.Drop.Volts, s.Drop.Percent,
			})
		}
		for _, st := range o.Steps {
			for _, line := range st.Lines {
				steps = append(steps, []interface{}{i + 1, string(st.Category), st.Title, line})
			}
			steps = append(steps, []interface{}{i + 1, string(st.Category), st.Title, "Result: " + st.Result})
		}
	}

	for sheet, rows := range map[string][][]interface{}{summarySheet: summary, segmentSheet: segments, stepSheet: steps} {
		for n, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, n+1)
			if err != nil {
				return nil, err
			}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return nil, fmt.Errorf("%s row %d: %w", sheet, n+1, err)
			}
		}
	}
	return f, nil
}

func number(f cable.Float) interface{} {
	if !f.Finite() {
		return nil
	}
	return float64(f)
}

func current(c *shortcircuit.Current) interface{} {
	if c == nil {
		return nil
	}
	return c.Magnitude
}
