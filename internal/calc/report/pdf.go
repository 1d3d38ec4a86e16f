package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"Ampere/internal/calc/fuse"

	"github.com/phpdave11/gofpdf"
)

// Core PDF fonts are cp1252, so symbols outside it are spelled out.
var symbols = strings.NewReplacer(
	"Ω", "Ohm", "∠", " @ ", "√3", "sqrt(3)", "≥", ">=", "≤", "<=", "∞", "inf",
	"Δ", "d", "ρ", "rho", "λ", "lambda", "φ", "phi", "ₙ", "n", "₀", "0",
)

func (d *Document) PDF(w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string { return tr(symbols.Replace(s)) }

	pdf.SetTitle(d.Title, true)
	pdf.SetAuthor(d.Author, true)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, text(d.Title))
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, text(fmt.Sprintf("Project: %s", d.Project)))
	pdf.Ln(6)
	pdf.Cell(0, 6, text(fmt.Sprintf("Author: %s", d.Author)))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", d.Date.Format("2006-01-02")))
	pdf.Ln(10)
	if d.Notes != "" {
		pdf.MultiCell(0, 6, text(d.Notes), "", "L", false)
		pdf.Ln(4)
	}

	for i, r := range d.Results {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.Cell(0, 8, text(heading(i, d.Tiers[i])))
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 10)
		o := r.Outcome
		if o == nil {
			pdf.SetTextColor(180, 0, 0)
			pdf.MultiCell(0, 5, text("Not evaluated: "+r.Error), "", "L", false)
			pdf.SetTextColor(0, 0, 0)
			pdf.Ln(4)
			continue
		}
		pdf.MultiCell(0, 5, text(summary(o)), "", "L", false)
		pdf.Ln(2)

		for _, s := range o.Steps {
			pdf.SetFont("Helvetica", "B", 11)
			pdf.SetFillColor(230, 236, 245)
			pdf.CellFormat(0, 6, text(fmt.Sprintf("%s: %s", s.Category, s.Title)), "", 1, "L", true, 0, "")
			pdf.SetFont("Courier", "", 9)
			for _, line := range s.Lines {
				pdf.MultiCell(0, 4.5, text(line), "", "L", false)
			}
			pdf.SetFont("Helvetica", "B", 10)
			pdf.MultiCell(0, 5, text("Result: "+s.Result), "", "L", false)
			pdf.Ln(2)
		}

		pdf.SetFont("Helvetica", "", 10)
		for _, v := range o.Violations {
			pdf.SetTextColor(180, 0, 0)
			pdf.MultiCell(0, 5, text(fmt.Sprintf("Violation (%s): %s", v.Check, v.Detail)), "", "L", false)
		}
		pdf.SetTextColor(140, 90, 0)
		for _, wn := range o.Warnings {
			pdf.MultiCell(0, 5, text("Warning: "+wn), "", "L", false)
		}
		pdf.SetTextColor(0, 0, 0)

		if d.Charts && o.IkMin != nil {
			if err := chart(pdf, fmt.Sprintf("chart%d", i), d.Tiers[i].Device, o.IkMin.Magnitude); err != nil {
				return err
			}
		}
		pdf.Ln(6)
	}

	if err := pdf.Error(); err != nil {
		return err
	}
	return pdf.Output(w)
}

// chart embeds the device characteristic with Ik,min marked.
func chart(pdf *gofpdf.Fpdf, name string, dev fuse.Device, ik float64) error {
	spec, err := dev.Spec()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := fuse.Chart(&buf, []fuse.Spec{spec}, ik); err != nil {
		return err
	}
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opts, &buf)
	pdf.ImageOptions(name, 25, 0, 160, 0, true, opts, 0, "")
	return nil
}
