package fuse

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Chart draws the characteristics of specs on log-log axes as a PNG. A
// positive ikA adds a marker at that fault current.
func Chart(w io.Writer, specs []Spec, ikA float64) error {
	if len(specs) == 0 {
		return fmt.Errorf("no devices to plot")
	}
	p := plot.New()
	p.Title.Text = "Time-current characteristic"
	p.X.Label.Text = "Current (A)"
	p.Y.Label.Text = "Time (s)"
	p.X.Scale = plot.LogScale{}
	p.Y.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	tMin, tMax := math.Inf(1), 0.0
	for i, s := range specs {
		c := s.Absolute()
		xys := make(plotter.XYs, len(c))
		for j, pt := range c {
			xys[j].X, xys[j].Y = pt.X, pt.T
			tMin, tMax = math.Min(tMin, pt.T), math.Max(tMax, pt.T)
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(s.String(), line)
	}
	if ikA > 0 {
		marker, err := plotter.NewLine(plotter.XYs{{X: ikA, Y: tMin}, {X: ikA, Y: tMax}})
		if err != nil {
			return err
		}
		marker.Color = color.RGBA{R: 200, A: 255}
		marker.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(marker)
		p.Legend.Add(fmt.Sprintf("Ik %.0f A", ikA), marker)
	}
	p.Legend.Top = true

	wt, err := p.WriterTo(8*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
