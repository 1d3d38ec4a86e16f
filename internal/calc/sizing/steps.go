package sizing

import (
	"fmt"
	"math"

	"Ampere/internal/calc/cable"
	"Ampere/internal/calc/impedance"
)

type Category string

const (
	CategoryOverload     Category = "overload"
	CategoryShortCircuit Category = "short-circuit"
	CategoryVoltageDrop  Category = "voltage-drop"
	CategoryEarthFault   Category = "earth-fault"
)

// Step is one labeled block of the calculation for documentation.
type Step struct {
	Category Category `json:"category"`
	Title    string   `json:"title"`
	Lines    []string `json:"lines"`
	Result   string   `json:"result"`
}

func verdict(ok bool) string {
	if ok {
		return "OK"
	}
	return "NOT OK"
}

func (c *circuit) noneSteps() []Step {
	return []Step{{
		Category: CategoryOverload,
		Title:    "Cross-section selection",
		Lines: []string{
			fmt.Sprintf("Material %s, %d-phase, I = %.2f A", c.material, c.Phases, c.CurrentA),
			fmt.Sprintf("Ladder %v mm²", c.ladder()),
		},
		Result: "No cross-section found",
	}}
}

func (c *circuit) steps(out *Outcome, cand *candidate) []Step {
	var steps []Step

	ov := Step{Category: CategoryOverload, Title: "Overload protection"}
	ov.Lines = append(ov.Lines, fmt.Sprintf("Selection: %s, S = %g mm²", out.Selection, out.SizeMM2))
	if c.parallel > 1 {
		ov.Lines = append(ov.Lines, fmt.Sprintf("%d conductors in parallel, I per conductor = %.2f / %d = %.2f A",
			c.parallel, c.CurrentA, c.parallel, c.required()))
	}
	for _, s := range cand.segments {
		ov.Lines = append(ov.Lines,
			fmt.Sprintf("%s: method %s (ref %s), L = %g m, %g °C", s.Name, s.Method, s.Ref, s.LengthM, s.AmbientC),
			fmt.Sprintf("  kt = %.3f, kgrp = %.3f, Kj = %.3f", s.Kt, s.Kgrp, s.Kj),
			fmt.Sprintf("  Iz = %.1f A × %.3f = %.1f A ≥ %.1f A: %s", s.IzA, s.Total(), s.IzCorrectedA, s.RequiredA,
				verdict(s.IzA > 0 && s.IzCorrectedA >= s.RequiredA)))
	}
	ov.Result = fmt.Sprintf("%g mm² %s", out.SizeMM2, verdict(out.Flags.Ampacity))
	steps = append(steps, ov)

	sc := Step{Category: CategoryShortCircuit, Title: "Short-circuit protection"}
	sc.Lines = append(sc.Lines,
		fmt.Sprintf("Z cable = %.5f + j%.5f Ω", out.CableZ.R, out.CableZ.X),
		"Ik,min = Uₙ / (Zsup,min + 2·(Zup + 1.5R + jX))",
		fmt.Sprintf("Ik,min = %.1f A ∠%.2f°", out.IkMin.Magnitude, out.IkMin.AngleDeg))
	if out.IkMax != nil {
		sc.Lines = append(sc.Lines, fmt.Sprintf("Ik,max = %.1f A ∠%.2f°", out.IkMax.Magnitude, out.IkMax.AngleDeg))
	}
	if out.IkMinOneLost != nil {
		sc.Lines = append(sc.Lines, fmt.Sprintf("Ik,min one conductor lost = %.1f A", out.IkMinOneLost.Magnitude))
	}
	sc.Lines = append(sc.Lines, fmt.Sprintf("Device %s, trip time at Ik,min = %s", out.Device, formatTime(cand.trip)))
	if c.device.Melting() {
		sc.Lines = append(sc.Lines, fmt.Sprintf("Disconnection ≤ %.1f s: %s", c.maxTrip, verdict(out.Flags.Disconnection)))
	}
	th := out.Thermal
	sc.Lines = append(sc.Lines,
		fmt.Sprintf("E cable = (k·S)² = (%g·%g)² = %.0f A²s", th.K, th.SizeMM2, th.CableEnergy),
		fmt.Sprintf("E let-through = Ik,min²·t = %s A²s", energy(th.LetThrough)))
	sc.Result = fmt.Sprintf("Disconnection %s, thermal %s", verdict(out.Flags.Disconnection), verdict(th.OK))
	steps = append(steps, sc)

	vd := Step{Category: CategoryVoltageDrop, Title: "Voltage drop"}
	if c.Formula == impedance.FormulaResistivity {
		vd.Lines = append(vd.Lines, "ΔU = b·(ρ·L/S·cosφ + λ·L·sinφ)·I")
	} else if c.phases.Single() {
		vd.Lines = append(vd.Lines, "ΔU = (L/1000)·I·(R·cosφ + X·sinφ)·2")
	} else {
		vd.Lines = append(vd.Lines, "ΔU = (L/1000)·I·(R·cosφ + X·sinφ)·√3")
	}
	for _, s := range cand.segments {
		vd.Lines = append(vd.Lines, fmt.Sprintf("%s: R = %.4f Ω/km, X = %.4f Ω/km, ΔU = %.2f V (%.2f %%)",
			s.Name, s.PerKm.R, s.PerKm.X, s.Drop.Volts, s.Drop.Percent))
	}
	vd.Lines = append(vd.Lines, fmt.Sprintf("Total ΔU = %.2f V = %.2f %%, limit %.2f %%", out.Drop.Volts, out.Drop.Percent, c.MaxDropPct))
	vd.Result = fmt.Sprintf("%.2f %% %s", out.Drop.Percent, verdict(out.Flags.VoltageDrop))
	steps = append(steps, vd)

	if ef := out.EarthFault; ef != nil {
		st := Step{Category: CategoryEarthFault, Title: fmt.Sprintf("Earth fault (%s)", ef.System)}
		st.Lines = append(st.Lines,
			fmt.Sprintf("R1 = %.4f Ω, R2 = %.4f Ω, Zs = %.4f Ω", ef.R1Ohm, ef.R2Ohm, ef.EffectiveZsOhm),
			fmt.Sprintf("Ia = %.1f A, trip time %s, required %.1f s", ef.FaultCurrentA, formatTime(float64(ef.TripTimeS)), ef.RequiredTimeS),
			fmt.Sprintf("Touch voltage %.1f V", ef.TouchVoltageV))
		if ef.RCD.Required || ef.RCD.Recommended {
			st.Lines = append(st.Lines, fmt.Sprintf("RCD %d mA: %s", ef.RCD.SensitivityMA, ef.RCD.Reason))
		}
		st.Result = verdict(ef.Compliant)
		steps = append(steps, st)
	}
	return steps
}

func energy(f cable.Float) string {
	if !f.Finite() {
		return "∞"
	}
	return fmt.Sprintf("%.0f", math.Round(float64(f)))
}
