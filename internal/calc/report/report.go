package report

import (
	"fmt"
	"time"

	"Ampere/internal/calc/cable"
	"Ampere/internal/calc/sizing"
)

type Input struct {
	Project string           `json:"project"`
	Author  string           `json:"author"`
	Title   string           `json:"title"`
	Notes   string           `json:"notes"`
	Tiers   []sizing.Circuit `json:"tiers"`
	Charts  bool             `json:"charts"`
}

// Document is an evaluated chain ready to be rendered.
type Document struct {
	Input
	Date    time.Time
	Results []sizing.TierResult
}

func Build(in Input) (*Document, error) {
	if len(in.Tiers) == 0 {
		return nil, fmt.Errorf("%w: no circuits to report", cable.ErrInvalidInput)
	}
	if in.Title == "" {
		in.Title = "Cable Dimensioning Report"
	}
	return &Document{
		Input:   in,
		Date:    time.Now(),
		Results: sizing.EvaluateChain(in.Tiers),
	}, nil
}

func heading(i int, c sizing.Circuit) string {
	name := c.Name
	if name == "" {
		name = fmt.Sprintf("Circuit %d", i+1)
	}
	tier := c.Tier
	if tier == "" {
		tier = sizing.Group
	}
	return fmt.Sprintf("%d. %s (%s)", i+1, name, tier)
}

func summary(o *sizing.Outcome) string {
	if !o.Found() {
		return "No cross-section found"
	}
	s := fmt.Sprintf("%g mm²", o.SizeMM2)
	if o.Parallel > 1 {
		s = fmt.Sprintf("%d × %s", o.Parallel, s)
	}
	status := "compliant"
	if !o.Compliant {
		status = "NOT compliant"
	}
	return fmt.Sprintf("%s, %s, %s (%s)", s, o.Device, status, o.Selection)
}
