package loads

import (
	"fmt"
	"math"

	"Ampere/internal/calc/cable"
)

type Method string

const (
	MethodManual   Method = "manual"
	MethodArea     Method = "area"
	MethodVelander Method = "velander"
)

type Occupancy string

const (
	Residential Occupancy = "residential"
	Supermarket Occupancy = "supermarket"
	Retail      Occupancy = "retail"
	Office      Occupancy = "office"
	Warehouse   Occupancy = "warehouse"
)

// Specific load in W/m² per occupancy type.
var specificLoad = map[Occupancy]float64{
	Residential: 30,
	Supermarket: 110,
	Retail:      70,
	Office:      40,
	Warehouse:   10,
}

// Velander coefficients, P in kW from W in kW.
const (
	velanderK1 = 0.24
	velanderK2 = 2.31
)

type Input struct {
	Name      string    `json:"name"`
	Method    Method    `json:"method"`
	Phases    int       `json:"phases"`
	VoltageV  float64   `json:"voltage_v"`
	CosPhi    float64   `json:"cos_phi"`
	CurrentA  float64   `json:"current_a"`
	PowerW    float64   `json:"power_w"`
	AreaM2    float64   `json:"area_m2"`
	Occupancy Occupancy `json:"occupancy"`
	AverageKW float64   `json:"average_kw"`
	MarginPct float64   `json:"margin_pct"`
}

type Result struct {
	Name       string  `json:"name,omitempty"`
	Method     Method  `json:"method"`
	BasePowerW float64 `json:"base_power_w"`
	PowerW     float64 `json:"power_w"`
	CurrentA   float64 `json:"current_a"`
	Notes      string  `json:"notes"`
}

func (in *Input) defaults() {
	if in.Method == "" {
		in.Method = MethodManual
	}
	if in.Phases == 0 {
		in.Phases = 3
	}
	if in.VoltageV == 0 {
		in.VoltageV = 400
		if in.Phases == 1 {
			in.VoltageV = 230
		}
	}
	if in.CosPhi == 0 {
		in.CosPhi = 1
	}
}

func (in Input) validate() error {
	if err := cable.Validate(map[string]float64{
		"voltage_v": in.VoltageV, "cos_phi": in.CosPhi, "current_a": in.CurrentA, "power_w": in.PowerW,
		"area_m2": in.AreaM2, "average_kw": in.AverageKW, "margin_pct": in.MarginPct,
	}); err != nil {
		return err
	}
	if in.Phases != 1 && in.Phases != 3 {
		return fmt.Errorf("%w: phases must be 1 or 3", cable.ErrInvalidInput)
	}
	if in.VoltageV <= 0 || in.CosPhi <= 0 || in.CosPhi > 1 {
		return fmt.Errorf("%w: voltage and power factor", cable.ErrInvalidInput)
	}
	if in.MarginPct < 0 || in.CurrentA < 0 || in.PowerW < 0 || in.AreaM2 < 0 || in.AverageKW < 0 {
		return fmt.Errorf("%w: negative load figure", cable.ErrInvalidInput)
	}
	return nil
}

func Calculate(in Input) (Result, error) {
	in.defaults()
	if err := in.validate(); err != nil {
		return Result{}, err
	}
	base, notes, err := basePower(in)
	if err != nil {
		return Result{}, err
	}
	p := WithMargin(base, in.MarginPct)
	return Result{
		Name:       in.Name,
		Method:     in.Method,
		BasePowerW: base,
		PowerW:     p,
		CurrentA:   Current(p, in.VoltageV, in.CosPhi, cable.Phases(in.Phases)),
		Notes:      notes,
	}, nil
}

func basePower(in Input) (float64, string, error) {
	switch in.Method {
	case MethodManual:
		if in.CurrentA > 0 {
			return Power(in.CurrentA, in.VoltageV, in.CosPhi, cable.Phases(in.Phases)), "Power from stated current.", nil
		}
		if in.PowerW > 0 {
			return in.PowerW, "Stated power.", nil
		}
		return 0, "", fmt.Errorf("%w: manual load needs current or power", cable.ErrInvalidInput)
	case MethodArea:
		w, ok := specificLoad[in.Occupancy]
		if !ok {
			return 0, "", fmt.Errorf("%w: occupancy %q", cable.ErrInvalidInput, in.Occupancy)
		}
		if in.AreaM2 <= 0 {
			return 0, "", fmt.Errorf("%w: area required", cable.ErrInvalidInput)
		}
		return in.AreaM2 * w, fmt.Sprintf("%.0f m² at %.0f W/m² (%s).", in.AreaM2, w, in.Occupancy), nil
	case MethodVelander:
		if in.AverageKW <= 0 {
			return 0, "", fmt.Errorf("%w: average consumption required", cable.ErrInvalidInput)
		}
		return Velander(in.AverageKW) * 1000, "Velander P = 0.24·W + 2.31·√W.", nil
	}
	return 0, "", fmt.Errorf("%w: method %q", cable.ErrInvalidInput, in.Method)
}

// Velander returns the diversified peak demand in kW for an average
// consumption w in kW.
func Velander(w float64) float64 {
	if w <= 0 {
		return 0
	}
	return velanderK1*w + velanderK2*math.Sqrt(w)
}

// WithMargin adds a percentage margin.
func WithMargin(p, marginPct float64) float64 { return p * (1 + marginPct/100) }

// Current converts active power to line current.
func Current(p, voltage, cos float64, ph cable.Phases) float64 {
	if voltage <= 0 || cos <= 0 {
		return 0
	}
	if ph.Single() {
		return p / (voltage * cos)
	}
	return p / (math.Sqrt(3) * voltage * cos)
}

// Power converts line current to active power.
func Power(i, voltage, cos float64, ph cable.Phases) float64 {
	if ph.Single() {
		return i * voltage * cos
	}
	return math.Sqrt(3) * voltage * i * cos
}
