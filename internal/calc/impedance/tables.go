package impedance

import "Ampere/internal/calc/cable"

// Conductor resistance at 20 °C in Ω/km.
var resistance = map[cable.Material]map[float64]float64{
	cable.Copper: {
		1.5: 12.10, 2.5: 7.410, 4: 4.610, 6: 3.080, 10: 1.830, 16: 1.150, 25: 0.727, 35: 0.525,
		50: 0.388, 70: 0.269, 95: 0.194, 120: 0.155, 150: 0.126, 185: 0.1017, 240: 0.0787, 300: 0.0601,
	},
	cable.Aluminium: {
		16: 1.910, 25: 1.200, 35: 0.868, 50: 0.641, 70: 0.444, 95: 0.321, 120: 0.254, 150: 0.207,
		185: 0.166, 240: 0.127, 300: 0.103,
	},
}

// Reactance in Ω/km. Three-phase runs use the 3-core figures, single-phase
// runs the 4-core ones.
var reactance3 = map[cable.Material]map[float64]float64{
	cable.Copper: {
		1.5: 0.103, 2.5: 0.095, 4: 0.089, 6: 0.087, 10: 0.082, 16: 0.078, 25: 0.074, 35: 0.073,
		50: 0.070, 70: 0.067, 95: 0.065, 120: 0.064, 150: 0.063, 185: 0.062, 240: 0.061, 300: 0.060,
	},
}

var reactance4 = map[cable.Material]map[float64]float64{
	cable.Copper: {
		1.5: 0.110, 2.5: 0.102, 4: 0.096, 6: 0.094, 10: 0.089, 16: 0.085, 25: 0.086, 35: 0.082,
		50: 0.084, 70: 0.081, 95: 0.082, 120: 0.082, 150: 0.084, 185: 0.082, 240: 0.083, 300: 0.083,
	},
	cable.Aluminium: {
		16: 0.089, 25: 0.086, 35: 0.082, 50: 0.084, 70: 0.081, 95: 0.082, 120: 0.082, 150: 0.084,
		185: 0.082, 240: 0.083, 300: 0.083,
	},
}

// Resistivity in Ω·mm²/m at 20 °C and temperature coefficients per K.
var (
	resistivity = map[cable.Material]float64{cable.Copper: 0.0175, cable.Aluminium: 0.0283}
	alpha       = map[cable.Material]float64{cable.Copper: 0.00393, cable.Aluminium: 0.00403}
)

const fallbackReactance = 0.08
