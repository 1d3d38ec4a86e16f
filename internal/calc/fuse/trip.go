package fuse

import "math"

// TripTime reads the time to clear a fault current ik. Currents below the
// curve never trip (+Inf); currents beyond it take the fastest time.
func (s Spec) TripTime(ik float64) float64 {
	x := ik
	if s.Family.Axis == Multiplier {
		x = ik / s.Rating
	}
	return s.curve.At(x)
}

// At interpolates log(t) linearly against log(x).
func (c Curve) At(x float64) float64 {
	if len(c) == 0 || math.IsNaN(x) || x < c[0].X {
		return math.Inf(1)
	}
	last := c[len(c)-1]
	if x >= last.X {
		return last.T
	}
	i := c.bracket(x)
	if x == c[i-1].X {
		return c[i-1].T
	}
	p0, p1 := c[i-1], c[i]
	f := (math.Log(x) - math.Log(p0.X)) / (math.Log(p1.X) - math.Log(p0.X))
	return math.Exp(math.Log(p0.T) + f*(math.Log(p1.T)-math.Log(p0.T)))
}

// bracket returns the index of the first point strictly above x.
func (c Curve) bracket(x float64) int {
	lo, hi := 0, len(c)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if c[mid].X > x {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// Bracket returns the tabulated points either side of ik, on the curve's
// native axis. ok is false outside the curve.
func (s Spec) Bracket(ik float64) (lo, hi Point, ok bool) {
	x := ik
	if s.Family.Axis == Multiplier {
		x = ik / s.Rating
	}
	c := s.curve
	if len(c) < 2 || x < c[0].X || x >= c[len(c)-1].X {
		return Point{}, Point{}, false
	}
	i := c.bracket(x)
	return c[i-1], c[i], true
}

// CurrentFor is the smallest current that clears within t seconds, or +Inf
// when the device is never that fast.
func (s Spec) CurrentFor(t float64) float64 {
	x := s.curve.inverse(t)
	if s.Family.Axis == Multiplier {
		return x * s.Rating
	}
	return x
}

func (c Curve) inverse(t float64) float64 {
	if len(c) == 0 || math.IsNaN(t) || t < c[len(c)-1].T {
		return math.Inf(1)
	}
	if t >= c[0].T {
		return c[0].X
	}
	for i := 1; i < len(c); i++ {
		if c[i].T > t {
			continue
		}
		p0, p1 := c[i-1], c[i]
		if p0.T == p1.T {
			return p0.X
		}
		f := (math.Log(t) - math.Log(p0.T)) / (math.Log(p1.T) - math.Log(p0.T))
		return math.Exp(math.Log(p0.X) + f*(math.Log(p1.X)-math.Log(p0.X)))
	}
	return math.Inf(1)
}
