package nest

import "math"

// Degrees is an angle in degrees. Degrees and Radians are distinct types so a
// value cannot be handed to the wrong function family by accident.
type Degrees float64

// Radians is an angle in radians.
type Radians float64

const twoPi = 2 * math.Pi

// wrapSigned maps v into (-half, half] where half is half of period.
func wrapSigned(v, period float64) float64 {
	half := period / 2
	d := math.Mod(v+half, period) - half
	if d <= -half {
		d += period
	}
	return d
}

// wrapUnsigned maps v into [0, period).
func wrapUnsigned(v, period float64) float64 {
	m := math.Mod(v, period)
	if m < 0 {
		m += period
	}
	if m >= period {
		// -tiny + period rounds up to period.
		m = 0
	}
	return m
}

// Radians converts d to radians.
func (d Degrees) Radians() Radians {
	return Radians(float64(d) * math.Pi / 180)
}

// Normalize maps d into [0, 360).
func (d Degrees) Normalize() Degrees {
	return Degrees(wrapUnsigned(float64(d), 360))
}

// NormalizeSigned maps d into (-180, 180].
func (d Degrees) NormalizeSigned() Degrees {
	return Degrees(wrapSigned(float64(d), 360))
}

// ShortestDistance returns the signed rotation in (-180, 180] that takes d to
// to. Positive values rotate counter-clockwise.
func (d Degrees) ShortestDistance(to Degrees) Degrees {
	return Degrees(wrapSigned(float64(to-d), 360))
}

// Lerp interpolates from d towards to along the shortest arc. The result is
// not normalized: Lerp(to, 1) is angularly equal to to but may differ by a
// multiple of 360.
func (d Degrees) Lerp(to Degrees, t float64) Degrees {
	return d + Degrees(t)*d.ShortestDistance(to)
}

// Vector returns the unit vector pointing along d, measured counter-clockwise
// from the positive x-axis.
func (d Degrees) Vector() Vec2 {
	return d.Radians().Vector()
}

// Degrees converts r to degrees.
func (r Radians) Degrees() Degrees {
	return Degrees(float64(r) * 180 / math.Pi)
}

// Normalize maps r into [0, 2π).
func (r Radians) Normalize() Radians {
	return Radians(wrapUnsigned(float64(r), twoPi))
}

// NormalizeSigned maps r into (-π, π].
func (r Radians) NormalizeSigned() Radians {
	return Radians(wrapSigned(float64(r), twoPi))
}

// ShortestDistance returns the signed rotation in (-π, π] that takes r to to.
func (r Radians) ShortestDistance(to Radians) Radians {
	return Radians(wrapSigned(float64(to-r), twoPi))
}

// Lerp interpolates from r towards to along the shortest arc.
func (r Radians) Lerp(to Radians, t float64) Radians {
	return r + Radians(t)*r.ShortestDistance(to)
}

// Vector returns the unit vector (cos r, sin r).
func (r Radians) Vector() Vec2 {
	s, c := math.Sincos(float64(r))
	return Vec2{X: c, Y: s}
}
