package nest

import "math"

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions
// throughout the API.
//
// Value-receiver methods return new vectors. Pointer-receiver methods modify
// the vector in place and do nothing when called on a nil pointer.
type Vec2 struct {
	X, Y float64
}

// Lerp linearly interpolates between a and b. t is not clamped, so values
// outside [0, 1] extrapolate.
func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// LerpInt interpolates between two integers and rounds half up.
func LerpInt(a, b int, t float64) int {
	return int(math.Floor(float64(a) + t*float64(b-a) + 0.5))
}

// LerpVec interpolates each component of a and b independently.
func LerpVec(a, b Vec2, t float64) Vec2 {
	return Vec2{X: Lerp(a.X, b.X, t), Y: Lerp(a.Y, b.Y, t)}
}

// VectorZero returns (0, 0).
func VectorZero() Vec2 { return Vec2{} }

// VectorUp returns (0, 1).
func VectorUp() Vec2 { return Vec2{X: 0, Y: 1} }

// VectorRight returns (1, 0).
func VectorRight() Vec2 { return Vec2{X: 1, Y: 0} }

// Set assigns both components.
func (v *Vec2) Set(x, y float64) {
	if v == nil {
		return
	}
	v.X, v.Y = x, y
}

// Negate flips the sign of both components.
func (v *Vec2) Negate() {
	if v == nil {
		return
	}
	v.X, v.Y = -v.X, -v.Y
}

// Normalize scales v to unit length. A zero-length vector is left unchanged.
func (v *Vec2) Normalize() {
	if v == nil {
		return
	}
	l := v.Length()
	if l <= 0 {
		return
	}
	v.X /= l
	v.Y /= l
}

// Scale multiplies both components by s.
func (v *Vec2) Scale(s float64) {
	if v == nil {
		return
	}
	v.X *= s
	v.Y *= s
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scaled returns v multiplied by s.
func (v Vec2) Scaled(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Negated returns -v.
func (v Vec2) Negated() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Normalized returns v scaled to unit length, or v itself when its length is zero.
func (v Vec2) Normalized() Vec2 {
	v.Normalize()
	return v
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Distance returns the Euclidean distance between v and o.
func (v Vec2) Distance(o Vec2) float64 {
	dx := o.X - v.X
	dy := o.Y - v.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}
