package nest

import "math"

// Primitive is a drawable shape built on an Entity. The set of
// implementations is closed: *Rectangle, *Circle, *Triangle, and *Line.
type Primitive interface {
	Base() *Entity
	Kind() ShapeKind
	primitive()
}

// Rectangle is an outlined rectangle whose top-left corner sits at the entity
// position.
type Rectangle struct {
	Entity
	Color         Color
	Width, Height float64
}

// Circle is centered at the entity position and drawn as a closed polygon of
// Segments straight edges.
type Circle struct {
	Entity
	Color    Color
	Radius   float64
	Segments int
}

// Triangle has its base running from the entity position to the right by
// Width. The apex sits Height above the base midpoint, shifted horizontally
// by Skew.
type Triangle struct {
	Entity
	Color  Color
	Width  float64
	Height float64
	Skew   float64

	pts [3]Vec2
}

// Line runs from the entity position to End. Width is kept for callers;
// backends draw one-pixel lines.
type Line struct {
	Entity
	Color Color
	End   Vec2
	Width float64
}

func (*Rectangle) Kind() ShapeKind { return ShapeRectangle }
func (*Circle) Kind() ShapeKind    { return ShapeCircle }
func (*Triangle) Kind() ShapeKind  { return ShapeTriangle }
func (*Line) Kind() ShapeKind      { return ShapeLine }

func (*Rectangle) primitive() {}
func (*Circle) primitive()    {}
func (*Triangle) primitive()  {}
func (*Line) primitive()      {}

// primitiveEntity returns a fresh random entity moved to pos.
func primitiveEntity(pos Vec2) Entity {
	e := NewRandomEntity(VectorZero())
	e.Position = pos
	return e
}

// NewRectangle creates a rectangle with its top-left corner at pos.
func NewRectangle(pos Vec2, width, height float64, c Color) *Rectangle {
	return &Rectangle{Entity: primitiveEntity(pos), Color: c, Width: width, Height: height}
}

// NewCircle creates a circle centered at pos.
func NewCircle(pos Vec2, radius float64, segments int, c Color) *Circle {
	return &Circle{Entity: primitiveEntity(pos), Color: c, Radius: radius, Segments: segments}
}

// NewTriangle creates a triangle whose base starts at pos and is base wide.
func NewTriangle(pos Vec2, base, height, skew float64, c Color) *Triangle {
	return &Triangle{Entity: primitiveEntity(pos), Color: c, Width: base, Height: height, Skew: skew}
}

// NewLine creates a line from a to b.
func NewLine(a, b Vec2, width float64, c Color) *Line {
	return &Line{Entity: primitiveEntity(a), Color: c, End: b, Width: width}
}

// circlePoint returns perimeter point i of n.
func circlePoint(center Vec2, radius float64, i, n int) Vec2 {
	if i == n {
		i = 0
	}
	s, c := math.Sincos(twoPi * float64(i) / float64(n))
	return Vec2{X: center.X + radius*c, Y: center.Y + radius*s}
}

// DrawPrimitive draws p with r. r must be non-nil.
func DrawPrimitive(r Renderer, p Primitive) {
	switch p := p.(type) {
	case *Rectangle:
		setColor(r, p.Color)
		r.DrawRect(Rect{X: p.Position.X, Y: p.Position.Y, Width: p.Width, Height: p.Height})
	case *Circle:
		setColor(r, p.Color)
		n := p.Segments
		if n < 1 {
			return
		}
		prev := circlePoint(p.Position, p.Radius, 0, n)
		for i := 1; i <= n; i++ {
			next := circlePoint(p.Position, p.Radius, i, n)
			r.DrawLine(prev.X, prev.Y, next.X, next.Y)
			prev = next
		}
	case *Triangle:
		setColor(r, p.Color)
		pos := p.Position
		// Reused per draw; DrawLines does not retain the slice.
		pts := &p.pts
		pts[0] = pos
		pts[1] = Vec2{X: pos.X + p.Width, Y: pos.Y}
		pts[2] = Vec2{X: pos.X + p.Width/2 + p.Skew, Y: pos.Y - p.Height}
		r.DrawLines(pts[:])
		r.DrawLine(pts[2].X, pts[2].Y, pts[0].X, pts[0].Y)
	case *Line:
		setColor(r, p.Color)
		r.DrawLine(p.Position.X, p.Position.Y, p.End.X, p.End.Y)
	}
}

func setColor(r Renderer, c Color) {
	r.SetDrawColor(c.R, c.G, c.B, 255)
}
