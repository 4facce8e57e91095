package nest

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween animates up to two float64 fields at once. Create one with
// TweenPosition, TweenValue, TweenAngle, or TweenAngleRad and call Update(dt)
// from a state's Update callback. Values are written straight into the
// target fields.
//
// There is no global animation manager: callers drive their own tweens.
type Tween struct {
	tweens [2]*gween.Tween
	count  int
	fields [2]*float64
	Done   bool
}

// Update advances the tween by dt seconds and writes the current values.
func (tw *Tween) Update(dt float32) {
	if tw.Done {
		return
	}
	allDone := true
	for i := 0; i < tw.count; i++ {
		val, finished := tw.tweens[i].Update(dt)
		*tw.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	tw.Done = allDone
}

// Reset rewinds the tween to its start values.
func (tw *Tween) Reset() {
	for i := 0; i < tw.count; i++ {
		tw.tweens[i].Reset()
		val, _ := tw.tweens[i].Update(0)
		*tw.fields[i] = float64(val)
	}
	tw.Done = false
}

// TweenPosition animates e.Position to the target over duration seconds.
func TweenPosition(e *Entity, to Vec2, duration float32, fn ease.TweenFunc) *Tween {
	tw := &Tween{count: 2}
	tw.tweens[0] = gween.New(float32(e.Position.X), float32(to.X), duration, fn)
	tw.tweens[1] = gween.New(float32(e.Position.Y), float32(to.Y), duration, fn)
	tw.fields[0] = &e.Position.X
	tw.fields[1] = &e.Position.Y
	return tw
}

// TweenValue animates a single float64, such as a circle's Radius.
func TweenValue(v *float64, to float64, duration float32, fn ease.TweenFunc) *Tween {
	tw := &Tween{count: 1}
	tw.tweens[0] = gween.New(float32(*v), float32(to), duration, fn)
	tw.fields[0] = v
	return tw
}

// TweenAngle rotates *a to the heading to along the shortest arc. The final
// value is angularly equal to to but is not normalized.
func TweenAngle(a *Degrees, to Degrees, duration float32, fn ease.TweenFunc) *Tween {
	end := *a + a.ShortestDistance(to)
	return TweenValue((*float64)(a), float64(end), duration, fn)
}

// TweenAngleRad is TweenAngle for radians.
func TweenAngleRad(a *Radians, to Radians, duration float32, fn ease.TweenFunc) *Tween {
	end := *a + a.ShortestDistance(to)
	return TweenValue((*float64)(a), float64(end), duration, fn)
}
