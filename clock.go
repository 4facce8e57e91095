package nest

import "time"

// Clock measures wall-clock time between successive DeltaTime calls.
type Clock struct {
	now  func() time.Time
	last time.Time
}

// NewClock returns a clock whose baseline is the moment it was created.
func NewClock() *Clock {
	return newClockFunc(time.Now)
}

func newClockFunc(now func() time.Time) *Clock {
	return &Clock{now: now, last: now()}
}

// DeltaTime returns the seconds elapsed since the previous call. The first
// call measures from the clock's creation, so it is not zero.
func (c *Clock) DeltaTime() float64 {
	t := c.now()
	dt := t.Sub(c.last).Seconds()
	c.last = t
	return dt
}

// processClock starts when the package is initialized.
var processClock = NewClock()

// DeltaTime returns the seconds since the previous call to DeltaTime. The
// first call measures from package initialization. Engines keep their own
// clock; see Nest.DeltaTime.
func DeltaTime() float64 {
	return processClock.DeltaTime()
}
