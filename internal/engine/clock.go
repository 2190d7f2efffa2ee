package engine

import "time"

// Clock tracks frame timing explicitly instead of through globals
type Clock struct {
	now   func() time.Time
	start time.Time
	last  time.Time
}

// NewClock creates a clock started at the current wall time
func NewClock() *Clock {
	return newClock(time.Now)
}

func newClock(now func() time.Time) *Clock {
	t := now()
	return &Clock{now: now, start: t, last: t}
}

// Tick returns the seconds since the previous tick and since start
func (c *Clock) Tick() (dt, elapsed float64) {
	t := c.now()
	dt = t.Sub(c.last).Seconds()
	c.last = t
	return dt, t.Sub(c.start).Seconds()
}
