package game

import "time"

// maxFrameGap is the longest wall-time step fed to the session in one Update
const maxFrameGap = 250 * time.Millisecond

// frameClock measures wall time between Update calls
type frameClock struct {
	now  func() time.Time
	last time.Time
}

func newFrameClock() *frameClock {
	return &frameClock{now: time.Now}
}

// Step returns the wall time since the previous Step, capped at maxFrameGap.
// The first step is one tick.
func (c *frameClock) Step() time.Duration {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return tick
	}
	dt := t.Sub(c.last)
	c.last = t
	return max(0, min(dt, maxFrameGap))
}
