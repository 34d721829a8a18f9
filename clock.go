package balloons

// Frame timing constants. A delta of 1.0 is one frame at 60 Hz.
const (
	referenceFrameMillis = 16.6667
	maxFrameDelta        = 2.0
	firstFrameDelta      = 1.0
)

// FrameDelta converts the time between two frames into a normalized step.
// Without a previous frame the step is 1.0. Otherwise it is the elapsed
// milliseconds over the 60 Hz frame length, clamped to at most 2.0 so a long
// pause (a minimized window, a debugger stop) cannot launch balloons.
func FrameDelta(last, now float64, hasLast bool) float64 {
	if !hasLast {
		return firstFrameDelta
	}
	return min(maxFrameDelta, (now-last)/referenceFrameMillis)
}

// FrameClock remembers the last frame time and produces normalized deltas.
// The zero value is ready to use and treats the next Tick as the first frame.
type FrameClock struct {
	last    float64
	hasLast bool
}

// Tick records now as the latest frame time and returns the step since the
// previous Tick.
func (c *FrameClock) Tick(now float64) float64 {
	dt := FrameDelta(c.last, now, c.hasLast)
	c.last = now
	c.hasLast = true
	return dt
}

// Last returns the last recorded frame time and whether one exists.
func (c *FrameClock) Last() (float64, bool) {
	return c.last, c.hasLast
}

// Reset forgets the last frame so the next Tick uses the first-frame step.
func (c *FrameClock) Reset() {
	c.last = 0
	c.hasLast = false
}
