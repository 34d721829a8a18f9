package balloons

import (
	"fmt"
	"io"
	"os"
	"time"
)

// debugInterval is the frame-time span each debug summary covers.
const debugInterval = 1000.0 // milliseconds

// frameStats accumulates per-frame counters between debug summaries.
// Only timed when Scene.debug is true; click and recycle counts are always kept.
type frameStats struct {
	frames      int
	recycles    int
	clicks      int
	updateTime  time.Duration
	drawTime    time.Duration
	windowStart float64
	started     bool
}

// debugOut is where debug summaries are written.
var debugOut io.Writer = os.Stderr

// SetDebugMode enables or disables debug mode. When enabled, a summary of
// frame count, balloon count, recycles, clicks, and mean update/draw time is
// printed to stderr once per second of frame time.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	s.stats = frameStats{}
}

// Recycles returns how many balloons have been recycled since the scene was
// created. Debug summaries report their own per-window count.
func (s *Scene) Recycles() int {
	return s.recycles
}

// endFrame counts a frame and logs a summary when the interval has elapsed.
func (s *Scene) endFrame(timeMillis float64) {
	st := &s.stats
	if !st.started {
		st.windowStart = timeMillis
		st.started = true
	}
	st.frames++
	if timeMillis-st.windowStart < debugInterval {
		return
	}
	s.debugLog(timeMillis - st.windowStart)
	s.stats = frameStats{windowStart: timeMillis, started: true}
}

// debugLog prints the accumulated stats.
func (s *Scene) debugLog(elapsed float64) {
	st := s.stats
	if st.frames == 0 {
		return
	}
	n := time.Duration(st.frames)
	_, _ = fmt.Fprintf(debugOut,
		"[balloons] frames: %d in %.0fms | balloons: %d | recycles: %d | clicks: %d\n",
		st.frames, elapsed, len(s.balloons), st.recycles, st.clicks)
	_, _ = fmt.Fprintf(debugOut,
		"[balloons] update: %v/frame | draw: %v/frame\n",
		st.updateTime/n, st.drawTime/n)
}
