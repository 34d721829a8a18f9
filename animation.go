package balloons

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Inflate timing for click-spawned balloons.
const (
	inflateDuration = 0.35 // seconds
	// frameSeconds converts a normalized frame step to seconds.
	frameSeconds = referenceFrameMillis / 1000
)

// inflateTween scales a balloon from 0 to 1 when it is created by a click.
// It only affects how the balloon is drawn; stored geometry is unchanged.
type inflateTween struct {
	tween *gween.Tween
	scale float64
	done  bool
}

func newInflateTween() *inflateTween {
	return &inflateTween{
		tween: gween.New(0, 1, inflateDuration, ease.OutBack),
	}
}

// update advances the tween by dt normalized frames.
func (t *inflateTween) update(dt float64) {
	if t.done {
		return
	}
	val, finished := t.tween.Update(float32(dt * frameSeconds))
	t.scale = float64(val)
	if finished {
		t.scale = 1
		t.done = true
	}
}
