package balloons

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often the overlay text is redrawn, in milliseconds.
const fpsRefresh = 500.0

// fpsOverlay shows FPS, TPS, and the balloon count in the top-left corner.
// The text is re-rendered into its own image about twice a second.
type fpsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
	drawn      bool
}

func newFPSOverlay() *fpsOverlay {
	// 140x48 is enough for three short lines of debug text.
	return &fpsOverlay{img: ebiten.NewImage(140, 48)}
}

// update refreshes the overlay text when fpsRefresh has elapsed.
func (o *fpsOverlay) update(nowMillis float64, balloons int) {
	if o.drawn && nowMillis-o.lastUpdate < fpsRefresh {
		return
	}
	o.lastUpdate = nowMillis
	o.drawn = true

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nBalloons: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), balloons))
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}
