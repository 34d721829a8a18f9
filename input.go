package balloons

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// processInput turns a completed left click or touch tap into a Scene.Click.
// A click fires on release, matching how browsers report clicks.
func (g *Game) processInput() {
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.scene.Click(float64(mx), float64(my))
	}

	g.touchIDs = inpututil.AppendJustReleasedTouchIDs(g.touchIDs[:0])
	for _, id := range g.touchIDs {
		tx, ty := inpututil.TouchPositionInPreviousTick(id)
		g.scene.Click(float64(tx), float64(ty))
	}
}
