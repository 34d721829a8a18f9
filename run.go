package balloons

import (
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run. Zero values get defaults.
type RunConfig struct {
	Title   string
	Width   int // initial window width, default 960
	Height  int // initial window height, default 640
	ShowFPS bool
	// Debug enables Scene debug mode (per-second stats on stderr).
	Debug bool
	// ClearColor fills the window before balloons are drawn. A zero value
	// leaves the window cleared to black.
	ClearColor Color
}

const (
	defaultTitle  = "Balloons"
	defaultWidth  = 960
	defaultHeight = 640
)

func (c *RunConfig) applyDefaults() {
	if c.Title == "" {
		c.Title = defaultTitle
	}
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
}

// LoopState is the lifecycle of a Game's frame loop.
type LoopState int32

const (
	LoopIdle    LoopState = iota // created, no frame run yet
	LoopRunning                  // at least one frame has run
	LoopStopped                  // Stop was called; the next Update ends the loop
)

func (s LoopState) String() string {
	switch s {
	case LoopIdle:
		return "idle"
	case LoopRunning:
		return "running"
	case LoopStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Game adapts a Scene to ebiten.Game. Update feeds input and the frame
// clock into Scene.Step, Draw renders through an EbitenSurface, and Layout
// forwards window size changes to Scene.Resize.
type Game struct {
	scene   *Scene
	surface *EbitenSurface
	fps     *fpsOverlay

	start    time.Time
	now      float64 // milliseconds since the first Update
	touchIDs []ebiten.TouchID
	state    atomic.Int32

	// last outside size seen by Layout
	layoutW, layoutH int
}

// NewGame creates a Game for scene.
func NewGame(scene *Scene, cfg RunConfig) (*Game, error) {
	surface, err := NewEbitenSurface()
	if err != nil {
		return nil, err
	}
	surface.ClearColor = cfg.ClearColor

	g := &Game{scene: scene, surface: surface}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	scene.SetDebugMode(cfg.Debug)
	return g, nil
}

// Scene returns the scene driven by g.
func (g *Game) Scene() *Scene {
	return g.scene
}

// State returns the current loop state.
func (g *Game) State() LoopState {
	return LoopState(g.state.Load())
}

// Stop ends the frame loop: the next Update returns ebiten.Termination and
// Run returns nil. Safe to call from any goroutine.
func (g *Game) Stop() {
	g.state.Store(int32(LoopStopped))
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.State() == LoopStopped {
		return ebiten.Termination
	}
	g.state.CompareAndSwap(int32(LoopIdle), int32(LoopRunning))

	if g.start.IsZero() {
		g.start = time.Now()
	}
	g.processInput()
	g.advance(float64(time.Since(g.start)) / float64(time.Millisecond))
	return nil
}

// advance steps the scene to nowMillis.
func (g *Game) advance(nowMillis float64) {
	g.now = nowMillis
	g.scene.Step(nowMillis)
	if g.fps != nil {
		g.fps.update(nowMillis, g.scene.Len())
	}
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.SetTarget(screen)
	g.scene.Draw(g.surface, g.now)
	if g.fps != nil {
		g.fps.draw(screen)
	}
	g.scene.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The scene works in window units, so a
// change of window size respawns the population. Ebiten calls Layout every
// frame; an unchanged window leaves the scene alone, including any viewport
// set by a scripted resize.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.layoutW || outsideHeight != g.layoutH {
		g.layoutW, g.layoutH = outsideWidth, outsideHeight
		g.scene.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

// Run opens a resizable window and drives the game until the window is
// closed or Stop is called.
func (g *Game) Run(cfg RunConfig) error {
	cfg.applyDefaults()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

// Run is a convenience that creates a Game for scene and runs it.
//
//	scene := balloons.NewScene(balloons.SceneConfig{})
//	if err := balloons.Run(scene, balloons.RunConfig{Title: "Party"}); err != nil {
//		log.Fatal(err)
//	}
func Run(scene *Scene, cfg RunConfig) error {
	g, err := NewGame(scene, cfg)
	if err != nil {
		return err
	}
	return g.Run(cfg)
}
