package balloons

import (
	"math"
	"math/rand/v2"
	"time"
	"unicode/utf8"
)

// DefaultMessage is spelled out by the initial population.
const DefaultMessage = "HAPPY BIRTHDAY"

// Population layout constants.
const (
	maxLetterGap   = 80
	clickLift      = 30
	clickAlphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	defaultShotDir = "screenshots"
)

var (
	// SpawnJitter is the horizontal jitter applied to each letter of the message.
	SpawnJitter = Range{Min: -6, Max: 6}
	// SpawnDepth is how far below the viewport each letter of the message starts.
	SpawnDepth = Range{Min: 0, Max: 200}
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, balloon lifecycle events are forwarded to it.
type EntityStore interface {
	EmitEvent(event BalloonEvent)
}

// BalloonEvent describes a balloon being spawned, appended by a click, or
// recycled below the viewport.
type BalloonEvent struct {
	Type  EventType
	Index int // position in the draw order
	Char  rune
	X, Y  float64
	VY    float64
}

// SceneConfig configures a Scene. Zero values get defaults.
type SceneConfig struct {
	// Message is spelled out by the initial population. Default DefaultMessage.
	Message string
	// Seed seeds the default random source. Zero picks a random seed.
	Seed uint64
	// Rand overrides the random source entirely.
	Rand Rand
}

// Scene owns the ordered balloon collection and drives the per-frame
// update/draw cycle. Balloons draw back-to-front in insertion order.
//
// A Scene is not safe for concurrent use, except for InjectClick.
type Scene struct {
	message  string
	balloons []*Balloon
	viewport Viewport
	clock    FrameClock
	rng      Rand
	store    EntityStore
	debug    bool
	stats    frameStats
	recycles int // since creation

	// Injected input (inject.go)
	injectQueue clickQueue

	// Scripted automation (testrunner.go, screenshot.go)
	testRunner      *TestRunner
	screenshotQueue []string
	// ScreenshotDir is where Screenshot writes PNG files. Default "screenshots".
	ScreenshotDir string
}

// NewScene creates an empty scene. Call Resize or SpawnPopulation to create
// the initial balloons.
func NewScene(cfg SceneConfig) *Scene {
	msg := cfg.Message
	if msg == "" {
		msg = DefaultMessage
	}
	rng := cfg.Rand
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		rng = NewRand(seed)
	}
	return &Scene{
		message:       msg,
		rng:           rng,
		ScreenshotDir: defaultShotDir,
	}
}

// Message returns the message spelled by the initial population.
func (s *Scene) Message() string {
	return s.message
}

// Viewport returns the last viewport passed to Resize or SpawnPopulation.
func (s *Scene) Viewport() Viewport {
	return s.viewport
}

// Balloons returns the balloons in draw order. The returned slice MUST NOT be
// mutated.
func (s *Scene) Balloons() []*Balloon {
	return s.balloons
}

// Len returns the number of balloons.
func (s *Scene) Len() int {
	return len(s.balloons)
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// Resize records a new viewport size and respawns the whole population.
// Resizing to the current size is a no-op once balloons exist.
func (s *Scene) Resize(width, height float64) {
	if len(s.balloons) > 0 && s.viewport == (Viewport{Width: width, Height: height}) {
		return
	}
	s.SpawnPopulation(width, height)
}

// SpawnPopulation replaces every balloon with one per character of the
// message, spread evenly and centered across the width and starting below
// the bottom edge. Spaces become balloons with a blank glyph.
func (s *Scene) SpawnPopulation(width, height float64) {
	s.viewport = Viewport{Width: width, Height: height}

	n := utf8.RuneCountInString(s.message)
	gap := math.Min(maxLetterGap, math.Floor(s.viewport.safeWidth()/float64(n+1)))
	startX := (width - gap*float64(n-1)) / 2

	s.balloons = make([]*Balloon, 0, n)
	i := 0
	for _, ch := range s.message {
		x := startX + float64(i)*gap + SpawnJitter.Random(s.rng)
		y := height + SpawnDepth.Random(s.rng)
		b := NewBalloon(ch, x, y, width, s.rng)
		s.balloons = append(s.balloons, b)
		s.emit(EventSpawn, i, b)
		i++
	}
}

// Click appends a balloon with a random letter A-Z just below (x, y). It
// inflates from nothing over a third of a second. Click must be called from
// the goroutine that drives the scene; use InjectClick from anywhere else.
func (s *Scene) Click(x, y float64) *Balloon {
	ch := rune(clickAlphabet[s.rng.IntN(len(clickAlphabet))])
	b := NewBalloon(ch, x, y+clickLift, s.viewport.Width, s.rng)
	b.inflate = newInflateTween()
	s.balloons = append(s.balloons, b)
	s.emit(EventClick, len(s.balloons)-1, b)
	s.stats.clicks++
	return b
}

// Step advances the simulation to timeMillis and returns the normalized step
// that was applied. Queued input is applied first. The first Step always
// advances by exactly one frame.
func (s *Scene) Step(timeMillis float64) float64 {
	s.beginFrame()
	dt := s.clock.Tick(timeMillis)

	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	for i, b := range s.balloons {
		s.updateBalloon(i, b, dt)
	}
	if s.debug {
		s.stats.updateTime += time.Since(t0)
		s.endFrame(timeMillis)
	}
	return dt
}

// Draw clears sf and draws every balloon in order. It does not change
// simulation state.
func (s *Scene) Draw(sf Surface, timeMillis float64) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	sf.Clear()
	for _, b := range s.balloons {
		b.Draw(sf, timeMillis)
	}
	if s.debug {
		s.stats.drawTime += time.Since(t0)
	}
}

// Frame runs one complete frame the way a display-refresh callback would:
// apply queued input, clear sf, then update and draw each balloon in turn.
// It returns the normalized step.
func (s *Scene) Frame(sf Surface, timeMillis float64) float64 {
	s.beginFrame()
	dt := s.clock.Tick(timeMillis)

	if !s.debug {
		sf.Clear()
		for i, b := range s.balloons {
			s.updateBalloon(i, b, dt)
			b.Draw(sf, timeMillis)
		}
		return dt
	}

	// Update and draw alternate per balloon, so each half is timed on its own.
	t0 := time.Now()
	var update time.Duration
	sf.Clear()
	for i, b := range s.balloons {
		t1 := time.Now()
		s.updateBalloon(i, b, dt)
		update += time.Since(t1)
		b.Draw(sf, timeMillis)
	}
	s.stats.updateTime += update
	s.stats.drawTime += time.Since(t0) - update
	s.endFrame(timeMillis)
	return dt
}

// beginFrame runs the scripted runner and applies injected clicks.
func (s *Scene) beginFrame() {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.drainInjected()
}

func (s *Scene) updateBalloon(i int, b *Balloon, dt float64) {
	if b.Update(dt, s.viewport, s.rng) {
		s.stats.recycles++
		s.recycles++
		s.emit(EventRecycle, i, b)
	}
}

func (s *Scene) emit(t EventType, i int, b *Balloon) {
	if s.store == nil {
		return
	}
	s.store.EmitEvent(BalloonEvent{
		Type:  t,
		Index: i,
		Char:  b.Char,
		X:     b.X,
		Y:     b.Y,
		VY:    b.VY,
	})
}
