package balloons

import (
	"image/color"
	"math"
	"math/rand/v2"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the glyph color.
var ColorWhite = Color{1, 1, 1, 1}

// HSL returns an opaque color from hue in degrees and saturation/lightness in
// [0, 1]. Hue wraps, so negative values and values past 360 are accepted.
func HSL(hue, saturation, lightness float64) Color {
	hue = math.Mod(hue, 360)
	if hue < 0 {
		hue += 360
	}
	c := colorful.Hsl(hue, saturation, lightness).Clamped()
	return Color{R: c.R, G: c.G, B: c.B, A: 1}
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A)*255 + 0.5),
		G: uint8(clamp01(c.G*c.A)*255 + 0.5),
		B: uint8(clamp01(c.B*c.A)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Viewport is the visible area in drawing units. The origin is the top-left
// corner, with Y increasing downward.
type Viewport struct {
	Width, Height float64
}

// safeWidth returns the width clamped to at least 1 so it can be used as a
// denominator.
func (v Viewport) safeWidth() float64 {
	return math.Max(v.Width, 1)
}

// Rand is the random source used for every randomized balloon parameter.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a PCG-backed Rand. The same seed always yields the same
// sequence.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Range is a half-open [Min, Max) interval sampled uniformly.
type Range struct {
	Min, Max float64
}

// Random returns a value in [Min, Max) drawn from rng.
func (r Range) Random(rng Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	v := r.Min + rng.Float64()*(r.Max-r.Min)
	// Rounding can land exactly on Max; keep the interval half-open.
	if r.Max > r.Min && v >= r.Max {
		v = math.Nextafter(r.Max, r.Min)
	}
	return v
}

// Contains reports whether v lies in [Min, Max).
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v < r.Max
}

// EventType identifies a kind of balloon lifecycle event.
type EventType uint8

const (
	EventSpawn   EventType = iota // balloon created by a population spawn
	EventClick                    // balloon appended by a click
	EventRecycle                  // balloon left the top and was moved below the viewport
)

// String returns the event name.
func (e EventType) String() string {
	switch e {
	case EventSpawn:
		return "spawn"
	case EventClick:
		return "click"
	case EventRecycle:
		return "recycle"
	default:
		return "unknown"
	}
}
