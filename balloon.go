package balloons

import "math"

// Balloon physics and geometry constants.
var (
	// RiseSpeed is the range vertical velocity is drawn from, in units per
	// 60 Hz frame. Negative values move up.
	RiseSpeed = Range{Min: -2.6, Max: -1.0}
	// RespawnDepth is how far below the viewport a recycled balloon reappears.
	RespawnDepth = Range{Min: 20, Max: 140}
)

const (
	minFontSize     = 18
	fontSizeRatio   = 0.02
	radiusXPad      = 10
	radiusYPad      = 14
	recycleMargin   = 60
	respawnInset    = 40
	wiggleFrequency = 0.01
	wiggleAmplitude = 0.25
	swaySpeed       = 0.002
	swayAmplitude   = 0.03
	stringLength    = 30
	stringWidth     = 2
	knotHalfWidth   = 6
	knotDepth       = 8
	highlightOffset = 0.35
	highlightRatio  = 0.22
	saturation      = 0.8
	lightness       = 0.5
)

var (
	stringColor    = Color{1, 1, 1, 0.14}
	highlightColor = Color{1, 1, 1, 0.22}
)

// Balloon is one floating letter. Char, Hue, Color, Size, the radii, and
// SwayPhase are fixed at construction; X, Y, and VY change every frame.
type Balloon struct {
	Char rune

	X, Y float64
	// VY is the vertical velocity in units per 60 Hz frame. Always negative.
	VY float64

	Hue   int
	Color Color

	Size             float64
	RadiusX, RadiusY float64

	// SwayPhase offsets the draw-time rocking so balloons don't move in lockstep.
	SwayPhase float64

	inflate *inflateTween
}

// NewBalloon creates a balloon bearing char at (x, y). Color and size are
// derived from viewportWidth; velocity and sway phase are drawn from rng.
func NewBalloon(char rune, x, y, viewportWidth float64, rng Rand) *Balloon {
	w := math.Max(viewportWidth, 1)
	hue := int(math.Floor(360 * x / w))
	size := math.Max(minFontSize, math.Floor(w*fontSizeRatio))
	return &Balloon{
		Char:      char,
		X:         x,
		Y:         y,
		VY:        RiseSpeed.Random(rng),
		Hue:       hue,
		Color:     HSL(float64(hue), saturation, lightness),
		Size:      size,
		RadiusX:   size + radiusXPad,
		RadiusY:   size + radiusYPad,
		SwayPhase: rng.Float64() * 2 * math.Pi,
	}
}

// Inflating reports whether the balloon is still playing its spawn animation.
func (b *Balloon) Inflating() bool {
	return b.inflate != nil && !b.inflate.done
}

// Update advances the balloon by dt normalized frames. When the balloon's
// top edge is more than 60 units above the viewport it is moved back below
// the bottom edge with a fresh velocity; Update reports whether that happened.
func (b *Balloon) Update(dt float64, vp Viewport, rng Rand) bool {
	b.Y += b.VY * dt
	b.X += math.Sin(b.Y*wiggleFrequency+float64(b.Hue)) * wiggleAmplitude

	if b.inflate != nil {
		b.inflate.update(dt)
	}

	if b.Y+b.RadiusY >= -recycleMargin {
		return false
	}
	b.Y = vp.Height + RespawnDepth.Random(rng)
	b.X = Range{Min: respawnInset, Max: vp.Width - respawnInset}.Random(rng)
	b.VY = RiseSpeed.Random(rng)
	return true
}

// Draw renders the balloon onto s. timeMillis drives the sway; the balloon
// itself is not modified.
func (b *Balloon) Draw(s Surface, timeMillis float64) {
	// String first so the body covers its top end.
	s.SetStrokeColor(stringColor)
	s.SetLineWidth(stringWidth)
	s.BeginPath()
	s.MoveTo(b.X, b.Y+b.RadiusY)
	s.LineTo(b.X, b.Y+b.RadiusY+stringLength)
	s.Stroke()

	sway := math.Sin(timeMillis*swaySpeed+b.SwayPhase) * swayAmplitude

	s.Save()
	s.Translate(b.X, b.Y)
	s.Rotate(sway)
	if b.inflate != nil && !b.inflate.done {
		s.Scale(b.inflate.scale, b.inflate.scale)
	}

	// Body.
	s.SetFillColor(b.Color)
	s.BeginPath()
	s.Ellipse(0, 0, b.RadiusX, b.RadiusY)
	s.Fill()

	// Knot.
	s.BeginPath()
	s.MoveTo(knotHalfWidth, b.RadiusY-1)
	s.LineTo(-knotHalfWidth, b.RadiusY-1)
	s.LineTo(0, b.RadiusY+knotDepth)
	s.ClosePath()
	s.Fill()

	// Highlight.
	s.SetFillColor(highlightColor)
	s.BeginPath()
	s.Ellipse(-b.RadiusX*highlightOffset, -b.RadiusY*highlightOffset,
		b.RadiusX*highlightRatio, b.RadiusY*highlightRatio)
	s.Fill()

	// Glyph last so nothing covers it.
	s.SetFillColor(ColorWhite)
	s.SetFontSize(b.Size)
	s.FillText(string(b.Char), 0, 0)

	s.Restore()
}
