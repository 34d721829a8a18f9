package balloons

// Surface is the drawing context balloons render into. It mirrors the small
// subset of an HTML-canvas-like immediate-mode API that a balloon needs:
// a save/restore transform stack, path building with lines and ellipses,
// fill and stroke with straight-alpha colors, and centered text.
//
// Path coordinates are interpreted under the transform that is current when
// the point is added, as with a canvas 2D context.
type Surface interface {
	// Clear erases the whole surface.
	Clear()

	Save()
	Restore()
	Translate(x, y float64)
	Rotate(radians float64)
	Scale(sx, sy float64)

	SetFillColor(c Color)
	SetStrokeColor(c Color)
	SetLineWidth(w float64)
	SetFontSize(size float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	// Ellipse adds a closed elliptical subpath centered on (cx, cy).
	Ellipse(cx, cy, rx, ry float64)
	ClosePath()
	Fill()
	Stroke()

	// FillText draws s centered horizontally and vertically on (x, y)
	// using the current fill color and font size.
	FillText(s string, x, y float64)
}
