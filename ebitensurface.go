package balloons

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ellipseSegments is the number of polyline segments used to approximate a
// full ellipse.
const ellipseSegments = 48

// subpath is one run of world-space points started by MoveTo or Ellipse.
type subpath struct {
	pts    []Vec2
	closed bool
}

// EbitenSurface implements Surface on top of an *ebiten.Image. Paths are
// flattened to world-space polylines as they are built; Fill triangulates
// each subpath as a convex fan and Stroke extrudes each segment into a quad.
// Both are submitted with DrawTriangles against a white pixel, so every
// balloon draws in a handful of calls.
type EbitenSurface struct {
	// ClearColor is used by Clear. A zero alpha clears to transparent.
	ClearColor Color

	dst *ebiten.Image
	ts  transformStack

	fill      Color
	stroke    Color
	lineWidth float64
	fontSize  float64

	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace

	white *ebiten.Image
	paths []subpath

	verts []ebiten.Vertex
	inds  []uint16
}

// NewEbitenSurface creates a surface that renders glyphs with the Go Regular
// sans-serif face. Call SetTarget before drawing.
func NewEbitenSurface() (*EbitenSurface, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("balloons: failed to parse font: %w", err)
	}

	img := ebiten.NewImage(3, 3)
	img.Fill(ColorWhite.toRGBA())

	return &EbitenSurface{
		ts:        newTransformStack(),
		fill:      ColorWhite,
		stroke:    ColorWhite,
		lineWidth: 1,
		fontSize:  16,
		source:    source,
		faces:     make(map[float64]*text.GoTextFace),
		white:     img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}, nil
}

// SetTarget points the surface at dst and resets the transform stack and
// any pending path.
func (s *EbitenSurface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
	s.ts.reset()
	s.paths = s.paths[:0]
}

func (s *EbitenSurface) Clear() {
	if s.dst == nil {
		return
	}
	if s.ClearColor.A > 0 {
		s.dst.Fill(s.ClearColor.toRGBA())
		return
	}
	s.dst.Clear()
}

func (s *EbitenSurface) Save()    { s.ts.save() }
func (s *EbitenSurface) Restore() { s.ts.restore() }

func (s *EbitenSurface) Translate(x, y float64) {
	s.ts.current = translateAffine(s.ts.current, x, y)
}

func (s *EbitenSurface) Rotate(radians float64) {
	s.ts.current = rotateAffine(s.ts.current, radians)
}

func (s *EbitenSurface) Scale(sx, sy float64) {
	s.ts.current = scaleAffine(s.ts.current, sx, sy)
}

func (s *EbitenSurface) SetFillColor(c Color)   { s.fill = c }
func (s *EbitenSurface) SetStrokeColor(c Color) { s.stroke = c }
func (s *EbitenSurface) SetLineWidth(w float64) { s.lineWidth = w }

func (s *EbitenSurface) SetFontSize(size float64) {
	if size > 0 {
		s.fontSize = size
	}
}

func (s *EbitenSurface) BeginPath() {
	s.paths = s.paths[:0]
}

func (s *EbitenSurface) MoveTo(x, y float64) {
	wx, wy := transformPoint(s.ts.current, x, y)
	s.paths = append(s.paths, subpath{pts: []Vec2{{wx, wy}}})
}

func (s *EbitenSurface) LineTo(x, y float64) {
	if len(s.paths) == 0 {
		s.MoveTo(x, y)
		return
	}
	wx, wy := transformPoint(s.ts.current, x, y)
	last := &s.paths[len(s.paths)-1]
	last.pts = append(last.pts, Vec2{wx, wy})
}

func (s *EbitenSurface) Ellipse(cx, cy, rx, ry float64) {
	pts := make([]Vec2, ellipseSegments)
	for i := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / ellipseSegments)
		wx, wy := transformPoint(s.ts.current, cx+rx*cos, cy+ry*sin)
		pts[i] = Vec2{wx, wy}
	}
	s.paths = append(s.paths, subpath{pts: pts, closed: true})
}

func (s *EbitenSurface) ClosePath() {
	if len(s.paths) == 0 {
		return
	}
	s.paths[len(s.paths)-1].closed = true
}

// Fill fills every subpath of the current path. Subpaths are assumed convex.
func (s *EbitenSurface) Fill() {
	if s.dst == nil {
		return
	}
	s.verts = s.verts[:0]
	s.inds = s.inds[:0]
	for _, p := range s.paths {
		if len(p.pts) < 3 {
			continue
		}
		base := uint16(len(s.verts))
		for _, pt := range p.pts {
			s.verts = append(s.verts, s.vertex(pt.X, pt.Y, s.fill))
		}
		for i := 1; i < len(p.pts)-1; i++ {
			s.inds = append(s.inds, base, base+uint16(i), base+uint16(i+1))
		}
	}
	s.flush()
}

// Stroke outlines every subpath with the current line width. Joins are not
// mitered; segments overlap at their shared endpoints.
func (s *EbitenSurface) Stroke() {
	if s.dst == nil {
		return
	}
	m := s.ts.current
	half := s.lineWidth * math.Sqrt(math.Abs(m[0]*m[3]-m[1]*m[2])) / 2

	s.verts = s.verts[:0]
	s.inds = s.inds[:0]
	for _, p := range s.paths {
		n := len(p.pts)
		segs := n - 1
		if p.closed && n > 2 {
			segs = n
		}
		for i := 0; i < segs; i++ {
			a, b := p.pts[i], p.pts[(i+1)%n]
			s.appendSegment(a, b, half)
		}
	}
	s.flush()
}

// appendSegment extrudes a-b into a quad of half-width h.
func (s *EbitenSurface) appendSegment(a, b Vec2, h float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	ln := math.Hypot(dx, dy)
	if ln < 1e-10 {
		return
	}
	nx, ny := -dy/ln*h, dx/ln*h

	base := uint16(len(s.verts))
	s.verts = append(s.verts,
		s.vertex(a.X+nx, a.Y+ny, s.stroke),
		s.vertex(b.X+nx, b.Y+ny, s.stroke),
		s.vertex(a.X-nx, a.Y-ny, s.stroke),
		s.vertex(b.X-nx, b.Y-ny, s.stroke),
	)
	s.inds = append(s.inds,
		base+0, base+1, base+2,
		base+1, base+3, base+2,
	)
}

// vertex builds a premultiplied solid-color vertex sampling the white pixel.
func (s *EbitenSurface) vertex(x, y float64, c Color) ebiten.Vertex {
	a := float32(c.A)
	return ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(c.R) * a,
		ColorG: float32(c.G) * a,
		ColorB: float32(c.B) * a,
		ColorA: a,
	}
}

func (s *EbitenSurface) flush() {
	if len(s.inds) == 0 {
		return
	}
	var triOp ebiten.DrawTrianglesOptions
	triOp.AntiAlias = true
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	s.dst.DrawTriangles(s.verts, s.inds, s.white, &triOp)
}

// FillText draws s centered on (x, y) under the current transform.
func (s *EbitenSurface) FillText(str string, x, y float64) {
	if s.dst == nil || str == "" {
		return
	}
	m := s.ts.current

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	var world ebiten.GeoM
	world.SetElement(0, 0, m[0])
	world.SetElement(1, 0, m[1])
	world.SetElement(0, 1, m[2])
	world.SetElement(1, 1, m[3])
	world.SetElement(0, 2, m[4])
	world.SetElement(1, 2, m[5])
	op.GeoM.Concat(world)
	op.ColorScale.ScaleWithColor(s.fill.toRGBA())
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter

	text.Draw(s.dst, str, s.face(), op)
}

// face returns a cached face for the current font size.
func (s *EbitenSurface) face() *text.GoTextFace {
	if f, ok := s.faces[s.fontSize]; ok {
		return f
	}
	f := &text.GoTextFace{Source: s.source, Size: s.fontSize}
	s.faces[s.fontSize] = f
	return f
}
