package mosaic

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DefaultBackground is the canvas clear color.
var DefaultBackground = HexToRGB("#111827")

// glowPasses approximate a shadow blur with translucent enlarged copies of
// the shape, drawn outermost first.
var glowPasses = [...]struct{ spread, alpha float64 }{
	{spread: 1.0, alpha: 0.08},
	{spread: 0.6, alpha: 0.12},
	{spread: 0.3, alpha: 0.18},
}

// --- White pixel singleton (no sync.Once, drawing is single-threaded) ---

var whiteImage *ebiten.Image

// whiteSubImage returns the inner pixel of a 3x3 white image, so sampling at
// (1, 1) never bleeds across the edge.
func whiteSubImage() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
	}
	return whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// EbitenSurface draws onto an *ebiten.Image. Circles go through
// vector.DrawFilledCircle; every other path is triangulated with
// vector.Path and filled with the nonzero rule.
type EbitenSurface struct {
	Canvas
	Background RGB

	target   *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewEbitenSurface returns a surface that clears to DefaultBackground.
func NewEbitenSurface() *EbitenSurface {
	return &EbitenSurface{Canvas: NewCanvas(), Background: DefaultBackground}
}

// SetTarget selects the image subsequent calls draw onto.
func (s *EbitenSurface) SetTarget(img *ebiten.Image) {
	s.target = img
}

// Clear fills the target with the background and resets the transform stack.
func (s *EbitenSurface) Clear() {
	s.ResetState()
	if s.target == nil {
		return
	}
	s.target.Fill(color.NRGBA{R: s.Background.R, G: s.Background.G, B: s.Background.B, A: 0xff})
}

// Fill draws the current path with the current fill color and glow.
func (s *EbitenSurface) Fill() {
	p := s.CurrentPath()
	if s.target == nil || p.Empty() {
		return
	}
	fill := s.FillColor()
	glow, blur := s.Shadow()
	if p.IsCircle() {
		seg := p.Segments[0]
		s.fillCircle(seg.P[0], seg.P[1].X, fill, glow, blur)
		return
	}
	s.fillPath(p, fill, glow, blur)
}

func (s *EbitenSurface) fillCircle(c Vec2, r float64, fill, glow RGB, blur float64) {
	cx, cy := float32(c.X), float32(c.Y)
	if blur > 0 {
		for _, g := range glowPasses {
			vector.DrawFilledCircle(s.target, cx, cy, float32(r+blur*g.spread), nrgba(glow, g.alpha), true)
		}
	}
	vector.DrawFilledCircle(s.target, cx, cy, float32(r), nrgba(fill, 1), true)
}

func (s *EbitenSurface) fillPath(p *Path, fill, glow RGB, blur float64) {
	if blur > 0 {
		b := p.Bounds()
		c := b.Center()
		if half := max(b.Width, b.Height) / 2; half > 0 {
			for _, g := range glowPasses {
				k := (half + blur*g.spread) / half
				m := translateAffine(identityTransform, c.X, c.Y)
				m = scaleAffine(m, k, k)
				m = translateAffine(m, -c.X, -c.Y)
				grown := p.Transformed(m)
				s.drawPath(&grown, glow, g.alpha)
			}
		}
	}
	s.drawPath(p, fill, 1)
}

// drawPath triangulates p and draws it in a single DrawTriangles call.
func (s *EbitenSurface) drawPath(p *Path, c RGB, alpha float64) {
	var vp vector.Path
	for _, seg := range p.Segments {
		switch seg.Op {
		case PathMoveTo:
			vp.MoveTo(float32(seg.P[0].X), float32(seg.P[0].Y))
		case PathLineTo:
			vp.LineTo(float32(seg.P[0].X), float32(seg.P[0].Y))
		case PathCubicTo:
			vp.CubicTo(
				float32(seg.P[0].X), float32(seg.P[0].Y),
				float32(seg.P[1].X), float32(seg.P[1].Y),
				float32(seg.P[2].X), float32(seg.P[2].Y))
		case PathArc:
			cx, cy, r := float32(seg.P[0].X), float32(seg.P[0].Y), float32(seg.P[1].X)
			vp.MoveTo(cx+r, cy)
			vp.Arc(cx, cy, r, 0, 2*math.Pi, vector.Clockwise)
			vp.Close()
		case PathClose:
			vp.Close()
		}
	}

	s.vertices, s.indices = vp.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	if len(s.indices) == 0 {
		return
	}
	r, g, b, _ := c.RGBA()
	a := float32(alpha)
	for i := range s.vertices {
		v := &s.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = r, g, b, a
	}
	op := &ebiten.DrawTrianglesOptions{
		FillRule:  ebiten.FillRuleNonZero,
		AntiAlias: true,
	}
	s.target.DrawTriangles(s.vertices, s.indices, whiteSubImage(), op)
}

// nrgba converts a color and straight alpha to color.NRGBA.
func nrgba(c RGB, alpha float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(clamp01(alpha) * 0xff))}
}
