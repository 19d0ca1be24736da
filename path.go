package mosaic

import "math"

// PathOp identifies the kind of a path segment.
type PathOp uint8

const (
	PathMoveTo  PathOp = iota // start a new subpath at P[0]
	PathLineTo                // straight line to P[0]
	PathCubicTo               // cubic Bézier with controls P[0], P[1] ending at P[2]
	PathArc                   // full circle centred at P[0] with radius P[1].X
	PathClose                 // close the current subpath
)

// PathSegment is one recorded drawing instruction.
type PathSegment struct {
	Op PathOp
	P  [3]Vec2
}

// Path is a recorded outline. The same Path value is replayed onto drawing
// surfaces and used for point containment, so what is hit-tested is exactly
// what is drawn.
type Path struct {
	Segments []PathSegment
}

// MoveTo starts a new subpath.
func (p *Path) MoveTo(x, y float64) {
	p.Segments = append(p.Segments, PathSegment{Op: PathMoveTo, P: [3]Vec2{{x, y}}})
}

// LineTo adds a straight segment.
func (p *Path) LineTo(x, y float64) {
	p.Segments = append(p.Segments, PathSegment{Op: PathLineTo, P: [3]Vec2{{x, y}}})
}

// CubicTo adds a cubic Bézier segment.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.Segments = append(p.Segments, PathSegment{
		Op: PathCubicTo,
		P:  [3]Vec2{{c1x, c1y}, {c2x, c2y}, {x, y}},
	})
}

// Arc adds a full circle as its own closed subpath.
func (p *Path) Arc(cx, cy, radius float64) {
	p.Segments = append(p.Segments, PathSegment{Op: PathArc, P: [3]Vec2{{cx, cy}, {radius, 0}}})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.Segments = append(p.Segments, PathSegment{Op: PathClose})
}

// Reset empties the path, keeping its storage.
func (p *Path) Reset() {
	p.Segments = p.Segments[:0]
}

// Empty reports whether the path has no segments.
func (p *Path) Empty() bool {
	return len(p.Segments) == 0
}

// IsCircle reports whether the path consists of a single arc.
func (p *Path) IsCircle() bool {
	return len(p.Segments) == 1 && p.Segments[0].Op == PathArc
}

// Trace replays the path onto a surface, inside a BeginPath/ClosePath pair
// supplied by the caller.
func (p *Path) Trace(s Surface) {
	for _, seg := range p.Segments {
		switch seg.Op {
		case PathMoveTo:
			s.MoveTo(seg.P[0].X, seg.P[0].Y)
		case PathLineTo:
			s.LineTo(seg.P[0].X, seg.P[0].Y)
		case PathCubicTo:
			s.CubicTo(seg.P[0].X, seg.P[0].Y, seg.P[1].X, seg.P[1].Y, seg.P[2].X, seg.P[2].Y)
		case PathArc:
			s.Arc(seg.P[0].X, seg.P[0].Y, seg.P[1].X)
		case PathClose:
			s.ClosePath()
		}
	}
}

// Transformed returns a copy of the path with every point mapped through m.
// Arc radii are scaled by the uniform scale of m.
func (p *Path) Transformed(m [6]float64) Path {
	out := Path{Segments: make([]PathSegment, len(p.Segments))}
	scale := affineScale(m)
	for i, seg := range p.Segments {
		ns := seg
		switch seg.Op {
		case PathMoveTo, PathLineTo:
			ns.P[0].X, ns.P[0].Y = transformPoint(m, seg.P[0].X, seg.P[0].Y)
		case PathCubicTo:
			for k := 0; k < 3; k++ {
				ns.P[k].X, ns.P[k].Y = transformPoint(m, seg.P[k].X, seg.P[k].Y)
			}
		case PathArc:
			ns.P[0].X, ns.P[0].Y = transformPoint(m, seg.P[0].X, seg.P[0].Y)
			ns.P[1].X = seg.P[1].X * scale
		}
		out.Segments[i] = ns
	}
	return out
}

// defaultFlattenSteps is the number of line segments used per cubic.
const defaultFlattenSteps = 24

// Flatten converts the path to closed polygons, one per subpath. Cubics are
// subdivided into steps segments; arcs into 4*steps.
func (p *Path) Flatten(steps int) [][]Vec2 {
	if steps <= 0 {
		steps = defaultFlattenSteps
	}
	var polys [][]Vec2
	var cur []Vec2
	var start, pen Vec2

	flush := func() {
		if len(cur) >= 3 {
			polys = append(polys, cur)
		}
		cur = nil
	}

	for _, seg := range p.Segments {
		switch seg.Op {
		case PathMoveTo:
			flush()
			start = seg.P[0]
			pen = start
			cur = append(cur, pen)
		case PathLineTo:
			if cur == nil {
				cur = append(cur, pen)
			}
			pen = seg.P[0]
			cur = append(cur, pen)
		case PathCubicTo:
			if cur == nil {
				cur = append(cur, pen)
			}
			a, c1, c2, b := pen, seg.P[0], seg.P[1], seg.P[2]
			for i := 1; i <= steps; i++ {
				t := float64(i) / float64(steps)
				u := 1 - t
				u2 := u * u
				t2 := t * t
				cur = append(cur, Vec2{
					X: u2*u*a.X + 3*u2*t*c1.X + 3*u*t2*c2.X + t2*t*b.X,
					Y: u2*u*a.Y + 3*u2*t*c1.Y + 3*u*t2*c2.Y + t2*t*b.Y,
				})
			}
			pen = b
		case PathArc:
			flush()
			c, r := seg.P[0], seg.P[1].X
			n := steps * 4
			circle := make([]Vec2, n)
			for i := 0; i < n; i++ {
				sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
				circle[i] = Vec2{X: c.X + r*cos, Y: c.Y + r*sin}
			}
			polys = append(polys, circle)
			pen = Vec2{X: c.X + r, Y: c.Y}
		case PathClose:
			flush()
			pen = start
		}
	}
	flush()
	return polys
}

// Contains reports whether (x, y) lies inside the filled path using the
// nonzero winding rule, matching how surfaces fill it.
func (p *Path) Contains(x, y float64) bool {
	return windingContains(p.Flatten(defaultFlattenSteps), x, y)
}

// windingContains computes the nonzero winding number of (x, y) against a
// set of closed polygons.
func windingContains(polys [][]Vec2, x, y float64) bool {
	winding := 0
	for _, poly := range polys {
		n := len(poly)
		for i := 0; i < n; i++ {
			a := poly[i]
			b := poly[(i+1)%n]
			if a.Y <= y {
				if b.Y > y && cross(a, b, x, y) > 0 {
					winding++
				}
			} else if b.Y <= y && cross(a, b, x, y) < 0 {
				winding--
			}
		}
	}
	return winding != 0
}

// cross returns the z component of (b-a) x (p-a).
func cross(a, b Vec2, x, y float64) float64 {
	return (b.X-a.X)*(y-a.Y) - (x-a.X)*(b.Y-a.Y)
}

// Bounds returns the axis-aligned bounds of the flattened path.
func (p *Path) Bounds() Rect {
	polys := p.Flatten(defaultFlattenSteps)
	first := true
	var minX, minY, maxX, maxY float64
	for _, poly := range polys {
		for _, v := range poly {
			if first {
				minX, maxX, minY, maxY = v.X, v.X, v.Y, v.Y
				first = false
				continue
			}
			minX = math.Min(minX, v.X)
			maxX = math.Max(maxX, v.X)
			minY = math.Min(minY, v.Y)
			maxY = math.Max(maxY, v.Y)
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
