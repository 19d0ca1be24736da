package mosaic

// Heart outline box. The path below is authored in this coordinate space.
const (
	HeartWidth  = 122.88
	HeartHeight = 107.41
)

// Hit-test and drawing scale factors applied to the outline.
const (
	heartRejectFactor  = 1.3 // cheap circular reject before the exact test
	heartDetectFactor  = 1.8 // detection box = radius * 1.8
	heartDrawFactor    = 2.0 // drawn box = size * 2
	heartBeatScaleGain = 0.4
)

// heartOutline is the one and only heart definition.
var heartOutline = buildHeartPath()

// heartPolys caches the flattened outline for hit testing.
var heartPolys = heartOutline.Flatten(defaultFlattenSteps)

func buildHeartPath() Path {
	var p Path
	p.MoveTo(60.83, 17.19)
	p.CubicTo(68.84, 8.84, 74.45, 1.62, 86.79, 0.21)
	p.CubicTo(109.96, -2.45, 131.27, 21.27, 119.57, 44.62)
	p.CubicTo(116.24, 51.27, 109.46, 59.18, 101.96, 66.94)
	p.CubicTo(93.73, 75.46, 84.62, 83.81, 78.24, 90.14)
	p.LineTo(60.84, 107.40)
	p.LineTo(46.46, 93.56)
	p.CubicTo(29.16, 76.9, 0.95, 55.93, 0.02, 29.95)
	p.CubicTo(-0.63, 11.75, 13.73, 0.09, 30.25, 0.3)
	p.CubicTo(45.01, 0.5, 51.22, 7.84, 60.83, 17.19)
	p.Close()
	return p
}

// HeartPath returns a copy of the shared heart outline in its authoring
// space (HeartWidth x HeartHeight).
func HeartPath() Path {
	out := Path{Segments: make([]PathSegment, len(heartOutline.Segments))}
	copy(out.Segments, heartOutline.Segments)
	return out
}

// heartTransform maps the outline so that its box is centred on (cx, cy)
// and its larger side spans box units.
func heartTransform(cx, cy, box float64) [6]float64 {
	scale := box / max(HeartWidth, HeartHeight)
	m := translateAffine(identityTransform, cx, cy)
	m = scaleAffine(m, scale, scale)
	return translateAffine(m, -HeartWidth/2, -HeartHeight/2)
}

// IsInsideHeart reports whether (px, py) lies inside the heart outline
// centred on (cx, cy) at the given hit radius.
func IsInsideHeart(px, py, cx, cy, radius float64) bool {
	if radius <= 0 || !finite(px) || !finite(py) || !finite(cx) || !finite(cy) {
		return false
	}
	if distance(px, py, cx, cy) > radius*heartRejectFactor {
		return false
	}
	inv := invertAffine(heartTransform(cx, cy, radius*heartDetectFactor))
	lx, ly := transformPoint(inv, px, py)
	return windingContains(heartPolys, lx, ly)
}

// DrawHeart fills the shared heart outline centred at the surface's current
// origin. size is the half-extent of the drawn box; beat enlarges it.
func DrawHeart(s Surface, size, beat float64) {
	heartSize := size * (1 + beat*heartBeatScaleGain)
	scale := heartSize * heartDrawFactor / max(HeartWidth, HeartHeight)
	s.Scale(scale, scale)
	s.Translate(-HeartWidth/2, -HeartHeight/2)
	s.BeginPath()
	heartOutline.Trace(s)
	s.Fill()
}

// DrawCircle fills a circle of the given radius at the current origin.
func DrawCircle(s Surface, radius float64) {
	s.BeginPath()
	s.Arc(0, 0, radius)
	s.Fill()
}
