package mosaic

// Logo dimensions in logo-local units. The silhouette is drawn inside this
// box, centred on the canvas and scaled by the active tier's logo scale.
const (
	LogoWidth  = 480.0
	LogoHeight = 320.0
)

// logoSections lists the outline of each section in logo-local space, in the
// order they are tested. The first match wins.
var logoSections = [4]struct {
	section Section
	points  []Vec2
}{
	{Section1, []Vec2{{320, 160}, {320, 320}, {480, 240}, {480, 80}}},
	{Section2, []Vec2{{320, 0}, {320, 160}, {480, 80}}},
	{Section3, []Vec2{{160, 80}, {160, 240}, {320, 160}, {320, 0}}},
	{Section4, []Vec2{{0, 0}, {0, 160}, {160, 240}, {160, 80}}},
}

// LogoSection returns a copy of the outline for a section in logo-local
// space. It returns nil for SectionNone.
func LogoSection(s Section) []Vec2 {
	for _, ls := range logoSections {
		if ls.section == s {
			out := make([]Vec2, len(ls.points))
			copy(out, ls.points)
			return out
		}
	}
	return nil
}

// LogoBounds returns the canvas-space rectangle occupied by the logo box.
func LogoBounds(width, height, logoScale float64) Rect {
	w := LogoWidth * logoScale
	h := LogoHeight * logoScale
	return Rect{X: width/2 - w/2, Y: height/2 - h/2, Width: w, Height: h}
}

// ClassifyLogoRegion maps a canvas point into logo-local space and reports
// which section, if any, contains it.
func ClassifyLogoRegion(x, y, width, height, logoScale float64) Region {
	if logoScale <= 0 || !finite(x) || !finite(y) {
		return Region{}
	}
	b := LogoBounds(width, height, logoScale)
	lx := (x - b.X) / logoScale
	ly := (y - b.Y) / logoScale
	return classifyLocal(lx, ly)
}

// classifyLocal classifies a point already in logo-local space.
func classifyLocal(lx, ly float64) Region {
	if lx < 0 || lx > LogoWidth || ly < 0 || ly > LogoHeight {
		return Region{}
	}
	for _, ls := range logoSections {
		if pointInPolygon(lx, ly, ls.points) {
			return Region{Inside: true, Section: ls.section}
		}
	}
	return Region{}
}

// pointInPolygon is the even-odd ray casting test. A horizontal ray is cast
// from the point; an edge counts when exactly one endpoint lies strictly
// above the point, so shared vertices are never counted twice.
func pointInPolygon(x, y float64, polygon []Vec2) bool {
	inside := false
	n := len(polygon)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := polygon[i], polygon[j]
		if (pi.Y > y) != (pj.Y > y) &&
			x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}
	return inside
}
