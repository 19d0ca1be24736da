package mosaic

import "math"

// Vec2 is a 2D vector used for positions, offsets and directions throughout
// the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Section identifies one of the four polygonal regions of the logo.
// SectionNone is used for points outside the silhouette.
type Section uint8

const (
	SectionNone Section = iota
	Section1            // right notch, dark family
	Section2            // upper-right triangle, light family
	Section3            // centre notch, dark family
	Section4            // left notch, light family
)

// Light reports whether the section belongs to the light-green family
// (sections 2 and 4).
func (s Section) Light() bool {
	return s == Section2 || s == Section4
}

// Region is the result of classifying a canvas point against the logo.
type Region struct {
	Inside  bool
	Section Section
}

// distance returns the Euclidean distance between two points.
func distance(ax, ay, bx, by float64) float64 {
	dx := ax - bx
	dy := ay - by
	return math.Sqrt(dx*dx + dy*dy)
}

// finite reports whether v is neither NaN nor infinite.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0 || math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	}
	return v
}
