package mosaic

// Surface is the 2D drawing target the frame renderer issues commands to.
// Its method set mirrors an immediate-mode canvas: a transform stack, a
// current path built from moves, lines, cubics and arcs, and a solid fill
// with an optional shadow.
type Surface interface {
	Clear()
	Save()
	Restore()
	Translate(x, y float64)
	Scale(sx, sy float64)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	Arc(x, y, radius float64)
	ClosePath()
	SetFillColor(c RGB)
	SetShadow(c RGB, blur float64)
	Fill()
}

// canvasState is the saveable portion of a Canvas.
type canvasState struct {
	transform   [6]float64
	fill        RGB
	shadowColor RGB
	shadowBlur  float64
}

// Canvas implements the transform stack and path building half of Surface.
// Concrete surfaces embed it and provide Clear and Fill, reading the
// device-space path from CurrentPath.
type Canvas struct {
	state canvasState
	stack []canvasState
	path  Path
}

// NewCanvas returns a canvas with an identity transform.
func NewCanvas() Canvas {
	return Canvas{state: canvasState{transform: identityTransform}}
}

// Save pushes the current transform and fill state.
func (c *Canvas) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the most recently saved state. Unbalanced calls are ignored.
func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// ResetState clears the transform stack and path, for use at frame start.
func (c *Canvas) ResetState() {
	c.state = canvasState{transform: identityTransform}
	c.stack = c.stack[:0]
	c.path.Reset()
}

// Translate moves the origin in the current local space.
func (c *Canvas) Translate(x, y float64) {
	c.state.transform = translateAffine(c.state.transform, x, y)
}

// Scale scales the current local space.
func (c *Canvas) Scale(sx, sy float64) {
	c.state.transform = scaleAffine(c.state.transform, sx, sy)
}

// Transform returns the current transform matrix.
func (c *Canvas) Transform() [6]float64 {
	return c.state.transform
}

// BeginPath discards the current path.
func (c *Canvas) BeginPath() {
	c.path.Reset()
}

// MoveTo starts a subpath at a point given in local space.
func (c *Canvas) MoveTo(x, y float64) {
	dx, dy := transformPoint(c.state.transform, x, y)
	c.path.MoveTo(dx, dy)
}

// LineTo adds a line to a point given in local space.
func (c *Canvas) LineTo(x, y float64) {
	dx, dy := transformPoint(c.state.transform, x, y)
	c.path.LineTo(dx, dy)
}

// CubicTo adds a cubic Bézier given in local space.
func (c *Canvas) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	m := c.state.transform
	ax, ay := transformPoint(m, c1x, c1y)
	bx, by := transformPoint(m, c2x, c2y)
	ex, ey := transformPoint(m, x, y)
	c.path.CubicTo(ax, ay, bx, by, ex, ey)
}

// Arc adds a full circle given in local space.
func (c *Canvas) Arc(x, y, radius float64) {
	dx, dy := transformPoint(c.state.transform, x, y)
	c.path.Arc(dx, dy, radius*affineScale(c.state.transform))
}

// ClosePath closes the current subpath.
func (c *Canvas) ClosePath() {
	c.path.Close()
}

// SetFillColor sets the color used by the next Fill.
func (c *Canvas) SetFillColor(col RGB) {
	c.state.fill = col
}

// SetShadow sets the glow color and blur radius. A blur of 0 disables it.
func (c *Canvas) SetShadow(col RGB, blur float64) {
	c.state.shadowColor = col
	c.state.shadowBlur = blur
}

// FillColor returns the current fill color.
func (c *Canvas) FillColor() RGB {
	return c.state.fill
}

// Shadow returns the current shadow color and blur.
func (c *Canvas) Shadow() (RGB, float64) {
	return c.state.shadowColor, c.state.shadowBlur
}

// CurrentPath returns the path built since the last BeginPath, in device
// space. The returned pointer is only valid until the next BeginPath.
func (c *Canvas) CurrentPath() *Path {
	return &c.path
}

// ShapeKind classifies a recorded fill.
type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota
	ShapeHeart
)

// DrawCommand is one fill captured by a Recorder.
type DrawCommand struct {
	Shape  ShapeKind
	Color  RGB
	Center Vec2 // device-space centre of the filled bounds
	Bounds Rect
	Glow   float64
	Path   Path
}

// Recorder is a Surface that keeps every fill as a DrawCommand. It is used
// for headless rendering and for tests.
type Recorder struct {
	Canvas
	Commands []DrawCommand
	Clears   int
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{Canvas: NewCanvas()}
}

// Clear drops all recorded commands and resets the canvas state.
func (r *Recorder) Clear() {
	r.Commands = r.Commands[:0]
	r.Clears++
	r.ResetState()
}

// Fill records the current path.
func (r *Recorder) Fill() {
	p := r.CurrentPath()
	if p.Empty() {
		return
	}
	kind := ShapeHeart
	if p.IsCircle() {
		kind = ShapeCircle
	}
	_, blur := r.Shadow()
	b := p.Bounds()
	cp := Path{Segments: make([]PathSegment, len(p.Segments))}
	copy(cp.Segments, p.Segments)
	r.Commands = append(r.Commands, DrawCommand{
		Shape:  kind,
		Color:  r.FillColor(),
		Center: b.Center(),
		Bounds: b,
		Glow:   blur,
		Path:   cp,
	})
}
