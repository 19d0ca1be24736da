package mosaic

// Tile is one lattice cell clipped into the logo silhouette. Static fields
// are fixed when the grid is built; the rest mutate every frame or pointer
// sample.
type Tile struct {
	// Static.
	ID          string
	X, Y        float64 // anchor position
	Radius      float64
	Section     Section
	OriginColor RGB
	HoverColor  RGB
	Phase       float64 // idle float phase offset, radians
	FloatAmp    float64 // idle float amplitude, logical units
	SparkleSeed float64 // interval before the first sparkle, ms

	// Dynamic.
	CenterX, CenterY float64 // displaced centre of the last frame
	DrawX, DrawY     float64 // centre including idle float
	SizeMultiplier   float64
	MorphProgress    float64 // 0 = circle, 1 = heart
	Morph            Transition
	Color            ColorTween // target color; tweened only by sparkles
	DisplayColor     RGB
	HeartBeat        float64

	RippleTime      float64 // stamp time; 0 when no ripple
	RippleDelay     float64
	RippleIntensity float64

	IsMainHeart       bool
	IsHovered         bool // inside the surrounding heart footprint
	IsClosest         bool
	DistanceToPointer float64
	ZIndex            int
	GlowIntensity     float64
	SqueezeLayer      int // -1 when unassigned or main heart

	NextSparkle float64
	SparkleIdx  int
}

// IsHeart reports whether the tile currently renders as a heart.
func (t *Tile) IsHeart() bool {
	return t.MorphProgress > heartThreshold
}

// TargetMorph returns the morph progress the tile is heading to.
func (t *Tile) TargetMorph() float64 {
	return t.Morph.Target()
}

// TargetColor returns the color the tile is heading to.
func (t *Tile) TargetColor() RGB {
	return t.Color.Target()
}

// clearRipple drops any ripple stamp.
func (t *Tile) clearRipple() {
	t.RippleTime = 0
	t.RippleDelay = 0
	t.RippleIntensity = 0
}

// rippleActive reports whether a stamped ripple is currently visible.
func (t *Tile) rippleActive(now float64) bool {
	if t.RippleTime == 0 {
		return false
	}
	since := now - t.RippleTime - t.RippleDelay
	return since >= 0 && since <= RippleDuration
}
