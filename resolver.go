package mosaic

import "math"

// Morph durations and delays, in milliseconds.
const (
	HoverOnDuration          = 200.0
	HoverOffDuration         = 300.0
	MainHeartDuration        = 0.0
	TransitionDelayIncrement = 15.0
	transitionBand           = 25.0

	mainRetargetTolerance = 0.05
	surroundMinMorph      = 0.8
	surroundGlowGain      = 0.8
)

// Draw order keys.
const (
	zRest         = 1
	zSurroundBase = 500
	zSurroundSpan = 400
	zMain         = 1000
)

// tileRole is what a resolution pass decided for one tile.
type tileRole uint8

const (
	roleRest tileRole = iota
	roleSurround
	roleMain
)

// resolution is the read phase's verdict for one tile.
type resolution struct {
	role tileRole
	dist float64
}

// resolver classifies pointer samples against the tile set. Its scratch
// buffer is reused across samples.
type resolver struct {
	scratch []resolution
}

// classify is the read phase: every tile's role is decided from the
// anchors and hit radii alone, before anything is written. It returns the
// index of the main heart, or -1.
func (r *resolver) classify(tiles []*Tile, x, y float64, tier Tier) ([]resolution, int) {
	if cap(r.scratch) < len(tiles) {
		r.scratch = make([]resolution, len(tiles))
	}
	out := r.scratch[:len(tiles)]

	closest, closestDist := -1, math.Inf(1)
	for i, t := range tiles {
		d := distance(t.X, t.Y, x, y)
		out[i] = resolution{role: roleRest, dist: d}
		if IsInsideHeart(t.X, t.Y, x, y, tier.SurroundingHeartRadius) {
			out[i].role = roleSurround
		}
		if IsInsideHeart(t.X, t.Y, x, y, tier.MainHeartRadius) && d < closestDist {
			closest, closestDist = i, d
		}
	}
	if closest >= 0 {
		out[closest].role = roleMain
	}
	return out, closest
}

// resolvePointer applies one accepted pointer sample at logical (x, y).
// Outside the logo everything returns to rest and the pulse clock stops.
func (e *Engine) resolvePointer(x, y, now float64) {
	region := ClassifyLogoRegion(x, y, e.width, e.height, e.tier.LogoScale)
	if !region.Inside {
		e.resetAll(now)
		return
	}

	roles, _ := e.resolver.classify(e.tiles, x, y, e.tier)
	for i, t := range e.tiles {
		res := roles[i]
		switch res.role {
		case roleMain:
			e.becomeMain(t, res.dist, now)
		case roleSurround:
			e.becomeSurround(t, res.dist, now)
		default:
			restTile(t, res.dist, now)
		}
	}
}

// becomeMain promotes t to main heart. The morph jumps to 1 without delay,
// even over an in-flight transition.
func (e *Engine) becomeMain(t *Tile, dist, now float64) {
	wasMain := t.IsMainHeart
	if math.Abs(t.Morph.Target()-1) > mainRetargetTolerance && !t.Morph.InFlight() {
		t.Morph.Force(now, t.MorphProgress, 1, 0, MainHeartDuration)
	} else {
		t.Morph.Bend(1, MainHeartDuration)
		t.Morph.SetDelay(0)
	}
	t.Color.Snap(HoveredHeartRed)

	t.IsMainHeart = true
	t.IsClosest = true
	t.IsHovered = true
	t.DistanceToPointer = dist
	t.ZIndex = zMain
	t.GlowIntensity = 1
	t.SqueezeLayer = -1
	t.NextSparkle = 0
	t.clearRipple()

	if !wasMain && !e.pulse.Active() {
		e.pulse.Activate(now)
	}
}

// becomeSurround marks t as part of the hovered footprint. A new curve only
// starts when the tile was heading to rest and is settled; the delay grows by
// band so the change sweeps outward.
func (e *Engine) becomeSurround(t *Tile, dist, now float64) {
	intensity := max(0, 1-dist/e.tier.SurroundingHeartRadius)
	target := max(surroundMinMorph, intensity)

	if t.Morph.Target() < heartThreshold && !t.Morph.InFlight() {
		band := math.Floor(dist / transitionBand)
		t.Morph.Start(now, t.MorphProgress, target, band*TransitionDelayIncrement, HoverOnDuration)
		t.NextSparkle = now + t.SparkleSeed
	} else {
		t.Morph.Bend(target, HoverOnDuration)
	}
	t.Color.Snap(t.HoverColor)

	t.IsMainHeart = false
	t.IsClosest = false
	t.IsHovered = true
	t.DistanceToPointer = dist
	t.ZIndex = zSurroundBase + int(math.Floor(intensity*zSurroundSpan))
	t.GlowIntensity = intensity * surroundGlowGain
	t.SqueezeLayer = -1
}

// restTile sends t back to a circle in its origin color.
func restTile(t *Tile, dist, now float64) {
	if t.Morph.Target() != 0 && !t.Morph.InFlight() {
		t.Morph.Start(now, t.MorphProgress, 0, 0, HoverOffDuration)
	} else {
		t.Morph.Bend(0, HoverOffDuration)
		t.Morph.SetDelay(0)
	}
	t.Color.Snap(t.OriginColor)

	t.IsMainHeart = false
	t.IsClosest = false
	t.IsHovered = false
	t.DistanceToPointer = dist
	t.ZIndex = zRest
	t.GlowIntensity = 0
	t.SqueezeLayer = -1
	t.NextSparkle = 0
	t.clearRipple()
}

// resetAll rests every tile and stops the pulse clock.
func (e *Engine) resetAll(now float64) {
	e.pulse.Reset()
	for _, t := range e.tiles {
		restTile(t, math.Inf(1), now)
	}
}
