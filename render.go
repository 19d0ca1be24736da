package mosaic

import (
	"math"
	"time"
)

// Frame rendering constants.
const (
	heartThreshold      = 0.5
	HeartSizeMultiplier = 1.6
	SparkleDuration     = 400.0

	glowBlurScale  = 10.0
	floatFrequency = 0.001 // radians per ms
	floatXFactor   = 0.5
)

var sparklePalette = func() (p [len(SparkleColors)]RGB) {
	for i, hex := range SparkleColors {
		p[i] = HexToRGB(hex)
	}
	return p
}()

// renderFrame runs one frame: squeeze, pulse, then every tile in draw order.
func (e *Engine) renderFrame(s Surface, now float64) {
	var stats FrameStats
	var t0 time.Time
	if e.debug {
		t0 = time.Now()
	}

	main := e.MainHeart()
	disp := e.squeezer.compute(e.tiles, main)

	if e.debug {
		stats.SqueezeTime = time.Since(t0)
		t0 = time.Now()
	}

	e.sortDrawOrder()

	if e.debug {
		stats.SortTime = time.Since(t0)
		t0 = time.Now()
	}

	stats.Ripples = e.updatePulse(main, now)

	s.Clear()
	for _, i := range e.order {
		t := e.tiles[i]
		e.drawTile(s, t, disp[i], now)
		if t.IsHeart() {
			stats.Hearts++
		}
	}

	if e.debug {
		stats.DrawTime = time.Since(t0)
	}
	stats.Tiles = len(e.tiles)
	e.stats = stats
	e.debugLog(stats)
}

// updatePulse advances the main heart clock and fires a ripple when one is
// due. The clock only runs while the main heart is drawn as a heart. It
// returns the number of tiles stamped.
func (e *Engine) updatePulse(main *Tile, now float64) int {
	if main == nil || main.MorphProgress <= heartThreshold {
		e.pulse.Reset()
		return 0
	}
	e.pulse.Activate(now)
	main.HeartBeat = e.pulse.Beat(now)
	if !e.pulse.ShouldRipple(now) {
		return 0
	}
	n := EmitRipple(e.tiles, main.X, main.Y, now)
	if e.onRipple != nil {
		e.onRipple(RippleEvent{X: main.X, Y: main.Y, Time: now, Stamped: n})
	}
	return n
}

// drawTile advances one tile to now and fills its shape.
func (e *Engine) drawTile(s Surface, t *Tile, d Displacement, now float64) {
	if t.IsHovered && !t.IsMainHeart && t.MorphProgress > heartThreshold && now > t.NextSparkle {
		e.sparkle(t, now)
	}

	t.CenterX = t.X + d.X
	t.CenterY = t.Y + d.Y
	t.DrawX, t.DrawY = t.CenterX, t.CenterY
	if !t.IsMainHeart {
		off := math.Sin(now*floatFrequency+t.Phase) * t.FloatAmp
		t.DrawX += off * floatXFactor
		t.DrawY += off
	}

	// The beat is chosen from the progress before this frame's advance.
	switch {
	case t.MorphProgress <= heartThreshold:
		t.HeartBeat = 0
	case !t.IsMainHeart:
		t.HeartBeat = RippleHeartbeat(now, t.RippleTime, t.RippleDelay, t.RippleIntensity)
	}

	t.MorphProgress = t.Morph.Advance(now, t.MorphProgress)

	target := t.Color.Value(now)
	heart := t.IsHeart()
	if heart && t.IsHovered {
		t.DisplayColor = target
	} else {
		t.DisplayColor = LerpRGB(t.OriginColor, target, t.MorphProgress)
	}

	t.SizeMultiplier = d.Size
	size := t.Radius
	if heart {
		size *= HeartSizeMultiplier
	}
	size *= d.Size

	s.Save()
	s.Translate(t.DrawX, t.DrawY)
	s.SetShadow(t.DisplayColor, max(t.GlowIntensity, 0)*glowBlurScale)
	s.SetFillColor(t.DisplayColor)
	if heart {
		DrawHeart(s, size, t.HeartBeat)
	} else {
		DrawCircle(s, size)
	}
	s.Restore()
}

// sparkle starts a color-only tween to a random accent and schedules the
// next one.
func (e *Engine) sparkle(t *Tile, now float64) {
	t.SparkleIdx = e.rng.IntN(len(sparklePalette))
	t.Color.Retarget(now, t.Color.Value(now), sparklePalette[t.SparkleIdx], SparkleDuration)
	t.NextSparkle = now + SparkleMinInterval + e.rng.Float64()*(SparkleMaxInterval-SparkleMinInterval)
}

// sortDrawOrder fills e.order with tile indices in ascending ZIndex. Equal
// keys keep tile order.
func (e *Engine) sortDrawOrder() {
	n := len(e.tiles)
	if cap(e.order) < n {
		e.order = make([]int, n)
	}
	e.order = e.order[:n]
	for i := range e.order {
		e.order[i] = i
	}
	e.mergeSort()
}

// mergeSort sorts e.order in-place using e.sortBuf as scratch space.
// Bottom-up merge sort: zero allocations after the sort buffer reaches high-water mark.
func (e *Engine) mergeSort() {
	n := len(e.order)
	if n <= 1 {
		return
	}
	if cap(e.sortBuf) < n {
		e.sortBuf = make([]int, n)
	}
	e.sortBuf = e.sortBuf[:n]

	a := e.order
	b := e.sortBuf
	swapped := false

	for width := 1; width < n; width *= 2 {
		for i := 0; i < n; i += 2 * width {
			lo := i
			mid := min(lo+width, n)
			hi := min(lo+2*width, n)
			e.mergeRun(a, b, lo, mid, hi)
		}
		a, b = b, a
		swapped = !swapped
	}

	if swapped {
		copy(e.order, e.sortBuf)
	}
}

// mergeRun merges two sorted runs [lo, mid) and [mid, hi) from src into dst.
func (e *Engine) mergeRun(src, dst []int, lo, mid, hi int) {
	i, j, k := lo, mid, lo
	for i < mid && j < hi {
		if e.tiles[src[i]].ZIndex <= e.tiles[src[j]].ZIndex {
			dst[k] = src[i]
			i++
		} else {
			dst[k] = src[j]
			j++
		}
		k++
	}
	for i < mid {
		dst[k] = src[i]
		i++
		k++
	}
	for j < hi {
		dst[k] = src[j]
		j++
		k++
	}
}
