package mosaic

import (
	"math"
	"math/rand/v2"
	"sync"
)

// MinSampleInterval is the minimum spacing between accepted pointer samples,
// in milliseconds.
const MinSampleInterval = 16.0

// RippleEvent describes one emitted ripple.
type RippleEvent struct {
	X, Y    float64 // main heart anchor the ripple spreads from
	Time    float64
	Stamped int // tiles that received the ripple
}

// EngineConfig configures a new Engine. The zero value is usable.
type EngineConfig struct {
	// Tiers selects density by canvas width. Nil uses DefaultTiers.
	Tiers *TierSet
	// Rand drives tile attributes and sparkle colors. Nil seeds a PCG source.
	Rand *rand.Rand
	// Debug logs per-frame stats to stderr.
	Debug bool
	// OnRipple, when set, is called from RenderFrame for each emitted ripple.
	OnRipple func(RippleEvent)
}

// pointerEvent is a queued pointer sample. leave marks a pointer-left event.
type pointerEvent struct {
	x, y, ts float64
	leave    bool
}

// Engine owns one mosaic: its tiles, the pulse controller and the pointer
// rate limiter. Except for the Queue methods, an Engine is not safe for
// concurrent use; pointer samples and frames must be serialized by the
// caller.
type Engine struct {
	tiers *TierSet
	tier  Tier
	rng   *rand.Rand

	width, height, dpr float64

	tiles    []*Tile
	pulse    PulseController
	resolver resolver
	squeezer squeezer
	order    []int
	sortBuf  []int

	lastSample float64
	hasSample  bool
	lastSeen   float64

	mu    sync.Mutex
	queue []pointerEvent

	injectQueue     []syntheticPointerEvent
	script          *Script
	screenshotQueue []string

	debug    bool
	stats    FrameStats
	onRipple func(RippleEvent)
}

// NewEngine creates an engine with no tiles. Call Resize before the first
// frame.
func NewEngine(cfg EngineConfig) *Engine {
	tiers := cfg.Tiers
	if tiers == nil {
		tiers = DefaultTiers()
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Engine{
		tiers:    tiers,
		rng:      rng,
		dpr:      1,
		debug:    cfg.Debug,
		onRipple: cfg.OnRipple,
	}
}

// Resize sets the logical canvas size. The tier is reselected and the tiles
// regenerated when the size or the tier changes. It reports whether the tile
// set was rebuilt.
func (e *Engine) Resize(width, height, devicePixelRatio float64) bool {
	if finite(devicePixelRatio) && devicePixelRatio > 0 {
		e.dpr = devicePixelRatio
	}
	if !finite(width) || !finite(height) || width <= 0 || height <= 0 {
		return false
	}
	tier := e.tiers.Select(width)
	if e.tiles != nil && width == e.width && height == e.height && tier == e.tier {
		return false
	}
	e.width, e.height = width, height
	e.tier = tier
	e.tiles = BuildGrid(width, height, tier, e.rng)
	if e.tiles == nil {
		e.tiles = []*Tile{}
	}
	e.order = e.order[:0]
	e.pulse.Reset()
	return true
}

// PointerMoved applies a pointer sample at logical (x, y). Samples closer
// than MinSampleInterval to the previously accepted one are dropped. It
// reports whether the sample was accepted.
func (e *Engine) PointerMoved(x, y, ts float64) bool {
	if !finite(x) || !finite(y) || !finite(ts) {
		return false
	}
	e.observe(ts)
	if e.hasSample && ts-e.lastSample < MinSampleInterval {
		return false
	}
	e.hasSample = true
	e.lastSample = ts
	e.resolvePointer(x, y, ts)
	return true
}

// PointerLeft resets every tile to rest, as when the pointer leaves the
// canvas. The reset is stamped with the latest time the engine has seen.
func (e *Engine) PointerLeft() {
	e.resetAll(e.lastSeen)
}

// QueuePointerMove records a pointer sample for the next RenderFrame. It may
// be called from any goroutine.
func (e *Engine) QueuePointerMove(x, y, ts float64) {
	e.mu.Lock()
	e.queue = append(e.queue, pointerEvent{x: x, y: y, ts: ts})
	e.mu.Unlock()
}

// QueuePointerLeave records a pointer-left event for the next RenderFrame. It
// may be called from any goroutine.
func (e *Engine) QueuePointerLeave() {
	e.mu.Lock()
	e.queue = append(e.queue, pointerEvent{leave: true})
	e.mu.Unlock()
}

// drainQueue applies queued pointer events in arrival order.
func (e *Engine) drainQueue() {
	e.mu.Lock()
	if len(e.queue) == 0 {
		e.mu.Unlock()
		return
	}
	pending := make([]pointerEvent, len(e.queue))
	copy(pending, e.queue)
	e.queue = e.queue[:0]
	e.mu.Unlock()

	for _, ev := range pending {
		if ev.leave {
			e.PointerLeft()
			continue
		}
		e.PointerMoved(ev.x, ev.y, ev.ts)
	}
}

// RenderFrame steps the attached script, applies injected and queued pointer
// events, advances every animation to ts and draws the mosaic onto s. A nil
// surface makes the call a no-op.
func (e *Engine) RenderFrame(s Surface, ts float64) {
	if s == nil || !finite(ts) {
		return
	}
	if e.script != nil {
		e.script.step(e)
	}
	e.processInjected(ts)
	e.drainQueue()
	e.observe(ts)
	e.renderFrame(s, ts)
}

func (e *Engine) observe(ts float64) {
	e.lastSeen = math.Max(e.lastSeen, ts)
}

// Tiles returns the current tile set. The returned slice MUST NOT be
// mutated.
func (e *Engine) Tiles() []*Tile {
	return e.tiles
}

// MainHeart returns the current main heart, or nil.
func (e *Engine) MainHeart() *Tile {
	for _, t := range e.tiles {
		if t.IsMainHeart {
			return t
		}
	}
	return nil
}

// Tier returns the active density tier.
func (e *Engine) Tier() Tier {
	return e.tier
}

// Size returns the logical canvas size.
func (e *Engine) Size() (width, height float64) {
	return e.width, e.height
}

// DevicePixelRatio returns the ratio passed to the last Resize.
func (e *Engine) DevicePixelRatio() float64 {
	return e.dpr
}

// Pulse returns the engine's pulse controller for inspection.
func (e *Engine) Pulse() *PulseController {
	return &e.pulse
}

// SetDebugMode enables or disables per-frame stats logging to stderr.
func (e *Engine) SetDebugMode(enabled bool) {
	e.debug = enabled
}

// Stats returns the counters of the most recent frame.
func (e *Engine) Stats() FrameStats {
	return e.stats
}
