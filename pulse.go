package mosaic

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Heartbeat and ripple timing, in milliseconds and logical units.
const (
	HeartbeatInterval = 1000.0
	HeartbeatDuration = 400.0
	MainHeartbeatGain = 1.3

	RippleSpeed         = 0.3 // logical units per ms
	RippleLayers        = 5
	RippleLayerDistance = 25.0
	RippleDuration      = 300.0

	heartbeatAttack        = 0.3
	rippleTriggerWindow    = 50.0
	rippleRetriggerMinimum = HeartbeatInterval * 0.8
	rippleRestampAfter     = RippleDuration * 0.5
	rippleFalloff          = 0.15
	rippleFloor            = 0.3
)

// HeartbeatEasing shapes one beat over t in [0, 1]: a square-root attack
// over the first 30% and a quadratic decay over the rest.
func HeartbeatEasing(t float64) float64 {
	t = clamp01(t)
	if t <= heartbeatAttack {
		return math.Sqrt(t / heartbeatAttack)
	}
	decay := (t - heartbeatAttack) / (1 - heartbeatAttack)
	return float64(ease.InQuad(float32(1-decay), 0, 1, 1))
}

// MainHeartbeat returns the main heart's beat amplitude at now for a clock
// started at start. It is periodic with HeartbeatInterval and zero outside
// the first HeartbeatDuration of each cycle.
func MainHeartbeat(now, start float64) float64 {
	since := now - start
	if since < 0 || !finite(since) {
		return 0
	}
	cycle := math.Mod(since, HeartbeatInterval)
	if cycle >= HeartbeatDuration {
		return 0
	}
	return HeartbeatEasing(cycle/HeartbeatDuration) * MainHeartbeatGain
}

// RippleHeartbeat returns a tile's beat amplitude for a ripple stamped at
// stamp, arriving after delay, scaled by intensity. A zero stamp means no
// ripple.
func RippleHeartbeat(now, stamp, delay, intensity float64) float64 {
	if stamp == 0 {
		return 0
	}
	since := now - stamp - delay
	if since < 0 || since > RippleDuration || !finite(since) {
		return 0
	}
	return HeartbeatEasing(since/RippleDuration) * intensity
}

// RippleIntensity is the stamped intensity for a ripple layer: 15% weaker
// per layer, never below 0.3.
func RippleIntensity(layer int) float64 {
	return math.Max(rippleFloor, 1-float64(layer)*rippleFalloff)
}

// PulseController owns the main heart's clocks: when the current main heart
// started beating and when it last emitted a ripple.
type PulseController struct {
	active      bool
	start       float64
	triggered   bool
	lastTrigger float64
}

// Active reports whether the heartbeat clock is running.
func (p *PulseController) Active() bool { return p.active }

// StartTime returns when the running clock started.
func (p *PulseController) StartTime() float64 { return p.start }

// LastTrigger returns when the last ripple fired and whether one has.
func (p *PulseController) LastTrigger() (float64, bool) { return p.lastTrigger, p.triggered }

// Activate starts the clock at now unless it is already running.
func (p *PulseController) Activate(now float64) {
	if p.active {
		return
	}
	p.active = true
	p.start = now
	p.triggered = false
	p.lastTrigger = 0
}

// Reset stops the clock and forgets the last ripple.
func (p *PulseController) Reset() {
	*p = PulseController{}
}

// Beat returns the main heart's amplitude at now, or 0 when idle.
func (p *PulseController) Beat(now float64) float64 {
	if !p.active {
		return 0
	}
	return MainHeartbeat(now, p.start)
}

// ShouldRipple reports whether a ripple fires at now: within the first 50ms
// of a beat cycle and at least 80% of a cycle after the previous ripple. A
// true result records now as the latest trigger.
func (p *PulseController) ShouldRipple(now float64) bool {
	if !p.active {
		return false
	}
	since := now - p.start
	if since < 0 || !finite(since) {
		return false
	}
	cycleStart := p.start + math.Floor(since/HeartbeatInterval)*HeartbeatInterval
	if now-cycleStart >= rippleTriggerWindow {
		return false
	}
	if p.triggered && now-p.lastTrigger <= rippleRetriggerMinimum {
		return false
	}
	p.triggered = true
	p.lastTrigger = now
	return true
}

// EmitRipple stamps a ripple from (ox, oy) onto every non-main tile within
// RippleLayers bands. A tile whose previous ripple is still visible is only
// restamped once more than half the ripple duration has passed since it was
// stamped. It returns the number of tiles stamped.
func EmitRipple(tiles []*Tile, ox, oy, now float64) int {
	stamped := 0
	for _, t := range tiles {
		if t.IsMainHeart {
			continue
		}
		d := distance(t.X, t.Y, ox, oy)
		if d <= 0 || !finite(d) {
			continue
		}
		layer := int(math.Floor(d / RippleLayerDistance))
		if layer >= RippleLayers {
			continue
		}
		if t.rippleActive(now) && now-t.RippleTime <= rippleRestampAfter {
			continue
		}
		t.RippleTime = now
		t.RippleDelay = d / RippleSpeed
		t.RippleIntensity = RippleIntensity(layer)
		stamped++
	}
	return stamped
}
