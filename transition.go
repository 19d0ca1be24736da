package mosaic

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TransitionState is the lifecycle stage of a morph transition.
type TransitionState uint8

const (
	TransitionIdle    TransitionState = iota // never started
	TransitionPending                        // scheduled, delay not yet elapsed
	TransitionActive                         // interpolating
	TransitionDone                           // reached its target
)

func (s TransitionState) String() string {
	switch s {
	case TransitionIdle:
		return "idle"
	case TransitionPending:
		return "pending"
	case TransitionActive:
		return "active"
	case TransitionDone:
		return "done"
	}
	return "unknown"
}

// Transition drives a scalar from one value to a target along an
// ease-in-out cubic curve, after an optional delay. All times are in
// milliseconds on the caller's clock.
//
// A new curve can only be started while the transition is Idle or Done.
// While it is in flight the target may be bent, which keeps the curve's
// start time and origin; Force starts over unconditionally.
type Transition struct {
	state    TransitionState
	start    float64
	delay    float64
	duration float64
	from     float64
	to       float64
	tween    *gween.Tween
}

// State returns the current lifecycle stage.
func (tr *Transition) State() TransitionState { return tr.state }

// InFlight reports whether the transition is Pending or Active.
func (tr *Transition) InFlight() bool {
	return tr.state == TransitionPending || tr.state == TransitionActive
}

// Target returns the value the transition is heading to (or rests at).
func (tr *Transition) Target() float64 { return tr.to }

// StartTime returns the time the current curve was scheduled.
func (tr *Transition) StartTime() float64 { return tr.start }

// Delay returns the scheduled delay before interpolation begins.
func (tr *Transition) Delay() float64 { return tr.delay }

// Duration returns the interpolation duration.
func (tr *Transition) Duration() float64 { return tr.duration }

// From returns the value the current curve started at.
func (tr *Transition) From() float64 { return tr.from }

// Start schedules a new curve from the current value. It does nothing and
// returns false when a curve is already in flight.
func (tr *Transition) Start(now, from, to, delay, duration float64) bool {
	if tr.InFlight() {
		return false
	}
	tr.Force(now, from, to, delay, duration)
	return true
}

// Force schedules a new curve regardless of the current state.
func (tr *Transition) Force(now, from, to, delay, duration float64) {
	tr.state = TransitionPending
	tr.start = now
	tr.from = clamp01(from)
	tr.to = clamp01(to)
	tr.delay = max(delay, 0)
	tr.duration = max(duration, 0)
	tr.rebuild()
}

// Bend retargets an in-flight curve, keeping its start and origin. When the
// transition is settled it only records the target.
func (tr *Transition) Bend(to, duration float64) {
	tr.to = clamp01(to)
	if !tr.InFlight() {
		return
	}
	tr.duration = max(duration, 0)
	tr.rebuild()
}

// SetDelay replaces the delay of an in-flight curve.
func (tr *Transition) SetDelay(delay float64) {
	if tr.InFlight() {
		tr.delay = max(delay, 0)
	}
}

func (tr *Transition) rebuild() {
	tr.tween = gween.New(float32(tr.from), float32(tr.to), float32(tr.duration), ease.InOutCubic)
}

// Advance evaluates the curve at now and returns the new value. current is
// returned unchanged while the transition is settled or still delayed.
func (tr *Transition) Advance(now, current float64) float64 {
	if !tr.InFlight() {
		return current
	}
	elapsed := now - tr.start - tr.delay
	if elapsed < 0 || !finite(elapsed) {
		tr.state = TransitionPending
		return current
	}
	tr.state = TransitionActive
	if tr.duration <= 0 || tr.tween == nil {
		tr.state = TransitionDone
		return tr.to
	}
	v, finished := tr.tween.Set(float32(elapsed))
	if finished {
		tr.state = TransitionDone
		return tr.to
	}
	return clamp01(float64(v))
}

// EaseInOutCubic is the symmetric cubic ease used by every transition.
func EaseInOutCubic(t float64) float64 {
	t = clamp01(t)
	return float64(ease.InOutCubic(float32(t), 0, 1, 1))
}

// ColorTween is a color-only transition. Unlike Transition it may be
// retargeted at any time.
type ColorTween struct {
	from, to RGB
	start    float64
	active   bool
	tween    *gween.Tween
}

// Target returns the color the tween is heading to.
func (c *ColorTween) Target() RGB { return c.to }

// Active reports whether the tween is still interpolating.
func (c *ColorTween) Active() bool { return c.active }

// Snap sets the color immediately, cancelling any interpolation.
func (c *ColorTween) Snap(to RGB) {
	c.from = to
	c.to = to
	c.active = false
	c.tween = nil
}

// Retarget starts interpolating from `from` to `to` over duration ms.
func (c *ColorTween) Retarget(now float64, from, to RGB, duration float64) {
	if duration <= 0 {
		c.Snap(to)
		return
	}
	c.from = from
	c.to = to
	c.start = now
	c.active = true
	c.tween = gween.New(0, 1, float32(duration), ease.InOutCubic)
}

// Value returns the color at now.
func (c *ColorTween) Value(now float64) RGB {
	if !c.active {
		return c.to
	}
	t, finished := c.tween.Set(float32(now - c.start))
	if finished {
		c.active = false
		return c.to
	}
	return BlendRGB(c.from, c.to, float64(t))
}
