package mosaic

// syntheticPointerEvent represents a single injected pointer event in
// logical canvas coordinates. leave marks a pointer-left event.
type syntheticPointerEvent struct {
	x, y  float64
	leave bool
}

// InjectMove queues a pointer sample at the given logical coordinates. The
// event is applied by the next RenderFrame, stamped with that frame's time.
func (e *Engine) InjectMove(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectLeave queues a pointer-left event.
func (e *Engine) InjectLeave() {
	e.injectQueue = append(e.injectQueue, syntheticPointerEvent{leave: true})
}

// InjectSweep queues a pointer sweep from (fromX, fromY) to (toX, toY),
// linearly interpolated over frames samples including both endpoints.
// Minimum frames is 2.
func (e *Engine) InjectSweep(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	for i := 0; i < frames; i++ {
		t := float64(i) / float64(frames-1)
		e.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
}

// Injecting reports whether injected events are still waiting. Drivers skip
// real pointer input while it is true.
func (e *Engine) Injecting() bool {
	return len(e.injectQueue) > 0
}

// processInjected pops one event from the inject queue and applies it at ts.
// Returns true if an event was consumed.
func (e *Engine) processInjected(ts float64) bool {
	if len(e.injectQueue) == 0 {
		return false
	}
	evt := e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]

	e.observe(ts)
	if evt.leave {
		e.PointerLeft()
		return true
	}
	e.PointerMoved(evt.x, evt.y, ts)
	return true
}
