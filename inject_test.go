package mosaic

import "testing"

func TestInjectMove(t *testing.T) {
	e := newTestEngine(t, EngineConfig{})
	e.InjectMove(testPointX, testPointY)
	if len(e.injectQueue) != 1 || !e.Injecting() {
		t.Fatalf("expected 1 queued event, got %d", len(e.injectQueue))
	}
	if e.MainHeart() != nil {
		t.Fatal("injected move applied before a frame")
	}

	e.RenderFrame(NewRecorder(), 1000)
	if e.Injecting() {
		t.Error("queue not drained")
	}
	if e.MainHeart() == nil {
		t.Error("injected move not applied")
	}
}

func TestInjectSweep(t *testing.T) {
	e := NewEngine(EngineConfig{})

	// Sweep from (10,10) to (50,90) over 5 frames:
	// (10,10) (20,30) (30,50) (40,70) (50,90)
	e.InjectSweep(10, 10, 50, 90, 5)
	if len(e.injectQueue) != 5 {
		t.Fatalf("expected 5 queued events, got %d", len(e.injectQueue))
	}
	want := []syntheticPointerEvent{{x: 10, y: 10}, {x: 20, y: 30}, {x: 30, y: 50}, {x: 40, y: 70}, {x: 50, y: 90}}
	for i, evt := range e.injectQueue {
		if evt != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, evt, want[i])
		}
	}
}

func TestInjectSweep_MinFrames(t *testing.T) {
	e := NewEngine(EngineConfig{})
	e.InjectSweep(0, 0, 100, 100, 1)
	if len(e.injectQueue) != 2 {
		t.Errorf("expected minimum 2 events, got %d", len(e.injectQueue))
	}
}

func TestInjectQueueOrder(t *testing.T) {
	e := NewEngine(EngineConfig{})
	e.InjectMove(10, 20)
	e.InjectLeave()
	e.InjectMove(30, 40)

	if !e.processInjected(100) || len(e.injectQueue) != 2 {
		t.Fatalf("after frame 1: %d events left", len(e.injectQueue))
	}
	if !e.injectQueue[0].leave {
		t.Error("second event should be the leave")
	}
	e.processInjected(116)
	e.processInjected(132)
	if e.processInjected(148) {
		t.Error("empty queue reported a processed event")
	}
}

func TestInjectedEventsOnePerFrame(t *testing.T) {
	e := newTestEngine(t, EngineConfig{})
	rec := NewRecorder()
	e.InjectMove(testPointX, testPointY)
	e.InjectLeave()

	e.RenderFrame(rec, 1000)
	if e.MainHeart() == nil {
		t.Fatal("frame 1 should apply the move")
	}
	e.RenderFrame(rec, 1016)
	if e.MainHeart() != nil {
		t.Error("frame 2 should apply the leave")
	}
}

func TestInjectedMoveStampedWithFrameTime(t *testing.T) {
	e := newTestEngine(t, EngineConfig{})
	e.InjectMove(testPointX, testPointY)
	e.RenderFrame(NewRecorder(), 4321)
	main := e.MainHeart()
	if main == nil {
		t.Fatal("injected move not applied")
	}
	if e.lastSample != 4321 || main.Morph.StartTime() != 4321 {
		t.Errorf("sample stamped at %v, morph at %v; want 4321", e.lastSample, main.Morph.StartTime())
	}
}
