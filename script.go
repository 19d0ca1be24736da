package mosaic

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a pointer script.
type scriptStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure for a pointer script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences injected pointer events and screenshots across frames for
// automated visual runs. Attach to an Engine via SetScript.
//
// Supported actions: "move" (x, y), "leave", "sweep" (fromX, fromY, toX,
// toY, frames), "wait" (frames) and "screenshot" (label).
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON pointer script.
func LoadScript(jsonData []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(jsonData, &f); err != nil {
		return nil, fmt.Errorf("mosaic: parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("mosaic: parse script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "move", "leave", "sweep", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("mosaic: parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// SetScript attaches a script to the engine. It is stepped once per
// RenderFrame, before pointer events are applied.
func (e *Engine) SetScript(s *Script) {
	e.script = s
}

// Done reports whether all steps in the script have been executed.
func (s *Script) Done() bool {
	return s.done
}

// step advances the script by one frame.
func (s *Script) step(e *Engine) {
	if s.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if e.Injecting() {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "screenshot":
		e.Screenshot(st.Label)
	case "move":
		e.InjectMove(st.X, st.Y)
	case "leave":
		e.InjectLeave()
	case "sweep":
		e.InjectSweep(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 && !e.Injecting() {
		s.done = true
	}
}
