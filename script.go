package blossom

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a gesture script.
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

// scriptFile is the top-level JSON structure for a gesture script.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences injected pointer events and screenshots across frames
// for scripted playback and automated visual testing. Attach to a Surface
// via SetScript.
//
// Actions:
//
//	press      press at (x, y)
//	move       held move to (x, y)
//	release    release at (x, y)
//	click      press then release at (x, y); two frames
//	hold       press and stay at (x, y) for `frames` frames
//	drag       press at (fromX, fromY), move, release at (toX, toY) over `frames` frames
//	wait       idle for `frames` frames; a held synthetic pointer is handed
//	           back to the real mouse, so use hold to keep a press alive
//	screenshot queue a labeled screenshot; free, does not consume a frame
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON gesture script.
func LoadScript(jsonData []byte) (*Script, error) {
	var file scriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("parse gesture script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse gesture script: no steps")
	}
	return &Script{steps: file.Steps}, nil
}

// SetScript attaches a gesture script to the surface. The script advances
// one step per frame from Update, ahead of input processing.
func (s *Surface) SetScript(script *Script) {
	s.script = script
}

// Done reports whether all steps in the script have been executed.
func (r *Script) Done() bool {
	return r.done
}

// stepScript advances the surface's script by one frame.
func (s *Surface) stepScript() {
	s.script.step(s)
}

// step advances the script: drains pending injections and wait frames
// first, then executes the next action.
func (r *Script) step(s *Surface) {
	if r.done {
		return
	}
	// Let pending injections drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	// Screenshots queue for the next draw without consuming an input frame,
	// so one can sit between hold steps without handing the pointer back to
	// the real mouse.
	for r.cursor < len(r.steps) {
		st := r.steps[r.cursor]
		r.cursor++
		if st.Action == "screenshot" {
			s.Screenshot(st.Label)
			continue
		}
		r.execute(s, st)
		break
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}

func (r *Script) execute(s *Surface, st scriptStep) {
	switch st.Action {
	case "press":
		s.InjectPress(st.X, st.Y)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "hold":
		frames := st.Frames
		if frames < 1 {
			frames = 1
		}
		s.InjectHold(st.X, st.Y, frames)
	case "drag":
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
}
