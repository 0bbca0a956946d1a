package casement

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string `json:"action"`
	Delta  int    `json:"delta,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// scriptFile is the top-level JSON structure.
type scriptFile struct {
	Steps []scriptStep `json:"steps"`
}

// Script replays a sequence of encoder and knob inputs, one step per tick,
// through the two public input entry points. Attach it with GUI.SetScript
// to drive automated interaction tests without hardware.
//
// Actions: "encoder" (with delta), "press", "release", "hold",
// "wait" (with frames).
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script.
func LoadScript(jsonData []byte) (*Script, error) {
	var file scriptFile
	if err := json.Unmarshal(jsonData, &file); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(file.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range file.Steps {
		switch st.Action {
		case "encoder", "press", "release", "hold", "wait":
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: file.Steps}, nil
}

// Done reports whether every step has been executed.
func (r *Script) Done() bool { return r.done }

// step advances the script by one tick. Called from GUI.Update.
func (r *Script) step(g *GUI) {
	if r.done {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "encoder":
		g.EncoderEvent(st.Delta)
	case "press":
		g.KnobEvent(BtnPressed)
	case "release":
		g.KnobEvent(BtnReleased)
	case "hold":
		g.KnobEvent(BtnHeld)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this tick counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
