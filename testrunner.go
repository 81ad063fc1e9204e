package liquid

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
//
// Actions:
//
//	screenshot  capture the next frame under Label
//	click       inject a press and release at (X, Y)
//	tap         click the center of chain index Cell (0 is the root)
//	open        open the cascade programmatically
//	close       close the cascade programmatically
//	wait        idle for Frames frames
//	settle      wait until the cascade stops animating
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Cell   int     `json:"cell,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input, cascade commands and screenshots
// across frames for automated visual testing. Attach to a Button via
// SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	settling  bool
	done      bool
}

var knownActions = map[string]bool{
	"screenshot": true, "click": true, "tap": true, "open": true,
	"close": true, "wait": true, "settle": true,
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Button via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the button. The runner's step
// method is called from Button.Update before processInput each frame.
func (b *Button) SetTestRunner(runner *TestRunner) {
	b.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame. Called from Button.Update.
func (r *TestRunner) step(b *Button) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(b.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.settling {
		if b.pendingOpen || b.ctrl.State() != StateIdle {
			return
		}
		r.settling = false
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		b.Screenshot(st.Label)
	case "click":
		b.InjectClick(st.X, st.Y)
	case "tap":
		if cell := b.ctrl.Cell(st.Cell); cell != nil {
			b.InjectClick(cell.Center.X, cell.Center.Y)
		} else {
			b.log().Warn("test script: no cell to tap", "cell", st.Cell)
		}
	case "open":
		if err := b.Open(); err != nil {
			b.log().Error("test script: open", "err", err)
		}
	case "close":
		b.Close()
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "settle":
		r.settling = true
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && !r.settling && len(b.injectQueue) == 0 {
		r.done = true
	}
}
