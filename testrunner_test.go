package liquid

import (
	"reflect"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "tap", "cell": 2},
			{"action": "settle"}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "click" || runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
	if runner.steps[3].Action != "tap" || runner.steps[3].Cell != 2 {
		t.Error("step 3 mismatch")
	}
}

func TestLoadTestScript_Invalid(t *testing.T) {
	_, err := LoadTestScript([]byte(`not json`))
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadTestScript_Empty(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": []}`))
	if err == nil {
		t.Error("expected error for empty steps")
	}
}

func TestLoadTestScript_UnknownAction(t *testing.T) {
	_, err := LoadTestScript([]byte(`{"steps": [{"action": "drag"}]}`))
	if err == nil {
		t.Error("expected error for unknown action")
	}
}

func TestRunnerStep_Click(t *testing.T) {
	b := newTestButton(t, 1)
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "click", "x": 320, "y": 400}]}`))
	if err != nil {
		t.Fatal(err)
	}
	b.SetTestRunner(runner)

	// Frame 1: runner queues the click; the press is consumed.
	stepFrames(b, 1)
	if runner.Done() {
		t.Fatal("runner done before the click drained")
	}
	// Frame 2: release fires the tap.
	stepFrames(b, 1)
	if !b.pendingOpen {
		t.Error("click did not tap the root")
	}
	// Frame 3: queue empty, no steps left.
	stepFrames(b, 1)
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	b := newTestButton(t, 1)
	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "after"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	b.SetTestRunner(runner)

	stepFrames(b, 3)
	if len(b.screenshotQueue) != 0 {
		t.Fatal("screenshot taken before the wait ended")
	}
	stepFrames(b, 1)
	if !reflect.DeepEqual(b.screenshotQueue, []string{"after"}) {
		t.Errorf("screenshotQueue = %v, want [after]", b.screenshotQueue)
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestRunnerOpenSettleTap(t *testing.T) {
	b := newTestButton(t, 2)
	var selected []int
	b.Controller().OnSelect = func(i int) { selected = append(selected, i) }

	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "open"},
		{"action": "settle"},
		{"action": "screenshot", "label": "open"},
		{"action": "tap", "cell": 1},
		{"action": "settle"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	b.SetTestRunner(runner)

	for i := 0; i < 1000 && !runner.Done(); i++ {
		stepFrames(b, 1)
	}
	if !runner.Done() {
		t.Fatal("runner did not finish")
	}
	if !reflect.DeepEqual(selected, []int{0}) {
		t.Errorf("selected = %v, want [0]", selected)
	}
	if b.ctrl.Len() != 0 || b.ctrl.State() != StateIdle {
		t.Errorf("len=%d state=%s, want closed", b.ctrl.Len(), b.ctrl.State())
	}
	if !reflect.DeepEqual(b.screenshotQueue, []string{"open"}) {
		t.Errorf("screenshotQueue = %v", b.screenshotQueue)
	}
}

func TestRunnerTapMissingCell(t *testing.T) {
	b := newTestButton(t, 1)
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "tap", "cell": 3}]}`))
	if err != nil {
		t.Fatal(err)
	}
	b.SetTestRunner(runner)
	stepFrames(b, 1)
	if len(b.injectQueue) != 0 {
		t.Error("tap on a missing cell queued input")
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}
