package tooltip

import (
	"strings"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "move", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "screenshot", "label": "shown"}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].Action != "screenshot" || runner.steps[0].Label != "initial" {
		t.Error("step 0 mismatch")
	}
	if runner.steps[1].Action != "move" || runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if runner.steps[2].Action != "wait" || runner.steps[2].Frames != 3 {
		t.Error("step 2 mismatch")
	}
}

func TestLoadTestScriptYAML(t *testing.T) {
	data := []byte(`
steps:
  - action: hover
    fromX: 0
    fromY: 0
    toX: 50
    toY: 50
    frames: 4
  - action: leave
`)
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if runner.steps[0].ToX != 50 || runner.steps[0].Frames != 4 {
		t.Errorf("step 0 = %+v", runner.steps[0])
	}
}

func TestLoadTestScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"invalid", `not: [valid`, "parse test script"},
		{"empty steps", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "jump"}]}`, `unknown action "jump"`},
		{"unknown field", `{"steps": [{"action": "move", "z": 1}]}`, "parse test script"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTestScript([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want substring %q", err, tt.want)
			}
		})
	}
}

func TestRunnerStepHover(t *testing.T) {
	s, _, high := newHitScene()
	var entered []*Node
	s.OnPointerEnter(func(ctx PointerContext) { entered = append(entered, ctx.Node) })

	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "move", "x": 30, "y": 30}]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)

	for i := 0; i < 5 && !runner.Done(); i++ {
		step(s)
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
	if len(entered) != 1 || entered[0] != high {
		t.Errorf("entered = %v, want [high]", entered)
	}
}

func TestRunnerWaitFrames(t *testing.T) {
	s := NewScene()
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "wait", "frames": 3}]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)

	frames := 0
	for !runner.Done() && frames < 10 {
		step(s)
		frames++
	}
	if frames != 4 {
		t.Errorf("runner finished after %d frames, want 4", frames)
	}
}

func TestRunnerScreenshotQueued(t *testing.T) {
	s := NewScene()
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "screenshot", "label": "tip"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	s.SetTestRunner(runner)
	step(s)

	if len(s.screenshotQueue) != 1 || s.screenshotQueue[0] != "tip" {
		t.Errorf("screenshotQueue = %v", s.screenshotQueue)
	}
	if !runner.Done() {
		t.Error("runner should be done after its last step")
	}
}
