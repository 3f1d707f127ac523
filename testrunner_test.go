package lumen

import "testing"

func TestLoadTestScriptRejectsInvalidJSON(t *testing.T) {
	if _, err := LoadTestScript([]byte("{nope")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestLoadTestScriptRejectsEmpty(t *testing.T) {
	if _, err := LoadTestScript([]byte(`{"steps":[]}`)); err == nil {
		t.Error("expected error for a script with no steps")
	}
}

func TestTestRunnerDragScript(t *testing.T) {
	script := []byte(`{
		"steps": [
			{"action": "down", "x": 100, "y": 100},
			{"action": "move", "x": 250, "y": 100},
			{"action": "up", "x": 250, "y": 100},
			{"action": "wait", "frames": 3}
		]
	}`)
	runner, err := LoadTestScript(script)
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}

	app := newTestApp()
	app.Recolor = NewRecolor(app.Viewport, app.Scene.Mesh)
	app.Pointer.AddListener(app.Recolor)
	app.SetTestRunner(runner)

	for i := 0; i < 30 && !runner.Done(); i++ {
		if err := app.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
	}
	if !runner.Done() {
		t.Fatal("runner did not finish within 30 frames")
	}

	target, ok := app.Recolor.Target()
	if !ok {
		t.Fatal("expected a target from the scripted drag")
	}
	cr, cg, cb := target.RGB255()
	if cr != 64 || cg != 51 || cb != 150 {
		t.Errorf("target = (%d,%d,%d), want (64,51,150)", cr, cg, cb)
	}
	if app.Recolor.Dragging() {
		t.Error("scripted drag should end released")
	}
}

func TestTestRunnerWaitCountsFrames(t *testing.T) {
	script := []byte(`{"steps": [{"action": "wait", "frames": 5}]}`)
	runner, err := LoadTestScript(script)
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}

	app := newTestApp()
	app.SetTestRunner(runner)

	frames := 0
	for !runner.Done() {
		if err := app.Update(); err != nil {
			t.Fatalf("Update: %v", err)
		}
		frames++
		if frames > 20 {
			t.Fatal("runner never finished")
		}
	}
	if frames < 5 {
		t.Errorf("runner finished in %d frames, want at least 5", frames)
	}
}
