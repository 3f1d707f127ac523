package lumen

import (
	"bytes"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// captureStderr runs fn with stderr redirected to a pipe and returns what it
// wrote.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	oldStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = oldStderr

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestDebugLogWritesStats(t *testing.T) {
	r := NewRenderer()
	r.SetDebugMode(true)

	out := captureStderr(t, func() {
		r.debugLog(renderStats{
			projectTime: 100 * time.Microsecond,
			sortTime:    50 * time.Microsecond,
			submitTime:  80 * time.Microsecond,
			drawn:       120,
			culled:      136,
		})
	})

	if !strings.Contains(out, "[lumen]") {
		t.Errorf("debug output missing [lumen] prefix: %q", out)
	}
	if !strings.Contains(out, "triangles drawn: 120") {
		t.Errorf("debug output missing drawn count: %q", out)
	}
	if !strings.Contains(out, "culled: 136") {
		t.Errorf("debug output missing culled count: %q", out)
	}
}

func TestDebugLogSilentWhenDisabled(t *testing.T) {
	r := NewRenderer()

	out := captureStderr(t, func() {
		r.debugLog(renderStats{drawn: 5})
	})

	if out != "" {
		t.Errorf("expected no output with debug mode off, got %q", out)
	}
}

func TestDrawLogsStatsInDebugMode(t *testing.T) {
	r := NewRenderer()
	r.SetDebugMode(true)
	s := newTestScene()
	screen := ebiten.NewImage(200, 100)

	out := captureStderr(t, func() {
		r.Draw(screen, s)
	})

	if !strings.Contains(out, "project:") {
		t.Errorf("expected per-frame timing in stderr, got %q", out)
	}
	if !strings.Contains(out, "triangles drawn:") {
		t.Errorf("expected triangle counts in stderr, got %q", out)
	}
}
