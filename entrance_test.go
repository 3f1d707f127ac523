package lumen

import (
	"math"
	"testing"
)

func TestEntranceEndState(t *testing.T) {
	mesh := NewSphere(3, 8, 6)
	nav := NewNavBar()
	title := NewTitle("hello")

	// Scribble on the targets: the timeline owns the starting values.
	mesh.Scale = Vec3{X: 5, Y: 5, Z: 5}
	nav.OffsetPct = 40
	title.Opacity = 0.7

	tl := NewEntranceTimeline(mesh, nav, title)

	for i := 0; i < 60*4; i++ {
		tl.Update(1.0 / 60)
	}

	if !tl.Done {
		t.Fatal("entrance should finish within four seconds")
	}
	if math.Abs(mesh.Scale.X-1) > 0.01 || math.Abs(mesh.Scale.Y-1) > 0.01 || math.Abs(mesh.Scale.Z-1) > 0.01 {
		t.Errorf("mesh scale = %v, want (1,1,1)", mesh.Scale)
	}
	if math.Abs(nav.OffsetPct) > 0.5 {
		t.Errorf("nav offset = %f, want 0", nav.OffsetPct)
	}
	if math.Abs(title.Opacity-1) > 0.01 {
		t.Errorf("title opacity = %f, want 1", title.Opacity)
	}
}

func TestEntranceStartsHidden(t *testing.T) {
	mesh := NewSphere(3, 8, 6)
	nav := NewNavBar()
	nav.OffsetPct = 0
	title := NewTitle("hello")
	title.Opacity = 1

	NewEntranceTimeline(mesh, nav, title)

	if mesh.Scale != (Vec3{}) {
		t.Errorf("mesh scale = %v, want zero before the timeline runs", mesh.Scale)
	}
	if nav.OffsetPct != -100 {
		t.Errorf("nav offset = %f, want -100", nav.OffsetPct)
	}
	if title.Opacity != 0 {
		t.Errorf("title opacity = %f, want 0", title.Opacity)
	}
}

func TestEntranceSegmentsAreSequential(t *testing.T) {
	mesh := NewSphere(3, 8, 6)
	nav := NewNavBar()
	title := NewTitle("hello")

	tl := NewEntranceTimeline(mesh, nav, title)

	// Halfway through the mesh segment nothing else has moved.
	tl.Update(0.5)
	if nav.OffsetPct != -100 {
		t.Errorf("nav moved to %f during the mesh segment", nav.OffsetPct)
	}
	if title.Opacity != 0 {
		t.Errorf("title moved to %f during the mesh segment", title.Opacity)
	}

	// During the nav segment the title still hasn't moved.
	tl.Update(1.0)
	if title.Opacity != 0 {
		t.Errorf("title moved to %f during the nav segment", title.Opacity)
	}
}

func TestEntranceSkipsNilTargets(t *testing.T) {
	title := NewTitle("solo")
	tl := NewEntranceTimeline(nil, nil, title)

	tl.Update(1.0)
	tl.Update(0.5)

	if !tl.Done {
		t.Fatal("single-segment timeline should be done after one second")
	}
	if math.Abs(title.Opacity-1) > 0.01 {
		t.Errorf("title opacity = %f, want 1", title.Opacity)
	}
}

func TestEntranceRunsOnce(t *testing.T) {
	mesh := NewSphere(3, 8, 6)
	tl := NewEntranceTimeline(mesh, nil, nil)

	for i := 0; i < 120; i++ {
		tl.Update(1.0 / 60)
	}
	mesh.Scale = Vec3{X: 2, Y: 2, Z: 2}

	// A finished entrance never touches its targets again.
	tl.Update(1.0)
	if mesh.Scale != (Vec3{X: 2, Y: 2, Z: 2}) {
		t.Errorf("mesh scale = %v, want untouched (2,2,2)", mesh.Scale)
	}
}
