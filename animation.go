package lumen

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields simultaneously. Create one via
// the convenience constructors (TweenFloat, TweenVec3, TweenColor) and call
// Update(dt) each frame; values are written into the target fields as the
// group advances.
//
// There is no global animation manager; users call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. Updating a finished group is a no-op.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Overflow returns the surplus time left over after the group finished.
// Zero while the group is still running.
func (g *TweenGroup) Overflow() float32 {
	if !g.Done || g.count == 0 {
		return 0
	}
	return g.tweens[0].Overflow
}

// TweenFloat creates a TweenGroup that animates a single field to the given
// target value over the specified duration using the easing function.
func TweenFloat(field *float64, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[0] = field
	return g
}

// TweenVec3 creates a TweenGroup that animates all three components of a
// vector to the target values simultaneously.
func TweenVec3(v *Vec3, to Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 3}
	g.tweens[0] = gween.New(float32(v.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(v.Y), float32(to.Y), duration, fn)
	g.tweens[2] = gween.New(float32(v.Z), float32(to.Z), duration, fn)
	g.fields[0] = &v.X
	g.fields[1] = &v.Y
	g.fields[2] = &v.Z
	return g
}

// TweenColor creates a TweenGroup that animates all three channels of a
// color to the target color. For interpolation that retargets from the
// currently displayed color, see Recolor.
func TweenColor(c *Color, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 3}
	g.tweens[0] = gween.New(float32(c.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(c.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(c.B), float32(to.B), duration, fn)
	g.fields[0] = &c.R
	g.fields[1] = &c.G
	g.fields[2] = &c.B
	return g
}

// Timeline runs TweenGroups strictly one after another, each segment
// starting when the previous one finishes. Surplus time at a segment
// boundary rolls into the next segment, so boundaries don't stall a frame.
//
// A Timeline runs once; it is not restartable.
type Timeline struct {
	segments []*TweenGroup
	cursor   int
	Done     bool
}

// NewTimeline creates an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Append adds a segment to the end of the timeline and returns the timeline
// for chaining. Appending after the timeline finished has no effect.
func (t *Timeline) Append(g *TweenGroup) *Timeline {
	if !t.Done {
		t.segments = append(t.segments, g)
	}
	return t
}

// Update advances the current segment by dt seconds, carrying leftover time
// into following segments as they complete.
func (t *Timeline) Update(dt float32) {
	if t.Done {
		return
	}

	for t.cursor < len(t.segments) {
		seg := t.segments[t.cursor]
		seg.Update(dt)
		if !seg.Done {
			return
		}
		dt = seg.Overflow()
		t.cursor++
		if dt <= 0 {
			break
		}
	}

	if t.cursor >= len(t.segments) {
		t.Done = true
	}
}
