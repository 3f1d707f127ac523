package lumen

import "github.com/tanema/gween/ease"

// entranceSegmentDuration is the shared per-segment duration of the entrance
// timeline, in seconds.
const entranceSegmentDuration float32 = 1.0

// NewEntranceTimeline builds the one-shot startup sequence: the mesh scales
// up from zero, then the nav bar slides in from above, then the title fades
// in. Segments run strictly back-to-back, one second each. Nil targets are
// skipped; their segment simply doesn't exist.
//
// The timeline resets its targets to their hidden starting values (zero
// scale, -100% offset, zero opacity) at construction, so it fully owns the
// entrance regardless of how the targets were created.
func NewEntranceTimeline(mesh *Mesh, nav *NavBar, title *Title) *Timeline {
	tl := NewTimeline()

	if mesh != nil {
		mesh.Scale = Vec3{}
		tl.Append(TweenVec3(&mesh.Scale, Vec3One, entranceSegmentDuration, ease.OutQuad))
	}
	if nav != nil {
		nav.OffsetPct = -100
		tl.Append(TweenFloat(&nav.OffsetPct, 0, entranceSegmentDuration, ease.OutQuad))
	}
	if title != nil {
		title.Opacity = 0
		tl.Append(TweenFloat(&title.Opacity, 1, entranceSegmentDuration, ease.OutQuad))
	}

	return tl
}
