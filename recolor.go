package lumen

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// recolorBlue is the fixed blue channel of every drag-computed target color.
const recolorBlue = 150

// Recolor is the drag-to-recolor state machine. While the pointer is down,
// every move maps the cursor position to a target color (red tracks the
// horizontal position, green the vertical, blue stays fixed) and starts a
// smooth interpolation of the mesh color toward it. A new target retargets
// the interpolation from the currently displayed color; last write wins, no
// queueing.
//
// The computed 0-255 channels are intentionally not clamped: coordinates
// outside the viewport (fast drags crossing the window edge) produce
// out-of-range targets, and only the final conversion to draw colors clamps.
type Recolor struct {
	// Duration is the length of one color interpolation in seconds.
	// Defaults to 1.
	Duration float32

	viewport *Viewport
	mesh     *Mesh

	dragging  bool
	target    Color
	hasTarget bool

	blendFrom Color
	blendTo   Color
	progress  *gween.Tween
}

// NewRecolor creates the state machine over the given viewport and mesh.
func NewRecolor(vp *Viewport, mesh *Mesh) *Recolor {
	return &Recolor{
		Duration: 1,
		viewport: vp,
		mesh:     mesh,
	}
}

// Dragging reports whether the machine is in the dragging state.
func (r *Recolor) Dragging() bool {
	return r.dragging
}

// Target returns the most recently computed target color and whether one has
// been computed at all.
func (r *Recolor) Target() (Color, bool) {
	return r.target, r.hasTarget
}

// PointerDown transitions Idle → Dragging.
func (r *Recolor) PointerDown(x, y float64) {
	r.dragging = true
}

// PointerUp transitions to Idle. Idempotent: calling while already Idle has
// no effect.
func (r *Recolor) PointerUp() {
	r.dragging = false
}

// PointerMove computes a new target color from the pointer position and
// retargets the running interpolation. No-op while Idle.
func (r *Recolor) PointerMove(x, y float64) {
	if !r.dragging {
		return
	}

	w := float64(r.viewport.Width)
	h := float64(r.viewport.Height)
	r.target = ColorRGB255(
		int(math.Round(255*x/w)),
		int(math.Round(255*y/h)),
		recolorBlue,
	)
	r.hasTarget = true

	// Retarget from whatever color is on screen right now.
	r.blendFrom = r.mesh.Color
	r.blendTo = r.target
	r.progress = gween.New(0, 1, r.Duration, ease.OutQuad)
}

// Update advances the active interpolation by dt seconds and writes the
// blended color into the mesh. No-op when no interpolation is in flight.
func (r *Recolor) Update(dt float32) {
	if r.progress == nil {
		return
	}
	t, finished := r.progress.Update(dt)
	r.mesh.Color = r.blendFrom.Lerp(r.blendTo, float64(t))
	if finished {
		r.progress = nil
	}
}
