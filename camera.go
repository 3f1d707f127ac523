package lumen

import "math"

// Camera is a perspective camera looking from Position toward Target.
type Camera struct {
	// FOV is the vertical field of view in degrees.
	FOV float64
	// Aspect is the viewport width / height ratio. Kept in sync by a bound
	// Viewport; set directly (via SetAspect) otherwise.
	Aspect float64
	// Near and Far are the clip distances along the view direction. Points
	// outside [Near, Far] do not project.
	Near, Far float64

	// Position is the camera location in world space.
	Position Vec3
	// Target is the point the camera looks at.
	Target Vec3
	// Up is the world up hint used to build the camera basis.
	Up Vec3

	// Cached orthonormal basis and focal factor, rebuilt when dirty.
	right, up, forward Vec3
	focal              float64
	dirty              bool
}

// NewCamera creates a camera with the common defaults: FOV 45°, near 0.1,
// far 100, positioned at (0, 0, 10) looking at the origin.
func NewCamera() *Camera {
	return &Camera{
		FOV:      45,
		Aspect:   1,
		Near:     0.1,
		Far:      100,
		Position: Vec3{Z: 10},
		Up:       Vec3{Y: 1},
		dirty:    true,
	}
}

// SetAspect updates the aspect ratio and invalidates the cached projection.
func (c *Camera) SetAspect(aspect float64) {
	if aspect == c.Aspect || aspect <= 0 {
		return
	}
	c.Aspect = aspect
	c.dirty = true
}

// MarkDirty forces a recomputation of the cached basis on the next
// projection. Call after mutating Position, Target, Up, or FOV directly.
func (c *Camera) MarkDirty() {
	c.dirty = true
}

// computeBasis rebuilds the cached camera basis and focal factor if dirty.
func (c *Camera) computeBasis() {
	if !c.dirty {
		return
	}
	c.dirty = false

	c.forward = c.Target.Sub(c.Position).Normalize()
	if c.forward == (Vec3{}) {
		c.forward = Vec3{Z: -1}
	}
	c.right = c.forward.Cross(c.Up).Normalize()
	if c.right == (Vec3{}) {
		// Looking straight along Up; pick an arbitrary perpendicular.
		c.right = Vec3{X: 1}
	}
	c.up = c.right.Cross(c.forward)
	c.focal = 1 / math.Tan(c.FOV*math.Pi/180/2)
}

// Project maps a world-space point to pixel coordinates on a surface of the
// given size. depth is the distance along the view direction, used for
// sorting. ok is false when the point lies outside the near/far range.
func (c *Camera) Project(p Vec3, width, height float64) (sx, sy, depth float64, ok bool) {
	c.computeBasis()

	rel := p.Sub(c.Position)
	zc := rel.Dot(c.forward)
	if zc < c.Near || zc > c.Far {
		return 0, 0, zc, false
	}
	xc := rel.Dot(c.right)
	yc := rel.Dot(c.up)

	ndcX := c.focal / c.Aspect * xc / zc
	ndcY := c.focal * yc / zc

	sx = (ndcX*0.5 + 0.5) * width
	sy = (1 - (ndcY*0.5 + 0.5)) * height
	return sx, sy, zc, true
}
