package lumen

import "math"

// polarEpsilon keeps the polar angle away from the poles so the camera basis
// never degenerates against the up vector.
const polarEpsilon = 1e-6

// OrbitController rotates a camera around a fixed target in response to
// pointer drags, with inertia-smoothed (damped) motion and an optional
// constant auto-rotation. Panning and zooming are not provided; the orbit
// radius is fixed at construction.
//
// Update must be called exactly once per rendered frame, before the frame is
// drawn, for damping to feel continuous.
type OrbitController struct {
	// Camera is the camera written to on every Update.
	Camera *Camera
	// Target is the world point the camera orbits.
	Target Vec3

	// EnableDamping smooths pointer-driven rotation with inertia.
	EnableDamping bool
	// DampingFactor controls how quickly inertia decays per frame when
	// EnableDamping is set. Defaults to 0.05.
	DampingFactor float64
	// AutoRotate spins the camera around the target every frame, including
	// while a drag is in progress; drag deltas add on top of the constant
	// rotation.
	AutoRotate bool
	// AutoRotateSpeed is the auto-rotation rate: 1.0 is one full orbit per
	// 60 seconds. Defaults to 2.
	AutoRotateSpeed float64
	// RotateSpeed scales pointer-drag rotation. Defaults to 1.
	RotateSpeed float64

	// Spherical state around Target: radius, azimuth (theta, around the up
	// axis), polar (phi, from the up axis).
	radius float64
	theta  float64
	phi    float64

	// Pending rotation accumulated from input and auto-rotate, drained
	// (fully, or partially under damping) by Update.
	deltaTheta float64
	deltaPhi   float64

	dragging   bool
	lastDrag   Vec2
	pixelScale float64
}

// NewOrbitController wraps a camera with orbit behavior around the camera's
// current target. The orbit radius and initial angles are derived from the
// camera's position at call time.
func NewOrbitController(cam *Camera) *OrbitController {
	o := &OrbitController{
		Camera:          cam,
		Target:          cam.Target,
		DampingFactor:   0.05,
		AutoRotateSpeed: 2,
		RotateSpeed:     1,
		pixelScale:      1.0 / 600,
	}
	offset := cam.Position.Sub(cam.Target)
	o.radius = offset.Norm()
	if o.radius == 0 {
		o.radius = 1
		offset = Vec3{Z: 1}
	}
	o.theta = math.Atan2(offset.X, offset.Z)
	o.phi = math.Acos(clampRange(offset.Y/o.radius, -1, 1))
	return o
}

// SetViewportHeight sets the pixel height used to normalize drag deltas so a
// full-height drag rotates half a revolution, matching common orbit-control
// behavior. Heights <= 0 are ignored.
func (o *OrbitController) SetViewportHeight(h int) {
	if h > 0 {
		o.pixelScale = 1 / float64(h)
	}
}

// Radius returns the fixed orbit distance.
func (o *OrbitController) Radius() float64 { return o.radius }

// Angles returns the current azimuth and polar angles in radians.
func (o *OrbitController) Angles() (theta, phi float64) { return o.theta, o.phi }

// PointerDown begins a drag at the given screen position.
func (o *OrbitController) PointerDown(x, y float64) {
	o.dragging = true
	o.lastDrag = Vec2{X: x, Y: y}
}

// PointerUp ends the current drag. Safe to call while not dragging.
func (o *OrbitController) PointerUp() {
	o.dragging = false
}

// PointerMove accumulates rotation from drag movement. No-op unless a drag
// is in progress.
func (o *OrbitController) PointerMove(x, y float64) {
	if !o.dragging {
		return
	}
	dx := x - o.lastDrag.X
	dy := y - o.lastDrag.Y
	o.lastDrag = Vec2{X: x, Y: y}

	o.deltaTheta -= 2 * math.Pi * dx * o.pixelScale * o.RotateSpeed
	o.deltaPhi -= 2 * math.Pi * dy * o.pixelScale * o.RotateSpeed
}

// autoRotationAngle is the azimuth advance contributed by auto-rotation over
// dt seconds: AutoRotateSpeed of 1.0 completes one orbit in 60 seconds.
func (o *OrbitController) autoRotationAngle(dt float64) float64 {
	return 2 * math.Pi / 60 * o.AutoRotateSpeed * dt
}

// Update advances auto-rotation and damped drag rotation by dt seconds and
// writes the resulting orientation into the camera. Purely numeric; never
// fails.
func (o *OrbitController) Update(dt float64) {
	if o.AutoRotate {
		o.deltaTheta -= o.autoRotationAngle(dt)
	}

	if o.EnableDamping {
		o.theta += o.deltaTheta * o.DampingFactor
		o.phi += o.deltaPhi * o.DampingFactor
		o.deltaTheta *= 1 - o.DampingFactor
		o.deltaPhi *= 1 - o.DampingFactor
	} else {
		o.theta += o.deltaTheta
		o.phi += o.deltaPhi
		o.deltaTheta = 0
		o.deltaPhi = 0
	}

	o.phi = clampRange(o.phi, polarEpsilon, math.Pi-polarEpsilon)

	sinPhi := math.Sin(o.phi)
	o.Camera.Position = Vec3{
		X: o.radius * sinPhi * math.Sin(o.theta),
		Y: o.radius * math.Cos(o.phi),
		Z: o.radius * sinPhi * math.Cos(o.theta),
	}.Add(o.Target)
	o.Camera.Target = o.Target
	o.Camera.MarkDirty()
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
