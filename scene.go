package lumen

// Scene aggregates the single mesh, light, and camera the renderer reads
// each frame. It is static after setup except for the mesh's scale and
// color. There is no node tree; the landing scene has exactly one object.
type Scene struct {
	// Mesh is the object rendered each frame. May be nil (nothing drawn).
	Mesh *Mesh
	// Light is the point light shading the mesh. May be nil (ambient only).
	Light *PointLight
	// Camera projects the mesh. Required for the renderer to draw.
	Camera *Camera

	// Background is the clear color drawn behind the mesh.
	Background Color
	// Ambient is the ambient light factor applied to the mesh base color so
	// the unlit side stays visible. Defaults to 0.08.
	Ambient float64
}

// NewScene creates a scene with a default camera, a black background, and a
// low ambient term. Mesh and Light start nil.
func NewScene() *Scene {
	return &Scene{
		Camera:     NewCamera(),
		Background: ColorBlack,
		Ambient:    0.08,
	}
}
