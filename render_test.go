package lumen

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func newTestScene() *Scene {
	s := NewScene()
	s.Mesh = NewSphere(1, 8, 6)
	s.Light = NewPointLight(ColorWhite, 10)
	s.Light.Position = Vec3{Y: 5, Z: 5}
	s.Camera.Position = Vec3{Z: 5}
	s.Camera.MarkDirty()
	return s
}

func TestRendererDrawEmitsTriangles(t *testing.T) {
	r := NewRenderer()
	s := newTestScene()
	screen := ebiten.NewImage(200, 100)

	r.Draw(screen, s)

	if len(r.tris) == 0 {
		t.Fatal("no triangles drawn for a visible sphere")
	}
	// Backfaces are culled, so well under the full mesh survives.
	if len(r.tris) >= s.Mesh.TriangleCount() {
		t.Errorf("drew %d of %d triangles, expected backface culling", len(r.tris), s.Mesh.TriangleCount())
	}
}

func TestRendererDepthSorted(t *testing.T) {
	r := NewRenderer()
	s := newTestScene()
	screen := ebiten.NewImage(200, 100)

	r.Draw(screen, s)

	for i := 1; i < len(r.tris); i++ {
		if r.tris[i].depth > r.tris[i-1].depth {
			t.Fatalf("triangles not back-to-front at %d: %f then %f",
				i, r.tris[i-1].depth, r.tris[i].depth)
		}
	}
}

func TestRendererZeroScaleDrawsNothing(t *testing.T) {
	r := NewRenderer()
	s := newTestScene()
	s.Mesh.Scale = Vec3{}
	screen := ebiten.NewImage(200, 100)

	r.Draw(screen, s)

	if len(r.tris) != 0 {
		t.Errorf("drew %d triangles at zero scale, want 0", len(r.tris))
	}
}

func TestRendererNilMeshDrawsBackground(t *testing.T) {
	r := NewRenderer()
	s := NewScene()
	screen := ebiten.NewImage(200, 100)

	// Must not panic with nothing to draw.
	r.Draw(screen, s)
	if len(r.tris) != 0 {
		t.Errorf("drew %d triangles with no mesh", len(r.tris))
	}
}

func TestRendererNilLightUsesAmbientOnly(t *testing.T) {
	r := NewRenderer()
	s := newTestScene()
	s.Light = nil
	s.Mesh.Color = ColorWhite
	screen := ebiten.NewImage(200, 100)

	r.Draw(screen, s)

	if len(r.tris) == 0 {
		t.Fatal("no triangles drawn")
	}
	for _, tri := range r.tris {
		if !approxEqual(tri.color.R, s.Ambient, epsilon) {
			t.Fatalf("tri color = %v, want flat ambient %f", tri.color, s.Ambient)
		}
	}
}

func TestRendererLitSideBrighter(t *testing.T) {
	r := NewRenderer()
	s := newTestScene()
	// Light sits directly above: top triangles outshine bottom ones.
	s.Light.Position = Vec3{Y: 10}
	screen := ebiten.NewImage(200, 100)

	r.Draw(screen, s)

	var top, bottom float64
	for _, tri := range r.tris {
		c := tri.color.R + tri.color.G + tri.color.B
		// Screen y grows downward, so y < center is the world top half.
		if r.projected[tri.i0].y < 50 {
			if c > top {
				top = c
			}
		} else if c > bottom {
			bottom = c
		}
	}
	if top <= bottom {
		t.Errorf("top brightness %f should exceed bottom %f", top, bottom)
	}
}

func TestRendererBuffersReused(t *testing.T) {
	r := NewRenderer()
	s := newTestScene()
	screen := ebiten.NewImage(200, 100)

	r.Draw(screen, s)
	firstCap := cap(r.verts)
	r.Draw(screen, s)
	if cap(r.verts) != firstCap {
		t.Errorf("vertex buffer reallocated: %d -> %d", firstCap, cap(r.verts))
	}
}
