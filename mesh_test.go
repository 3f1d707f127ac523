package lumen

import "testing"

func TestNewSphereCounts(t *testing.T) {
	m := NewSphere(3, 64, 64)
	if got, want := m.VertexCount(), 65*65; got != want {
		t.Errorf("VertexCount = %d, want %d", got, want)
	}
	if got, want := m.TriangleCount(), 64*64*2; got != want {
		t.Errorf("TriangleCount = %d, want %d", got, want)
	}
}

func TestNewSphereRadius(t *testing.T) {
	m := NewSphere(3, 16, 12)
	for i, v := range m.vertices {
		if !approxEqual(v.Norm(), 3, 1e-9) {
			t.Fatalf("vertex %d at distance %f, want 3", i, v.Norm())
		}
	}
	if !approxEqual(m.Radius(), 3, 1e-9) {
		t.Errorf("Radius = %f, want 3", m.Radius())
	}
}

func TestNewSphereNormals(t *testing.T) {
	m := NewSphere(2, 8, 6)
	for i, n := range m.normals {
		if !approxEqual(n.Norm(), 1, 1e-9) {
			t.Fatalf("normal %d has length %f, want 1", i, n.Norm())
		}
		// Normals point outward.
		if n.Dot(m.vertices[i]) <= 0 {
			t.Fatalf("normal %d points inward", i)
		}
	}
}

func TestNewSphereClampsSegments(t *testing.T) {
	m := NewSphere(1, 1, 0)
	if got, want := m.VertexCount(), 4*3; got != want {
		t.Errorf("VertexCount = %d, want %d (3x2 segments)", got, want)
	}
	if got, want := m.TriangleCount(), 3*2*2; got != want {
		t.Errorf("TriangleCount = %d, want %d", got, want)
	}
}

func TestNewSphereStartsVisible(t *testing.T) {
	m := NewSphere(1, 8, 6)
	if m.Scale != Vec3One {
		t.Errorf("Scale = %v, want %v", m.Scale, Vec3One)
	}
	if m.Color != ColorWhite {
		t.Errorf("Color = %v, want white", m.Color)
	}
}

func TestNewSphereIndicesInRange(t *testing.T) {
	m := NewSphere(1, 12, 9)
	n := uint16(m.VertexCount())
	for i, idx := range m.indices {
		if idx >= n {
			t.Fatalf("index %d out of range: %d >= %d", i, idx, n)
		}
	}
}
