package lumen

import "math"

// Mesh is an indexed triangle mesh with per-vertex normals. Scale and Color
// are the only fields intended to change after construction; the entrance
// timeline and the recolor machine are their usual mutators.
type Mesh struct {
	// Scale is applied per axis before projection.
	Scale Vec3
	// Color is the base material color.
	Color Color

	vertices []Vec3
	normals  []Vec3
	indices  []uint16
}

// NewSphere creates a UV sphere mesh of the given radius. widthSegments is
// the number of longitudinal slices (minimum 3), heightSegments the number of
// latitudinal rings (minimum 2). Triangles wind counter-clockwise seen from
// outside. The mesh starts at unit scale and white.
func NewSphere(radius float64, widthSegments, heightSegments int) *Mesh {
	if widthSegments < 3 {
		widthSegments = 3
	}
	if heightSegments < 2 {
		heightSegments = 2
	}

	vertexCount := (heightSegments + 1) * (widthSegments + 1)
	m := &Mesh{
		Scale:    Vec3One,
		Color:    ColorWhite,
		vertices: make([]Vec3, 0, vertexCount),
		normals:  make([]Vec3, 0, vertexCount),
		indices:  make([]uint16, 0, heightSegments*widthSegments*6),
	}

	for ring := 0; ring <= heightSegments; ring++ {
		theta := float64(ring) * math.Pi / float64(heightSegments)
		sinTheta := math.Sin(theta)
		cosTheta := math.Cos(theta)

		for seg := 0; seg <= widthSegments; seg++ {
			phi := float64(seg) * 2 * math.Pi / float64(widthSegments)

			// Unit-sphere position doubles as the normal.
			n := Vec3{
				X: math.Cos(phi) * sinTheta,
				Y: cosTheta,
				Z: math.Sin(phi) * sinTheta,
			}
			m.vertices = append(m.vertices, n.Scale(radius))
			m.normals = append(m.normals, n)
		}
	}

	for ring := 0; ring < heightSegments; ring++ {
		for seg := 0; seg < widthSegments; seg++ {
			current := uint16(ring*(widthSegments+1) + seg)
			next := current + uint16(widthSegments) + 1

			m.indices = append(m.indices, current, current+1, next)
			m.indices = append(m.indices, current+1, next+1, next)
		}
	}

	return m
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.vertices)
}

// TriangleCount returns the number of triangles in the mesh.
func (m *Mesh) TriangleCount() int {
	return len(m.indices) / 3
}

// Radius returns the distance of the first vertex from the origin at unit
// scale, which for spheres is the construction radius.
func (m *Mesh) Radius() float64 {
	if len(m.vertices) == 0 {
		return 0
	}
	return m.vertices[0].Norm()
}
