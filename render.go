package lumen

import (
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// projVertex is a mesh vertex after projection to screen space.
type projVertex struct {
	x, y  float64
	depth float64
	ok    bool
}

// shadedTri is one visible triangle ready for depth sorting and submission.
type shadedTri struct {
	i0, i1, i2 uint16
	depth      float64
	color      Color
}

// Renderer projects a scene's mesh through its camera and draws it with a
// single DrawTriangles call: transform, backface cull, painter's-algorithm
// depth sort, flat shading per triangle. All scratch buffers are reused
// across frames.
type Renderer struct {
	debug bool

	world     []Vec3
	projected []projVertex
	tris      []shadedTri
	verts     []ebiten.Vertex
	indices   []uint16
}

// NewRenderer creates a renderer with empty scratch buffers; they grow to fit
// the first scene drawn and are reused afterwards.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// SetDebugMode enables per-frame timing and triangle stats on stderr.
func (r *Renderer) SetDebugMode(enabled bool) {
	r.debug = enabled
}

// Draw clears dst with the scene background and renders the scene mesh into
// it. A nil mesh, camera, or degenerate scale draws only the background.
func (r *Renderer) Draw(dst *ebiten.Image, s *Scene) {
	dst.Fill(s.Background.toRGBA())

	mesh := s.Mesh
	if mesh == nil || s.Camera == nil || len(mesh.indices) == 0 {
		return
	}

	bounds := dst.Bounds()
	width := float64(bounds.Dx())
	height := float64(bounds.Dy())

	var stats renderStats
	var t0 time.Time
	if r.debug {
		t0 = time.Now()
	}

	r.projectMesh(mesh, s.Camera, width, height)
	r.assembleTriangles(mesh, s, &stats)

	if r.debug {
		stats.projectTime = time.Since(t0)
		t0 = time.Now()
	}

	// Painter's algorithm: farthest triangles first.
	slices.SortFunc(r.tris, func(a, b shadedTri) int {
		switch {
		case a.depth > b.depth:
			return -1
		case a.depth < b.depth:
			return 1
		default:
			return 0
		}
	})

	if r.debug {
		stats.sortTime = time.Since(t0)
		t0 = time.Now()
	}

	r.submit(dst)

	if r.debug {
		stats.submitTime = time.Since(t0)
		stats.drawn = len(r.tris)
		r.debugLog(stats)
	}
}

// projectMesh fills r.world and r.projected for every mesh vertex.
func (r *Renderer) projectMesh(mesh *Mesh, cam *Camera, width, height float64) {
	n := len(mesh.vertices)
	if cap(r.world) < n {
		r.world = make([]Vec3, n)
		r.projected = make([]projVertex, n)
	}
	r.world = r.world[:n]
	r.projected = r.projected[:n]

	for i, v := range mesh.vertices {
		w := v.MulEach(mesh.Scale)
		r.world[i] = w
		sx, sy, depth, ok := cam.Project(w, width, height)
		r.projected[i] = projVertex{x: sx, y: sy, depth: depth, ok: ok}
	}
}

// assembleTriangles culls back and clipped faces and shades the rest.
func (r *Renderer) assembleTriangles(mesh *Mesh, s *Scene, stats *renderStats) {
	r.tris = r.tris[:0]
	camPos := s.Camera.Position
	base := mesh.Color
	ambient := base.Scale(s.Ambient)

	for t := 0; t+2 < len(mesh.indices); t += 3 {
		i0, i1, i2 := mesh.indices[t], mesh.indices[t+1], mesh.indices[t+2]
		p0, p1, p2 := r.projected[i0], r.projected[i1], r.projected[i2]
		if !p0.ok || !p1.ok || !p2.ok {
			stats.culled++
			continue
		}

		w0, w1, w2 := r.world[i0], r.world[i1], r.world[i2]

		// Backface cull against the geometric face normal. Degenerate
		// triangles (e.g. zero scale) fall out here too.
		faceNormal := w1.Sub(w0).Cross(w2.Sub(w0))
		if faceNormal.Dot(camPos.Sub(w0)) <= 0 {
			stats.culled++
			continue
		}

		col := ambient
		if s.Light != nil {
			centroid := w0.Add(w1).Add(w2).Scale(1.0 / 3)
			normal := r.faceShadingNormal(mesh, i0, i1, i2)
			col = col.Add(s.Light.Shade(centroid, normal, base))
		}

		r.tris = append(r.tris, shadedTri{
			i0: i0, i1: i1, i2: i2,
			depth: (p0.depth + p1.depth + p2.depth) / 3,
			color: col,
		})
	}
}

// faceShadingNormal averages the three vertex normals and corrects them for
// non-uniform scale (inverse-transpose of the scale matrix).
func (r *Renderer) faceShadingNormal(mesh *Mesh, i0, i1, i2 uint16) Vec3 {
	n := mesh.normals[i0].Add(mesh.normals[i1]).Add(mesh.normals[i2])
	s := mesh.Scale
	if s.X != 0 {
		n.X /= s.X
	}
	if s.Y != 0 {
		n.Y /= s.Y
	}
	if s.Z != 0 {
		n.Z /= s.Z
	}
	return n.Normalize()
}

// submit converts sorted triangles to ebiten vertices and issues one draw
// call over the white-pixel texture.
func (r *Renderer) submit(dst *ebiten.Image) {
	if len(r.tris) == 0 {
		return
	}

	need := len(r.tris) * 3
	if cap(r.verts) < need {
		r.verts = make([]ebiten.Vertex, need)
		r.indices = make([]uint16, need)
	}
	r.verts = r.verts[:need]
	r.indices = r.indices[:need]

	for i, tri := range r.tris {
		col := tri.color.clamped()
		cr := float32(col.R)
		cg := float32(col.G)
		cb := float32(col.B)

		for j, idx := range [3]uint16{tri.i0, tri.i1, tri.i2} {
			p := r.projected[idx]
			k := i*3 + j
			r.verts[k] = ebiten.Vertex{
				DstX:   float32(p.x),
				DstY:   float32(p.y),
				ColorR: cr,
				ColorG: cg,
				ColorB: cb,
				ColorA: 1,
			}
			r.indices[k] = uint16(k)
		}
	}

	dst.DrawTriangles(r.verts, r.indices, WhitePixel, nil)
}
