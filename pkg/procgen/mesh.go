// Package procgen generates vertex and index buffers for simple parametric shapes.
//
// Every generator is pure: it returns a fresh MeshData owned by the caller and never
// touches previously returned data. Front faces wind counter-clockwise when viewed from
// outside the shape, matching back-face culling with glFrontFace(GL_CCW).
package procgen

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Minimum parameter values. Smaller inputs are raised to these instead of failing.
const (
	MinSubdivisions = 1
	MinSegments     = 3
)

// Vertex is one mesh vertex. The field order matches the GPU attribute layout
// (location 0 position, 1 normal, 2 uv).
type Vertex struct {
	Pos    mgl32.Vec3
	Normal mgl32.Vec3
	UV     mgl32.Vec2
}

// MeshData holds triangle-list geometry ready for upload.
type MeshData struct {
	Vertices []Vertex
	Indices  []uint32
}

// TriangleCount returns the number of triangles described by the index buffer.
func (m MeshData) TriangleCount() int {
	return len(m.Indices) / 3
}

// Validate checks that the index buffer forms whole triangles and that every index
// addresses an existing vertex.
func (m MeshData) Validate() error {
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return fmt.Errorf("index %d at position %d out of range (%d vertices)", idx, i, len(m.Vertices))
		}
	}
	return nil
}

// Triangle returns the three vertex positions of triangle i.
func (m MeshData) Triangle(i int) (a, b, c mgl32.Vec3) {
	return m.Vertices[m.Indices[i*3]].Pos,
		m.Vertices[m.Indices[i*3+1]].Pos,
		m.Vertices[m.Indices[i*3+2]].Pos
}

func clampMin(v, minimum int) int {
	if v < minimum {
		return minimum
	}
	return v
}

// quad appends two triangles for the quad a-b-c-d given counter-clockwise.
func quad(indices []uint32, a, b, c, d uint32) []uint32 {
	return append(indices, a, b, c, c, d, a)
}
