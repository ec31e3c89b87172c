package procgen

import "github.com/go-gl/mathgl/mgl32"

// Plane builds a width x height grid in the XY plane, centred on the origin and facing +Z.
// The grid has subdivisions cells per side, giving (n+1)^2 vertices and 2n^2 triangles.
// UVs follow the world-space grid position so textures tile once per unit.
func Plane(width, height float32, subdivisions int) MeshData {
	n := clampMin(subdivisions, MinSubdivisions)
	columns := n + 1

	mesh := MeshData{
		Vertices: make([]Vertex, 0, columns*columns),
		Indices:  make([]uint32, 0, 6*n*n),
	}

	normal := mgl32.Vec3{0, 0, 1}
	for row := 0; row <= n; row++ {
		v := float32(row) / float32(n)
		for col := 0; col <= n; col++ {
			u := float32(col) / float32(n)
			mesh.Vertices = append(mesh.Vertices, Vertex{
				Pos:    mgl32.Vec3{(u - 0.5) * width, (v - 0.5) * height, 0},
				Normal: normal,
				UV:     mgl32.Vec2{u * width, v * height},
			})
		}
	}

	stride := uint32(columns)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			start := uint32(row)*stride + uint32(col)
			mesh.Indices = quad(mesh.Indices, start, start+1, start+stride+1, start+stride)
		}
	}

	return mesh
}
