package procgen

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Cylinder builds a capped cylinder centred on the origin with its axis along Y.
//
// Vertex layout, in order: top pole, top cap ring, top side ring, bottom side ring,
// bottom cap ring, bottom pole. Each ring holds segments+1 samples; the last sample
// repeats the first angle so side UVs do not wrap.
func Cylinder(height, radius float32, segments int) MeshData {
	n := clampMin(segments, MinSegments)
	ring := n + 1
	step := 2 * math32.Pi / float32(n)
	topY := height / 2
	bottomY := -topY

	mesh := MeshData{
		Vertices: make([]Vertex, 0, 4*ring+2),
		Indices:  make([]uint32, 0, 12*n),
	}

	up := mgl32.Vec3{0, 1, 0}
	down := mgl32.Vec3{0, -1, 0}

	mesh.Vertices = append(mesh.Vertices, Vertex{Pos: mgl32.Vec3{0, topY, 0}, Normal: up, UV: mgl32.Vec2{0.5, 0.5}})
	mesh.Vertices = appendCapRing(mesh.Vertices, n, step, radius, topY, up)
	mesh.Vertices = appendSideRing(mesh.Vertices, n, step, radius, topY, 1)
	mesh.Vertices = appendSideRing(mesh.Vertices, n, step, radius, bottomY, 0)
	mesh.Vertices = appendCapRing(mesh.Vertices, n, step, radius, bottomY, down)
	mesh.Vertices = append(mesh.Vertices, Vertex{Pos: mgl32.Vec3{0, bottomY, 0}, Normal: down, UV: mgl32.Vec2{0.5, 0.5}})

	topPole := uint32(0)
	topCap := uint32(1)
	topSide := topCap + uint32(ring)
	bottomSide := topSide + uint32(ring)
	bottomCap := bottomSide + uint32(ring)
	bottomPole := bottomCap + uint32(ring)

	// Ring angles advance clockwise when seen from above, so the top fan walks backwards.
	for i := uint32(0); i < uint32(n); i++ {
		mesh.Indices = append(mesh.Indices, topPole, topCap+i+1, topCap+i)
	}
	for i := uint32(0); i < uint32(n); i++ {
		mesh.Indices = append(mesh.Indices, bottomPole, bottomCap+i, bottomCap+i+1)
	}
	for i := uint32(0); i < uint32(n); i++ {
		mesh.Indices = quad(mesh.Indices, topSide+i, topSide+i+1, bottomSide+i+1, bottomSide+i)
	}

	return mesh
}

func appendCapRing(vertices []Vertex, n int, step, radius, y float32, normal mgl32.Vec3) []Vertex {
	for i := 0; i <= n; i++ {
		c, s := math32.Cos(float32(i)*step), math32.Sin(float32(i)*step)
		vertices = append(vertices, Vertex{
			Pos:    mgl32.Vec3{c * radius, y, s * radius},
			Normal: normal,
			UV:     mgl32.Vec2{c*0.5 + 0.5, s*0.5 + 0.5},
		})
	}
	return vertices
}

func appendSideRing(vertices []Vertex, n int, step, radius, y, v float32) []Vertex {
	for i := 0; i <= n; i++ {
		c, s := math32.Cos(float32(i)*step), math32.Sin(float32(i)*step)
		vertices = append(vertices, Vertex{
			Pos:    mgl32.Vec3{c * radius, y, s * radius},
			Normal: mgl32.Vec3{c, 0, s},
			UV:     mgl32.Vec2{float32(i) / float32(n), v},
		})
	}
	return vertices
}
