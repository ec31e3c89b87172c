package procgen

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Sphere builds a latitude/longitude sphere centred on the origin.
//
// Rows walk the polar angle phi from the north pole (0) to the south pole (pi) and
// columns walk the azimuth theta from 0 to 2pi, giving (segments+1)^2 vertices. The first
// and last rows collapse onto the poles but stay distinct vertices so each column keeps
// its own UV.
func Sphere(radius float32, segments int) MeshData {
	n := clampMin(segments, MinSegments)
	columns := n + 1
	thetaStep := 2 * math32.Pi / float32(n)
	phiStep := math32.Pi / float32(n)

	mesh := MeshData{
		Vertices: make([]Vertex, 0, columns*columns),
		Indices:  make([]uint32, 0, 6*n*(n-1)),
	}

	for row := 0; row <= n; row++ {
		phi := float32(row) * phiStep
		sinPhi, cosPhi := math32.Sin(phi), math32.Cos(phi)
		for col := 0; col <= n; col++ {
			theta := float32(col) * thetaStep
			normal := mgl32.Vec3{math32.Cos(theta) * sinPhi, cosPhi, math32.Sin(theta) * sinPhi}
			mesh.Vertices = append(mesh.Vertices, Vertex{
				Pos:    normal.Mul(radius),
				Normal: normal,
				UV:     mgl32.Vec2{float32(col) / float32(n), 1 - float32(row)/float32(n)},
			})
		}
	}

	stride := uint32(columns)
	rowStart := func(row int) uint32 { return uint32(row) * stride }

	// North cap: pole row 0 fans onto row 1.
	for col := uint32(0); col < uint32(n); col++ {
		pole := rowStart(0) + col
		ring := rowStart(1) + col
		mesh.Indices = append(mesh.Indices, pole, ring+1, ring)
	}

	for row := 1; row < n-1; row++ {
		for col := uint32(0); col < uint32(n); col++ {
			top := rowStart(row) + col
			bottom := rowStart(row+1) + col
			mesh.Indices = quad(mesh.Indices, top, top+1, bottom+1, bottom)
		}
	}

	// South cap: row n-1 fans onto pole row n.
	for col := uint32(0); col < uint32(n); col++ {
		pole := rowStart(n) + col
		ring := rowStart(n-1) + col
		mesh.Indices = append(mesh.Indices, pole, ring, ring+1)
	}

	return mesh
}
