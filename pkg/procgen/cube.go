package procgen

import "github.com/go-gl/mathgl/mgl32"

type cubeFace struct {
	normal, u, v mgl32.Vec3
}

// u x v == normal for every face so the corner order below is counter-clockwise.
var cubeFaces = [6]cubeFace{
	{normal: mgl32.Vec3{0, 0, 1}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{0, 0, -1}, u: mgl32.Vec3{-1, 0, 0}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{1, 0, 0}, u: mgl32.Vec3{0, 0, -1}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{-1, 0, 0}, u: mgl32.Vec3{0, 0, 1}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{0, 1, 0}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 0, -1}},
	{normal: mgl32.Vec3{0, -1, 0}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 0, 1}},
}

var cubeCorners = [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// Cube builds an axis-aligned cube of edge length size centred on the origin.
// Each face has its own four vertices so normals stay flat.
func Cube(size float32) MeshData {
	half := size / 2
	mesh := MeshData{
		Vertices: make([]Vertex, 0, 24),
		Indices:  make([]uint32, 0, 36),
	}

	for _, face := range cubeFaces {
		start := uint32(len(mesh.Vertices))
		center := face.normal.Mul(half)
		for _, uv := range cubeCorners {
			pos := center.
				Add(face.u.Mul((uv.X()*2 - 1) * half)).
				Add(face.v.Mul((uv.Y()*2 - 1) * half))
			mesh.Vertices = append(mesh.Vertices, Vertex{Pos: pos, Normal: face.normal, UV: uv})
		}
		mesh.Indices = quad(mesh.Indices, start, start+1, start+2, start+3)
	}

	return mesh
}
