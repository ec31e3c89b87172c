package scenes

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/glcourse/internal/engine/mesh"
	"github.com/Faultbox/glcourse/internal/engine/shader"
	"github.com/Faultbox/glcourse/pkg/math"
	"github.com/Faultbox/glcourse/pkg/procgen"
)

// shape is a placed mesh whose geometry is regenerated when its parameters change.
type shape struct {
	label     string
	enabled   bool
	home      mgl32.Vec3
	transform math.Transform

	mesh     *mesh.Mesh
	uploaded any // parameter tuple of the mesh currently on the GPU
}

func newShape(label string, home mgl32.Vec3) *shape {
	s := &shape{label: label, enabled: true, home: home}
	s.reset()
	return s
}

func (s *shape) reset() {
	s.transform.Reset(s.home)
}

// stale reports whether params differ from what was last uploaded.
func (s *shape) stale(params any) bool {
	return s.mesh == nil || s.uploaded != params
}

// sync uploads the mesh for params if it is not already on the GPU.
// build is only called when an upload is needed.
func (s *shape) sync(params any, build func() procgen.MeshData) error {
	if !s.stale(params) {
		return nil
	}
	data := build()
	if s.mesh == nil {
		m, err := mesh.New(data)
		if err != nil {
			return err
		}
		s.mesh = m
	} else if err := s.mesh.Replace(data); err != nil {
		return err
	}
	s.uploaded = params
	return nil
}

func (s *shape) draw(u shader.Uniforms, mode mesh.DrawMode) {
	if !s.enabled || s.mesh == nil {
		return
	}
	u.SetMat4("_Model", s.transform.ModelMatrix())
	s.mesh.Draw(mode)
}

func (s *shape) destroy() {
	if s.mesh != nil {
		s.mesh.Destroy()
		s.mesh = nil
	}
	s.uploaded = nil
}

// cubeShape syncs a cube of the given size from the cache.
func cubeShape(s *shape, cache *procgen.Cache, size float32) error {
	p := procgen.CubeParams{Size: size}
	return s.sync(p, func() procgen.MeshData {
		data, _ := cache.Cube(p)
		return data
	})
}

// gridPositions returns the 2x2 layout shared by the cube scenes.
func gridPositions() [4]mgl32.Vec3 {
	var out [4]mgl32.Vec3
	for i := range out {
		out[i] = mgl32.Vec3{float32(i%2) - 0.5, float32(i/2) - 0.5, 0}
	}
	return out
}

// clearTo fills the bound framebuffer with c and resets depth.
func clearTo(c mgl32.Vec3) {
	gl.ClearColor(c.X(), c.Y(), c.Z(), 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}
