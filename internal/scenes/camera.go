package scenes

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/glcourse/internal/engine/mesh"
	"github.com/Faultbox/glcourse/internal/engine/shader"
	"github.com/Faultbox/glcourse/internal/engine/ui"
	"github.com/Faultbox/glcourse/internal/scenes/shaders"
)

var skyBlue = mgl32.Vec3{0.3, 0.4, 0.9}

// CameraScene views the four cubes through the shared camera.
type CameraScene struct {
	ctx     *Context
	program *shader.Program
	cubes   [4]*shape
}

// NewCameraScene creates the camera scene.
func NewCameraScene() *CameraScene {
	s := &CameraScene{}
	for i, p := range gridPositions() {
		s.cubes[i] = newShape(fmt.Sprintf("Cube %d", i+1), p)
	}
	return s
}

func (s *CameraScene) Name() string  { return "camera" }
func (s *CameraScene) Title() string { return "Camera" }

func (s *CameraScene) Enter(ctx *Context) error {
	s.ctx = ctx
	program, err := ctx.Shaders.Get(shaders.Unlit)
	if err != nil {
		return err
	}
	s.program = program
	applyCamera(ctx.Camera, ctx.Controls, ctx.Config.Camera)
	for _, c := range s.cubes {
		if err := cubeShape(c, ctx.Meshes, cubeSize); err != nil {
			return err
		}
	}
	return nil
}

func (s *CameraScene) Exit() error {
	for _, c := range s.cubes {
		c.destroy()
	}
	return nil
}

func (s *CameraScene) Update(Frame) error { return nil }

func (s *CameraScene) Render(f Frame) {
	clearTo(skyBlue)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	s.program.Use()
	s.program.SetMat4("_View", f.View)
	s.program.SetMat4("_Projection", f.Projection)
	s.program.SetInt("_Shade", 1)
	for i, c := range s.cubes {
		s.program.SetVec3("_Color", cubeColors[i])
		c.draw(s.program, mesh.DrawTriangles)
	}
}

func (s *CameraScene) Panel() {
	cameraPanel(s.ctx, s.ctx.Config.Camera)
	if ui.Section("Cubes") {
		for _, c := range s.cubes {
			transformPanel(c.label, &c.transform, c.home)
		}
	}
}
