package scenes

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/glcourse/internal/engine/mesh"
	"github.com/Faultbox/glcourse/internal/engine/shader"
	"github.com/Faultbox/glcourse/internal/scenes/shaders"
	"github.com/Faultbox/glcourse/pkg/math"
)

const cubeSize = 0.5

var cubeColors = [4]mgl32.Vec3{
	{0.9, 0.3, 0.3},
	{0.3, 0.9, 0.3},
	{0.3, 0.4, 0.9},
	{0.9, 0.8, 0.3},
}

// Transformations shows four cubes in normalized device space, each with an editable
// model transform.
type Transformations struct {
	ctx     *Context
	program *shader.Program
	cubes   [4]*shape
}

// NewTransformations creates the transformations scene.
func NewTransformations() *Transformations {
	t := &Transformations{}
	for i, p := range gridPositions() {
		t.cubes[i] = newShape(fmt.Sprintf("Cube %d", i+1), p)
	}
	return t
}

func (t *Transformations) Name() string  { return "transformations" }
func (t *Transformations) Title() string { return "Transformations" }

func (t *Transformations) Enter(ctx *Context) error {
	t.ctx = ctx
	program, err := ctx.Shaders.Get(shaders.Unlit)
	if err != nil {
		return err
	}
	t.program = program
	for _, c := range t.cubes {
		if err := cubeShape(c, ctx.Meshes, cubeSize); err != nil {
			return err
		}
	}
	return nil
}

func (t *Transformations) Exit() error {
	for _, c := range t.cubes {
		c.destroy()
	}
	return nil
}

func (t *Transformations) Update(Frame) error { return nil }

func (t *Transformations) Render(f Frame) {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	// No camera: the view is identity and the projection only corrects for aspect.
	aspect := float32(1)
	if f.Height > 0 {
		aspect = float32(f.Width) / float32(f.Height)
	}
	t.program.Use()
	t.program.SetMat4("_View", math.Identity())
	t.program.SetMat4("_Projection", math.Orthographic(2, aspect, -1, 1))
	t.program.SetInt("_Shade", 1)
	for i, c := range t.cubes {
		t.program.SetVec3("_Color", cubeColors[i])
		c.draw(t.program, mesh.DrawTriangles)
	}
}

func (t *Transformations) Panel() {
	for _, c := range t.cubes {
		transformPanel(c.label, &c.transform, c.home)
	}
	imgui.Separator()
	if imgui.Button("Reset All") {
		for _, c := range t.cubes {
			c.reset()
		}
	}
}
