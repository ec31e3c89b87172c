package scenes

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/glcourse/internal/config"
	"github.com/Faultbox/glcourse/internal/engine/mesh"
	"github.com/Faultbox/glcourse/internal/engine/shader"
	"github.com/Faultbox/glcourse/internal/engine/ui"
	"github.com/Faultbox/glcourse/internal/scenes/shaders"
	"github.com/Faultbox/glcourse/pkg/procgen"
)

// ShadingMode selects the procgen fragment shader branch.
type ShadingMode int32

const (
	ShadeSolid ShadingMode = iota
	ShadeNormals
	ShadeUVs
	ShadeTexture
	ShadeLit
	ShadeTextureLit
)

var shadingModeNames = [...]string{"Solid Color", "Normals", "UVs", "Texture", "Lit", "Texture Lit"}

func (m ShadingMode) String() string {
	if m < 0 || int(m) >= len(shadingModeNames) {
		return "Unknown"
	}
	return shadingModeNames[m]
}

// LightDirection converts Euler angles in degrees (pitch about X, yaw about Y) to the
// direction light travels. Zero rotation points down -Z.
func LightDirection(rotation mgl32.Vec3) mgl32.Vec3 {
	sx, cx := math32.Sincos(mgl32.DegToRad(rotation.X()))
	sy, cy := math32.Sincos(mgl32.DegToRad(rotation.Y()))
	return mgl32.Vec3{sy * cx, sx, -cy * cx}
}

// ProcgenSettings are the render options of the procedural geometry scene.
type ProcgenSettings struct {
	Mode          ShadingMode
	Background    mgl32.Vec3
	Color         mgl32.Vec3
	Wireframe     bool
	Points        bool
	CullBack      bool
	PointSize     float32
	LightRotation mgl32.Vec3
}

// DefaultProcgen returns the initial render options.
func DefaultProcgen() ProcgenSettings {
	return ProcgenSettings{
		Mode:          ShadeNormals,
		Background:    mgl32.Vec3{0.1, 0.1, 0.1},
		Color:         mgl32.Vec3{1, 1, 1},
		Wireframe:     true,
		CullBack:      true,
		PointSize:     3,
		LightRotation: mgl32.Vec3{-30, 30, 0},
	}
}

// DrawMode returns points or triangles.
func (s ProcgenSettings) DrawMode() mesh.DrawMode {
	if s.Points {
		return mesh.DrawPoints
	}
	return mesh.DrawTriangles
}

// Procgen shows a cube, plane, cylinder and sphere whose parameters are edited live.
type Procgen struct {
	Settings ProcgenSettings

	Plane    procgen.PlaneParams
	Cylinder procgen.CylinderParams
	Sphere   procgen.SphereParams

	ctx     *Context
	program *shader.Program
	preset  config.CameraConfig

	cube, plane, cylinder, sphere *shape
}

// NewProcgen creates the procedural geometry scene.
func NewProcgen() *Procgen {
	return &Procgen{
		Settings: DefaultProcgen(),
		cube:     newShape("Cube", mgl32.Vec3{0, 0, 0}),
		plane:    newShape("Plane", mgl32.Vec3{0.75, -0.25, 0}),
		cylinder: newShape("Cylinder", mgl32.Vec3{-1, 0, 0}),
		sphere:   newShape("Sphere", mgl32.Vec3{-2, 0, 0}),
	}
}

func (p *Procgen) Name() string  { return "procgen" }
func (p *Procgen) Title() string { return "Procedural Geometry" }

func (p *Procgen) Enter(ctx *Context) error {
	p.ctx = ctx
	program, err := ctx.Shaders.Get(shaders.Procgen)
	if err != nil {
		return err
	}
	p.program = program
	if p.Plane == (procgen.PlaneParams{}) {
		p.resetParams()
	}
	p.preset = perspectivePreset(ctx.Config.Camera, mgl32.Vec3{0, 0, 3})
	applyCamera(ctx.Camera, ctx.Controls, p.preset)
	return p.syncMeshes()
}

func (p *Procgen) resetParams() {
	shapes := p.ctx.Config.Shapes
	p.Plane = procgen.PlaneParams{Width: shapes.Plane.Width, Height: shapes.Plane.Height, Subdivisions: shapes.Plane.Subdivisions}
	p.Cylinder = procgen.CylinderParams{Height: shapes.Cylinder.Height, Radius: shapes.Cylinder.Radius, Segments: shapes.Cylinder.Segments}
	p.Sphere = procgen.SphereParams{Radius: shapes.Sphere.Radius, Segments: shapes.Sphere.Segments}
}

func (p *Procgen) syncMeshes() error {
	cache := p.ctx.Meshes
	if err := cubeShape(p.cube, cache, cubeSize); err != nil {
		return err
	}
	plane := p.Plane
	if err := p.plane.sync(plane, func() procgen.MeshData {
		data, _ := cache.Plane(plane)
		return data
	}); err != nil {
		return err
	}
	cylinder := p.Cylinder
	if err := p.cylinder.sync(cylinder, func() procgen.MeshData {
		data, _ := cache.Cylinder(cylinder)
		return data
	}); err != nil {
		return err
	}
	sphere := p.Sphere
	return p.sphere.sync(sphere, func() procgen.MeshData {
		data, _ := cache.Sphere(sphere)
		return data
	})
}

func (p *Procgen) shapes() []*shape {
	return []*shape{p.cube, p.plane, p.cylinder, p.sphere}
}

func (p *Procgen) Exit() error {
	for _, s := range p.shapes() {
		s.destroy()
	}
	return nil
}

func (p *Procgen) Update(Frame) error {
	return p.syncMeshes()
}

func (p *Procgen) Render(f Frame) {
	st := p.Settings
	clearTo(st.Background)
	gl.Enable(gl.DEPTH_TEST)
	if st.CullBack {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
	} else {
		gl.Disable(gl.CULL_FACE)
	}
	if st.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
	gl.PointSize(st.PointSize)

	if st.Mode == ShadeTexture || st.Mode == ShadeTextureLit {
		p.ctx.Texture.Bind(0)
	}

	p.program.Use()
	p.program.SetInt("_Texture", 0)
	p.program.SetInt("_Mode", int32(st.Mode))
	p.program.SetVec3("_Color", st.Color)
	p.program.SetVec3("_LightDir", LightDirection(st.LightRotation))
	p.program.SetMat4("_ViewProjection", f.ViewProjection())
	for _, s := range p.shapes() {
		s.draw(p.program, st.DrawMode())
	}

	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
}

func (p *Procgen) Panel() {
	st := &p.Settings
	if ui.Section("Rendering") {
		imgui.Text("Shading")
		for i, name := range shadingModeNames {
			if imgui.SelectableBoolV(name, int(st.Mode) == i, 0, imgui.NewVec2(0, 0)) {
				st.Mode = ShadingMode(i)
			}
		}
		imgui.Spacing()
		ui.ColorVec3("Background", &st.Background)
		ui.ColorVec3("Shape Color", &st.Color)
		imgui.Checkbox("Wireframe", &st.Wireframe)
		imgui.Checkbox("Draw As Points", &st.Points)
		imgui.Checkbox("Back-face Culling", &st.CullBack)
		ui.SliderFloat("Point Size", &st.PointSize, 1, 10)
		ui.DragVec3("Light Rotation", &st.LightRotation, 1)
		p.ctx.Texture.Panel()
	}

	if ui.Section("Shapes") {
		p.shapePanel(p.cube, nil)
		p.shapePanel(p.plane, func() {
			ui.SliderFloat("Width", &p.Plane.Width, 0.01, 5)
			ui.SliderFloat("Height", &p.Plane.Height, 0.01, 5)
			ui.SliderInt("Subdivisions", &p.Plane.Subdivisions, procgen.MinSubdivisions, 64)
		})
		p.shapePanel(p.cylinder, func() {
			ui.SliderFloat("Height", &p.Cylinder.Height, 0.01, 5)
			ui.SliderFloat("Radius", &p.Cylinder.Radius, 0.01, 5)
			ui.SliderInt("Segments", &p.Cylinder.Segments, procgen.MinSegments, 128)
		})
		p.shapePanel(p.sphere, func() {
			ui.SliderFloat("Radius", &p.Sphere.Radius, 0.01, 5)
			ui.SliderInt("Segments", &p.Sphere.Segments, procgen.MinSegments, 128)
		})
		if imgui.Button("Reset Shapes") {
			p.resetParams()
			for _, s := range p.shapes() {
				s.reset()
				s.enabled = true
			}
		}
	}

	cameraPanel(p.ctx, p.preset)
}

func (p *Procgen) shapePanel(s *shape, params func()) {
	if !imgui.TreeNodeExStrV(s.label, 0) {
		return
	}
	imgui.Checkbox("Enabled", &s.enabled)
	if params != nil {
		params()
	}
	imgui.TreePop()
	transformPanel(s.label+" Transform", &s.transform, s.home)
}
