package scenes

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/glcourse/internal/engine/mesh"
	"github.com/Faultbox/glcourse/internal/engine/shader"
	"github.com/Faultbox/glcourse/internal/engine/ui"
	"github.com/Faultbox/glcourse/internal/scenes/shaders"
	"github.com/Faultbox/glcourse/pkg/procgen"
)

// SunsetSettings are the uniforms of the animated sunset shader.
type SunsetSettings struct {
	Speed      float32
	Brightness float32

	SkyTop    mgl32.Vec3
	SkyBottom mgl32.Vec3

	SunRadius   float32
	SunGradient float32
	SunPosition mgl32.Vec2
	SunColor    mgl32.Vec3

	HillHeight    float32
	HillPosition  float32
	HillFrequency float32
	HillColor     mgl32.Vec3
}

// DefaultSunset returns the initial sunset look.
func DefaultSunset() SunsetSettings {
	return SunsetSettings{
		Speed:         1,
		Brightness:    1,
		SkyTop:        mgl32.Vec3{1, 1, 0},
		SkyBottom:     mgl32.Vec3{0.5, 1, 1},
		SunRadius:     0.1,
		SunGradient:   0.05,
		SunPosition:   mgl32.Vec2{0.5, 0.75},
		SunColor:      mgl32.Vec3{1, 1, 0},
		HillHeight:    0.3,
		HillFrequency: 6,
		HillColor:     mgl32.Vec3{0.1, 0.1, 0.1},
	}
}

// Apply uploads the settings.
func (s SunsetSettings) Apply(u shader.Uniforms) {
	u.SetFloat("_Speed", s.Speed)
	u.SetFloat("_Brightness", s.Brightness)
	u.SetVec3("_SkyTopColor", s.SkyTop)
	u.SetVec3("_SkyBottomColor", s.SkyBottom)
	u.SetFloat("_SunRadius", s.SunRadius)
	u.SetFloat("_SunGradientFactor", s.SunGradient)
	u.SetVec2("_SunPosition", s.SunPosition)
	u.SetVec3("_SunColor", s.SunColor)
	u.SetFloat("_HillHeight", s.HillHeight)
	u.SetFloat("_HillPosition", s.HillPosition)
	u.SetFloat("_HillFrequency", s.HillFrequency)
	u.SetVec3("_HillColor", s.HillColor)
}

// Sunset draws a full-screen animated sky, sun and hills.
type Sunset struct {
	Settings SunsetSettings

	ctx     *Context
	program *shader.Program
	quad    *shape
}

// NewSunset creates the sunset scene.
func NewSunset() *Sunset {
	return &Sunset{Settings: DefaultSunset()}
}

func (s *Sunset) Name() string  { return "sunset" }
func (s *Sunset) Title() string { return "Sunset" }

func (s *Sunset) Enter(ctx *Context) error {
	s.ctx = ctx
	program, err := ctx.Shaders.Get(shaders.Sunset)
	if err != nil {
		return err
	}
	s.program = program

	// A 2x2 plane covers clip space; its UVs run 0..2 so the shader halves them.
	s.quad = newShape("Quad", mgl32.Vec3{})
	p := procgen.PlaneParams{Width: 2, Height: 2, Subdivisions: 1}
	return s.quad.sync(p, func() procgen.MeshData {
		data, _ := ctx.Meshes.Plane(p)
		return data
	})
}

func (s *Sunset) Exit() error {
	if s.quad != nil {
		s.quad.destroy()
	}
	return nil
}

func (s *Sunset) Update(Frame) error { return nil }

func (s *Sunset) Render(f Frame) {
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	s.program.Use()
	s.program.SetFloat("_Time", f.Time)
	s.program.SetVec2("_Resolution", f.Resolution())
	s.Settings.Apply(s.program)
	s.quad.draw(s.program, mesh.DrawTriangles)
}

func (s *Sunset) Panel() {
	st := &s.Settings
	if ui.Section("Sky") {
		ui.ColorVec3("Top", &st.SkyTop)
		ui.ColorVec3("Bottom", &st.SkyBottom)
		ui.SliderFloat("Speed", &st.Speed, 0, 5)
		ui.SliderFloat("Brightness", &st.Brightness, 0, 2)
	}
	if ui.Section("Sun") {
		ui.SliderFloat("Radius", &st.SunRadius, 0.01, 0.5)
		ui.SliderFloat("Gradient", &st.SunGradient, 0, 0.2)
		ui.SliderVec2("Position", &st.SunPosition, 0, 1)
		ui.ColorVec3("Sun Color", &st.SunColor)
	}
	if ui.Section("Hills") {
		ui.SliderFloat("Height", &st.HillHeight, 0, 1)
		ui.SliderFloat("Offset", &st.HillPosition, -1, 1)
		ui.SliderFloat("Frequency", &st.HillFrequency, 0, 30)
		ui.ColorVec3("Hill Color", &st.HillColor)
	}
	if imgui.Button("Reset") {
		s.Settings = DefaultSunset()
	}
}
