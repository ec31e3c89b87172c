package scenes

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/glcourse/internal/config"
	"github.com/Faultbox/glcourse/internal/engine/mesh"
	"github.com/Faultbox/glcourse/internal/engine/shader"
	"github.com/Faultbox/glcourse/internal/engine/ui"
	"github.com/Faultbox/glcourse/internal/lighting"
	"github.com/Faultbox/glcourse/internal/scenes/shaders"
	"github.com/Faultbox/glcourse/pkg/procgen"
)

var (
	litSphere   = procgen.SphereParams{Radius: 0.5, Segments: 32}
	litCylinder = procgen.CylinderParams{Height: 1, Radius: 0.4, Segments: 32}
	litGround   = procgen.PlaneParams{Width: 6, Height: 6, Subdivisions: 8}
	gizmoSphere = procgen.SphereParams{Radius: 0.08, Segments: 12}
)

// Lighting shades a few shapes with Blinn-Phong point lights and marks each light
// with an unlit sphere.
type Lighting struct {
	Rig        *lighting.Rig
	UseTexture bool
	Color      mgl32.Vec3

	ctx    *Context
	lit    *shader.Program
	unlit  *shader.Program
	preset config.CameraConfig

	sphere, cylinder, cube, ground *shape
	gizmo                          *shape
}

// NewLighting creates the lighting scene.
func NewLighting() *Lighting {
	l := &Lighting{
		Color:    mgl32.Vec3{1, 1, 1},
		sphere:   newShape("Sphere", mgl32.Vec3{-1.5, 0.5, 0}),
		cylinder: newShape("Cylinder", mgl32.Vec3{0, 0.5, 0}),
		cube:     newShape("Cube", mgl32.Vec3{1.5, 0.4, 0}),
		ground:   newShape("Ground", mgl32.Vec3{}),
		gizmo:    newShape("Light", mgl32.Vec3{}),
	}
	l.ground.transform.Rotation = mgl32.Vec3{-90, 0, 0}
	return l
}

func (l *Lighting) Name() string  { return "lighting" }
func (l *Lighting) Title() string { return "Lighting" }

func (l *Lighting) Enter(ctx *Context) error {
	l.ctx = ctx
	var err error
	if l.lit, err = ctx.Shaders.Get(shaders.Lit); err != nil {
		return err
	}
	if l.unlit, err = ctx.Shaders.Get(shaders.Unlit); err != nil {
		return err
	}
	if l.Rig == nil {
		l.Rig = lighting.NewRig(ctx.Config.Lighting)
	}
	l.preset = perspectivePreset(ctx.Config.Camera, mgl32.Vec3{0, 2, 6})
	applyCamera(ctx.Camera, ctx.Controls, l.preset)

	cache := ctx.Meshes
	if err := l.sphere.sync(litSphere, func() procgen.MeshData { d, _ := cache.Sphere(litSphere); return d }); err != nil {
		return err
	}
	if err := l.cylinder.sync(litCylinder, func() procgen.MeshData { d, _ := cache.Cylinder(litCylinder); return d }); err != nil {
		return err
	}
	if err := cubeShape(l.cube, cache, 0.8); err != nil {
		return err
	}
	if err := l.ground.sync(litGround, func() procgen.MeshData { d, _ := cache.Plane(litGround); return d }); err != nil {
		return err
	}
	return l.gizmo.sync(gizmoSphere, func() procgen.MeshData { d, _ := cache.Sphere(gizmoSphere); return d })
}

func (l *Lighting) objects() []*shape {
	return []*shape{l.sphere, l.cylinder, l.cube, l.ground}
}

func (l *Lighting) Exit() error {
	for _, s := range l.objects() {
		s.destroy()
	}
	l.gizmo.destroy()
	return nil
}

func (l *Lighting) Update(Frame) error { return nil }

func (l *Lighting) Render(f Frame) {
	clearTo(mgl32.Vec3{0.05, 0.05, 0.08})
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	if l.UseTexture {
		l.ctx.Texture.Bind(0)
	}
	l.lit.Use()
	l.Rig.Apply(l.lit, f.Eye)
	l.lit.SetInt("_Texture", 0)
	l.lit.SetInt("_UseTexture", boolInt(l.UseTexture))
	l.lit.SetVec3("_Color", l.Color)
	l.lit.SetMat4("_ViewProjection", f.ViewProjection())
	for _, s := range l.objects() {
		s.draw(l.lit, mesh.DrawTriangles)
	}

	l.unlit.Use()
	l.unlit.SetMat4("_View", f.View)
	l.unlit.SetMat4("_Projection", f.Projection)
	l.unlit.SetInt("_Shade", 0)
	for i, light := range l.Rig.Lights {
		if !l.Rig.Active(i) {
			continue
		}
		l.gizmo.transform.Position = light.Position
		l.unlit.SetVec3("_Color", light.Color)
		l.gizmo.draw(l.unlit, mesh.DrawTriangles)
	}
}

func (l *Lighting) Panel() {
	rig := l.Rig
	if ui.Section("Material") {
		ui.ColorVec3("Ambient Color", &rig.AmbientColor)
		ui.SliderFloat("Ambient K", &rig.Material.AmbientK, 0, 1)
		ui.SliderFloat("Diffuse K", &rig.Material.DiffuseK, 0, 1)
		ui.SliderFloat("Specular K", &rig.Material.SpecularK, 0, 1)
		ui.SliderFloat("Shininess", &rig.Material.Shininess, 2, 1024)
		ui.ColorVec3("Surface Color", &l.Color)
		imgui.Checkbox("Use Texture", &l.UseTexture)
		imgui.BeginDisabledV(!l.UseTexture)
		l.ctx.Texture.Panel()
		imgui.EndDisabled()
		if imgui.Button("Reset Material") {
			cfg := l.ctx.Config.Lighting
			rig.AmbientColor = cfg.AmbientColor
			rig.Material = lighting.Material{
				AmbientK:  cfg.AmbientK,
				DiffuseK:  cfg.DiffuseK,
				SpecularK: cfg.SpecularK,
				Shininess: cfg.Shininess,
			}
		}
	}

	if ui.Section("Lights") {
		count := rig.Count
		if ui.SliderInt("Light Count", &count, 0, lighting.MaxLights) {
			rig.SetCount(count)
		}
		for i := 0; i < rig.Count; i++ {
			light := &rig.Lights[i]
			label := fmt.Sprintf("Light %d", i+1)
			if !imgui.TreeNodeExStrV(label, 0) {
				continue
			}
			imgui.Checkbox("Enabled", &light.Enabled)
			ui.DragVec3("Position", &light.Position, 0.05)
			ui.ColorVec3("Color", &light.Color)
			if imgui.Button("Reset") {
				rig.ResetLight(i)
			}
			imgui.TreePop()
		}
		if imgui.Button("Reset Lights") {
			rig.ResetLights()
		}
	}

	if ui.Section("Objects") {
		for _, s := range l.objects() {
			imgui.Checkbox(s.label, &s.enabled)
		}
	}

	cameraPanel(l.ctx, l.preset)
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
