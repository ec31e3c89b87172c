package scenes

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/glcourse/internal/config"
	"github.com/Faultbox/glcourse/internal/engine/camera"
	"github.com/Faultbox/glcourse/internal/engine/ui"
	"github.com/Faultbox/glcourse/pkg/math"
)

// applyCamera loads cfg into cam, keeping the current aspect ratio, and re-aims the controls.
func applyCamera(cam *camera.Camera, controls *camera.Controls, cfg config.CameraConfig) {
	aspect := cam.AspectRatio
	*cam = camera.Camera{
		Position:     cfg.Position,
		Target:       cfg.Target,
		FOV:          cfg.FOV,
		AspectRatio:  aspect,
		NearPlane:    cfg.Near,
		FarPlane:     cfg.Far,
		Orthographic: cfg.Orthographic,
		OrthoSize:    cfg.OrthoSize,
		Orbit:        cfg.Orbit,
		OrbitSpeed:   cfg.OrbitSpeed,
	}
	if controls != nil {
		controls.SyncFrom(cam)
	}
}

// perspectivePreset returns base moved to position with a perspective lens.
func perspectivePreset(base config.CameraConfig, position mgl32.Vec3) config.CameraConfig {
	base.Position = position
	base.Target = mgl32.Vec3{}
	base.Orthographic = false
	base.Orbit = false
	return base
}

// transformPanel edits t under a collapsible header; Reset returns it to home.
func transformPanel(label string, t *math.Transform, home mgl32.Vec3) {
	if !imgui.TreeNodeExStrV(label, imgui.TreeNodeFlagsDefaultOpen) {
		return
	}
	ui.DragVec3("Position", &t.Position, 0.05)
	ui.DragVec3("Rotation", &t.Rotation, 1)
	ui.DragVec3("Scale", &t.Scale, 0.05)
	if imgui.Button("Reset") {
		t.Reset(home)
	}
	imgui.TreePop()
}

// cameraPanel edits the shared camera. Reset restores preset.
func cameraPanel(ctx *Context, preset config.CameraConfig) {
	if !ui.Section("Camera") {
		return
	}
	cam := ctx.Camera

	imgui.Checkbox("Orbit", &cam.Orbit)
	ui.SliderFloat("Orbit Speed", &cam.OrbitSpeed, -5, 5)
	if ui.DragVec3("Position", &cam.Position, 0.05) || ui.DragVec3("Target", &cam.Target, 0.05) {
		ctx.Controls.SyncFrom(cam)
	}
	ui.SliderFloat("FOV", &cam.FOV, 1, 179)
	imgui.Checkbox("Orthographic", &cam.Orthographic)
	imgui.BeginDisabledV(!cam.Orthographic)
	ui.SliderFloat("Ortho Height", &cam.OrthoSize, 0.1, 50)
	imgui.EndDisabled()
	ui.SliderFloat("Near", &cam.NearPlane, 0.01, 10)
	ui.SliderFloat("Far", &cam.FarPlane, 1, 500)
	if imgui.Button("Reset Camera") {
		applyCamera(cam, ctx.Controls, preset)
	}

	if err := cam.Validate(); err != nil {
		imgui.TextColored(imgui.NewVec4(1, 0.4, 0.4, 1), err.Error())
	}

	imgui.Spacing()
	c := ctx.Controls
	imgui.Text(fmt.Sprintf("Yaw %.1f  Pitch %.1f", c.Yaw, c.Pitch))
	imgui.Text(fmt.Sprintf("Right (%.2f, %.2f, %.2f)", c.Right.X(), c.Right.Y(), c.Right.Z()))
	imgui.Text(fmt.Sprintf("Up    (%.2f, %.2f, %.2f)", c.Up.X(), c.Up.Y(), c.Up.Z()))
}
