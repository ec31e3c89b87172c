package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/mathgl/mgl32"
)

// Thin wrappers binding mgl32 vectors to ImGui's float array widgets.

// DragVec3 edits v in place and reports whether it changed.
func DragVec3(label string, v *mgl32.Vec3, speed float32) bool {
	return imgui.DragFloat3V(label, (*[3]float32)(v), speed, 0, 0, "%.2f", imgui.SliderFlagsNone)
}

// ColorVec3 edits an RGB colour in place and reports whether it changed.
func ColorVec3(label string, c *mgl32.Vec3) bool {
	return imgui.ColorEdit3(label, (*[3]float32)(c))
}

// SliderVec2 edits v in place within [min, max] on both axes.
func SliderVec2(label string, v *mgl32.Vec2, min, max float32) bool {
	return imgui.SliderFloat2V(label, (*[2]float32)(v), min, max, "%.2f", imgui.SliderFlagsNone)
}

// SliderFloat edits v within [min, max].
func SliderFloat(label string, v *float32, min, max float32) bool {
	return imgui.SliderFloatV(label, v, min, max, "%.2f", imgui.SliderFlagsNone)
}

// SliderInt edits an int within [min, max].
func SliderInt(label string, v *int, min, max int) bool {
	i := int32(*v)
	changed := imgui.SliderIntV(label, &i, int32(min), int32(max), "%d", imgui.SliderFlagsNone)
	*v = int(i)
	return changed
}

// Section draws a collapsing header that starts open.
func Section(label string) bool {
	return imgui.CollapsingHeaderTreeNodeFlagsV(label, imgui.TreeNodeFlagsDefaultOpen)
}
