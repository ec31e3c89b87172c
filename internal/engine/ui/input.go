package ui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/glcourse/internal/engine/camera"
)

var movementKeys = map[camera.Key]imgui.Key{
	camera.KeyForward: imgui.KeyW,
	camera.KeyBack:    imgui.KeyS,
	camera.KeyLeft:    imgui.KeyA,
	camera.KeyRight:   imgui.KeyD,
	camera.KeyDown:    imgui.KeyQ,
	camera.KeyUp:      imgui.KeyE,
}

// Input implements camera.Input on top of ImGui's IO state.
// A right-button drag that starts over a panel never turns the camera.
type Input struct {
	lookStarted bool
	captured    bool
}

var _ camera.Input = (*Input)(nil)

// NewInput creates an ImGui input adapter.
func NewInput() *Input {
	return &Input{}
}

// Sample must be called once per frame before Controls.Update.
func (i *Input) Sample() {
	if imgui.IsMouseClickedBool(imgui.MouseButtonRight) {
		i.lookStarted = !imgui.CurrentIO().WantCaptureMouse()
	}
	if !imgui.IsMouseDown(imgui.MouseButtonRight) {
		i.lookStarted = false
	}
	if i.captured {
		imgui.SetMouseCursor(imgui.MouseCursorNone)
	}
}

// LookHeld reports whether a right-button drag over the scene is in progress.
func (i *Input) LookHeld() bool {
	return i.lookStarted
}

// CursorPos returns the mouse position in window pixels.
func (i *Input) CursorPos() (float64, float64) {
	pos := imgui.MousePos()
	return float64(pos.X), float64(pos.Y)
}

// KeyDown reports whether the key bound to k is held.
func (i *Input) KeyDown(k camera.Key) bool {
	key, ok := movementKeys[k]
	return ok && imgui.IsKeyDown(key)
}

// SetCaptured hides the cursor while looking.
func (i *Input) SetCaptured(captured bool) {
	i.captured = captured
}

// Captured reports whether mouse look is active.
func (i *Input) Captured() bool {
	return i.captured
}
