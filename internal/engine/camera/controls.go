package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/glcourse/pkg/math"
)

// Controller defaults.
const (
	DefaultSensitivity = 0.1
	DefaultMoveSpeed   = 5.0
	MaxPitch           = 89.0
)

// Controls is a fly-style mouse-look controller. While the look trigger is held it turns
// the camera with the mouse and moves it with the movement keys.
type Controls struct {
	PrevMouseX, PrevMouseY float64

	Yaw   float32 // degrees, 0 looks down -Z
	Pitch float32 // degrees, clamped to [-MaxPitch, MaxPitch]

	Sensitivity float32 // degrees per pixel
	MoveSpeed   float32 // world units per second

	// FirstMouse is set whenever capture is released so the next captured
	// frame starts from the current cursor instead of jumping.
	FirstMouse bool

	// Basis from the last update, kept for debug display.
	Forward, Right, Up mgl32.Vec3
}

// NewControls creates a controller with default sensitivity and speed.
func NewControls() *Controls {
	c := &Controls{
		Sensitivity: DefaultSensitivity,
		MoveSpeed:   DefaultMoveSpeed,
		FirstMouse:  true,
	}
	c.updateBasis()
	return c
}

// Update applies one frame of input to cam. Nothing changes unless the look trigger is held.
func (c *Controls) Update(in Input, cam *Camera, dt float32) {
	if !in.LookHeld() {
		in.SetCaptured(false)
		c.FirstMouse = true
		return
	}
	in.SetCaptured(true)

	x, y := in.CursorPos()
	if c.FirstMouse {
		c.PrevMouseX, c.PrevMouseY = x, y
		c.FirstMouse = false
	}
	dx := float32(c.PrevMouseX - x)
	dy := float32(c.PrevMouseY - y)
	c.PrevMouseX, c.PrevMouseY = x, y

	c.Look(dx, dy)

	step := c.MoveSpeed * dt
	move := func(k Key, dir mgl32.Vec3) {
		if in.KeyDown(k) {
			cam.Position = cam.Position.Add(dir.Mul(step))
		}
	}
	move(KeyForward, c.Forward)
	move(KeyBack, c.Forward.Mul(-1))
	move(KeyRight, c.Right)
	move(KeyLeft, c.Right.Mul(-1))
	move(KeyUp, c.Up)
	move(KeyDown, c.Up.Mul(-1))

	cam.Target = cam.Position.Add(c.Forward)
}

// Look turns by a cursor delta in pixels (previous minus current) and refreshes the basis.
func (c *Controls) Look(dx, dy float32) {
	c.Yaw -= dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity
	c.Pitch = mgl32.Clamp(c.Pitch, -MaxPitch, MaxPitch)
	c.updateBasis()
}

// SyncFrom points the controller along cam's current view direction so capturing the
// mouse does not snap a camera that was positioned some other way.
func (c *Controls) SyncFrom(cam *Camera) {
	dir := cam.Target.Sub(cam.Position)
	if dir.Len() < 1e-6 {
		return
	}
	dir = dir.Normalize()
	c.Pitch = mgl32.Clamp(mgl32.RadToDeg(math32.Asin(dir.Y())), -MaxPitch, MaxPitch)
	c.Yaw = mgl32.RadToDeg(math32.Atan2(dir.X(), -dir.Z()))
	c.updateBasis()
}

func (c *Controls) updateBasis() {
	yawSin, yawCos := math32.Sincos(mgl32.DegToRad(c.Yaw))
	pitchSin, pitchCos := math32.Sincos(mgl32.DegToRad(c.Pitch))

	c.Forward = mgl32.Vec3{yawSin * pitchCos, pitchSin, -yawCos * pitchCos}
	c.Right = c.Forward.Cross(math.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Forward).Normalize()
}
