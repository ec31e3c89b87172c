package camera

// Key identifies a movement key understood by Controls.
type Key int

// Movement keys, bound to WASD plus Q/E by the input backends.
const (
	KeyForward Key = iota
	KeyBack
	KeyLeft
	KeyRight
	KeyDown
	KeyUp
)

// Input is the per-frame input snapshot consumed by Controls.
type Input interface {
	// LookHeld reports whether the mouse-look trigger (right button) is held.
	LookHeld() bool
	// CursorPos returns the cursor position in window pixels.
	CursorPos() (x, y float64)
	KeyDown(k Key) bool
	// SetCaptured hides and locks the cursor while looking.
	SetCaptured(captured bool)
}
