// Package input turns SDL2 events and device state into per-frame input for the viewer.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/glcourse/internal/engine/camera"
)

// EventType classifies the discrete events the viewer reacts to.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
}

// movementKeys binds camera movement to scancodes so the layout matches WASD on any keyboard.
var movementKeys = map[camera.Key]sdl.Scancode{
	camera.KeyForward: sdl.SCANCODE_W,
	camera.KeyBack:    sdl.SCANCODE_S,
	camera.KeyLeft:    sdl.SCANCODE_A,
	camera.KeyRight:   sdl.SCANCODE_D,
	camera.KeyDown:    sdl.SCANCODE_Q,
	camera.KeyUp:      sdl.SCANCODE_E,
}

// Input collects SDL events once per frame and implements camera.Input.
//
// While captured, SDL relative mouse mode pins the OS cursor, so the cursor position
// reported to the camera is a virtual one accumulated from relative motion.
type Input struct {
	events   []Event
	keys     []uint8
	buttons  uint32
	cursorX  float64
	cursorY  float64
	captured bool
}

var _ camera.Input = (*Input)(nil)

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
	}
}

// Update polls SDL events and samples keyboard and mouse state.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				i.events = append(i.events, Event{
					Type: EventKeyDown,
					Key:  e.Keysym.Scancode,
				})
			}

		case *sdl.MouseMotionEvent:
			if i.captured {
				i.cursorX += float64(e.XRel)
				i.cursorY += float64(e.YRel)
			} else {
				i.cursorX, i.cursorY = float64(e.X), float64(e.Y)
			}
		}
	}

	i.keys = sdl.GetKeyboardState()
	_, _, i.buttons = sdl.GetMouseState()
	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// LookHeld reports whether the right mouse button is down.
func (i *Input) LookHeld() bool {
	return i.buttons&sdl.ButtonRMask() != 0
}

// CursorPos returns the (virtual while captured) cursor position.
func (i *Input) CursorPos() (float64, float64) {
	return i.cursorX, i.cursorY
}

// KeyDown reports whether the key bound to k is held.
func (i *Input) KeyDown(k camera.Key) bool {
	sc, ok := movementKeys[k]
	if !ok || int(sc) >= len(i.keys) {
		return false
	}
	return i.keys[sc] != 0
}

// SetCaptured toggles SDL relative mouse mode.
func (i *Input) SetCaptured(captured bool) {
	if captured == i.captured {
		return
	}
	i.captured = captured
	sdl.SetRelativeMouseMode(captured)
}
