// Package scenes implements the course demo scenes and switches between them.
package scenes

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/glcourse/internal/config"
	"github.com/Faultbox/glcourse/internal/engine/camera"
	"github.com/Faultbox/glcourse/internal/engine/shader"
	"github.com/Faultbox/glcourse/pkg/procgen"
)

// Scene is one demo. Enter and Exit bracket the scene's GL resources; Update,
// Render and Panel are called every frame while the scene is current.
type Scene interface {
	// Name is the identifier used in config and menus.
	Name() string

	// Title is the human readable label.
	Title() string

	// Enter is called when the scene becomes current. The GL context is current.
	Enter(ctx *Context) error

	// Exit is called when leaving the scene.
	Exit() error

	// Update advances scene state.
	Update(f Frame) error

	// Render draws into the bound framebuffer.
	Render(f Frame)

	// Panel draws the scene's ImGui controls.
	Panel()
}

// Context carries the resources shared by all scenes.
type Context struct {
	Config   *config.Config
	Shaders  *shader.Library
	Meshes   *procgen.Cache
	Camera   *camera.Camera
	Controls *camera.Controls
	Texture  *TextureSlot
}

// Frame holds per-frame values computed by the app before Update and Render.
type Frame struct {
	Time  float32 // seconds since start
	Delta float32

	Width, Height int

	View       mgl32.Mat4
	Projection mgl32.Mat4
	Eye        mgl32.Vec3
}

// ViewProjection returns Projection * View.
func (f Frame) ViewProjection() mgl32.Mat4 {
	return f.Projection.Mul4(f.View)
}

// Resolution returns the framebuffer size as a vector.
func (f Frame) Resolution() mgl32.Vec2 {
	return mgl32.Vec2{float32(f.Width), float32(f.Height)}
}

// All returns one instance of every scene in course order.
func All() []Scene {
	return []Scene{
		NewSunset(),
		NewTransformations(),
		NewCameraScene(),
		NewProcgen(),
		NewLighting(),
	}
}

// Manager owns the scene list and performs transitions between frames.
type Manager struct {
	ctx     *Context
	scenes  []Scene
	current int
	next    int
}

// NewManager creates a manager over scenes. No scene is entered until the first Update.
func NewManager(ctx *Context, scenes []Scene) *Manager {
	return &Manager{ctx: ctx, scenes: scenes, current: -1, next: -1}
}

// Scenes returns the managed scenes in order.
func (m *Manager) Scenes() []Scene {
	return m.scenes
}

// Current returns the current scene, or nil before the first transition.
func (m *Manager) Current() Scene {
	if m.current < 0 {
		return nil
	}
	return m.scenes[m.current]
}

// Change schedules a switch to the named scene.
func (m *Manager) Change(name string) error {
	for i, s := range m.scenes {
		if s.Name() == name {
			m.next = i
			return nil
		}
	}
	return fmt.Errorf("unknown scene %q", name)
}

// Next schedules a switch to the scene after the current one, wrapping around.
func (m *Manager) Next() {
	if len(m.scenes) == 0 {
		return
	}
	m.next = (m.current + 1) % len(m.scenes)
}

// Update processes a pending transition and updates the current scene.
func (m *Manager) Update(f Frame) error {
	if m.next >= 0 {
		next := m.next
		m.next = -1
		if next != m.current {
			if cur := m.Current(); cur != nil {
				if err := cur.Exit(); err != nil {
					return fmt.Errorf("exit %s: %w", cur.Name(), err)
				}
			}
			m.current = next
			if err := m.scenes[next].Enter(m.ctx); err != nil {
				m.current = -1
				return fmt.Errorf("enter %s: %w", m.scenes[next].Name(), err)
			}
		}
	}

	if cur := m.Current(); cur != nil {
		return cur.Update(f)
	}
	return nil
}

// Render draws the current scene.
func (m *Manager) Render(f Frame) {
	if cur := m.Current(); cur != nil {
		cur.Render(f)
	}
}

// Panel draws the current scene's controls.
func (m *Manager) Panel() {
	if cur := m.Current(); cur != nil {
		cur.Panel()
	}
}

// Close exits the current scene.
func (m *Manager) Close() error {
	cur := m.Current()
	m.current = -1
	if cur == nil {
		return nil
	}
	return cur.Exit()
}
