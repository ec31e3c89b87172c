// Package camera provides the view/projection camera and its mouse-look controller.
package camera

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/glcourse/pkg/math"
)

// Validation errors returned by Camera.Validate.
var (
	ErrInvalidFrustum          = errors.New("invalid frustum")
	ErrDegenerateLookDirection = errors.New("degenerate look direction")
)

// Camera holds everything needed to build view and projection matrices.
// All fields are plain values that UI code may edit directly.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3

	FOV         float32 // vertical field of view, degrees
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32

	Orthographic bool
	OrthoSize    float32 // full visible height in world units

	Orbit      bool
	OrbitSpeed float32 // radians per second
}

// Default camera settings.
const (
	DefaultFOV        = 60.0
	DefaultAspect     = 1080.0 / 720.0
	DefaultNear       = 0.1
	DefaultFar        = 100.0
	DefaultOrthoSize  = 6.0
	DefaultOrbitSpeed = 1.0
)

// New creates a perspective camera at position looking at target with default lens settings.
func New(position, target mgl32.Vec3) *Camera {
	return &Camera{
		Position:    position,
		Target:      target,
		FOV:         DefaultFOV,
		AspectRatio: DefaultAspect,
		NearPlane:   DefaultNear,
		FarPlane:    DefaultFar,
		OrthoSize:   DefaultOrthoSize,
		OrbitSpeed:  DefaultOrbitSpeed,
	}
}

// Default returns the demo camera: five units back on +Z, looking at the origin.
func Default() *Camera {
	return New(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{})
}

// SetViewport updates the aspect ratio for a framebuffer of the given size.
// Non-positive sizes (minimised windows) are ignored.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.AspectRatio = float32(width) / float32(height)
}

// Eye returns the effective eye position at the given time.
//
// With orbit disabled this is Position. With orbit enabled the eye circles the target
// in the horizontal plane, keeping Position's height and horizontal distance, at
// OrbitSpeed radians per second. At seconds == 0 the eye sits on the target's +Z side.
func (c *Camera) Eye(seconds float32) mgl32.Vec3 {
	if !c.Orbit {
		return c.Position
	}
	offset := c.Position.Sub(c.Target)
	dist := math32.Hypot(offset.X(), offset.Z())
	sin, cos := math32.Sincos(seconds * c.OrbitSpeed)
	return c.Target.Add(mgl32.Vec3{dist * sin, offset.Y(), dist * cos})
}

// ViewMatrix returns the world-to-view matrix at the given time.
func (c *Camera) ViewMatrix(seconds float32) mgl32.Mat4 {
	return math.LookAt(c.Eye(seconds), c.Target, math.WorldUp)
}

// ProjectionMatrix returns the orthographic or perspective projection for the current lens.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	if c.Orthographic {
		return math.Orthographic(c.OrthoSize, c.AspectRatio, c.NearPlane, c.FarPlane)
	}
	return math.Perspective(c.FOV, c.AspectRatio, c.NearPlane, c.FarPlane)
}

// ViewProjection returns ProjectionMatrix * ViewMatrix(seconds).
func (c *Camera) ViewProjection(seconds float32) mgl32.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix(seconds))
}

// Forward returns the unit direction from the eye towards the target.
func (c *Camera) Forward(seconds float32) mgl32.Vec3 {
	return c.Target.Sub(c.Eye(seconds)).Normalize()
}

// Validate reports settings that would produce NaN or infinite matrices.
func (c *Camera) Validate() error {
	switch {
	case c.AspectRatio <= 0:
		return fmt.Errorf("%w: aspect ratio %g", ErrInvalidFrustum, c.AspectRatio)
	case c.NearPlane <= 0:
		return fmt.Errorf("%w: near plane %g", ErrInvalidFrustum, c.NearPlane)
	case c.FarPlane <= c.NearPlane:
		return fmt.Errorf("%w: far plane %g not beyond near plane %g", ErrInvalidFrustum, c.FarPlane, c.NearPlane)
	case c.Orthographic && c.OrthoSize <= 0:
		return fmt.Errorf("%w: ortho size %g", ErrInvalidFrustum, c.OrthoSize)
	case !c.Orthographic && (c.FOV <= 0 || c.FOV >= 180):
		return fmt.Errorf("%w: field of view %g", ErrInvalidFrustum, c.FOV)
	}

	dir := c.Position.Sub(c.Target)
	if dir.Len() < 1e-6 {
		return fmt.Errorf("%w: eye and target coincide", ErrDegenerateLookDirection)
	}
	if math.WorldUp.Cross(dir.Normalize()).Len() < 1e-6 {
		return fmt.Errorf("%w: looking along the up axis", ErrDegenerateLookDirection)
	}
	return nil
}
