package camera

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/glcourse/pkg/math"
)

const tol = 1e-4

func assertVec3(t *testing.T, want, got mgl32.Vec3, msgAndArgs ...any) {
	t.Helper()
	for i := 0; i < 3; i++ {
		assert.InDelta(t, want[i], got[i], tol, msgAndArgs...)
	}
}

func assertMat4(t *testing.T, want, got mgl32.Mat4) {
	t.Helper()
	for i := range want {
		assert.InDeltaf(t, want[i], got[i], tol, "element %d", i)
	}
}

func TestDefaults(t *testing.T) {
	c := Default()
	assert.Equal(t, mgl32.Vec3{0, 0, 5}, c.Position)
	assert.Equal(t, mgl32.Vec3{}, c.Target)
	assert.Equal(t, float32(60), c.FOV)
	assert.False(t, c.Orthographic)
	assert.False(t, c.Orbit)
	require.NoError(t, c.Validate())
}

func TestViewMatrixWithoutOrbitIsLookAt(t *testing.T) {
	c := New(mgl32.Vec3{1, 2, 3}, mgl32.Vec3{0, 1, 0})
	want := math.LookAt(c.Position, c.Target, math.WorldUp)
	assertMat4(t, want, c.ViewMatrix(0))
	assertMat4(t, want, c.ViewMatrix(12.5))
}

func TestEyeMapsToOrigin(t *testing.T) {
	c := New(mgl32.Vec3{3, 1, -2}, mgl32.Vec3{})
	assertVec3(t, mgl32.Vec3{}, math.TransformPoint(c.ViewMatrix(0), c.Position))
}

func TestOrbitAtZeroReducesToLookAt(t *testing.T) {
	c := New(mgl32.Vec3{0, 2, 5}, mgl32.Vec3{})
	c.Orbit = true
	assertMat4(t, math.LookAt(c.Position, c.Target, math.WorldUp), c.ViewMatrix(0))
}

func TestOrbitPeriodicity(t *testing.T) {
	c := New(mgl32.Vec3{3, 1, 4}, mgl32.Vec3{0, 0.5, 0})
	c.Orbit = true
	c.OrbitSpeed = 2
	period := 2 * math32.Pi / c.OrbitSpeed

	for _, s := range []float32{0.1, 0.7, 2.3} {
		assertVec3(t, c.Eye(s), c.Eye(s+period), "seconds=%g", s)
	}
}

func TestOrbitKeepsHeightAndDistance(t *testing.T) {
	c := New(mgl32.Vec3{3, 1, 4}, mgl32.Vec3{1, 0, 1})
	c.Orbit = true

	for _, s := range []float32{0, 0.5, 1, 3} {
		eye := c.Eye(s)
		off := eye.Sub(c.Target)
		assert.InDelta(t, 1, off.Y(), tol)
		assert.InDelta(t, math32.Hypot(2, 3), math32.Hypot(off.X(), off.Z()), tol)
	}

	// A quarter turn moves the eye from the target's +Z side to its +X side.
	c.OrbitSpeed = math32.Pi / 2
	eye := c.Eye(1).Sub(c.Target)
	assert.InDelta(t, math32.Hypot(2, 3), eye.X(), tol)
	assert.InDelta(t, 0, eye.Z(), tol)

	// Stored fields are never changed.
	assert.Equal(t, mgl32.Vec3{3, 1, 4}, c.Position)
}

func TestProjectionSelection(t *testing.T) {
	c := Default()
	assertMat4(t, math.Perspective(c.FOV, c.AspectRatio, c.NearPlane, c.FarPlane), c.ProjectionMatrix())

	c.Orthographic = true
	assertMat4(t, math.Orthographic(c.OrthoSize, c.AspectRatio, c.NearPlane, c.FarPlane), c.ProjectionMatrix())
}

func TestSetViewport(t *testing.T) {
	c := Default()
	c.SetViewport(800, 400)
	assert.Equal(t, float32(2), c.AspectRatio)

	c.SetViewport(0, 400)
	c.SetViewport(800, -1)
	assert.Equal(t, float32(2), c.AspectRatio)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(c *Camera)
		want   error
	}{
		{"default", func(c *Camera) {}, nil},
		{"zero near", func(c *Camera) { c.NearPlane = 0 }, ErrInvalidFrustum},
		{"far before near", func(c *Camera) { c.FarPlane = 0.05 }, ErrInvalidFrustum},
		{"zero aspect", func(c *Camera) { c.AspectRatio = 0 }, ErrInvalidFrustum},
		{"fov 180", func(c *Camera) { c.FOV = 180 }, ErrInvalidFrustum},
		{"fov ignored when ortho", func(c *Camera) { c.FOV = 0; c.Orthographic = true }, nil},
		{"zero ortho size", func(c *Camera) { c.Orthographic = true; c.OrthoSize = 0 }, ErrInvalidFrustum},
		{"eye on target", func(c *Camera) { c.Target = c.Position }, ErrDegenerateLookDirection},
		{"looking straight down", func(c *Camera) { c.Position = mgl32.Vec3{0, 5, 0} }, ErrDegenerateLookDirection},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.modify(c)
			err := c.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}
