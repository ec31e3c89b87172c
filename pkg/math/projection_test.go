package math

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestLookAtMapsEyeToOrigin(t *testing.T) {
	eyes := []mgl32.Vec3{
		{0, 0, 5},
		{3, 2, -4},
		{-10, 0.5, 1},
	}

	for _, eye := range eyes {
		view := LookAt(eye, mgl32.Vec3{}, WorldUp)
		assertVec3(t, mgl32.Vec3{}, TransformPoint(view, eye))
	}
}

func TestLookAtTargetOnNegativeZ(t *testing.T) {
	eye := mgl32.Vec3{4, 1, 7}
	target := mgl32.Vec3{1, 0, -2}
	view := LookAt(eye, target, WorldUp)

	got := TransformPoint(view, target)
	dist := eye.Sub(target).Len()
	assertVec3(t, mgl32.Vec3{0, 0, -dist}, got)
}

func TestLookAtMatchesMathgl(t *testing.T) {
	eye := mgl32.Vec3{2, 3, 6}
	target := mgl32.Vec3{0, 1, 0}
	assertMat4(t, mgl32.LookAtV(eye, target, WorldUp), LookAt(eye, target, WorldUp))
}

func TestLookAtStraightUpIsDegenerate(t *testing.T) {
	view := LookAt(mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 5, 0}, WorldUp)
	p := TransformPoint(view, mgl32.Vec3{1, 0, 0})
	assert.True(t, math32.IsNaN(p.X()) || math32.IsNaN(p.Y()) || math32.IsNaN(p.Z()), "expected NaN, got %v", p)
}

func TestPerspectiveFOV90(t *testing.T) {
	m := Perspective(90, 1, 0.1, 100)

	assert.InDelta(t, 1, m.At(0, 0), tol)
	assert.InDelta(t, 1, m.At(1, 1), tol)
	assert.Equal(t, float32(-1), m.At(3, 2))
	assert.Equal(t, float32(0), m.At(3, 3))
}

func TestPerspectiveAspect(t *testing.T) {
	m := Perspective(90, 2, 0.1, 100)
	assert.InDelta(t, 0.5, m.At(0, 0), tol)
	assert.InDelta(t, 1, m.At(1, 1), tol)
}

func TestPerspectiveMatchesMathgl(t *testing.T) {
	assertMat4(t, mgl32.Perspective(mgl32.DegToRad(60), 1.5, 0.1, 100), Perspective(60, 1.5, 0.1, 100))
}

func TestPerspectiveDepthRange(t *testing.T) {
	near, far := float32(0.5), float32(50)
	m := Perspective(60, 1, near, far)

	ndc := func(z float32) float32 {
		clip := m.Mul4x1(mgl32.Vec4{0, 0, z, 1})
		return clip.Z() / clip.W()
	}
	assert.InDelta(t, -1, ndc(-near), tol)
	assert.InDelta(t, 1, ndc(-far), 1e-4)
}

func TestOrthographicBox(t *testing.T) {
	near, far := float32(0.1), float32(100)
	m := Orthographic(6, 1.5, near, far)

	// Width is aspect * height = 9, so x=4.5 is the right edge.
	assertVec3(t, mgl32.Vec3{1, 1, -1}, TransformPoint(m, mgl32.Vec3{4.5, 3, -near}))
	assertVec3(t, mgl32.Vec3{-1, -1, 1}, TransformPoint(m, mgl32.Vec3{-4.5, -3, -far}))
}

func TestOrthographicMatchesMathgl(t *testing.T) {
	assertMat4(t, mgl32.Ortho(-4, 4, -2, 2, 0.1, 100), Orthographic(4, 2, 0.1, 100))
}
