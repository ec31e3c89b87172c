package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNewTransform(t *testing.T) {
	tr := NewTransform()
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, tr.Scale)
	assertMat4(t, Identity(), tr.ModelMatrix())
}

func TestModelMatrixUnrotatedEqualsTranslate(t *testing.T) {
	tr := NewTransform()
	tr.Position = mgl32.Vec3{-0.5, 2, 7}
	assert.Equal(t, Translate(tr.Position), tr.ModelMatrix())
}

func TestModelMatrixScalesBeforeTranslating(t *testing.T) {
	tr := NewTransform()
	tr.Position = mgl32.Vec3{1, 2, 3}
	tr.Scale = mgl32.Vec3{2, 1, 1}

	assertVec3(t, mgl32.Vec3{3, 2, 3}, TransformPoint(tr.ModelMatrix(), mgl32.Vec3{1, 0, 0}))
}

func TestModelMatrixRotationOrder(t *testing.T) {
	tr := NewTransform()
	tr.Rotation = mgl32.Vec3{90, 90, 0}

	// Pitch is applied before yaw: +y pitches to +z, then yaws to +x.
	assertVec3(t, mgl32.Vec3{1, 0, 0}, TransformPoint(tr.ModelMatrix(), mgl32.Vec3{0, 1, 0}))

	tr.Rotation = mgl32.Vec3{90, 0, 90}
	// Roll is applied before pitch: +x rolls to +y, then pitches to +z.
	assertVec3(t, mgl32.Vec3{0, 0, 1}, TransformPoint(tr.ModelMatrix(), mgl32.Vec3{1, 0, 0}))
}

func TestModelMatrixComposition(t *testing.T) {
	tr := Transform{
		Position: mgl32.Vec3{1, -2, 3},
		Rotation: mgl32.Vec3{30, 45, 60},
		Scale:    mgl32.Vec3{2, 0.5, 1.5},
	}
	want := Translate(tr.Position).
		Mul4(RotateY(45)).Mul4(RotateX(30)).Mul4(RotateZ(60)).
		Mul4(Scale(tr.Scale))
	assertMat4(t, want, tr.ModelMatrix())
}

func TestTransformReset(t *testing.T) {
	tr := Transform{Rotation: mgl32.Vec3{10, 20, 30}, Scale: mgl32.Vec3{3, 3, 3}}
	tr.Reset(mgl32.Vec3{0.5, 0.5, 0})

	assert.Equal(t, mgl32.Vec3{0.5, 0.5, 0}, tr.Position)
	assert.Equal(t, mgl32.Vec3{}, tr.Rotation)
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, tr.Scale)
}
