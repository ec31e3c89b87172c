package math

import "github.com/go-gl/mathgl/mgl32"

// Transform positions an object in the world.
// Fields are plain values so UI widgets can bind to them directly.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3 // Euler angles in degrees
	Scale    mgl32.Vec3
}

// NewTransform returns a transform at the origin with unit scale.
func NewTransform() Transform {
	return Transform{Scale: mgl32.Vec3{1, 1, 1}}
}

// ModelMatrix returns Translate * (RotateY * RotateX * RotateZ) * Scale.
// It is recomputed on every call.
func (t Transform) ModelMatrix() mgl32.Mat4 {
	rotation := RotateY(t.Rotation.Y()).Mul4(RotateX(t.Rotation.X())).Mul4(RotateZ(t.Rotation.Z()))
	return Translate(t.Position).Mul4(rotation).Mul4(Scale(t.Scale))
}

// Reset restores the transform to position p with no rotation and unit scale.
func (t *Transform) Reset(p mgl32.Vec3) {
	*t = NewTransform()
	t.Position = p
}
