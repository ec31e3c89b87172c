// Package math builds the 4x4 homogeneous transforms used by every scene.
//
// Matrices are mgl32.Mat4 values (column-major, OpenGL compatible). The builders are
// written in row-major reading order through rowMajor so they can be compared against
// the textbook layout at a glance. Angles passed to the rotation builders are degrees.
package math

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// rowMajor builds a Mat4 from 16 scalars given row by row.
func rowMajor(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 float32,
) mgl32.Mat4 {
	return mgl32.Mat4{
		m00, m10, m20, m30,
		m01, m11, m21, m31,
		m02, m12, m22, m32,
		m03, m13, m23, m33,
	}
}

// Identity returns an identity matrix.
func Identity() mgl32.Mat4 {
	return rowMajor(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Scale returns a scale matrix on the x, y and z axes.
func Scale(s mgl32.Vec3) mgl32.Mat4 {
	return rowMajor(
		s.X(), 0, 0, 0,
		0, s.Y(), 0, 0,
		0, 0, s.Z(), 0,
		0, 0, 0, 1,
	)
}

// Translate returns a translation matrix.
func Translate(t mgl32.Vec3) mgl32.Mat4 {
	return rowMajor(
		1, 0, 0, t.X(),
		0, 1, 0, t.Y(),
		0, 0, 1, t.Z(),
		0, 0, 0, 1,
	)
}

// RotateX returns a rotation around the X axis (pitch).
func RotateX(degrees float32) mgl32.Mat4 {
	c, s := cosSin(degrees)
	return rowMajor(
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	)
}

// RotateY returns a rotation around the Y axis (yaw).
func RotateY(degrees float32) mgl32.Mat4 {
	c, s := cosSin(degrees)
	return rowMajor(
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	)
}

// RotateZ returns a rotation around the Z axis (roll).
func RotateZ(degrees float32) mgl32.Mat4 {
	c, s := cosSin(degrees)
	return rowMajor(
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

func cosSin(degrees float32) (float32, float32) {
	rad := mgl32.DegToRad(degrees)
	return math32.Cos(rad), math32.Sin(rad)
}

// TransformPoint applies m to p with w=1 and returns the xyz part without a perspective divide.
func TransformPoint(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}
