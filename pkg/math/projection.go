package math

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// WorldUp is the up axis used by the cameras.
var WorldUp = mgl32.Vec3{0, 1, 0}

// LookAt returns a right-handed view matrix: the camera sits at eye and looks down its
// local -Z axis towards target.
//
// A look direction parallel to up has no defined right axis and yields NaNs.
func LookAt(eye, target, up mgl32.Vec3) mgl32.Mat4 {
	f := eye.Sub(target).Normalize()
	r := up.Cross(f).Normalize()
	u := f.Cross(r).Normalize()

	rotation := rowMajor(
		r.X(), r.Y(), r.Z(), 0,
		u.X(), u.Y(), u.Z(), 0,
		f.X(), f.Y(), f.Z(), 0,
		0, 0, 0, 1,
	)
	return rotation.Mul4(Translate(eye.Mul(-1)))
}

// Orthographic returns a symmetric orthographic projection.
// height is the full height of the view volume; the width is aspect * height.
// Depth uses the same convention as Perspective: -near maps to -1, -far maps to +1.
func Orthographic(height, aspect, near, far float32) mgl32.Mat4 {
	width := aspect * height
	r := width / 2
	l := -r
	t := height / 2
	b := -t

	return rowMajor(
		2/(r-l), 0, 0, -(r+l)/(r-l),
		0, 2/(t-b), 0, -(t+b)/(t-b),
		0, 0, -2/(far-near), -(far+near)/(far-near),
		0, 0, 0, 1,
	)
}

// Perspective returns a symmetric perspective projection.
// fovY is the vertical field of view in degrees, aspect is width/height.
func Perspective(fovY, aspect, near, far float32) mgl32.Mat4 {
	f := 1 / math32.Tan(mgl32.DegToRad(fovY)/2)

	return rowMajor(
		f/aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (near+far)/(near-far), 2*far*near/(near-far),
		0, 0, -1, 0,
	)
}
