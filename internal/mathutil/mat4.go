package mathutil

import "github.com/go-gl/mathgl/mgl32"

// PerspectiveFov builds an OpenGL-style (clip z in [-1,1]) perspective projection
// from a vertical field of view in degrees and a viewport size in pixels.
// A zero height yields an infinite aspect; callers own that case.
func PerspectiveFov(fovDeg float32, width, height int, near, far float32) mgl32.Mat4 {
	aspect := float32(width) / float32(height)
	return mgl32.Perspective(mgl32.DegToRad(fovDeg), aspect, near, far)
}

// LookDirection returns the view matrix for an eye at position looking along forward.
func LookDirection(position, forward mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(position, position.Add(forward), WorldUp)
}

// MulDirection transforms a direction (w=0) by m, ignoring translation.
func MulDirection(m mgl32.Mat4, v mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(v.Vec4(0)).Vec3()
}
