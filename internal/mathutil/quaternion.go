package mathutil

import "github.com/go-gl/mathgl/mgl32"

// ComposeAxisAngles builds the single rotation angleAxis(a1, axis1) * angleAxis(a2, axis2),
// normalized. Axes are used as given; a non-unit axis is corrected only by the final
// normalization.
func ComposeAxisAngles(a1 float32, axis1 mgl32.Vec3, a2 float32, axis2 mgl32.Vec3) mgl32.Quat {
	return mgl32.QuatRotate(a1, axis1).Mul(mgl32.QuatRotate(a2, axis2)).Normalize()
}
