package mathutil

import "github.com/go-gl/mathgl/mgl32"

// NDC maps pixel (x, y) of a w×h viewport to normalized device coordinates in [-1, 1).
// Row 0 maps to -1, so the image is bottom-up in NDC terms.
func NDC(x, y, w, h int) mgl32.Vec2 {
	u := float32(x) / float32(w)
	v := float32(y) / float32(h)
	return mgl32.Vec2{u*2 - 1, v*2 - 1}
}

// PerspectiveDivide returns xyz / w.
func PerspectiveDivide(v mgl32.Vec4) mgl32.Vec3 {
	return mgl32.Vec3{v[0] / v[3], v[1] / v[3], v[2] / v[3]}
}
