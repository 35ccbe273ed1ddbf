package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"sphere-raycaster/internal/mathutil"
)

func (c *Camera) recalculateProjection() {
	c.projection = mathutil.PerspectiveFov(c.verticalFOV, c.viewportWidth, c.viewportHeight, c.nearClip, c.farClip)
	c.inverseProjection = c.projection.Inv()
}

func (c *Camera) recalculateView() {
	c.view = mathutil.LookDirection(c.position, c.forward)
	c.inverseView = c.view.Inv()
}

// recalculateRayDirections rebuilds the cache. Each entry is the far-plane point of
// the pixel's NDC coordinate, unprojected to view space, normalized, then rotated
// into world space.
func (c *Camera) recalculateRayDirections() {
	w, h := c.viewportWidth, c.viewportHeight
	n := w * h
	if cap(c.rayDirections) >= n {
		c.rayDirections = c.rayDirections[:n]
	} else {
		c.rayDirections = make([]mgl32.Vec3, n)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			coord := mathutil.NDC(x, y, w, h)

			target := c.inverseProjection.Mul4x1(mgl32.Vec4{coord.X(), coord.Y(), 1, 1})
			dir := mathutil.PerspectiveDivide(target).Normalize()
			c.rayDirections[x+y*w] = mathutil.MulDirection(c.inverseView, dir)
		}
	}
}
