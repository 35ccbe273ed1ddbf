package raster

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ClampColor clamps every channel to [0, 1]. NaN channels become 0.
func ClampColor(c mgl32.Vec4) mgl32.Vec4 {
	for i, v := range c {
		if math.IsNaN(float64(v)) {
			c[i] = 0
			continue
		}
		c[i] = mgl32.Clamp(v, 0, 1)
	}
	return c
}

// PackRGBA converts a clamped colour to a 32-bit word: alpha in the high byte, red in
// the low byte. Channels are truncated, not rounded.
func PackRGBA(c mgl32.Vec4) uint32 {
	r := uint32(uint8(c[0] * 255))
	g := uint32(uint8(c[1] * 255))
	b := uint32(uint8(c[2] * 255))
	a := uint32(uint8(c[3] * 255))
	return a<<24 | b<<16 | g<<8 | r
}

// UnpackRGBA splits a packed word back into bytes.
func UnpackRGBA(p uint32) (r, g, b, a uint8) {
	return uint8(p), uint8(p >> 8), uint8(p >> 16), uint8(p >> 24)
}
