package raster

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrNoImage is returned by Render before the first OnResize.
	ErrNoImage = errors.New("raster: render before OnResize")

	// ErrViewportMismatch is returned when the ray cache does not cover the image.
	ErrViewportMismatch = errors.New("raster: ray directions do not match image size")
)

// RaySource supplies the primary rays: one shared origin and a cached direction per
// pixel, indexed x + y*width. *camera.Camera satisfies it.
type RaySource interface {
	Position() mgl32.Vec3
	RayDirections() []mgl32.Vec3
}

// Renderer casts one primary ray per pixel against a single sphere.
// It is not safe for concurrent use.
type Renderer struct {
	finalImage *Image
	buffer     PixelBuffer
}

// NewRenderer returns a renderer with no image. Call OnResize before Render.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// OnResize makes the output image and pixel buffer exactly w×h. It is a no-op when
// the image already has that size. Negative sizes are treated as 0.
func (r *Renderer) OnResize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	if r.finalImage != nil {
		if r.finalImage.Width() == w && r.finalImage.Height() == h {
			return
		}
		r.finalImage.Resize(w, h)
	} else {
		r.finalImage = NewImage(w, h, FormatRGBA8)
	}

	r.buffer.Realloc(w, h)
}

// Render traces every pixel in row-major order and uploads the frame to the image.
func (r *Renderer) Render(src RaySource, albedo mgl32.Vec4, lightDir, sphereOrigin mgl32.Vec3) error {
	if r.finalImage == nil {
		return ErrNoImage
	}
	w := r.finalImage.Width()
	h := r.finalImage.Height()

	dirs := src.RayDirections()
	if len(dirs) != w*h {
		return fmt.Errorf("%w: %d directions for %dx%d", ErrViewportMismatch, len(dirs), w, h)
	}

	ray := Ray{Origin: src.Position()}
	pix := r.buffer.Pix
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := x + y*w
			ray.Direction = dirs[i]

			color := TraceRay(ray, albedo, lightDir, sphereOrigin)
			pix[i] = PackRGBA(ClampColor(color))
		}
	}

	r.finalImage.SetData(pix)
	return nil
}

// FinalImage returns the shared output image, or nil before the first OnResize.
func (r *Renderer) FinalImage() *Image {
	return r.finalImage
}

// Pixels returns the last rendered frame. The slice is owned by the renderer.
func (r *Renderer) Pixels() []uint32 {
	return r.buffer.Pix
}

// Close releases the pixel buffer and drops the renderer's reference to the image.
// Hosts still holding the image keep a valid, final frame.
func (r *Renderer) Close() {
	r.buffer.Release()
	r.finalImage = nil
}
