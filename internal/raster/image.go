package raster

import (
	"encoding/binary"
	"fmt"
	"image"
)

// ImageFormat is the pixel layout of a display Image.
type ImageFormat int

const (
	FormatNone ImageFormat = iota
	// FormatRGBA8 is 8 bits per channel, bytes ordered R, G, B, A.
	FormatRGBA8
)

func (f ImageFormat) String() string {
	switch f {
	case FormatNone:
		return "none"
	case FormatRGBA8:
		return "rgba8"
	}
	return fmt.Sprintf("ImageFormat(%d)", int(f))
}

// Image is the displayable output of the Renderer. The renderer and the display host
// hold the same *Image across frames; the host reads it after each Render.
type Image struct {
	format ImageFormat
	img    *image.NRGBA
}

// NewImage allocates a zeroed w×h image. Only FormatRGBA8 is supported; any other
// format panics.
func NewImage(w, h int, format ImageFormat) *Image {
	if format != FormatRGBA8 {
		panic(fmt.Sprintf("raster: unsupported image format %v", format))
	}
	return &Image{
		format: format,
		img:    image.NewNRGBA(image.Rect(0, 0, w, h)),
	}
}

func (im *Image) Width() int          { return im.img.Rect.Dx() }
func (im *Image) Height() int         { return im.img.Rect.Dy() }
func (im *Image) Format() ImageFormat { return im.format }

// Resize replaces the storage with a zeroed w×h image.
func (im *Image) Resize(w, h int) {
	im.img = image.NewNRGBA(image.Rect(0, 0, w, h))
}

// SetData uploads packed pixels (see PackRGBA). Extra input pixels are ignored and
// missing ones leave the image untouched.
func (im *Image) SetData(pix []uint32) {
	dst := im.img.Pix
	n := len(dst) / 4
	if len(pix) < n {
		n = len(pix)
	}
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint32(dst[i*4:], pix[i])
	}
}

// NRGBA returns the current backing image. It is replaced by Resize, so hosts should
// fetch it again after a resize.
func (im *Image) NRGBA() *image.NRGBA {
	return im.img
}

// Snapshot returns a deep copy safe to hand to another goroutine.
func (im *Image) Snapshot() *image.NRGBA {
	cp := image.NewNRGBA(im.img.Rect)
	copy(cp.Pix, im.img.Pix)
	return cp
}
