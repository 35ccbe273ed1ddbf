package raster

// PixelBuffer is the renderer's CPU-side frame: one packed RGBA word per pixel
// (red in the low byte, alpha in the high byte), row-major, len = Width*Height.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []uint32
}

// Realloc releases the current storage and allocates a zeroed w×h buffer.
func (b *PixelBuffer) Realloc(w, h int) {
	b.Release()
	n := w * h
	if n < 0 {
		n = 0
	}
	b.Width = w
	b.Height = h
	b.Pix = make([]uint32, n)
}

// Release drops the storage. Releasing an empty buffer is a no-op.
func (b *PixelBuffer) Release() {
	b.Pix = nil
	b.Width = 0
	b.Height = 0
}

// Len returns the number of pixels held.
func (b *PixelBuffer) Len() int {
	return len(b.Pix)
}
