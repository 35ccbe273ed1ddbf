package postprocess

import "image"

// FlipVertical returns a copy of img mirrored top to bottom. The renderer writes
// row 0 at NDC y = -1 (the bottom of the view); image files store row 0 at the top.
func FlipVertical(img *image.NRGBA) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))

	rowLen := w * 4
	for y := 0; y < h; y++ {
		src := img.PixOffset(b.Min.X, b.Min.Y+h-1-y)
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+rowLen], img.Pix[src:src+rowLen])
	}
	return dst
}
