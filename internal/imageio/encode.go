// Package imageio writes rendered frames to disk and reads reference frames back.
package imageio

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an output image container.
type Format string

const (
	PNG  Format = "png"
	WebP Format = "webp"
	TGA  Format = "tga"
	BMP  Format = "bmp"
	TIFF Format = "tiff"
)

// Formats lists every supported format.
var Formats = []Format{PNG, WebP, TGA, BMP, TIFF}

// ParseFormat resolves a case-insensitive format name. "tif" is accepted for TIFF.
func ParseFormat(name string) (Format, error) {
	switch s := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), ".")); s {
	case "png", "webp", "tga", "bmp", "tiff":
		return Format(s), nil
	case "tif":
		return TIFF, nil
	}
	return "", fmt.Errorf("imageio: unknown format %q", name)
}

// FormatFromPath resolves the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// Encode writes img to w in format f. WebP output is lossless.
func Encode(w io.Writer, img image.Image, f Format) error {
	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case WebP:
		err = nativewebp.Encode(w, img, nil)
	case TGA:
		err = tga.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("imageio: unknown format %q", f)
	}
	if err != nil {
		return fmt.Errorf("imageio: %s encode: %w", f, err)
	}
	return nil
}

// Save writes img to path, creating parent directories.
func Save(path string, img image.Image, f Format) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("imageio: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: %w", err)
	}

	if err := Encode(file, img, f); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
