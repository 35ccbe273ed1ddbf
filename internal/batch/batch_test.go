package batch

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"sphere-raycaster/internal/imageio"
)

func testFrame(i int) Frame {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	// Bottom row of the view is row 0 of the render.
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 255, 255})
	return Frame{
		Index:     i,
		Image:     img,
		Position:  mgl32.Vec3{0, 0, 6 - float32(i)},
		Direction: mgl32.Vec3{0, 0, -1},
		Moved:     i > 0,
	}
}

func TestRunWritesFramesAndManifest(t *testing.T) {
	dir := t.TempDir()
	cfg := Config{OutputDir: dir, Format: imageio.PNG, Scale: 2, Workers: 3}

	var frames []Frame
	for i := 0; i < 7; i++ {
		frames = append(frames, testFrame(i))
	}
	results := Run(cfg, frames)

	if len(results) != len(frames) {
		t.Fatalf("got %d results, want %d", len(results), len(frames))
	}
	if n := Failed(results); n != 0 {
		t.Fatalf("%d frames failed: %+v", n, results)
	}
	for i, r := range results {
		if r.Index != i {
			t.Errorf("result %d has index %d", i, r.Index)
		}
	}

	img, err := imageio.Load(filepath.Join(dir, FrameName(3, imageio.PNG)))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Errorf("frame bounds = %v, want 8x4", b)
	}
	// Flipped and upscaled: the marked pixel lands in the bottom-left 2x2 block.
	if c := img.NRGBAAt(1, 3); c != (color.NRGBA{255, 0, 255, 255}) {
		t.Errorf("pixel (1,3) = %v", c)
	}
	if c := img.NRGBAAt(0, 0); c.R != 0 {
		t.Errorf("pixel (0,0) = %v, want unlit", c)
	}

	manifest := filepath.Join(dir, "manifest.json")
	if err := WriteManifest(manifest, results); err != nil {
		t.Fatalf("WriteManifest: %v", err)
	}
	entries, err := ReadManifest(manifest)
	if err != nil {
		t.Fatalf("ReadManifest: %v", err)
	}
	if len(entries) != 7 {
		t.Fatalf("manifest has %d entries", len(entries))
	}
	e := entries[2]
	if e.Image != "frame_00002.png" || e.Position != [3]float32{0, 0, 4} || !e.Moved {
		t.Errorf("entry 2 = %+v", e)
	}
	if entries[0].Moved {
		t.Error("entry 0 should not be marked moved")
	}
}

func TestEncoderReportsFailures(t *testing.T) {
	dir := t.TempDir()
	e := NewEncoder(Config{OutputDir: dir, Format: imageio.TGA}, 2)
	e.Submit(testFrame(0))
	e.Submit(Frame{Index: 1})
	results := e.Wait()

	if Failed(results) != 1 {
		t.Fatalf("failed = %d, want 1", Failed(results))
	}
	if results[1].Success || results[1].Error == "" {
		t.Errorf("frame 1 = %+v", results[1])
	}
	if _, err := os.Stat(filepath.Join(dir, "frame_00000.tga")); err != nil {
		t.Errorf("frame 0 not written: %v", err)
	}
}
