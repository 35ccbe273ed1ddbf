package raster

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"sphere-raycaster/internal/camera"
	"sphere-raycaster/internal/input"
)

var (
	magenta      = mgl32.Vec4{1, 0, 1, 1}
	defaultLight = mgl32.Vec3{-1, -1, -1}
)

type fixedRays struct {
	origin mgl32.Vec3
	dirs   []mgl32.Vec3
}

func (f fixedRays) Position() mgl32.Vec3         { return f.origin }
func (f fixedRays) RayDirections() []mgl32.Vec3 { return f.dirs }

func TestRendererOnResize(t *testing.T) {
	r := NewRenderer()
	if r.FinalImage() != nil {
		t.Fatal("image allocated before OnResize")
	}

	r.OnResize(4, 3)
	img := r.FinalImage()
	if img == nil || img.Width() != 4 || img.Height() != 3 {
		t.Fatalf("OnResize(4,3) image = %v", img)
	}
	if img.Format() != FormatRGBA8 {
		t.Errorf("format = %v, want rgba8", img.Format())
	}
	if len(r.Pixels()) != 12 {
		t.Fatalf("buffer len = %d, want 12", len(r.Pixels()))
	}

	pix := r.Pixels()
	r.OnResize(4, 3)
	if &r.Pixels()[0] != &pix[0] {
		t.Error("same-size resize reallocated the buffer")
	}

	r.OnResize(5, 5)
	if r.FinalImage() != img {
		t.Error("resize replaced the shared image instead of resizing it")
	}
	if img.Width() != 5 || img.Height() != 5 || len(r.Pixels()) != 25 {
		t.Errorf("after OnResize(5,5): %dx%d, buffer %d", img.Width(), img.Height(), len(r.Pixels()))
	}
}

func TestRendererOnResizeNegative(t *testing.T) {
	r := NewRenderer()
	r.OnResize(4, 3)
	img := r.FinalImage()

	r.OnResize(-2, -3)
	if img.Width() != 0 || img.Height() != 0 || len(r.Pixels()) != 0 {
		t.Fatalf("OnResize(-2,-3): %dx%d, buffer %d", img.Width(), img.Height(), len(r.Pixels()))
	}

	backing := img.NRGBA()
	r.OnResize(-2, -3)
	if img.NRGBA() != backing {
		t.Error("repeat negative resize reallocated the image")
	}
	if err := r.Render(fixedRays{}, magenta, defaultLight, mgl32.Vec3{}); err != nil {
		t.Errorf("Render on empty viewport: %v", err)
	}
}

func TestRenderErrors(t *testing.T) {
	r := NewRenderer()
	src := fixedRays{dirs: make([]mgl32.Vec3, 4)}
	if err := r.Render(src, magenta, defaultLight, mgl32.Vec3{}); !errors.Is(err, ErrNoImage) {
		t.Errorf("Render before resize: %v, want ErrNoImage", err)
	}

	r.OnResize(3, 3)
	if err := r.Render(src, magenta, defaultLight, mgl32.Vec3{}); !errors.Is(err, ErrViewportMismatch) {
		t.Errorf("Render with 4 rays on 3x3: %v, want ErrViewportMismatch", err)
	}

	r.Close()
	if err := r.Render(src, magenta, defaultLight, mgl32.Vec3{}); !errors.Is(err, ErrNoImage) {
		t.Errorf("Render after Close: %v, want ErrNoImage", err)
	}
}

// A 4×4 viewport, camera at (0,0,6) looking down -Z with a 45° FOV: only the
// center pixel's ray reaches the sphere.
func TestRenderFourByFourFixture(t *testing.T) {
	cam := camera.New(input.NewState(), 45, 0.1, 100)
	cam.OnResize(4, 4)

	r := NewRenderer()
	r.OnResize(4, 4)
	if err := r.Render(cam, magenta, defaultLight, mgl32.Vec3{}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	// 255 / sqrt(3) = 147.2 -> 0x93.
	const lit = uint32(0xff930093)
	const black = uint32(0xff000000)
	for i, p := range r.Pixels() {
		want := black
		if i == 2+2*4 {
			want = lit
		}
		if p != want {
			t.Errorf("pixel (%d,%d) = %#08x, want %#08x", i%4, i/4, p, want)
		}
	}

	nrgba := r.FinalImage().NRGBA()
	off := nrgba.PixOffset(2, 2)
	if got := nrgba.Pix[off : off+4]; got[0] != 0x93 || got[1] != 0 || got[2] != 0x93 || got[3] != 0xff {
		t.Errorf("uploaded pixel (2,2) = %v", got)
	}
}

func TestRenderSphereOffsetMovesTheHit(t *testing.T) {
	cam := camera.New(input.NewState(), 45, 0.1, 100)
	cam.OnResize(4, 4)

	r := NewRenderer()
	r.OnResize(4, 4)
	// Pixel (1,2) looks along NDC (-0.5, 0): x = -0.5*tan(22.5°) per unit depth.
	// At depth 6 that is x ≈ -1.243.
	if err := r.Render(cam, magenta, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1.243, 0, 0}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	pix := r.Pixels()
	if pix[1+2*4] == 0xff000000 {
		t.Error("expected pixel (1,2) to hit the offset sphere")
	}
	if pix[2+2*4] != 0xff000000 {
		t.Errorf("expected pixel (2,2) to miss, got %#08x", pix[2+2*4])
	}
}

func TestRenderOverwritesAfterResize(t *testing.T) {
	cam := camera.New(input.NewState(), 45, 0.1, 100)
	r := NewRenderer()

	for _, size := range [][2]int{{4, 4}, {9, 7}, {2, 3}} {
		cam.OnResize(size[0], size[1])
		r.OnResize(size[0], size[1])
		if err := r.Render(cam, magenta, defaultLight, mgl32.Vec3{}); err != nil {
			t.Fatalf("Render %v: %v", size, err)
		}
		for i, p := range r.Pixels() {
			if p>>24 != 0xff {
				t.Errorf("%v: pixel %d not written (%#08x)", size, i, p)
			}
		}
	}
}

func TestImageSetData(t *testing.T) {
	img := NewImage(2, 1, FormatRGBA8)
	img.SetData([]uint32{0xff030201, 0x80060504, 0xdeadbeef})
	want := []uint8{1, 2, 3, 0xff, 4, 5, 6, 0x80}
	for i, b := range img.NRGBA().Pix {
		if b != want[i] {
			t.Fatalf("Pix = %v, want %v", img.NRGBA().Pix, want)
		}
	}

	snap := img.Snapshot()
	img.SetData([]uint32{0})
	if snap.Pix[0] != 1 {
		t.Error("snapshot shares storage with the image")
	}
}

func TestNewImageRejectsUnknownFormat(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for FormatNone")
		}
	}()
	NewImage(1, 1, FormatNone)
}
