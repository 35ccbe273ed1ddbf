package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolveDefaults(t *testing.T) {
	var cfg Config
	cfg.Resolve(Flags{})

	if cfg.Camera.FOV != 45 || cfg.Camera.Near != 0.1 || cfg.Camera.Far != 100 {
		t.Errorf("camera defaults = %+v", cfg.Camera)
	}
	if cfg.CameraPosition() != (mgl32.Vec3{0, 0, 6}) {
		t.Errorf("position = %v", cfg.CameraPosition())
	}
	if cfg.CameraDirection() != (mgl32.Vec3{0, 0, -1}) {
		t.Errorf("direction = %v", cfg.CameraDirection())
	}
	if cfg.AlbedoColor() != (mgl32.Vec4{1, 0, 1, 1}) {
		t.Errorf("albedo = %v", cfg.AlbedoColor())
	}
	if cfg.Light() != (mgl32.Vec3{-1, -1, -1}) {
		t.Errorf("light = %v", cfg.Light())
	}
	if cfg.Sphere() != (mgl32.Vec3{}) {
		t.Errorf("sphere = %v", cfg.Sphere())
	}
	if cfg.Width != 640 || cfg.Height != 360 {
		t.Errorf("viewport = %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Format != "png" || cfg.Scale != 1 || cfg.OutputDir != "renders" {
		t.Errorf("output defaults = %q %d %q", cfg.Format, cfg.Scale, cfg.OutputDir)
	}
	if cfg.Workers != runtime.NumCPU() {
		t.Errorf("workers = %d", cfg.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "scene.json", `{
		"camera": {"fov": 60, "position": [0, 0, 0]},
		"width": 320,
		"albedo": [0.2, 0.4, 0.6, 1],
		"sphere_origin": [1, 0, -2],
		"format": "webp"
	}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Resolve(Flags{Format: "tga", Height: 200})

	if cfg.Camera.FOV != 60 {
		t.Errorf("fov = %v", cfg.Camera.FOV)
	}
	// An explicit origin position is kept, not replaced by the default.
	if cfg.CameraPosition() != (mgl32.Vec3{}) {
		t.Errorf("position = %v, want origin", cfg.CameraPosition())
	}
	if cfg.Width != 320 || cfg.Height != 200 {
		t.Errorf("viewport = %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.AlbedoColor() != (mgl32.Vec4{0.2, 0.4, 0.6, 1}) {
		t.Errorf("albedo = %v", cfg.AlbedoColor())
	}
	if cfg.Sphere() != (mgl32.Vec3{1, 0, -2}) {
		t.Errorf("sphere = %v", cfg.Sphere())
	}
	if cfg.Format != "tga" {
		t.Errorf("flag did not override format: %q", cfg.Format)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "scene.yaml", `
camera:
  fov: 30
  near: 0.5
  far: 0.2
  direction: [1, 0, 0]
light_dir: [0, -1, 0]
scale: 4
workers: 2
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Resolve(Flags{})

	if cfg.Camera.FOV != 30 || cfg.Camera.Near != 0.5 {
		t.Errorf("camera = %+v", cfg.Camera)
	}
	if cfg.Camera.Far != 100 {
		t.Errorf("far below near should fall back to 100, got %v", cfg.Camera.Far)
	}
	if cfg.CameraDirection() != (mgl32.Vec3{1, 0, 0}) {
		t.Errorf("direction = %v", cfg.CameraDirection())
	}
	if cfg.Light() != (mgl32.Vec3{0, -1, 0}) {
		t.Errorf("light = %v", cfg.Light())
	}
	if cfg.Scale != 4 || cfg.Workers != 2 {
		t.Errorf("scale=%d workers=%d", cfg.Scale, cfg.Workers)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "none.json")); err == nil {
		t.Error("expected read error")
	}
	if _, err := Load(writeFile(t, "bad.json", "{")); err == nil {
		t.Error("expected JSON parse error")
	}
	if _, err := Load(writeFile(t, "bad.yml", "camera: [")); err == nil {
		t.Error("expected YAML parse error")
	}
}

func TestValidate(t *testing.T) {
	cfg := Config{Camera: Camera{FOV: 190}}
	cfg.Resolve(Flags{})
	if err := cfg.Validate(); err == nil {
		t.Error("expected fov error")
	}

	cfg = Config{Camera: Camera{Direction: &[3]float32{}}}
	cfg.Resolve(Flags{})
	if err := cfg.Validate(); err == nil {
		t.Error("expected zero direction error")
	}

	// Far falls back to 100, which is still inside a near plane of 200.
	cfg = Config{Camera: Camera{Near: 200}}
	cfg.Resolve(Flags{})
	if err := cfg.Validate(); err == nil {
		t.Errorf("expected clip range error for near=%v far=%v", cfg.Camera.Near, cfg.Camera.Far)
	}
}

func TestExampleConfigIsValid(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "config.example.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg.Resolve(Flags{})
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if cfg.Width != 640 || cfg.Height != 360 || cfg.Format != "png" {
		t.Errorf("cfg = %+v", cfg)
	}
}
