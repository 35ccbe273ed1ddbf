package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the scene and render settings shared by the command-line tools.
type Config struct {
	Camera Camera `json:"camera" yaml:"camera"`

	// Viewport
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`

	// Scene
	Albedo       *[4]float32 `json:"albedo" yaml:"albedo"`
	LightDir     *[3]float32 `json:"light_dir" yaml:"light_dir"`
	SphereOrigin [3]float32  `json:"sphere_origin" yaml:"sphere_origin"`

	// Output
	OutputDir string `json:"output_dir" yaml:"output_dir"`
	Format    string `json:"format" yaml:"format"`
	Scale     int    `json:"scale" yaml:"scale"`
	Workers   int    `json:"workers" yaml:"workers"`
}

// Camera holds the projection and the initial pose.
type Camera struct {
	FOV       float32     `json:"fov" yaml:"fov"`
	Near      float32     `json:"near" yaml:"near"`
	Far       float32     `json:"far" yaml:"far"`
	Position  *[3]float32 `json:"position" yaml:"position"`
	Direction *[3]float32 `json:"direction" yaml:"direction"`
}

// Load reads a config file. Files ending in .yaml or .yml are parsed as YAML,
// everything else as JSON. Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Width     int
	Height    int
	OutputDir string
	Format    string
	Scale     int
	Workers   int
}

// Resolve applies flag overrides and fills any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}
	if flags.Scale > 0 {
		c.Scale = flags.Scale
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}

	// Camera defaults
	if c.Camera.FOV <= 0 {
		c.Camera.FOV = 45
	}
	if c.Camera.Near <= 0 {
		c.Camera.Near = 0.1
	}
	if c.Camera.Far <= c.Camera.Near {
		c.Camera.Far = 100
	}
	if c.Camera.Position == nil {
		c.Camera.Position = &[3]float32{0, 0, 6}
	}
	if c.Camera.Direction == nil {
		c.Camera.Direction = &[3]float32{0, 0, -1}
	}

	// Scene defaults
	if c.Albedo == nil {
		c.Albedo = &[4]float32{1, 0, 1, 1}
	}
	if c.LightDir == nil {
		c.LightDir = &[3]float32{-1, -1, -1}
	}

	// Render defaults
	if c.Width <= 0 {
		c.Width = 640
	}
	if c.Height <= 0 {
		c.Height = 360
	}
	if c.OutputDir == "" {
		c.OutputDir = "renders"
	}
	if c.Format == "" {
		c.Format = "png"
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate reports settings that Resolve cannot repair.
func (c *Config) Validate() error {
	if c.Camera.FOV >= 180 {
		return fmt.Errorf("config: fov %v must be below 180 degrees", c.Camera.FOV)
	}
	if c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("config: far clip %v must be beyond near clip %v", c.Camera.Far, c.Camera.Near)
	}
	if c.Camera.Direction != nil && *c.Camera.Direction == [3]float32{} {
		return fmt.Errorf("config: camera direction must be non-zero")
	}
	return nil
}
