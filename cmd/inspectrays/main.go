package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"sphere-raycaster/internal/camera"
	"sphere-raycaster/internal/config"
	"sphere-raycaster/internal/input"
	"sphere-raycaster/internal/raster"
)

func main() {
	configFile := flag.String("config", "", "Path to config file (.json, .yaml)")
	width := flag.Int("width", 4, "Viewport width")
	height := flag.Int("height", 4, "Viewport height")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{Width: *width, Height: *height})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cam := camera.New(input.NewState(), cfg.Camera.FOV, cfg.Camera.Near, cfg.Camera.Far,
		camera.WithPosition(cfg.CameraPosition()),
		camera.WithDirection(cfg.CameraDirection()))
	cam.OnResize(cfg.Width, cfg.Height)

	pos, dir := cam.Position(), cam.Direction()
	fmt.Printf("Viewport: %dx%d, FOV %.1f, clip [%.2f, %.2f]\n", cfg.Width, cfg.Height, cfg.Camera.FOV, cfg.Camera.Near, cfg.Camera.Far)
	fmt.Printf("Position: (%.3f, %.3f, %.3f)\n", pos[0], pos[1], pos[2])
	fmt.Printf("Forward:  (%.3f, %.3f, %.3f)\n", dir[0], dir[1], dir[2])

	printMat("Projection", cam.Projection())
	printMat("InverseProjection", cam.InverseProjection())
	printMat("View", cam.View())
	printMat("InverseView", cam.InverseView())

	albedo, light, sphere := cfg.AlbedoColor(), cfg.Light(), cfg.Sphere()
	hits := 0
	fmt.Println("--- Rays ---")
	for y := 0; y < cfg.Height; y++ {
		for x := 0; x < cfg.Width; x++ {
			d := cam.RayDirections()[x+y*cfg.Width]
			ray := raster.Ray{Origin: pos, Direction: d}
			line := fmt.Sprintf("  [%d,%d] dir (%+.4f, %+.4f, %+.4f)", x, y, d[0], d[1], d[2])
			if hit, ok := raster.Intersect(ray, sphere); ok {
				hits++
				packed := raster.PackRGBA(raster.ClampColor(raster.TraceRay(ray, albedo, light, sphere)))
				line += fmt.Sprintf("  hit t=%.3f n=(%+.3f, %+.3f, %+.3f) 0x%08x", hit.T, hit.Normal[0], hit.Normal[1], hit.Normal[2], packed)
			}
			fmt.Println(line)
		}
	}
	fmt.Printf("Hits: %d/%d\n", hits, cfg.Width*cfg.Height)
}

func printMat(name string, m mgl32.Mat4) {
	fmt.Printf("%s:\n", name)
	for r := 0; r < 4; r++ {
		fmt.Printf("  [%9.4f %9.4f %9.4f %9.4f]\n", m.At(r, 0), m.At(r, 1), m.At(r, 2), m.At(r, 3))
	}
}
