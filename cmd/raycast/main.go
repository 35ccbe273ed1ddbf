package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"sphere-raycaster/internal/camera"
	"sphere-raycaster/internal/config"
	"sphere-raycaster/internal/imageio"
	"sphere-raycaster/internal/input"
	"sphere-raycaster/internal/postprocess"
	"sphere-raycaster/internal/raster"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config file (.json, .yaml)")
	width := flag.Int("width", 0, "Viewport width (default: 640)")
	height := flag.Int("height", 0, "Viewport height (default: 360)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	name := flag.String("name", "frame", "Output file name without extension")
	format := flag.String("format", "", "Output format: png, webp, tga, bmp, tiff (default: png)")
	scale := flag.Int("scale", 0, "Integer upscale factor (default: 1)")
	compare := flag.String("compare", "", "Reference image to diff the render against")

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

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		Width:     *width,
		Height:    *height,
		OutputDir: *outputDir,
		Format:    *format,
		Scale:     *scale,
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	outFormat, err := imageio.ParseFormat(cfg.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cam := camera.New(input.NewState(), cfg.Camera.FOV, cfg.Camera.Near, cfg.Camera.Far,
		camera.WithPosition(cfg.CameraPosition()),
		camera.WithDirection(cfg.CameraDirection()))
	renderer := raster.NewRenderer()
	defer renderer.Close()

	fmt.Println("Sphere raycaster")
	fmt.Printf("Viewport: %dx%d, FOV %.1f\n", cfg.Width, cfg.Height, cfg.Camera.FOV)
	pos, dir := cam.Position(), cam.Direction()
	fmt.Printf("Camera: (%.2f, %.2f, %.2f) looking (%.2f, %.2f, %.2f)\n", pos[0], pos[1], pos[2], dir[0], dir[1], dir[2])
	fmt.Println("------------------------------------------------------------")

	start := time.Now()
	cam.OnResize(cfg.Width, cfg.Height)
	renderer.OnResize(cfg.Width, cfg.Height)
	setup := time.Since(start)

	start = time.Now()
	if err := renderer.Render(cam, cfg.AlbedoColor(), cfg.Light(), cfg.Sphere()); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering: %v\n", err)
		os.Exit(1)
	}
	elapsed := time.Since(start)

	fmt.Printf("Ray cache built in %.3fms\n", float64(setup)/float64(time.Millisecond))
	fmt.Printf("Rendered in %.3fms\n", float64(elapsed)/float64(time.Millisecond))

	clusters := postprocess.FindClusters(renderer.Pixels(), cfg.Width, cfg.Height)
	if len(clusters) == 0 {
		fmt.Println("Sphere: not visible")
	} else {
		c := clusters[0]
		fmt.Printf("Sphere: %d px (%.2f%% of frame), centroid (%.1f, %.1f)\n",
			c.Size, 100*postprocess.Coverage(clusters, cfg.Width, cfg.Height), c.Centroid[0], c.Centroid[1])
	}

	img := postprocess.FlipVertical(renderer.FinalImage().NRGBA())
	img = postprocess.Upscale(img, cfg.Scale)

	outPath := filepath.Join(cfg.OutputDir, *name+outFormat.Ext())
	if err := imageio.Save(outPath, img, outFormat); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Saved: %s\n", outPath)

	if *compare != "" {
		ref, err := imageio.Load(*compare)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading reference: %v\n", err)
			os.Exit(1)
		}
		b := ref.Bounds()
		diff := countDiff(postprocess.Fit(img, b.Dx(), b.Dy()), ref)
		fmt.Printf("Reference %s: %d/%d pixels differ\n", *compare, diff, b.Dx()*b.Dy())
		if diff > 0 {
			os.Exit(1)
		}
	}
}

func countDiff(a, b *image.NRGBA) int {
	n := 0
	w, h := b.Bounds().Dx(), b.Bounds().Dy()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if a.NRGBAAt(x, y) != b.NRGBAAt(x, y) {
				n++
			}
		}
	}
	return n
}
