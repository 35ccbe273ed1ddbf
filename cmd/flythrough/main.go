package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"sphere-raycaster/internal/batch"
	"sphere-raycaster/internal/camera"
	"sphere-raycaster/internal/config"
	"sphere-raycaster/internal/frametime"
	"sphere-raycaster/internal/imageio"
	"sphere-raycaster/internal/input"
	"sphere-raycaster/internal/raster"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config file (.json, .yaml)")
	scriptFile := flag.String("script", "", "Input script (.yaml) to replay")
	width := flag.Int("width", 0, "Viewport width (default: 640)")
	height := flag.Int("height", 0, "Viewport height (default: 360)")
	outputDir := flag.String("output", "", "Output directory (default: renders)")
	format := flag.String("format", "", "Output format: png, webp, tga, bmp, tiff (default: png)")
	scale := flag.Int("scale", 0, "Integer upscale factor (default: 1)")
	workers := flag.Int("workers", 0, "Number of encoder goroutines (default: NumCPU)")
	noProgress := flag.Bool("no-progress", false, "Disable the progress bar")
	verbose := flag.Bool("v", false, "Verbose logging")

	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *scriptFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -script is required.")
		os.Exit(1)
	}

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
		Workers:   *workers,
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

	script, err := input.LoadScript(*scriptFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading script: %v\n", err)
		os.Exit(1)
	}
	total := script.Len()
	if total == 0 {
		fmt.Println("No frames to render.")
		os.Exit(0)
	}

	player := input.NewPlayer(script)
	cam := camera.New(player, cfg.Camera.FOV, cfg.Camera.Near, cfg.Camera.Far,
		camera.WithPosition(cfg.CameraPosition()),
		camera.WithDirection(cfg.CameraDirection()))
	cam.OnResize(cfg.Width, cfg.Height)

	renderer := raster.NewRenderer()
	defer renderer.Close()
	renderer.OnResize(cfg.Width, cfg.Height)

	fmt.Println("Sphere raycaster fly-through")
	fmt.Printf("Frames: %d, Viewport: %dx%d, Workers: %d\n", total, cfg.Width, cfg.Height, cfg.Workers)
	fmt.Printf("Output: %s (%s)\n", cfg.OutputDir, outFormat)
	fmt.Println("------------------------------------------------------------")

	enc := batch.NewEncoder(batch.Config{
		OutputDir: cfg.OutputDir,
		Format:    outFormat,
		Scale:     cfg.Scale,
		Workers:   cfg.Workers,
		Progress:  !*noProgress,
	}, total)

	avg := frametime.NewAverager(frametime.DefaultWindow)
	var renderTotal time.Duration
	start := time.Now()

	for i := 0; ; i++ {
		dt, ok := player.Next()
		if !ok {
			break
		}
		moved := cam.OnUpdate(dt)

		var renderErr error
		renderTotal += avg.Time(func() {
			renderErr = renderer.Render(cam, cfg.AlbedoColor(), cfg.Light(), cfg.Sphere())
		})
		if renderErr != nil {
			fmt.Fprintf(os.Stderr, "Error rendering frame %d: %v\n", i, renderErr)
			os.Exit(1)
		}
		slog.Debug("frame rendered", "frame", i, "moved", moved, "render", avg.Last())

		enc.Submit(batch.Frame{
			Index:     i,
			Image:     renderer.FinalImage().Snapshot(),
			Position:  cam.Position(),
			Direction: cam.Direction(),
			Moved:     moved,
		})
	}

	results := enc.Wait()

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())
	fmt.Printf("Average render: %.3fms over %d frames\n", frametime.Millis(renderTotal)/float64(len(results)), len(results))
	if avg.Windows() > 0 {
		fmt.Println(avg)
	}

	failed := batch.Failed(results)
	fmt.Printf("Written: %d/%d\n", len(results)-failed, len(results))

	if failed > 0 {
		fmt.Printf("\nFailed (%d):\n", failed)
		shown := 0
		for _, r := range results {
			if r.Success {
				continue
			}
			fmt.Printf("  frame %d: %s\n", r.Index, r.Error)
			if shown++; shown == 20 {
				break
			}
		}
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		slog.Warn("output dir", "err", err)
	}
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if failed > 0 {
		os.Exit(1)
	}
}
