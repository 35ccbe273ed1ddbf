package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"sphere-raycaster/internal/camera"
	"sphere-raycaster/internal/config"
	"sphere-raycaster/internal/frametime"
	"sphere-raycaster/internal/postprocess"
	"sphere-raycaster/internal/raster"
)

var albedoPresets = []mgl32.Vec4{
	{1, 0, 1, 1},
	{1, 1, 1, 1},
	{1, 0.5, 0.1, 1},
	{0.2, 0.6, 1, 1},
}

var presetKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

type game struct {
	cfg      config.Config
	cam      *camera.Camera
	renderer *raster.Renderer
	avg      *frametime.Averager

	albedo mgl32.Vec4
	paused bool

	width, height int
	frame         *ebiten.Image
	lastTick      time.Time
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	for i, k := range presetKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.albedo = albedoPresets[i]
		}
	}

	if g.width == 0 || g.height == 0 {
		return nil
	}
	g.renderer.OnResize(g.width, g.height)
	g.cam.OnResize(g.width, g.height)

	now := time.Now()
	ts := float32(now.Sub(g.lastTick).Seconds())
	g.lastTick = now
	g.cam.OnUpdate(ts)

	if g.paused {
		return nil
	}

	var err error
	windows := g.avg.Windows()
	g.avg.Time(func() {
		err = g.renderer.Render(g.cam, g.albedo, g.cfg.Light(), g.cfg.Sphere())
	})
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if g.avg.Windows() != windows {
		ebiten.SetWindowTitle(fmt.Sprintf("Sphere raycaster - %s", g.avg))
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	img := g.renderer.FinalImage()
	if img == nil {
		return
	}
	w, h := img.Width(), img.Height()
	if g.frame == nil || g.frame.Bounds().Dx() != w || g.frame.Bounds().Dy() != h {
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(w, h)
	}
	g.frame.WritePixels(postprocess.FlipVertical(img.NRGBA()).Pix)
	screen.DrawImage(g.frame, nil)

	status := g.avg.String()
	if g.paused {
		status += " (paused)"
	}
	ebitenutil.DebugPrint(screen, status+"\nRMB: look  WASD/QE: move  1-4: colour  Space: pause")
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func main() {
	configFile := flag.String("config", "", "Path to config file (.json, .yaml)")
	width := flag.Int("width", 0, "Window width (default: 640)")
	height := flag.Int("height", 0, "Window height (default: 360)")

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

	g := &game{
		cfg: cfg,
		cam: camera.New(&windowInput{}, cfg.Camera.FOV, cfg.Camera.Near, cfg.Camera.Far,
			camera.WithPosition(cfg.CameraPosition()),
			camera.WithDirection(cfg.CameraDirection())),
		renderer: raster.NewRenderer(),
		avg:      frametime.NewAverager(frametime.DefaultWindow),
		albedo:   cfg.AlbedoColor(),
		lastTick: time.Now(),
	}
	defer g.renderer.Close()

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Sphere raycaster")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
