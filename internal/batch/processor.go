package batch

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"sphere-raycaster/internal/imageio"
	"sphere-raycaster/internal/postprocess"
)

// Config holds the output settings for a batch run.
type Config struct {
	OutputDir string
	Format    imageio.Format
	Scale     int
	Workers   int
	// Progress shows a progress bar when stdout is a terminal.
	Progress bool
}

// Frame is one rendered frame handed off for encoding. Image must be a copy the
// caller no longer writes to (raster.Image.Snapshot).
type Frame struct {
	Index     int
	Image     *image.NRGBA
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Moved     bool
}

// Result holds the outcome of encoding one frame.
type Result struct {
	Index     int
	Path      string
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Moved     bool
	Success   bool
	Error     string
}

// FrameName is the file name used for frame index i.
func FrameName(i int, f imageio.Format) string {
	return fmt.Sprintf("frame_%05d%s", i, f.Ext())
}

// Encoder writes frames to disk on a worker pool. Frames are submitted from a
// single goroutine; results are collected until Wait.
type Encoder struct {
	cfg   Config
	total int
	start time.Time

	frames chan Frame
	wg     sync.WaitGroup
	bar    *progressbar.ProgressBar

	mu      sync.Mutex
	results []Result
}

// NewEncoder starts cfg.Workers encoding goroutines. total sizes the progress bar.
func NewEncoder(cfg Config, total int) *Encoder {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.Scale < 1 {
		cfg.Scale = 1
	}
	if cfg.Format == "" {
		cfg.Format = imageio.PNG
	}

	e := &Encoder{
		cfg:     cfg,
		total:   total,
		start:   time.Now(),
		frames:  make(chan Frame, cfg.Workers*2),
		bar:     newProgressBar(total, cfg.Progress),
		results: make([]Result, 0, total),
	}

	for w := 0; w < cfg.Workers; w++ {
		e.wg.Add(1)
		go func() {
			defer e.wg.Done()
			for f := range e.frames {
				r := processFrame(e.cfg, f)
				if !r.Success {
					slog.Warn("frame encode failed", "frame", r.Index, "err", r.Error)
				}
				e.mu.Lock()
				e.results = append(e.results, r)
				e.mu.Unlock()
				_ = e.bar.Add(1)
			}
		}()
	}
	return e
}

func newProgressBar(total int, enabled bool) *progressbar.ProgressBar {
	if enabled && term.IsTerminal(int(os.Stdout.Fd())) {
		return progressbar.Default(int64(total), "encoding")
	}
	return progressbar.DefaultSilent(int64(total), "encoding")
}

// Submit queues f for encoding. It blocks while all workers are busy.
func (e *Encoder) Submit(f Frame) {
	e.frames <- f
}

// Wait drains the queue and returns the results ordered by frame index.
func (e *Encoder) Wait() []Result {
	close(e.frames)
	e.wg.Wait()
	_ = e.bar.Close()

	slog.Debug("batch finished", "frames", len(e.results), "elapsed", time.Since(e.start))

	sort.Slice(e.results, func(i, j int) bool { return e.results[i].Index < e.results[j].Index })
	return e.results
}

// Run encodes all frames using a worker pool.
func Run(cfg Config, frames []Frame) []Result {
	e := NewEncoder(cfg, len(frames))
	for _, f := range frames {
		e.Submit(f)
	}
	return e.Wait()
}

func processFrame(cfg Config, f Frame) Result {
	res := Result{
		Index:     f.Index,
		Path:      FrameName(f.Index, cfg.Format),
		Position:  f.Position,
		Direction: f.Direction,
		Moved:     f.Moved,
	}

	if f.Image == nil {
		res.Error = "no image"
		return res
	}

	// Row 0 of a render is the bottom of the view.
	img := postprocess.FlipVertical(f.Image)
	img = postprocess.Upscale(img, cfg.Scale)

	if err := imageio.Save(filepath.Join(cfg.OutputDir, res.Path), img, cfg.Format); err != nil {
		res.Error = err.Error()
		return res
	}

	res.Success = true
	return res
}

// Failed counts unsuccessful results.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.Success {
			n++
		}
	}
	return n
}
