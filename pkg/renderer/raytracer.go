package renderer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/df07/go-offline-raytracer/pkg/core"
	"github.com/df07/go-offline-raytracer/pkg/integrator"
	"github.com/df07/go-offline-raytracer/pkg/output"
)

// ErrInvalidConfig is returned when a SamplingConfig cannot be rendered
var ErrInvalidConfig = errors.New("invalid sampling config")

// defaultSeed keeps renders reproducible unless a sampler is supplied
const defaultSeed = 42

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int // Image width in pixels
	Height          int // Image height in pixels
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Validate reports the first field that would make rendering meaningless
func (c SamplingConfig) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel %d", ErrInvalidConfig, c.SamplesPerPixel)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max depth %d", ErrInvalidConfig, c.MaxDepth)
	}
	return nil
}

// ProgressFunc is called after each completed row
type ProgressFunc func(rowsDone, totalRows int)

// Raytracer handles the rendering process
type Raytracer struct {
	world      integrator.World
	camera     *Camera
	integrator integrator.Integrator
	config     SamplingConfig
	sampler    core.Sampler
	logger     core.Logger
	progress   ProgressFunc
}

// NewRaytracer creates a new raytracer
func NewRaytracer(world integrator.World, camera *Camera, integ integrator.Integrator, config SamplingConfig) *Raytracer {
	return &Raytracer{
		world:      world,
		camera:     camera,
		integrator: integ,
		config:     config,
		sampler:    core.NewSeededSampler(defaultSeed), // Deterministic for testing
		logger:     core.NopLogger{},
	}
}

// SetSampler replaces the random source used for jitter and scattering
func (rt *Raytracer) SetSampler(sampler core.Sampler) {
	rt.sampler = sampler
}

// SetLogger sets the logger for render progress
func (rt *Raytracer) SetLogger(logger core.Logger) {
	rt.logger = logger
}

// SetProgress registers a per-row progress callback
func (rt *Raytracer) SetProgress(progress ProgressFunc) {
	rt.progress = progress
}

// Render traces every pixel, top row first, and returns the quantized image.
// The context is checked between rows.
func (rt *Raytracer) Render(ctx context.Context) (*output.Image, RenderStats, error) {
	if err := rt.config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}

	width, height := rt.config.Width, rt.config.Height
	img := output.NewImage(width, height)
	stats := RenderStats{
		SamplesPerPixel: rt.config.SamplesPerPixel,
		MaxDepth:        rt.config.MaxDepth,
	}
	start := time.Now()

	rt.logger.Printf("Rendering %dx%d at %d spp, depth %d\n",
		width, height, rt.config.SamplesPerPixel, rt.config.MaxDepth)

	rowsDone := 0
	for j := height - 1; j >= 0; j-- {
		if err := ctx.Err(); err != nil {
			return nil, stats, fmt.Errorf("render stopped after %d of %d rows: %w", rowsDone, height, err)
		}

		for i := 0; i < width; i++ {
			pixel := rt.renderPixel(i, j)
			img.Plot(i, j, output.NewColor(pixel.GetColor()))
			stats.TotalPixels++
			stats.TotalSamples += pixel.SampleCount
		}

		rowsDone++
		if rt.progress != nil {
			rt.progress(rowsDone, height)
		}
	}

	stats.Elapsed = time.Since(start)
	rt.logger.Printf("Rendered %d samples in %v\n", stats.TotalSamples, stats.Elapsed)
	return img, stats, nil
}

// renderPixel averages jittered samples across the pixel's footprint
func (rt *Raytracer) renderPixel(i, j int) PixelStats {
	var ps PixelStats
	w, h := float32(rt.config.Width), float32(rt.config.Height)
	for range rt.config.SamplesPerPixel {
		u := (float32(i) + rt.sampler.Get1D()) / w
		v := (float32(j) + rt.sampler.Get1D()) / h
		ray := rt.camera.GetRay(u, v)
		ps.AddSample(rt.integrator.RayColor(ray, rt.world, rt.sampler, rt.config.MaxDepth))
	}
	return ps
}
