package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 10,
		MaxDepth:        10,
	}
}

// Validate checks the sampling configuration before rendering
func (s SamplingConfig) Validate() error {
	if s.SamplesPerPixel < 1 {
		return fmt.Errorf("samples per pixel must be at least 1, got %d", s.SamplesPerPixel)
	}
	if s.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", s.MaxDepth)
	}
	return nil
}

// Scene interface to avoid circular imports
type Scene interface {
	Hit(ray core.Ray, rayT core.Interval) (material.HitRecord, bool)
}

// ShadowAcneBias is the lower bound of the hit interval for every traced ray
const ShadowAcneBias = 0.001

// RayColor returns the radiance carried back along ray, following at most depth bounces
func RayColor(ray core.Ray, depth int, scene Scene, sampler core.Sampler) core.Color {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Black()
	}

	hit, isHit := scene.Hit(ray, core.Forward(ShadowAcneBias))
	if !isHit {
		return Background(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		return core.Black() // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyColor(RayColor(scatter.Scattered, depth-1, scene, sampler))
}

// Background returns the sky gradient for a ray that escapes the scene
func Background(ray core.Ray) core.Color {
	unitDirection := ray.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	a := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-a)*white + a*blue
	return core.White().Multiply(1.0 - a).Add(core.NewColor(0.5, 0.7, 1.0).Multiply(a))
}

// renderRow fills one image row, averaging SamplesPerPixel samples per pixel
func (c *Camera) renderRow(scene Scene, y int, row []core.Color, sampler core.Sampler) {
	samples := c.sampling.SamplesPerPixel
	for x := range row {
		colorAccum := core.Black()
		for sample := 0; sample < samples; sample++ {
			ray := c.GetRay(x, y, sampler)
			colorAccum = colorAccum.Add(RayColor(ray, c.sampling.MaxDepth, scene, sampler))
		}
		row[x] = colorAccum.Divide(float64(samples))
	}
}

// rowSeed derives the seed of a row's random stream from the base seed.
// The pair is packed and passed through a splitmix64 finalizer so that
// nearby seeds and rows land on unrelated streams.
func rowSeed(seed int64, row int) int64 {
	z := uint64(seed)<<32 ^ uint64(uint32(row))
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}

// Render renders the scene and returns one linear color per pixel, row-major from the
// top-left. Colors are neither gamma corrected nor clamped.
func (c *Camera) Render(scene Scene) ([]core.Color, RenderStats, error) {
	return c.RenderContext(context.Background(), scene)
}

// RenderContext is Render with cancellation. Rows not yet started when ctx is done
// are skipped and the context's error is returned.
func (c *Camera) RenderContext(ctx context.Context, scene Scene) ([]core.Color, RenderStats, error) {
	if err := c.config.Validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("invalid camera config: %w", err)
	}
	if err := c.sampling.Validate(); err != nil {
		return nil, RenderStats{}, fmt.Errorf("invalid sampling config: %w", err)
	}
	c.initialize()

	width, height := c.config.Width, c.config.Height
	pixels := make([]core.Color, width*height)
	logger := c.logger
	if logger == nil {
		logger = NewDefaultLogger()
	}

	rows := &progress{total: int64(height)}
	renderTask := func(task RowTask) RowResult {
		if ctx.Err() != nil {
			return RowResult{Row: task.Row}
		}
		c.renderRow(scene, task.Row, task.Pixels, core.NewSeededSampler(task.Seed))
		if percent, crossed := rows.rowDone(); crossed {
			logger.Printf("Render progress: %d%%\n", percent)
		}
		return RowResult{Row: task.Row, Samples: len(task.Pixels) * c.sampling.SamplesPerPixel}
	}

	pool := NewWorkerPool(renderTask, height, c.numWorkers)
	logger.Printf("Rendering %dx%d, %d samples/pixel, max depth %d, %d workers\n",
		width, height, c.sampling.SamplesPerPixel, c.sampling.MaxDepth, pool.GetNumWorkers())

	startTime := time.Now()
	pool.Start()
	for y := 0; y < height; y++ {
		pool.SubmitTask(RowTask{
			Row:    y,
			Seed:   rowSeed(c.seed, y),
			Pixels: pixels[y*width : (y+1)*width],
		})
	}
	pool.Stop()

	stats := RenderStats{
		TotalPixels:     width * height,
		SamplesPerPixel: c.sampling.SamplesPerPixel,
		MaxDepth:        c.sampling.MaxDepth,
		NumWorkers:      pool.GetNumWorkers(),
	}
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.TotalSamples += result.Samples
	}
	stats.Duration = time.Since(startTime)

	if err := ctx.Err(); err != nil {
		logger.Printf("Render cancelled after %v\n", stats.Duration)
		return nil, stats, fmt.Errorf("render cancelled: %w", err)
	}

	logger.Printf("Render completed in %v\n", stats.Duration)
	return pixels, stats, nil
}
