package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/output"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// options holds the parsed command line flags. Zero values keep the scene's defaults.
type options struct {
	sceneType string
	width     int
	height    int
	samples   int
	depth     int
	workers   int
	seed      int64
	format    string
	output    string
}

func main() {
	var opts options

	// Parse command line flags
	flag.StringVar(&opts.sceneType, "scene", "default", "Scene type: "+strings.Join(scene.IDs(), ", "))
	flag.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&opts.height, "height", 0, "Image height in pixels (0 = scene default)")
	flag.IntVar(&opts.samples, "samples", 0, "Samples per pixel (0 = scene default)")
	flag.IntVar(&opts.depth, "depth", -1, "Maximum ray bounce depth (-1 = scene default)")
	flag.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.Int64Var(&opts.seed, "seed", 42, "Random seed; the same seed reproduces the same image")
	flag.StringVar(&opts.format, "format", "png", "Output format: png, jpg or ppm")
	flag.StringVar(&opts.output, "output", "", "Output file (default output/<scene>/render_<timestamp>.<format>)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		showHelp()
		return
	}

	if err := run(opts, renderer.NewDefaultLogger()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func showHelp() {
	fmt.Println("Recursive Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.List() {
		fmt.Printf("  %-10s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.<format>")
}

// run renders the selected scene and writes the image
func run(opts options, logger core.Logger) error {
	s, err := createScene(opts.sceneType)
	if err != nil {
		return err
	}
	applyOverrides(s, opts)

	filename := opts.output
	if filename == "" {
		outputDir := createOutputDir(opts.sceneType)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, opts.format))
	}
	// Fail before rendering if the format is unknown
	if _, err := output.WriterFor(filename); err != nil {
		return err
	}

	logger.Printf("Using %s scene (%d spheres)...\n", opts.sceneType, s.GetPrimitiveCount())

	camera := s.NewCamera()
	camera.SetNumWorkers(opts.workers)
	camera.SetSeed(opts.seed)
	camera.SetLogger(logger)

	pixels, stats, err := camera.Render(s)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	logger.Printf("Samples per pixel: %.1f, %d workers\n", stats.AverageSamples(), stats.NumWorkers)

	if err := output.Save(filename, pixels, s.CameraConfig.Width, s.CameraConfig.Height); err != nil {
		return err
	}

	logger.Printf("Render saved as %s\n", filename)
	return nil
}

// createScene creates a scene based on the scene type
func createScene(sceneType string) (*scene.Scene, error) {
	return scene.Create(sceneType)
}

// applyOverrides replaces scene defaults with the non-zero flag values
func applyOverrides(s *scene.Scene, opts options) {
	s.CameraConfig = renderer.MergeCameraConfig(s.CameraConfig, renderer.CameraConfig{
		Width:  opts.width,
		Height: opts.height,
	})
	if opts.samples > 0 {
		s.SamplingConfig.SamplesPerPixel = opts.samples
	}
	if opts.depth >= 0 {
		s.SamplingConfig.MaxDepth = opts.depth
	}
}

// createOutputDir returns the output directory for a scene type
func createOutputDir(sceneType string) string {
	return filepath.Join("output", sceneType)
}
