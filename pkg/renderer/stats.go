package renderer

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of samples taken
	SamplesPerPixel int           // Samples taken per pixel
	MaxDepth        int           // Maximum ray bounce depth
	NumWorkers      int           // Number of parallel workers used
	Duration        time.Duration // Wall-clock render time
}

// AverageSamples returns the mean number of samples per pixel
func (s RenderStats) AverageSamples() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(s.TotalPixels)
}

// progress counts finished rows and reports each new 10% step exactly once
type progress struct {
	done  atomic.Int64
	total int64
}

// rowDone records a finished row. Returns the new percentage step and true
// when this row crossed into it.
func (p *progress) rowDone() (int, bool) {
	done := p.done.Add(1)
	step := done * 10 / p.total
	if step == (done-1)*10/p.total {
		return 0, false
	}
	return int(step * 10), true
}
