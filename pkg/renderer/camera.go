package renderer

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// CameraConfig describes the image resolution and viewing geometry
type CameraConfig struct {
	Width         int        // Image width in pixels
	Height        int        // Image height in pixels
	VFov          float64    // Vertical field of view in degrees
	LookFrom      core.Point // Camera position
	LookAt        core.Point // Point the camera looks at
	Up            core.Vec3  // Camera-relative up direction
	DefocusAngle  float64    // Variation angle of rays through each pixel, in degrees (0 = pinhole)
	FocusDistance float64    // Distance from LookFrom to the plane of perfect focus
}

// DefaultCameraConfig returns a pinhole camera at the origin looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Width:         400,
		Height:        225,
		VFov:          90.0,
		LookFrom:      core.NewPoint(0, 0, 0),
		LookAt:        core.NewPoint(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		DefocusAngle:  0.0,
		FocusDistance: 1.0,
	}
}

// MergeCameraConfig applies the non-zero fields of override on top of base
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base

	if override.Width != 0 {
		result.Width = override.Width
	}
	if override.Height != 0 {
		result.Height = override.Height
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.LookFrom != (core.Point{}) {
		result.LookFrom = override.LookFrom
	}
	if override.LookAt != (core.Point{}) {
		result.LookAt = override.LookAt
	}
	if override.Up != (core.Vec3{}) {
		result.Up = override.Up
	}
	if override.DefocusAngle != 0 {
		result.DefocusAngle = override.DefocusAngle
	}
	if override.FocusDistance != 0 {
		result.FocusDistance = override.FocusDistance
	}

	return result
}

// Validate checks the camera configuration before rendering
func (c CameraConfig) Validate() error {
	if c.Width < 1 || c.Height < 1 {
		return fmt.Errorf("image size must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	if c.FocusDistance <= 0 {
		return fmt.Errorf("focus distance must be positive, got %g", c.FocusDistance)
	}
	if c.LookFrom == c.LookAt {
		return errors.New("look-from and look-at must differ")
	}
	if c.LookFrom.Subtract(c.LookAt).Cross(c.Up).NearZero() {
		return errors.New("up vector must not be parallel to the view direction")
	}
	return nil
}

// Camera owns the viewport geometry and drives rendering
type Camera struct {
	config     CameraConfig
	sampling   SamplingConfig
	numWorkers int         // 0 = use CPU count
	seed       int64       // Base seed for the per-row random streams
	logger     core.Logger // Logger for rendering output

	// Derived by initialize, read-only while rendering
	pixel00      core.Point // Center of pixel (0, 0), the top-left pixel
	pixelDeltaU  core.Vec3  // Offset to the pixel to the right
	pixelDeltaV  core.Vec3  // Offset to the pixel below
	defocusDiskU core.Vec3  // Defocus disk horizontal radius
	defocusDiskV core.Vec3  // Defocus disk vertical radius
}

// NewCamera creates a camera with the given configuration and default sampling
func NewCamera(config CameraConfig) *Camera {
	return &Camera{
		config:   config,
		sampling: DefaultSamplingConfig(),
		seed:     42,
		logger:   NewDefaultLogger(),
	}
}

// SetCameraConfig replaces the camera configuration
func (c *Camera) SetCameraConfig(config CameraConfig) {
	c.config = config
}

// SetSamplingConfig replaces the sampling configuration
func (c *Camera) SetSamplingConfig(config SamplingConfig) {
	c.sampling = config
}

// SetNumWorkers sets the number of render goroutines (0 = use CPU count)
func (c *Camera) SetNumWorkers(numWorkers int) {
	c.numWorkers = numWorkers
}

// SetSeed sets the base seed. Renders with the same seed produce identical pixels.
func (c *Camera) SetSeed(seed int64) {
	c.seed = seed
}

// SetLogger sets the logger for rendering output
func (c *Camera) SetLogger(logger core.Logger) {
	c.logger = logger
}

// CameraConfig returns the current camera configuration
func (c *Camera) CameraConfig() CameraConfig {
	return c.config
}

// SamplingConfig returns the current sampling configuration
func (c *Camera) SamplingConfig() SamplingConfig {
	return c.sampling
}

// initialize derives the viewport from the configuration
func (c *Camera) initialize() {
	cfg := c.config

	// Viewport dimensions
	aspectRatio := float64(cfg.Width) / float64(cfg.Height)
	h := math.Tan(degreesToRadians(cfg.VFov) / 2)
	viewportHeight := 2 * h * cfg.FocusDistance
	viewportWidth := viewportHeight * aspectRatio

	// Orthonormal camera basis
	w := cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	u := cfg.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	c.pixelDeltaU = viewportU.Divide(float64(cfg.Width))
	c.pixelDeltaV = viewportV.Divide(float64(cfg.Height))

	viewportTopLeft := cfg.LookFrom.
		SubtractVec(w.Multiply(cfg.FocusDistance)).
		SubtractVec(viewportU.Divide(2)).
		SubtractVec(viewportV.Divide(2))
	c.pixel00 = viewportTopLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	defocusRadius := cfg.FocusDistance * math.Tan(degreesToRadians(cfg.DefocusAngle/2))
	c.defocusDiskU = u.Multiply(defocusRadius)
	c.defocusDiskV = v.Multiply(defocusRadius)
}

// GetRay generates a jittered ray through pixel (x, y), counted from the top-left
func (c *Camera) GetRay(x, y int, sampler core.Sampler) core.Ray {
	pixelSample := c.pixelCenter(x, y).Add(c.samplePixelSquare(sampler))

	origin := c.config.LookFrom
	if c.config.DefocusAngle > 0 {
		origin = c.sampleDefocusDisk(sampler)
	}

	return core.NewRay(origin, pixelSample.Subtract(origin))
}

// CenterRay returns the unjittered ray from the lens center through the center of
// pixel (x, y). It initializes the camera, so it may be called before Render.
func (c *Camera) CenterRay(x, y int) (core.Ray, error) {
	if err := c.config.Validate(); err != nil {
		return core.Ray{}, fmt.Errorf("invalid camera config: %w", err)
	}
	c.initialize()

	origin := c.config.LookFrom
	return core.NewRay(origin, c.pixelCenter(x, y).Subtract(origin)), nil
}

func (c *Camera) pixelCenter(x, y int) core.Point {
	return c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(x))).
		Add(c.pixelDeltaV.Multiply(float64(y)))
}

// samplePixelSquare returns an offset uniform in [-0.5, 0.5) along both pixel deltas
func (c *Camera) samplePixelSquare(sampler core.Sampler) core.Vec3 {
	s := sampler.Get2D()
	return c.pixelDeltaU.Multiply(s.X - 0.5).Add(c.pixelDeltaV.Multiply(s.Y - 0.5))
}

// sampleDefocusDisk returns a uniformly distributed point on the defocus disk
func (c *Camera) sampleDefocusDisk(sampler core.Sampler) core.Point {
	p := core.RandomInUnitDisk(sampler)
	return c.config.LookFrom.
		Add(c.defocusDiskU.Multiply(p.X)).
		Add(c.defocusDiskV.Multiply(p.Y))
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
