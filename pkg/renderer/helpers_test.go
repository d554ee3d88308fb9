package renderer

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// constSampler returns the same value for every dimension
type constSampler struct {
	value float64
}

func (s constSampler) Get1D() float64 { return s.value }
func (s constSampler) Get2D() core.Vec2 {
	return core.NewVec2(s.value, s.value)
}
func (s constSampler) Get3D() core.Vec3 {
	return core.NewVec3(s.value, s.value, s.value)
}

// testScene is a minimal Scene over a slice of shapes
type testScene []geometry.Shape

func (s testScene) Hit(ray core.Ray, rayT core.Interval) (material.HitRecord, bool) {
	_, hit, isHit := geometry.HitClosest(s, ray, rayT)
	return hit, isHit
}

// discardLogger drops all output
type discardLogger struct{}

func (discardLogger) Printf(format string, args ...interface{}) {}

// recordingLogger keeps every formatted message
type recordingLogger struct {
	messages chan string
}

func newRecordingLogger(capacity int) *recordingLogger {
	return &recordingLogger{messages: make(chan string, capacity)}
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	select {
	case l.messages <- format:
	default:
	}
}

// twoSphereScene is a small diffuse sphere resting on a large ground sphere
func twoSphereScene() testScene {
	diffuse := material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))
	return testScene{
		geometry.NewSphere(core.NewPoint(0, 0, -1), 0.5, diffuse).Shape(),
		geometry.NewSphere(core.NewPoint(0, -100.5, -1), 100, diffuse).Shape(),
	}
}

func newTestCamera(width, height, samples, depth int) *Camera {
	config := DefaultCameraConfig()
	config.Width = width
	config.Height = height
	camera := NewCamera(config)
	camera.SetSamplingConfig(SamplingConfig{SamplesPerPixel: samples, MaxDepth: depth})
	camera.SetLogger(discardLogger{})
	return camera
}
