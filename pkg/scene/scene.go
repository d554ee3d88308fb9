package scene

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Shapes         []geometry.Shape // Objects in the scene, in insertion order
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
}

// NewScene creates an empty scene with default camera and sampling configuration
func NewScene() *Scene {
	return &Scene{
		Shapes:         make([]geometry.Shape, 0),
		CameraConfig:   renderer.DefaultCameraConfig(),
		SamplingConfig: renderer.DefaultSamplingConfig(),
	}
}

// Add appends a shape to the scene
func (s *Scene) Add(shape geometry.Shape) {
	s.Shapes = append(s.Shapes, shape)
}

// AddSphere appends a sphere with the given material to the scene
func (s *Scene) AddSphere(center core.Point, radius float64, mat material.Material) {
	s.Add(geometry.NewSphere(center, radius, mat).Shape())
}

// Hit returns the closest intersection strictly inside rayT
func (s *Scene) Hit(ray core.Ray, rayT core.Interval) (material.HitRecord, bool) {
	_, hit, isHit := s.HitShape(ray, rayT)
	return hit, isHit
}

// HitShape is Hit that also reports which shape was hit
func (s *Scene) HitShape(ray core.Ray, rayT core.Interval) (geometry.Shape, material.HitRecord, bool) {
	return geometry.HitClosest(s.Shapes, ray, rayT)
}

// NewCamera creates a camera configured for this scene
func (s *Scene) NewCamera() *renderer.Camera {
	camera := renderer.NewCamera(s.CameraConfig)
	camera.SetSamplingConfig(s.SamplingConfig)
	return camera
}

// GetPrimitiveCount returns the total number of primitive objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}
