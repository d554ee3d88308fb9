package scene

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
)

// NewDiffuseScene creates a single gray sphere on a gray ground sphere, lit only by the sky
func NewDiffuseScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.DefaultCameraConfig()
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(cameraConfig, cameraOverrides[0])
	}

	s := &Scene{
		CameraConfig: cameraConfig,
		SamplingConfig: renderer.SamplingConfig{
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
	}

	gray := material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))
	s.AddSphere(core.NewPoint(0, 0, -1), 0.5, gray)
	s.AddSphere(core.NewPoint(0, -100.5, -1), 100, gray)

	return s
}
