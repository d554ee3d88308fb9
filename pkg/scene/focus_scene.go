package scene

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
)

// NewFocusScene views the default scene through a narrow lens focused on the center sphere
func NewFocusScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	lookFrom := core.NewPoint(-2, 2, 1)
	lookAt := core.NewPoint(0, 0, -1)

	defaultCameraConfig := renderer.CameraConfig{
		Width:         400,
		Height:        225,
		VFov:          20.0,
		LookFrom:      lookFrom,
		LookAt:        lookAt,
		Up:            core.NewVec3(0, 1, 0),
		DefocusAngle:  10.0,                               // Strong depth of field blur
		FocusDistance: lookFrom.Subtract(lookAt).Length(), // Focus on the center sphere
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := &Scene{
		CameraConfig: cameraConfig,
		SamplingConfig: renderer.SamplingConfig{
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
	}

	s.AddSphere(core.NewPoint(0, -100.5, -1), 100, material.NewLambertian(core.NewColor(0.8, 0.8, 0.0)))
	s.AddSphere(core.NewPoint(0, 0, -1.2), 0.5, material.NewLambertian(core.NewColor(0.1, 0.2, 0.5)))
	s.AddSphere(core.NewPoint(-1, 0, -1), 0.5, material.NewDielectric(1.5))
	s.AddSphere(core.NewPoint(-1, 0, -1), -0.4, material.NewDielectric(1.5))
	s.AddSphere(core.NewPoint(1, 0, -1), 0.5, material.NewMetal(core.NewColor(0.8, 0.6, 0.2), 1.0))

	return s
}
