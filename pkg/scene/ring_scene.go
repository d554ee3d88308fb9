package scene

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
)

// NewRingScene creates a glass and a mirror sphere surrounded by a ring of small
// diffuse spheres whose size and color vary around the circle
func NewRingScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	lookFrom := core.NewPoint(10, 2.5, 5)
	lookAt := core.NewPoint(-4, 0, -2)

	defaultCameraConfig := renderer.CameraConfig{
		Width:         600,
		Height:        300,
		VFov:          20.0,
		LookFrom:      lookFrom,
		LookAt:        lookAt,
		Up:            core.NewVec3(0, 1, 0),
		DefocusAngle:  0.18,
		FocusDistance: lookFrom.Subtract(lookAt).Length(),
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	s := &Scene{
		CameraConfig: cameraConfig,
		SamplingConfig: renderer.SamplingConfig{
			SamplesPerPixel: 50,
			MaxDepth:        20,
		},
	}

	s.AddSphere(core.NewPoint(0, -1000, 0), 1000, material.NewLambertian(core.NewColor(0.88, 0.96, 0.7)))
	s.AddSphere(core.NewPoint(1.5, 1, 0), 1, material.NewDielectric(1.5))
	s.AddSphere(core.NewPoint(-1.5, 1, 0), 1, material.NewMetal(core.NewColor(0.8, 0.9, 0.8), 0))

	const ringRadius = 3.0
	for deg := 0; deg < 360; deg += 15 {
		x := math.Sin(degreesToRadians(float64(deg)))
		z := math.Cos(degreesToRadians(float64(deg)))
		radius := 0.33 + x*z/9

		// Lambertian albedo must stay non-negative, so map the ring position into [0, 1]
		albedo := core.NewColor((x+1)/2, 0.5+x*z/2, (z+1)/2)
		s.AddSphere(core.NewPoint(ringRadius*x, radius, ringRadius*z), radius, material.NewLambertian(albedo))
	}

	return s
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
