package scene

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/renderer"
)

// NewDefaultScene creates the three-material scene: a diffuse center sphere between a
// hollow glass sphere and a polished metal sphere, resting on a large ground sphere
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Width:         400,
		Height:        225,
		VFov:          90.0,
		LookFrom:      core.NewPoint(0, 0, 0),
		LookAt:        core.NewPoint(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		DefocusAngle:  0.0,
		FocusDistance: 1.0,
	}

	// Apply any overrides using the reusable merge function
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

	materialGround := material.NewLambertian(core.NewColor(0.8, 0.8, 0.0))
	materialCenter := material.NewLambertian(core.NewColor(0.1, 0.2, 0.5))
	materialLeft := material.NewDielectric(1.5)
	materialRight := material.NewMetal(core.NewColor(0.8, 0.6, 0.2), 0.0)

	s.AddSphere(core.NewPoint(0, -100.5, -1), 100, materialGround)
	s.AddSphere(core.NewPoint(0, 0, -1), 0.5, materialCenter)
	s.AddSphere(core.NewPoint(-1, 0, -1), 0.5, materialLeft)
	// Negative radius flips the normals inward, hollowing out the glass sphere
	s.AddSphere(core.NewPoint(-1, 0, -1), -0.4, materialLeft)
	s.AddSphere(core.NewPoint(1, 0, -1), 0.5, materialRight)

	return s
}
