package scene

import (
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

func TestScene_Hit_Closest(t *testing.T) {
	s := NewScene()
	s.AddSphere(core.NewPoint(2, 0, 0), 1, material.None())
	s.AddSphere(core.NewPoint(8, 0, 0), 1, material.None())
	s.AddSphere(core.NewPoint(5, 0, 0), 1, material.None())

	ray := core.NewRay(core.NewPoint(0, 0, 0), core.NewVec3(1, 0, 0))

	tests := []struct {
		name     string
		interval core.Interval
		expected float64
		isHit    bool
	}{
		{"nearest sphere", core.NewInterval(0, math.Inf(1)), 1, true},
		{"exit of nearest sphere", core.NewInterval(1, math.Inf(1)), 3, true},
		{"middle sphere inserted last", core.NewInterval(3, math.Inf(1)), 4, true},
		{"far sphere", core.NewInterval(6, math.Inf(1)), 7, true},
		{"beyond everything", core.NewInterval(9, math.Inf(1)), 0, false},
		{"window between spheres", core.NewInterval(3.5, 3.9), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := s.Hit(ray, tt.interval)
			if isHit != tt.isHit {
				t.Fatalf("Expected hit=%t, got %t", tt.isHit, isHit)
			}
			if isHit && hit.T != tt.expected {
				t.Errorf("Expected t=%f, got %f", tt.expected, hit.T)
			}
		})
	}
}

func TestScene_Hit_InsertionOrderDoesNotMatter(t *testing.T) {
	red := material.NewLambertian(core.NewColor(1, 0, 0))
	blue := material.NewLambertian(core.NewColor(0, 0, 1))

	s := NewScene()
	s.AddSphere(core.NewPoint(8, 0, 0), 1, red)
	s.AddSphere(core.NewPoint(7.9, 0, 0), 1, blue)

	ray := core.NewRay(core.NewPoint(0, 0, 0), core.NewVec3(1, 0, 0))
	hit, isHit := s.Hit(ray, core.NewInterval(0, math.Inf(1)))
	if !isHit {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-6.9) > 1e-12 {
		t.Errorf("Expected t=6.9, got %f", hit.T)
	}
	if hit.Material != blue {
		t.Errorf("Expected material of the closer sphere %v, got %v", blue, hit.Material)
	}
}

func TestScene_Hit_Empty(t *testing.T) {
	s := NewScene()
	ray := core.NewRay(core.NewPoint(0, 0, 0), core.NewVec3(0, 0, -1))
	if _, isHit := s.Hit(ray, core.NewInterval(math.Inf(-1), math.Inf(1))); isHit {
		t.Error("Empty scene should never be hit")
	}
	if s.GetPrimitiveCount() != 0 {
		t.Errorf("Expected 0 primitives, got %d", s.GetPrimitiveCount())
	}
}

func TestScene_NewCamera(t *testing.T) {
	s := NewScene()
	s.CameraConfig.Width = 8
	s.CameraConfig.Height = 4
	s.SamplingConfig.SamplesPerPixel = 3

	camera := s.NewCamera()
	if camera.CameraConfig() != s.CameraConfig {
		t.Errorf("Expected camera config %+v, got %+v", s.CameraConfig, camera.CameraConfig())
	}
	if camera.SamplingConfig() != s.SamplingConfig {
		t.Errorf("Expected sampling config %+v, got %+v", s.SamplingConfig, camera.SamplingConfig())
	}
}

func TestScene_Hit_SingleShapeMatchesShape(t *testing.T) {
	glass := material.NewDielectric(1.5)
	sphere := geometry.NewSphere(core.NewPoint(0, 0, -5), 1, glass)

	s := NewScene()
	s.Add(sphere.Shape())

	rays := []struct {
		name string
		ray  core.Ray
	}{
		{"from outside", core.NewRay(core.NewPoint(0, 0, 0), core.NewVec3(0, 0, -1))},
		{"from inside", core.NewRay(core.NewPoint(0, 0, -5), core.NewVec3(0, 0.5, -0.5))},
		{"tangent", core.NewRay(core.NewPoint(1, 0, 0), core.NewVec3(0, 0, -1))},
		{"miss", core.NewRay(core.NewPoint(0, 0, 0), core.NewVec3(0, 1, 0))},
	}
	lows := []float64{math.Inf(-1), -2, 0, 0.001, 3.5, 4, 4.5, 5, 6, 7}
	highs := []float64{1, 4, 5, 6, math.Inf(1)}

	for _, r := range rays {
		t.Run(r.name, func(t *testing.T) {
			for _, lo := range lows {
				for _, hi := range highs {
					interval := core.NewInterval(lo, hi)
					want, wantHit := sphere.Hit(r.ray, interval)
					got, gotHit := s.Hit(r.ray, interval)
					if gotHit != wantHit || got != want {
						t.Errorf("(%v, %v): scene gave %t %+v, sphere gave %t %+v",
							lo, hi, gotHit, got, wantHit, want)
					}

					shape, shapeHit, isHit := s.HitShape(r.ray, interval)
					if isHit != wantHit || shapeHit != want {
						t.Errorf("(%v, %v): HitShape disagrees with Hit", lo, hi)
					}
					if isHit && shape != sphere.Shape() {
						t.Errorf("(%v, %v): expected the only shape, got %+v", lo, hi, shape)
					}
				}
			}
		})
	}
}

func TestScene_HitShape_ReportsClosestShape(t *testing.T) {
	s := NewScene()
	s.AddSphere(core.NewPoint(0, 0, -10), 1, material.NewMetal(core.NewColor(0.9, 0.9, 0.9), 0))
	s.AddSphere(core.NewPoint(0, 0, -4), 1, material.NewLambertian(core.NewColor(0.2, 0.4, 0.6)))

	ray := core.NewRay(core.NewPoint(0, 0, 0), core.NewVec3(0, 0, -1))
	shape, hit, isHit := s.HitShape(ray, core.Forward(0))
	if !isHit {
		t.Fatal("Expected hit")
	}
	if shape != s.Shapes[1] {
		t.Errorf("Expected the nearer sphere, got %+v", shape)
	}
	if hit.T != 3 {
		t.Errorf("Expected t=3, got %f", hit.T)
	}
}
