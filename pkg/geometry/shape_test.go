package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

func TestShape_DispatchesToSphere(t *testing.T) {
	mat := material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))
	sphere := NewSphere(core.NewPoint(0, 0, -1), 0.5, mat)
	shape := sphere.Shape()

	if shape.Kind != KindSphere {
		t.Fatalf("Expected sphere kind, got %v", shape.Kind)
	}
	if shape.Material() != mat {
		t.Errorf("Expected material %v, got %v", mat, shape.Material())
	}

	ray := core.NewRay(core.NewPoint(0, 0, 0), core.NewVec3(0, 0, -1))
	for _, interval := range []core.Interval{
		core.NewInterval(0, math.Inf(1)),
		core.NewInterval(0.6, math.Inf(1)),
		core.NewInterval(0, 0.4),
	} {
		gotHit, gotOK := shape.Hit(ray, interval)
		wantHit, wantOK := sphere.Hit(ray, interval)
		if gotOK != wantOK || gotHit != wantHit {
			t.Errorf("Interval %v: shape hit %+v (%t), sphere hit %+v (%t)", interval, gotHit, gotOK, wantHit, wantOK)
		}
	}
}

func TestShape_UnknownKindMisses(t *testing.T) {
	shape := Shape{Kind: Kind(7)}
	ray := core.NewRay(core.NewPoint(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := shape.Hit(ray, core.NewInterval(0, math.Inf(1))); isHit {
		t.Error("Unknown shape kind should never be hit")
	}
	if shape.Material().Kind != material.KindNone {
		t.Errorf("Unknown shape should report absorbing material, got %v", shape.Material())
	}
	if shape.Kind.String() != "kind(7)" {
		t.Errorf("Unexpected kind string %q", shape.Kind.String())
	}
}

func TestHitClosest(t *testing.T) {
	red := material.NewLambertian(core.NewColor(1, 0, 0))
	green := material.NewLambertian(core.NewColor(0, 1, 0))
	blue := material.NewLambertian(core.NewColor(0, 0, 1))

	far := NewSphere(core.NewPoint(0, 0, -10), 1, red).Shape()
	near := NewSphere(core.NewPoint(0, 0, -4), 1, green).Shape()
	twin := NewSphere(core.NewPoint(0, 0, -4), 1, blue).Shape()

	ray := core.NewRay(core.NewPoint(0, 0, 0), core.NewVec3(0, 0, -1))

	tests := []struct {
		name      string
		shapes    []Shape
		interval  core.Interval
		wantHit   bool
		wantShape Shape
		wantT     float64
	}{
		{"empty", nil, core.Forward(0), false, Shape{}, 0},
		{"near after far", []Shape{far, near}, core.Forward(0), true, near, 3},
		{"near before far", []Shape{near, far}, core.Forward(0), true, near, 3},
		{"equal t keeps first", []Shape{near, twin}, core.Forward(0), true, near, 3},
		{"equal t keeps first reversed", []Shape{twin, near}, core.Forward(0), true, twin, 3},
		{"exit of near sphere", []Shape{far, near}, core.Forward(4), true, near, 5},
		{"past near sphere", []Shape{far, near}, core.Forward(5.5), true, far, 9},
		{"window between", []Shape{far, near}, core.NewInterval(5.5, 8.5), false, Shape{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, hit, isHit := HitClosest(tt.shapes, ray, tt.interval)
			if isHit != tt.wantHit {
				t.Fatalf("Expected hit=%t, got %t", tt.wantHit, isHit)
			}
			if !isHit {
				return
			}
			if shape != tt.wantShape {
				t.Errorf("Expected shape %+v, got %+v", tt.wantShape, shape)
			}
			if math.Abs(hit.T-tt.wantT) > 1e-12 {
				t.Errorf("Expected t=%f, got %f", tt.wantT, hit.T)
			}
			if hit.Material != tt.wantShape.Material() {
				t.Errorf("Expected material %v, got %v", tt.wantShape.Material(), hit.Material)
			}
		})
	}
}
