package geometry

import (
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// Kind identifies the primitive stored in a Shape
type Kind uint8

const (
	KindSphere Kind = iota
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Shape is a closed set of intersectable primitives, dispatched by Kind.
// Spheres are the only primitive.
type Shape struct {
	Kind   Kind
	Sphere Sphere
}

// Hit tests the ray against the shape for parameters strictly inside rayT
func (s Shape) Hit(ray core.Ray, rayT core.Interval) (material.HitRecord, bool) {
	switch s.Kind {
	case KindSphere:
		return s.Sphere.Hit(ray, rayT)
	default:
		return material.HitRecord{}, false
	}
}

// Material returns the surface material of the shape
func (s Shape) Material() material.Material {
	switch s.Kind {
	case KindSphere:
		return s.Sphere.Material
	default:
		return material.None()
	}
}

// HitClosest returns the shape with the nearest hit strictly inside rayT. The upper
// bound shrinks after every hit, so on equal T the earlier shape wins.
func HitClosest(shapes []Shape, ray core.Ray, rayT core.Interval) (Shape, material.HitRecord, bool) {
	var closestShape Shape
	var closestHit material.HitRecord
	hitAnything := false

	for _, shape := range shapes {
		if hit, isHit := shape.Hit(ray, rayT); isHit {
			hitAnything = true
			rayT.End = hit.T
			closestShape = shape
			closestHit = hit
		}
	}

	return closestShape, closestHit, hitAnything
}
