package material

import (
	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// NewMetal creates a new metal material
func NewMetal(albedo core.Color, fuzz float64) Material {
	// Clamp fuzz to valid range
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return Material{Kind: KindMetal, Albedo: albedo, Fuzz: fuzz}
}

// scatterMetal reflects about the normal and perturbs by fuzz
func (m Material) scatterMetal(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := rayIn.Direction.Reflect(hit.Normal)

	scattered := reflected.Normalize().Add(core.RandomUnitVector(sampler).Multiply(m.Fuzz))
	if scattered.NearZero() {
		scattered = reflected
	}

	// Rays perturbed below the surface are absorbed
	if scattered.Dot(hit.Normal) < 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, scattered),
		Attenuation: m.Albedo,
	}, true
}
