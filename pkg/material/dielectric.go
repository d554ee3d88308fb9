package material

import (
	"math"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// NewDielectric creates a new dielectric material (e.g. 1.5 for glass)
func NewDielectric(refractiveIndex float64) Material {
	return Material{Kind: KindDielectric, RefractiveIndex: refractiveIndex}
}

// scatterDielectric reflects or refracts with Fresnel-weighted probability.
// The hit normal is the outward normal; sidedness is derived here from the ray direction.
func (m Material) scatterDielectric(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	frontFace := rayIn.Direction.Dot(hit.Normal) <= 0
	normal := hit.Normal
	refractionRatio := m.RefractiveIndex // exiting (glass to air)
	if frontFace {
		refractionRatio = 1.0 / m.RefractiveIndex // entering (air to glass)
	} else {
		normal = normal.Negate()
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(-unitDirection.Dot(normal), 1.0)

	var direction core.Vec3
	if Reflectance(cosTheta, refractionRatio) > sampler.Get1D() {
		direction = unitDirection.Reflect(normal)
	} else if refracted, ok := unitDirection.Refract(normal, refractionRatio); ok {
		direction = refracted
	} else {
		// Total internal reflection
		direction = unitDirection.Reflect(normal)
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: core.White(),
	}, true
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	// R0 is the reflectance at normal incidence
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
