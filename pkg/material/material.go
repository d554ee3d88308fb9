package material

import (
	"fmt"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// Kind identifies which scattering model a Material uses
type Kind uint8

const (
	KindNone Kind = iota // absorbs every ray
	KindLambertian
	KindMetal
	KindDielectric
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindLambertian:
		return "lambertian"
	case KindMetal:
		return "metal"
	case KindDielectric:
		return "dielectric"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Material is a small value describing how a surface scatters light.
// Only the fields relevant to Kind are meaningful. The zero value absorbs everything.
type Material struct {
	Kind            Kind
	Albedo          core.Color // Lambertian and Metal reflectance
	Fuzz            float64    // Metal roughness in [0, 1]
	RefractiveIndex float64    // Dielectric index of refraction
}

// None returns the absorbing material, used for intersection-only probes
func None() Material {
	return Material{Kind: KindNone}
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray   // The scattered ray
	Attenuation core.Color // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point    core.Point // Point of intersection
	Normal   core.Vec3  // Outward geometric normal, never flipped toward the ray
	T        float64    // Parameter t along the ray
	Material Material   // Copy of the material of the hit object
}

// Scatter computes the scattered ray and attenuation for a ray arriving at hit.
// Returns false if the ray is absorbed.
func (m Material) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	switch m.Kind {
	case KindLambertian:
		return m.scatterLambertian(hit, sampler)
	case KindMetal:
		return m.scatterMetal(rayIn, hit, sampler)
	case KindDielectric:
		return m.scatterDielectric(rayIn, hit, sampler)
	default:
		return ScatterResult{}, false
	}
}

func (m Material) String() string {
	switch m.Kind {
	case KindLambertian:
		return fmt.Sprintf("lambertian(albedo=%v)", m.Albedo)
	case KindMetal:
		return fmt.Sprintf("metal(albedo=%v, fuzz=%g)", m.Albedo, m.Fuzz)
	case KindDielectric:
		return fmt.Sprintf("dielectric(ior=%g)", m.RefractiveIndex)
	default:
		return m.Kind.String()
	}
}
