package material

import (
	"math"

	"github.com/df07/go-batch-raytracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both
// reflect and refract. Dielectrics never absorb; all energy is either
// reflected or refracted.
type Dielectric struct {
	RefractionIndex float64 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractionIndex float64) *Dielectric {
	return &Dielectric{RefractionIndex: refractionIndex}
}

// Scatter implements the Material interface for dielectric scattering.
// Per element it picks reflection or refraction: total internal reflection
// forces a reflect, otherwise the Schlick reflectance probability is
// compared against an independent uniform draw (Russian-roulette Fresnel,
// avoiding splitting energy into two rays). Both candidate directions are
// computed for every element and then selected by the decision, since a
// batch may mix total-internal-reflection and pass-through elements.
func (d *Dielectric) Scatter(raysIn []core.Ray, hit HitBatch, sampler core.BatchSampler) ScatterBatch {
	n := batchSize(raysIn, hit)
	draws := sampler.Uniform(n)

	// Clear glass: no tinting
	white := core.NewVec3(1.0, 1.0, 1.0)

	result := NewScatterBatch(n)
	for i := 0; i < n; i++ {
		// Entering the medium uses 1/index (from air), exiting uses the
		// index directly (to air)
		refractionRatio := d.RefractionIndex
		if hit.FrontFace[i] {
			refractionRatio = 1.0 / d.RefractionIndex
		}

		unitDirection := raysIn[i].Direction.Normalize()
		cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal[i]), 1.0)
		sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

		// No real refraction angle exists beyond the critical angle
		cannotRefract := refractionRatio*sinTheta > 1.0
		shouldReflect := cannotRefract || schlick(cosTheta, refractionRatio) > draws[i]

		reflected := reflectVector(unitDirection, hit.Normal[i])
		refracted := refractVector(unitDirection, hit.Normal[i], refractionRatio)

		direction := refracted
		if shouldReflect {
			direction = reflected
		}

		result.Mask[i] = true
		result.Attenuation[i] = white
		result.Scattered[i] = core.NewRay(hit.Point[i], direction)
	}
	return result
}
