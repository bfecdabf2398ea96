package material

import (
	"github.com/df07/go-batch-raytracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Albedo core.Vec3 // Metal color
	Fuzz   float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material with fuzz clamped to [0, 1]
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1.0 {
		fuzz = 1.0
	}
	if fuzz < 0.0 {
		fuzz = 0.0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter implements the Material interface for metal scattering.
// Each incoming direction is mirrored about the normal and perturbed by
// fuzz times a random unit vector. Elements whose perturbed reflection
// drops below the horizon are absorbed; fuzz can push grazing reflections
// into the surface and those rays are dropped rather than reflected.
func (m *Metal) Scatter(raysIn []core.Ray, hit HitBatch, sampler core.BatchSampler) ScatterBatch {
	n := batchSize(raysIn, hit)

	// Drawn unconditionally so seeded runs consume the same random stream
	// regardless of fuzz
	units := sampler.UnitVectors(n)

	result := NewScatterBatch(n)
	for i := 0; i < n; i++ {
		reflected := reflectVector(raysIn[i].Direction.Normalize(), hit.Normal[i])
		direction := reflected.Add(units[i].Multiply(m.Fuzz)).Normalize()

		// Attenuation is the albedo even where the mask is false; callers
		// must respect the mask before using it
		result.Mask[i] = direction.Dot(hit.Normal[i]) > 0
		result.Attenuation[i] = m.Albedo
		result.Scattered[i] = core.NewRay(hit.Point[i], direction)
	}
	return result
}
