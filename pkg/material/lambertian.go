package material

import (
	"github.com/df07/go-batch-raytracer/pkg/core"
)

// Threshold below which a candidate scatter direction is considered
// degenerate (the random sample nearly cancelled the normal).
const minScatterLength = 1e-8

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering.
// Every element scatters: adding a random unit vector to the normal
// approximates a cosine-weighted hemisphere distribution, and diffuse
// surfaces never absorb in this model.
func (l *Lambertian) Scatter(raysIn []core.Ray, hit HitBatch, sampler core.BatchSampler) ScatterBatch {
	n := batchSize(raysIn, hit)
	units := sampler.UnitVectors(n)

	result := NewScatterBatch(n)
	for i := 0; i < n; i++ {
		direction := hit.Normal[i].Add(units[i])

		// Fall back to the bare normal when the sample nearly cancels it,
		// which would otherwise produce a zero-length direction
		if direction.Length() < minScatterLength {
			direction = hit.Normal[i]
		}

		result.Mask[i] = true
		result.Attenuation[i] = l.Albedo
		result.Scattered[i] = core.NewRay(hit.Point[i], direction.Normalize())
	}
	return result
}
