package core

import (
	"math"
	"math/rand"
)

// BatchSampler provides the randomness that batched scattering consumes.
// Each call must produce samples independent of previous calls, with one
// sample per batch element. Can be swapped out for deterministic testing.
type BatchSampler interface {
	// UnitVectors returns n independent, uniformly distributed unit vectors.
	UnitVectors(n int) []Vec3
	// Uniform returns n independent draws in [0, 1).
	Uniform(n int) []float64
}

// RandomSampler wraps a standard Go random generator.
// A single instance is not safe for concurrent use; give each goroutine
// its own seeded generator.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// UnitVectors returns n uniformly distributed unit vectors
func (r *RandomSampler) UnitVectors(n int) []Vec3 {
	dirs := make([]Vec3, n)
	for i := range dirs {
		dirs[i] = SampleOnUnitSphere(r.random.Float64(), r.random.Float64())
	}
	return dirs
}

// Uniform returns n random float64 values in [0, 1)
func (r *RandomSampler) Uniform(n int) []float64 {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = r.random.Float64()
	}
	return samples
}

// SampleOnUnitSphere maps two uniform samples in [0,1) to a uniform random
// direction on the unit sphere using the inverse CDF method
func SampleOnUnitSphere(u, v float64) Vec3 {
	z := 1.0 - 2.0*u // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * v
	x := r * math.Cos(phi)
	y := r * math.Sin(phi)
	return NewVec3(x, y, z)
}
