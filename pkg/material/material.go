package material

import (
	"fmt"

	"github.com/df07/go-batch-raytracer/pkg/core"
)

// Material interface for surfaces that can scatter batches of rays.
// Implementations carry only immutable configuration, so a single material
// may serve any number of concurrent batch evaluations.
type Material interface {
	// Scatter processes a batch of hit events in one call. raysIn and hit
	// must have matching lengths; a mismatch is a contract violation and
	// panics. Each batch element is independent of every other.
	Scatter(raysIn []core.Ray, hit HitBatch, sampler core.BatchSampler) ScatterBatch
}

// HitBatch contains per-element intersection data for a batch of hit events,
// as parallel slices of equal length. Normals are unit length and point
// against the incident ray on the side the ray is considered to have hit.
type HitBatch struct {
	Point     []core.Vec3 // World-space hit positions
	Normal    []core.Vec3 // Unit surface normals
	FrontFace []bool      // Whether each ray hit the outward-facing side
}

// Len returns the number of hit events in the batch
func (h HitBatch) Len() int {
	return len(h.Point)
}

// ScatterBatch contains the per-element results of batched scattering.
// Where Mask[i] is false the ray was absorbed; Attenuation[i] and
// Scattered[i] are still populated but carry no meaning, and callers must
// consult the mask before using them.
type ScatterBatch struct {
	Mask        []bool      // True where the ray scattered, false where absorbed
	Attenuation []core.Vec3 // Color attenuation per element
	Scattered   []core.Ray  // New ray per element
}

// NewScatterBatch allocates a zeroed scatter result for n elements
func NewScatterBatch(n int) ScatterBatch {
	return ScatterBatch{
		Mask:        make([]bool, n),
		Attenuation: make([]core.Vec3, n),
		Scattered:   make([]core.Ray, n),
	}
}

// Len returns the number of elements in the batch
func (s ScatterBatch) Len() int {
	return len(s.Mask)
}

// batchSize validates that ray and hit batch lengths agree and returns the
// common batch size. Mismatched lengths are a caller bug, not a recoverable
// condition, so this fails fast.
func batchSize(raysIn []core.Ray, hit HitBatch) int {
	n := len(raysIn)
	if len(hit.Point) != n || len(hit.Normal) != n || len(hit.FrontFace) != n {
		panic(fmt.Sprintf("material: batch size mismatch: %d rays, %d points, %d normals, %d front-face flags",
			n, len(hit.Point), len(hit.Normal), len(hit.FrontFace)))
	}
	return n
}
