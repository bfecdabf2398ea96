// Package tracer drives batched scatter evaluation over mixed-material hit
// batches: it groups hit events by material, evaluates each material's
// scatter once per sub-batch, and runs the depth-bounded path loop that
// accumulates attenuation until rays are absorbed or escape.
package tracer

import (
	"fmt"

	"github.com/df07/go-batch-raytracer/pkg/core"
	"github.com/df07/go-batch-raytracer/pkg/material"
)

// Intersector produces hit data for a batch of rays. Implementations return
// slices aligned with the input batch: hitMask[i] reports whether ray i hit
// anything, and hit/materialIndex entries are meaningful only where it did.
type Intersector interface {
	Intersect(rays []core.Ray) (hit material.HitBatch, materialIndex []int, hitMask []bool)
}

// ScatterIndexed evaluates scattering for a batch whose elements may belong
// to different materials. materialIndex[i] names the material that produced
// hit i. Each distinct material's Scatter is called once on the gathered
// sub-batch of its elements, and results are scattered back so output
// positions match input positions regardless of grouping.
func ScatterIndexed(raysIn []core.Ray, hit material.HitBatch, materials []material.Material, materialIndex []int, sampler core.BatchSampler) material.ScatterBatch {
	n := len(raysIn)
	if len(materialIndex) != n {
		panic(fmt.Sprintf("tracer: batch size mismatch: %d rays, %d material indices", n, len(materialIndex)))
	}

	// Gather element positions per material
	byMaterial := make([][]int, len(materials))
	for i, mi := range materialIndex {
		if mi < 0 || mi >= len(materials) {
			panic(fmt.Sprintf("tracer: material index %d out of range [0, %d)", mi, len(materials)))
		}
		byMaterial[mi] = append(byMaterial[mi], i)
	}

	result := material.NewScatterBatch(n)
	for mi, elements := range byMaterial {
		if len(elements) == 0 {
			continue
		}

		subRays := make([]core.Ray, len(elements))
		subHit := material.HitBatch{
			Point:     make([]core.Vec3, len(elements)),
			Normal:    make([]core.Vec3, len(elements)),
			FrontFace: make([]bool, len(elements)),
		}
		for k, e := range elements {
			subRays[k] = raysIn[e]
			subHit.Point[k] = hit.Point[e]
			subHit.Normal[k] = hit.Normal[e]
			subHit.FrontFace[k] = hit.FrontFace[e]
		}

		sub := materials[mi].Scatter(subRays, subHit, sampler)
		for k, e := range elements {
			result.Mask[e] = sub.Mask[k]
			result.Attenuation[e] = sub.Attenuation[k]
			result.Scattered[e] = sub.Scattered[k]
		}
	}
	return result
}

// Tracer runs the batched path loop
type Tracer struct {
	MaxDepth   int       // Maximum number of scatter events per path
	Background core.Vec3 // Radiance assigned to rays that escape the scene
}

// NewTracer creates a tracer with a white background
func NewTracer(maxDepth int) *Tracer {
	return &Tracer{MaxDepth: maxDepth, Background: core.NewVec3(1.0, 1.0, 1.0)}
}

// Trace follows each ray in the batch until it escapes, is absorbed, or
// exhausts the bounce limit. Escaped rays return their accumulated
// throughput times the background; absorbed and depth-exhausted rays
// return black. Surviving sub-batches are compacted each bounce so later
// iterations only process live paths.
func (t *Tracer) Trace(rays []core.Ray, scene Intersector, materials []material.Material, sampler core.BatchSampler) []core.Vec3 {
	n := len(rays)
	colors := make([]core.Vec3, n) // Zero-initialized: terminated paths stay black

	// Live paths, compacted; pathIndex maps a live slot back to its
	// original batch position
	live := make([]core.Ray, n)
	copy(live, rays)
	pathIndex := make([]int, n)
	throughput := make([]core.Vec3, n)
	for i := range pathIndex {
		pathIndex[i] = i
		throughput[i] = core.NewVec3(1.0, 1.0, 1.0)
	}

	for depth := 0; depth < t.MaxDepth && len(live) > 0; depth++ {
		hit, materialIndex, hitMask := scene.Intersect(live)

		// Split off escaped rays, keeping only hit elements for scattering
		var hitRays []core.Ray
		var hitBatch material.HitBatch
		var hitMaterial []int
		var hitPath []int
		var hitThroughput []core.Vec3
		for i := range live {
			if !hitMask[i] {
				colors[pathIndex[i]] = throughput[i].MultiplyVec(t.Background)
				continue
			}
			hitRays = append(hitRays, live[i])
			hitBatch.Point = append(hitBatch.Point, hit.Point[i])
			hitBatch.Normal = append(hitBatch.Normal, hit.Normal[i])
			hitBatch.FrontFace = append(hitBatch.FrontFace, hit.FrontFace[i])
			hitMaterial = append(hitMaterial, materialIndex[i])
			hitPath = append(hitPath, pathIndex[i])
			hitThroughput = append(hitThroughput, throughput[i])
		}
		if len(hitRays) == 0 {
			return colors
		}

		scatter := ScatterIndexed(hitRays, hitBatch, materials, hitMaterial, sampler)

		// Absorbed paths stay black; survivors accumulate attenuation and
		// continue with the scattered rays
		live = live[:0]
		pathIndex = pathIndex[:0]
		throughput = throughput[:0]
		for i := range hitRays {
			if !scatter.Mask[i] {
				continue
			}
			live = append(live, scatter.Scattered[i])
			pathIndex = append(pathIndex, hitPath[i])
			throughput = append(throughput, hitThroughput[i].MultiplyVec(scatter.Attenuation[i]))
		}
	}

	// Paths still live at the bounce limit gather no more light
	return colors
}
