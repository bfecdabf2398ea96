package material

import (
	"fmt"
	"math"

	"github.com/df07/go-batch-raytracer/pkg/core"
)

// Reflect mirrors each v[i] about the corresponding unit normal n[i].
// Normals are assumed unit length and are not re-normalized here.
func Reflect(v, n []core.Vec3) []core.Vec3 {
	mustMatch("Reflect", len(v), len(n))
	out := make([]core.Vec3, len(v))
	for i := range v {
		out[i] = reflectVector(v[i], n[i])
	}
	return out
}

// Refract applies Snell's law to each uv[i] crossing the surface with unit
// normal n[i] at refraction ratio etaiOverEtat[i]. Total internal reflection
// is not detected here; callers must check for it before refracting.
func Refract(uv, n []core.Vec3, etaiOverEtat []float64) []core.Vec3 {
	mustMatch("Refract", len(uv), len(n))
	mustMatch("Refract", len(uv), len(etaiOverEtat))
	out := make([]core.Vec3, len(uv))
	for i := range uv {
		out[i] = refractVector(uv[i], n[i], etaiOverEtat[i])
	}
	return out
}

// Reflectance computes the Fresnel reflection coefficient for each element
// using Schlick's approximation
func Reflectance(cosine, refIdx []float64) []float64 {
	mustMatch("Reflectance", len(cosine), len(refIdx))
	out := make([]float64, len(cosine))
	for i := range cosine {
		out[i] = schlick(cosine[i], refIdx[i])
	}
	return out
}

// reflectVector calculates the reflection of a vector v off a surface with normal n
func reflectVector(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// refractVector calculates the refraction of a vector using Snell's law.
// The cosine is clamped to 1 and the square root argument taken by absolute
// value to guard against floating-point overshoot; neither is physically
// meaningful clamping.
func refractVector(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(uv.Negate().Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// schlick calculates the Fresnel reflectance using Schlick's approximation
func schlick(cosine, refractionRatio float64) float64 {
	// Calculate R0 for normal incidence
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}

// mustMatch panics when two batch lengths disagree
func mustMatch(op string, a, b int) {
	if a != b {
		panic(fmt.Sprintf("material: %s batch size mismatch: %d vs %d", op, a, b))
	}
}
