package core

import (
	"math"
	"math/rand"
)

// SampleCosineHemisphere generates a cosine-weighted random direction in the
// hemisphere around the given unit normal, from two uniform [0,1) samples.
func SampleCosineHemisphere(normal Vec3, u1, u2 float64) Vec3 {
	a := 2.0 * math.Pi * u1
	r := math.Sqrt(u2)

	x := r * math.Cos(a)
	y := r * math.Sin(a)
	z := math.Sqrt(1.0 - u2)

	// Build an orthonormal basis around the normal. Any vector not
	// parallel to the normal works as a seed.
	var nt Vec3
	if math.Abs(normal.X) > 0.1 {
		nt = NewVec3(0, 1, 0)
	} else {
		nt = NewVec3(1, 0, 0)
	}
	tangent := nt.Cross(normal).Normalize()
	bitangent := normal.Cross(tangent)

	return tangent.Multiply(x).Add(bitangent.Multiply(y)).Add(normal.Multiply(z))
}

// SampleGaussianPair draws two independent standard normal values using the
// Box-Muller transform, used for sub-pixel anti-aliasing jitter.
func SampleGaussianPair(random *rand.Rand) (float64, float64) {
	u1 := random.Float64()
	u2 := random.Float64()
	// Guard against log(0)
	for u1 == 0 {
		u1 = random.Float64()
	}
	r := math.Sqrt(-2.0 * math.Log(u1))
	theta := 2.0 * math.Pi * u2
	return r * math.Cos(theta), r * math.Sin(theta)
}
