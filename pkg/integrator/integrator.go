package integrator

import (
	"math"
	"math/rand"

	"github.com/White-Link/PathTracer/pkg/core"
	"github.com/White-Link/PathTracer/pkg/geometry"
	"github.com/White-Link/PathTracer/pkg/material"
)

const (
	// weightCutoff terminates recursive paths whose carried weight has
	// decayed below this threshold; their contribution to the final pixel
	// is negligible.
	weightCutoff = 1e-3

	// Reflectance cutoffs past which the stochastic reflection/refraction
	// choice collapses to a single deterministic branch.
	reflectanceHigh = 0.99
	reflectanceLow  = 0.01

	// refractionOffset pushes the origin of a refracted ray slightly along
	// its path so it does not immediately re-intersect the interface it
	// just crossed.
	refractionOffset = 1e-4
)

// Integrator computes the radiance carried back along camera rays by
// recursively combining direct illumination, stochastic diffuse
// inter-reflection and Fresnel-weighted reflection/refraction.
type Integrator struct {
	objects geometry.Container
	lights  []core.Light
}

// New creates an integrator over the given surfaces and lights
func New(objects geometry.Container, lights []core.Light) *Integrator {
	return &Integrator{objects: objects, lights: lights}
}

// Shade returns the radiance arriving along the ray.
//
// depth bounds the recursion; samples is the per-bounce stochastic sample
// budget (0 disables all stochastic terms); ambientIndex is the refractive
// index of the environment the ray travels in; weight is the carried
// weight of this path, the running product of branch probabilities.
func (in *Integrator) Shade(ray core.Ray, depth, samples int, ambientIndex, weight float64, random *rand.Rand) core.Vec3 {
	if weight < weightCutoff {
		return core.Vec3{}
	}

	inter := in.objects.Intersect(ray)
	if !inter.Exists() {
		return core.Vec3{}
	}

	surface := inter.Surface
	point := ray.At(inter.T)
	normal := surface.NormalAt(point, inter)
	diffuseColor := surface.DiffuseColor(inter)
	mat := surface.Material()

	// At the recursion base the surface is forced fully opaque and fully
	// direct so no further rays are spawned.
	opacity := mat.Opacity
	fractionDiffuse := mat.FractionDiffuse
	if depth == 0 || samples == 0 {
		opacity = 1
		fractionDiffuse = 0
	}

	radiance := in.directLight(ray, point, normal, inter, mat, opacity, fractionDiffuse)

	if fractionDiffuse > 0 {
		indirect := in.indirectDiffuse(point, normal, depth, samples, ambientIndex,
			weight*opacity*fractionDiffuse, random)
		radiance = radiance.Add(indirect.
			Multiply(opacity * fractionDiffuse / math.Pi).
			MultiplyVec(diffuseColor))
	}

	if opacity < 1 {
		transmitted := in.transmitReflect(ray, inter, point, normal, mat,
			depth, samples, ambientIndex, weight*(1-opacity), random)
		radiance = radiance.Add(transmitted.
			Multiply(1 - opacity).
			MultiplyVec(mat.Transparent))
	}

	return radiance
}

// directLight accumulates the contribution of every light visible from the
// point: a Lambertian diffuse term plus, for materials with a specular
// lobe, a Phong highlight around the mirror-reflected light direction.
func (in *Integrator) directLight(ray core.Ray, point, normal core.Vec3, inter geometry.Intersection,
	mat material.Material, opacity, fractionDiffuse float64) core.Vec3 {

	surface := inter.Surface
	diffuseColor := surface.DiffuseColor(inter)
	specularColor := surface.SpecularColor(inter)

	var total core.Vec3
	for _, light := range in.lights {
		toLight := light.Position.Subtract(point)
		distanceSquared := toLight.LengthSquared()

		shadowRay := core.NewRay(point, toLight)
		occluder := in.objects.Intersect(shadowRay)
		if occluder.Exists() && occluder.T*occluder.T < distanceSquared {
			continue
		}

		cosine := shadowRay.Direction.Dot(normal)
		if cosine <= 0 {
			continue
		}

		falloff := 1 / (math.Pi * distanceSquared)

		diffuse := diffuseColor.MultiplyVec(light.Intensity).
			Multiply(cosine * falloff * opacity * (1 - fractionDiffuse))
		total = total.Add(diffuse)

		if mat.SpecularWeight > 0 {
			// Phong lobe around the mirror reflection of the light
			reflected := shadowRay.Direction.Negate().Reflect(normal)
			cosAlpha := reflected.Dot(ray.Direction.Negate())
			if cosAlpha > 0 {
				specular := specularColor.MultiplyVec(light.Intensity).
					Multiply(mat.SpecularWeight * math.Pow(cosAlpha, mat.SpecularExponent) * falloff * opacity)
				total = total.Add(specular)
			}
		}
	}

	return total
}

// indirectDiffuse Monte-Carlo samples the cosine-weighted hemisphere
// around the normal and averages the radiance recursively gathered from
// each direction. Callers apply the opacity/π/albedo scaling.
func (in *Integrator) indirectDiffuse(point, normal core.Vec3, depth, samples int,
	ambientIndex, childWeight float64, random *rand.Rand) core.Vec3 {

	var sum core.Vec3
	for s := 0; s < samples; s++ {
		direction := core.SampleCosineHemisphere(normal, random.Float64(), random.Float64())
		child := core.NewRay(point, direction)
		sum = sum.Add(in.Shade(child, depth-1, 1, ambientIndex, childWeight/float64(samples), random))
	}
	return sum.Multiply(1 / float64(samples))
}

// transmitReflect computes the reflective/refractive contribution of a
// surface with opacity below one. Non-refractive materials act as perfect
// mirrors; refractive ones split between reflection and refraction
// according to the Schlick reflectance, collapsing to a single branch
// near the cutoffs and choosing stochastically in between.
func (in *Integrator) transmitReflect(ray core.Ray, inter geometry.Intersection, point, normal core.Vec3,
	mat material.Material, depth, samples int, ambientIndex, weight float64, random *rand.Rand) core.Vec3 {

	reflectRay := core.NewRay(point, ray.Direction.Reflect(normal))

	if !mat.Refractive {
		return in.Shade(reflectRay, depth-1, samples, ambientIndex, weight, random)
	}

	// Refractive indices on the incident (n1) and far (n2) side of the
	// interface. The ambient index describes the environment the path
	// started in; inside a volume the material index takes its place.
	var n1, n2 float64
	if inter.Out {
		n1, n2 = ambientIndex, mat.RefractiveIndex
	} else {
		n1, n2 = mat.RefractiveIndex, ambientIndex
	}

	cosI := -ray.Direction.Dot(normal)
	reflectance := SchlickReflectance(cosI, n1, n2)

	refractDir, refracts := refract(ray.Direction, normal, n1/n2, cosI)
	if !refracts {
		reflectance = 1
	}

	// Crossing a flat interface changes the medium the path travels in;
	// entering or leaving a volume keeps the outer environment as the
	// ambient index for later exits.
	refractedAmbient := ambientIndex
	if inter.Surface.Flat() {
		refractedAmbient = n2
	}

	shadeRefraction := func(budget int, branchWeight float64) core.Vec3 {
		origin := point.Add(ray.Direction.Multiply(refractionOffset))
		child := core.NewRay(origin, refractDir)
		return in.Shade(child, depth-1, budget, refractedAmbient, branchWeight, random)
	}

	switch {
	case reflectance >= reflectanceHigh:
		return in.Shade(reflectRay, depth-1, samples, ambientIndex, weight*reflectance, random)
	case reflectance <= reflectanceLow:
		return shadeRefraction(samples, weight*(1-reflectance))
	}

	// Stochastic choice between the two branches, averaged over the
	// sample budget; each branch carries its selection probability.
	var sum core.Vec3
	for s := 0; s < samples; s++ {
		if random.Float64() < reflectance {
			sum = sum.Add(in.Shade(reflectRay, depth-1, 1, ambientIndex, weight*reflectance, random))
		} else {
			sum = sum.Add(shadeRefraction(1, weight*(1-reflectance)))
		}
	}
	return sum.Multiply(1 / float64(samples))
}

// refract computes the refraction of a unit direction through a surface
// with the given normal and index ratio eta = n1/n2. The second return is
// false under total internal reflection.
func refract(direction, normal core.Vec3, eta, cosI float64) (core.Vec3, bool) {
	k := 1 - eta*eta*(1-cosI*cosI)
	if k < 0 {
		return core.Vec3{}, false
	}
	refracted := direction.Multiply(eta).Add(normal.Multiply(eta*cosI - math.Sqrt(k)))
	return refracted, true
}