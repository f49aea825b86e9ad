package material

import "github.com/White-Link/PathTracer/pkg/core"

// Material describes how a surface scatters light. All fractional fields
// lie in [0,1].
type Material struct {
	Diffuse     core.Vec3 // Diffusely scattered color
	Specular    core.Vec3 // Color of Phong specular highlights
	Transparent core.Vec3 // Color tint applied to transmitted light

	// Opacity is the fraction of incoming light that is scattered
	// (diffusely or specularly) rather than transmitted through the
	// surface. 1 means fully opaque.
	Opacity float64

	// FractionDiffuse is the share of the diffuse energy that arrives via
	// stochastic hemisphere sampling instead of direct light sampling.
	FractionDiffuse float64

	SpecularWeight   float64 // Strength of the Phong specular lobe
	SpecularExponent float64 // Phong exponent; larger means tighter highlights

	Refractive      bool    // Whether transmitted light refracts
	RefractiveIndex float64 // Refractive index of the medium behind the surface
}

// NewDiffuse creates a fully opaque material that only scatters diffusely
func NewDiffuse(color core.Vec3) Material {
	return Material{
		Diffuse:         color,
		Opacity:         1,
		RefractiveIndex: 1,
	}
}

// NewGlossy creates an opaque material with a Phong specular lobe on top of
// a diffuse base.
func NewGlossy(diffuse, specular core.Vec3, weight, exponent float64) Material {
	return Material{
		Diffuse:          diffuse,
		Specular:         specular,
		Opacity:          1,
		SpecularWeight:   weight,
		SpecularExponent: exponent,
		RefractiveIndex:  1,
	}
}

// NewTransparent creates a material that transmits 1-opacity of the incoming
// light. With refractive set, transmitted rays bend according to the index.
func NewTransparent(diffuse, transparent core.Vec3, opacity float64, refractive bool, index float64) Material {
	return Material{
		Diffuse:         diffuse,
		Transparent:     transparent,
		Opacity:         opacity,
		Refractive:      refractive,
		RefractiveIndex: index,
	}
}

// NewMirror creates a fully reflective material
func NewMirror(tint core.Vec3) Material {
	return Material{
		Transparent:     tint,
		Opacity:         0,
		Refractive:      false,
		RefractiveIndex: 1,
	}
}
