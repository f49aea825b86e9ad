package geometry

import (
	"github.com/White-Link/PathTracer/pkg/core"
	"github.com/White-Link/PathTracer/pkg/material"
)

// Intersection describes a ray-surface hit. An intersection exists iff its
// parameter T is strictly positive and a surface is attached.
type Intersection struct {
	T           float64   // Distance along the ray, meaningful only if the hit exists
	Out         bool      // True if the ray approached the surface from outside
	Barycentric core.Vec3 // Barycentric weights for triangle hits, (1,0,0) otherwise
	Surface     Surface   // Hit surface, nil for the empty intersection
}

// NewIntersection creates an intersection at parameter t. Non-positive
// parameters yield the empty intersection.
func NewIntersection(t float64, out bool, surface Surface) Intersection {
	if t <= 0 {
		return Intersection{}
	}
	return Intersection{T: t, Out: out, Barycentric: core.NewVec3(1, 0, 0), Surface: surface}
}

// Exists reports whether the intersection is non-empty
func (i Intersection) Exists() bool {
	return i.Surface != nil && i.T > 0
}

// Closer joins two intersections, picking the one with the smaller valid
// distance. The empty intersection behaves as infinitely far.
func (i Intersection) Closer(other Intersection) Intersection {
	if !i.Exists() {
		return other
	}
	if !other.Exists() || i.T <= other.T {
		return i
	}
	return other
}

// Surface is implemented by every renderable primitive
type Surface interface {
	// Intersect computes the nearest intersection of the ray with the
	// surface, or the empty intersection.
	Intersect(ray core.Ray) Intersection

	// NormalAt returns the unit normal at a point on the surface, oriented
	// toward the side of the surface the query point lies on. Points
	// evaluated from a shrunk ray parameter therefore receive a normal
	// facing the ray origin.
	NormalAt(point core.Vec3, inter Intersection) core.Vec3

	// BoundingBox returns an axis-aligned box containing the surface
	BoundingBox() core.AABB

	// DiffuseColor returns the diffuse color at a hit, sampling a texture
	// when the surface carries one.
	DiffuseColor(inter Intersection) core.Vec3

	// SpecularColor returns the specular color at a hit
	SpecularColor(inter Intersection) core.Vec3

	// Material returns the surface material
	Material() material.Material

	// Flat reports whether the surface has zero volume. Flat surfaces have
	// no inside, so shading skips the inside-normal branch and refraction
	// treats them as thin interfaces.
	Flat() bool
}

// Container answers nearest-hit queries over a collection of surfaces
type Container interface {
	Intersect(ray core.Ray) Intersection
}
