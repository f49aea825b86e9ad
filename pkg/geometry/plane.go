package geometry

import (
	"math"

	"github.com/White-Link/PathTracer/pkg/core"
	"github.com/White-Link/PathTracer/pkg/material"
)

// Plane represents an infinite plane defined by a point and a unit normal
type Plane struct {
	Point  core.Vec3
	Normal core.Vec3
	mat    material.Material
}

// NewPlane creates a new plane. The normal is normalized on construction.
func NewPlane(point, normal core.Vec3, mat material.Material) *Plane {
	return &Plane{Point: point, Normal: normal.Normalize(), mat: mat}
}

// Intersect solves the linear ray-plane equation. Rays parallel to the
// plane produce no intersection.
func (p *Plane) Intersect(ray core.Ray) Intersection {
	denominator := ray.Direction.Dot(p.Normal)
	if denominator == 0 {
		return Intersection{}
	}

	t := -ray.Origin.Subtract(p.Point).Dot(p.Normal) / denominator
	return NewIntersection(t, denominator < 0, p)
}

// NormalAt orients the plane normal toward the side the point lies on, so
// it always faces the origin of the ray that produced the point.
func (p *Plane) NormalAt(point core.Vec3, _ Intersection) core.Vec3 {
	if point.Subtract(p.Point).Dot(p.Normal) < 0 {
		return p.Normal.Negate()
	}
	return p.Normal
}

// BoundingBox returns an unbounded box; the slab test handles the
// infinities without special cases.
func (p *Plane) BoundingBox() core.AABB {
	inf := math.Inf(1)
	return core.AABB{
		Min: core.NewVec3(-inf, -inf, -inf),
		Max: core.NewVec3(inf, inf, inf),
	}
}

// DiffuseColor returns the material diffuse color
func (p *Plane) DiffuseColor(_ Intersection) core.Vec3 {
	return p.mat.Diffuse
}

// SpecularColor returns the material specular color
func (p *Plane) SpecularColor(_ Intersection) core.Vec3 {
	return p.mat.Specular
}

// Material returns the plane material
func (p *Plane) Material() material.Material {
	return p.mat
}

// Flat reports that planes have zero volume
func (p *Plane) Flat() bool {
	return true
}
