package geometry

import (
	"math"

	"github.com/White-Link/PathTracer/pkg/core"
	"github.com/White-Link/PathTracer/pkg/material"
)

// Sphere represents a sphere defined by a center and a radius
type Sphere struct {
	Center core.Vec3
	Radius float64
	mat    material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, mat: mat}
}

// Intersect solves the quadratic ray-sphere equation. The smaller positive
// root enters the sphere (approach from outside), the larger one exits.
func (s *Sphere) Intersect(ray core.Ray) Intersection {
	oc := ray.Origin.Subtract(s.Center)

	// Direction is unit length, so the quadratic is t² + 2bt + c = 0
	halfB := ray.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius
	discriminant := halfB*halfB - c

	if discriminant < 0 {
		return Intersection{}
	}

	sqrtD := math.Sqrt(discriminant)
	entering := NewIntersection(-halfB-sqrtD, true, s)
	exiting := NewIntersection(-halfB+sqrtD, false, s)
	return entering.Closer(exiting)
}

// NormalAt returns the outward normal when the point lies outside the sphere
// and the inward normal when it lies inside.
func (s *Sphere) NormalAt(point core.Vec3, _ Intersection) core.Vec3 {
	direction := point.Subtract(s.Center)
	inside := direction.LengthSquared() < s.Radius*s.Radius
	normal := direction.Normalize()
	if inside {
		return normal.Negate()
	}
	return normal
}

// BoundingBox returns the axis-aligned bounding box of the sphere
func (s *Sphere) BoundingBox() core.AABB {
	offset := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return core.NewAABB(s.Center.Subtract(offset), s.Center.Add(offset))
}

// DiffuseColor returns the material diffuse color
func (s *Sphere) DiffuseColor(_ Intersection) core.Vec3 {
	return s.mat.Diffuse
}

// SpecularColor returns the material specular color
func (s *Sphere) SpecularColor(_ Intersection) core.Vec3 {
	return s.mat.Specular
}

// Material returns the sphere material
func (s *Sphere) Material() material.Material {
	return s.mat
}

// Flat reports that spheres enclose a volume
func (s *Sphere) Flat() bool {
	return false
}
