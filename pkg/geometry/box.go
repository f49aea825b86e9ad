package geometry

import (
	"math"

	"github.com/White-Link/PathTracer/pkg/core"
	"github.com/White-Link/PathTracer/pkg/material"
)

// Box represents an axis-aligned box surface
type Box struct {
	Bounds core.AABB
	mat    material.Material
}

// NewBox creates an axis-aligned box from two opposite corners
func NewBox(a, b core.Vec3, mat material.Material) *Box {
	return &Box{Bounds: core.NewAABB(a, b), mat: mat}
}

// Intersect runs the slab test. The entry parameter enters the box
// (approach from outside), the exit parameter leaves it.
func (b *Box) Intersect(ray core.Ray) Intersection {
	invX := 1.0 / ray.Direction.X
	invY := 1.0 / ray.Direction.Y
	invZ := 1.0 / ray.Direction.Z

	tx1 := (b.Bounds.Min.X - ray.Origin.X) * invX
	tx2 := (b.Bounds.Max.X - ray.Origin.X) * invX
	ty1 := (b.Bounds.Min.Y - ray.Origin.Y) * invY
	ty2 := (b.Bounds.Max.Y - ray.Origin.Y) * invY
	tz1 := (b.Bounds.Min.Z - ray.Origin.Z) * invZ
	tz2 := (b.Bounds.Max.Z - ray.Origin.Z) * invZ

	tMin := math.Max(math.Max(math.Min(tx1, tx2), math.Min(ty1, ty2)), math.Min(tz1, tz2))
	tMax := math.Min(math.Min(math.Max(tx1, tx2), math.Max(ty1, ty2)), math.Max(tz1, tz2))

	if tMin > tMax {
		return Intersection{}
	}

	entering := NewIntersection(tMin, true, b)
	exiting := NewIntersection(tMax, false, b)
	return entering.Closer(exiting)
}

// NormalAt returns the outward normal of the box face nearest to the
// point, flipped inward when the point lies inside the box.
func (b *Box) NormalAt(point core.Vec3, _ Intersection) core.Vec3 {
	center := b.Bounds.Center()
	half := b.Bounds.Max.Subtract(b.Bounds.Min).Multiply(0.5)
	offset := point.Subtract(center)

	// Relative distance to each face pair; the largest component picks
	// the face the point is closest to.
	rx := math.Abs(offset.X) / half.X
	ry := math.Abs(offset.Y) / half.Y
	rz := math.Abs(offset.Z) / half.Z

	var normal core.Vec3
	switch {
	case rx >= ry && rx >= rz:
		normal = core.NewVec3(math.Copysign(1, offset.X), 0, 0)
	case ry >= rz:
		normal = core.NewVec3(0, math.Copysign(1, offset.Y), 0)
	default:
		normal = core.NewVec3(0, 0, math.Copysign(1, offset.Z))
	}

	inside := rx < 1 && ry < 1 && rz < 1
	if inside {
		return normal.Negate()
	}
	return normal
}

// BoundingBox returns the box itself
func (b *Box) BoundingBox() core.AABB {
	return b.Bounds
}

// DiffuseColor returns the material diffuse color
func (b *Box) DiffuseColor(_ Intersection) core.Vec3 {
	return b.mat.Diffuse
}

// SpecularColor returns the material specular color
func (b *Box) SpecularColor(_ Intersection) core.Vec3 {
	return b.mat.Specular
}

// Material returns the box material
func (b *Box) Material() material.Material {
	return b.mat
}

// Flat reports that boxes enclose a volume
func (b *Box) Flat() bool {
	return false
}
