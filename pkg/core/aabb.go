package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from two opposite corners. The corners may be
// given in any order; they are sorted component-wise.
func NewAABB(a, b Vec3) AABB {
	return AABB{
		Min: Vec3{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z)},
		Max: Vec3{math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z)},
	}
}

// NewAABBFromPoints creates an AABB that bounds all given points
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}

	bounds := AABB{Min: points[0], Max: points[0]}
	for _, point := range points[1:] {
		bounds.Min.X = math.Min(bounds.Min.X, point.X)
		bounds.Min.Y = math.Min(bounds.Min.Y, point.Y)
		bounds.Min.Z = math.Min(bounds.Min.Z, point.Z)

		bounds.Max.X = math.Max(bounds.Max.X, point.X)
		bounds.Max.Y = math.Max(bounds.Max.Y, point.Y)
		bounds.Max.Z = math.Max(bounds.Max.Z, point.Z)
	}

	return bounds
}

// Entry computes the slab test for a ray against this box. It returns the
// distance the ray travels before entering the box and whether the ray
// intersects the box at all at a positive parameter. A ray that starts
// inside the box has already entered it, so its entry distance is zero.
//
// Zero direction components produce IEEE infinities in the per-axis
// parameters, which the min/max reduction handles without branching.
func (aabb AABB) Entry(ray Ray) (float64, bool) {
	invX := 1.0 / ray.Direction.X
	invY := 1.0 / ray.Direction.Y
	invZ := 1.0 / ray.Direction.Z

	tx1 := (aabb.Min.X - ray.Origin.X) * invX
	tx2 := (aabb.Max.X - ray.Origin.X) * invX
	ty1 := (aabb.Min.Y - ray.Origin.Y) * invY
	ty2 := (aabb.Max.Y - ray.Origin.Y) * invY
	tz1 := (aabb.Min.Z - ray.Origin.Z) * invZ
	tz2 := (aabb.Max.Z - ray.Origin.Z) * invZ

	tMin := math.Max(math.Max(math.Min(tx1, tx2), math.Min(ty1, ty2)), math.Min(tz1, tz2))
	tMax := math.Min(math.Min(math.Max(tx1, tx2), math.Max(ty1, ty2)), math.Max(tz1, tz2))

	if tMin > tMax || tMax <= 0 {
		return 0, false
	}
	if tMin > 0 {
		return tMin, true
	}
	// Ray starts inside the box.
	return 0, true
}

// Hit reports whether a ray intersects this box at a positive parameter
func (aabb AABB) Hit(ray Ray) bool {
	_, ok := aabb.Entry(ray)
	return ok
}

// Union returns an AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		Min: Vec3{
			X: math.Min(aabb.Min.X, other.Min.X),
			Y: math.Min(aabb.Min.Y, other.Min.Y),
			Z: math.Min(aabb.Min.Z, other.Min.Z),
		},
		Max: Vec3{
			X: math.Max(aabb.Max.X, other.Max.X),
			Y: math.Max(aabb.Max.Y, other.Max.Y),
			Z: math.Max(aabb.Max.Z, other.Max.Z),
		},
	}
}

// Center returns the center point of the AABB
func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Contains reports whether the other box lies entirely inside this one
func (aabb AABB) Contains(other AABB) bool {
	return aabb.Min.X <= other.Min.X && aabb.Min.Y <= other.Min.Y && aabb.Min.Z <= other.Min.Z &&
		aabb.Max.X >= other.Max.X && aabb.Max.Y >= other.Max.Y && aabb.Max.Z >= other.Max.Z
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}
