package geometry

import (
	"github.com/White-Link/PathTracer/pkg/core"
	"github.com/White-Link/PathTracer/pkg/material"
)

// degenerateEpsilon bounds the barycentric system determinant below which a
// triangle is treated as collinear and never intersected.
const degenerateEpsilon = 1e-12

// Triangle represents a triangle with per-vertex normals for smooth shading
// and optional texture coordinates.
type Triangle struct {
	P1, P2, P3 core.Vec3 // Vertices
	N1, N2, N3 core.Vec3 // Unit normals at each vertex

	// Normal of the supporting plane, oriented toward the same half-space
	// as N1.
	planeNormal core.Vec3

	hasUV      bool
	UV1        core.Vec2
	UV2        core.Vec2
	UV3        core.Vec2
	diffuseTex *material.Texture
	specTex    *material.Texture

	mat        material.Material
	degenerate bool

	// Cached dot products of the barycentric coordinate system
	v0, v1              core.Vec3
	dot00, dot01, dot11 float64
	invDenom            float64
}

// NewTriangle creates a triangle from three vertices and per-vertex
// normals. Triangles with collinear vertices are accepted but never
// intersect.
func NewTriangle(p1, p2, p3, n1, n2, n3 core.Vec3, mat material.Material) *Triangle {
	t := &Triangle{
		P1: p1, P2: p2, P3: p3,
		N1: n1.Normalize(), N2: n2.Normalize(), N3: n3.Normalize(),
		mat: mat,
	}
	t.init()
	return t
}

// NewTexturedTriangle creates a triangle carrying UV coordinates and
// optional diffuse/specular textures. Either texture may be nil, in which
// case the material color is used for that channel.
func NewTexturedTriangle(p1, p2, p3, n1, n2, n3 core.Vec3, uv1, uv2, uv3 core.Vec2,
	diffuseTex, specTex *material.Texture, mat material.Material) *Triangle {
	t := NewTriangle(p1, p2, p3, n1, n2, n3, mat)
	t.hasUV = true
	t.UV1, t.UV2, t.UV3 = uv1, uv2, uv3
	t.diffuseTex = diffuseTex
	t.specTex = specTex
	return t
}

func (t *Triangle) init() {
	t.planeNormal = t.P2.Subtract(t.P1).Cross(t.P3.Subtract(t.P1)).Normalize()
	if t.planeNormal.Dot(t.N1) < 0 {
		t.planeNormal = t.planeNormal.Negate()
	}

	t.v0 = t.P3.Subtract(t.P1)
	t.v1 = t.P2.Subtract(t.P1)
	t.dot00 = t.v0.LengthSquared()
	t.dot01 = t.v0.Dot(t.v1)
	t.dot11 = t.v1.LengthSquared()

	denom := t.dot00*t.dot11 - t.dot01*t.dot01
	if denom < degenerateEpsilon || t.planeNormal.LengthSquared() == 0 {
		t.degenerate = true
		return
	}
	t.invDenom = 1 / denom
}

// barycentric computes the barycentric coordinates of a point assumed to
// lie in the supporting plane of the triangle.
func (t *Triangle) barycentric(p core.Vec3) core.Vec3 {
	v2 := p.Subtract(t.P1)
	dot02 := t.v0.Dot(v2)
	dot12 := t.v1.Dot(v2)
	u := (t.dot11*dot02 - t.dot01*dot12) * t.invDenom
	v := (t.dot00*dot12 - t.dot01*dot02) * t.invDenom
	return core.NewVec3(1-u-v, v, u)
}

// Intersect hits the supporting plane and accepts the point only if all of
// its barycentric coordinates are strictly positive.
func (t *Triangle) Intersect(ray core.Ray) Intersection {
	if t.degenerate {
		return Intersection{}
	}

	denominator := ray.Direction.Dot(t.planeNormal)
	if denominator == 0 {
		return Intersection{}
	}

	tParam := -ray.Origin.Subtract(t.P1).Dot(t.planeNormal) / denominator
	if tParam <= 0 {
		return Intersection{}
	}

	bary := t.barycentric(ray.At(tParam))
	if bary.X <= 0 || bary.Y <= 0 || bary.Z <= 0 {
		return Intersection{}
	}

	inter := NewIntersection(tParam, denominator < 0, t)
	inter.Barycentric = bary
	return inter
}

// NormalAt blends the vertex normals with the barycentric weights of the
// hit, then orients the result toward the side of the supporting plane the
// query point lies on.
func (t *Triangle) NormalAt(point core.Vec3, inter Intersection) core.Vec3 {
	b := inter.Barycentric
	normal := t.N1.Multiply(b.X).
		Add(t.N2.Multiply(b.Y)).
		Add(t.N3.Multiply(b.Z)).
		Normalize()

	if t.P1.Subtract(point).Dot(t.planeNormal) < 0 {
		return normal
	}
	return normal.Negate()
}

// BoundingBox returns the axis-aligned bounding box of the three vertices
func (t *Triangle) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(t.P1, t.P2, t.P3)
}

// DiffuseColor samples the diffuse texture at the interpolated UV
// coordinates when present, falling back to the material color.
func (t *Triangle) DiffuseColor(inter Intersection) core.Vec3 {
	if t.diffuseTex == nil || !t.hasUV {
		return t.mat.Diffuse
	}
	return t.diffuseTex.Sample(t.interpolateUV(inter.Barycentric))
}

// SpecularColor samples the specular texture at the interpolated UV
// coordinates when present, falling back to the material color.
func (t *Triangle) SpecularColor(inter Intersection) core.Vec3 {
	if t.specTex == nil || !t.hasUV {
		return t.mat.Specular
	}
	return t.specTex.Sample(t.interpolateUV(inter.Barycentric))
}

func (t *Triangle) interpolateUV(b core.Vec3) core.Vec2 {
	return core.NewVec2(
		b.X*t.UV1.X+b.Y*t.UV2.X+b.Z*t.UV3.X,
		b.X*t.UV1.Y+b.Y*t.UV2.Y+b.Z*t.UV3.Y,
	)
}

// Material returns the triangle material
func (t *Triangle) Material() material.Material {
	return t.mat
}

// Flat reports that triangles have zero volume
func (t *Triangle) Flat() bool {
	return true
}

// Degenerate reports whether the triangle vertices are collinear
func (t *Triangle) Degenerate() bool {
	return t.degenerate
}
