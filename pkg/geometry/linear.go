package geometry

import "github.com/White-Link/PathTracer/pkg/core"

// LinearSet answers nearest-hit queries by scanning every surface. It is
// the reference oracle the BVH is tested against and remains usable for
// scenes with a handful of surfaces.
type LinearSet []Surface

// Intersect returns the nearest valid intersection over all surfaces
func (l LinearSet) Intersect(ray core.Ray) Intersection {
	var nearest Intersection
	for _, s := range l {
		nearest = nearest.Closer(s.Intersect(ray))
	}
	return nearest
}
