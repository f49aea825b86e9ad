package core

// rayShrink pulls evaluated points slightly toward the ray origin so that
// secondary rays spawned at a hit point do not immediately re-intersect
// the surface they started on.
const rayShrink = 0.9999

// Ray represents a ray with an origin and a unit direction
type Ray struct {
	Origin    Vec3
	Direction Vec3
}

// NewRay creates a new ray. The direction is normalized on construction.
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point at parameter t along the ray, shrunk by a fixed
// factor to avoid self-intersection on the next bounce.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(rayShrink * t))
}

// AtExact returns the point at parameter t with no shrink factor applied
func (r Ray) AtExact(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
