package renderer

import (
	"math"

	"github.com/White-Link/PathTracer/pkg/core"
)

// Camera is a pinhole camera that launches primary rays through pixels.
// Pixel rows are counted upward: row 0 is the bottom of the frame.
type Camera struct {
	origin    core.Vec3
	direction core.Vec3
	up        core.Vec3
	right     core.Vec3
	width     int
	height    int

	// Distance from the origin to the virtual screen, derived from the
	// vertical field of view.
	screenDistance float64
}

// NewCamera creates a camera from its origin, view direction, up vector
// (assumed orthogonal to the direction), vertical field of view in radians
// and output dimensions.
func NewCamera(origin, direction, up core.Vec3, fov float64, width, height int) *Camera {
	d := direction.Normalize()
	u := up.Normalize()
	return &Camera{
		origin:         origin,
		direction:      d,
		up:             u,
		right:          u.Cross(d),
		width:          width,
		height:         height,
		screenDistance: float64(height) / (2 * math.Tan(fov/2)),
	}
}

// Width returns the output image width in pixels
func (c *Camera) Width() int {
	return c.width
}

// Height returns the output image height in pixels
func (c *Camera) Height() int {
	return c.height
}

// Launch builds the primary ray through pixel (i, j), where i is the row
// counted from the bottom and j the column. di and dj perturb the sample
// position within the pixel for anti-aliasing.
func (c *Camera) Launch(i, j int, di, dj float64) core.Ray {
	direction := c.right.Multiply(float64(j) + dj - float64(c.width)/2 + 0.5).
		Add(c.up.Multiply(float64(i) + di - float64(c.height)/2 + 0.5)).
		Add(c.direction.Multiply(c.screenDistance))
	return core.NewRay(c.origin, direction)
}
