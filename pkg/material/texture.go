package material

import (
	"math"

	"github.com/White-Link/PathTracer/pkg/core"
)

// Texture provides surface color from a 2D image
type Texture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// NewTexture creates a new texture from row-major pixel data
func NewTexture(width, height int, pixels []core.Vec3) *Texture {
	return &Texture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Sample evaluates the texture at the given UV coordinates using bilinear
// filtering. UV coordinates are wrapped to [0,1]; V=0 is the bottom row.
func (t *Texture) Sample(uv core.Vec2) core.Vec3 {
	if t.Width == 0 || t.Height == 0 {
		return core.Vec3{}
	}

	u := uv.X - math.Floor(uv.X)
	v := uv.Y - math.Floor(uv.Y)

	// Continuous pixel coordinates, flipping V for image layout where the
	// origin is the top-left.
	fx := u*float64(t.Width) - 0.5
	fy := (1.0-v)*float64(t.Height) - 0.5

	x0 := int(math.Floor(fx))
	y0 := int(math.Floor(fy))
	dx := fx - float64(x0)
	dy := fy - float64(y0)

	c00 := t.texel(x0, y0)
	c10 := t.texel(x0+1, y0)
	c01 := t.texel(x0, y0+1)
	c11 := t.texel(x0+1, y0+1)

	top := c00.Multiply(1 - dx).Add(c10.Multiply(dx))
	bottom := c01.Multiply(1 - dx).Add(c11.Multiply(dx))
	return top.Multiply(1 - dy).Add(bottom.Multiply(dy))
}

// texel fetches a pixel with coordinates clamped to the image bounds
func (t *Texture) texel(x, y int) core.Vec3 {
	if x < 0 {
		x = 0
	}
	if x >= t.Width {
		x = t.Width - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= t.Height {
		y = t.Height - 1
	}
	return t.Pixels[y*t.Width+x]
}
