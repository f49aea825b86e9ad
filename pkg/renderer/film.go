package renderer

import (
	"image"
	"image/color"

	"github.com/White-Link/PathTracer/pkg/core"
)

// DefaultGamma is the gamma correction applied to stored radiance
const DefaultGamma = 2.2

// Film accumulates the rendered image as three contiguous byte planes
// (R, then G, then B), each row-major with buffer row 0 holding the
// highest scene row.
type Film struct {
	Width  int
	Height int
	Gamma  float64

	// Pix holds Width*Height*3 bytes: the red plane, then green, then
	// blue.
	Pix []uint8
}

// NewFilm creates an empty film of the given dimensions
func NewFilm(width, height int) *Film {
	return &Film{
		Width:  width,
		Height: height,
		Gamma:  DefaultGamma,
		Pix:    make([]uint8, 3*width*height),
	}
}

// Set gamma-corrects the radiance and stores it at pixel (i, j), with i
// the scene row counted from the bottom. Each worker owns disjoint rows,
// so no synchronization is needed.
func (f *Film) Set(i, j int, radiance core.Vec3) {
	corrected := radiance.GammaCorrect(f.Gamma).Multiply(255).Clamp(0, 255)

	index := (f.Height-1-i)*f.Width + j
	plane := f.Width * f.Height
	f.Pix[index] = uint8(corrected.X)
	f.Pix[index+plane] = uint8(corrected.Y)
	f.Pix[index+2*plane] = uint8(corrected.Z)
}

// At returns the stored color of pixel (i, j), with i counted from the
// bottom of the scene.
func (f *Film) At(i, j int) (r, g, b uint8) {
	index := (f.Height-1-i)*f.Width + j
	plane := f.Width * f.Height
	return f.Pix[index], f.Pix[index+plane], f.Pix[index+2*plane]
}

// ToImage converts the film into a standard image for encoding. Image row
// 0 is the top of the frame, matching the buffer layout.
func (f *Film) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	plane := f.Width * f.Height
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			index := y*f.Width + x
			img.SetRGBA(x, y, color.RGBA{
				R: f.Pix[index],
				G: f.Pix[index+plane],
				B: f.Pix[index+2*plane],
				A: 255,
			})
		}
	}
	return img
}
