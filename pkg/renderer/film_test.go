package renderer

import (
	"math"
	"testing"

	"github.com/White-Link/PathTracer/pkg/core"
)

func TestFilm_PlanarLayout(t *testing.T) {
	film := NewFilm(3, 2)
	film.Gamma = 1 // Disable correction to check raw byte placement

	// Scene row 1 is the top of the frame, so it lands in buffer row 0
	film.Set(1, 2, core.NewVec3(1, 0.5, 0.25))

	plane := 3 * 2
	index := 0*3 + 2
	if film.Pix[index] != 255 {
		t.Errorf("red plane byte = %d, want 255", film.Pix[index])
	}
	if got := film.Pix[index+plane]; got != 127 {
		t.Errorf("green plane byte = %d, want 127", got)
	}
	if got := film.Pix[index+2*plane]; got != 63 {
		t.Errorf("blue plane byte = %d, want 63", got)
	}

	r, g, b := film.At(1, 2)
	if r != 255 || g != 127 || b != 63 {
		t.Errorf("At = (%d, %d, %d)", r, g, b)
	}
}

func TestFilm_GammaCorrection(t *testing.T) {
	film := NewFilm(1, 1)
	film.Set(0, 0, core.NewVec3(0.5, 0.5, 0.5))

	want := uint8(255 * math.Pow(0.5, 1/2.2))
	r, _, _ := film.At(0, 0)
	if r != want {
		t.Errorf("gamma-corrected byte = %d, want %d", r, want)
	}
}

func TestFilm_ClampsOverbright(t *testing.T) {
	film := NewFilm(1, 1)
	film.Set(0, 0, core.NewVec3(40, 0, 1))

	r, g, b := film.At(0, 0)
	if r != 255 || g != 0 || b != 255 {
		t.Errorf("clamped color = (%d, %d, %d), want (255, 0, 255)", r, g, b)
	}
}

func TestFilm_ToImageTopRow(t *testing.T) {
	film := NewFilm(2, 2)
	film.Gamma = 1
	film.Set(1, 0, core.NewVec3(1, 0, 0)) // Top-left of the scene

	img := film.ToImage()
	c := img.RGBAAt(0, 0)
	if c.R != 255 || c.G != 0 || c.B != 0 || c.A != 255 {
		t.Errorf("image top-left = %+v, want opaque red", c)
	}
}
