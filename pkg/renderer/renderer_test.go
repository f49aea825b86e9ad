package renderer

import (
	"bytes"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/White-Link/PathTracer/pkg/core"
	"github.com/White-Link/PathTracer/pkg/geometry"
	"github.com/White-Link/PathTracer/pkg/integrator"
	"github.com/White-Link/PathTracer/pkg/material"
)

// testSetup builds a renderer over a lit floor seen from above
func testSetup(opts Options) (*Renderer, *Film) {
	floor := geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1),
		material.NewDiffuse(core.NewVec3(0.6, 0.6, 0.6)))
	in := integrator.New(geometry.LinearSet{floor}, []core.Light{
		core.NewLight(core.NewVec3(0, 0, 3), core.NewVec3(40, 40, 40)),
	})
	camera := NewCamera(
		core.NewVec3(0, 0, 2),
		core.NewVec3(0, 0, -1),
		core.NewVec3(0, 1, 0),
		math.Pi/3,
		16, 12,
	)
	return New(camera, in, opts), NewFilm(16, 12)
}

func TestRenderer_FillsEveryPixel(t *testing.T) {
	opts := DefaultOptions()
	opts.Samples = 0
	opts.Progress = false
	r, film := testSetup(opts)

	stats := r.Render(film)

	for i := 0; i < film.Height; i++ {
		for j := 0; j < film.Width; j++ {
			red, _, _ := film.At(i, j)
			if red == 0 {
				t.Fatalf("pixel (%d, %d) was never shaded", i, j)
			}
		}
	}
	if stats.Width != 16 || stats.Height != 12 {
		t.Errorf("stats dimensions = %dx%d", stats.Width, stats.Height)
	}
	if stats.PrimaryRays != 16*12 {
		t.Errorf("primary rays = %d, want %d", stats.PrimaryRays, 16*12)
	}
	if stats.Workers < 1 {
		t.Errorf("workers = %d", stats.Workers)
	}
}

func TestRenderer_LightFalloffAcrossFrame(t *testing.T) {
	opts := DefaultOptions()
	opts.Samples = 0
	opts.Progress = false
	r, film := testSetup(opts)
	r.Render(film)

	// The light sits on the camera axis, so the floor directly below it
	// is brighter than the frame corners.
	center, _, _ := film.At(6, 8)
	corner, _, _ := film.At(0, 0)
	if center <= corner {
		t.Errorf("center %d should outshine corner %d under an axial light", center, corner)
	}
}

func TestRenderer_WorkerCountDoesNotChangeResult(t *testing.T) {
	render := func(workers int) []uint8 {
		opts := DefaultOptions()
		opts.Samples = 0
		opts.Progress = false
		opts.NumWorkers = workers
		r, film := testSetup(opts)
		r.Render(film)
		return film.Pix
	}

	serial := render(1)
	parallel := render(8)
	if !bytes.Equal(serial, parallel) {
		t.Error("worker count changed the deterministic render output")
	}
}

func TestRenderer_SeedReproducibility(t *testing.T) {
	render := func(seed int64) []uint8 {
		opts := DefaultOptions()
		opts.Samples = 4
		opts.AntiAlias = true
		opts.Progress = false
		opts.NumWorkers = 1
		opts.Seed = seed
		r, film := testSetup(opts)
		r.Render(film)
		return film.Pix
	}

	a := render(7)
	b := render(7)
	if !bytes.Equal(a, b) {
		t.Error("same seed must reproduce the frame bit for bit")
	}
}

// A direct-lighting frame is deterministic, so its bytes can be pinned
// against hand-computed values. A light of intensity 4*pi co-located with
// the camera two units above the floor reduces each pixel's radiance to
// albedo*cos^3 of the viewing angle, which gamma-encodes to the grid below.
func TestRenderer_ReferenceFrame(t *testing.T) {
	floor := geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1),
		material.NewDiffuse(core.NewVec3(0.6, 0.6, 0.6)))
	in := integrator.New(geometry.LinearSet{floor}, []core.Light{
		core.NewLight(core.NewVec3(0, 0, 2), core.NewVec3(4*math.Pi, 4*math.Pi, 4*math.Pi)),
	})
	camera := NewCamera(
		core.NewVec3(0, 0, 2),
		core.NewVec3(0, 0, -1),
		core.NewVec3(0, 1, 0),
		math.Pi/2,
		3, 3,
	)

	opts := DefaultOptions()
	opts.Samples = 0
	opts.Progress = false
	film := NewFilm(3, 3)
	New(camera, in, opts).Render(film)

	want := [3][3]uint8{
		{131, 157, 131},
		{157, 202, 157},
		{131, 157, 131},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			red, green, blue := film.At(i, j)
			for _, got := range [3]uint8{red, green, blue} {
				if d := int(got) - int(want[i][j]); d < -1 || d > 1 {
					t.Errorf("pixel (%d, %d) = (%d, %d, %d), want %d within one step",
						i, j, red, green, blue, want[i][j])
				}
			}
		}
	}
}

// Anti-aliasing must jitter even a budget of one sample per pixel.
func TestRenderer_AntiAliasJittersSingleSample(t *testing.T) {
	opts := DefaultOptions()
	opts.Samples = 1
	opts.AntiAlias = true
	opts.Progress = false
	r, _ := testSetup(opts)

	random := rand.New(rand.NewSource(3))
	jittered := r.renderPixel(6, 8, random)

	centered := r.integrator.Shade(r.camera.Launch(6, 8, 0, 0), opts.Depth, 1, 1, 1, random)
	if jittered == centered {
		t.Error("single-sample anti-aliasing left the primary ray on the pixel center")
	}
}

func TestRenderer_AntiAliasCountsAllSamples(t *testing.T) {
	opts := DefaultOptions()
	opts.Samples = 4
	opts.AntiAlias = true
	opts.Progress = false
	r, film := testSetup(opts)

	stats := r.Render(film)
	if stats.PrimaryRays != 16*12*4 {
		t.Errorf("primary rays = %d, want %d", stats.PrimaryRays, 16*12*4)
	}
}

func TestRenderer_ProgressOutput(t *testing.T) {
	opts := DefaultOptions()
	opts.Samples = 0
	opts.Progress = true
	r, film := testSetup(opts)

	var buf bytes.Buffer
	r.ProgressSink = &buf
	r.Render(film)

	out := buf.String()
	if !strings.Contains(out, "100.00%") {
		t.Errorf("progress output %q should reach 100%%", out)
	}
	if !strings.Contains(out, "=") {
		t.Errorf("progress output %q should draw a bar", out)
	}
}
