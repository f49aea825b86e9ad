package renderer

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/White-Link/PathTracer/pkg/core"
	"github.com/White-Link/PathTracer/pkg/integrator"
)

// jitterSigma is the standard deviation, in pixels, of the Gaussian
// sub-pixel jitter used for anti-aliasing.
const jitterSigma = 0.5

// Options configures a render
type Options struct {
	Depth      int   // Maximum recursion depth, non-negative
	Samples    int   // Stochastic sample budget; 0 yields direct lighting only
	AntiAlias  bool  // Jitter sub-pixel sample positions
	Progress   bool  // Report textual progress while rendering
	Seed       int64 // Base seed for the per-worker generators
	NumWorkers int   // Worker goroutines; <=0 means GOMAXPROCS
}

// DefaultOptions returns sensible render defaults
func DefaultOptions() Options {
	return Options{
		Depth:   3,
		Samples: 32,
		Seed:    1,
	}
}

// Renderer drives the per-pixel rendering loop, distributing image rows
// over a pool of workers.
type Renderer struct {
	camera     *Camera
	integrator *integrator.Integrator
	opts       Options

	// Sink for the progress indicator, settable for tests
	ProgressSink io.Writer
}

// New creates a renderer for the given camera and integrator
func New(camera *Camera, in *integrator.Integrator, opts Options) *Renderer {
	return &Renderer{camera: camera, integrator: in, opts: opts}
}

// Stats summarizes a completed render
type Stats struct {
	Width       int
	Height      int
	PrimaryRays int
	Workers     int
	Elapsed     time.Duration
}

// Render renders the scene into the film. Rows are handed to workers one
// at a time; every worker owns an independently seeded random generator,
// so no sampling state is shared between rows.
func (r *Renderer) Render(film *Film) Stats {
	start := time.Now()

	numWorkers := r.opts.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	height := r.camera.Height()
	rows := make(chan int, height)
	for i := 0; i < height; i++ {
		rows <- i
	}
	close(rows)

	progress := newProgressCounter(height, r.opts.Progress, r.ProgressSink)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			random := rand.New(rand.NewSource(r.opts.Seed + int64(workerID)))
			for i := range rows {
				r.renderRow(film, i, random)
				progress.rowDone()
			}
		}(w)
	}
	wg.Wait()
	progress.finish()

	width := r.camera.Width()
	raysPerPixel := 1
	if r.opts.AntiAlias && r.opts.Samples > 0 {
		raysPerPixel = r.opts.Samples
	}

	return Stats{
		Width:       width,
		Height:      height,
		PrimaryRays: width * height * raysPerPixel,
		Workers:     numWorkers,
		Elapsed:     time.Since(start),
	}
}

// renderRow renders all pixels of row i sequentially
func (r *Renderer) renderRow(film *Film, i int, random *rand.Rand) {
	for j := 0; j < r.camera.Width(); j++ {
		film.Set(i, j, r.renderPixel(i, j, random))
	}
}

// renderPixel computes the radiance for one pixel. Without anti-aliasing a
// single primary ray carries the full sample budget; with it, the budget
// is spent on Gaussian-jittered rays of one sample each.
func (r *Renderer) renderPixel(i, j int, random *rand.Rand) core.Vec3 {
	if !r.opts.AntiAlias || r.opts.Samples < 1 {
		ray := r.camera.Launch(i, j, 0, 0)
		return r.integrator.Shade(ray, r.opts.Depth, r.opts.Samples, 1, 1, random)
	}

	var sum core.Vec3
	for s := 0; s < r.opts.Samples; s++ {
		di, dj := core.SampleGaussianPair(random)
		ray := r.camera.Launch(i, j, di*jitterSigma, dj*jitterSigma)
		sum = sum.Add(r.integrator.Shade(ray, r.opts.Depth, 1, 1, 1, random))
	}
	return sum.Multiply(1 / float64(r.opts.Samples))
}

// progressCounter tracks finished rows under a mutex shared by all
// workers and redraws a textual bar.
type progressCounter struct {
	mu      sync.Mutex
	done    int
	total   int
	enabled bool
	sink    io.Writer
}

func newProgressCounter(total int, enabled bool, sink io.Writer) *progressCounter {
	if sink == nil {
		sink = os.Stderr
	}
	return &progressCounter{total: total, enabled: enabled, sink: sink}
}

func (p *progressCounter) rowDone() {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done++
	p.draw()
}

// draw renders a 70-column progress bar. Callers hold the mutex.
func (p *progressCounter) draw() {
	const width = 70
	fraction := float64(p.done) / float64(p.total)
	filled := int(fraction * width)

	var bar strings.Builder
	bar.WriteByte('[')
	for i := 0; i < width; i++ {
		switch {
		case i < filled:
			bar.WriteByte('=')
		case i == filled:
			bar.WriteByte('>')
		default:
			bar.WriteByte(' ')
		}
	}
	fmt.Fprintf(p.sink, "\r%s] %6.2f%%", bar.String(), fraction*100)
}

func (p *progressCounter) finish() {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.sink)
}
