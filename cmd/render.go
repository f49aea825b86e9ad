package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/mem"
	"github.com/urfave/cli"
	"golang.org/x/image/bmp"

	"github.com/White-Link/PathTracer/pkg/integrator"
	"github.com/White-Link/PathTracer/pkg/renderer"
	"github.com/White-Link/PathTracer/pkg/scene"
)

// Render a still frame of a built-in or mesh scene.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	opts := renderer.Options{
		Depth:      ctx.Int("depth"),
		Samples:    ctx.Int("samples"),
		AntiAlias:  ctx.Bool("aa"),
		Progress:   !ctx.Bool("no-progress"),
		Seed:       ctx.Int64("seed"),
		NumWorkers: ctx.Int("workers"),
	}
	if opts.Depth < 0 {
		return errors.New("depth must be non-negative")
	}
	if opts.Samples < 0 {
		return errors.New("samples must be non-negative")
	}

	sc, err := buildScene(ctx)
	if err != nil {
		return err
	}

	logSystemInfo()
	logger.Infof("scene holds %d surfaces and %d lights", sc.PrimitiveCount(), len(sc.Lights))

	if err := sc.Preprocess(opts.Seed); err != nil {
		return err
	}

	in := integrator.New(sc.Objects(), sc.Lights)
	r := renderer.New(sc.Camera, in, opts)
	film := renderer.NewFilm(sc.Camera.Width(), sc.Camera.Height())

	stats := r.Render(film)
	displayFrameStats(stats)

	out := ctx.String("out")
	if err := writeImage(film, out); err != nil {
		return err
	}
	logger.Noticef("wrote %s", out)
	return nil
}

// buildScene resolves the scene argument: a registered scene name, or a
// Wavefront OBJ path when --mesh is set.
func buildScene(ctx *cli.Context) (*scene.Scene, error) {
	if meshPath := ctx.String("mesh"); meshPath != "" {
		return scene.NewMeshScene(meshPath, ctx.String("texture"))
	}
	if ctx.NArg() != 1 {
		return nil, errors.New("missing scene name argument (see list-scenes)")
	}
	return scene.Build(ctx.Args().First())
}

// writeImage encodes the film to PNG or BMP depending on the extension
func writeImage(film *renderer.Film, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	img := film.ToImage()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(file, img)
	case ".bmp":
		err = bmp.Encode(file, img)
	default:
		return fmt.Errorf("unsupported output format %q (use .png or .bmp)", filepath.Ext(path))
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

func displayFrameStats(stats renderer.Stats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Frame", "Primary rays", "Workers", "Render time"})
	table.Append([]string{
		fmt.Sprintf("%dx%d", stats.Width, stats.Height),
		fmt.Sprintf("%d", stats.PrimaryRays),
		fmt.Sprintf("%d", stats.Workers),
		stats.Elapsed.String(),
	})
	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}

// logSystemInfo reports the host the frame is rendered on. Failures are
// logged and otherwise ignored.
func logSystemInfo() {
	cpuInfo, err := cpu.Info()
	if err != nil || len(cpuInfo) == 0 {
		logger.Debugf("could not query cpu info: %v", err)
		return
	}
	memInfo, err := mem.VirtualMemory()
	if err != nil {
		logger.Debugf("could not query memory info: %v", err)
		return
	}
	logger.Infof("rendering on %s (%d logical cores, %.1f GB ram)",
		cpuInfo[0].ModelName, len(cpuInfo), float64(memInfo.Total)/(1024*1024*1024))
}
