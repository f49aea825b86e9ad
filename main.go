package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/White-Link/PathTracer/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "pathtracer"
	app.Usage = "render scenes using stochastic ray tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a single frame",
			Description: `
Render a built-in scene, or a Wavefront OBJ mesh when --mesh is given.
The output format is chosen from the file extension (.png or .bmp).`,
			ArgsUsage: "scene_name",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "depth",
					Value: 3,
					Usage: "maximum ray recursion depth",
				},
				cli.IntFlag{
					Name:  "samples",
					Value: 50,
					Usage: "stochastic samples per shading point (0 disables indirect lighting)",
				},
				cli.BoolFlag{
					Name:  "aa",
					Usage: "jitter sub-pixel sample positions",
				},
				cli.BoolFlag{
					Name:  "no-progress",
					Usage: "disable the progress indicator",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: 1,
					Usage: "base seed for the sampling generators",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "worker goroutines (defaults to GOMAXPROCS)",
				},
				cli.StringFlag{
					Name:  "mesh",
					Usage: "render a Wavefront OBJ file instead of a built-in scene",
				},
				cli.StringFlag{
					Name:  "texture",
					Usage: "diffuse texture image for --mesh (png, jpeg or bmp)",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "frame.png",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "list-scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
	}

	app.Run(os.Args)
}
