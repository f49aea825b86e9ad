package scene

import (
	"math"

	"github.com/White-Link/PathTracer/pkg/core"
	"github.com/White-Link/PathTracer/pkg/geometry"
	"github.com/White-Link/PathTracer/pkg/material"
	"github.com/White-Link/PathTracer/pkg/renderer"
)

func init() {
	register(Info{
		ID:          "spheres",
		Description: "Glass, mirror and glossy spheres over a checker of planes",
	}, NewSpheresScene)
}

// NewSpheresScene builds a showcase of the material model: a refractive
// glass sphere, a pure mirror, a glossy sphere and a diffuse one, lit by
// two point lights inside a half-open room.
func NewSpheresScene() (*Scene, error) {
	camera := renderer.NewCamera(
		core.NewVec3(0, 0, 0.5),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 0, 1),
		70*math.Pi/180,
		1280, 720,
	)

	glass := material.NewTransparent(core.NewVec3(0.9, 0.1, 0), core.NewVec3(0.95, 0.95, 0.95), 0, true, 1.33)
	dense := material.NewTransparent(core.NewVec3(0.9, 0.1, 0), core.NewVec3(0.9, 0.6, 0.6), 0.2, true, 1.8)
	mirror := material.NewMirror(core.NewVec3(0.95, 0.95, 0.95))
	glossy := material.NewGlossy(core.NewVec3(0.2, 0.3, 0.8), core.NewVec3(1, 1, 1), 0.4, 30)
	matte := material.NewDiffuse(core.NewVec3(0.8, 0.7, 0.2))

	floor := material.NewDiffuse(core.NewVec3(0.7, 0.7, 0.7))
	back := material.NewDiffuse(core.NewVec3(0.2, 0.5, 0.3))

	s := NewScene(camera)
	s.Add(
		geometry.NewSphere(core.NewVec3(4, -1.4, 0.2), 0.7, glass),
		geometry.NewSphere(core.NewVec3(5, 1.4, 0.3), 0.8, dense),
		geometry.NewSphere(core.NewVec3(6.5, 0, 0.6), 1.1, mirror),
		geometry.NewSphere(core.NewVec3(3.2, 0.4, -0.3), 0.35, glossy),
		geometry.NewSphere(core.NewVec3(3.5, -0.6, -0.45), 0.25, matte),
		geometry.NewPlane(core.NewVec3(0, 0, -0.8), core.NewVec3(0, 0, 1), floor),
		geometry.NewPlane(core.NewVec3(9, 0, 0), core.NewVec3(1, 0, 0), back),
	)
	s.AddLight(core.NewVec3(1, -2, 3), core.NewVec3(60, 60, 60))
	s.AddLight(core.NewVec3(2, 2.5, 2), core.NewVec3(25, 25, 30))
	return s, nil
}
