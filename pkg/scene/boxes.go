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
		ID:          "boxes",
		Description: "Axis-aligned boxes and a glass slab on a ground plane",
	}, NewBoxesScene)
}

// NewBoxesScene builds a stack of axis-aligned boxes, one of them made of
// glass, standing on a ground plane.
func NewBoxesScene() (*Scene, error) {
	camera := renderer.NewCamera(
		core.NewVec3(-1, 0, 1.2),
		core.NewVec3(1, 0, -0.15),
		core.NewVec3(0.15, 0, 1),
		65*math.Pi/180,
		1280, 720,
	)

	brick := material.NewDiffuse(core.NewVec3(0.7, 0.25, 0.15))
	steel := material.NewGlossy(core.NewVec3(0.4, 0.4, 0.45), core.NewVec3(1, 1, 1), 0.5, 60)
	glass := material.NewTransparent(core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.9, 0.95, 0.9), 0, true, 1.5)
	ground := material.NewDiffuse(core.NewVec3(0.6, 0.6, 0.55))

	s := NewScene(camera)
	s.Add(
		geometry.NewBox(core.NewVec3(3, -1.5, 0), core.NewVec3(4, -0.5, 1), brick),
		geometry.NewBox(core.NewVec3(3.2, -1.3, 1), core.NewVec3(3.8, -0.7, 1.6), steel),
		geometry.NewBox(core.NewVec3(2.8, 0.3, 0), core.NewVec3(3.6, 1.5, 1.8), glass),
		geometry.NewSphere(core.NewVec3(4.4, 0.9, 0.5), 0.5, brick),
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), ground),
	)
	s.AddLight(core.NewVec3(0, -1, 4), core.NewVec3(80, 80, 75))
	return s, nil
}
