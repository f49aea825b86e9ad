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
		ID:          "room",
		Description: "Closed room of colored walls around a red sphere",
	}, NewRoomScene)
}

// NewRoomScene builds a closed room bounded by six planes, with a single
// diffuse sphere and one point light inside.
func NewRoomScene() (*Scene, error) {
	camera := renderer.NewCamera(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 0, 1),
		60*math.Pi/180,
		1280, 720,
	)

	green := material.NewDiffuse(core.NewVec3(0, 0.7, 0.2))
	blue := material.NewDiffuse(core.NewVec3(0.3, 0.1, 0.8))
	red := material.NewDiffuse(core.NewVec3(0.9, 0.1, 0))
	white := material.NewDiffuse(core.NewVec3(1, 1, 1))

	s := NewScene(camera)
	s.Add(
		geometry.NewSphere(core.NewVec3(4, 0, 0), 1, red),
		geometry.NewPlane(core.NewVec3(0, 3, 0), core.NewVec3(0, 3, 0), red),
		geometry.NewPlane(core.NewVec3(0, -3, 0), core.NewVec3(0, 3, 0), blue),
		geometry.NewPlane(core.NewVec3(0, 0, 3), core.NewVec3(0, 0, 2), green),
		geometry.NewPlane(core.NewVec3(0, 0, -1.5), core.NewVec3(0, 0, 2), blue),
		geometry.NewPlane(core.NewVec3(9, 0, 0), core.NewVec3(1, 0, 0), white),
		geometry.NewPlane(core.NewVec3(-3, 0, 0), core.NewVec3(1, 0, 0), blue),
	)
	s.AddLight(core.NewVec3(2, -2, 2), core.NewVec3(40, 40, 40))
	return s, nil
}
