package scene

import (
	"fmt"
	"math"

	"github.com/White-Link/PathTracer/pkg/core"
	"github.com/White-Link/PathTracer/pkg/geometry"
	"github.com/White-Link/PathTracer/pkg/loaders"
	"github.com/White-Link/PathTracer/pkg/material"
	"github.com/White-Link/PathTracer/pkg/renderer"
)

// NewMeshScene loads a Wavefront OBJ file and stages it on a ground
// plane under a pair of point lights. texturePath may be empty; when set,
// the image is used as the diffuse texture of the mesh.
func NewMeshScene(objPath, texturePath string) (*Scene, error) {
	data, err := loaders.LoadOBJ(objPath)
	if err != nil {
		return nil, fmt.Errorf("loading mesh scene: %w", err)
	}

	opts := loaders.MeshOptions{
		Material: material.NewDiffuse(core.NewVec3(0.75, 0.71, 0.68)),
	}
	if texturePath != "" {
		texture, err := loaders.LoadTexture(texturePath)
		if err != nil {
			return nil, fmt.Errorf("loading mesh scene: %w", err)
		}
		opts.DiffuseTexture = texture
	}

	triangles, err := loaders.BuildMesh(data, opts)
	if err != nil {
		return nil, fmt.Errorf("loading mesh scene: %w", err)
	}

	// Frame the mesh from its bounding box
	bounds := triangles[0].BoundingBox()
	for _, tri := range triangles[1:] {
		bounds = bounds.Union(tri.BoundingBox())
	}
	center := bounds.Center()
	extent := bounds.Max.Subtract(bounds.Min).Length()

	camera := renderer.NewCamera(
		center.Add(core.NewVec3(-1.2*extent, 0, 0.35*extent)),
		core.NewVec3(1, 0, -0.3),
		core.NewVec3(0.3, 0, 1),
		55*math.Pi/180,
		1280, 720,
	)

	ground := material.NewDiffuse(core.NewVec3(0.55, 0.55, 0.5))

	s := NewScene(camera)
	s.Add(triangles...)
	s.Add(geometry.NewPlane(bounds.Min, core.NewVec3(0, 0, 1), ground))
	s.AddLight(center.Add(core.NewVec3(-extent, -extent, 1.5*extent)),
		core.NewVec3(1, 1, 1).Multiply(30*extent*extent))
	s.AddLight(center.Add(core.NewVec3(-0.5*extent, extent, extent)),
		core.NewVec3(1, 0.9, 0.8).Multiply(12*extent*extent))
	return s, nil
}
