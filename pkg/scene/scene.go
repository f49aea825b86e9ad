package scene

import (
	"fmt"

	"github.com/White-Link/PathTracer/pkg/core"
	"github.com/White-Link/PathTracer/pkg/geometry"
	"github.com/White-Link/PathTracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera   *renderer.Camera
	Surfaces []geometry.Surface
	Lights   []core.Light

	bvh *geometry.BVH
}

// NewScene creates an empty scene observed by the given camera
func NewScene(camera *renderer.Camera) *Scene {
	return &Scene{
		Camera:   camera,
		Surfaces: make([]geometry.Surface, 0),
		Lights:   make([]core.Light, 0),
	}
}

// Add appends surfaces to the scene
func (s *Scene) Add(surfaces ...geometry.Surface) {
	s.Surfaces = append(s.Surfaces, surfaces...)
}

// AddLight appends a point light to the scene
func (s *Scene) AddLight(position, intensity core.Vec3) {
	s.Lights = append(s.Lights, core.NewLight(position, intensity))
}

// Preprocess prepares the scene for rendering by building the spatial
// index over its surfaces. It must be called before Objects.
func (s *Scene) Preprocess(seed int64) error {
	bvh, err := geometry.NewBVH(s.Surfaces, seed)
	if err != nil {
		return fmt.Errorf("building spatial index: %w", err)
	}
	s.bvh = bvh
	return nil
}

// Objects returns the intersectable view of the scene. It panics if the
// scene has not been preprocessed.
func (s *Scene) Objects() geometry.Container {
	if s.bvh == nil {
		panic("scene: Objects called before Preprocess")
	}
	return s.bvh
}

// PrimitiveCount returns the number of surfaces in the scene
func (s *Scene) PrimitiveCount() int {
	return len(s.Surfaces)
}
