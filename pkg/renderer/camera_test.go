package renderer

import (
	"math"
	"testing"

	"github.com/White-Link/PathTracer/pkg/core"
)

func TestCamera_LaunchDirections(t *testing.T) {
	// 2x2 frame with a 90° vertical field of view puts the virtual
	// screen one pixel-unit away.
	camera := NewCamera(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 0, 1),
		math.Pi/2,
		2, 2,
	)

	tests := []struct {
		name string
		i, j int
		want core.Vec3
	}{
		{"bottom-left", 0, 0, core.NewVec3(1, -0.5, -0.5)},
		{"bottom-right", 0, 1, core.NewVec3(1, 0.5, -0.5)},
		{"top-left", 1, 0, core.NewVec3(1, -0.5, 0.5)},
		{"top-right", 1, 1, core.NewVec3(1, 0.5, 0.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.Launch(tt.i, tt.j, 0, 0)
			if ray.Origin != (core.Vec3{}) {
				t.Errorf("origin = %v, want camera position", ray.Origin)
			}
			want := tt.want.Normalize()
			if ray.Direction.Subtract(want).Length() > 1e-12 {
				t.Errorf("direction = %v, want %v", ray.Direction, want)
			}
		})
	}
}

func TestCamera_LaunchSymmetry(t *testing.T) {
	camera := NewCamera(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 0, 1),
		60*math.Pi/180,
		8, 6,
	)

	// Mirrored pixels launch mirrored rays
	a := camera.Launch(0, 0, 0, 0).Direction
	b := camera.Launch(5, 7, 0, 0).Direction
	if math.Abs(a.Y+b.Y) > 1e-12 || math.Abs(a.Z+b.Z) > 1e-12 || math.Abs(a.X-b.X) > 1e-12 {
		t.Errorf("corner rays %v and %v are not mirrored", a, b)
	}
}

func TestCamera_JitterMovesRay(t *testing.T) {
	camera := NewCamera(
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 0, 1),
		math.Pi/3,
		16, 16,
	)

	base := camera.Launch(8, 8, 0, 0).Direction
	jittered := camera.Launch(8, 8, 0.3, -0.2).Direction
	if base.Subtract(jittered).Length() == 0 {
		t.Error("sub-pixel offsets should perturb the ray direction")
	}
}
