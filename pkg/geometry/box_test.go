package geometry

import (
	"math"
	"testing"

	"github.com/White-Link/PathTracer/pkg/core"
)

func TestBox_Intersect(t *testing.T) {
	box := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), testMaterial())

	tests := []struct {
		name    string
		ray     core.Ray
		wantHit bool
		wantT   float64
		wantOut bool
	}{
		{
			name:    "enter from outside",
			ray:     core.NewRay(core.NewVec3(-3, 0, 0), core.NewVec3(1, 0, 0)),
			wantHit: true,
			wantT:   2,
			wantOut: true,
		},
		{
			name:    "exit from inside",
			ray:     core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)),
			wantHit: true,
			wantT:   1,
			wantOut: false,
		},
		{
			name:    "miss",
			ray:     core.NewRay(core.NewVec3(-3, 2, 0), core.NewVec3(1, 0, 0)),
			wantHit: false,
		},
		{
			name:    "box behind",
			ray:     core.NewRay(core.NewVec3(3, 0, 0), core.NewVec3(1, 0, 0)),
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inter := box.Intersect(tt.ray)
			if inter.Exists() != tt.wantHit {
				t.Fatalf("Exists = %v, want %v", inter.Exists(), tt.wantHit)
			}
			if !tt.wantHit {
				return
			}
			if math.Abs(inter.T-tt.wantT) > 1e-9 {
				t.Errorf("T = %v, want %v", inter.T, tt.wantT)
			}
			if inter.Out != tt.wantOut {
				t.Errorf("Out = %v, want %v", inter.Out, tt.wantOut)
			}
		})
	}
}

func TestBox_NormalAt(t *testing.T) {
	box := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), testMaterial())

	tests := []struct {
		name  string
		point core.Vec3
		want  core.Vec3
	}{
		{"outside +x face", core.NewVec3(1.0001, 0.2, -0.3), core.NewVec3(1, 0, 0)},
		{"outside -y face", core.NewVec3(0.1, -1.0001, 0.3), core.NewVec3(0, -1, 0)},
		{"inside near +z face", core.NewVec3(0.1, 0.2, 0.999), core.NewVec3(0, 0, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.NormalAt(tt.point, Intersection{}); got != tt.want {
				t.Errorf("NormalAt(%v) = %v, want %v", tt.point, got, tt.want)
			}
		})
	}
}
