package core

import (
	"math"
	"testing"
)

func TestNewAABB_SortsCorners(t *testing.T) {
	box := NewAABB(NewVec3(1, -2, 5), NewVec3(-1, 2, 3))
	if box.Min != NewVec3(-1, -2, 3) || box.Max != NewVec3(1, 2, 5) {
		t.Errorf("corners not sorted: min=%v max=%v", box.Min, box.Max)
	}
	if !box.IsValid() {
		t.Error("sorted box reported invalid")
	}
}

func TestAABB_Entry(t *testing.T) {
	unit := NewAABB(NewVec3(-1, -1, -1), NewVec3(1, 1, 1))

	tests := []struct {
		name      string
		ray       Ray
		wantHit   bool
		wantEntry float64
	}{
		{
			name:      "outside hit",
			ray:       NewRay(NewVec3(-3, 0, 0), NewVec3(1, 0, 0)),
			wantHit:   true,
			wantEntry: 2,
		},
		{
			name:      "inside has zero entry distance",
			ray:       NewRay(NewVec3(0, 0, 0), NewVec3(1, 0, 0)),
			wantHit:   true,
			wantEntry: 0,
		},
		{
			name:    "behind the origin",
			ray:     NewRay(NewVec3(3, 0, 0), NewVec3(1, 0, 0)),
			wantHit: false,
		},
		{
			name:    "parallel miss",
			ray:     NewRay(NewVec3(-3, 2, 0), NewVec3(1, 0, 0)),
			wantHit: false,
		},
		{
			name:      "axis-parallel inside the slab",
			ray:       NewRay(NewVec3(-3, 0.5, 0.5), NewVec3(1, 0, 0)),
			wantHit:   true,
			wantEntry: 2,
		},
		{
			name:      "diagonal",
			ray:       NewRay(NewVec3(-2, -2, -2), NewVec3(1, 1, 1)),
			wantHit:   true,
			wantEntry: math.Sqrt(3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, hit := unit.Entry(tt.ray)
			if hit != tt.wantHit {
				t.Fatalf("hit = %v, want %v", hit, tt.wantHit)
			}
			if hit && math.Abs(entry-tt.wantEntry) > 1e-9 {
				t.Errorf("entry = %v, want %v", entry, tt.wantEntry)
			}
			if got := unit.Hit(tt.ray); got != tt.wantHit {
				t.Errorf("Hit = %v, want %v", got, tt.wantHit)
			}
		})
	}
}

func TestAABB_UnionContainsOperands(t *testing.T) {
	a := NewAABB(NewVec3(-1, -1, -1), NewVec3(0, 0, 0))
	b := NewAABB(NewVec3(2, 2, 2), NewVec3(3, 5, 3))
	u := a.Union(b)

	if !u.Contains(a) || !u.Contains(b) {
		t.Errorf("union %v does not contain its operands", u)
	}
	if u.Min != a.Min || u.Max != b.Max {
		t.Errorf("union = %v, want [%v, %v]", u, a.Min, b.Max)
	}
}

func TestAABB_UnionAlgebra(t *testing.T) {
	a := NewAABB(NewVec3(-1, 0, -1), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(0, -2, 0), NewVec3(2, 0, 2))
	c := NewAABB(NewVec3(-3, -3, -3), NewVec3(-2, -2, -2))

	if a.Union(b) != b.Union(a) {
		t.Error("union is not commutative")
	}
	if a.Union(b).Union(c) != a.Union(b.Union(c)) {
		t.Error("union is not associative")
	}
	if a.Union(a) != a {
		t.Error("union is not idempotent")
	}
}

func TestAABB_Center(t *testing.T) {
	box := NewAABB(NewVec3(0, 0, 0), NewVec3(2, 4, 6))
	if got := box.Center(); got != NewVec3(1, 2, 3) {
		t.Errorf("Center = %v", got)
	}
}

func TestNewAABBFromPoints(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(1, 5, -2), NewVec3(-3, 0, 4), NewVec3(0, 1, 0))
	if box.Min != NewVec3(-3, 0, -2) || box.Max != NewVec3(1, 5, 4) {
		t.Errorf("bounds = %v", box)
	}
}
