package geometry

import (
	"errors"
	"math/rand"

	"github.com/White-Link/PathTracer/pkg/core"
)

// ErrNoSurfaces is returned when building a BVH over an empty collection
var ErrNoSurfaces = errors.New("geometry: cannot build BVH over zero surfaces")

// BVH is a binary bounding-volume hierarchy accelerating nearest-hit
// queries. Leaves hold exactly one surface; internal nodes own exactly two
// children and a box equal to the union of the children's boxes.
type BVH struct {
	root *bvhNode
}

type bvhNode struct {
	bounds  core.AABB
	left    *bvhNode
	right   *bvhNode
	surface Surface // Non-nil for leaves only
}

// bvhItem pairs a surface with its precomputed bounding box and centroid
// during construction.
type bvhItem struct {
	surface  Surface
	bounds   core.AABB
	centroid core.Vec3
}

// NewBVH builds a BVH over the given surfaces using the provided seed for
// the random split-axis choices. Building over zero surfaces is invalid
// and returns ErrNoSurfaces.
func NewBVH(surfaces []Surface, seed int64) (*BVH, error) {
	if len(surfaces) == 0 {
		return nil, ErrNoSurfaces
	}

	items := make([]bvhItem, len(surfaces))
	for i, s := range surfaces {
		bounds := s.BoundingBox()
		items[i] = bvhItem{surface: s, bounds: bounds, centroid: bounds.Center()}
	}

	random := rand.New(rand.NewSource(seed))
	return &BVH{root: buildBVH(items, random)}, nil
}

// buildBVH recursively builds the tree. A single surface becomes a leaf;
// otherwise the set is split at the median centroid coordinate of a
// uniformly random axis. The median split halves the set at every level,
// so the recursion depth is logarithmic regardless of the input layout.
func buildBVH(items []bvhItem, random *rand.Rand) *bvhNode {
	if len(items) == 1 {
		return &bvhNode{bounds: items[0].bounds, surface: items[0].surface}
	}

	axis := random.Intn(3)
	mid := len(items) / 2
	selectByCentroid(items, mid, axis, random)

	left := buildBVH(items[:mid], random)
	right := buildBVH(items[mid:], random)

	return &bvhNode{
		bounds: left.bounds.Union(right.bounds),
		left:   left,
		right:  right,
	}
}

// selectByCentroid partially orders items so that items[k] holds the k-th
// smallest centroid coordinate on the given axis, with smaller elements
// before it and larger ones after. Expected linear time (quickselect with
// random pivots), instead of a full O(n log n) sort.
func selectByCentroid(items []bvhItem, k, axis int, random *rand.Rand) {
	lo, hi := 0, len(items)-1
	for lo < hi {
		pivot := items[lo+random.Intn(hi-lo+1)].centroid.Axis(axis)

		// Three-way partition around the pivot value
		lt, i, gt := lo, lo, hi
		for i <= gt {
			v := items[i].centroid.Axis(axis)
			switch {
			case v < pivot:
				items[lt], items[i] = items[i], items[lt]
				lt++
				i++
			case v > pivot:
				items[i], items[gt] = items[gt], items[i]
				gt--
			default:
				i++
			}
		}

		switch {
		case k < lt:
			hi = lt - 1
		case k > gt:
			lo = gt + 1
		default:
			return // items[k] equals the pivot value
		}
	}
}

// Intersect returns the nearest valid intersection of the ray with any
// surface in the hierarchy, or the empty intersection.
func (b *BVH) Intersect(ray core.Ray) Intersection {
	return b.root.intersect(ray)
}

func (n *bvhNode) intersect(ray core.Ray) Intersection {
	if !n.bounds.Hit(ray) {
		return Intersection{}
	}

	if n.surface != nil {
		return n.surface.Intersect(ray)
	}

	first := n.left.intersect(ray)

	// If the first child's hit is at least as close as the ray's entry
	// into the second child's box, nothing in that subtree can be nearer.
	entry, hitsRight := n.right.bounds.Entry(ray)
	if !hitsRight {
		return first
	}
	if first.Exists() && first.T <= entry {
		return first
	}

	return first.Closer(n.right.intersect(ray))
}

// Bounds returns the bounding box of the whole hierarchy
func (b *BVH) Bounds() core.AABB {
	return b.root.bounds
}

// Depth returns the maximum depth of the tree, counting the root as zero
func (b *BVH) Depth() int {
	return b.root.depth()
}

func (n *bvhNode) depth() int {
	if n.surface != nil {
		return 0
	}
	return 1 + max(n.left.depth(), n.right.depth())
}
