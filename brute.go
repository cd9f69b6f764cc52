package sweepline

import (
	"fmt"
	"slices"
)

// BruteForce returns the same intersections as FindIntersections by testing every pair of segments in O(n^2). It is meant as a reference for small inputs.
func BruteForce(segs []Segment) ([]Intersection, error) {
	for i, seg := range segs {
		if err := seg.Validate(); err != nil {
			return nil, fmt.Errorf("segment %d: %w", i, err)
		}
	}

	var zs []Intersection
	add := func(p Point, a, b int) {
		for i := range zs {
			if zs[i].Point.Equals(p) {
				if !slices.Contains(zs[i].IDs, a) {
					zs[i].IDs = append(zs[i].IDs, a)
				}
				if !slices.Contains(zs[i].IDs, b) {
					zs[i].IDs = append(zs[i].IDs, b)
				}
				return
			}
		}
		ids := []int{a}
		if b != a {
			ids = append(ids, b)
		}
		zs = append(zs, Intersection{p, ids})
	}

	bounds := make([]Rect, len(segs))
	for i := range segs {
		bounds[i] = segs[i].Bounds()
	}
	for i := range segs {
		for j := i + 1; j < len(segs); j++ {
			if !bounds[i].Touches(bounds[j]) {
				continue
			}
			a, b := segs[i], segs[j]
			if lo, hi, ok := Overlap(a, b); ok {
				add(lo, a.ID, b.ID)
				add(hi, a.ID, b.ID)
			} else if p, ok := IntersectionPoint(a, b); ok {
				add(p, a.ID, b.ID)
			}
		}
	}

	for i := range zs {
		slices.Sort(zs[i].IDs)
	}
	slices.SortFunc(zs, func(a, b Intersection) int {
		return a.Point.Compare(b.Point)
	})
	return zs, nil
}
