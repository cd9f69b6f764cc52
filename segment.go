package sweepline

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidSegment is returned for segments of zero length or with non-finite coordinates.
var ErrInvalidSegment = errors.New("invalid segment")

// Endpoint marks whether the start of a (remaining) segment is an original endpoint or a split at an interior intersection.
type Endpoint int

const (
	Exterior Endpoint = iota
	Interior
)

func (k Endpoint) String() string {
	if k == Interior {
		return "interior"
	}
	return "exterior"
}

// Segment is a straight line segment with Left <= Right in sweep order. ID is a label chosen by the caller and is reported with the intersections.
type Segment struct {
	ID          int
	Left, Right Point
}

// NewSegment returns the segment between a and b with its endpoints ordered.
func NewSegment(id int, a, b Point) (Segment, error) {
	if b.Less(a) {
		a, b = b, a
	}
	s := Segment{id, a, b}
	if err := s.Validate(); err != nil {
		return Segment{}, err
	}
	return s, nil
}

// MustNewSegment is like NewSegment but panics on invalid input.
func MustNewSegment(id int, x0, y0, x1, y1 float64) Segment {
	s, err := NewSegment(id, Point{x0, y0}, Point{x1, y1})
	if err != nil {
		panic(err)
	}
	return s
}

// Validate checks that the segment has finite coordinates, a non-zero length, and ordered endpoints.
func (s Segment) Validate() error {
	if !finite(s.Left.X) || !finite(s.Left.Y) || !finite(s.Right.X) || !finite(s.Right.Y) {
		return fmt.Errorf("%w: non-finite coordinate in %v", ErrInvalidSegment, s)
	} else if s.Left.Equals(s.Right) {
		return fmt.Errorf("%w: zero length at %v", ErrInvalidSegment, s.Left)
	} else if s.Right.Less(s.Left) {
		return fmt.Errorf("%w: endpoints out of order in %v", ErrInvalidSegment, s)
	}
	return nil
}

// Vertical returns true if the segment is vertical.
func (s Segment) Vertical() bool {
	return Equal(s.Left.X, s.Right.X)
}

// Bounds returns the bounding box.
func (s Segment) Bounds() Rect {
	return EmptyRect.AddPoint(s.Left).AddPoint(s.Right)
}

// HasEndpoint returns true if p is one of the endpoints.
func (s Segment) HasEndpoint(p Point) bool {
	return s.Left.Equals(p) || s.Right.Equals(p)
}

// Contains returns true if p lies on the closed segment.
func (s Segment) Contains(p Point) bool {
	return contains(s.Left, s.Right, s.Left, s.Right, p)
}

// contains returns true if p lies on the line through a0-a1 and between from and to in sweep order.
func contains(a0, a1, from, to, p Point) bool {
	return from.Compare(p) <= 0 && p.Compare(to) <= 0 && collinear(p, a0, a1)
}

// yAt returns the y coordinate of the segment's line at x. Outside the segment it is clamped to the endpoints.
func (s Segment) yAt(x float64) float64 {
	if x <= s.Left.X {
		return s.Left.Y
	} else if s.Right.X <= x {
		return s.Right.Y
	}
	t := (x - s.Left.X) / (s.Right.X - s.Left.X)
	return s.Left.Interpolate(s.Right, t).Y
}

func (s Segment) String() string {
	return fmt.Sprintf("%d(%v−%v)", s.ID, s.Left, s.Right)
}

////////////////////////////////////////////////////////////////

// Intersects returns true if both segments share at least one point, including touching endpoints and overlapping parts.
func Intersects(a, b Segment) bool {
	if !a.Bounds().Touches(b.Bounds()) {
		return false
	}
	_, ok := IntersectionPoint(a, b)
	return ok
}

// IntersectionPoint returns the point where both segments intersect. When they touch at an endpoint, that endpoint is returned exactly. When they are collinear and overlap, the first point of the overlap in sweep order is returned. It returns false when the segments do not intersect or when the computation is numerically ill-conditioned.
func IntersectionPoint(a, b Segment) (Point, bool) {
	a0, a1, b0, b1 := a.Left, a.Right, b.Left, b.Right
	da := a1.Sub(a0)
	db := b1.Sub(b0)
	lenA, lenB := da.Length(), db.Length()
	if lenA == 0.0 || lenB == 0.0 || !finite(lenA) || !finite(lenB) {
		return Point{}, false
	}

	div := da.PerpDot(db)
	if Equal(div/lenA/lenB, 0.0) {
		// parallel
		if lo, _, ok := Overlap(a, b); ok {
			return lo, true
		}
		return Point{}, false
	}

	// handle common cases with endpoints to avoid numerical issues
	if a0.Equals(b0) || a0.Equals(b1) {
		return a0, true
	} else if a1.Equals(b0) || a1.Equals(b1) {
		return a1, true
	}

	ta := db.PerpDot(a0.Sub(b0)) / div
	tb := da.PerpDot(a0.Sub(b0)) / div
	if !finite(ta) || !finite(tb) {
		return Point{}, false
	}
	if !Interval(ta, 0.0, 1.0) || !Interval(tb, 0.0, 1.0) {
		return Point{}, false
	}

	// snap endpoints that lie on the other segment
	if Equal(ta, 0.0) {
		return a0, true
	} else if Equal(ta, 1.0) {
		return a1, true
	} else if Equal(tb, 0.0) {
		return b0, true
	} else if Equal(tb, 1.0) {
		return b1, true
	}
	p := a0.Interpolate(a1, ta)
	if !finite(p.X) || !finite(p.Y) {
		return Point{}, false
	}
	return p, true
}

// Overlap returns the shared part of two collinear segments. The returned points are equal when the segments only touch.
func Overlap(a, b Segment) (Point, Point, bool) {
	if !collinear(b.Left, a.Left, a.Right) || !collinear(b.Right, a.Left, a.Right) {
		return Point{}, Point{}, false
	}
	lo, hi := a.Left, a.Right
	if lo.Less(b.Left) {
		lo = b.Left
	}
	if b.Right.Less(hi) {
		hi = b.Right
	}
	if hi.Less(lo) {
		return Point{}, Point{}, false
	}
	return lo, hi, true
}

func cmpFloat(a, b float64) int {
	if Equal(a, b) {
		return 0
	} else if a < b {
		return -1
	}
	return 1
}

// compareDirection orders segments by their direction towards the right, from steepest downwards to vertical.
func compareDirection(a, b Segment) int {
	if a.Vertical() {
		if b.Vertical() {
			return 0
		}
		return 1
	} else if b.Vertical() {
		return -1
	}
	da := a.Right.Sub(a.Left)
	db := b.Right.Sub(b.Left)
	// sine of the angle from a to b, positive when b turns CCW from a
	sin := da.PerpDot(db) / da.Length() / db.Length()
	if math.IsNaN(sin) {
		return 0
	}
	return cmpFloat(0.0, sin)
}
