package sweepline

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used for comparing coordinates. It is absolute for values up to one and relative to the magnitude of larger values.
var Epsilon = 1e-10

// Equal returns true if a and b are equal with tolerance Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon*math.Max(1.0, math.Max(math.Abs(a), math.Abs(b)))
}

// magnitude returns the largest absolute coordinate of the points, and at least one.
func magnitude(ps ...Point) float64 {
	m := 1.0
	for _, p := range ps {
		m = math.Max(m, math.Max(math.Abs(p.X), math.Abs(p.Y)))
	}
	return m
}

// Interval returns true if f is in closed range [lower-Epsilon,upper+Epsilon].
func Interval(f, lower, upper float64) bool {
	return lower-Epsilon <= f && f <= upper+Epsilon
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space. OP refers to the line that goes through the origin (0,0) and this point (x,y).
type Point struct {
	X, Y float64
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

// Compare orders points left to right and then bottom to top, returning -1, 0, or 1. Coordinates within Epsilon compare equal.
func (p Point) Compare(q Point) int {
	if !Equal(p.X, q.X) {
		if p.X < q.X {
			return -1
		}
		return 1
	} else if !Equal(p.Y, q.Y) {
		if p.Y < q.Y {
			return -1
		}
		return 1
	}
	return 0
}

// Less returns true if P comes before Q in sweep order.
func (p Point) Less(q Point) bool {
	return p.Compare(q) < 0
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Dot returns the dot product between OP and OQ, ie. zero if perpendicular and |OP|*|OQ| if aligned.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// PerpDot returns the perp dot product between OP and OQ, ie. zero if aligned and |OP|*|OQ| if perpendicular.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of OP.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Interpolate returns a point on PQ that is linearly interpolated by t, ie. t=0 returns P and t=1 returns Q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Side returns the orientation of P relative to the directed line P1->P2. It is positive when P lies to the left, negative when it lies to the right, and zero when the three points are collinear. The magnitude is twice the area of the triangle.
func Side(p, p1, p2 Point) float64 {
	return p2.Sub(p1).PerpDot(p.Sub(p1))
}

// collinear returns true if P lies on the line through P1 and P2, measured as the distance to the line relative to the magnitude of the points.
func collinear(p, p1, p2 Point) bool {
	d := p2.Sub(p1).Length()
	if d == 0.0 {
		return p.Equals(p1)
	}
	return math.Abs(Side(p, p1, p2)/d) < Epsilon*magnitude(p, p1, p2)
}

////////////////////////////////////////////////////////////////

// Rect is an axis-aligned bounding box.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Empty returns true if the rectangle has no extent and was never extended.
func (r Rect) Empty() bool {
	return r.X1 < r.X0 || r.Y1 < r.Y0
}

// W returns the width.
func (r Rect) W() float64 {
	return r.X1 - r.X0
}

// H returns the height.
func (r Rect) H() float64 {
	return r.Y1 - r.Y0
}

// AddPoint extends the rectangle to include p.
func (r Rect) AddPoint(p Point) Rect {
	if r.Empty() {
		return Rect{p.X, p.Y, p.X, p.Y}
	}
	return Rect{math.Min(r.X0, p.X), math.Min(r.Y0, p.Y), math.Max(r.X1, p.X), math.Max(r.Y1, p.Y)}
}

// Add returns the union of both rectangles.
func (r Rect) Add(q Rect) Rect {
	if q.Empty() {
		return r
	} else if r.Empty() {
		return q
	}
	return Rect{math.Min(r.X0, q.X0), math.Min(r.Y0, q.Y0), math.Max(r.X1, q.X1), math.Max(r.Y1, q.Y1)}
}

// Touches returns true if both rectangles overlap or touch, with tolerance Epsilon.
func (r Rect) Touches(q Rect) bool {
	if r.Empty() || q.Empty() {
		return false
	}
	tol := Epsilon * magnitude(Point{r.X0, r.Y0}, Point{r.X1, r.Y1}, Point{q.X0, q.Y0}, Point{q.X1, q.Y1})
	return q.X0 <= r.X1+tol && r.X0 <= q.X1+tol && q.Y0 <= r.Y1+tol && r.Y0 <= q.Y1+tol
}

// EmptyRect is the starting value for accumulating bounds.
var EmptyRect = Rect{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}

func (r Rect) String() string {
	return fmt.Sprintf("[%g; %g]--[%g; %g]", r.X0, r.Y0, r.X1, r.Y1)
}
