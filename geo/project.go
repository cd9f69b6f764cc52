package geo

import (
	"fmt"

	"github.com/tdewolff/sweepline"
	"github.com/wroge/wgs84/v2"
)

// Common EPSG codes.
const (
	WGS84       = 4326 // longitude and latitude in degrees
	WebMercator = 3857
	UTM33N      = 32633
	UTM19S      = 32719
)

// Projection transforms coordinates between two coordinate reference systems given by EPSG codes.
type Projection struct {
	From, To int

	forward, inverse func(float64, float64, float64) (float64, float64, float64)
}

// NewProjection returns the projection from EPSG code from to EPSG code to.
func NewProjection(from, to int) *Projection {
	return &Projection{
		From:    from,
		To:      to,
		forward: wgs84.Transform(wgs84.EPSG(from), wgs84.EPSG(to)),
		inverse: wgs84.Transform(wgs84.EPSG(to), wgs84.EPSG(from)),
	}
}

// Forward transforms p from the source to the target system.
func (proj *Projection) Forward(p sweepline.Point) sweepline.Point {
	x, y, _ := proj.forward(p.X, p.Y, 0.0)
	return sweepline.Point{X: x, Y: y}
}

// Inverse transforms p from the target back to the source system.
func (proj *Projection) Inverse(p sweepline.Point) sweepline.Point {
	x, y, _ := proj.inverse(p.X, p.Y, 0.0)
	return sweepline.Point{X: x, Y: y}
}

// Project transforms all segments to the target system. Straight edges in the source system stay straight in the target system, which is exact for planar intersection only when both systems are projected. Segments keep their ID.
func (proj *Projection) Project(segs []sweepline.Segment) ([]sweepline.Segment, error) {
	out := make([]sweepline.Segment, 0, len(segs))
	for _, seg := range segs {
		projected, err := sweepline.NewSegment(seg.ID, proj.Forward(seg.Left), proj.Forward(seg.Right))
		if err != nil {
			return nil, fmt.Errorf("project EPSG:%d to EPSG:%d: %w", proj.From, proj.To, err)
		}
		out = append(out, projected)
	}
	return out, nil
}

// Unproject transforms the intersections back to the source system.
func (proj *Projection) Unproject(zs []sweepline.Intersection) []sweepline.Intersection {
	out := make([]sweepline.Intersection, len(zs))
	for i, z := range zs {
		out[i] = sweepline.Intersection{Point: proj.Inverse(z.Point), IDs: z.IDs}
	}
	return out
}
