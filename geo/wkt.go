package geo

import (
	"fmt"
	"strings"

	"github.com/tdewolff/sweepline"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/wkbhex"
	"github.com/twpayne/go-geom/encoding/wkt"
)

// SegmentsFromGeom appends the edges of the geometry to segs, see SegmentsFromGeometry. Only the X and Y coordinates are used.
func SegmentsFromGeom(segs []sweepline.Segment, g geom.T) []sweepline.Segment {
	switch g := g.(type) {
	case *geom.LineString:
		segs = appendFlat(segs, g.FlatCoords(), g.Stride(), false)
	case *geom.LinearRing:
		segs = appendFlat(segs, g.FlatCoords(), g.Stride(), true)
	case *geom.MultiLineString:
		for i := 0; i < g.NumLineStrings(); i++ {
			segs = SegmentsFromGeom(segs, g.LineString(i))
		}
	case *geom.Polygon:
		for i := 0; i < g.NumLinearRings(); i++ {
			segs = SegmentsFromGeom(segs, g.LinearRing(i))
		}
	case *geom.MultiPolygon:
		for i := 0; i < g.NumPolygons(); i++ {
			segs = SegmentsFromGeom(segs, g.Polygon(i))
		}
	case *geom.GeometryCollection:
		for _, h := range g.Geoms() {
			segs = SegmentsFromGeom(segs, h)
		}
	}
	return segs
}

func appendFlat(segs []sweepline.Segment, flat []float64, stride int, closed bool) []sweepline.Segment {
	n := len(flat) / stride
	if n < 2 {
		return segs
	}
	coord := func(i int) sweepline.Point {
		return sweepline.Point{X: flat[i*stride], Y: flat[i*stride+1]}
	}
	for i := 1; i < n; i++ {
		if seg, err := sweepline.NewSegment(len(segs), coord(i-1), coord(i)); err == nil {
			segs = append(segs, seg)
		}
	}
	if closed {
		if seg, err := sweepline.NewSegment(len(segs), coord(n-1), coord(0)); err == nil {
			segs = append(segs, seg)
		}
	}
	return segs
}

// ReadWKT parses well-known text and returns the segments of the geometry.
func ReadWKT(s string) ([]sweepline.Segment, error) {
	g, err := wkt.Unmarshal(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("wkt: %w", err)
	}
	return SegmentsFromGeom([]sweepline.Segment{}, g), nil
}

// ReadWKB parses hex-encoded well-known binary and returns the segments of the geometry.
func ReadWKB(s string) ([]sweepline.Segment, error) {
	g, err := wkbhex.Decode(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("wkb: %w", err)
	}
	return SegmentsFromGeom([]sweepline.Segment{}, g), nil
}

// IntersectionsToGeom returns the intersections as a multi point.
func IntersectionsToGeom(zs []sweepline.Intersection) *geom.MultiPoint {
	flat := make([]float64, 0, 2*len(zs))
	for _, z := range zs {
		flat = append(flat, z.X, z.Y)
	}
	return geom.NewMultiPointFlat(geom.XY, flat)
}

// IntersectionsToWKT returns the intersections as a MULTIPOINT in well-known text. Coordinates are rounded to the given number of decimals, or written in full when decimals is negative.
func IntersectionsToWKT(zs []sweepline.Intersection, decimals int) (string, error) {
	return wkt.Marshal(IntersectionsToGeom(zs), wkt.EncodeOptionWithMaxDecimalDigits(decimals))
}

// IntersectionsToWKB returns the intersections as a multi point in hex-encoded little-endian well-known binary.
func IntersectionsToWKB(zs []sweepline.Intersection) (string, error) {
	return wkbhex.Encode(IntersectionsToGeom(zs), wkbhex.NDR)
}
