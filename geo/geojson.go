// Package geo reads segments from and writes intersections to geographic formats, such as GeoJSON, OpenStreetMap XML, and WKT.
package geo

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/tdewolff/sweepline"
)

// SegmentsFromGeometry appends the edges of the geometry to segs. Every edge between consecutive vertices of a line string or polygon ring becomes a segment, numbered in order after the segments already in segs. Edges of zero length are skipped and points are ignored.
func SegmentsFromGeometry(segs []sweepline.Segment, g orb.Geometry) []sweepline.Segment {
	switch g := g.(type) {
	case orb.LineString:
		segs = appendPolyline(segs, g)
	case orb.MultiLineString:
		for _, ls := range g {
			segs = appendPolyline(segs, ls)
		}
	case orb.Ring:
		segs = appendRing(segs, g)
	case orb.Polygon:
		for _, ring := range g {
			segs = appendRing(segs, ring)
		}
	case orb.MultiPolygon:
		for _, poly := range g {
			for _, ring := range poly {
				segs = appendRing(segs, ring)
			}
		}
	case orb.Collection:
		for _, h := range g {
			segs = SegmentsFromGeometry(segs, h)
		}
	case orb.Bound:
		segs = appendRing(segs, g.ToRing())
	}
	return segs
}

func appendPolyline(segs []sweepline.Segment, ls []orb.Point) []sweepline.Segment {
	for i := 1; i < len(ls); i++ {
		a := sweepline.Point{X: ls[i-1][0], Y: ls[i-1][1]}
		b := sweepline.Point{X: ls[i][0], Y: ls[i][1]}
		if seg, err := sweepline.NewSegment(len(segs), a, b); err == nil {
			segs = append(segs, seg)
		}
	}
	return segs
}

func appendRing(segs []sweepline.Segment, ring orb.Ring) []sweepline.Segment {
	if len(ring) == 0 {
		return segs
	} else if !ring.Closed() {
		ring = append(ring[:len(ring):len(ring)], ring[0])
	}
	return appendPolyline(segs, ring)
}

// ReadGeoJSON reads a GeoJSON feature collection, feature, or bare geometry and returns the segments of all its geometries.
func ReadGeoJSON(r io.Reader) ([]sweepline.Segment, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var typ struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &typ); err != nil {
		return nil, fmt.Errorf("geojson: %w", err)
	}

	segs := []sweepline.Segment{}
	switch typ.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, err
		}
		for _, f := range fc.Features {
			segs = SegmentsFromGeometry(segs, f.Geometry)
		}
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, err
		}
		segs = SegmentsFromGeometry(segs, f.Geometry)
	default:
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, err
		}
		segs = SegmentsFromGeometry(segs, g.Geometry())
	}
	return segs, nil
}

// IntersectionsToGeoJSON returns a feature collection with a point feature for every intersection. The IDs of the segments meeting at the point are stored in the "ids" property.
func IntersectionsToGeoJSON(zs []sweepline.Intersection) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, z := range zs {
		f := geojson.NewFeature(orb.Point{z.X, z.Y})
		f.Properties["ids"] = z.IDs
		fc.Append(f)
	}
	return fc
}

// WriteGeoJSON writes the intersections as a GeoJSON feature collection.
func WriteGeoJSON(w io.Writer, zs []sweepline.Intersection) error {
	b, err := IntersectionsToGeoJSON(zs).MarshalJSON()
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
