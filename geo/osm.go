package geo

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmgeojson"
	"github.com/tdewolff/sweepline"
)

// ReadOSM reads an OpenStreetMap XML document and returns the segments of its ways. Coordinates are in longitude and latitude. Ways that reference nodes missing from the document are shortened accordingly.
func ReadOSM(r io.Reader) ([]sweepline.Segment, error) {
	o := &osm.OSM{}
	if err := xml.NewDecoder(r).Decode(o); err != nil {
		return nil, fmt.Errorf("osm: %w", err)
	}
	return SegmentsFromOSM(o)
}

// SegmentsFromOSM returns the segments of the ways and relations in o.
func SegmentsFromOSM(o *osm.OSM) ([]sweepline.Segment, error) {
	fc, err := osmgeojson.Convert(o,
		osmgeojson.NoID(true),
		osmgeojson.NoMeta(true),
		osmgeojson.NoRelationMembership(true))
	if err != nil {
		return nil, err
	}

	segs := []sweepline.Segment{}
	for _, f := range fc.Features {
		segs = SegmentsFromGeometry(segs, f.Geometry)
	}
	return segs, nil
}
