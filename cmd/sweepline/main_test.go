package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tdewolff/sweepline"
	"github.com/tdewolff/test"
)

func TestFormatFromExt(t *testing.T) {
	test.String(t, formatFromExt("roads.GeoJSON"), "geojson")
	test.String(t, formatFromExt("map.osm"), "osm")
	test.String(t, formatFromExt("lines.wkt"), "wkt")
	test.String(t, formatFromExt("lines.hex"), "wkb")
	test.String(t, formatFromExt("segments"), "txt")
	test.String(t, formatFromExt("-"), "txt")
}

func TestReadSegments(t *testing.T) {
	segs, err := readSegments(strings.NewReader("0 0 2 2\n0 2 2 0\n"), "txt")
	test.Error(t, err)
	test.T(t, len(segs), 2)

	segs, err = readSegments(strings.NewReader("LINESTRING (0 0, 2 2, 4 0)\n"), "wkt")
	test.Error(t, err)
	test.T(t, len(segs), 2)

	_, err = readSegments(strings.NewReader(""), "dxf")
	test.That(t, err != nil)
}

func TestVerify(t *testing.T) {
	segs := sweepline.MustParseSegments("0 0 2 2\n0 2 2 0\n0 1 2 1")
	zs, err := sweepline.FindIntersections(segs, nil)
	test.Error(t, err)
	test.Error(t, verify(segs, zs))
	test.That(t, verify(segs, zs[:0]) != nil)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "segments.txt")
	test.Error(t, os.WriteFile(input, []byte("0 0 2 2\n0 2 2 0\n"), 0644))

	for _, ext := range []string{".txt", ".geojson", ".wkt", ".svg", ".png", ".pdf"} {
		output := filepath.Join(dir, "out"+ext)
		cmd := &Find{Input: input, Output: output, Epsilon: 1e-10, Size: 50, Verify: true}
		test.Error(t, cmd.Run(), ext)

		b, err := os.ReadFile(output)
		test.Error(t, err)
		test.That(t, 0 < len(b), ext)
		if ext == ".txt" {
			test.String(t, string(b), "1 1 0,1\n")
		} else if ext == ".wkt" {
			test.String(t, string(b), "MULTIPOINT (1 1)")
		}
	}
}
