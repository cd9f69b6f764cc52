package sweepline

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestParseSegments(t *testing.T) {
	segs, err := ParseSegments(strings.NewReader("# comment\n\n0 0 2 2\n 1.5,-2, 1e1 .5 \r\n3 3 1 1\n"))
	test.Error(t, err)
	test.T(t, len(segs), 3)
	test.T(t, segs[0], Segment{0, Point{0, 0}, Point{2, 2}})
	test.T(t, segs[1], Segment{1, Point{1.5, -2}, Point{10, 0.5}})
	test.T(t, segs[2], Segment{2, Point{1, 1}, Point{3, 3}})

	segs, err = ParseSegments(strings.NewReader(""))
	test.Error(t, err)
	test.T(t, len(segs), 0)
}

func TestParseSegmentsErrors(t *testing.T) {
	var tts = []struct {
		s   string
		err string
	}{
		{"0 0 1", "line 1: expected four coordinates"},
		{"0 0 1 1\n0 0 1 x", "line 2: expected four coordinates"},
		{"0 0 1 1 2", `line 1: unexpected "2"`},
		{"0 0 1 1 # trailing", `line 1: unexpected "# trailing"`},
		{"\n1 1 1 1", "line 2: invalid segment: zero length at (1,1)"},
	}
	for _, tt := range tts {
		t.Run(tt.s, func(t *testing.T) {
			_, err := ParseSegments(strings.NewReader(tt.s))
			test.That(t, err != nil)
			if err != nil {
				test.String(t, err.Error(), tt.err)
			}
		})
	}

	_, err := ParseSegments(strings.NewReader("2 2 2 2"))
	test.That(t, errors.Is(err, ErrInvalidSegment))
}

func TestWriteSegments(t *testing.T) {
	segs := MustParseSegments("2 2 0 0\n0.5 1 -1e-3 4")
	var b bytes.Buffer
	test.Error(t, WriteSegments(&b, segs))
	test.String(t, b.String(), "0 0 2 2\n-0.001 4 0.5 1\n")

	segs2, err := ParseSegments(&b)
	test.Error(t, err)
	test.T(t, segs2, segs)
}

func TestWriteIntersections(t *testing.T) {
	var b bytes.Buffer
	zs := []Intersection{{Point{1, 1}, []int{0, 1}}, {Point{2.5, -3}, []int{0, 4, 7}}}
	test.Error(t, WriteIntersections(&b, zs))
	test.String(t, b.String(), "1 1 0,1\n2.5 -3 0,4,7\n")
}
