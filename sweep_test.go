package sweepline

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

var fixture = `
	# diagonals
	0 0 10 10
	0 10 10 0
	0 5 10 5
	# verticals
	2 0 2 10
	8 0 8 10
	10 10 14 6
	12 0 12 4
	11 2 14 2
	12 2 16 6
`

func equalIntersections(a, b []Intersection) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i].Point) || fmt.Sprint(a[i].IDs) != fmt.Sprint(b[i].IDs) {
			return false
		}
	}
	return true
}

func TestIntersections(t *testing.T) {
	var tts = []struct {
		segs string
		ps   []Point
	}{
		{"", []Point{}},
		{"0 0 2 2\n0 2 2 0", []Point{{1, 1}}},
		{"0 0 4 4\n0 4 4 0\n0 2 4 2", []Point{{2, 2}}},
		{"0 0 4 4\n0 4 4 0\n2 0 2 4", []Point{{2, 2}}},
		{"0 0 1 0\n2 0 3 0", []Point{}},
		{"0 0 1 1\n0 3 3 2", []Point{}},
		{"0 0 2 0\n0 1 2 1\n0 2 2 2", []Point{}},

		// touching
		{"0 0 2 2\n2 2 4 0", []Point{{2, 2}}},
		{"0 0 4 0\n2 0 2 3", []Point{{2, 0}}},
		{"0 0 4 0\n2 -3 2 0", []Point{{2, 0}}},
		{"0 0 2 0\n2 0 4 0", []Point{{2, 0}}},

		// collinear overlap
		{"0 0 4 0\n2 0 6 0", []Point{{2, 0}, {4, 0}}},
		{"0 0 4 4\n0 0 4 4", []Point{{0, 0}, {4, 4}}},
		{"0 0 6 0\n2 0 4 0", []Point{{2, 0}, {4, 0}}},
		{"0 0 0 4\n0 2 0 6", []Point{{0, 2}, {0, 4}}},

		// vertical
		{"2 0 2 4\n0 1 4 1\n0 3 4 3\n0 5 4 5", []Point{{2, 1}, {2, 3}}},
		{"2 0 2 4\n0 0 4 4\n0 4 4 0", []Point{{2, 2}}},
	}
	for _, tt := range tts {
		t.Run(strings.ReplaceAll(tt.segs, "\n", ","), func(t *testing.T) {
			ps, err := Intersections(MustParseSegments(tt.segs))
			test.Error(t, err)
			test.T(t, len(ps), len(tt.ps), ps)
			for i := range ps {
				if i < len(tt.ps) {
					test.That(t, ps[i].Equals(tt.ps[i]), ps[i], "!=", tt.ps[i])
				}
			}
		})
	}
}

func TestFindIntersections(t *testing.T) {
	segs := MustParseSegments(fixture)
	zs, err := FindIntersections(segs, nil)
	test.Error(t, err)
	test.String(t, fmt.Sprint(zs), "[(2,2)[0 3] (2,5)[2 3] (2,8)[1 3] (5,5)[0 1 2] (8,2)[1 4] (8,5)[2 4] (8,8)[0 4] (10,10)[0 5] (12,2)[6 7 8]]")

	// input is not modified
	test.T(t, segs[1], Segment{1, Point{0, 10}, Point{10, 0}})

	// independent of input order
	r := rand.New(rand.NewSource(0))
	for i := 0; i < 10; i++ {
		shuffled := append([]Segment{}, segs...)
		r.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		zs2, err := FindIntersections(shuffled, nil)
		test.Error(t, err)
		test.That(t, equalIntersections(zs, zs2), zs, "!=", zs2)
	}
}

func TestFindIntersectionsDebug(t *testing.T) {
	debug := &bytes.Buffer{}
	_, err := FindIntersections(MustParseSegments("0 0 2 2\n0 2 2 0"), &Options{Debug: debug})
	test.Error(t, err)
	test.That(t, strings.Contains(debug.String(), "--- (1,1)"))
	test.That(t, strings.Contains(debug.String(), "intersection (1,1)[0 1]"))
}

func TestFindIntersectionsInvalid(t *testing.T) {
	segs := []Segment{
		MustNewSegment(0, 0, 0, 2, 2),
		{1, Point{1, 1}, Point{1, 1}},
	}
	zs, err := FindIntersections(segs, nil)
	test.That(t, errors.Is(err, ErrInvalidSegment))
	test.That(t, zs == nil)

	_, err = BruteForce(segs)
	test.That(t, errors.Is(err, ErrInvalidSegment))
}

func TestFindIntersectionsBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for k := 0; k < 50; k++ {
		segs := []Segment{}
		for len(segs) < 20 {
			a := Point{float64(r.Intn(11)), float64(r.Intn(11))}
			b := Point{float64(r.Intn(11)), float64(r.Intn(11))}
			if seg, err := NewSegment(len(segs), a, b); err == nil {
				segs = append(segs, seg)
			}
		}

		zs, err := FindIntersections(segs, nil)
		test.Error(t, err)
		zs2, err := BruteForce(segs)
		test.Error(t, err)
		if !equalIntersections(zs, zs2) {
			var sb strings.Builder
			WriteSegments(&sb, segs)
			t.Fatalf("mismatch for\n%s\nsweep: %v\nbrute: %v", sb.String(), zs, zs2)
		}
	}
}

func TestFindIntersectionsScaled(t *testing.T) {
	for _, scale := range []float64{1.0, 1e3, 1e6, 1e7} {
		t.Run(fmt.Sprint(scale), func(t *testing.T) {
			r := rand.New(rand.NewSource(2))
			for k := 0; k < 20; k++ {
				segs := make([]Segment, 30)
				for i := range segs {
					segs[i] = MustNewSegment(i, r.Float64()*scale, r.Float64()*scale, r.Float64()*scale, r.Float64()*scale)
				}

				zs, err := FindIntersections(segs, nil)
				test.Error(t, err)
				zs2, err := BruteForce(segs)
				test.Error(t, err)
				test.That(t, 0 < len(zs2))
				if !equalIntersections(zs, zs2) {
					var sb strings.Builder
					WriteSegments(&sb, segs)
					t.Fatalf("mismatch for\n%s\nsweep: %v\nbrute: %v", sb.String(), zs, zs2)
				}

				shuffled := append([]Segment{}, segs...)
				r.Shuffle(len(shuffled), func(i, j int) {
					shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
				})
				zs3, err := FindIntersections(shuffled, nil)
				test.Error(t, err)
				test.That(t, equalIntersections(zs, zs3), zs, "!=", zs3)
			}
		})
	}
}

// crossings at the magnitude of Web Mercator coordinates
func TestFindIntersectionsLarge(t *testing.T) {
	segs := MustParseSegments(`
		500000.1 6800000.3 500300.7 6800200.9
		500000.2 6800200.4 500300.5 6800000.8
		500100.3 6799900.6 500150.9 6800300.1
	`)
	zs, err := FindIntersections(segs, nil)
	test.Error(t, err)
	zs2, err := BruteForce(segs)
	test.Error(t, err)
	test.T(t, len(zs2), 3)
	test.That(t, equalIntersections(zs, zs2), zs, "!=", zs2)
}

func BenchmarkFindIntersections(b *testing.B) {
	r := rand.New(rand.NewSource(0))
	segs := make([]Segment, 1000)
	for i := range segs {
		x, y := r.Float64()*1000.0, r.Float64()*1000.0
		segs[i] = MustNewSegment(i, x, y, x+r.Float64()*50.0, y+(r.Float64()-0.5)*50.0)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		FindIntersections(segs, nil)
	}
}
