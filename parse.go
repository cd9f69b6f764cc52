package sweepline

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	parseStrconv "github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(b []byte) int {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == ',' || b[i] == '\r' || b[i] == '\t') {
		i++
	}
	return i
}

func parseNum(b []byte) (float64, int) {
	i := skipCommaWhitespace(b)
	f, n := parseStrconv.ParseFloat(b[i:])
	if n == 0 {
		return 0.0, 0
	}
	return f, i + n
}

// ParseSegments reads one segment per line as four numbers "x0 y0 x1 y1", separated by whitespace or commas. Empty lines and lines starting with # are skipped. Segments are numbered by their order in the input, starting at zero.
func ParseSegments(r io.Reader) ([]Segment, error) {
	segs := []Segment{}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		b := bytes.TrimSpace(scanner.Bytes())
		if len(b) == 0 || b[0] == '#' {
			continue
		}

		var coords [4]float64
		i := 0
		for j := range coords {
			f, n := parseNum(b[i:])
			if n == 0 {
				return nil, fmt.Errorf("line %d: expected four coordinates", line)
			}
			coords[j] = f
			i += n
		}
		if i += skipCommaWhitespace(b[i:]); i != len(b) {
			return nil, fmt.Errorf("line %d: unexpected %q", line, b[i:])
		}

		seg, err := NewSegment(len(segs), Point{coords[0], coords[1]}, Point{coords[2], coords[3]})
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		segs = append(segs, seg)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return segs, nil
}

// MustParseSegments is like ParseSegments but for a string, and panics on error.
func MustParseSegments(s string) []Segment {
	segs, err := ParseSegments(strings.NewReader(s))
	if err != nil {
		panic(err)
	}
	return segs
}

// WriteSegments writes segments in the format read by ParseSegments.
func WriteSegments(w io.Writer, segs []Segment) error {
	for _, seg := range segs {
		if _, err := fmt.Fprintf(w, "%s %s %s %s\n", ftos(seg.Left.X), ftos(seg.Left.Y), ftos(seg.Right.X), ftos(seg.Right.Y)); err != nil {
			return err
		}
	}
	return nil
}

// WriteIntersections writes one intersection per line as "x y id,id,...".
func WriteIntersections(w io.Writer, zs []Intersection) error {
	for _, z := range zs {
		ids := make([]string, len(z.IDs))
		for i, id := range z.IDs {
			ids[i] = strconv.Itoa(id)
		}
		if _, err := fmt.Fprintf(w, "%s %s %s\n", ftos(z.X), ftos(z.Y), strings.Join(ids, ",")); err != nil {
			return err
		}
	}
	return nil
}

func ftos(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
