package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tdewolff/sweepline"
)

// WriteSVG draws the segments as a single path and every intersection as a circle with the IDs of its segments as title.
func WriteSVG(w io.Writer, segs []sweepline.Segment, zs []sweepline.Intersection, opts *Options) error {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}
	v := NewView(segs, opts)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg version="1.1" width="%v" height="%v" viewBox="0 0 %v %v" xmlns="http://www.w3.org/2000/svg">`, dec(v.Width), dec(v.Height), dec(v.Width), dec(v.Height))
	if opts.Background.A != 0 {
		fmt.Fprintf(bw, `<rect width="%v" height="%v" fill="%v"/>`, dec(v.Width), dec(v.Height), toCSSColor(opts.Background))
	}

	if 0 < len(segs) {
		fmt.Fprintf(bw, `<path d="`)
		for _, seg := range segs {
			x0, y0 := v.Point(seg.Left)
			x1, y1 := v.Point(seg.Right)
			fmt.Fprintf(bw, "M%v %vL%v %v", num(x0), num(y0), num(x1), num(y1))
		}
		fmt.Fprintf(bw, `" fill="none" stroke="%v" stroke-width="%v" stroke-linecap="round"/>`, toCSSColor(opts.SegmentColor), dec(opts.StrokeWidth))
	}

	if 0 < len(zs) {
		fmt.Fprintf(bw, `<g fill="%v">`, toCSSColor(opts.PointColor))
		for _, z := range zs {
			x, y := v.Point(z.Point)
			ids := make([]string, len(z.IDs))
			for i, id := range z.IDs {
				ids[i] = strconv.Itoa(id)
			}
			fmt.Fprintf(bw, `<circle cx="%v" cy="%v" r="%v"><title>%v %v</title></circle>`, num(x), num(y), dec(opts.PointRadius), z.Point, strings.Join(ids, ","))
		}
		fmt.Fprintf(bw, `</g>`)
	}
	fmt.Fprintf(bw, "</svg>")
	return bw.Flush()
}
