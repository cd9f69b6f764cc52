// Package render draws segments and their intersections as SVG, raster images, or plots for visual inspection.
package render

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/sweepline"
)

// Precision is the number of significant digits for SVG coordinates.
var Precision = 8

// Options are the drawing options. Lengths are in pixels.
type Options struct {
	Size        float64 // length of the longest side of the output
	Margin      float64
	StrokeWidth float64
	PointRadius float64

	Background   color.RGBA // transparent to omit
	SegmentColor color.RGBA
	PointColor   color.RGBA
}

// DefaultOptions are the default drawing options.
var DefaultOptions = Options{
	Size:         500.0,
	Margin:       10.0,
	StrokeWidth:  1.0,
	PointRadius:  3.0,
	Background:   color.RGBA{255, 255, 255, 255},
	SegmentColor: color.RGBA{0, 0, 0, 255},
	PointColor:   color.RGBA{255, 0, 0, 255},
}

// View maps segment coordinates to output coordinates, with the Y axis pointing down.
type View struct {
	Bounds        sweepline.Rect
	Scale         float64
	Margin        float64
	Width, Height float64
}

// NewView fits the bounds of the segments into the output size.
func NewView(segs []sweepline.Segment, opts *Options) View {
	bounds := sweepline.EmptyRect
	for _, seg := range segs {
		bounds = bounds.Add(seg.Bounds())
	}
	if bounds.Empty() {
		bounds = sweepline.Rect{X0: 0.0, Y0: 0.0, X1: 1.0, Y1: 1.0}
	}

	size := math.Max(bounds.W(), bounds.H())
	if size == 0.0 {
		size = 1.0
	}
	scale := (opts.Size - 2.0*opts.Margin) / size
	return View{
		Bounds: bounds,
		Scale:  scale,
		Margin: opts.Margin,
		Width:  math.Ceil(bounds.W()*scale + 2.0*opts.Margin),
		Height: math.Ceil(bounds.H()*scale + 2.0*opts.Margin),
	}
}

// Point returns the output coordinates of p.
func (v View) Point(p sweepline.Point) (float64, float64) {
	return v.Margin + (p.X-v.Bounds.X0)*v.Scale, v.Margin + (v.Bounds.Y1-p.Y)*v.Scale
}

////////////////////////////////////////////////////////////////

type num float64

func (f num) String() string {
	s := fmt.Sprintf("%.*g", Precision, f)
	if num(math.MaxInt32) < f || f < num(math.MinInt32) {
		if i := strings.IndexAny(s, ".eE"); i == -1 {
			s += ".0"
		}
	}
	return string(minify.Number([]byte(s), Precision))
}

type dec float64

func (f dec) String() string {
	s := fmt.Sprintf("%.*f", Precision, f)
	s = string(minify.Decimal([]byte(s), Precision))
	if dec(math.MaxInt32) < f || f < dec(math.MinInt32) {
		if i := strings.IndexByte(s, '.'); i == -1 {
			s += ".0"
		}
	}
	return s
}

func toCSSColor(color color.RGBA) string {
	if color.A == 255 {
		buf := make([]byte, 7)
		buf[0] = '#'
		hex.Encode(buf[1:], []byte{color.R, color.G, color.B})
		return string(buf)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%g)", color.R, color.G, color.B, float64(color.A)/255.0)
}
