package render

import (
	"io"

	"github.com/tdewolff/sweepline"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Plot returns a plot with axes of the segments as lines and the intersections as a scatter.
func Plot(segs []sweepline.Segment, zs []sweepline.Intersection, opts *Options) (*plot.Plot, error) {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}

	p := plot.New()
	p.Title.Text = "Intersections"
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"
	p.BackgroundColor = opts.Background

	for _, seg := range segs {
		line, err := plotter.NewLine(plotter.XYs{{X: seg.Left.X, Y: seg.Left.Y}, {X: seg.Right.X, Y: seg.Right.Y}})
		if err != nil {
			return nil, err
		}
		line.LineStyle.Width = vg.Points(opts.StrokeWidth)
		line.LineStyle.Color = opts.SegmentColor
		p.Add(line)
	}

	if 0 < len(zs) {
		xys := make(plotter.XYs, len(zs))
		for i, z := range zs {
			xys[i].X, xys[i].Y = z.X, z.Y
		}
		scatter, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, err
		}
		scatter.GlyphStyle.Color = opts.PointColor
		scatter.GlyphStyle.Radius = vg.Points(opts.PointRadius)
		scatter.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(scatter)
	}
	return p, nil
}

// WritePlot writes the plot of Plot in the given format: eps, jpg, pdf, png, svg, tex, or tiff. The size is in points.
func WritePlot(w io.Writer, segs []sweepline.Segment, zs []sweepline.Intersection, opts *Options, format string) error {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}
	p, err := Plot(segs, zs, opts)
	if err != nil {
		return err
	}

	size := vg.Points(opts.Size)
	wt, err := p.WriterTo(size, size, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
