package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/browser"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/sweepline"
	"github.com/tdewolff/sweepline/geo"
	"github.com/tdewolff/sweepline/render"
)

type Find struct {
	Format  string  `short:"f" desc:"Input format: txt, geojson, osm, wkt, or wkb (by default from the file extension)"`
	Output  string  `short:"o" desc:"Output file: txt, geojson, wkt, svg, png, jpg, gif, tiff, pdf, or eps (by default text to stdout)"`
	Plot    bool    `desc:"Draw image output as a plot with axes"`
	Project int     `short:"p" desc:"Project WGS84 coordinates to the given EPSG code before finding intersections"`
	Epsilon float64 `short:"e" default:"1e-10" desc:"Tolerance for coordinate comparisons, relative for coordinates larger than one"`
	Verify  bool    `desc:"Compare the result with the brute force algorithm"`
	Debug   bool    `short:"d" desc:"Print sweep events and status to stderr"`
	View    bool    `desc:"Open the output file in the browser"`
	ASCII   int     `desc:"Print a preview of the given number of columns"`
	Size    float64 `default:"500" desc:"Image size in pixels"`
	Input   string  `index:"0" desc:"Input file, or - for stdin"`
}

func main() {
	root := argp.NewCmd(&Find{}, "Find all intersections between line segments using the Bentley-Ottmann sweep line algorithm")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Find) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	} else if cmd.View && cmd.Output == "" {
		fmt.Fprintln(os.Stderr, "ERROR: must specify output filename to view")
		return argp.ShowUsage
	}

	var r io.Reader = os.Stdin
	if cmd.Input != "-" {
		f, err := os.Open(cmd.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	format := cmd.Format
	if format == "" {
		format = formatFromExt(cmd.Input)
	}
	segs, err := readSegments(r, format)
	if err != nil {
		return err
	}

	var proj *geo.Projection
	if cmd.Project != 0 {
		proj = geo.NewProjection(geo.WGS84, cmd.Project)
		if segs, err = proj.Project(segs); err != nil {
			return err
		}
	}

	sweepline.Epsilon = cmd.Epsilon
	opts := sweepline.DefaultOptions
	if cmd.Debug {
		opts.Debug = os.Stderr
	}
	zs, err := sweepline.FindIntersections(segs, &opts)
	if err != nil {
		return err
	}

	if cmd.Verify {
		if err := verify(segs, zs); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Verified %d intersections between %d segments\n", len(zs), len(segs))
	}

	renderOpts := render.DefaultOptions
	renderOpts.Size = cmd.Size
	if 0 < cmd.ASCII {
		img := render.Rasterize(segs, zs, &renderOpts)
		if err := render.PrintASCII(os.Stdout, img, cmd.ASCII); err != nil {
			return err
		}
	}

	zsOut := zs
	if proj != nil {
		zsOut = proj.Unproject(zs)
	}
	if cmd.Output == "" || cmd.Output == "-" {
		if cmd.ASCII == 0 {
			return sweepline.WriteIntersections(os.Stdout, zsOut)
		}
		return nil
	}

	w, err := os.Create(cmd.Output)
	if err != nil {
		return err
	}
	switch ext := strings.ToLower(filepath.Ext(cmd.Output)); ext {
	case ".pdf", ".eps", ".tex":
		err = render.WritePlot(w, segs, zs, &renderOpts, ext[1:])
	case ".svg", ".png", ".jpg", ".jpeg", ".tif", ".tiff":
		if cmd.Plot {
			err = render.WritePlot(w, segs, zs, &renderOpts, ext[1:])
		} else if ext == ".svg" {
			err = render.WriteSVG(w, segs, zs, &renderOpts)
		} else {
			err = render.WriteImage(w, render.Rasterize(segs, zs, &renderOpts), ext)
		}
	case ".gif":
		err = render.WriteImage(w, render.Rasterize(segs, zs, &renderOpts), ext)
	case ".geojson", ".json":
		err = geo.WriteGeoJSON(w, zsOut)
	case ".wkt":
		var s string
		if s, err = geo.IntersectionsToWKT(zsOut, -1); err == nil {
			_, err = io.WriteString(w, s)
		}
	default:
		err = sweepline.WriteIntersections(w, zsOut)
	}
	if err != nil {
		w.Close()
		return err
	} else if err := w.Close(); err != nil {
		return err
	}

	if cmd.View {
		return browser.OpenFile(cmd.Output)
	}
	return nil
}

func formatFromExt(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".geojson", ".json":
		return "geojson"
	case ".osm", ".xml":
		return "osm"
	case ".wkt":
		return "wkt"
	case ".wkb", ".hex":
		return "wkb"
	}
	return "txt"
}

func readSegments(r io.Reader, format string) ([]sweepline.Segment, error) {
	switch format {
	case "txt":
		return sweepline.ParseSegments(r)
	case "geojson":
		return geo.ReadGeoJSON(r)
	case "osm":
		return geo.ReadOSM(r)
	case "wkt", "wkb":
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		if format == "wkt" {
			return geo.ReadWKT(string(b))
		}
		return geo.ReadWKB(string(bytes.TrimSpace(b)))
	}
	return nil, fmt.Errorf("unknown input format: %s", format)
}

func verify(segs []sweepline.Segment, zs []sweepline.Intersection) error {
	zs2, err := sweepline.BruteForce(segs)
	if err != nil {
		return err
	} else if len(zs) != len(zs2) {
		return fmt.Errorf("found %d intersections but brute force found %d", len(zs), len(zs2))
	}
	for i := range zs {
		if !zs[i].Equals(zs2[i].Point) {
			return fmt.Errorf("intersection %v differs from brute force %v", zs[i], zs2[i])
		}
	}
	return nil
}
