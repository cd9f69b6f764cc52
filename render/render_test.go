package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/tdewolff/sweepline"
	"github.com/tdewolff/test"
)

var cross = sweepline.MustParseSegments("0 0 2 2\n0 2 2 0")

func testOptions() *Options {
	opts := DefaultOptions
	opts.Size = 100.0
	return &opts
}

func TestView(t *testing.T) {
	v := NewView(cross, testOptions())
	test.Float(t, v.Scale, 40.0)
	test.Float(t, v.Width, 100.0)
	test.Float(t, v.Height, 100.0)

	x, y := v.Point(sweepline.Point{X: 0, Y: 0})
	test.Float(t, x, 10.0)
	test.Float(t, y, 90.0)
	x, y = v.Point(sweepline.Point{X: 2, Y: 2})
	test.Float(t, x, 90.0)
	test.Float(t, y, 10.0)

	// flat input keeps the longest side
	v = NewView(sweepline.MustParseSegments("0 0 4 0"), testOptions())
	test.Float(t, v.Scale, 20.0)
	test.Float(t, v.Width, 100.0)
	test.Float(t, v.Height, 20.0)

	v = NewView(nil, testOptions())
	test.Float(t, v.Width, 100.0)
}

func TestNumbers(t *testing.T) {
	test.String(t, num(10.0).String(), "10")
	test.String(t, num(0.5).String(), ".5")
	test.String(t, num(-1.25).String(), "-1.25")
	test.String(t, dec(100.0).String(), "100")
	test.String(t, dec(2.5).String(), "2.5")
	test.String(t, toCSSColor(color.RGBA{255, 0, 0, 255}), "#ff0000")
	test.String(t, toCSSColor(color.RGBA{0, 0, 0, 0}), "rgba(0,0,0,0)")
}

func TestWriteSVG(t *testing.T) {
	zs, err := sweepline.FindIntersections(cross, nil)
	test.Error(t, err)

	var b bytes.Buffer
	test.Error(t, WriteSVG(&b, cross, zs, testOptions()))
	s := b.String()
	test.That(t, strings.HasPrefix(s, `<svg version="1.1" width="100" height="100" viewBox="0 0 100 100"`), s)
	test.That(t, strings.Contains(s, `<rect width="100" height="100" fill="#ffffff"/>`), s)
	test.That(t, strings.Contains(s, `<path d="M10 90L90 10M10 10L90 90" fill="none" stroke="#000000"`), s)
	test.That(t, strings.Contains(s, `<circle cx="50" cy="50" r="3"><title>(1,1) 0,1</title></circle>`), s)
	test.That(t, strings.HasSuffix(s, "</svg>"), s)

	b.Reset()
	test.Error(t, WriteSVG(&b, nil, nil, nil))
	test.That(t, !strings.Contains(b.String(), "<path"))
}

func TestRasterize(t *testing.T) {
	zs, err := sweepline.FindIntersections(cross, nil)
	test.Error(t, err)

	img := Rasterize(cross, zs, testOptions())
	test.T(t, img.Bounds(), image.Rect(0, 0, 100, 100))
	test.T(t, img.RGBAAt(0, 0), color.RGBA{255, 255, 255, 255})
	test.T(t, img.RGBAAt(50, 10), color.RGBA{255, 255, 255, 255})

	c := img.RGBAAt(50, 50)
	test.That(t, 200 < c.R && c.G < 50 && c.B < 50, c)
	c = img.RGBAAt(30, 30)
	test.That(t, c.R < 255, c)
}

func TestWriteImage(t *testing.T) {
	img := Rasterize(cross, nil, testOptions())
	for _, ext := range []string{".png", ".JPG", ".gif", ".tiff"} {
		var b bytes.Buffer
		test.Error(t, WriteImage(&b, img, ext), ext)
		test.That(t, 0 < b.Len(), ext)
	}

	var b bytes.Buffer
	test.Error(t, WriteImage(&b, img, ".png"))
	img2, err := png.Decode(&b)
	test.Error(t, err)
	test.T(t, img2.Bounds(), img.Bounds())

	err = WriteImage(&b, img, ".bmp")
	test.That(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestPrintASCII(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(0, 0, color.RGBA{255, 255, 255, 255})
	img.SetRGBA(1, 0, color.RGBA{0, 0, 0, 255})
	img.SetRGBA(2, 0, color.RGBA{255, 255, 255, 255})
	img.SetRGBA(0, 1, color.RGBA{0, 0, 0, 255})
	img.SetRGBA(1, 1, color.RGBA{255, 255, 255, 255})
	img.SetRGBA(2, 1, color.RGBA{0, 0, 0, 255})

	var b bytes.Buffer
	test.Error(t, PrintASCII(&b, img, 0))
	test.String(t, b.String(), " $ \n$ $\n")

	b.Reset()
	test.Error(t, PrintASCII(&b, Rasterize(cross, nil, testOptions()), 20))
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	test.T(t, len(lines), 10)
	test.T(t, len(lines[0]), 20)
}

func TestWritePlot(t *testing.T) {
	zs, err := sweepline.FindIntersections(cross, nil)
	test.Error(t, err)

	p, err := Plot(cross, zs, nil)
	test.Error(t, err)
	test.String(t, p.Title.Text, "Intersections")

	var b bytes.Buffer
	test.Error(t, WritePlot(&b, cross, zs, testOptions(), "svg"))
	test.That(t, strings.Contains(b.String(), "<svg"))

	b.Reset()
	test.Error(t, WritePlot(&b, cross, zs, testOptions(), "png"))
	img, err := png.Decode(&b)
	test.Error(t, err)
	test.That(t, 0 < img.Bounds().Dx())

	test.That(t, WritePlot(&b, cross, zs, testOptions(), "bmp") != nil)
}
