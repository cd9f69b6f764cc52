package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"math"
	"strings"

	"github.com/tdewolff/sweepline"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
	"golang.org/x/image/vector"
)

// ErrUnsupportedFormat is returned for unknown image file extensions.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Rasterize draws the segments and intersections on a new image.
func Rasterize(segs []sweepline.Segment, zs []sweepline.Intersection, opts *Options) *image.RGBA {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}
	v := NewView(segs, opts)
	w, h := int(v.Width), int(v.Height)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if opts.Background.A != 0 {
		draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}

	ras := vector.NewRasterizer(w, h)
	if 0 < len(segs) && 0.0 < opts.StrokeWidth {
		hw := opts.StrokeWidth / 2.0
		for _, seg := range segs {
			x0, y0 := v.Point(seg.Left)
			x1, y1 := v.Point(seg.Right)
			dx, dy := x1-x0, y1-y0
			if l := math.Hypot(dx, dy); l != 0.0 {
				dx, dy = dx/l*hw, dy/l*hw
			} else {
				dx, dy = hw, 0.0
			}
			nx, ny := -dy, dx

			// square caps
			ras.MoveTo(float32(x0-dx+nx), float32(y0-dy+ny))
			ras.LineTo(float32(x1+dx+nx), float32(y1+dy+ny))
			ras.LineTo(float32(x1+dx-nx), float32(y1+dy-ny))
			ras.LineTo(float32(x0-dx-nx), float32(y0-dy-ny))
			ras.ClosePath()
		}
		ras.Draw(img, img.Bounds(), image.NewUniform(opts.SegmentColor), image.Point{})
	}

	if 0 < len(zs) && 0.0 < opts.PointRadius {
		ras.Reset(w, h)
		const n = 16
		for _, z := range zs {
			x, y := v.Point(z.Point)
			ras.MoveTo(float32(x+opts.PointRadius), float32(y))
			for i := 1; i < n; i++ {
				theta := 2.0 * math.Pi * float64(i) / n
				ras.LineTo(float32(x+opts.PointRadius*math.Cos(theta)), float32(y+opts.PointRadius*math.Sin(theta)))
			}
			ras.ClosePath()
		}
		ras.Draw(img, img.Bounds(), image.NewUniform(opts.PointColor), image.Point{})
	}
	return img
}

// WriteImage encodes the image by file extension: .png, .jpg, .jpeg, .gif, or .tiff.
func WriteImage(w io.Writer, img image.Image, ext string) error {
	switch strings.ToLower(ext) {
	case ".png":
		return png.Encode(w, img)
	case ".jpg", ".jpeg":
		return jpeg.Encode(w, img, nil)
	case ".gif":
		return gif.Encode(w, img, nil)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, nil)
	}
	return fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
}

// PrintASCII writes the image as characters of decreasing density for increasing luminance. If cols is positive, the image is first scaled to that many columns, halving the number of rows since characters are about twice as high as wide.
func PrintASCII(w io.Writer, img image.Image, cols int) error {
	if 0 < cols {
		origRect := img.Bounds()
		rows := int(float64(origRect.Dy())*float64(cols)/float64(origRect.Dx())/2.0 + 0.5)
		if rows < 1 {
			rows = 1
		}
		rect := image.Rect(0, 0, cols, rows)
		scaled := image.NewRGBA(rect)
		draw.ApproxBiLinear.Scale(scaled, rect, img, origRect, draw.Over, nil)
		img = scaled
	}

	palette := []byte("$@B%8&WM#*oahkbdpqwmZO0QLCJUYXzcvunxrjft/\\|()1{}[]?-_+~<>i!lI;:,\"^`'. ")

	bounds := img.Bounds()
	sb := strings.Builder{}
	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			r, g, b, _ := img.At(i, j).RGBA()
			y, _, _ := color.RGBToYCbCr(uint8(r>>8), uint8(g>>8), uint8(b>>8))
			idx := int(float64(y)/255.0*float64(len(palette)-1) + 0.5)
			sb.WriteByte(palette[idx])
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
