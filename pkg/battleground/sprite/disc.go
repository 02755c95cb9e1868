// Package sprite rasterizes the flat shapes the host draws as textures.
package sprite

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// DiscSVG returns an SVG document with a filled polygon approximating a
// circle of the given segment count, inscribed in a size x size square.
func DiscSVG(fill color.RGBA, segments, size int) string {
	r := float64(size) / 2

	var points strings.Builder
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		if i > 0 {
			points.WriteByte(' ')
		}
		fmt.Fprintf(&points, "%.3f,%.3f", r+r*math.Cos(a), r+r*math.Sin(a))
	}

	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+
			`<polygon points="%s" fill="#%02x%02x%02x" fill-opacity="%.3f"/></svg>`,
		size, size, size, size, points.String(), fill.R, fill.G, fill.B, float64(fill.A)/255,
	)
}

// Disc rasterizes a disc sprite of size x size pixels.
func Disc(fill color.RGBA, segments, size int) (*image.RGBA, error) {
	if segments < 3 {
		return nil, fmt.Errorf("sprite: disc needs at least 3 segments, got %d", segments)
	}
	if size <= 0 {
		return nil, fmt.Errorf("sprite: invalid size %d", size)
	}

	icon, err := oksvg.ReadIconStream(strings.NewReader(DiscSVG(fill, segments, size)), oksvg.StrictErrorMode)
	if err != nil {
		return nil, fmt.Errorf("sprite: parse disc: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	dasher := rasterx.NewDasher(size, size, scanner)
	icon.Draw(dasher, 1.0)

	return img, nil
}
