// Package render samples a density function onto a pixel grid and exports
// it as a grayscale image. It is the consumer side of the density core.
package render

import (
	"context"
	"image"
	"image/color"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/McGIllicuddy7/psi/internal/core/density"
	"github.com/McGIllicuddy7/psi/internal/core/systems/physics"
)

// Grid holds density samples in row-major order.
type Grid struct {
	Width  int
	Height int
	Values []float64
}

// At returns the sample at pixel (x, y).
func (g *Grid) At(x, y int) float64 { return g.Values[y*g.Width+x] }

// PixelPoint maps pixel (px, py) to field coordinates: pixels are centered
// on the image middle and multiplied by scale.
func PixelPoint(px, py, width, height int, scale float64) physics.Vector2 {
	x := float64(px) - float64(width)/2
	y := float64(py) - float64(height)/2
	return physics.NewVector2(x, y).Mul(scale)
}

// SampleGrid evaluates fn at every pixel. Rows are sampled concurrently,
// so fn must be safe for concurrent use.
func SampleGrid(ctx context.Context, fn density.SampleFunc, width, height int, scale float64) (*Grid, error) {
	g := &Grid{Width: width, Height: height, Values: make([]float64, width*height)}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(8)
	for py := 0; py < height; py++ {
		py := py
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			row := g.Values[py*width : (py+1)*width]
			for px := range row {
				row[px] = fn(PixelPoint(px, py, width, height, scale))
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return g, nil
}

// Intensity converts a density sample to an 8-bit gray level.
func Intensity(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Round(min(max(v, 0), 1) * 255))
}

// Gray renders the grid as an 8-bit grayscale image.
func (g *Grid) Gray() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			img.SetGray(x, y, color.Gray{Y: Intensity(g.At(x, y))})
		}
	}
	return img
}
