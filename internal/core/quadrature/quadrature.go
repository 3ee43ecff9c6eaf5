// Package quadrature approximates double integrals over axis-aligned
// regions with the fixed-resolution midpoint rule.
package quadrature

import (
	"math"

	"github.com/McGIllicuddy7/psi/internal/core/density"
	"github.com/McGIllicuddy7/psi/internal/core/systems/physics"
)

// CellCounts returns the number of cells along each axis for a region
// sampled at resolution cells per unit length. Non-positive and NaN
// products yield zero cells.
func CellCounts(region physics.AxisAlignedRegion, resolution float64) (int, int) {
	return cellCount(region.W * resolution), cellCount(region.H * resolution)
}

func cellCount(v float64) int {
	c := math.Ceil(v)
	if !(c > 0) {
		return 0
	}
	if c > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(c)
}

// Integrate sums fn at every cell midpoint weighted by the cell area.
// It returns 0 when either axis has no cells. Inputs are not validated,
// see IntegrateChecked.
func Integrate(region physics.AxisAlignedRegion, resolution float64, fn density.SampleFunc) float64 {
	countX, countY := CellCounts(region, resolution)
	if countX == 0 || countY == 0 {
		return 0
	}
	g := newGrid(region, countX, countY)

	var out float64
	for i := 0; i < countX; i++ {
		for j := 0; j < countY; j++ {
			out += g.cell(fn, i, j)
		}
	}
	return out
}

// IntegrateChecked validates the region and resolution before integrating.
func IntegrateChecked(region physics.AxisAlignedRegion, resolution float64, fn density.SampleFunc) (float64, error) {
	if err := validate(region, resolution); err != nil {
		return 0, err
	}
	return Integrate(region, resolution, fn), nil
}

func validate(region physics.AxisAlignedRegion, resolution float64) error {
	if !(resolution > 0) || math.IsInf(resolution, 0) {
		return ErrInvalidResolution
	}
	return region.Validate()
}

// grid holds the cell layout shared by the serial and parallel paths.
type grid struct {
	x, y   float64
	dx, dy float64
}

func newGrid(region physics.AxisAlignedRegion, countX, countY int) grid {
	dx := region.W / float64(countX)
	dy := region.H / float64(countY)
	return grid{x: region.X, y: region.Y, dx: dx, dy: dy}
}

func (g grid) cell(fn density.SampleFunc, i, j int) float64 {
	x0 := g.x + float64(i)*g.dx
	y0 := g.y + float64(j)*g.dy
	x1 := x0 + g.dx
	y1 := y0 + g.dy
	mid := physics.NewVector2((x0+x1)/2, (y0+y1)/2)
	return fn(mid) * g.dx * g.dy
}

// column sums every cell with x index i.
func (g grid) column(fn density.SampleFunc, i, countY int) float64 {
	var out float64
	for j := 0; j < countY; j++ {
		out += g.cell(fn, i, j)
	}
	return out
}
