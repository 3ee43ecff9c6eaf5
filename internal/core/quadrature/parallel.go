package quadrature

import (
	"context"
	"runtime"

	"github.com/McGIllicuddy7/psi/internal/core/density"
	"github.com/McGIllicuddy7/psi/internal/core/systems/physics"
	"golang.org/x/sync/errgroup"
)

// IntegrateParallel computes the same midpoint sum as Integrate with the
// columns of the grid split across workers. Column partial sums are reduced
// in index order, so the result does not depend on the worker count.
// A workers value below 1 means runtime.GOMAXPROCS(0). fn must be safe for
// concurrent use.
func IntegrateParallel(ctx context.Context, region physics.AxisAlignedRegion, resolution float64, fn density.SampleFunc, workers int) (float64, error) {
	countX, countY := CellCounts(region, resolution)
	if countX == 0 || countY == 0 {
		return 0, ctx.Err()
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > countX {
		workers = countX
	}

	g := newGrid(region, countX, countY)
	partials := make([]float64, countX)

	eg, ctx := errgroup.WithContext(ctx)
	chunk := (countX + workers - 1) / workers
	for start := 0; start < countX; start += chunk {
		end := min(start+chunk, countX)
		start := start
		eg.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				partials[i] = g.column(fn, i, countY)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	var out float64
	for _, p := range partials {
		out += p
	}
	return out, nil
}
