package quadrature

import (
	"context"
	"encoding/binary"
	"math"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/McGIllicuddy7/psi/internal/core/density"
	"github.com/McGIllicuddy7/psi/internal/core/observability/log"
	"github.com/McGIllicuddy7/psi/internal/core/systems/physics"
)

// Result describes one integration.
type Result struct {
	Value    float64
	CountX   int
	CountY   int
	Cached   bool
	Duration time.Duration
}

// Integrator integrates field states over regions and memoizes the results.
// It is safe for concurrent use.
type Integrator struct {
	logger  log.Log
	workers int

	mu      sync.Mutex
	entries map[uint64]cacheEntry
	hits    uint64
	misses  uint64
}

type cacheKey struct {
	location   physics.Vector2
	region     physics.AxisAlignedRegion
	resolution float64
}

type cacheEntry struct {
	key    cacheKey
	result Result
}

// NewIntegrator creates an Integrator. workers follows IntegrateParallel.
func NewIntegrator(logger log.Log, workers int) *Integrator {
	return &Integrator{
		logger:  logger.With(log.String("component", "quadrature")),
		workers: workers,
		entries: make(map[uint64]cacheEntry),
	}
}

// IntegrateField integrates the density of field over region. Inputs are
// validated first; a repeated request for the same location, region and
// resolution is answered from the cache.
func (in *Integrator) IntegrateField(ctx context.Context, field *density.FieldState, region physics.AxisAlignedRegion, resolution float64) (Result, error) {
	if err := validate(region, resolution); err != nil {
		return Result{}, err
	}

	key := cacheKey{location: field.Location, region: region, resolution: resolution}
	hash := key.sum()

	in.mu.Lock()
	if e, ok := in.entries[hash]; ok && e.key == key {
		in.hits++
		in.mu.Unlock()
		res := e.result
		res.Cached = true
		in.logger.Debug("integration cache hit", log.Uint64("key", hash), log.Float64("value", res.Value))
		return res, nil
	}
	in.misses++
	in.mu.Unlock()

	start := time.Now()
	value, err := IntegrateParallel(ctx, region, resolution, field.DensityFunction(), in.workers)
	if err != nil {
		return Result{}, err
	}
	countX, countY := CellCounts(region, resolution)
	res := Result{
		Value:    value,
		CountX:   countX,
		CountY:   countY,
		Duration: time.Since(start),
	}

	in.mu.Lock()
	in.entries[hash] = cacheEntry{key: key, result: res}
	in.mu.Unlock()

	in.logger.Debug("integrated field",
		log.Uint64("key", hash),
		log.Float64("value", value),
		log.Int("cells_x", countX),
		log.Int("cells_y", countY),
		log.Duration("duration", res.Duration),
	)
	return res, nil
}

// Stats returns cache hit and miss counts.
func (in *Integrator) Stats() (hits, misses uint64) {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.hits, in.misses
}

// Reset drops every cached result.
func (in *Integrator) Reset() {
	in.mu.Lock()
	defer in.mu.Unlock()
	clear(in.entries)
}

func (k cacheKey) sum() uint64 {
	var buf [7 * 8]byte
	for i, v := range [...]float64{
		k.location.X, k.location.Y,
		k.region.X, k.region.Y, k.region.W, k.region.H,
		k.resolution,
	} {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return xxhash.Sum64(buf[:])
}
