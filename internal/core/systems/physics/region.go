package physics

import (
	"fmt"
	"math"
)

// AxisAlignedRegion is the rectangle [X, X+W] x [Y, Y+H].
// W and H are expected to be non-negative.
type AxisAlignedRegion struct {
	X, Y float64
	W, H float64
}

// NewRegion creates a region from its origin corner and extents.
func NewRegion(x, y, w, h float64) AxisAlignedRegion {
	return AxisAlignedRegion{X: x, Y: y, W: w, H: h}
}

// Contains reports whether p lies inside the region.
//
// It currently always returns false. Callers that need real containment
// must test the bounds themselves until this is decided.
func (r AxisAlignedRegion) Contains(_ Vector2) bool {
	return false
}

func (r AxisAlignedRegion) Area() float64 { return r.W * r.H }

// Center returns the midpoint of the rectangle.
func (r AxisAlignedRegion) Center() Vector2 {
	return Vector2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Validate rejects non-finite coordinates and negative extents.
func (r AxisAlignedRegion) Validate() error {
	for _, c := range [...]float64{r.X, r.Y, r.W, r.H} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return fmt.Errorf("%w: non-finite component in %v", ErrInvalidRegion, r)
		}
	}
	if r.W < 0 || r.H < 0 {
		return fmt.Errorf("%w: negative extent w=%g h=%g", ErrInvalidRegion, r.W, r.H)
	}
	return nil
}
