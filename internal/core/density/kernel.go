// Package density models a separable product-Gaussian field and the
// sampling functions derived from it.
package density

import (
	"math"

	"github.com/McGIllicuddy7/psi/internal/core/systems/physics"
)

// Scale is the per-axis bandwidth factor applied by Profile.
// With Scale = 1 the kernel integrates to exactly 1 over the plane.
const Scale = 1.0

// Kernel maps a point in the kernel's local frame to a density value.
type Kernel func(p physics.Vector2) float64

// SampleFunc maps a point in world coordinates to a density value.
type SampleFunc func(p physics.Vector2) float64

// Profile is the one-dimensional Gaussian exp(-pi*(s*t)^2)*s.
func Profile(t float64) float64 {
	st := t * Scale
	return math.Exp(-math.Pi*st*st) * Scale
}

// Evaluate is the origin-centered kernel Profile(x)*Profile(y).
// It peaks at 1 at the origin and is symmetric in both axes.
func Evaluate(p physics.Vector2) float64 {
	return Profile(p.X) * Profile(p.Y)
}

var _ Kernel = Evaluate
