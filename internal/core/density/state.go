package density

import "github.com/McGIllicuddy7/psi/internal/core/systems/physics"

// FieldState binds the density kernel to a movable reference point.
//
// Velocity is carried alongside Location but no computation reads it.
type FieldState struct {
	Location physics.Vector2
	Velocity physics.Vector2

	kernel Kernel
}

// NewFieldState stores location and velocity verbatim and binds Evaluate.
func NewFieldState(location, velocity physics.Vector2) *FieldState {
	return &FieldState{
		Location: location,
		Velocity: velocity,
		kernel:   Evaluate,
	}
}

// SampleDensity evaluates the kernel at point, translated into the local frame.
func (s *FieldState) SampleDensity(point physics.Vector2) float64 {
	return s.kernel(point.Sub(s.Location))
}

// DensityFunction returns a sampling function bound to the current location.
// The location is copied: moving the state afterwards does not affect it.
func (s *FieldState) DensityFunction() SampleFunc {
	kernel, location := s.kernel, s.Location
	return func(point physics.Vector2) float64 {
		return kernel(point.Sub(location))
	}
}

// MoveTo sets a new reference point.
func (s *FieldState) MoveTo(location physics.Vector2) {
	s.Location = location
}
