package quadrature

import (
	"errors"

	"github.com/McGIllicuddy7/psi/internal/core/systems/physics"
)

var (
	ErrInvalidResolution = errors.New("resolution must be positive and finite")
	ErrInvalidRegion     = physics.ErrInvalidRegion
)
