package physics

import "errors"

var (
	ErrInvalidRegion = errors.New("invalid region")
)
