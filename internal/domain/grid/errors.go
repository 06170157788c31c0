package grid

import "errors"

var (
	// ErrInvalidConfig indicates a configuration violating a structural invariant.
	ErrInvalidConfig = errors.New("invalid grid configuration")
	// ErrUnknownZoom indicates a zoom ID outside the preset set.
	ErrUnknownZoom = errors.New("unknown zoom level")
	// ErrUnknownPreset indicates a preset key that doesn't exist.
	ErrUnknownPreset = errors.New("unknown grid preset")
)
