package body

import "errors"

// Construction errors.
var (
	// ErrNonPositiveMass indicates a mass of zero or below.
	ErrNonPositiveMass = errors.New("body: mass must be positive")

	// ErrReboundRange indicates a rebound factor outside [0, 1].
	ErrReboundRange = errors.New("body: rebound factor out of range")

	// ErrDegenerateBounds indicates a bounds rectangle with no area.
	ErrDegenerateBounds = errors.New("body: bounds must have positive extent")
)
