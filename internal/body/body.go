package body

import (
	"fmt"
	"math"
)

// TraceCap is the maximum number of trail points a body retains.
// The oldest point is evicted before a new one is appended, so the
// trace never exceeds this length, not even transiently.
const TraceCap = 100

// Point is a recorded trail position.
type Point struct {
	X, Y float64
}

// Bounds is the rectangular region a body is confined to.
type Bounds struct {
	Width  float64
	Height float64
}

func (b Bounds) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("%w: %gx%g", ErrDegenerateBounds, b.Width, b.Height)
	}
	return nil
}

// Body is a single point mass. It owns its kinematic state, its boundary
// rebound rule and its bounded trail history. Radius is derived from mass
// and only used for rendering.
type Body struct {
	X, Y    float64
	VX, VY  float64
	Mass    float64
	Radius  float64
	Color   string
	Rebound float64

	bounds Bounds
	trace  []Point
}

// New constructs a body. Mass must be strictly positive (acceleration
// divides by it) and the rebound factor must lie in [0, 1].
func New(x, y, mass, vx, vy float64, color string, rebound float64, bounds Bounds) (*Body, error) {
	if mass <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrNonPositiveMass, mass)
	}
	if rebound < 0 || rebound > 1 {
		return nil, fmt.Errorf("%w: %g", ErrReboundRange, rebound)
	}
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	return &Body{
		X:       x,
		Y:       y,
		VX:      vx,
		VY:      vy,
		Mass:    mass,
		Radius:  2 * math.Sqrt(mass),
		Color:   color,
		Rebound: rebound,
		bounds:  bounds,
		trace:   make([]Point, 0, TraceCap),
	}, nil
}

// Integrate advances the body one frame under the given net force.
// Semi-implicit Euler with unit timestep: velocity first, then position
// from the updated velocity. Boundary enforcement and trace recording
// happen on every call.
func (b *Body) Integrate(fx, fy float64) {
	ax := fx / b.Mass
	ay := fy / b.Mass
	b.VX += ax
	b.VY += ay
	b.X += b.VX
	b.Y += b.VY
	b.EnforceBounds()
	b.RecordTrace()
}

// EnforceBounds clamps the body inside its bounds, reflecting velocity
// scaled by the rebound factor. Each axis is handled independently; the
// lower and upper checks per axis are mutually exclusive.
func (b *Body) EnforceBounds() {
	if b.Y < 0 {
		b.Y = 0
		b.VY *= -b.Rebound
	} else if b.Y > b.bounds.Height {
		b.Y = b.bounds.Height
		b.VY *= -b.Rebound
	}
	if b.X < 0 {
		b.X = 0
		b.VX *= -b.Rebound
	} else if b.X > b.bounds.Width {
		b.X = b.bounds.Width
		b.VX *= -b.Rebound
	}
}

// RecordTrace appends the current position to the trail, evicting the
// oldest point once the trail holds TraceCap entries.
func (b *Body) RecordTrace() {
	if len(b.trace) == TraceCap {
		copy(b.trace, b.trace[1:])
		b.trace = b.trace[:TraceCap-1]
	}
	b.trace = append(b.trace, Point{b.X, b.Y})
}

// Trace returns the trail in chronological order, oldest first.
// The returned slice is a copy.
func (b *Body) Trace() []Point {
	out := make([]Point, len(b.trace))
	copy(out, b.trace)
	return out
}

// SameAppearance reports whether two bodies share a color token.
// This is a display predicate only: the palette cycles, so distinct
// bodies can share a color. Never use it to identify a body.
func (b *Body) SameAppearance(other *Body) bool {
	return b.Color == other.Color
}

// Bounds returns the region the body is confined to.
func (b *Body) Bounds() Bounds {
	return b.bounds
}
