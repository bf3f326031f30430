// Package gravity computes pairwise inverse-square attraction between
// bodies and drives their per-frame integration.
package gravity

import (
	"math"

	"github.com/tarunkumar1111/three-body-problem/internal/body"
)

const (
	// MinDistance floors the separation used in the force law so a
	// coincident pair cannot blow up the division.
	MinDistance = 1.0

	// Cutoff is the softening radius: pairs closer than this exert no
	// force on each other, which keeps close approaches from producing
	// runaway accelerations.
	Cutoff = 40.0
)

// PairwiseForce returns the force exerted on a by b. Pure, no side
// effects. Newton's third law holds: swapping the arguments flips the
// sign on both components.
func PairwiseForce(a, b *body.Body, g float64) (fx, fy float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dist := math.Max(MinDistance, math.Hypot(dx, dy))
	if dist < Cutoff {
		return 0, 0
	}
	mag := g * a.Mass * b.Mass / (dist * dist)
	angle := math.Atan2(dy, dx)
	return mag * math.Cos(angle), mag * math.Sin(angle)
}

// NetForce sums the pairwise force on bodies[i] from every other body.
// Self-exclusion is by index: bodies that happen to share a color are
// still distinct sources.
func NetForce(i int, bodies []*body.Body, g float64) (fx, fy float64) {
	self := bodies[i]
	for j, other := range bodies {
		if j == i {
			continue
		}
		px, py := PairwiseForce(self, other, g)
		fx += px
		fy += py
	}
	return fx, fy
}

// Step advances every body one frame, in insertion order, updating each
// in place before the next body's force is computed. Later bodies in the
// pass therefore see already-advanced positions. This order dependence is
// deliberate: it reproduces the trajectories of the sequential update the
// simulator has always used. StepSnapshot is the frame-consistent
// alternative.
func Step(bodies []*body.Body, g float64) {
	for i := range bodies {
		fx, fy := NetForce(i, bodies, g)
		bodies[i].Integrate(fx, fy)
	}
}

// StepSnapshot advances every body one frame using forces computed from
// the positions all bodies held at the start of the frame.
func StepSnapshot(bodies []*body.Body, g float64) {
	type vec struct{ x, y float64 }
	forces := make([]vec, len(bodies))
	for i := range bodies {
		fx, fy := NetForce(i, bodies, g)
		forces[i] = vec{fx, fy}
	}
	for i := range bodies {
		bodies[i].Integrate(forces[i].x, forces[i].y)
	}
}
