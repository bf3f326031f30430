// Package metrics observes per-frame quantities of the running
// simulation.
package metrics

import (
	"math"

	"github.com/tarunkumar1111/three-body-problem/internal/body"
	"github.com/tarunkumar1111/three-body-problem/internal/gravity"
)

// Metric accumulates an observation per frame.
type Metric interface {
	Name() string
	Observe(bodies []*body.Body)
	Value() float64
	Reset()
}

// Energy reports the mean total mechanical energy (kinetic plus pairwise
// gravitational potential) over the observed frames.
type Energy struct {
	g       float64
	samples int
	total   float64
	latest  float64
}

func NewEnergy(g float64) *Energy {
	return &Energy{g: g}
}

func (e *Energy) Name() string { return "energy" }

func (e *Energy) Observe(bodies []*body.Body) {
	total := 0.0
	for i, b := range bodies {
		total += 0.5 * b.Mass * (b.VX*b.VX + b.VY*b.VY)
		for j := i + 1; j < len(bodies); j++ {
			o := bodies[j]
			dx := o.X - b.X
			dy := o.Y - b.Y
			r := math.Max(gravity.MinDistance, math.Hypot(dx, dy))
			total -= e.g * b.Mass * o.Mass / r
		}
	}
	e.latest = total
	e.total += total
	e.samples++
}

func (e *Energy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

// Latest returns the most recent observation, for live display.
func (e *Energy) Latest() float64 { return e.latest }

func (e *Energy) Reset() {
	e.samples = 0
	e.total = 0
	e.latest = 0
}

// Momentum reports the magnitude of the total linear momentum at the most
// recent observation. A lossless, boundary-free system would hold it
// constant; rebounds deliberately bleed it off.
type Momentum struct {
	latest float64
}

func NewMomentum() *Momentum { return &Momentum{} }

func (m *Momentum) Name() string { return "momentum" }

func (m *Momentum) Observe(bodies []*body.Body) {
	px, py := 0.0, 0.0
	for _, b := range bodies {
		px += b.Mass * b.VX
		py += b.Mass * b.VY
	}
	m.latest = math.Hypot(px, py)
}

func (m *Momentum) Value() float64 { return m.latest }

func (m *Momentum) Reset() { m.latest = 0 }
