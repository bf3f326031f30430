// Package world owns the simulation's body set: a fixed-capacity,
// insertion-ordered arena that only ever grows, up to the configured
// maximum.
package world

import (
	"errors"
	"fmt"
	"math"

	"github.com/tarunkumar1111/three-body-problem/internal/body"
	"github.com/tarunkumar1111/three-body-problem/internal/config"
	"github.com/tarunkumar1111/three-body-problem/internal/gravity"
)

// ErrWorldFull indicates the body limit has been reached. Non-fatal:
// the addition is ignored and the caller surfaces a warning.
var ErrWorldFull = errors.New("world: body limit reached")

// Side length of the triangle the three seed bodies start on.
const seedSide = 200.0

// Seed body colors, matching the simulator's traditional trio.
var seedColors = []string{"#7494c4", "#6a4d61", "#c3d407"}

// World holds the body arena and steps it one frame at a time.
type World struct {
	cfg    config.Config
	bodies []*body.Body
	frame  int
}

// New builds a world seeded with three bodies at the vertices of an
// equilateral triangle, carrying small symmetric initial velocities.
func New(cfg config.Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.MaxBodies < len(seedColors) {
		return nil, fmt.Errorf("max bodies %d cannot hold the %d seed bodies", cfg.MaxBodies, len(seedColors))
	}
	w := &World{
		cfg:    cfg,
		bodies: make([]*body.Body, 0, cfg.MaxBodies),
	}
	if err := w.seed(); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *World) seed() error {
	bounds := body.Bounds{Width: w.cfg.Width, Height: w.cfg.Height}
	apex := math.Sqrt(seedSide*seedSide - (seedSide/2)*(seedSide/2))
	baseX := w.cfg.Width/2 - seedSide/2
	baseY := 400.0

	spawns := []struct {
		x, y, vx, vy float64
	}{
		{baseX, baseY, 0.1, 0.1},
		{baseX + seedSide/2, baseY - apex, -0.1, 0.1},
		{baseX + seedSide, baseY, 0.1, -0.1},
	}
	for i, s := range spawns {
		b, err := body.New(s.x, s.y, w.cfg.Mass, s.vx, s.vy, seedColors[i], w.cfg.Rebound, bounds)
		if err != nil {
			return err
		}
		w.bodies = append(w.bodies, b)
	}
	return nil
}

// Add injects a new body at the given position with the configured
// default mass, velocity and rebound factor, and a palette color cycled
// by the current count of injected bodies. Returns ErrWorldFull once the
// arena holds MaxBodies bodies; the set is left unchanged.
func (w *World) Add(x, y float64) (*body.Body, error) {
	if len(w.bodies) >= w.cfg.MaxBodies {
		return nil, ErrWorldFull
	}
	injected := len(w.bodies) - len(seedColors)
	if injected < 0 {
		injected = 0
	}
	b, err := body.New(x, y, w.cfg.Mass, 0.1, 0.1, PaletteColor(injected), w.cfg.Rebound,
		body.Bounds{Width: w.cfg.Width, Height: w.cfg.Height})
	if err != nil {
		return nil, err
	}
	w.bodies = append(w.bodies, b)
	return b, nil
}

// Step advances the whole body set one frame.
func (w *World) Step() {
	if w.cfg.Snapshot {
		gravity.StepSnapshot(w.bodies, w.cfg.G)
	} else {
		gravity.Step(w.bodies, w.cfg.G)
	}
	w.frame++
}

// Reset restores the initial three-body configuration.
func (w *World) Reset() error {
	w.bodies = w.bodies[:0]
	w.frame = 0
	return w.seed()
}

// Bodies exposes the arena in insertion order. Callers must not reorder
// or remove entries.
func (w *World) Bodies() []*body.Body { return w.bodies }

func (w *World) Len() int { return len(w.bodies) }

func (w *World) Cap() int { return w.cfg.MaxBodies }

func (w *World) Frame() int { return w.frame }

func (w *World) Config() config.Config { return w.cfg }
