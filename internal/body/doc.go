// Package body defines the point-mass entity at the core of the
// simulation.
//
// A [Body] advances one frame at a time under an externally supplied net
// force:
//
//   - [Body.Integrate]: semi-implicit Euler with a unit timestep
//   - [Body.EnforceBounds]: per-axis rebound off the viewport edges
//   - [Body.RecordTrace]: bounded trail history for rendering
//
// Integrate runs boundary enforcement and trace recording as
// unconditional side effects, so a single call per frame keeps the body
// fully consistent.
//
// # Identity
//
// Bodies have no identity of their own. [Body.SameAppearance] compares
// color tokens for display purposes only; force computation must exclude
// a body from its own sum by position in the collection, never by color,
// because the display palette cycles.
package body
