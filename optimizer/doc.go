// Package optimizer runs the nested searches that place one hydration
// shell's worth of water molecules on an energy grid:
//
//  1. Disordered-bond rotation — rotatable solute bonds carrying waters
//     are swept at a fixed angular step; attached waters (and their
//     anchors) commit to the elected torsion with a single rotation.
//  2. Placement ordering — every pending candidate is scored by its best
//     achievable annulus energy (with jitter and edge exclusion) and the
//     full list is ranked or Boltzmann-sampled into a processing order.
//  3. Position search — annulus enumeration around the anchor, angle
//     filtering against the anchor direction, grid scoring, election,
//     and one rigid translation.
//  4. Orientation search — either a precomputed Shoemake quaternion set
//     scored on the grid (electrostatics and desolvation excluded), or
//     discrete rotations about the anchor axis scored pairwise against
//     nearby hydrogen-bond partners.
//
// The shell driver strings these together, folds every accepted water's
// locally recomputed sub-grid back into the master grid through the
// Refresher interface, and returns the accepted shell plus the rejection
// list. A Refresher failure rejects that single water, never the shell.
//
// Everything is sequential and deterministic under a fixed Options.Seed:
// later waters observe the grid contributions of all earlier commits, so
// processing order is part of the contract, not an implementation detail.
package optimizer
