// Package forcefield implements the pairwise, knowledge-based scoring
// function used to evaluate water placements: a 12-6 van der Waals term,
// a directional 12-10 hydrogen-bond term, a sigmoidal distance-dependent
// dielectric electrostatic term, and a Gaussian-damped desolvation term.
//
// The package is loaded once from a line-oriented parameter table
// (atom_par records for per-type physics, FE_coeff records for per-term
// weights) and then precomputes an interaction-coefficient table for
// every ordered pair of atom types, so that scoring never touches the
// raw parameters again.
//
// Algorithm outline:
//  1. Parse atom_par / FE_coeff lines; any other line is ignored.
//  2. For every ordered type pair (i, j):
//     rij  = (rii_i + rii_j) / 2          (arithmetic mixing)
//     eps  = sqrt(epsii_i · epsii_j)      (geometric mixing)
//     A, B = 12-6 coefficients; C, D = 12-10 coefficients, directional:
//     the donor side adopts the acceptor's hydrogen-bond radius/depth,
//     and C = D = 0 when the pair cannot hydrogen-bond.
//  3. Distance-dependent terms snap distances within ±0.25 Å of the
//     equilibrium separation onto it and shift the remainder inward,
//     removing the contact singularity.
//
// Errors:
//   - ErrMalformedRecord — atom_par or FE_coeff line cannot be parsed.
//   - ErrMissingWeight   — a required FE_coeff weight is absent.
//   - ErrUnknownAtomType — a pair operation referenced an unloaded type.
//
// Complexity: load is O(T²) in the number of atom types; every energy
// evaluator is O(1) per atom pair.
package forcefield
