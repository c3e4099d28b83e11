// Package policy is the single candidate-selection contract shared by
// every search stage: position search, orientation search, disordered
// bond rotation, and cluster-representative activation all funnel their
// scored candidates through Select or Rank under one closed Policy set.
//
// Goals:
//   - Determinism: same seed ⇒ identical results across platforms.
//   - Closed variants: an unrecognized policy is a hard configuration
//     error (ErrUnknownPolicy), never a silent default.
//   - Encapsulation: all Boltzmann math (kB, weighting, normalization)
//     lives here; callers pass plain energy slices.
//
// Concurrency: math/rand.Rand is NOT goroutine-safe. Each Optimizer owns
// one RNG; do not share it across goroutines.
package policy
