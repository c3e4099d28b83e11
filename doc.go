// Package hydra places explicit water molecules around a fixed solute,
// one concentric hydration shell at a time, by searching a discretized
// interaction-energy grid for low-energy positions and orientations and
// then activating a consistent, collision-free subset per shell.
//
// 🚀 What is hydra?
//
//	A deterministic (seedable) water-network builder that brings together:
//		• Force field: AD4-style pairwise 12-6 / 12-10 potentials, directional
//		  hydrogen bonds, sigmoidal distance-dependent dielectric, Gaussian
//		  desolvation — all precomputed into a pairwise coefficient table
//		• Energy grid: trilinear point queries, annulus neighbor enumeration,
//		  local combine/replace of sub-regions
//		• Water optimizer: disordered-bond rotation, placement ordering,
//		  position search, quaternion and anchor-axis orientation search
//		• Shell activator: single-linkage clustering, clash removal, xray
//		  preference and Boltzmann sampling
//
// ✨ Why choose hydra?
//
//   - Reproducible – one seedable RNG drives every stochastic choice
//   - Rock-solid guarantees – sentinel errors, no panics on user input
//   - Pure Go core – the only heavy collaborator (grid re-generation) is
//     an interface the caller implements
//
// Under the hood, everything is organized leaf-first:
//
//	geom/       — vectors, quaternions, rotations, dihedrals
//	forcefield/ — parameter table, pairwise coefficients, energy terms
//	grid/       — discretized per-atom-type potential of mean force
//	water/      — rigid water bodies, anchors, connections
//	policy/     — Best / Boltzmann / All election and the shared RNG
//	optimizer/  — nested placement / rotation / orientation searches
//	shellkit/   — per-shell clustering and activation
//
// The surrounding hydration-shell loop (structure I/O, receptor
// preparation, the external grid generator) is intentionally outside this
// module; see optimizer.Refresher for the single integration point.
//
//	go get github.com/katalvlaran/hydra
package hydra
