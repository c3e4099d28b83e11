// Package grid implements the consumer side of the discretized
// interaction-energy grid: a regular 3-D lattice of per-atom-type
// potential-of-mean-force values, queryable at arbitrary coordinates
// (trilinear interpolation) or at lattice nodes (exact), with annulus
// neighbor enumeration and local combine/replace of sub-regions.
//
// The lattice itself is produced by an external generator; this package
// only stores, queries, and merges it. Queries outside the lattice return
// +Inf rather than an error, so out-of-box placements rank below every
// in-box candidate without special-casing.
//
// Complexity: point queries are O(1); NeighborPoints is O(k³) in the
// annulus extent; Combine is O(n) in the overlapping node count.
package grid
