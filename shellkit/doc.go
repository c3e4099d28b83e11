// Package shellkit finalizes one hydration shell: it clusters the waters
// surviving optimization by oxygen proximity, elects representatives per
// cluster (crystallographic waters first, otherwise Best or Boltzmann),
// removes spatial clashes, and writes the resulting active/inactive flag
// back onto every water. Inactive waters stay in the record — they are
// excluded from later shells, not deleted.
//
// Clustering note: single-linkage hierarchical clustering cut at a fixed
// distance threshold is exactly the set of connected components of the
// "distance ≤ threshold" graph, so the partition is computed with a
// union-find over close pairs rather than a dendrogram.
//
// Errors: only configuration errors surface (unknown policy, bad
// thresholds). An empty candidate shell is a valid input and yields an
// empty accepted set.
package shellkit
