package shellkit

import "github.com/katalvlaran/hydra/geom"

// clusterByDistance partitions points into single-linkage clusters cut
// at cutoff: two points share a cluster iff a chain of pairwise
// distances ≤ cutoff connects them. Implemented as union-find with path
// compression and union by rank over all close pairs.
//
// Clusters are returned as index slices in ascending first-member order,
// members ascending, so the partition is deterministic.
//
// Complexity: O(n²) pair scan, α(n) amortized per union.
func clusterByDistance(points []geom.Vec3, cutoff float64) [][]int {
	n := len(points)
	if n == 0 {
		return nil
	}

	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}

	var find func(int) int
	find = func(u int) int {
		if parent[u] != u {
			parent[u] = find(parent[u])
		}

		return parent[u]
	}
	union := func(u, v int) {
		ru, rv := find(u), find(v)
		if ru == rv {
			return
		}
		if rank[ru] < rank[rv] {
			parent[ru] = rv
		} else {
			parent[rv] = ru
			if rank[ru] == rank[rv] {
				rank[ru]++
			}
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if points[i].Dist(points[j]) <= cutoff {
				union(i, j)
			}
		}
	}

	// Collect components keyed by root, ordered by first appearance.
	byRoot := make(map[int]int, n)
	var clusters [][]int
	for i := 0; i < n; i++ {
		r := find(i)
		ci, ok := byRoot[r]
		if !ok {
			ci = len(clusters)
			byRoot[r] = ci
			clusters = append(clusters, nil)
		}
		clusters[ci] = append(clusters[ci], i)
	}

	return clusters
}
