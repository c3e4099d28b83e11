package shellkit

import (
	"math/rand"

	"github.com/katalvlaran/hydra/geom"
	"github.com/katalvlaran/hydra/policy"
)

// Activate elects the active subset of a shell's waters and writes the
// active flag onto every water. Waters not elected stay in the shell,
// flagged inactive.
//
// Algorithm:
//  1. Partition oxygens into single-linkage clusters cut at
//     opts.ClusterCutoff.
//  2. Within each cluster, iterate until the pool is exhausted:
//     representatives are all xray-flagged waters if any exist, else a
//     single Best/Boltzmann pick over position energies; mark them
//     active; drop every remaining member closer than opts.ClashDistance
//     to any representative; repeat on the remainder.
//  3. policy.All bypasses clustering and activates everything.
//
// An empty shell is a valid input: no error, no activations.
//
// Complexity: O(n²) distance work per shell.
func Activate(s *Shell, opts Options) error {
	if opts.ClusterCutoff <= 0 || opts.ClashDistance <= 0 {
		return ErrBadThreshold
	}
	if len(s.Waters) != len(s.Records) {
		return ErrRecordMismatch
	}

	for _, w := range s.Waters {
		w.SetActive(false)
	}
	if len(s.Waters) == 0 {
		return nil
	}

	if opts.Policy == policy.All {
		for _, w := range s.Waters {
			w.SetActive(true)
		}

		return nil
	}
	if opts.Policy != policy.Best && opts.Policy != policy.Boltzmann {
		return policy.ErrUnknownPolicy
	}

	rng := policy.NewRNG(opts.Seed)

	clusters := clusterByDistance(positions(s), opts.ClusterCutoff)
	for _, cluster := range clusters {
		if err := activateCluster(s, cluster, opts, rng); err != nil {
			return err
		}
	}

	return nil
}

// activateCluster runs the elect / clash-prune loop on one cluster.
func activateCluster(s *Shell, pool []int, opts Options, rng *rand.Rand) error {
	remaining := append([]int(nil), pool...)

	for len(remaining) > 0 {
		reps := electRepresentatives(s, remaining, opts, rng)
		if len(reps) == 0 {
			return policy.ErrNoCandidates
		}

		repSet := make(map[int]bool, len(reps))
		for _, r := range reps {
			s.Waters[r].SetActive(true)
			repSet[r] = true
		}

		// Survivors: not a representative and not clashing with one.
		next := remaining[:0]
		for _, i := range remaining {
			if repSet[i] {
				continue
			}
			clash := false
			for _, r := range reps {
				if s.Waters[i].Oxygen().Dist(s.Waters[r].Oxygen()) < opts.ClashDistance {
					clash = true
					break
				}
			}
			if !clash {
				next = append(next, i)
			}
		}
		remaining = next
	}

	return nil
}

// electRepresentatives returns the representative indices for one pass:
// every xray water if any exist, otherwise one policy pick by position
// energy.
func electRepresentatives(s *Shell, pool []int, opts Options, rng *rand.Rand) []int {
	var xray []int
	for _, i := range pool {
		if s.Waters[i].Xray {
			xray = append(xray, i)
		}
	}
	if len(xray) > 0 {
		return xray
	}

	energies := make([]float64, len(pool))
	for k, i := range pool {
		energies[k] = s.Records[i].EnergyPosition
	}
	k, err := policy.Select(energies, opts.Policy, opts.Temperature, rng)
	if err != nil {
		return nil
	}

	return []int{pool[k]}
}

// positions extracts the oxygen coordinates index-aligned with s.Waters.
func positions(s *Shell) []geom.Vec3 {
	out := make([]geom.Vec3, len(s.Waters))
	for i, w := range s.Waters {
		out[i] = w.Oxygen()
	}

	return out
}
