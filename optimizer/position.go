package optimizer

import (
	"errors"
	"math"

	"github.com/katalvlaran/hydra/geom"
	"github.com/katalvlaran/hydra/grid"
	"github.com/katalvlaran/hydra/policy"
	"github.com/katalvlaran/hydra/water"
)

// donorReduction shifts the annulus inward when the anchor donates the
// hydrogen: the hydrogen sits ~1 Å closer to the water than the heavy
// atom the distances are quoted from.
const donorReduction = 1.0

// neighborCandidates enumerates the allowed positions for one water:
//
//  1. Grid nodes in the annulus around the anchor (radii reduced by 1 Å
//     for donor anchors).
//  2. Optional jitter of up to half a grid spacing per axis.
//  3. Optional exclusion of points within margin of a lattice face.
//  4. Angle filter: keep points whose angle at the anchor against the
//     anchor direction is at least the configured cutoff.
//
// Returns the surviving points and their oxygen-type energies, index
// aligned. Both slices are empty when nothing survives; that is a valid
// outcome, not an error.
func (o *Optimizer) neighborCandidates(w *water.Water, g *grid.Grid, jitter bool, margin float64) ([]geom.Vec3, []float64, error) {
	if g == nil {
		return nil, nil, ErrNilGrid
	}

	minR, maxR := o.opts.MinDistance, o.opts.MaxDistance
	if w.Anchor.Type == water.Donor {
		minR -= donorReduction
		maxR -= donorReduction
	}

	points := g.NeighborPoints(w.Anchor.Pos, minR, maxR)

	if jitter {
		limit := g.Spacing / 2
		for i := range points {
			for ax := 0; ax < 3; ax++ {
				points[i][ax] += (o.rng.Float64()*2 - 1) * limit
			}
		}
	}

	var (
		cutoff   = o.angleCutoffRad()
		oxygen   = w.Atoms()[0].Type
		keep     = points[:0]
		energies []float64
	)
	for _, p := range points {
		if margin > 0 && g.IsNearEdge(p, margin) {
			continue
		}
		if geom.Angle(p, w.Anchor.Pos, w.Anchor.Dir) < cutoff {
			continue
		}
		e, err := g.EnergyAt(p, oxygen)
		if err != nil {
			return nil, nil, err
		}
		keep = append(keep, p)
		energies = append(energies, e)
	}

	return keep, energies, nil
}

// PlacementOrder establishes the processing order of a shell's pending
// candidates: each is scored by the best energy achievable in its
// (jittered, edge-excluded) annulus, then the whole list is ranked
// (Best) or drawn without replacement (Boltzmann). Candidates absent
// from the returned order — Boltzmann candidates whose weight is zero —
// are to be rejected by the caller.
//
// Waters with an empty candidate set score +Inf and sort last.
func (o *Optimizer) PlacementOrder(waters []*water.Water, g *grid.Grid) ([]int, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if len(waters) == 0 {
		return nil, nil
	}

	best := make([]float64, len(waters))
	for i, w := range waters {
		_, energies, err := o.neighborCandidates(w, g, o.opts.Jitter, o.opts.EdgeMargin)
		if err != nil {
			return nil, err
		}

		best[i] = math.Inf(1)
		for _, e := range energies {
			if e < best[i] {
				best[i] = e
			}
		}
	}

	order, err := policy.Rank(best, o.opts.Policy, o.opts.Temperature, o.rng)
	if err != nil {
		if errors.Is(err, policy.ErrNoCandidates) {
			// Every candidate was unplaceable; an empty order is valid.
			return nil, nil
		}

		return nil, err
	}

	return order, nil
}

// OptimizePosition elects the best allowed position for one water and
// translates it there, returning the elected energy. When no candidate
// survives filtering the water stays put and the energy at its current
// position is returned (defined fallback, not an error).
func (o *Optimizer) OptimizePosition(w *water.Water, g *grid.Grid) (float64, error) {
	points, energies, err := o.neighborCandidates(w, g, o.opts.Jitter, o.opts.EdgeMargin)
	if err != nil {
		return 0, err
	}

	if len(points) == 0 {
		return g.EnergyAt(w.Oxygen(), w.Atoms()[0].Type)
	}

	i, err := policy.Select(energies, o.opts.Policy, o.opts.Temperature, o.rng)
	if err != nil {
		if errors.Is(err, policy.ErrNoCandidates) {
			// All candidates carried zero Boltzmann weight; same
			// fallback as an empty candidate set.
			return g.EnergyAt(w.Oxygen(), w.Atoms()[0].Type)
		}

		return 0, err
	}

	w.MoveTo(points[i])

	return energies[i], nil
}
