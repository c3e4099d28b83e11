package optimizer

import (
	"math"

	"github.com/katalvlaran/hydra/grid"
	"github.com/katalvlaran/hydra/shellkit"
	"github.com/katalvlaran/hydra/water"
)

// refreshRadius bounds the local box handed to the Refresher after an
// acceptance: the accepted water's field decays to noise well inside
// this range, so recomputing a wider region buys nothing.
const refreshRadius = 7.0

// OptimizeShell runs the full nested search for one hydration shell.
//
// Stages, in commit order:
//
//  1. Disordered-bond rotation for every bond carrying attached waters.
//  2. Placement ordering of all candidates; candidates the ordering
//     drops (zero Boltzmann weight) are rejected outright.
//  3. Per water, in order: position search → energy cutoff → explicit
//     site construction → rigid orientation search → energy cutoff.
//  4. When a Refresher is supplied, the accepted water's local grid
//     contribution is recomputed and folded back (replace) before the
//     next water is processed, so later placements observe it. A
//     Refresher failure rejects that single water and continues.
//
// The waters slice is mutated in place (positions, sites, Energy);
// rejected candidates are simply left out of the returned shell. An
// empty input yields an empty shell, not an error.
func (o *Optimizer) OptimizeShell(waters []*water.Water, conns []water.Connection, bonds []RotatableBond, g *grid.Grid, ref Refresher, shellID int) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	if len(bonds) > 0 && len(conns) > 0 {
		if _, err := o.OptimizeDisordered(bonds, waters, conns, g); err != nil {
			return nil, err
		}
	}

	order, err := o.PlacementOrder(waters, g)
	if err != nil {
		return nil, err
	}

	var (
		accepted []*water.Water
		records  []shellkit.Record
		rejected []int
		newIndex = make(map[int]int, len(order))
	)
	ordered := make(map[int]bool, len(order))
	for _, i := range order {
		ordered[i] = true
	}
	for i := range waters {
		if !ordered[i] {
			rejected = append(rejected, i)
		}
	}

	for _, i := range order {
		w := waters[i]

		ePos, err := o.OptimizePosition(w, g)
		if err != nil {
			return nil, err
		}
		if ePos >= o.opts.EnergyCutoff {
			rejected = append(rejected, i)
			continue
		}

		if err = w.BuildExplicit(); err != nil {
			return nil, err
		}

		eOri, err := o.OptimizeOrientationGrid(w, g)
		if err != nil {
			return nil, err
		}
		if eOri >= o.opts.EnergyCutoff {
			rejected = append(rejected, i)
			continue
		}
		w.Energy = eOri

		if ref != nil {
			if err = o.refresh(w, g, ref); err != nil {
				rejected = append(rejected, i)
				continue
			}
		}

		newIndex[i] = len(accepted)
		accepted = append(accepted, w)
		records = append(records, shellkit.Record{
			ShellID:           shellID,
			EnergyPosition:    ePos,
			EnergyOrientation: eOri,
		})
	}

	shell, err := shellkit.New(shellID, accepted, records)
	if err != nil {
		return nil, err
	}

	// Surviving connections, renumbered against the accepted order.
	var kept []water.Connection
	for _, c := range conns {
		if j, ok := newIndex[c.WaterIndex]; ok {
			kept = append(kept, water.Connection{SoluteAtom: c.SoluteAtom, WaterIndex: j})
		}
	}

	return &Result{Shell: shell, Rejected: rejected, Connections: kept}, nil
}

// refresh recomputes the lattice-aligned box around one accepted water
// and folds every returned map back into the shared grid.
func (o *Optimizer) refresh(w *water.Water, g *grid.Grid, ref Refresher) error {
	center := g.ClosestNode(w.Oxygen())

	nodes := 2*int(math.Round(refreshRadius/g.Spacing)) + 1
	sub, err := ref.Refresh(w, center, [3]int{nodes, nodes, nodes}, g.Spacing)
	if err != nil {
		return err
	}

	for _, t := range sub.Types() {
		if !g.HasMap(t) {
			continue
		}
		if err = g.Combine(t, sub, grid.Replace); err != nil {
			return err
		}
	}

	return nil
}
