package optimizer

import (
	"math"

	"github.com/katalvlaran/hydra/grid"
	"github.com/katalvlaran/hydra/water"
)

// siteGridEnergy sums the grid score of the given sites: per-type
// affinity, plus the charge-weighted electrostatic map and the
// |charge|-weighted desolvation map when the grid carries them and the
// caller has not excluded them. Out-of-lattice sites contribute +Inf
// through the grid contract, poisoning the total as intended.
func siteGridEnergy(atoms []water.Atom, g *grid.Grid, skipElec, skipDesolv bool) (float64, error) {
	var total float64

	elec := !skipElec && g.HasMap(grid.MapElectrostatics)
	desolv := !skipDesolv && g.HasMap(grid.MapDesolvation)

	for i := range atoms {
		e, err := g.EnergyAt(atoms[i].Pos, atoms[i].Type)
		if err != nil {
			return 0, err
		}
		total += e

		if elec {
			ee, err := g.EnergyAt(atoms[i].Pos, grid.MapElectrostatics)
			if err != nil {
				return 0, err
			}
			total += atoms[i].Charge * ee
		}
		if desolv {
			ed, err := g.EnergyAt(atoms[i].Pos, grid.MapDesolvation)
			if err != nil {
				return 0, err
			}
			total += math.Abs(atoms[i].Charge) * ed
		}
	}

	return total, nil
}
