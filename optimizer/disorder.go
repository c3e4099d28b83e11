package optimizer

import (
	"github.com/katalvlaran/hydra/geom"
	"github.com/katalvlaran/hydra/grid"
	"github.com/katalvlaran/hydra/policy"
	"github.com/katalvlaran/hydra/water"
)

// OptimizeDisordered sweeps every rotatable solute bond that carries at
// least one attached water (per conns) through a full turn at the
// configured step, scores each sampled torsion by the sum of the
// attached waters' clipped-at-zero grid energies, elects a torsion, and
// commits it with exactly one rotation of each water and its anchor.
//
// Scoring clips each water's energy at zero so one badly placed water
// cannot veto an otherwise favorable rotamer; only favorable
// contributions count toward the group score.
//
// The sweep covers the start angle plus every step strictly below 360°,
// evaluated against copied oxygen coordinates — waters move only at
// commit, so no floating error accumulates across samples.
//
// Returns the elected group energy per swept bond, in input bond order;
// bonds with no attached water are skipped (no entry).
func (o *Optimizer) OptimizeDisordered(bonds []RotatableBond, waters []*water.Water, conns []water.Connection, g *grid.Grid) ([]float64, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	var elected []float64

	step := o.rotationStepRad()
	samples := int(360/o.opts.RotationStep) - 1 // increments past the start angle

	for _, bond := range bonds {
		attached := attachedWaters(bond, waters, conns)
		if len(attached) == 0 {
			continue
		}

		// Axis k→j, matching the torsion definition i–j–k–l.
		p1, p2 := bond.K, bond.J

		// Copied oxygen positions; the sweep never touches the waters.
		origins := make([]geom.Vec3, len(attached))
		for i, w := range attached {
			origins[i] = w.Oxygen()
		}

		energies := make([]float64, 0, samples+1)
		group, err := o.groupEnergy(attached, origins, g)
		if err != nil {
			return nil, err
		}
		energies = append(energies, group)

		rotated := make([]geom.Vec3, len(origins))
		for k := 1; k <= samples; k++ {
			theta := float64(k) * step
			for i, p := range origins {
				rotated[i] = geom.RotateAboutAxis(p, p1, p2, theta)
			}
			if group, err = o.groupEnergy(attached, rotated, g); err != nil {
				return nil, err
			}
			energies = append(energies, group)
		}

		i, err := policy.Select(energies, o.opts.Policy, o.opts.Temperature, o.rng)
		if err != nil {
			return nil, err
		}

		// Single commit rotation from the untouched start state.
		if i > 0 {
			theta := float64(i) * step
			for _, w := range attached {
				w.RotateAboutAxis(p1, p2, theta)
			}
		}
		elected = append(elected, energies[i])
	}

	return elected, nil
}

// attachedWaters resolves the waters carried by one disordered bond:
// every connection whose solute atom is either bond end.
func attachedWaters(bond RotatableBond, waters []*water.Water, conns []water.Connection) []*water.Water {
	var out []*water.Water
	for _, c := range conns {
		if c.SoluteAtom != bond.AtomI && c.SoluteAtom != bond.AtomJ {
			continue
		}
		if c.WaterIndex >= 0 && c.WaterIndex < len(waters) {
			out = append(out, waters[c.WaterIndex])
		}
	}

	return out
}

// groupEnergy sums the clipped-at-zero grid energies of the attached
// oxygens evaluated at the given (possibly rotated) positions.
func (o *Optimizer) groupEnergy(attached []*water.Water, at []geom.Vec3, g *grid.Grid) (float64, error) {
	var sum float64
	for i, w := range attached {
		atoms := []water.Atom{w.Atoms()[0]}
		atoms[0].Pos = at[i]

		e, err := siteGridEnergy(atoms, g, false, false)
		if err != nil {
			return 0, err
		}
		if e < 0 {
			sum += e
		}
	}

	return sum, nil
}
