package optimizer

import (
	"github.com/katalvlaran/hydra/forcefield"
	"github.com/katalvlaran/hydra/geom"
	"github.com/katalvlaran/hydra/grid"
	"github.com/katalvlaran/hydra/policy"
	"github.com/katalvlaran/hydra/water"
)

// OptimizeOrientationGrid searches the rigid orientation of a built
// water about its fixed oxygen. The precomputed Shoemake quaternions
// (uniform over rotation space) each yield a candidate pose; poses are
// scored against the grid with electrostatics and desolvation excluded,
// since those were already spent choosing the oxygen position and the
// remaining degrees of freedom are steric and hydrogen-bond shaped.
//
// Elects one pose under the configured policy and commits it by
// overwriting the water's site coordinates once. Returns the elected
// orientation energy.
func (o *Optimizer) OptimizeOrientationGrid(w *water.Water, g *grid.Grid) (float64, error) {
	if g == nil {
		return 0, ErrNilGrid
	}
	if !w.Built() {
		return 0, ErrNotBuilt
	}

	oxy := w.Oxygen()
	base := w.SitePositions()
	sites := append([]water.Atom(nil), w.SiteAtoms()...)

	energies := make([]float64, len(o.quats))
	poses := make([][]geom.Vec3, len(o.quats))
	for qi, q := range o.quats {
		pose := make([]geom.Vec3, len(base))
		for i, p := range base {
			pose[i] = geom.RotateByQuat(p.Sub(oxy), q).Add(oxy)
			sites[i].Pos = pose[i]
		}

		e, err := siteGridEnergy(sites, g, true, true)
		if err != nil {
			return 0, err
		}

		energies[qi] = e
		poses[qi] = pose
	}

	i, err := policy.Select(energies, o.opts.Policy, o.opts.Temperature, o.rng)
	if err != nil {
		return 0, err
	}
	w.SetSitePositions(poses[i])

	return energies[i], nil
}

// OptimizeOrientationPairwise searches the orientation of a built water
// constrained to spin about its anchor axis (anchor position through
// oxygen), scoring each sampled angle by explicit pairwise hydrogen
// bonds against the given partners instead of a grid. Used when the
// water is hydrogen-bonded to a known set of sites and free rotation
// would break the anchor geometry.
//
// A site contributes only against partners of the opposite polarity
// within the force field's hydrogen-bond cutoff; an angle with no
// in-range pair scores zero. Elects one angle under the configured
// policy and commits the site coordinates once. Returns the elected
// energy.
func (o *Optimizer) OptimizeOrientationPairwise(w *water.Water, partners []HBPartner, ff *forcefield.ForceField) (float64, error) {
	if !w.Built() {
		return 0, ErrNotBuilt
	}

	oxy := w.Oxygen()
	p1, p2 := w.Anchor.Pos, oxy
	base := w.SitePositions()

	step := o.rotationStepRad()
	samples := int(360 / o.opts.RotationStep)

	energies := make([]float64, samples)
	poses := make([][]geom.Vec3, samples)
	for k := 0; k < samples; k++ {
		theta := float64(k) * step
		pose := make([]geom.Vec3, len(base))
		for i, p := range base {
			pose[i] = geom.RotateAboutAxis(p, p1, p2, theta)
		}

		e, err := pairwiseHBEnergy(w, pose, oxy, partners, ff)
		if err != nil {
			return 0, err
		}

		energies[k] = e
		poses[k] = pose
	}

	i, err := policy.Select(energies, o.opts.Policy, o.opts.Temperature, o.rng)
	if err != nil {
		return 0, err
	}
	w.SetSitePositions(poses[i])

	return energies[i], nil
}

// pairwiseHBEnergy scores one candidate pose: each hydrogen/lone-pair
// site against each opposite-polarity partner, combining the 12-10
// radial term (zero beyond the field's hydrogen-bond cutoff) with the
// directional angle factor. The site's bond vector is the
// oxygen-to-site direction extended past the site, matching how the
// explicit geometry encodes donor and acceptor directions.
func pairwiseHBEnergy(w *water.Water, pose []geom.Vec3, oxy geom.Vec3, partners []HBPartner, ff *forcefield.ForceField) (float64, error) {
	var sum float64

	for i, a := range w.SiteAtoms() {
		site := pose[i]
		siteVec := site.Add(site.Sub(oxy).Unit())

		want := water.Donor // lone-pair site accepts, so it needs a donor
		if a.Type == water.TypeHydrogen {
			want = water.Acceptor
		}
		for _, p := range partners {
			if p.Kind != want {
				continue
			}

			pc, err := ff.Pair(a.Type, p.Type)
			if err != nil {
				return 0, err
			}
			if !pc.Active || pc.C == 0 {
				continue
			}

			rad := ff.HydrogenBondDistance(site.Dist(p.Pos), pc.RijHB, pc.C, pc.D)
			ang := forcefield.HydrogenBondAngleFactor(site, p.Pos, siteVec, p.Dir)
			sum += rad * ang
		}
	}

	return sum, nil
}
