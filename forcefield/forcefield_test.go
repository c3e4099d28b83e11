// Package forcefield_test verifies the loaded parameter table, the
// pairwise coefficient invariants, and the analytic behavior of each
// energy term through the public API.
package forcefield_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hydra/forcefield"
	"github.com/katalvlaran/hydra/geom"
)

// sampleTable carries one donor (HD), two acceptors (OA, NA), one inert
// carbon, and the AD4 free-energy coefficients. Unknown record kinds and
// blank lines must be ignored by the parser.
const sampleTable = `
# AutoDock-style parameter table (abridged)
FE_coeff_vdW    0.1662
FE_coeff_hbond  0.1209
FE_coeff_estat  0.1406
FE_coeff_desolv 0.1322
FE_coeff_tors   0.2983

atom_par C   4.00 0.150 33.5103 -0.00143 0.0 0.0 0 0 -1 -1
atom_par HD  2.00 0.020  0.0000  0.00051 0.0 0.0 2 0 -1 -1
atom_par OA  3.20 0.200 17.1573 -0.00251 1.9 5.0 5 0 -1 -1
atom_par NA  3.50 0.160 22.4493 -0.00162 1.9 5.0 4 0 -1 -1
atom_par Ow  3.20 0.200 17.1573 -0.00251 1.9 5.0 5 0 -1 -1
`

func load(t *testing.T, opts ...forcefield.Option) *forcefield.ForceField {
	t.Helper()
	ff, err := forcefield.New(strings.NewReader(sampleTable), opts...)
	require.NoError(t, err)

	return ff
}

func TestNew_LoadsWeightsAndTypes(t *testing.T) {
	ff := load(t)

	assert.InDelta(t, 0.1662, ff.Weights.VdW, 1e-12)
	assert.InDelta(t, 0.1209, ff.Weights.HBond, 1e-12)
	assert.InDelta(t, 0.1406, ff.Weights.Estat, 1e-12)
	assert.InDelta(t, 0.1322, ff.Weights.Desolv, 1e-12)
	assert.Len(t, ff.Types(), 5)
}

func TestNew_Malformed(t *testing.T) {
	cases := []struct {
		name  string
		table string
		err   error
	}{
		{"TruncatedAtomPar", "atom_par OA 3.20 0.200", forcefield.ErrMalformedRecord},
		{"NonNumeric", "atom_par OA x 0.2 17.1 -0.002 1.9 5.0 5", forcefield.ErrMalformedRecord},
		{"BadHBClass", "atom_par OA 3.2 0.2 17.1 -0.002 1.9 5.0 9", forcefield.ErrMalformedRecord},
		{"BareWeight", "FE_coeff_vdW", forcefield.ErrMalformedRecord},
		{"MissingWeights", "atom_par OA 3.2 0.2 17.1 -0.002 1.9 5.0 5", forcefield.ErrMissingWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := forcefield.New(strings.NewReader(tc.table))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestPairwise_VdWSymmetry: the vdW block of the table must be symmetric
// under type swap for every ordered pair.
func TestPairwise_VdWSymmetry(t *testing.T) {
	ff := load(t)
	types := ff.Types()

	for _, ti := range types {
		for _, tj := range types {
			ij, err := ff.Pair(ti, tj)
			require.NoError(t, err)
			ji, err := ff.Pair(tj, ti)
			require.NoError(t, err)

			assert.Equal(t, ij.RijVdW, ji.RijVdW, "rij %s-%s", ti, tj)
			assert.Equal(t, ij.EpsVdW, ji.EpsVdW, "eps %s-%s", ti, tj)
			assert.Equal(t, ij.A, ji.A, "A %s-%s", ti, tj)
			assert.Equal(t, ij.B, ji.B, "B %s-%s", ti, tj)
		}
	}
}

// TestPairwise_HBondPolarity: hydrogen-bond coefficients exist exactly
// when one side is donor-class and the other acceptor-class, and the
// donor side adopts the acceptor's parameters.
func TestPairwise_HBondPolarity(t *testing.T) {
	ff := load(t)

	donorAcceptor, err := ff.Pair("HD", "OA")
	require.NoError(t, err)
	assert.Equal(t, 1.9, donorAcceptor.RijHB)
	assert.Equal(t, 5.0, donorAcceptor.EpsHB)
	assert.Positive(t, donorAcceptor.C)
	assert.Positive(t, donorAcceptor.D)

	mirror, err := ff.Pair("OA", "HD")
	require.NoError(t, err)
	assert.Equal(t, donorAcceptor.C, mirror.C)
	assert.Equal(t, donorAcceptor.D, mirror.D)

	for _, pair := range [][2]string{{"OA", "NA"}, {"HD", "HD"}, {"C", "OA"}, {"C", "HD"}} {
		pc, pairErr := ff.Pair(pair[0], pair[1])
		require.NoError(t, pairErr)
		assert.Zero(t, pc.RijHB, "pair %v", pair)
		assert.Zero(t, pc.C, "pair %v", pair)
		assert.Zero(t, pc.D, "pair %v", pair)
	}
}

// TestSmoothDistance: inside the ±0.25 window every input collapses to
// the equilibrium value; outside, the shift is idempotent under re-query
// of the underlying piecewise form.
func TestSmoothDistance(t *testing.T) {
	const reqm = 3.2

	for _, r := range []float64{reqm - 0.249, reqm - 0.1, reqm, reqm + 0.1, reqm + 0.249} {
		assert.Equal(t, reqm, forcefield.SmoothDistance(r, reqm), "r=%v", r)
	}

	assert.InDelta(t, 3.75, forcefield.SmoothDistance(4.0, reqm), 1e-12)
	assert.InDelta(t, 2.25, forcefield.SmoothDistance(2.0, reqm), 1e-12)

	// Window boundary belongs to the shifted branches, landing on reqm.
	assert.Equal(t, reqm, forcefield.SmoothDistance(reqm+0.25, reqm))
	assert.Equal(t, reqm, forcefield.SmoothDistance(reqm-0.25, reqm))
}

// TestVanDerWaals_MinimumAtEquilibrium: the smoothed 12-6 form has its
// minimum −eps across the whole window around reqm.
func TestVanDerWaals_MinimumAtEquilibrium(t *testing.T) {
	ff := load(t)
	pc, err := ff.Pair("OA", "OA")
	require.NoError(t, err)

	atMin := forcefield.VanDerWaals(pc.RijVdW, pc.RijVdW, pc.A, pc.B)
	assert.InDelta(t, -pc.EpsVdW, atMin, 1e-9)

	// Off-equilibrium values lie strictly above the well depth.
	assert.Greater(t, forcefield.VanDerWaals(pc.RijVdW-0.5, pc.RijVdW, pc.A, pc.B), atMin)
	assert.Greater(t, forcefield.VanDerWaals(pc.RijVdW+1.0, pc.RijVdW, pc.A, pc.B), atMin)
}

// TestHydrogenBondAngleFactor: exactly 0 at and beyond 90° on either
// side, monotonically decreasing in each angle below it.
func TestHydrogenBondAngleFactor(t *testing.T) {
	// Two atoms 3 Å apart on x; vectors placed to realize target angles.
	posI := geom.Vec3{0, 0, 0}
	posJ := geom.Vec3{3, 0, 0}

	// vecJ at angle beta from the j→i direction, in the xy plane.
	vecAt := func(center geom.Vec3, toward geom.Vec3, beta float64) geom.Vec3 {
		axis := center.Add(geom.Vec3{0, 0, 1})
		return geom.RotateAboutAxis(toward, center, axis, beta)
	}

	linear := forcefield.HydrogenBondAngleFactor(posI, posJ, vecAt(posI, posJ, 0), vecAt(posJ, posI, 0))
	assert.InDelta(t, 1.0, linear, 1e-9)

	prev := linear
	for _, beta := range []float64{0.3, 0.8, 1.2, 1.5} {
		f := forcefield.HydrogenBondAngleFactor(posI, posJ, vecAt(posI, posJ, 0), vecAt(posJ, posI, beta))
		assert.Less(t, f, prev, "beta=%v", beta)
		assert.Positive(t, f)
		prev = f
	}

	atCutoff := forcefield.HydrogenBondAngleFactor(posI, posJ, vecAt(posI, posJ, 0), vecAt(posJ, posI, math.Pi/2))
	assert.Zero(t, atCutoff)
	beyond := forcefield.HydrogenBondAngleFactor(posI, posJ, vecAt(posI, posJ, 2.0), vecAt(posJ, posI, 0))
	assert.Zero(t, beyond)
}

// TestElectrostatic_CutoffAndSign: screened Coulomb respects charge sign
// and vanishes beyond the cutoff.
func TestElectrostatic_CutoffAndSign(t *testing.T) {
	ff := load(t)

	attract := ff.Electrostatic(3.0, -0.5, 0.5)
	assert.Negative(t, attract)
	repel := ff.Electrostatic(3.0, 0.5, 0.5)
	assert.Positive(t, repel)
	assert.Zero(t, ff.Electrostatic(20.01, -0.5, 0.5))

	// ε(r) grows toward the bulk value with distance.
	assert.Less(t, forcefield.DistanceDependentDielectric(2),
		forcefield.DistanceDependentDielectric(15))
}

// TestDesolvation_GaussianFalloff: no hard cutoff, but the Gaussian
// damping drives the term toward 0 at long range.
func TestDesolvation_GaussianFalloff(t *testing.T) {
	near := forcefield.Desolvation(1, 0.4, -0.4, 0.001, 0.001, 17, 17)
	far := forcefield.Desolvation(15, 0.4, -0.4, 0.001, 0.001, 17, 17)

	assert.Greater(t, math.Abs(near), math.Abs(far))
	assert.InDelta(t, 0, far, 1e-4)
}

// TestPairwiseEnergy_ZeroWeightShortCircuit: a zero weight must make the
// term contribute exactly 0 regardless of geometry.
func TestPairwiseEnergy_ZeroWeightShortCircuit(t *testing.T) {
	weightless := `
FE_coeff_vdW    0.1662
FE_coeff_hbond  0.0
FE_coeff_estat  0.0
FE_coeff_desolv 0.0
atom_par HD  2.00 0.020  0.0000  0.00051 0.0 0.0 2 0 -1 -1
atom_par OA  3.20 0.200 17.1573 -0.00251 1.9 5.0 5 0 -1 -1
`
	ff, err := forcefield.New(strings.NewReader(weightless))
	require.NoError(t, err)

	atomI := forcefield.Atom{Pos: geom.Vec3{0, 0, 0}, Type: "HD", Charge: 0.3}
	atomJ := forcefield.Atom{Pos: geom.Vec3{1.9, 0, 0}, Type: "OA", Charge: -0.4}

	terms, err := ff.PairwiseEnergy(atomI, atomJ, 1.9)
	require.NoError(t, err)
	assert.Zero(t, terms.HBond)
	assert.Zero(t, terms.Estat)
	assert.Zero(t, terms.Desolv)
	assert.NotZero(t, terms.VdW)
}

// TestDeactivatePair: both symmetric entries go inactive, every term hits
// exactly 0, and reactivation restores the precomputed values.
func TestDeactivatePair(t *testing.T) {
	ff := load(t)

	atomI := forcefield.Atom{Pos: geom.Vec3{0, 0, 0}, Type: "HD", Charge: 0.3}
	atomJ := forcefield.Atom{Pos: geom.Vec3{1.9, 0, 0}, Type: "OA", Charge: -0.4}

	before, err := ff.PairwiseEnergy(atomI, atomJ, 1.9)
	require.NoError(t, err)
	require.NotZero(t, before.Total())

	require.NoError(t, ff.DeactivatePair("HD", "OA"))
	off, err := ff.PairwiseEnergy(atomI, atomJ, 1.9)
	require.NoError(t, err)
	assert.Equal(t, forcefield.EnergyTerms{}, off)
	mirrorOff, err := ff.PairwiseEnergy(atomJ, atomI, 1.9)
	require.NoError(t, err)
	assert.Equal(t, forcefield.EnergyTerms{}, mirrorOff)

	require.NoError(t, ff.ActivatePair("HD", "OA"))
	restored, err := ff.PairwiseEnergy(atomI, atomJ, 1.9)
	require.NoError(t, err)
	assert.Equal(t, before, restored)

	assert.ErrorIs(t, ff.DeactivatePair("HD", "Xx"), forcefield.ErrUnknownAtomType)
}

// TestIntermolecularEnergy_AccumulatesPairs: two-atom vs one-atom systems
// sum their pairwise contributions.
func TestIntermolecularEnergy_AccumulatesPairs(t *testing.T) {
	ff := load(t, forcefield.WithUnitWeights())

	atomsI := []forcefield.Atom{
		{Pos: geom.Vec3{0, 0, 0}, Type: "OA", Charge: -0.4},
		{Pos: geom.Vec3{0, 3, 0}, Type: "C", Charge: 0.1},
	}
	atomsJ := []forcefield.Atom{{Pos: geom.Vec3{3, 0, 0}, Type: "Ow", Charge: -0.4}}

	total, err := ff.IntermolecularEnergy(atomsI, atomsJ)
	require.NoError(t, err)

	first, err := ff.PairwiseEnergy(atomsI[0], atomsJ[0], atomsI[0].Pos.Dist(atomsJ[0].Pos))
	require.NoError(t, err)
	second, err := ff.PairwiseEnergy(atomsI[1], atomsJ[0], atomsI[1].Pos.Dist(atomsJ[0].Pos))
	require.NoError(t, err)

	assert.InDelta(t, first.Total()+second.Total(), total.Total(), 1e-12)
}
