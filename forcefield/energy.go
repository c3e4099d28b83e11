package forcefield

import (
	"math"

	"github.com/katalvlaran/hydra/geom"
)

// Physical constants of the scoring function (kcal/mol units).
const (
	// smoothHalfWidth is the half-width of the distance smoothing window
	// around each equilibrium separation.
	smoothHalfWidth = 0.25

	// desolvationK couples charge magnitude into the desolvation term.
	desolvationK = 0.01097

	// desolvationSigma is the Gaussian damping width (Å).
	desolvationSigma = 3.6

	// Mehler–Solmajer sigmoidal dielectric constants.
	dielectricEpsilon = 78.4
	dielectricA       = -8.5525
	dielectricB       = dielectricEpsilon - dielectricA
	dielectricLambda  = 0.003627
	dielectricK       = 7.7839

	// elecScale converts q·q/(r·ε) into kcal/mol.
	elecScale = 332.06363
)

// SmoothDistance maps r onto the smoothed distance used by the 1/rⁿ
// forms: values strictly inside [reqm−0.25, reqm+0.25] collapse to reqm,
// values outside the window shift inward by the half-width. Idempotent
// for already-smoothed inputs outside the window.
func SmoothDistance(r, reqm float64) float64 {
	switch {
	case r > reqm-smoothHalfWidth && r < reqm+smoothHalfWidth:
		return reqm
	case r >= reqm+smoothHalfWidth:
		return r - smoothHalfWidth
	default:
		return r + smoothHalfWidth
	}
}

// VanDerWaals evaluates the smoothed 12-6 potential A/r¹² − B/r⁶.
func VanDerWaals(r, reqm, a, b float64) float64 {
	r = SmoothDistance(r, reqm)
	r2 := r * r
	r6 := r2 * r2 * r2

	return a/(r6*r6) - b/r6
}

// HydrogenBondDistance evaluates the smoothed 12-10 potential
// C/r¹² − D/r¹⁰, zero beyond the field's hydrogen-bond cutoff.
func (ff *ForceField) HydrogenBondDistance(r, reqm, c, d float64) float64 {
	if r > ff.hbCutoff {
		return 0
	}
	r = SmoothDistance(r, reqm)
	r2 := r * r
	r10 := r2 * r2 * r2 * r2 * r2

	return c/(r10*r2) - d/r10
}

// HydrogenBondAngleFactor returns the directional penalty in [0, 1] for a
// donor–acceptor contact: the product of cos(beta) over both ends, where
// beta is the deviation of each hydrogen-bond vector from linearity.
// Exactly 0 once either angle reaches π/2 (hard directional cutoff), and
// monotonically decreasing in each angle below it.
//
// posI/posJ are the interacting atom positions; vecI/vecJ the respective
// hydrogen-bond reference points (hydrogen or lone-pair positions).
func HydrogenBondAngleFactor(posI, posJ, vecI, vecJ geom.Vec3) float64 {
	beta1 := geom.Angle(posI, posJ, vecJ)
	beta2 := geom.Angle(posJ, posI, vecI)
	if beta1 >= math.Pi/2 || beta2 >= math.Pi/2 {
		return 0
	}

	return math.Cos(beta1) * math.Cos(beta2)
}

// DistanceDependentDielectric evaluates the Mehler–Solmajer sigmoidal
// dielectric ε(r).
func DistanceDependentDielectric(r float64) float64 {
	return dielectricA + dielectricB/(1+dielectricK*math.Exp(-dielectricLambda*dielectricB*r))
}

// Electrostatic evaluates the screened Coulomb term between charges qi
// and qj at distance r; zero beyond the field's electrostatic cutoff.
func (ff *ForceField) Electrostatic(r, qi, qj float64) float64 {
	if r > ff.elecCutoff {
		return 0
	}

	return elecScale * qi * qj / (r * DistanceDependentDielectric(r))
}

// Desolvation evaluates the Gaussian-damped solvent-exclusion term for a
// pair with solvation parameters solI/solJ and fragment volumes volI/volJ.
// No hard cutoff: the Gaussian falloff dominates at long range.
func Desolvation(r, qi, qj, solI, solJ, volI, volJ float64) float64 {
	desolv := solI*volJ + solJ*volI
	desolv += desolvationK * (math.Abs(qi)*volJ + math.Abs(qj)*volI)

	return desolv * math.Exp(-0.5*r*r/(desolvationSigma*desolvationSigma))
}

// PairwiseEnergy evaluates every enabled term for a single atom pair at
// distance r and returns the weighted per-term breakdown. Deactivated
// pairs and zero-weight terms contribute exactly 0; zero-weight terms are
// skipped, not multiplied out, since this sits on the all-pairs hot path.
func (ff *ForceField) PairwiseEnergy(atomI, atomJ Atom, r float64) (EnergyTerms, error) {
	pc, err := ff.Pair(atomI.Type, atomJ.Type)
	if err != nil {
		return EnergyTerms{}, err
	}
	if !pc.Active {
		return EnergyTerms{}, nil
	}

	var out EnergyTerms

	if ff.Weights.VdW > 0 {
		out.VdW = ff.Weights.VdW * VanDerWaals(r, pc.RijVdW, pc.A, pc.B)
	}
	if ff.Weights.HBond > 0 && pc.RijHB > 0 {
		hb := ff.HydrogenBondDistance(r, pc.RijHB, pc.C, pc.D)
		if len(atomI.HBVectors) > 0 && len(atomJ.HBVectors) > 0 {
			hb *= sumAngleFactors(atomI, atomJ)
		}
		out.HBond = ff.Weights.HBond * hb
	}
	if ff.Weights.Estat > 0 {
		out.Estat = ff.Weights.Estat * ff.Electrostatic(r, atomI.Charge, atomJ.Charge)
	}
	if ff.Weights.Desolv > 0 {
		parI, lookupErr := ff.AtomParams(atomI.Type)
		if lookupErr != nil {
			return EnergyTerms{}, lookupErr
		}
		parJ, lookupErr := ff.AtomParams(atomJ.Type)
		if lookupErr != nil {
			return EnergyTerms{}, lookupErr
		}
		out.Desolv = ff.Weights.Desolv * Desolvation(r, atomI.Charge, atomJ.Charge,
			parI.Solpar, parJ.Solpar, parI.Vol, parJ.Vol)
	}

	return out, nil
}

// sumAngleFactors accumulates the directional factor over every pairing
// of hydrogen-bond vectors on the two atoms.
func sumAngleFactors(atomI, atomJ Atom) float64 {
	var sum float64
	for _, vi := range atomI.HBVectors {
		for _, vj := range atomJ.HBVectors {
			sum += HydrogenBondAngleFactor(atomI.Pos, atomJ.Pos, vi, vj)
		}
	}

	return sum
}

// IntermolecularEnergy scores every atom of molecule i against every atom
// of molecule j and returns the weighted per-term totals. Zero-weight
// terms are skipped entirely; deactivated pairs contribute nothing.
//
// Complexity: O(|i|·|j|) pair evaluations.
func (ff *ForceField) IntermolecularEnergy(atomsI, atomsJ []Atom) (EnergyTerms, error) {
	var out EnergyTerms

	for ii := range atomsI {
		for jj := range atomsJ {
			r := atomsI[ii].Pos.Dist(atomsJ[jj].Pos)
			terms, err := ff.PairwiseEnergy(atomsI[ii], atomsJ[jj], r)
			if err != nil {
				return EnergyTerms{}, err
			}
			out.VdW += terms.VdW
			out.HBond += terms.HBond
			out.Estat += terms.Estat
			out.Desolv += terms.Desolv
		}
	}

	return out, nil
}
