package forcefield

import (
	"fmt"
	"math"
)

// coefficient computes a/|a−b| · eps · reqm^b, the shared closed form for
// the 12-6 and 12-10 pre-factors.
func coefficient(eps, reqm float64, a, b float64) float64 {
	return (a / math.Abs(a-b)) * eps * math.Pow(reqm, b)
}

// buildPairwiseTable precomputes coefficients for every ordered type pair.
//
// Invariants established here (relied on by scoring and tests):
//   - vdW coefficients are symmetric under (i, j) swap.
//   - Hydrogen-bond coefficients are nonzero only when exactly one side is
//     donor-class and the other acceptor-class; the donor side adopts the
//     acceptor's hydrogen-bond radius and well depth.
func (ff *ForceField) buildPairwiseTable() {
	for i, pi := range ff.atomPar {
		for j, pj := range ff.atomPar {
			var (
				rijVdW = (pi.Rii + pj.Rii) / 2
				epsVdW = math.Sqrt(pi.Epsii * pj.Epsii)

				rijHB, epsHB float64
			)

			switch {
			case pi.HBond.IsDonor() && pj.HBond.IsAcceptor():
				rijHB, epsHB = pj.RijHB, pj.EpsijHB
			case pi.HBond.IsAcceptor() && pj.HBond.IsDonor():
				rijHB, epsHB = pi.RijHB, pi.EpsijHB
			}

			ff.pairwise[[2]string{i, j}] = &PairCoeffs{
				RijVdW: rijVdW,
				EpsVdW: epsVdW,
				A:      coefficient(epsVdW, rijVdW, 6, 12),
				B:      coefficient(epsVdW, rijVdW, 12, 6),
				RijHB:  rijHB,
				EpsHB:  epsHB,
				C:      coefficient(epsHB, rijHB, 10, 12),
				D:      coefficient(epsHB, rijHB, 12, 10),
				Active: true,
			}
		}
	}
}

// Pair returns the precomputed coefficients for the ordered pair (i, j).
func (ff *ForceField) Pair(typeI, typeJ string) (*PairCoeffs, error) {
	pc, ok := ff.pairwise[[2]string{typeI, typeJ}]
	if !ok {
		return nil, fmt.Errorf("%w: pair %s-%s", ErrUnknownAtomType, typeI, typeJ)
	}

	return pc, nil
}

// DeactivatePair excludes the pair (and its mirror) from all scoring.
// Coefficients are retained so ActivatePair restores the exact values.
func (ff *ForceField) DeactivatePair(typeI, typeJ string) error {
	return ff.setPairActive(typeI, typeJ, false)
}

// ActivatePair re-enables a previously deactivated pair and its mirror.
func (ff *ForceField) ActivatePair(typeI, typeJ string) error {
	return ff.setPairActive(typeI, typeJ, true)
}

func (ff *ForceField) setPairActive(typeI, typeJ string, active bool) error {
	ij, ok := ff.pairwise[[2]string{typeI, typeJ}]
	if !ok {
		return fmt.Errorf("%w: pair %s-%s", ErrUnknownAtomType, typeI, typeJ)
	}
	ji, ok := ff.pairwise[[2]string{typeJ, typeI}]
	if !ok {
		return fmt.Errorf("%w: pair %s-%s", ErrUnknownAtomType, typeJ, typeI)
	}
	ij.Active = active
	ji.Active = active

	return nil
}
