package forcefield

import (
	"errors"

	"github.com/katalvlaran/hydra/geom"
)

// Sentinel errors returned by the forcefield package.
var (
	// ErrMalformedRecord indicates an atom_par or FE_coeff line that does
	// not carry the required fields or holds non-numeric values.
	ErrMalformedRecord = errors.New("forcefield: malformed parameter record")

	// ErrMissingWeight indicates that the table defined no weight for one
	// of the four required energy terms.
	ErrMissingWeight = errors.New("forcefield: missing FE_coeff weight")

	// ErrUnknownAtomType indicates that an atom type absent from the
	// loaded table was referenced in a pair lookup or (de)activation.
	ErrUnknownAtomType = errors.New("forcefield: unknown atom type")
)

// HBondClass categorizes an atom type's hydrogen-bonding role.
// The numeric values match the hbond column of the parameter table.
type HBondClass int

const (
	// HBNone — the type neither donates nor accepts hydrogen bonds.
	HBNone HBondClass = iota

	// HBDonorSpherical — non-directional donor (e.g. hydroxyl hydrogen HS).
	HBDonorSpherical

	// HBDonor — directional donor hydrogen.
	HBDonor

	// HBAcceptorSpherical — non-directional acceptor (e.g. SA sulfur).
	HBAcceptorSpherical

	// HBAcceptorSingle — acceptor with one lone pair (e.g. NA nitrogen).
	HBAcceptorSingle

	// HBAcceptorDouble — acceptor with two lone pairs (e.g. OA oxygen).
	HBAcceptorDouble
)

// IsDonor reports whether the class donates hydrogen bonds.
func (c HBondClass) IsDonor() bool {
	return c == HBDonorSpherical || c == HBDonor
}

// IsAcceptor reports whether the class accepts hydrogen bonds.
func (c HBondClass) IsAcceptor() bool {
	return c == HBAcceptorSpherical || c == HBAcceptorSingle || c == HBAcceptorDouble
}

// AtomParams holds the per-atom-type physical constants from one
// atom_par record. Immutable once loaded.
type AtomParams struct {
	Type    string     // atom-type symbol (table key)
	Rii     float64    // vdW equilibrium self-distance (Å)
	Epsii   float64    // vdW well depth (kcal/mol)
	Vol     float64    // solvation volume (Å³)
	Solpar  float64    // atomic solvation parameter
	RijHB   float64    // hydrogen-bond equilibrium distance (Å)
	EpsijHB float64    // hydrogen-bond well depth (kcal/mol)
	HBond   HBondClass // donor/acceptor class
}

// Weights maps each energy term to its scalar multiplier. A zero weight
// disables the term entirely (computation is skipped, not multiplied out).
type Weights struct {
	VdW    float64
	HBond  float64
	Estat  float64
	Desolv float64
}

// PairCoeffs holds the precomputed interaction coefficients for one
// ordered atom-type pair. The 12-6 form uses A/r¹² − B/r⁶; the 12-10
// form uses C/r¹² − D/r¹⁰. Active gates the whole pair.
type PairCoeffs struct {
	RijVdW float64 // mixed vdW equilibrium distance
	EpsVdW float64 // mixed vdW well depth
	A, B   float64 // 12-6 coefficients
	RijHB  float64 // hydrogen-bond equilibrium distance (0 if no H-bond)
	EpsHB  float64 // hydrogen-bond well depth (0 if no H-bond)
	C, D   float64 // 12-10 coefficients
	Active bool
}

// Atom is the minimal atom view the force field scores: position, type,
// partial charge, and any hydrogen-bond direction vectors (positions of
// the bonded hydrogen / lone-pair reference points).
type Atom struct {
	Pos       geom.Vec3
	Type      string
	Charge    float64
	HBVectors []geom.Vec3
}

// EnergyTerms is the per-term breakdown of a pairwise or molecular
// evaluation, already weighted.
type EnergyTerms struct {
	VdW    float64
	HBond  float64
	Estat  float64
	Desolv float64
}

// Total returns the weighted sum of all terms.
func (e EnergyTerms) Total() float64 {
	return e.VdW + e.HBond + e.Estat + e.Desolv
}
