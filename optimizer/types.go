package optimizer

import (
	"errors"

	"github.com/katalvlaran/hydra/geom"
	"github.com/katalvlaran/hydra/grid"
	"github.com/katalvlaran/hydra/shellkit"
	"github.com/katalvlaran/hydra/water"
)

// Sentinel errors returned by the optimizer package.
var (
	// ErrNilGrid indicates a nil *grid.Grid was passed to a search.
	ErrNilGrid = errors.New("optimizer: grid is nil")

	// ErrBadDistance indicates an invalid annulus window
	// (min ≤ 0, max ≤ min, or a donor reduction below zero).
	ErrBadDistance = errors.New("optimizer: invalid min/max distance window")

	// ErrBadRotationStep indicates a rotation step outside (0°, 360°).
	ErrBadRotationStep = errors.New("optimizer: rotation step must lie in (0, 360)")

	// ErrBadOrientationCount indicates a non-positive quaternion count.
	ErrBadOrientationCount = errors.New("optimizer: orientation sample count must be positive")

	// ErrNotBuilt indicates an orientation search on a water that has no
	// explicit sites yet (BuildExplicit was not called).
	ErrNotBuilt = errors.New("optimizer: water has no explicit sites")
)

// RotatableBond describes one disordered solute torsion i–j–k–l.
// AtomI..AtomL are solute atom indices (matched against Connection
// records); I..L their positions. The rotation axis runs k→j.
type RotatableBond struct {
	AtomI, AtomJ, AtomK, AtomL int
	I, J, K, L                 geom.Vec3
}

// Refresher recomputes a local sub-grid after a water is accepted. It is
// the single integration point with the external grid generator: given
// the accepted water and the lattice-aligned box center, it returns a
// freshly computed sub-grid carrying maps for every atom type the driver
// must fold back (typically Ow/Hw, plus Lp for TIP5P).
//
// A non-nil error rejects that one water; the shell continues.
type Refresher interface {
	Refresh(accepted *water.Water, center geom.Vec3, n [3]int, spacing float64) (*grid.Grid, error)
}

// HBPartner is one nearby hydrogen-bond partner for the anchor-pairwise
// orientation search: an atom position, the reference point its bond
// direction extends toward, its grid/force-field atom type, and which
// side of a hydrogen bond it provides.
type HBPartner struct {
	Pos  geom.Vec3
	Dir  geom.Vec3
	Type string
	Kind water.AnchorType
}

// Result is the outcome of one shell optimization pass.
type Result struct {
	// Accepted waters in commit order, with their energy records,
	// wrapped as the finalized shell.
	Shell *shellkit.Shell

	// Rejected holds the indices (into the input slice) of every water
	// dropped by ordering, the energy cutoffs, or a Refresher failure.
	Rejected []int

	// Connections is the input connection set filtered to surviving
	// waters and renumbered against the accepted order.
	Connections []water.Connection
}
