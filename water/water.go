package water

import (
	"errors"
	"math"

	"github.com/katalvlaran/hydra/geom"
)

// Sentinel errors for water construction.
var (
	// ErrUnknownModel indicates a Model value outside the known set.
	ErrUnknownModel = errors.New("water: unknown water model")
	// ErrNotSpherical indicates BuildExplicit on an already-built water.
	ErrNotSpherical = errors.New("water: explicit geometry already built")
)

// Model selects the explicit water geometry.
type Model int

const (
	// TIP3P — oxygen plus two hydrogens.
	TIP3P Model = iota
	// TIP5P — oxygen, two hydrogens, and two lone-pair sites.
	TIP5P
)

// AnchorType distinguishes which side of the hydrogen bond the solute
// anchor provides.
type AnchorType int

const (
	// Donor — the anchor donates a hydrogen toward the water oxygen.
	Donor AnchorType = iota
	// Acceptor — the anchor accepts a hydrogen from the water.
	Acceptor
)

// Anchor is a solute (or water) atom position plus the direction the
// hydrogen bond must point along.
type Anchor struct {
	Pos  geom.Vec3  // anchor heavy-atom (or hydrogen) position
	Dir  geom.Vec3  // reference point defining the bond direction
	Type AnchorType // donor or acceptor
}

// Atom is one site of a water molecule.
type Atom struct {
	Name   string // O, H1, H2, L1, L2
	Type   string // grid/force-field atom type (Ow, Hw, Lp)
	Charge float64
	Pos    geom.Vec3
}

// Rigid geometry constants (Å, degrees converted below).
const (
	bondOH      = 0.9572
	angleHOH    = 104.52 * math.Pi / 180
	bondOL      = 0.70
	angleLOL    = 109.47 * math.Pi / 180
	chargeHTip3 = 0.417
	chargeOTip3 = -0.834
	chargeHTip5 = 0.241
	chargeLTip5 = -0.241
	// TIP5P oxygen carries the net placement charge while spherical.
	chargeOTip5 = -0.482
)

// Atom type symbols shared with the energy grid.
const (
	TypeOxygen   = "Ow"
	TypeHydrogen = "Hw"
	TypeLonePair = "Lp"
)

// Water is one rigid water molecule instance. Atom 0 is always the
// oxygen; explicit sites follow once built.
type Water struct {
	Anchor Anchor
	Model  Model

	// Energy is the scalar score recorded once the optimizer accepts a
	// position/orientation for this water.
	Energy float64

	// Xray marks a crystallographic water given preference at activation.
	Xray bool

	atoms  []Atom
	active bool
	built  bool
}

// NewSpherical creates a bare oxygen-only candidate at pos bound to the
// given anchor. The model only determines the oxygen's placement charge
// and which sites BuildExplicit will add later.
func NewSpherical(pos geom.Vec3, anchor Anchor, model Model) (*Water, error) {
	var q float64
	switch model {
	case TIP3P:
		q = chargeOTip3
	case TIP5P:
		q = chargeOTip5
	default:
		return nil, ErrUnknownModel
	}

	return &Water{
		Anchor: anchor,
		Model:  model,
		atoms:  []Atom{{Name: "O", Type: TypeOxygen, Charge: q, Pos: pos}},
	}, nil
}

// Oxygen returns the oxygen position.
func (w *Water) Oxygen() geom.Vec3 { return w.atoms[0].Pos }

// Atoms returns the current sites. The slice is shared; callers must not
// retain it across mutations.
func (w *Water) Atoms() []Atom { return w.atoms }

// SiteAtoms returns the non-oxygen sites (empty before BuildExplicit).
func (w *Water) SiteAtoms() []Atom { return w.atoms[1:] }

// Built reports whether the explicit geometry exists.
func (w *Water) Built() bool { return w.built }

// Active reports the activation flag set by the shell activator.
func (w *Water) Active() bool { return w.active }

// SetActive writes the activation flag.
func (w *Water) SetActive(active bool) { w.active = active }

// Translate rigidly shifts every site (and nothing else) by d.
func (w *Water) Translate(d geom.Vec3) {
	for i := range w.atoms {
		w.atoms[i].Pos = w.atoms[i].Pos.Add(d)
	}
}

// MoveTo translates the water so the oxygen lands exactly on p.
func (w *Water) MoveTo(p geom.Vec3) {
	w.Translate(p.Sub(w.atoms[0].Pos))
}

// RotateAboutAxis rigidly rotates every site and both anchor reference
// points by theta radians about the axis a→b. Used when a disordered
// solute bond carries this water with it.
func (w *Water) RotateAboutAxis(a, b geom.Vec3, theta float64) {
	for i := range w.atoms {
		w.atoms[i].Pos = geom.RotateAboutAxis(w.atoms[i].Pos, a, b, theta)
	}
	w.Anchor.Pos = geom.RotateAboutAxis(w.Anchor.Pos, a, b, theta)
	w.Anchor.Dir = geom.RotateAboutAxis(w.Anchor.Dir, a, b, theta)
}

// RotateSitesByQuat rotates the non-oxygen sites about the oxygen by
// unit quaternion q, leaving the oxygen and anchor untouched. This is
// the orientation-search move.
func (w *Water) RotateSitesByQuat(q geom.Quat) {
	o := w.atoms[0].Pos
	for i := 1; i < len(w.atoms); i++ {
		w.atoms[i].Pos = geom.RotateByQuat(w.atoms[i].Pos.Sub(o), q).Add(o)
	}
}

// SetSitePositions overwrites the non-oxygen site positions; len(pos)
// must equal the current site count. Used to commit a sampled
// orientation captured from a copy.
func (w *Water) SetSitePositions(pos []geom.Vec3) {
	for i := range pos {
		w.atoms[1+i].Pos = pos[i]
	}
}

// SitePositions returns copies of the non-oxygen site positions.
func (w *Water) SitePositions() []geom.Vec3 {
	out := make([]geom.Vec3, len(w.atoms)-1)
	for i := 1; i < len(w.atoms); i++ {
		out[i-1] = w.atoms[i].Pos
	}

	return out
}

// BuildExplicit adds the hydrogen (and, for TIP5P, lone-pair) sites in a
// canonical frame centered on the oxygen: hydrogens in the xz plane
// bisected by +x, lone pairs in the xy plane bisected by −x. The
// orientation search is responsible for rotating the frame afterwards.
//
// Returns ErrNotSpherical when explicit sites already exist.
func (w *Water) BuildExplicit() error {
	if w.built {
		return ErrNotSpherical
	}

	o := w.atoms[0].Pos
	half := angleHOH / 2

	hq := chargeHTip3
	if w.Model == TIP5P {
		hq = chargeHTip5
	}

	w.atoms = append(w.atoms,
		Atom{Name: "H1", Type: TypeHydrogen, Charge: hq,
			Pos: o.Add(geom.Vec3{bondOH * math.Cos(half), 0, bondOH * math.Sin(half)})},
		Atom{Name: "H2", Type: TypeHydrogen, Charge: hq,
			Pos: o.Add(geom.Vec3{bondOH * math.Cos(half), 0, -bondOH * math.Sin(half)})},
	)

	if w.Model == TIP5P {
		lhalf := angleLOL / 2
		w.atoms = append(w.atoms,
			Atom{Name: "L1", Type: TypeLonePair, Charge: chargeLTip5,
				Pos: o.Add(geom.Vec3{-bondOL * math.Cos(lhalf), bondOL * math.Sin(lhalf), 0})},
			Atom{Name: "L2", Type: TypeLonePair, Charge: chargeLTip5,
				Pos: o.Add(geom.Vec3{-bondOL * math.Cos(lhalf), -bondOL * math.Sin(lhalf), 0})},
		)
	}
	w.built = true

	return nil
}

// Connection associates a solute atom (member of a rotatable group) with
// the index of a water whose placement depends on it.
type Connection struct {
	SoluteAtom int // solute atom index within the rotatable group
	WaterIndex int // index into the optimizer's working water slice
}
