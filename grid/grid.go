package grid

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/hydra/geom"
)

// Sentinel errors for grid operations.
var (
	// ErrBadShape indicates non-positive dimensions or spacing.
	ErrBadShape = errors.New("grid: dimensions and spacing must be positive")
	// ErrUnknownMap indicates a query for an atom type the grid does not carry.
	ErrUnknownMap = errors.New("grid: no map for atom type")
	// ErrShapeMismatch indicates combine operands with incompatible lattices.
	ErrShapeMismatch = errors.New("grid: lattice spacing mismatch")
	// ErrBadCombineOp indicates an unrecognized combine operation.
	ErrBadCombineOp = errors.New("grid: unknown combine op")
)

// Names of the charge-weighted companion maps that accompany the
// per-atom-type affinity maps.
const (
	// MapElectrostatics is scaled by each atom's partial charge.
	MapElectrostatics = "Electrostatics"
	// MapDesolvation is scaled by each atom's absolute partial charge.
	MapDesolvation = "Desolvation"
)

// CombineOp selects how Combine folds another grid into this one.
type CombineOp int

const (
	// Add sums overlapping node values.
	Add CombineOp = iota
	// Replace overwrites overlapping node values.
	Replace
)

// Grid is a regular 3-D lattice of energy values per atom type.
// Origin is the position of node (0,0,0); Spacing the uniform node pitch;
// N the node counts per axis. Values are stored flattened in x-major
// order: index = (ix·N[1] + iy)·N[2] + iz.
type Grid struct {
	Origin  geom.Vec3
	Spacing float64
	N       [3]int

	maps map[string][]float64
}

// New allocates an empty grid for the given lattice. Maps are added with
// SetMap. Returns ErrBadShape for non-positive dimensions or spacing.
func New(origin geom.Vec3, spacing float64, n [3]int) (*Grid, error) {
	if spacing <= 0 || n[0] <= 0 || n[1] <= 0 || n[2] <= 0 {
		return nil, ErrBadShape
	}

	return &Grid{
		Origin:  origin,
		Spacing: spacing,
		N:       n,
		maps:    make(map[string][]float64),
	}, nil
}

// SetMap installs (or overwrites) the node values for one atom type.
// The slice is copied; len(values) must equal N[0]·N[1]·N[2].
func (g *Grid) SetMap(atomType string, values []float64) error {
	if len(values) != g.N[0]*g.N[1]*g.N[2] {
		return fmt.Errorf("%w: got %d values, lattice holds %d",
			ErrBadShape, len(values), g.N[0]*g.N[1]*g.N[2])
	}
	m := make([]float64, len(values))
	copy(m, values)
	g.maps[atomType] = m

	return nil
}

// HasMap reports whether a map for atomType is loaded.
func (g *Grid) HasMap(atomType string) bool {
	_, ok := g.maps[atomType]

	return ok
}

// Types returns the atom types carried by this grid (unordered).
func (g *Grid) Types() []string {
	out := make([]string, 0, len(g.maps))
	for t := range g.maps {
		out = append(out, t)
	}

	return out
}

// index flattens lattice coordinates; callers guarantee bounds.
func (g *Grid) index(ix, iy, iz int) int {
	return (ix*g.N[1]+iy)*g.N[2] + iz
}

// IsInBounds reports whether p lies inside the lattice volume.
func (g *Grid) IsInBounds(p geom.Vec3) bool {
	for ax := 0; ax < 3; ax++ {
		if p[ax] < g.Origin[ax] || p[ax] > g.Origin[ax]+float64(g.N[ax]-1)*g.Spacing {
			return false
		}
	}

	return true
}

// IsNearEdge reports whether p lies within margin (Å) of any lattice
// face. Out-of-bounds points count as near the edge.
func (g *Grid) IsNearEdge(p geom.Vec3, margin float64) bool {
	for ax := 0; ax < 3; ax++ {
		lo := g.Origin[ax]
		hi := g.Origin[ax] + float64(g.N[ax]-1)*g.Spacing
		if p[ax] < lo+margin || p[ax] > hi-margin {
			return true
		}
	}

	return false
}

// EnergyAt returns the trilinearly interpolated energy for atomType at p.
// Out-of-bounds points yield +Inf (worst possible score, not an error);
// an unloaded atom type yields ErrUnknownMap.
func (g *Grid) EnergyAt(p geom.Vec3, atomType string) (float64, error) {
	m, ok := g.maps[atomType]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMap, atomType)
	}
	if !g.IsInBounds(p) {
		return math.Inf(1), nil
	}

	// Cell-local fractional coordinates.
	var (
		idx  [3]int
		frac [3]float64
	)
	for ax := 0; ax < 3; ax++ {
		t := (p[ax] - g.Origin[ax]) / g.Spacing
		idx[ax] = int(t)
		if idx[ax] >= g.N[ax]-1 {
			// Clamp so points on the far face read the last cell.
			idx[ax] = g.N[ax] - 2
			if idx[ax] < 0 {
				idx[ax] = 0
			}
		}
		frac[ax] = t - float64(idx[ax])
		if g.N[ax] == 1 {
			frac[ax] = 0
		}
	}

	corner := func(dx, dy, dz int) float64 {
		ix, iy, iz := idx[0]+dx, idx[1]+dy, idx[2]+dz
		if ix >= g.N[0] {
			ix = g.N[0] - 1
		}
		if iy >= g.N[1] {
			iy = g.N[1] - 1
		}
		if iz >= g.N[2] {
			iz = g.N[2] - 1
		}

		return m[g.index(ix, iy, iz)]
	}

	var e float64
	for dx := 0; dx <= 1; dx++ {
		wx := 1 - frac[0]
		if dx == 1 {
			wx = frac[0]
		}
		for dy := 0; dy <= 1; dy++ {
			wy := 1 - frac[1]
			if dy == 1 {
				wy = frac[1]
			}
			for dz := 0; dz <= 1; dz++ {
				wz := 1 - frac[2]
				if dz == 1 {
					wz = frac[2]
				}
				e += wx * wy * wz * corner(dx, dy, dz)
			}
		}
	}

	return e, nil
}

// EnergyAtNode returns the exact stored value at the lattice node nearest
// to p (no interpolation). Same error/∞ contract as EnergyAt.
func (g *Grid) EnergyAtNode(p geom.Vec3, atomType string) (float64, error) {
	m, ok := g.maps[atomType]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMap, atomType)
	}
	if !g.IsInBounds(p) {
		return math.Inf(1), nil
	}
	ix, iy, iz := g.nodeIndex(p)

	return m[g.index(ix, iy, iz)], nil
}

// nodeIndex returns the nearest in-bounds node indices for p.
func (g *Grid) nodeIndex(p geom.Vec3) (int, int, int) {
	var idx [3]int
	for ax := 0; ax < 3; ax++ {
		i := int(math.Round((p[ax] - g.Origin[ax]) / g.Spacing))
		if i < 0 {
			i = 0
		}
		if i >= g.N[ax] {
			i = g.N[ax] - 1
		}
		idx[ax] = i
	}

	return idx[0], idx[1], idx[2]
}

// ClosestNode snaps p to the position of the nearest lattice node.
// Used as the center for local sub-grid recomputation, so the recomputed
// box aligns with the parent lattice and no interpolation is needed.
func (g *Grid) ClosestNode(p geom.Vec3) geom.Vec3 {
	ix, iy, iz := g.nodeIndex(p)

	return g.NodePos(ix, iy, iz)
}

// NodePos returns the Cartesian position of node (ix, iy, iz).
func (g *Grid) NodePos(ix, iy, iz int) geom.Vec3 {
	return geom.Vec3{
		g.Origin[0] + float64(ix)*g.Spacing,
		g.Origin[1] + float64(iy)*g.Spacing,
		g.Origin[2] + float64(iz)*g.Spacing,
	}
}

// NeighborPoints enumerates lattice nodes whose distance d from center
// satisfies minRadius ≤ d ≤ maxRadius. Nodes are emitted in lattice
// order, giving a deterministic candidate sequence.
//
// Complexity: O(k³) where k = 2·maxRadius/Spacing + 1.
func (g *Grid) NeighborPoints(center geom.Vec3, minRadius, maxRadius float64) []geom.Vec3 {
	var out []geom.Vec3

	// Bounding sub-box of the outer sphere, clamped to the lattice.
	var lo, hi [3]int
	for ax := 0; ax < 3; ax++ {
		lo[ax] = int(math.Ceil((center[ax] - maxRadius - g.Origin[ax]) / g.Spacing))
		hi[ax] = int(math.Floor((center[ax] + maxRadius - g.Origin[ax]) / g.Spacing))
		if lo[ax] < 0 {
			lo[ax] = 0
		}
		if hi[ax] > g.N[ax]-1 {
			hi[ax] = g.N[ax] - 1
		}
	}

	for ix := lo[0]; ix <= hi[0]; ix++ {
		for iy := lo[1]; iy <= hi[1]; iy++ {
			for iz := lo[2]; iz <= hi[2]; iz++ {
				p := g.NodePos(ix, iy, iz)
				d := p.Dist(center)
				if d >= minRadius && d <= maxRadius {
					out = append(out, p)
				}
			}
		}
	}

	return out
}

// Apply rewrites every node of atomType's map through f. Used to scale a
// freshly generated map by a partial charge before folding it in.
func (g *Grid) Apply(atomType string, f func(float64) float64) error {
	m, ok := g.maps[atomType]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMap, atomType)
	}
	for i := range m {
		m[i] = f(m[i])
	}

	return nil
}

// Combine folds other's map for atomType into this grid's map for the
// same type over the overlapping lattice region. Lattices must share
// spacing and be node-aligned; Add sums, Replace overwrites.
//
// When the two lattices coincide exactly and op is Add, the whole-map
// fast path delegates to floats.Add.
func (g *Grid) Combine(atomType string, other *Grid, op CombineOp) error {
	if op != Add && op != Replace {
		return ErrBadCombineOp
	}
	dst, ok := g.maps[atomType]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownMap, atomType)
	}
	src, ok := other.maps[atomType]
	if !ok {
		return fmt.Errorf("%w: %q (operand)", ErrUnknownMap, atomType)
	}
	if math.Abs(g.Spacing-other.Spacing) > 1e-9 {
		return ErrShapeMismatch
	}

	// Node offset of other's origin inside this lattice.
	var off [3]int
	for ax := 0; ax < 3; ax++ {
		t := (other.Origin[ax] - g.Origin[ax]) / g.Spacing
		off[ax] = int(math.Round(t))
		if math.Abs(t-float64(off[ax])) > 1e-6 {
			return ErrShapeMismatch
		}
	}

	if off == [3]int{} && g.N == other.N && op == Add {
		floats.Add(dst, src)

		return nil
	}

	for ix := 0; ix < other.N[0]; ix++ {
		gx := ix + off[0]
		if gx < 0 || gx >= g.N[0] {
			continue
		}
		for iy := 0; iy < other.N[1]; iy++ {
			gy := iy + off[1]
			if gy < 0 || gy >= g.N[1] {
				continue
			}
			for iz := 0; iz < other.N[2]; iz++ {
				gz := iz + off[2]
				if gz < 0 || gz >= g.N[2] {
					continue
				}
				v := src[other.index(ix, iy, iz)]
				if op == Add {
					dst[g.index(gx, gy, gz)] += v
				} else {
					dst[g.index(gx, gy, gz)] = v
				}
			}
		}
	}

	return nil
}
