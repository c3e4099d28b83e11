// Package grid_test checks lattice bookkeeping, interpolation, annulus
// enumeration, and the combine/replace contract.
package grid_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/hydra/geom"
	"github.com/katalvlaran/hydra/grid"
)

// uniform builds an n³ grid whose map for "Ow" is filled by fill(ix,iy,iz).
func uniform(t *testing.T, origin geom.Vec3, spacing float64, n int, fill func(ix, iy, iz int) float64) *grid.Grid {
	t.Helper()
	g, err := grid.New(origin, spacing, [3]int{n, n, n})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	values := make([]float64, n*n*n)
	i := 0
	for ix := 0; ix < n; ix++ {
		for iy := 0; iy < n; iy++ {
			for iz := 0; iz < n; iz++ {
				values[i] = fill(ix, iy, iz)
				i++
			}
		}
	}
	if err = g.SetMap("Ow", values); err != nil {
		t.Fatalf("SetMap: %v", err)
	}

	return g
}

func TestNew_BadShape(t *testing.T) {
	cases := []struct {
		name    string
		spacing float64
		n       [3]int
	}{
		{"ZeroSpacing", 0, [3]int{2, 2, 2}},
		{"NegativeAxis", 0.375, [3]int{2, -1, 2}},
		{"ZeroAxis", 0.375, [3]int{2, 2, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := grid.New(geom.Vec3{}, tc.spacing, tc.n); !errors.Is(err, grid.ErrBadShape) {
				t.Errorf("New error = %v; want ErrBadShape", err)
			}
		})
	}
}

// TestEnergyAt_NodeExact: interpolation at a node must reproduce the
// stored value exactly.
func TestEnergyAt_NodeExact(t *testing.T) {
	g := uniform(t, geom.Vec3{}, 0.5, 4, func(ix, iy, iz int) float64 {
		return float64(ix + 10*iy + 100*iz)
	})

	for _, node := range [][3]int{{0, 0, 0}, {1, 2, 3}, {3, 3, 3}} {
		p := g.NodePos(node[0], node[1], node[2])
		e, err := g.EnergyAt(p, "Ow")
		if err != nil {
			t.Fatalf("EnergyAt: %v", err)
		}
		want := float64(node[0] + 10*node[1] + 100*node[2])
		if math.Abs(e-want) > 1e-9 {
			t.Errorf("EnergyAt node %v = %v; want %v", node, e, want)
		}
	}
}

// TestEnergyAt_LinearField: on a linear field trilinear interpolation is
// exact everywhere in the volume.
func TestEnergyAt_LinearField(t *testing.T) {
	g := uniform(t, geom.Vec3{-1, -1, -1}, 0.5, 5, func(ix, iy, iz int) float64 {
		// E(x,y,z) = 2x + 3y − z with lattice coords mapped to space.
		x, y, z := -1+0.5*float64(ix), -1+0.5*float64(iy), -1+0.5*float64(iz)
		return 2*x + 3*y - z
	})

	p := geom.Vec3{-0.3, 0.42, 0.77}
	e, err := g.EnergyAt(p, "Ow")
	if err != nil {
		t.Fatalf("EnergyAt: %v", err)
	}
	want := 2*p[0] + 3*p[1] - p[2]
	if math.Abs(e-want) > 1e-9 {
		t.Errorf("EnergyAt = %v; want %v", e, want)
	}
}

func TestEnergyAt_OutOfBoundsIsInf(t *testing.T) {
	g := uniform(t, geom.Vec3{}, 0.5, 3, func(_, _, _ int) float64 { return 1 })

	e, err := g.EnergyAt(geom.Vec3{5, 0, 0}, "Ow")
	if err != nil {
		t.Fatalf("EnergyAt: %v", err)
	}
	if !math.IsInf(e, 1) {
		t.Errorf("EnergyAt out of bounds = %v; want +Inf", e)
	}

	if _, err = g.EnergyAt(geom.Vec3{}, "Xx"); !errors.Is(err, grid.ErrUnknownMap) {
		t.Errorf("unknown type error = %v; want ErrUnknownMap", err)
	}
}

func TestBoundsAndEdges(t *testing.T) {
	g := uniform(t, geom.Vec3{}, 1, 5, func(_, _, _ int) float64 { return 0 })

	if !g.IsInBounds(geom.Vec3{2, 2, 2}) {
		t.Error("center should be in bounds")
	}
	if g.IsInBounds(geom.Vec3{4.01, 2, 2}) {
		t.Error("outside face should be out of bounds")
	}
	if !g.IsNearEdge(geom.Vec3{0.5, 2, 2}, 1) {
		t.Error("point 0.5 from face should be near edge at margin 1")
	}
	if g.IsNearEdge(geom.Vec3{2, 2, 2}, 1) {
		t.Error("center should not be near edge at margin 1")
	}
}

// TestNeighborPoints_Annulus: every returned node respects both radii,
// and nodes just inside/outside the annulus are classified correctly.
func TestNeighborPoints_Annulus(t *testing.T) {
	g := uniform(t, geom.Vec3{-3, -3, -3}, 0.5, 13, func(_, _, _ int) float64 { return 0 })
	center := geom.Vec3{0, 0, 0}

	pts := g.NeighborPoints(center, 1.0, 2.0)
	if len(pts) == 0 {
		t.Fatal("annulus should not be empty")
	}
	for _, p := range pts {
		d := p.Dist(center)
		if d < 1.0-1e-12 || d > 2.0+1e-12 {
			t.Fatalf("node %v at distance %v outside [1, 2]", p, d)
		}
	}

	// The center node itself (d = 0) is excluded by the inner radius.
	for _, p := range pts {
		if p == center {
			t.Fatal("center node must be excluded")
		}
	}
}

func TestClosestNode_Snaps(t *testing.T) {
	g := uniform(t, geom.Vec3{}, 0.5, 5, func(_, _, _ int) float64 { return 0 })

	got := g.ClosestNode(geom.Vec3{0.74, 1.26, 0.49})
	want := geom.Vec3{0.5, 1.5, 0.5}
	if got.Dist(want) > 1e-12 {
		t.Errorf("ClosestNode = %v; want %v", got, want)
	}
}

// TestCombine_ReplaceSubRegion: a smaller aligned grid replaces exactly
// its overlapping nodes and leaves the rest untouched.
func TestCombine_ReplaceSubRegion(t *testing.T) {
	big := uniform(t, geom.Vec3{}, 1, 5, func(_, _, _ int) float64 { return 1 })

	small, err := grid.New(geom.Vec3{1, 1, 1}, 1, [3]int{2, 2, 2})
	if err != nil {
		t.Fatalf("New small: %v", err)
	}
	vals := make([]float64, 8)
	for i := range vals {
		vals[i] = 9
	}
	if err = small.SetMap("Ow", vals); err != nil {
		t.Fatalf("SetMap: %v", err)
	}

	if err = big.Combine("Ow", small, grid.Replace); err != nil {
		t.Fatalf("Combine: %v", err)
	}

	inside, _ := big.EnergyAtNode(geom.Vec3{1, 2, 2}, "Ow")
	if inside != 9 {
		t.Errorf("replaced node = %v; want 9", inside)
	}
	outside, _ := big.EnergyAtNode(geom.Vec3{4, 4, 4}, "Ow")
	if outside != 1 {
		t.Errorf("untouched node = %v; want 1", outside)
	}
}

// TestCombine_AddWholeLattice exercises the aligned fast path.
func TestCombine_AddWholeLattice(t *testing.T) {
	a := uniform(t, geom.Vec3{}, 1, 3, func(_, _, _ int) float64 { return 2 })
	b := uniform(t, geom.Vec3{}, 1, 3, func(_, _, _ int) float64 { return 0.5 })

	if err := a.Combine("Ow", b, grid.Add); err != nil {
		t.Fatalf("Combine: %v", err)
	}
	e, _ := a.EnergyAtNode(geom.Vec3{1, 1, 1}, "Ow")
	if e != 2.5 {
		t.Errorf("added node = %v; want 2.5", e)
	}
}

func TestCombine_Mismatch(t *testing.T) {
	a := uniform(t, geom.Vec3{}, 1, 3, func(_, _, _ int) float64 { return 0 })
	b := uniform(t, geom.Vec3{}, 0.7, 3, func(_, _, _ int) float64 { return 0 })

	if err := a.Combine("Ow", b, grid.Add); !errors.Is(err, grid.ErrShapeMismatch) {
		t.Errorf("spacing mismatch error = %v; want ErrShapeMismatch", err)
	}

	c := uniform(t, geom.Vec3{0.33, 0, 0}, 1, 3, func(_, _, _ int) float64 { return 0 })
	if err := a.Combine("Ow", c, grid.Add); !errors.Is(err, grid.ErrShapeMismatch) {
		t.Errorf("offset mismatch error = %v; want ErrShapeMismatch", err)
	}

	if err := a.Combine("Ow", b, grid.CombineOp(42)); !errors.Is(err, grid.ErrBadCombineOp) {
		t.Errorf("bad op error = %v; want ErrBadCombineOp", err)
	}
}

// TestApply_ScalesMap verifies the in-place map transform.
func TestApply_ScalesMap(t *testing.T) {
	g := uniform(t, geom.Vec3{}, 1, 2, func(_, _, _ int) float64 { return 3 })

	if err := g.Apply("Ow", func(v float64) float64 { return -math.Abs(v * 0.5) }); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	e, _ := g.EnergyAtNode(geom.Vec3{}, "Ow")
	if e != -1.5 {
		t.Errorf("applied node = %v; want -1.5", e)
	}
}
