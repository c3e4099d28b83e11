package optimizer

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/hydra/geom"
	"github.com/katalvlaran/hydra/policy"
)

// Options configures every search stage of one Optimizer.
//
// Distances are Å, angles degrees, temperature Kelvin. Angles are kept
// in degrees here because that is how the operating modes are quoted;
// searches convert once at entry.
type Options struct {
	// Policy elects candidates at every stage (Best or Boltzmann; All is
	// reserved for shell activation and rejected here).
	Policy policy.Policy

	// MinDistance/MaxDistance bound the placement annulus around the
	// anchor. Both shrink by 1 Å when the anchor is a donor, since the
	// donated hydrogen sits closer to the water than the heavy atom.
	MinDistance float64
	MaxDistance float64

	// AngleCutoff is the minimum candidate–anchor–direction angle (deg),
	// enforcing approximate hydrogen-bond linearity.
	AngleCutoff float64

	// RotationStep is the angular step (deg) of the disordered-bond and
	// anchor-axis orientation sweeps; a full turn is sampled with every
	// step strictly below 360°.
	RotationStep float64

	// OrientationCount is the size of the precomputed quaternion set for
	// the rigid-model orientation search.
	OrientationCount int

	// EnergyCutoff rejects a water whose position or orientation energy
	// is not strictly below it.
	EnergyCutoff float64

	// Temperature (K) scales Boltzmann election.
	Temperature float64

	// EdgeMargin (Å) excludes candidates this close to a lattice face
	// before a local sub-grid recompute; 0 disables the exclusion.
	EdgeMargin float64

	// Jitter displaces each candidate node by up to half a grid spacing
	// per axis during position search and placement ordering.
	Jitter bool

	// Seed routes to the shared deterministic RNG; 0 picks the fixed
	// default stream.
	Seed int64
}

// DefaultOptions mirrors the standard operating mode: greedy election,
// 2.5–3.4 Å annulus, 90° linearity filter, 10° sweeps, 100 orientations,
// zero energy cutoff, room temperature, 1 Å edge margin, jitter on.
func DefaultOptions() Options {
	return Options{
		Policy:           policy.Best,
		MinDistance:      2.5,
		MaxDistance:      3.4,
		AngleCutoff:      90,
		RotationStep:     10,
		OrientationCount: 100,
		EnergyCutoff:     0,
		Temperature:      298.15,
		EdgeMargin:       1,
		Jitter:           true,
	}
}

// validate rejects inconsistent settings up front so the searches never
// have to re-check.
func (o Options) validate() error {
	// The donor reduction must keep the annulus positive.
	if o.MinDistance <= 1 || o.MaxDistance <= o.MinDistance {
		return ErrBadDistance
	}
	if o.RotationStep <= 0 || o.RotationStep >= 360 {
		return ErrBadRotationStep
	}
	if o.OrientationCount <= 0 {
		return ErrBadOrientationCount
	}
	switch o.Policy {
	case policy.Best, policy.Boltzmann:
	default:
		return policy.ErrUnknownPolicy
	}

	return nil
}

// Optimizer owns the RNG and the precomputed quaternion set; it carries
// no grid or water state, so one Optimizer can process many shells as
// long as calls stay sequential (the RNG is not goroutine-safe).
type Optimizer struct {
	opts  Options
	rng   *rand.Rand
	quats []geom.Quat
}

// New validates opts, seeds the RNG, and precomputes the Shoemake
// quaternion set used by the rigid-model orientation search.
func New(opts Options) (*Optimizer, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	o := &Optimizer{
		opts: opts,
		rng:  policy.NewRNG(opts.Seed),
	}

	o.quats = make([]geom.Quat, opts.OrientationCount)
	for i := range o.quats {
		o.quats[i] = geom.Shoemake(o.rng.Float64(), o.rng.Float64(), o.rng.Float64())
	}

	return o, nil
}

// Options returns the optimizer's settings (a copy).
func (o *Optimizer) Options() Options { return o.opts }

// angleCutoffRad converts the configured linearity filter once per call
// site.
func (o *Optimizer) angleCutoffRad() float64 {
	return o.opts.AngleCutoff * math.Pi / 180
}

// rotationStepRad converts the sweep step once per call site.
func (o *Optimizer) rotationStepRad() float64 {
	return o.opts.RotationStep * math.Pi / 180
}
