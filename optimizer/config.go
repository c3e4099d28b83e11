package optimizer

import (
	"io"

	"github.com/pelletier/go-toml"

	"github.com/katalvlaran/hydra/policy"
)

// RunConfig is the TOML surface of Options. Zero-valued fields fall
// back to the defaults, except Policy which must parse when present
// (an unrecognized policy string is a configuration error, never a
// silent default).
type RunConfig struct {
	Policy string `toml:"optimizer.policy"`

	MinDistance float64 `toml:"optimizer.min_distance"`
	MaxDistance float64 `toml:"optimizer.max_distance"`
	AngleCutoff float64 `toml:"optimizer.angle_cutoff"`

	RotationStep     float64 `toml:"optimizer.rotation_step"`
	OrientationCount int     `toml:"optimizer.orientation_count"`

	EnergyCutoff float64 `toml:"optimizer.energy_cutoff"`
	Temperature  float64 `toml:"optimizer.temperature"`

	EdgeMargin float64 `toml:"optimizer.edge_margin"`
	NoJitter   bool    `toml:"optimizer.no_jitter"`

	Seed int64 `toml:"optimizer.seed"`
}

// LoadOptions decodes a RunConfig from r and merges it over
// DefaultOptions. The result is validated by New, not here.
func LoadOptions(r io.Reader) (Options, error) {
	var cfg RunConfig

	dec := toml.NewDecoder(r)
	if err := dec.Decode(&cfg); err != nil {
		return Options{}, err
	}

	return cfg.Options()
}

// Options merges the decoded fields over DefaultOptions.
func (c RunConfig) Options() (Options, error) {
	opts := DefaultOptions()

	if c.Policy != "" {
		p, err := policy.Parse(c.Policy)
		if err != nil {
			return Options{}, err
		}
		opts.Policy = p
	}
	if c.MinDistance != 0 {
		opts.MinDistance = c.MinDistance
	}
	if c.MaxDistance != 0 {
		opts.MaxDistance = c.MaxDistance
	}
	if c.AngleCutoff != 0 {
		opts.AngleCutoff = c.AngleCutoff
	}
	if c.RotationStep != 0 {
		opts.RotationStep = c.RotationStep
	}
	if c.OrientationCount != 0 {
		opts.OrientationCount = c.OrientationCount
	}
	if c.EnergyCutoff != 0 {
		opts.EnergyCutoff = c.EnergyCutoff
	}
	if c.Temperature != 0 {
		opts.Temperature = c.Temperature
	}
	if c.EdgeMargin != 0 {
		opts.EdgeMargin = c.EdgeMargin
	}
	opts.Jitter = !c.NoJitter
	opts.Seed = c.Seed

	return opts, nil
}
