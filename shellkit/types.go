package shellkit

import (
	"errors"

	"github.com/katalvlaran/hydra/policy"
	"github.com/katalvlaran/hydra/water"
)

// Sentinel errors for shell finalization.
var (
	// ErrBadThreshold indicates a non-positive cluster or clash distance.
	ErrBadThreshold = errors.New("shellkit: distance thresholds must be positive")

	// ErrRecordMismatch indicates Waters and Records of differing length.
	ErrRecordMismatch = errors.New("shellkit: waters and records length mismatch")
)

// Record is the per-water energy bookkeeping of one shell entry.
type Record struct {
	ShellID           int
	EnergyPosition    float64
	EnergyOrientation float64
}

// Shell is the set of waters accepted for one hydration level. Waters
// and Records are index-aligned. A finalized shell is immutable except
// for each water's active flag, which Activate may rewrite.
type Shell struct {
	ID      int
	Waters  []*water.Water
	Records []Record
}

// New builds a shell after validating alignment.
func New(id int, waters []*water.Water, records []Record) (*Shell, error) {
	if len(waters) != len(records) {
		return nil, ErrRecordMismatch
	}

	return &Shell{ID: id, Waters: waters, Records: records}, nil
}

// ActiveWaters returns the currently active subset, preserving order.
func (s *Shell) ActiveWaters() []*water.Water {
	var out []*water.Water
	for _, w := range s.Waters {
		if w.Active() {
			out = append(out, w)
		}
	}

	return out
}

// Options configures shell activation.
type Options struct {
	// Policy elects cluster representatives: Best, Boltzmann, or All
	// (All skips clustering and activates every candidate).
	Policy policy.Policy

	// ClusterCutoff is the single-linkage cut distance (Å).
	ClusterCutoff float64

	// ClashDistance removes cluster members closer than this (Å) to any
	// elected representative.
	ClashDistance float64

	// Temperature (K) for Boltzmann representative election.
	Temperature float64

	// Seed routes to the deterministic RNG; 0 selects the fixed default.
	Seed int64
}

// DefaultOptions returns the standard activation settings: Best policy,
// 2.7 Å cluster cut, 2.5 Å clash distance, room temperature.
func DefaultOptions() Options {
	return Options{
		Policy:        policy.Best,
		ClusterCutoff: 2.7,
		ClashDistance: 2.5,
		Temperature:   298.15,
	}
}
