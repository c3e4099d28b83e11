package policy

import (
	"errors"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// Sentinel errors returned by the policy package.
var (
	// ErrUnknownPolicy indicates a Policy value outside the closed set.
	ErrUnknownPolicy = errors.New("policy: unknown selection policy")

	// ErrNoCandidates indicates an empty candidate slice, or a Boltzmann
	// draw in which every candidate carries zero probability.
	ErrNoCandidates = errors.New("policy: no selectable candidates")

	// ErrNotSelectable indicates that All was asked to pick a single
	// candidate; All activates whole sets and never selects one.
	ErrNotSelectable = errors.New("policy: All cannot select a single candidate")
)

// KB is the Boltzmann constant in kcal/(mol·K), matching the energy
// units of the force field.
const KB = 0.0019872041

// Policy is the closed set of candidate-selection behaviors.
type Policy int

const (
	// Best picks the minimum-energy candidate deterministically.
	Best Policy = iota

	// Boltzmann samples candidates with probability ∝ exp(−E/kBT).
	Boltzmann

	// All accepts every candidate unconditionally (activation only).
	All
)

// String implements fmt.Stringer for diagnostics and config round-trips.
func (p Policy) String() string {
	switch p {
	case Best:
		return "best"
	case Boltzmann:
		return "boltzmann"
	case All:
		return "all"
	default:
		return "unknown"
	}
}

// Parse maps a configuration string onto a Policy. Unrecognized strings
// (including the historically observed typo variants with stray spaces)
// are a hard ErrUnknownPolicy, never a silent default.
func Parse(s string) (Policy, error) {
	switch s {
	case "best":
		return Best, nil
	case "boltzmann":
		return Boltzmann, nil
	case "all":
		return All, nil
	default:
		return 0, ErrUnknownPolicy
	}
}

// Select returns the index of the chosen candidate among energies.
//
// Contracts:
//   - Best: deterministic argmin; rng may be nil.
//   - Boltzmann: weighted draw at temperature T (Kelvin); rng required.
//   - All: ErrNotSelectable.
//
// Complexity: O(n).
func Select(energies []float64, p Policy, temperature float64, rng *rand.Rand) (int, error) {
	if len(energies) == 0 {
		return 0, ErrNoCandidates
	}

	switch p {
	case Best:
		return floats.MinIdx(energies), nil
	case Boltzmann:
		return boltzmannChoice(energies, temperature, rng)
	case All:
		return 0, ErrNotSelectable
	default:
		return 0, ErrUnknownPolicy
	}
}

// Rank returns candidate indices in processing order.
//
//   - Best: indices sorted by ascending energy (stable for ties via
//     floats.Argsort's underlying sort).
//   - Boltzmann: repeated weighted draws without replacement; candidates
//     whose Boltzmann weight underflows to zero are omitted entirely.
//   - All: identity order.
//
// Complexity: O(n log n) for Best, O(n²) worst case for Boltzmann.
func Rank(energies []float64, p Policy, temperature float64, rng *rand.Rand) ([]int, error) {
	n := len(energies)
	if n == 0 {
		return nil, ErrNoCandidates
	}

	switch p {
	case Best:
		keys := make([]float64, n)
		copy(keys, energies)
		inds := make([]int, n)
		floats.Argsort(keys, inds)

		return inds, nil

	case Boltzmann:
		return boltzmannRank(energies, temperature, rng)

	case All:
		inds := make([]int, n)
		for i := range inds {
			inds[i] = i
		}

		return inds, nil

	default:
		return nil, ErrUnknownPolicy
	}
}

// weights maps energies onto unnormalized Boltzmann weights. +Inf
// energies (out-of-grid candidates) weigh exactly 0.
//
// Energies are shifted by the minimum before exponentiating, so the
// largest exponent is always 0: probabilities are unchanged (a uniform
// factor cancels on normalization) and ties at an extreme minimum keep
// finite weights that split the draw evenly instead of overflowing.
func weights(energies []float64, temperature float64) []float64 {
	w := make([]float64, len(energies))

	min := math.Inf(1)
	for _, e := range energies {
		if e < min {
			min = e
		}
	}
	if math.IsInf(min, 1) {
		return w
	}

	for i, e := range energies {
		w[i] = math.Exp(-(e - min) / (KB * temperature))
	}

	return w
}

// boltzmannChoice draws one index with probability ∝ exp(−E/kBT).
func boltzmannChoice(energies []float64, temperature float64, rng *rand.Rand) (int, error) {
	w := weights(energies, temperature)
	total := floats.Sum(w)
	if total <= 0 || math.IsNaN(total) {
		return 0, ErrNoCandidates
	}

	u := rng.Float64() * total
	var acc float64
	for i, wi := range w {
		acc += wi
		if u < acc {
			return i, nil
		}
	}

	// FP slack: the last positive-weight candidate absorbs the remainder.
	for i := len(w) - 1; i >= 0; i-- {
		if w[i] > 0 {
			return i, nil
		}
	}

	return 0, ErrNoCandidates
}

// boltzmannRank draws all positive-weight candidates without replacement.
func boltzmannRank(energies []float64, temperature float64, rng *rand.Rand) ([]int, error) {
	w := weights(energies, temperature)

	var live int
	for _, wi := range w {
		if wi > 0 {
			live++
		}
	}
	if live == 0 {
		return nil, ErrNoCandidates
	}

	order := make([]int, 0, live)
	for len(order) < live {
		total := floats.Sum(w)
		u := rng.Float64() * total

		var acc float64
		pick := -1
		for i, wi := range w {
			if wi == 0 {
				continue
			}
			acc += wi
			if u < acc {
				pick = i
				break
			}
		}
		if pick < 0 {
			// FP slack: take the last remaining candidate.
			for i := len(w) - 1; i >= 0; i-- {
				if w[i] > 0 {
					pick = i
					break
				}
			}
		}

		order = append(order, pick)
		w[pick] = 0
	}

	return order, nil
}
