package forcefield

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Default distance cutoffs (Å), overridable via options on New.
const (
	defaultHBCutoff   = 8.0
	defaultElecCutoff = 20.0
)

// ForceField is the loaded parameter set plus the precomputed pairwise
// coefficient table. Safe for concurrent reads after construction; pair
// (de)activation is the only mutation and must not race with scoring.
type ForceField struct {
	Weights Weights

	atomPar  map[string]AtomParams
	pairwise map[[2]string]*PairCoeffs

	hbCutoff   float64
	elecCutoff float64

	unitWeights bool
}

// Option adjusts ForceField construction.
type Option func(*ForceField)

// WithHBCutoff overrides the hydrogen-bond distance cutoff (default 8 Å).
func WithHBCutoff(r float64) Option {
	return func(ff *ForceField) { ff.hbCutoff = r }
}

// WithElecCutoff overrides the electrostatic distance cutoff (default 20 Å).
func WithElecCutoff(r float64) Option {
	return func(ff *ForceField) { ff.elecCutoff = r }
}

// WithUnitWeights forces every term weight to 1, ignoring the table's
// FE_coeff records (useful for unweighted component analysis).
func WithUnitWeights() Option {
	return func(ff *ForceField) { ff.unitWeights = true }
}

// New parses a parameter table from r and precomputes the pairwise
// coefficient table for every ordered pair of loaded atom types.
//
// Recognized records:
//
//	atom_par <type> <rii> <epsii> <vol> <solpar> <rij_hb> <epsij_hb> <hbond> ...
//	FE_coeff_<term> <value>
//
// Any other line is ignored. Returns ErrMalformedRecord (wrapped with the
// offending line) or ErrMissingWeight.
//
// Complexity: O(L) parse + O(T²) table build.
func New(r io.Reader, opts ...Option) (*ForceField, error) {
	ff := &ForceField{
		atomPar:    make(map[string]AtomParams),
		pairwise:   make(map[[2]string]*PairCoeffs),
		hbCutoff:   defaultHBCutoff,
		elecCutoff: defaultElecCutoff,
	}

	for _, opt := range opts {
		opt(ff)
	}

	var haveWeights [4]bool

	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		switch {
		case strings.HasPrefix(line, "atom_par"):
			par, err := parseAtomPar(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			ff.atomPar[par.Type] = par

		case strings.HasPrefix(line, "FE_coeff_"):
			name, value, err := parseWeight(line)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			switch name {
			case "vdW":
				ff.Weights.VdW, haveWeights[0] = value, true
			case "hbond":
				ff.Weights.HBond, haveWeights[1] = value, true
			case "estat":
				ff.Weights.Estat, haveWeights[2] = value, true
			case "desolv":
				ff.Weights.Desolv, haveWeights[3] = value, true
			default:
				// Unused coefficients (e.g. torsional) pass through silently.
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("forcefield: read parameter table: %w", err)
	}

	if ff.unitWeights {
		ff.Weights = Weights{VdW: 1, HBond: 1, Estat: 1, Desolv: 1}
	} else {
		for i, ok := range haveWeights {
			if !ok {
				return nil, fmt.Errorf("%w: term %q", ErrMissingWeight,
					[...]string{"vdW", "hbond", "estat", "desolv"}[i])
			}
		}
	}

	ff.buildPairwiseTable()

	return ff, nil
}

// parseAtomPar decodes one atom_par record.
func parseAtomPar(line string) (AtomParams, error) {
	fields := strings.Fields(line)
	// atom_par + type + 6 floats + hbond class is the minimum payload.
	if len(fields) < 9 {
		return AtomParams{}, fmt.Errorf("%w: %q", ErrMalformedRecord, line)
	}

	var (
		vals [6]float64
		err  error
	)
	for i := range vals {
		if vals[i], err = strconv.ParseFloat(fields[2+i], 64); err != nil {
			return AtomParams{}, fmt.Errorf("%w: field %d of %q", ErrMalformedRecord, 2+i, line)
		}
	}
	hb, err := strconv.Atoi(fields[8])
	if err != nil || hb < int(HBNone) || hb > int(HBAcceptorDouble) {
		return AtomParams{}, fmt.Errorf("%w: hbond class of %q", ErrMalformedRecord, line)
	}

	return AtomParams{
		Type:    fields[1],
		Rii:     vals[0],
		Epsii:   vals[1],
		Vol:     vals[2],
		Solpar:  vals[3],
		RijHB:   vals[4],
		EpsijHB: vals[5],
		HBond:   HBondClass(hb),
	}, nil
}

// parseWeight decodes one FE_coeff_<term> record into (term, value).
func parseWeight(line string) (string, float64, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", 0, fmt.Errorf("%w: %q", ErrMalformedRecord, line)
	}
	name := strings.TrimPrefix(fields[0], "FE_coeff_")
	value, err := strconv.ParseFloat(fields[len(fields)-1], 64)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %q", ErrMalformedRecord, line)
	}

	return name, value, nil
}

// AtomParams returns the loaded constants for one atom type.
func (ff *ForceField) AtomParams(atomType string) (AtomParams, error) {
	par, ok := ff.atomPar[atomType]
	if !ok {
		return AtomParams{}, fmt.Errorf("%w: %q", ErrUnknownAtomType, atomType)
	}

	return par, nil
}

// Types returns the loaded atom-type symbols (unordered).
func (ff *ForceField) Types() []string {
	out := make([]string, 0, len(ff.atomPar))
	for t := range ff.atomPar {
		out = append(out, t)
	}

	return out
}
