package obs

import (
	"fmt"

	"github.com/latticeqcd/goerrors/internal/replica"
)

// MergeObs concatenates observables defined on disjoint replica sets into a
// single Obs. The result's value is the simple (unweighted) mean of the
// input values; each input's deltas are shifted by value_i - mean so the
// merged deltas still sum to zero per replica.
//
// Inputs must agree on reweighted state, and no two inputs may share a
// replica name; either violation is a state-mismatch error.
func MergeObs(inputs ...*Obs) (*Obs, error) {
	if len(inputs) == 0 {
		return nil, newInputTypeError("merge_obs: at least one observable is required")
	}

	reweighted := inputs[0].reweighted
	for _, in := range inputs {
		if in == nil {
			return nil, newInputTypeError("merge_obs: nil observable in list")
		}
		if in.reweighted != reweighted {
			return nil, newStateMismatchError("merge_obs: inputs disagree on reweighted state")
		}
	}

	mean := 0.0
	for _, in := range inputs {
		mean += in.value
	}
	mean /= float64(len(inputs))

	merged := make(map[string][]float64)
	idls := make(map[string]replica.IDL)

	for _, in := range inputs {
		shift := in.value - mean
		for _, name := range in.names {
			if _, dup := merged[name]; dup {
				return nil, newStateMismatchError(fmt.Sprintf("merge_obs: replica %q appears in more than one input", name))
			}
			src := in.deltas[name]
			shifted := make([]float64, len(src))
			for i, v := range src {
				shifted[i] = v + shift
			}
			merged[name] = shifted
			idls[name] = in.idl[name]
		}
	}

	return newFromLinearCombination(mean, merged, idls, reweighted)
}

// Reweight replaces each target observable O with (O*W)/mean(W) on the
// replicas they share, setting the reweighted flag on every output. W must
// carry unit-mean semantics; this is not enforced.
func Reweight(weight *Obs, targets ...*Obs) ([]*Obs, error) {
	if weight == nil {
		return nil, newInputTypeError("reweight: weight observable is required")
	}
	meanW := Broadcast(weight.Value())

	out := make([]*Obs, len(targets))
	for i, target := range targets {
		if target == nil {
			return nil, newInputTypeError("reweight: nil target observable")
		}
		numerator, err := Mul(target, weight)
		if err != nil {
			return nil, err
		}
		reweighted, err := Quo(numerator, meanW)
		if err != nil {
			return nil, err
		}
		reweighted.reweighted = true
		out[i] = reweighted
	}
	return out, nil
}
