package obs

import (
	"fmt"

	"github.com/latticeqcd/goerrors/internal/autodiff"
	"github.com/latticeqcd/goerrors/internal/replica"
)

// GradientMode selects how Derive computes the gradient of the user
// function.
type GradientMode int

const (
	// Analytic differentiates through forward-mode automatic differentiation
	// (internal/autodiff.Dual) — the default.
	Analytic GradientMode = iota
	// Numeric uses central finite differences; used for validation or when
	// the function is not expressible in the Dual elementary operation set.
	Numeric
)

// Func is the user-supplied scalar function, expressed in terms of the
// autodiff.Dual elementary operations so it can be differentiated
// analytically. It is used in Analytic mode; Numeric mode evaluates the
// PlainFunc passed alongside it instead.
type Func = autodiff.Func

// PlainFunc is the finite-difference counterpart of Func, used when mode is
// Numeric.
type PlainFunc = autodiff.PlainFunc

// Derive applies f to the vector of input observables and returns an Obs
// whose deltas are the first-order linear projection of the inputs' deltas
// through f's gradient at the tuple of means.
//
// analytic and numeric must agree on the function they encode — Derive
// accepts both so callers can build `Obs` arithmetic on top of a single
// elementary function definition. Pass mode=Numeric with analytic==nil when
// no Dual-compatible formulation exists.
func Derive(analytic Func, numeric PlainFunc, mode GradientMode, inputs ...*Obs) (*Obs, error) {
	if len(inputs) == 0 {
		return nil, newInputTypeError("derive: at least one input observable is required")
	}
	for i, in := range inputs {
		if in == nil {
			return nil, newInputTypeError(fmt.Sprintf("derive: input %d is nil", i))
		}
	}

	if err := checkReweightedConsistency(inputs); err != nil {
		return nil, err
	}

	means := make([]float64, len(inputs))
	for i, in := range inputs {
		means[i] = in.value
	}

	var value float64
	var grad []float64
	switch mode {
	case Analytic:
		if analytic == nil {
			return nil, newInputTypeError("derive: analytic mode requires a Func")
		}
		value, grad = autodiff.Gradient(analytic, means)
	case Numeric:
		if numeric == nil {
			return nil, newInputTypeError("derive: numeric mode requires a PlainFunc")
		}
		value, grad = autodiff.NumericGradient(numeric, means)
	default:
		return nil, newInputTypeError("derive: unknown gradient mode")
	}

	unionNames, unionIDL, err := unionReplicas(inputs)
	if err != nil {
		return nil, err
	}

	deltas := make(map[string][]float64, len(unionNames))
	for _, name := range unionNames {
		union := unionIDL[name]
		combined := make([]float64, union.Len())
		for i, in := range inputs {
			if !in.HasReplica(name) {
				continue
			}
			coeff := grad[i]
			if coeff == 0 {
				continue
			}
			expandedInput := replica.ExpandOnto(in.deltas[name], in.idl[name], union)
			for t, v := range expandedInput {
				combined[t] += coeff * v
			}
		}
		deltas[name] = combined
	}

	reweighted := false
	for _, in := range inputs {
		if in.reweighted {
			reweighted = true
			break
		}
	}

	return newFromLinearCombination(value, deltas, unionIDL, reweighted)
}

// Broadcast wraps a plain constant as a zero-replica-set Obs so it can be
// passed into Derive alongside real observables: its gradient contribution
// is necessarily zero (it has no replicas to carry deltas on), and only its
// value participates in f's functional form.
func Broadcast(value float64) *Obs {
	return &Obs{
		value:   value,
		names:   nil,
		deltas:  map[string][]float64{},
		idl:     map[string]replica.IDL{},
		rValues: map[string]float64{},
	}
}

func checkReweightedConsistency(inputs []*Obs) error {
	// Reweighting is propagated (OR semantics), not required to match, so
	// there is nothing to validate here beyond non-nil inputs; kept as a
	// named hook so future invariants (e.g. ensemble-content equality for
	// strict operations) have a single place to live.
	return nil
}

// unionReplicas computes the union of replica names across inputs and, for
// each, the union of idl across the inputs that carry that replica.
func unionReplicas(inputs []*Obs) ([]string, map[string]replica.IDL, error) {
	seen := make(map[string]bool)
	var names []string
	idls := make(map[string][]replica.IDL)

	for _, in := range inputs {
		for _, name := range in.names {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
			idls[name] = append(idls[name], in.idl[name])
		}
	}

	unionIDL := make(map[string]replica.IDL, len(names))
	for _, name := range names {
		u, err := replica.UnionAll(idls[name]...)
		if err != nil {
			return nil, nil, newInvariantError("derive: failed to union idl for replica "+name, err)
		}
		unionIDL[name] = u
	}

	return names, unionIDL, nil
}
