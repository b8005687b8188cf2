// Package obs implements Obs, the central data model for a Monte-Carlo
// observable with full per-configuration fluctuation tracking, and CObs, its
// complex-valued counterpart. Arithmetic on Obs flows through the
// derived-observable engine in derive.go; statistical error is computed on
// demand by GammaMethod, which wraps internal/gamma.
package obs

import (
	"fmt"
	"math"
	"sort"

	"github.com/latticeqcd/goerrors/internal/gamma"
	"github.com/latticeqcd/goerrors/internal/replica"
)

// sumZeroTolerance bounds how far a replica's deltas may drift from
// summing to exactly zero before the invariant is considered violated,
// accommodating floating-point rounding.
const sumZeroTolerance = 1e-9

// Obs represents one scalar observable with its full per-configuration
// fluctuation trail. Values are immutable except for the estimator cache
// written by GammaMethod.
type Obs struct {
	value      float64
	names      []string
	deltas     map[string][]float64
	idl        map[string]replica.IDL
	rValues    map[string]float64
	reweighted bool

	estimate *gamma.Result
}

// NewObs constructs an Obs from raw per-replica sample arrays. idl may be nil
// for a replica, in which case a contiguous range [1, len(samples)] is
// assumed. Per-replica means are subtracted to form deltas; the global value
// is the length-weighted average of the per-replica means.
func NewObs(samples map[string][]float64, idl map[string]replica.IDL) (*Obs, error) {
	if len(samples) == 0 {
		return nil, newInvariantError("obs: at least one replica is required", nil)
	}

	names := make([]string, 0, len(samples))
	for name := range samples {
		names = append(names, name)
	}
	sort.Strings(names)

	deltas := make(map[string][]float64, len(names))
	idls := make(map[string]replica.IDL, len(names))
	rValues := make(map[string]float64, len(names))

	totalLen := 0
	weightedSum := 0.0
	for _, name := range names {
		s := samples[name]
		if len(s) == 0 {
			return nil, newInvariantError(fmt.Sprintf("obs: replica %q has no samples", name), nil)
		}

		replicaIDL := idl[name]
		if replicaIDL == nil {
			r, err := replica.RangeIDL(1, len(s))
			if err != nil {
				return nil, newInvariantError("obs: failed to build default idl", err)
			}
			replicaIDL = r
		}
		if replicaIDL.Len() != len(s) {
			return nil, newInvariantError(
				fmt.Sprintf("obs: replica %q has %d samples but idl length %d", name, len(s), replicaIDL.Len()), nil)
		}

		mean := 0.0
		for _, v := range s {
			mean += v
		}
		mean /= float64(len(s))

		d := make([]float64, len(s))
		for i, v := range s {
			d[i] = v - mean
		}

		deltas[name] = d
		idls[name] = replicaIDL
		rValues[name] = mean

		totalLen += len(s)
		weightedSum += mean * float64(len(s))
	}

	o := &Obs{
		value:   weightedSum / float64(totalLen),
		names:   names,
		deltas:  deltas,
		idl:     idls,
		rValues: rValues,
	}

	if err := o.checkInvariants(); err != nil {
		return nil, err
	}
	return o, nil
}

// newFromLinearCombination builds an Obs directly from a value and
// already-centered per-replica deltas, bypassing recentering. Used by Derive
// (C3), whose linear combinations of centered inputs sum to zero, and by
// MergeObs; the invariants are checked either way.
func newFromLinearCombination(value float64, deltas map[string][]float64, idl map[string]replica.IDL, reweighted bool) (*Obs, error) {
	names := make([]string, 0, len(deltas))
	for name := range deltas {
		names = append(names, name)
	}
	sort.Strings(names)

	rValues := make(map[string]float64, len(names))
	for _, name := range names {
		d := deltas[name]
		mean := 0.0
		for _, v := range d {
			mean += v
		}
		rValues[name] = value + mean/float64(len(d))
	}

	o := &Obs{
		value:      value,
		names:      names,
		deltas:     deltas,
		idl:        idl,
		rValues:    rValues,
		reweighted: reweighted,
	}
	if err := o.checkInvariants(); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *Obs) checkInvariants() error {
	if len(o.names) != len(o.deltas) || len(o.names) != len(o.idl) {
		return newInvariantError("obs: names, deltas and idl keys must match exactly", nil)
	}
	for _, name := range o.names {
		d, ok := o.deltas[name]
		if !ok {
			return newInvariantError(fmt.Sprintf("obs: missing deltas for replica %q", name), nil)
		}
		idl, ok := o.idl[name]
		if !ok {
			return newInvariantError(fmt.Sprintf("obs: missing idl for replica %q", name), nil)
		}
		if idl.Len() != len(d) {
			return newInvariantError(fmt.Sprintf("obs: replica %q deltas/idl length mismatch", name), nil)
		}

		sum := 0.0
		maxAbs := 0.0
		for _, v := range d {
			sum += v
			if a := math.Abs(v); a > maxAbs {
				maxAbs = a
			}
		}
		tol := sumZeroTolerance * math.Max(1, maxAbs) * float64(len(d))
		if math.Abs(sum) > tol {
			return newInvariantError(
				fmt.Sprintf("obs: replica %q deltas do not sum to zero (sum=%g)", name, sum), nil)
		}
	}
	return nil
}

// Value returns the observable's mean.
func (o *Obs) Value() float64 { return o.value }

// Names returns the (sorted, unique) replica names.
func (o *Obs) Names() []string {
	out := make([]string, len(o.names))
	copy(out, o.names)
	return out
}

// Deltas returns a copy of the per-configuration fluctuations on replica name.
func (o *Obs) Deltas(name string) []float64 {
	d := o.deltas[name]
	if d == nil {
		return nil
	}
	out := make([]float64, len(d))
	copy(out, d)
	return out
}

// IDL returns the configuration-index list for replica name.
func (o *Obs) IDL(name string) replica.IDL { return o.idl[name] }

// RValue returns the per-replica local mean for replica name.
func (o *Obs) RValue(name string) float64 { return o.rValues[name] }

// Reweighted reports whether this observable (or any ancestor it was derived
// from) has been reweighted.
func (o *Obs) Reweighted() bool { return o.reweighted }

// HasReplica reports whether name is among this observable's replicas.
func (o *Obs) HasReplica(name string) bool {
	_, ok := o.deltas[name]
	return ok
}

// IsZero reports whether the observable's value and every delta are zero up
// to floating-point tolerance.
func (o *Obs) IsZero() bool {
	if math.Abs(o.value) > sumZeroTolerance {
		return false
	}
	for _, name := range o.names {
		for _, v := range o.deltas[name] {
			if math.Abs(v) > sumZeroTolerance {
				return false
			}
		}
	}
	return true
}

// String renders "value(dvalue)" once GammaMethod has run, and
// "value ± ?" otherwise.
func (o *Obs) String() string {
	if o.estimate == nil {
		return fmt.Sprintf("%g ± ?", o.value)
	}
	return fmt.Sprintf("%g(%s)", o.value, formatError(o.value, o.estimate.DValue))
}

// formatError renders dvalue with two significant digits (%.2g), or with %g
// when it is zero or non-finite; String places the result in parentheses.
func formatError(value, dvalue float64) string {
	if dvalue == 0 || math.IsNaN(dvalue) || math.IsInf(dvalue, 0) {
		return fmt.Sprintf("%g", dvalue)
	}
	return fmt.Sprintf("%.2g", dvalue)
}
