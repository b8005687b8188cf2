package obs

import (
	"github.com/latticeqcd/goerrors/internal/gamma"
	"github.com/latticeqcd/goerrors/internal/replica"
)

// GammaMethod runs the Gamma-method estimator on o and caches the result. It
// is idempotent: calling it twice with the same options produces
// bit-for-bit identical cached results, and a later call with different
// options simply overwrites the cache.
func (o *Obs) GammaMethod(opts ...gamma.Option) error {
	result, err := gamma.Estimate(o.toGammaInput(), opts...)
	if err != nil {
		return err
	}
	o.estimate = result
	return nil
}

// Dvalue returns the statistical error computed by GammaMethod, or 0 if it
// has not been run.
func (o *Obs) Dvalue() float64 {
	if o.estimate == nil {
		return 0
	}
	return o.estimate.DValue
}

// DDvalue returns the error on Dvalue itself, or 0 if GammaMethod has not
// been run.
func (o *Obs) DDvalue() float64 {
	if o.estimate == nil {
		return 0
	}
	return o.estimate.DDValue
}

// TauInt returns the integrated autocorrelation time for ensemble name, or 0
// if GammaMethod has not been run or the ensemble is unknown.
func (o *Obs) TauInt(ensemble string) float64 {
	er, ok := o.ensembleResult(ensemble)
	if !ok {
		return 0
	}
	return er.TauInt
}

// Rho returns the normalized autocorrelation history for ensemble name, or
// nil if GammaMethod has not been run or the ensemble is unknown.
func (o *Obs) Rho(ensemble string) []float64 {
	er, ok := o.ensembleResult(ensemble)
	if !ok {
		return nil
	}
	out := make([]float64, len(er.Rho))
	copy(out, er.Rho)
	return out
}

// Window returns the chosen summation window for ensemble name, or 0 if
// GammaMethod has not been run or the ensemble is unknown.
func (o *Obs) Window(ensemble string) int {
	er, ok := o.ensembleResult(ensemble)
	if !ok {
		return 0
	}
	return er.Window
}

// Ensembles returns the names of the ensembles the last GammaMethod run
// aggregated over, or nil if it has not been run.
func (o *Obs) Ensembles() []string {
	if o.estimate == nil {
		return nil
	}
	names := make([]string, 0, len(o.estimate.Ensembles))
	for name := range o.estimate.Ensembles {
		names = append(names, name)
	}
	return names
}

// Warnings returns the non-fatal edge-case messages raised by the last
// GammaMethod run ("N_E < 4" and "Gamma_E(0) = 0"), one per affected
// ensemble in Ensembles order. Library callers are free to ignore these;
// the CLI is the only place that prints them (see internal/cobra).
func (o *Obs) Warnings() []string {
	if o.estimate == nil {
		return nil
	}
	var warnings []string
	for _, ensemble := range o.Ensembles() {
		if er, ok := o.ensembleResult(ensemble); ok && er.Warning != "" {
			warnings = append(warnings, ensemble+": "+er.Warning)
		}
	}
	return warnings
}

func (o *Obs) ensembleResult(ensemble string) (*gamma.EnsembleResult, bool) {
	if o.estimate == nil {
		return nil, false
	}
	er, ok := o.estimate.Ensembles[ensemble]
	return er, ok
}

// Cov returns the covariance of a and b via the polarization identity
// cov(a,b) = (dvalue(a+b)^2 - dvalue(a-b)^2) / 4, reusing the Gamma-method
// estimator on the sum and difference rather than implementing a separate
// two-observable autocorrelation routine. opts apply to both estimates.
func Cov(a, b *Obs, opts ...gamma.Option) (float64, error) {
	sum, err := Add(a, b)
	if err != nil {
		return 0, err
	}
	diff, err := Sub(a, b)
	if err != nil {
		return 0, err
	}
	if err := sum.GammaMethod(opts...); err != nil {
		return 0, err
	}
	if err := diff.GammaMethod(opts...); err != nil {
		return 0, err
	}
	dSum := sum.Dvalue()
	dDiff := diff.Dvalue()
	return (dSum*dSum - dDiff*dDiff) / 4, nil
}

// toGammaInput adapts o's internal representation to internal/gamma's Input
// type.
func (o *Obs) toGammaInput() gamma.Input {
	names := o.Names()
	deltas := make(map[string][]float64, len(names))
	idl := make(map[string]replica.IDL, len(names))
	for _, name := range names {
		deltas[name] = o.Deltas(name)
		idl[name] = o.IDL(name)
	}
	return gamma.Input{
		Names:  names,
		Deltas: deltas,
		IDL:    idl,
	}
}
