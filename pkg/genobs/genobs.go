// Package genobs provides pseudo-observable and correlated-data generators
// used to build synthetic Obs with known statistical properties, for tests
// and examples that need data with a controlled mean, error, or
// autocorrelation structure.
package genobs

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"

	"github.com/latticeqcd/goerrors/internal/gamma"
	"github.com/latticeqcd/goerrors/pkg/obs"
)

// maxRefinements bounds the dvalue-matching iteration in PseudoObs.
const maxRefinements = 100

// convergenceFactor is the relative tolerance on the achieved dvalue.
const convergenceFactor = 1e-10

// PseudoObs generates an Obs on a single replica named name whose mean equals
// value up to floating-point rounding (the Obs recomputes its mean from the
// generated samples) and whose Gamma-method error is approximately
// dvalue. dvalue <= 0 yields a constant observable of length samples.
// Failure to converge within maxRefinements is silent: the best attempt is
// returned.
func PseudoObs(rng *rand.Rand, value, dvalue float64, name string, samples int) (*obs.Obs, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("genobs: samples must be positive, got %d", samples)
	}

	if dvalue <= 0 {
		flat := make([]float64, samples)
		for i := range flat {
			flat[i] = value
		}
		return obs.NewObs(map[string][]float64{name: flat}, nil)
	}

	var best *obs.Obs
	for attempt := 0; attempt < maxRefinements; attempt++ {
		raw := make([]float64, samples)
		for i := range raw {
			raw[i] = rng.NormFloat64() * dvalue * math.Sqrt(float64(samples))
		}

		mean := meanOf(raw)
		for i := range raw {
			raw[i] -= mean
		}

		variance := popVariance(raw)
		scale := dvalue / math.Sqrt(variance/float64(samples)) / math.Sqrt(1+3/float64(samples))
		for i := range raw {
			raw[i] = raw[i]*scale + value
		}

		trial, err := obs.NewObs(map[string][]float64{name: raw}, nil)
		if err != nil {
			return nil, err
		}
		if err := trial.GammaMethod(gamma.WithS(2), gamma.WithTauExp(0)); err != nil {
			return nil, err
		}

		best = trial
		if math.Abs(trial.Dvalue()-dvalue) < convergenceFactor*dvalue {
			break
		}

		// A uniform rescale of the fluctuations leaves rho, and so the
		// window, unchanged, so dvalue scales with the same factor.
		if achieved := trial.Dvalue(); achieved > 0 {
			for i := range raw {
				raw[i] = (raw[i]-value)*dvalue/achieved + value
			}
			if best, err = obs.NewObs(map[string][]float64{name: raw}, nil); err != nil {
				return nil, err
			}
			if err := best.GammaMethod(gamma.WithS(2), gamma.WithTauExp(0)); err != nil {
				return nil, err
			}
			if math.Abs(best.Dvalue()-dvalue) < convergenceFactor*dvalue {
				break
			}
		}
	}
	return best, nil
}

// GenCorrelatedData generates len(means) observables on a single replica
// named name with the requested covariance cov and per-observable
// integrated autocorrelation times tau (len(tau) must equal len(means)),
// via an AR(1) process with decay constant a = (2*tau-1)/(2*tau+1). Every
// tau must be >= 0.5 (the Gamma-method minimum).
func GenCorrelatedData(rng *rand.Rand, means []float64, cov *mat.SymDense, tau []float64, name string, samples int) ([]*obs.Obs, error) {
	dims := len(means)
	if n, _ := cov.Dims(); n != dims {
		return nil, fmt.Errorf("genobs: cov dimension %d does not match len(means) %d", n, dims)
	}
	if len(tau) != dims {
		return nil, fmt.Errorf("genobs: tau must have one entry per observable")
	}
	for _, t := range tau {
		if t < 0.5 {
			return nil, fmt.Errorf("genobs: all integrated autocorrelations have to be >= 0.5")
		}
	}
	if samples <= 0 {
		return nil, fmt.Errorf("genobs: samples must be positive, got %d", samples)
	}

	a := make([]float64, dims)
	for i, t := range tau {
		a[i] = (2*t - 1) / (2*t + 1)
	}

	scaledCov := mat.NewSymDense(dims, nil)
	for i := 0; i < dims; i++ {
		for j := i; j < dims; j++ {
			scaledCov.SetSym(i, j, cov.At(i, j)*float64(samples))
		}
	}

	zeroMean := make([]float64, dims)
	normal, ok := distmv.NewNormal(zeroMean, scaledCov, rng)
	if !ok {
		return nil, fmt.Errorf("genobs: covariance matrix is not positive definite")
	}

	rawSamples := make([][]float64, samples)
	for s := 0; s < samples; s++ {
		rawSamples[s] = normal.Rand(nil)
	}

	// Rescale each column so its sample variance (ddof=1) equals
	// samples*cov[j][j], i.e. the naive error of the column mean is exactly
	// sqrt(cov[j][j]).
	for j := 0; j < dims; j++ {
		col := make([]float64, samples)
		for s := range rawSamples {
			col[s] = rawSamples[s][j]
		}
		empiricalVar := sampleVarianceDDOF1(col) / float64(samples)
		target := math.Sqrt(cov.At(j, j))
		factor := target / math.Sqrt(empiricalVar)
		for s := range rawSamples {
			rawSamples[s][j] *= factor
		}
	}

	// Apply the AR(1) correlation filter column by column.
	data := make([][]float64, samples)
	data[0] = append([]float64(nil), rawSamples[0]...)
	for s := 1; s < samples; s++ {
		row := make([]float64, dims)
		for j := 0; j < dims; j++ {
			row[j] = math.Sqrt(1-a[j]*a[j])*rawSamples[s][j] + a[j]*data[s-1][j]
		}
		data[s] = row
	}

	// Recenter each column to exactly (data mean - requested mean) and shift
	// so the final sample mean equals means[j].
	colMeans := make([]float64, dims)
	for j := 0; j < dims; j++ {
		col := make([]float64, samples)
		for s := range data {
			col[s] = data[s][j]
		}
		colMeans[j] = meanOf(col)
	}

	out := make([]*obs.Obs, dims)
	for j := 0; j < dims; j++ {
		series := make([]float64, samples)
		for s := range data {
			series[s] = data[s][j] - colMeans[j] + means[j]
		}
		o, err := obs.NewObs(map[string][]float64{name: series}, nil)
		if err != nil {
			return nil, err
		}
		out[j] = o
	}
	return out, nil
}

func meanOf(xs []float64) float64 {
	sum := 0.0
	for _, v := range xs {
		sum += v
	}
	return sum / float64(len(xs))
}

// popVariance returns the population (ddof=0) variance.
func popVariance(xs []float64) float64 {
	mean := meanOf(xs)
	sum := 0.0
	for _, v := range xs {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(xs))
}

// sampleVarianceDDOF1 returns the ddof=1 (unbiased) sample variance.
func sampleVarianceDDOF1(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	mean := meanOf(xs)
	sum := 0.0
	for _, v := range xs {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(xs)-1)
}
