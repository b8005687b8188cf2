package gamma

import (
	"math"
	"runtime"
	"sync"

	"github.com/latticeqcd/goerrors/internal/replica"
)

// Estimate runs the Gamma method on in: groups replicas into ensembles,
// computes and pools each ensemble's autocorrelation function, selects the
// summation window, and aggregates the resulting variance across ensembles.
// The per-replica autocorrelation functions (the only O(N log N) work) are
// computed concurrently, bounded by runtime.NumCPU(); the result does not
// depend on scheduling.
func Estimate(in Input, opts ...Option) (*Result, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	expanded := make(map[string][]float64, len(in.Names))
	nConfigs := make(map[string]int, len(in.Names))
	for _, name := range in.Names {
		expanded[name] = replica.Expand(in.Deltas[name], in.IDL[name])
		nConfigs[name] = replica.NConfigs(in.IDL[name])
	}

	perReplicaGamma := computeReplicaGammas(in.Names, expanded, cfg.FFT)

	ensembles, members := replica.GroupByEnsemble(in.Names, cfg.ETag)

	result := &Result{Ensembles: make(map[string]*EnsembleResult, len(ensembles)), Config: cfg}

	var dvalue2 float64
	var errSSquaredSum float64

	for _, ensemble := range ensembles {
		repNames := members[ensemble]
		er := estimateEnsemble(repNames, perReplicaGamma, nConfigs, cfg)
		result.Ensembles[ensemble] = er

		dvalue2 += er.Sigma2
		errSSquaredSum += er.DSigma2 * er.DSigma2
	}

	result.DValue = sqrtNonNeg(dvalue2)
	if result.DValue > 0 {
		errS := sqrtNonNeg(errSSquaredSum)
		result.DDValue = 0.5 * errS / result.DValue
	}

	return result, nil
}

func estimateEnsemble(repNames []string, perReplicaGamma map[string][]float64, nConfigs map[string]int, cfg Config) *EnsembleResult {
	nE := 0
	for _, r := range repNames {
		nE += nConfigs[r]
	}

	maxLag := 0
	for _, r := range repNames {
		if l := len(perReplicaGamma[r]); l > maxLag {
			maxLag = l
		}
	}

	pooled := make([]float64, maxLag)
	for _, r := range repNames {
		g := perReplicaGamma[r]
		weight := float64(nConfigs[r]) / float64(nE)
		for t, v := range g {
			pooled[t] += weight * v
		}
	}

	er := &EnsembleResult{NConfigs: nE, Replicas: repNames, Gamma0: pooled[0]}

	if nE < 4 {
		er.TauInt = 0.5
		er.Rho = normalizedRho(pooled)
		er.Window = 0
		er.Sigma2 = pooled[0] * 2 * er.TauInt / float64(nE)
		er.Warning = "fewer than 4 configurations; windowing skipped"
		return er
	}

	if pooled[0] == 0 {
		er.TauInt = 0.5
		er.Rho = make([]float64, len(pooled))
		er.Sigma2 = 0
		er.Warning = "Gamma_E(0) = 0 (constant observable); tau_int set to 0.5"
		return er
	}

	rho := normalizedRho(pooled)
	er.Rho = rho

	window, tauInt := selectWindow(rho, nE, cfg)
	tauInt = clipTauInt(tauInt)
	er.Window = window
	er.TauInt = tauInt
	er.Sigma2 = pooled[0] * 2 * tauInt / float64(nE)

	er.DTauInt = sqrtNonNeg(2 * float64(2*window+1) * tauInt * tauInt / float64(nE))
	if tauInt > 0 {
		er.DSigma2 = er.Sigma2 * (er.DTauInt / tauInt)
	}

	return er
}

func normalizedRho(gammaFn []float64) []float64 {
	rho := make([]float64, len(gammaFn))
	if gammaFn[0] == 0 {
		return rho
	}
	for t, v := range gammaFn {
		rho[t] = v / gammaFn[0]
	}
	return rho
}

func sqrtNonNeg(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Sqrt(x)
}

// computeReplicaGammas computes gamma_r(t) for every replica concurrently,
// bounded by a worker pool sized to the available CPUs — the FFTs over
// replicas are embarrassingly parallel and share no state.
func computeReplicaGammas(names []string, expanded map[string][]float64, useFFT bool) map[string][]float64 {
	out := make(map[string][]float64, len(names))
	var mu sync.Mutex
	var wg sync.WaitGroup

	sem := make(chan struct{}, runtime.NumCPU())
	for _, name := range names {
		name := name
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()

			d := expanded[name]
			var g []float64
			if useFFT {
				g = FFTGamma(d)
			} else {
				g = DirectGamma(d)
			}

			mu.Lock()
			out[name] = g
			mu.Unlock()
		}()
	}
	wg.Wait()
	return out
}
