package gamma

import "math"

// tauIntHistory returns tau_int(W) = 1/2 + sum_{t=1..W} rho[t] for
// W = 0 .. len(rho)-1.
func tauIntHistory(rho []float64) []float64 {
	hist := make([]float64, len(rho))
	hist[0] = 0.5
	running := 0.5
	for w := 1; w < len(rho); w++ {
		running += rho[w]
		hist[w] = running
	}
	return hist
}

// selectWindow chooses the summation window W and the resulting tau_int,
// implementing two regimes.
//
// tau_exp == 0: the Madras-Sokal / Wolff (2004) automatic criterion, smallest
// W with exp(-W/(S*tau_int(W))) - tau_int(W)/sqrt(W*N) <= 0. S enters the
// exponential's assumed decay scale, the historical form of this criterion
// (U. Wolff, "Monte Carlo errors with less errors", eq. 18-ish); see
// DESIGN.md for the Open Question resolution.
//
// tau_exp > 0: S is not used; the window is the smallest W with
// rho(W)*N_sigma*sqrt(W/N) <= the expected statistical noise level of rho at
// lag W under the null hypothesis of no correlation, sqrt((2W+1)/N) -- the
// same (2W+1) factor as the Madras-Sokal error formula, so the two branches
// agree on what counts as "noise" at the boundary. tau_int is then extended
// by the continuous correction tau_exp * |rho(W+1)|.
func selectWindow(rho []float64, n int, cfg Config) (window int, tauInt float64) {
	maxW := len(rho) - 1
	if maxW < 1 {
		return 0, 0.5
	}
	hist := tauIntHistory(rho)

	if cfg.TauExp <= 0 {
		for w := 1; w <= maxW; w++ {
			tau := math.Max(hist[w], 1e-12)
			g := math.Exp(-float64(w)/(cfg.S*tau)) - tau/math.Sqrt(float64(w)*float64(n))
			if g <= 0 {
				return w, hist[w]
			}
		}
		return maxW, hist[maxW]
	}

	for w := 1; w <= maxW; w++ {
		threshold := math.Sqrt(float64(2*w+1)) / math.Sqrt(float64(n))
		lhs := rho[w] * cfg.NSigma * math.Sqrt(float64(w)/float64(n))
		if lhs <= threshold {
			correction := 0.0
			if w+1 <= maxW {
				correction = cfg.TauExp * math.Abs(rho[w+1])
			}
			return w, hist[w] + correction
		}
	}
	correction := cfg.TauExp * math.Abs(rho[maxW])
	return maxW, hist[maxW] + correction
}

// clipTauInt enforces tau_int >= 0.5: an uncorrelated or anti-correlated
// series can make the raw running sum dip below the theoretical minimum,
// which must be clipped rather than reported as-is.
func clipTauInt(tauInt float64) float64 {
	if tauInt < 0.5 {
		return 0.5
	}
	return tauInt
}
