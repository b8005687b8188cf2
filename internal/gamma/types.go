// Package gamma implements the Gamma method (Wolff 2004 / Madras-Sokal
// automatic windowing) for estimating the integrated autocorrelation time
// and the resulting inflated variance of a Monte-Carlo observable. It
// operates on a minimal Input view rather than pkg/obs.Obs directly so the
// estimator has no import-cycle dependency on the observable store and is
// unit-testable in isolation.
package gamma

import "github.com/latticeqcd/goerrors/internal/replica"

// Config holds the tunable parameters of the automatic-windowing criterion.
type Config struct {
	// S is the window-selection constant in the Madras-Sokal criterion.
	// Unused when TauExp > 0 (see window.go).
	S float64
	// TauExp, if > 0, extrapolates the autocorrelation tail beyond the
	// window with an exponential of this characteristic time.
	TauExp float64
	// NSigma is the threshold multiplier used with TauExp to pick the window.
	NSigma float64
	// FFT selects FFT-based autocorrelation over the direct O(N^2) sum.
	FFT bool
	// ETag, if positive, truncates replica names to this many characters to
	// derive the ensemble name; otherwise ensembles are split on '|'.
	ETag int
}

// DefaultConfig returns the standard Gamma-method defaults.
func DefaultConfig() Config {
	return Config{S: 2.0, TauExp: 0, NSigma: 1.0, FFT: true, ETag: 0}
}

// Option mutates a Config; used for the functional-options entry point
// exposed by pkg/obs.(*Obs).GammaMethod.
type Option func(*Config)

// WithS overrides the window-selection constant.
func WithS(s float64) Option { return func(c *Config) { c.S = s } }

// WithTauExp overrides the tail-extrapolation time.
func WithTauExp(tau float64) Option { return func(c *Config) { c.TauExp = tau } }

// WithNSigma overrides the tau_exp window threshold multiplier.
func WithNSigma(n float64) Option { return func(c *Config) { c.NSigma = n } }

// WithFFT selects or disables the FFT autocorrelation path.
func WithFFT(enabled bool) Option { return func(c *Config) { c.FFT = enabled } }

// WithETag overrides the ensemble-name truncation length.
func WithETag(n int) Option { return func(c *Config) { c.ETag = n } }

// Input is the minimal observable view the estimator needs.
type Input struct {
	Names  []string
	Deltas map[string][]float64
	IDL    map[string]replica.IDL
}

// EnsembleResult carries the per-ensemble outputs of the windowing
// algorithm.
type EnsembleResult struct {
	NConfigs  int
	Rho       []float64 // normalized autocorrelation function, rho[0] == 1 (all zeros when Gamma0 == 0)
	TauInt    float64
	DTauInt   float64
	Window    int
	Sigma2    float64 // variance contribution sigma_E^2
	DSigma2   float64 // error on the variance contribution
	Warning   string  // non-fatal edge case (N_E<4, Gamma_E(0)=0)
	Gamma0    float64
	Replicas  []string
}

// Result is the full estimator output for one observable, aggregated across
// ensembles.
type Result struct {
	DValue    float64
	DDValue   float64
	Ensembles map[string]*EnsembleResult
	Config    Config
}
