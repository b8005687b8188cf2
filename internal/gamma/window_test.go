package gamma

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTauIntHistory(t *testing.T) {
	rho := []float64{1, 0.5, 0.25, 0.1}
	hist := tauIntHistory(rho)
	assert.Equal(t, []float64{0.5, 1.0, 1.25, 1.35}, hist)
}

func TestSelectWindow_AR1_MatchesAnalyticTauInt(t *testing.T) {
	// rho(t) = 0.346^t, so tau_int -> (1+rho)/(2*(1-rho)) ~ 1.03 for large N.
	rhoVal := 0.346
	n := 2000
	rho := make([]float64, 200)
	for t := range rho {
		rho[t] = math.Pow(rhoVal, float64(t))
	}

	cfg := DefaultConfig()
	window, tauInt := selectWindow(rho, n, cfg)

	expected := (1 + rhoVal) / (2 * (1 - rhoVal))
	assert.Greater(t, window, 0)
	assert.InDelta(t, expected, tauInt, 0.1)
}

func TestSelectWindow_ConstantSeriesHasNoWindow(t *testing.T) {
	rho := []float64{1}
	cfg := DefaultConfig()
	window, tauInt := selectWindow(rho, 1000, cfg)
	assert.Equal(t, 0, window)
	assert.Equal(t, 0.5, tauInt)
}

func TestClipTauInt(t *testing.T) {
	assert.Equal(t, 0.5, clipTauInt(0.3))
	assert.Equal(t, 0.5, clipTauInt(-1))
	assert.Equal(t, 1.2, clipTauInt(1.2))
}

func TestSelectWindow_TauExpBranch(t *testing.T) {
	rhoVal := 0.3
	n := 5000
	rho := make([]float64, 100)
	for t := range rho {
		rho[t] = math.Pow(rhoVal, float64(t))
	}

	cfg := DefaultConfig()
	cfg.TauExp = 4.0
	window, tauInt := selectWindow(rho, n, cfg)

	assert.Greater(t, window, 0)
	assert.Greater(t, tauInt, 0.5)
}
