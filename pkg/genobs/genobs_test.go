package genobs

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestPseudoObs_ConstantWhenDvalueNonPositive(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	o, err := PseudoObs(rng, 5, 0, "t", 100)
	require.NoError(t, err)
	assert.InDelta(t, 5, o.Value(), 1e-12)
}

func TestPseudoObs_MatchesRequestedValueAndError(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	o, err := PseudoObs(rng, 5, 0.3, "t", 1000)
	require.NoError(t, err)

	assert.InDelta(t, 5, o.Value(), 1e-9)
	require.NoError(t, o.GammaMethod())
	assert.InDelta(t, 0.3, o.Dvalue(), 1e-8)
}

func TestGenCorrelatedData_RejectsSubMinimumTau(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	cov := mat.NewSymDense(2, []float64{1, 0, 0, 1})
	_, err := GenCorrelatedData(rng, []float64{0, 0}, cov, []float64{0.2, 1}, "e", 100)
	require.Error(t, err)
}

func TestGenCorrelatedData_MatchesRequestedMeans(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	cov := mat.NewSymDense(2, []float64{1, 0.2, 0.2, 1})
	means := []float64{3, -1}
	out, err := GenCorrelatedData(rng, means, cov, []float64{0.5, 0.5}, "e", 2000)
	require.NoError(t, err)
	require.Len(t, out, 2)

	for i, o := range out {
		assert.InDelta(t, means[i], o.Value(), 1e-9)
	}
}

func TestGenCorrelatedData_DimensionMismatch(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	cov := mat.NewSymDense(2, []float64{1, 0, 0, 1})
	_, err := GenCorrelatedData(rng, []float64{0, 0, 0}, cov, []float64{1, 1}, "e", 100)
	require.Error(t, err)
}
