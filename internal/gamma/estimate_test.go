package gamma

import (
	"math"
	"math/rand"
	"testing"

	"github.com/latticeqcd/goerrors/internal/replica"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func centeredInput(name string, samples []float64) Input {
	mean := 0.0
	for _, v := range samples {
		mean += v
	}
	mean /= float64(len(samples))

	deltas := make([]float64, len(samples))
	for i, v := range samples {
		deltas[i] = v - mean
	}

	idl, _ := replica.RangeIDL(1, len(samples))
	return Input{
		Names:  []string{name},
		Deltas: map[string][]float64{name: deltas},
		IDL:    map[string]replica.IDL{name: idl},
	}
}

func TestEstimate_ConstantSeries(t *testing.T) {
	samples := make([]float64, 1000)
	for i := range samples {
		samples[i] = 2.0
	}
	in := centeredInput("a", samples)

	res, err := Estimate(in)
	require.NoError(t, err)

	er := res.Ensembles["a"]
	assert.InDelta(t, 0.0, res.DValue, 1e-12)
	assert.InDelta(t, 0.5, er.TauInt, 1e-12)
	for lag := 1; lag < len(er.Rho); lag++ {
		assert.InDelta(t, 0.0, er.Rho[lag], 1e-9, "rho(t) should vanish for t>=1")
	}
}

func TestEstimate_AlternatingSeries(t *testing.T) {
	samples := make([]float64, 2000)
	for i := range samples {
		if i%2 == 0 {
			samples[i] = 1.0
		} else {
			samples[i] = -1.0
		}
	}
	in := centeredInput("a", samples)

	res, err := Estimate(in)
	require.NoError(t, err)

	er := res.Ensembles["a"]
	assert.InDelta(t, 0.5, er.TauInt, 1e-9, "anti-correlated tau_int clipped to 0.5")
	expected := 1.0 / math.Sqrt(2000.0)
	assert.InDelta(t, expected, res.DValue, 0.2*expected)
}

func TestEstimate_FFTAgreesWithDirect(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	samples := make([]float64, 500)
	for i := range samples {
		samples[i] = rng.NormFloat64()
	}
	in := centeredInput("a", samples)

	fftRes, err := Estimate(in, WithFFT(true))
	require.NoError(t, err)
	directRes, err := Estimate(in, WithFFT(false))
	require.NoError(t, err)

	assert.InDelta(t, directRes.DValue, fftRes.DValue, 1e-8*math.Max(directRes.DValue, 1))
}

func TestEstimate_IrregularSampling(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	n := 5000
	full := make([]float64, n)
	for i := range full {
		full[i] = rng.NormFloat64()
	}
	fullIn := centeredInput("full", full)
	fullRes, err := Estimate(fullIn)
	require.NoError(t, err)

	// keep ~20% of indices at random
	var keptIdx []int
	var keptVals []float64
	for i, v := range full {
		if rng.Float64() < 0.2 {
			keptIdx = append(keptIdx, i+1)
			keptVals = append(keptVals, v)
		}
	}
	mean := 0.0
	for _, v := range keptVals {
		mean += v
	}
	mean /= float64(len(keptVals))
	deltas := make([]float64, len(keptVals))
	for i, v := range keptVals {
		deltas[i] = v - mean
	}
	idl, err := replica.NewIDL(keptIdx)
	require.NoError(t, err)
	gappyIn := Input{
		Names:  []string{"gappy"},
		Deltas: map[string][]float64{"gappy": deltas},
		IDL:    map[string]replica.IDL{"gappy": idl},
	}
	gappyRes, err := Estimate(gappyIn)
	require.NoError(t, err)

	ratio := gappyRes.DValue / fullRes.DValue
	expectedRatio := math.Sqrt(float64(n) / float64(len(keptVals)))
	assert.InDelta(t, expectedRatio, ratio, 0.5)
}

func TestEstimate_NEBelowFourWarns(t *testing.T) {
	in := centeredInput("a", []float64{1, -1, 0.5, -0.5})
	// NConfigs == 4, so bump down to 3 by dropping a sample.
	in = centeredInput("a", []float64{1, -1, 0})

	res, err := Estimate(in)
	require.NoError(t, err)
	er := res.Ensembles["a"]
	assert.Equal(t, 0.5, er.TauInt)
	assert.NotEmpty(t, er.Warning)
}

func TestEstimate_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	samples := make([]float64, 300)
	for i := range samples {
		samples[i] = rng.NormFloat64()
	}
	in := centeredInput("a", samples)

	r1, err := Estimate(in, WithS(2))
	require.NoError(t, err)
	r2, err := Estimate(in, WithS(2))
	require.NoError(t, err)

	assert.Equal(t, r1.DValue, r2.DValue)
	assert.Equal(t, r1.Ensembles["a"].TauInt, r2.Ensembles["a"].TauInt)
}

func TestEstimate_MultipleEnsembles(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := make([]float64, 1000)
	q := make([]float64, 1000)
	for i := range a {
		a[i] = rng.NormFloat64()
		q[i] = rng.NormFloat64()
	}
	meanA, meanQ := 0.0, 0.0
	for i := range a {
		meanA += a[i]
		meanQ += q[i]
	}
	meanA /= float64(len(a))
	meanQ /= float64(len(q))
	deltasA := make([]float64, len(a))
	deltasQ := make([]float64, len(q))
	for i := range a {
		deltasA[i] = a[i] - meanA
		deltasQ[i] = q[i] - meanQ
	}
	idlA, _ := replica.RangeIDL(1, len(a))
	idlQ, _ := replica.RangeIDL(1, len(q))

	in := Input{
		Names:  []string{"a", "q"},
		Deltas: map[string][]float64{"a": deltasA, "q": deltasQ},
		IDL:    map[string]replica.IDL{"a": idlA, "q": idlQ},
	}

	res, err := Estimate(in, WithETag(1))
	require.NoError(t, err)
	require.Len(t, res.Ensembles, 2)
	assert.Contains(t, res.Ensembles, "a")
	assert.Contains(t, res.Ensembles, "q")
}
