package plotting

import (
	"bytes"
	"testing"

	"github.com/latticeqcd/goerrors/pkg/obs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRhoHistory_RendersWithoutError(t *testing.T) {
	samples := make([]float64, 500)
	for i := range samples {
		if i%2 == 0 {
			samples[i] = 1.0
		} else {
			samples[i] = -1.0
		}
	}
	o, err := obs.NewObs(map[string][]float64{"a": samples}, nil)
	require.NoError(t, err)
	require.NoError(t, o.GammaMethod())

	line := RhoHistory(o, "a")
	var buf bytes.Buffer
	require.NoError(t, RenderHTML(&buf, line))
	assert.Greater(t, buf.Len(), 0)
}

func TestTauIntHistory_RendersWithoutError(t *testing.T) {
	samples := make([]float64, 500)
	for i := range samples {
		samples[i] = float64(i % 7)
	}
	o, err := obs.NewObs(map[string][]float64{"a": samples}, nil)
	require.NoError(t, err)
	require.NoError(t, o.GammaMethod())

	line := TauIntHistory(o, "a")
	var buf bytes.Buffer
	require.NoError(t, RenderHTML(&buf, line))
	assert.Greater(t, buf.Len(), 0)
}
