package npr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrid_KnownTags(t *testing.T) {
	tags := []string{
		"Identity", "Gamma5", "GammaX", "GammaY", "GammaZ", "GammaT",
		"GammaXGamma5", "GammaYGamma5", "GammaZGamma5", "GammaTGamma5",
		"SigmaXT", "SigmaXY", "SigmaXZ", "SigmaYT", "SigmaYZ", "SigmaZT",
	}
	for _, tag := range tags {
		m, err := Grid(tag)
		require.NoError(t, err, tag)
		rows, cols := m.Dims()
		assert.Equal(t, 4, rows, tag)
		assert.Equal(t, 4, cols, tag)
	}
}

func TestGrid_UnknownTag(t *testing.T) {
	_, err := Grid("NotAGammaMatrix")
	require.Error(t, err)
	var nprErr *Error
	require.ErrorAs(t, err, &nprErr)
	assert.Equal(t, ErrLookup, nprErr.Kind)
}

func TestGrid_Gamma5Squared_IsIdentity(t *testing.T) {
	g5, err := Grid("Gamma5")
	require.NoError(t, err)
	squared := matMul(g5, g5)
	id, err := Grid("Identity")
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			assert.InDelta(t, real(id.At(i, j)), real(squared.At(i, j)), 1e-12)
			assert.InDelta(t, imag(id.At(i, j)), imag(squared.At(i, j)), 1e-12)
		}
	}
}
