package npr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestMul_PropagatesUntaggedMomenta(t *testing.T) {
	g5, _ := Grid("Gamma5")
	gx, _ := Grid("GammaX")
	a := NewMatrix(g5, []float64{1, 0, 0, 0}, nil)
	b := NewMatrix(gx, nil, []float64{0, 1, 0, 0})

	out, err := Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 0, 0}, out.MomIn)
	assert.Equal(t, []float64{0, 1, 0, 0}, out.MomOut)
}

func TestMul_MismatchedMomentaFails(t *testing.T) {
	g5, _ := Grid("Gamma5")
	a := NewMatrix(g5, []float64{1, 0, 0, 0}, nil)
	b := NewMatrix(g5, []float64{0, 1, 0, 0}, nil)

	_, err := Mul(a, b)
	require.Error(t, err)
	var nprErr *Error
	require.ErrorAs(t, err, &nprErr)
	assert.Equal(t, ErrInvariant, nprErr.Kind)
}

func TestG5H_SwapsMomentaAndRejectsWrongShape(t *testing.T) {
	g5, _ := Grid("Gamma5")
	small := NewMatrix(g5, []float64{1}, []float64{2})
	_, err := small.G5H()
	require.Error(t, err)

	data := make([]complex128, 144)
	for i := 0; i < 12; i++ {
		data[i*12+i] = 1
	}
	id12 := mat.NewCDense(12, 12, data)
	m := NewMatrix(id12, []float64{1, 0, 0}, []float64{0, 1, 0})

	conj, err := m.G5H()
	require.NoError(t, err)
	assert.Equal(t, m.MomOut, conj.MomIn)
	assert.Equal(t, m.MomIn, conj.MomOut)
}
