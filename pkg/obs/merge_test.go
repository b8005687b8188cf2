package obs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeObs_DisjointReplicas(t *testing.T) {
	a := mustObs(t, map[string][]float64{"r1": {1, 2, 3, 4}})
	b := mustObs(t, map[string][]float64{"r2": {5, 6, 7, 8}})

	merged, err := MergeObs(a, b)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"r1", "r2"}, merged.Names())
	assert.InDelta(t, (a.Value()+b.Value())/2, merged.Value(), 1e-12)
}

func TestMergeObs_DuplicateReplicaIsStateMismatch(t *testing.T) {
	a := mustObs(t, map[string][]float64{"r1": {1, 2, 3, 4}})
	b := mustObs(t, map[string][]float64{"r1": {5, 6, 7, 8}})

	_, err := MergeObs(a, b)
	require.Error(t, err)
	var obsErr *Error
	require.ErrorAs(t, err, &obsErr)
	assert.Equal(t, ErrStateMismatch, obsErr.Kind)
}

func TestReweight_SetsFlag(t *testing.T) {
	w := mustObs(t, map[string][]float64{"r1": {1, 1, 1, 1}})
	target := mustObs(t, map[string][]float64{"r1": {2, 3, 4, 5}})

	out, err := Reweight(w, target)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.True(t, out[0].Reweighted())
}

func TestDerive_ReweightedPropagates(t *testing.T) {
	w := mustObs(t, map[string][]float64{"r1": {1, 1, 1, 1}})
	target := mustObs(t, map[string][]float64{"r1": {2, 3, 4, 5}})
	reweighted, err := Reweight(w, target)
	require.NoError(t, err)

	other := mustObs(t, map[string][]float64{"r1": {1, 2, 3, 4}})
	combined, err := Add(reweighted[0], other)
	require.NoError(t, err)
	assert.True(t, combined.Reweighted())
}
