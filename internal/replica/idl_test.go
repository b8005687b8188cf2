package replica

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDL(t *testing.T) {
	tests := []struct {
		name    string
		indices []int
		wantErr bool
	}{
		{"contiguous", []int{1, 2, 3, 4}, false},
		{"gappy", []int{1, 3, 5}, false},
		{"single", []int{7}, false},
		{"empty", nil, true},
		{"non-positive", []int{0, 1}, true},
		{"not increasing", []int{3, 2}, true},
		{"duplicate", []int{1, 1, 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idl, err := NewIDL(tt.indices)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.indices), idl.Len())
			assert.Equal(t, tt.indices, idl.Slice())
		})
	}
}

func TestNewIDL_CompactsContiguous(t *testing.T) {
	idl, err := NewIDL([]int{5, 6, 7, 8})
	require.NoError(t, err)
	_, ok := idl.(Range)
	assert.True(t, ok, "contiguous idl should compact to Range")
}

func TestNewIDL_KeepsGappyAsList(t *testing.T) {
	idl, err := NewIDL([]int{5, 7, 8})
	require.NoError(t, err)
	_, ok := idl.(List)
	assert.True(t, ok, "gappy idl should remain a List")
}

func TestExpand(t *testing.T) {
	idl, err := NewIDL([]int{2, 3, 5})
	require.NoError(t, err)
	deltas := []float64{1.0, -2.0, 1.0}

	expanded := Expand(deltas, idl)
	assert.Equal(t, []float64{1.0, -2.0, 0.0, 1.0}, expanded)
}

func TestExpand_Range(t *testing.T) {
	idl, err := RangeIDL(10, 13)
	require.NoError(t, err)
	deltas := []float64{1, 2, 3, 4}
	assert.Equal(t, deltas, Expand(deltas, idl))
}

func TestNConfigsVsExpandedLength(t *testing.T) {
	idl, err := NewIDL([]int{1, 2, 10})
	require.NoError(t, err)
	deltas := []float64{1, 2, 3}

	assert.Equal(t, 3, NConfigs(idl))
	assert.Len(t, Expand(deltas, idl), 10)
}

func TestUnion(t *testing.T) {
	a, _ := NewIDL([]int{1, 2, 3, 7})
	b, _ := NewIDL([]int{2, 4, 7, 8})

	u, err := Union(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 7, 8}, u.Slice())
}

func TestUnion_Disjoint(t *testing.T) {
	a, _ := RangeIDL(1, 3)
	b, _ := RangeIDL(10, 12)

	u, err := Union(a, b)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 10, 11, 12}, u.Slice())
}

func TestUnionAll(t *testing.T) {
	a, _ := NewIDL([]int{1, 3})
	b, _ := NewIDL([]int{2})
	c, _ := NewIDL([]int{4, 5})

	u, err := UnionAll(a, b, c)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, u.Slice())
}

func TestExpandOnto(t *testing.T) {
	idl, _ := NewIDL([]int{2, 4})
	union, _ := NewIDL([]int{1, 2, 3, 4, 5})
	deltas := []float64{10, 20}

	out := ExpandOnto(deltas, idl, union)
	assert.Equal(t, []float64{0, 10, 0, 20, 0}, out)
}
