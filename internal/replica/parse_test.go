package replica

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIDL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []int
		wantErr bool
	}{
		{"single indices", "1,3,5", []int{1, 3, 5}, false},
		{"range", "1-3,5", []int{1, 2, 3, 5}, false},
		{"mixed and unsorted", "7,1,3-5", []int{1, 3, 4, 5, 7}, false},
		{"duplicate collapsed", "1,1,2", []int{1, 2}, false},
		{"empty", "", nil, true},
		{"bad range", "3-1", nil, true},
		{"non-positive", "0", nil, true},
		{"garbage", "abc", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idl, err := ParseIDL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, idl.Slice())
		})
	}
}

func TestFormatIDL_RoundTrip(t *testing.T) {
	idl, err := ParseIDL("1-3,5,8-10")
	require.NoError(t, err)

	formatted := FormatIDL(idl)
	assert.Equal(t, "1-3,5,8-10", formatted)

	reparsed, err := ParseIDL(formatted)
	require.NoError(t, err)
	assert.Equal(t, idl.Slice(), reparsed.Slice())
}
