package replica

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitName(t *testing.T) {
	tests := []struct {
		name     string
		replica  string
		eTag     int
		expected string
	}{
		{"no separator, no tag", "ensA", 0, "ensA"},
		{"with separator", "ensA|r001", 0, "ensA"},
		{"with separator, tag ignored when zero", "ensA|r2", 0, "ensA"},
		{"e_tag truncation", "ensAr001", 4, "ensA"},
		{"e_tag longer than name", "ens", 10, "ens"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitName(tt.replica, tt.eTag))
		})
	}
}

func TestGroupByEnsemble(t *testing.T) {
	names := []string{"a|r1", "a|r2", "q|r1", "a|r3"}
	ensembles, members := GroupByEnsemble(names, 0)

	assert.Equal(t, []string{"a", "q"}, ensembles)
	assert.Equal(t, []string{"a|r1", "a|r2", "a|r3"}, members["a"])
	assert.Equal(t, []string{"q|r1"}, members["q"])
}
