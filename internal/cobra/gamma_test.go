package cobra

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeObservableFile(t *testing.T, path string) {
	t.Helper()
	samples := make([]float64, 200)
	for i := range samples {
		samples[i] = float64(i % 5)
	}
	file := observableFile{
		Observables: map[string]map[string][]float64{
			"plaquette": {"ensA": samples},
		},
	}
	data, err := json.Marshal(file)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestRunGamma_TableFormat(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "data.json")
	writeObservableFile(t, input)

	opts := &GammaOptions{S: 2.0, NSigma: 1.0, Format: "table"}
	require.NoError(t, runGamma(opts, input))
}

func TestRunGamma_WithPlots(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "data.json")
	writeObservableFile(t, input)

	plotDir := filepath.Join(dir, "plots")
	opts := &GammaOptions{S: 2.0, NSigma: 1.0, Format: "table", PlotDir: plotDir}
	require.NoError(t, runGamma(opts, input))

	entries, err := os.ReadDir(plotDir)
	require.NoError(t, err)
	assert.NotEmpty(t, entries)
}

func TestLoadObservables_RejectsMissingFile(t *testing.T) {
	_, err := loadObservables(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestRunNPR_UnknownTag(t *testing.T) {
	err := runNPR("NotAGammaStructure")
	assert.Error(t, err)
}

func TestRunNPR_KnownTag(t *testing.T) {
	require.NoError(t, runNPR("Gamma5"))
}
