// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package cobra

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/latticeqcd/goerrors/internal/gamma"
	"github.com/latticeqcd/goerrors/pkg/obs"
)

// observableFile is the on-disk shape accepted by the gamma command: one
// entry per observable name, each a map from replica name to its raw
// Monte-Carlo sample series. This is plain user input data, not an Obs's own
// wire format (see pkg/obs's MarshalJSON/GobEncode for that).
type observableFile struct {
	Observables map[string]map[string][]float64 `json:"observables"`
}

// loadObservables reads path and builds one *obs.Obs per named entry.
func loadObservables(path string) (map[string]*obs.Obs, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	var file observableFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse input file: %w", err)
	}
	if len(file.Observables) == 0 {
		return nil, fmt.Errorf("input file has no observables")
	}

	result := make(map[string]*obs.Obs, len(file.Observables))
	for name, samples := range file.Observables {
		o, err := obs.NewObs(samples, nil)
		if err != nil {
			return nil, fmt.Errorf("observable %q: %w", name, err)
		}
		result[name] = o
	}
	return result, nil
}

// sortedNames returns the keys of named in stable alphabetical order, so
// GammaMethod runs, warnings and plot files follow a fixed order rather than
// Go's randomized map iteration.
func sortedNames(named map[string]*obs.Obs) []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// gammaOptions builds the internal/gamma.Option slice from the gamma
// command's flags.
func gammaOptions(s, tauExp, nSigma float64, fft bool) []gamma.Option {
	return []gamma.Option{
		gamma.WithS(s),
		gamma.WithTauExp(tauExp),
		gamma.WithNSigma(nSigma),
		gamma.WithFFT(fft),
	}
}
