// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package cobra

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/latticeqcd/goerrors/internal/cliout"
	"github.com/latticeqcd/goerrors/internal/config"
	"github.com/latticeqcd/goerrors/pkg/obs"
	"github.com/latticeqcd/goerrors/pkg/plotting"
)

// GammaOptions holds the flags for the gamma subcommand.
type GammaOptions struct {
	S       float64
	TauExp  float64
	NSigma  float64
	NoFFT   bool
	Format  string
	PlotDir string
}

// NewGammaCommand creates the gamma subcommand.
func NewGammaCommand() *cobra.Command {
	defaults := config.Default()
	opts := &GammaOptions{
		S:      defaults.Gamma.S,
		TauExp: defaults.Gamma.TauExp,
		NSigma: defaults.Gamma.NSigma,
		Format: defaults.Output.Format,
	}

	cmd := &cobra.Command{
		Use:   "gamma [flags] <input.json>",
		Short: "Run the Gamma method on named Monte-Carlo observables",
		Long: `Estimate the integrated autocorrelation time and inflated error of each
observable in a JSON input file using the automatic windowing procedure
(Wolff 2004).

The input file holds one entry per observable, each a map from replica name
to its raw Monte-Carlo sample series:

  {"observables": {"plaquette": {"ens1": [0.1, 0.2, ...]}}}

EXAMPLES:
  # Run with default window-selection parameters
  goerrors gamma data.json

  # Use the exponential-tail extrapolation instead of the S criterion
  goerrors gamma --tau-exp 4.2 --n-sigma 2 data.json

  # Write a JSON summary instead of a table
  goerrors gamma -f json data.json

  # Write rho/tau_int history plots alongside the table
  goerrors gamma --plot plots/ data.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGamma(opts, args[0])
		},
	}

	cmd.Flags().Float64Var(&opts.S, "s", opts.S, "Window-selection constant for the S criterion")
	cmd.Flags().Float64Var(&opts.TauExp, "tau-exp", opts.TauExp, "Tail-extrapolation time; 0 disables it in favor of the S criterion")
	cmd.Flags().Float64Var(&opts.NSigma, "n-sigma", opts.NSigma, "Threshold multiplier used with --tau-exp")
	cmd.Flags().BoolVar(&opts.NoFFT, "no-fft", false, "Use the direct O(N^2) autocorrelation sum instead of FFT")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", opts.Format, "Output format: table or json")
	cmd.Flags().StringVar(&opts.PlotDir, "plot", "", "Write rho/tau_int history plots to this directory")

	return cmd
}

func runGamma(opts *GammaOptions, inputFile string) error {
	observables, err := loadObservables(inputFile)
	if err != nil {
		return err
	}

	gammaOpts := gammaOptions(opts.S, opts.TauExp, opts.NSigma, !opts.NoFFT)
	for _, name := range sortedNames(observables) {
		o := observables[name]
		if err := o.GammaMethod(gammaOpts...); err != nil {
			return fmt.Errorf("observable %q: %w", name, err)
		}
		for _, warning := range o.Warnings() {
			fmt.Fprintf(os.Stderr, "warning: %s: %s\n", name, warning)
		}
	}

	if opts.PlotDir != "" {
		if err := writePlots(opts.PlotDir, observables); err != nil {
			return err
		}
	}

	switch opts.Format {
	case "json":
		return outputGammaJSON(os.Stdout, observables)
	default:
		return cliout.ObsTable(os.Stdout, observables)
	}
}

// writePlots renders a rho-history and tau_int-history chart per ensemble of
// every observable, named <dir>/<observable>-<ensemble>-{rho,tauint}.html.
func writePlots(dir string, observables map[string]*obs.Obs) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create plot directory: %w", err)
	}

	for _, name := range sortedNames(observables) {
		o := observables[name]
		for _, ensemble := range o.Ensembles() {
			rhoPath := filepath.Join(dir, fmt.Sprintf("%s-%s-rho.html", name, ensemble))
			if err := renderChartFile(rhoPath, plotting.RhoHistory(o, ensemble)); err != nil {
				return err
			}

			tauPath := filepath.Join(dir, fmt.Sprintf("%s-%s-tauint.html", name, ensemble))
			if err := renderChartFile(tauPath, plotting.TauIntHistory(o, ensemble)); err != nil {
				return err
			}
		}
	}
	return nil
}

func renderChartFile(path string, chart interface{ Render(io.Writer) error }) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create plot file: %w", err)
	}
	defer f.Close()
	if err := plotting.RenderHTML(f, chart); err != nil {
		return fmt.Errorf("failed to render plot: %w", err)
	}
	return nil
}

// gammaReport is the JSON summary shape for --format json, tagged with a
// fresh report ID per run.
type gammaReport struct {
	ReportID    string                `json:"report_id"`
	Observables map[string]obsSummary `json:"observables"`
}

type obsSummary struct {
	Value    float64            `json:"value"`
	Dvalue   float64            `json:"dvalue"`
	DDvalue  float64            `json:"ddvalue"`
	TauInt   map[string]float64 `json:"tau_int"`
	Window   map[string]int     `json:"window"`
	Warnings []string           `json:"warnings,omitempty"`
}

func outputGammaJSON(w io.Writer, observables map[string]*obs.Obs) error {
	report := gammaReport{
		ReportID:    uuid.NewString(),
		Observables: make(map[string]obsSummary, len(observables)),
	}

	for name, o := range observables {
		summary := obsSummary{
			Value:    o.Value(),
			Dvalue:   o.Dvalue(),
			DDvalue:  o.DDvalue(),
			TauInt:   make(map[string]float64),
			Window:   make(map[string]int),
			Warnings: o.Warnings(),
		}
		for _, ensemble := range o.Ensembles() {
			summary.TauInt[ensemble] = o.TauInt(ensemble)
			summary.Window[ensemble] = o.Window(ensemble)
		}
		report.Observables[name] = summary
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
