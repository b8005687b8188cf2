// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package cobra assembles the goerrors command-line tool, one file per
// subcommand, each exposing a NewXCommand factory rather than package-level
// command variables.
package cobra

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version, BuildTime and Commit are populated by internal/cli.RunCobra from
// internal/version before Execute runs.
var (
	Version   = "dev"
	BuildTime = "unknown"
	Commit    = "unknown"
)

var (
	verbose bool
	quiet   bool
)

// NewRootCommand assembles the goerrors command tree.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "goerrors",
		Short: "Gamma-method error analysis for Monte-Carlo observables",
		Long: `goerrors propagates statistical errors through derived observables
computed from Monte-Carlo samples, using the Gamma method (Wolff 2004) to
estimate integrated autocorrelation times and inflate naive standard errors
accordingly.

It reads named replica samples from a JSON file, runs the automatic
windowing procedure, and reports value(dvalue) summaries, tau_int histories,
and lattice NPR gamma-matrix lookups.`,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")

	rootCmd.AddCommand(
		NewGammaCommand(),
		NewNPRCommand(),
		NewVersionCommand(),
		NewCompletionCommand(rootCmd),
	)

	return rootCmd
}

// Execute runs the root command and reports failure on stderr, matching the
// teacher's internal/cobra.Execute.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
