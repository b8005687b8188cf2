// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package cli is the thin entrypoint wiring internal/version into
// internal/cobra before executing it.
package cli

import (
	"github.com/latticeqcd/goerrors/internal/cobra"
	"github.com/latticeqcd/goerrors/internal/version"
)

// RunCobra executes the Cobra-based CLI application.
func RunCobra() {
	info := version.Get()
	cobra.Version = info.Short()
	cobra.BuildTime = info.BuildDate
	cobra.Commit = info.GitCommit

	cobra.Execute()
}
