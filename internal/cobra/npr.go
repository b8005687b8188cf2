// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package cobra

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/latticeqcd/goerrors/pkg/npr"
)

// nprTags lists the gamma-matrix structures Grid recognizes, in catalogue
// order, for the "goerrors npr --list" output.
var nprTags = []string{
	"Identity", "Gamma5",
	"GammaX", "GammaY", "GammaZ", "GammaT",
	"GammaXGamma5", "GammaYGamma5", "GammaZGamma5", "GammaTGamma5",
	"SigmaXT", "SigmaXY", "SigmaXZ", "SigmaYT", "SigmaYZ", "SigmaZT",
}

// NewNPRCommand creates the npr subcommand.
func NewNPRCommand() *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "npr [flags] <tag>",
		Short: "Print a lattice NPR gamma-matrix from the catalogue",
		Long: `Print the 4x4 complex gamma matrix identified by tag.

EXAMPLES:
  # List every recognized tag
  goerrors npr --list

  # Print the Dirac gamma5 matrix
  goerrors npr Gamma5

  # Print a sigma_{mu nu} structure
  goerrors npr SigmaXT`,
		Args: func(cmd *cobra.Command, args []string) error {
			if list {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				for _, tag := range nprTags {
					fmt.Println(tag)
				}
				return nil
			}
			return runNPR(args[0])
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "List the recognized gamma-matrix tags")

	return cmd
}

func runNPR(tag string) error {
	m, err := npr.Grid(tag)
	if err != nil {
		return err
	}

	rows, cols := m.Dims()
	table := tablewriter.NewTable(os.Stdout)
	header := make([]string, cols+1)
	header[0] = tag
	for j := 0; j < cols; j++ {
		header[j+1] = fmt.Sprintf("col %d", j)
	}
	if err := table.Header(header); err != nil {
		return err
	}

	for i := 0; i < rows; i++ {
		row := make([]string, cols+1)
		row[0] = fmt.Sprintf("row %d", i)
		for j := 0; j < cols; j++ {
			row[j+1] = fmt.Sprintf("%v", m.At(i, j))
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}
