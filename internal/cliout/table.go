// Package cliout renders Obs results as console tables, using a
// console-table library rather than hand-rolled column alignment.
package cliout

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/latticeqcd/goerrors/pkg/obs"
)

// SummaryRow renders one table row per ensemble of o with its window,
// tau_int and the observable's total dvalue, consumed only through the
// read-only accessors GammaMethod populates.
func SummaryRow(w io.Writer, name string, o *obs.Obs) error {
	table := tablewriter.NewTable(w)
	if err := table.Header("ensemble", "window", "tau_int", "dvalue"); err != nil {
		return err
	}

	for _, ensemble := range o.Ensembles() {
		row := []string{
			ensemble,
			fmt.Sprintf("%d", o.Window(ensemble)),
			fmt.Sprintf("%.4g", o.TauInt(ensemble)),
			fmt.Sprintf("%.4g", o.Dvalue()),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

// ObsTable renders a named collection of observables as a single table, one
// row per observable, with value, dvalue and ddvalue columns.
func ObsTable(w io.Writer, named map[string]*obs.Obs) error {
	table := tablewriter.NewTable(w)
	if err := table.Header("name", "value", "dvalue", "ddvalue"); err != nil {
		return err
	}

	for name, o := range named {
		row := []string{
			name,
			fmt.Sprintf("%g", o.Value()),
			fmt.Sprintf("%.4g", o.Dvalue()),
			fmt.Sprintf("%.4g", o.DDvalue()),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}
