package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/cwbudde/algo-sparam/units"
	"github.com/spf13/cobra"
)

func newUnitsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "units",
		Short: "List the known frequency units",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.printUnits()
		},
	}
}

func (a *app) printUnits() error {
	tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Tag\tSymbol\tScale [Hz]\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(tw, "---\t------\t----------\n"); err != nil {
		return err
	}
	for _, u := range units.All() {
		f, err := u.Scale()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%g\n", u, u.Symbol(), f); err != nil {
			return err
		}
	}
	return tw.Flush()
}
