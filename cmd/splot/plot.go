package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/cwbudde/algo-sparam/plot"
	"github.com/cwbudde/algo-sparam/report"
	"github.com/cwbudde/algo-sparam/sparam"
	"github.com/cwbudde/algo-sparam/units"
	"github.com/spf13/cobra"
)

type plotFlags struct {
	layoutFlags
	quantity string
	unit     string
	xlsx     string
}

func newPlotCmd(a *app) *cobra.Command {
	var f plotFlags

	cmd := &cobra.Command{
		Use:   "plot [flags] request.json",
		Short: "Compute chart geometry for one quantity of every series",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPlot(&f, args[0])
		},
	}

	f.register(cmd)
	names := make([]string, 0, len(sparam.Quantities()))
	for _, q := range sparam.Quantities() {
		names = append(names, q.String())
	}
	fs := cmd.Flags()
	fs.StringVarP(&f.quantity, "quantity", "q", "db", "Quantity to plot: "+strings.Join(names, ", "))
	fs.StringVar(&f.unit, "unit", "GHz", "Frequency unit of the X axis, or auto")
	fs.StringVar(&f.xlsx, "xlsx", "", "Also write all components to this xlsx workbook")

	return cmd
}

func (a *app) runPlot(f *plotFlags, path string) error {
	if err := f.validateFormat(); err != nil {
		return err
	}
	q, err := sparam.ParseQuantity(f.quantity)
	if err != nil {
		return err
	}

	req, err := a.readRequest(path)
	if err != nil {
		return err
	}

	unit, err := a.resolveUnit(f.unit, req)
	if err != nil {
		return err
	}
	settings := f.settings(plot.WithPlotUnit(unit))

	geom, err := plot.Build(req.Plots, q, f.viewPort(), settings)
	if err != nil {
		return err
	}
	a.log.Debug("built geometry",
		"quantity", q.String(),
		"unit", string(unit),
		"series", len(geom.PlotPaths),
	)

	if err := a.emitGeometry(&f.layoutFlags, geom, settings, q.Label()); err != nil {
		return fmt.Errorf("write geometry: %w", err)
	}

	if f.xlsx != "" {
		if err := a.writeWorkbook(f.xlsx, req, unit); err != nil {
			return err
		}
	}
	return nil
}

// resolveUnit parses the --unit flag; "auto" picks the largest unit in which
// the highest frequency of the request is at least 1.
func (a *app) resolveUnit(flag string, req *request) (units.Unit, error) {
	if strings.EqualFold(strings.TrimSpace(flag), "auto") {
		u := units.ForRange(req.maxFreqHz())
		a.log.Debug("picked plot unit", "unit", string(u))
		return u, nil
	}
	return units.Parse(flag)
}

func (a *app) writeWorkbook(path string, req *request, unit units.Unit) error {
	decorated := make([]sparam.Decorated, len(req.Plots))
	for i, s := range req.Plots {
		d, err := sparam.Decorate(s, unit)
		if err != nil {
			return &plot.SeriesError{Index: i, Name: s.Name, Err: err}
		}
		decorated[i] = d
	}

	if err := a.writeOutput(path, func(w io.Writer) error {
		return report.WriteWorkbook(w, decorated, unit)
	}); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	a.log.Info("wrote workbook", "path", path, "sheets", len(decorated))
	return nil
}
