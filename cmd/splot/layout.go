package main

import (
	"fmt"
	"io"

	"github.com/cwbudde/algo-sparam/plot"
	"github.com/spf13/cobra"
)

// layoutFlags are the viewport and axis flags shared by plot and tdr.
type layoutFlags struct {
	width, height float64
	insetTop      float64
	insetBottom   float64
	insetLeft     float64
	insetRight    float64
	xTicks        int
	yTicks        int
	precision     int
	format        string
	output        string
	pretty        bool
}

func (l *layoutFlags) register(cmd *cobra.Command) {
	def := plot.DefaultAxisSettings()

	fs := cmd.Flags()
	fs.Float64Var(&l.width, "width", 800, "Viewport width in pixels")
	fs.Float64Var(&l.height, "height", 400, "Viewport height in pixels")
	fs.Float64Var(&l.insetTop, "inset-top", def.InsetTop, "Top margin in pixels")
	fs.Float64Var(&l.insetBottom, "inset-bottom", def.InsetBottom, "Bottom margin in pixels")
	fs.Float64Var(&l.insetLeft, "inset-left", def.InsetLeft, "Left margin in pixels")
	fs.Float64Var(&l.insetRight, "inset-right", def.InsetRight, "Right margin in pixels")
	fs.IntVar(&l.xTicks, "xticks", def.XTicks, "Number of X tick intervals")
	fs.IntVar(&l.yTicks, "yticks", def.YTicks, "Number of Y tick intervals")
	fs.IntVar(&l.precision, "precision", 2, "Fractional digits in path data (0: exact)")
	fs.StringVar(&l.format, "format", "json", "Output format: json, svg")
	fs.StringVarP(&l.output, "output", "o", "", "Output file path (default: stdout)")
	fs.BoolVar(&l.pretty, "pretty", false, "Pretty-print JSON output")
}

func (l *layoutFlags) viewPort() plot.ViewPort {
	return plot.ViewPort{X: l.width, Y: l.height}
}

func (l *layoutFlags) validateFormat() error {
	switch l.format {
	case "json", "svg":
		return nil
	default:
		return fmt.Errorf("invalid format: %s (must be json or svg)", l.format)
	}
}

// settings builds axis settings from the flags. Tick counts are copied
// directly so that invalid values reach AxisSettings.Validate.
func (l *layoutFlags) settings(opts ...plot.Option) plot.AxisSettings {
	s := plot.ApplyOptions(append([]plot.Option{
		plot.WithInsets(l.insetTop, l.insetBottom, l.insetLeft, l.insetRight),
		plot.WithPrecision(l.precision),
	}, opts...)...)
	s.XTicks = l.xTicks
	s.YTicks = l.yTicks
	return s
}

func (a *app) emitGeometry(l *layoutFlags, g *plot.Geometry, s plot.AxisSettings, title string) error {
	return a.writeOutput(l.output, func(w io.Writer) error {
		if l.format == "svg" {
			return writeSVG(w, g, l.viewPort(), s, title)
		}
		return writeJSON(w, g, l.pretty)
	})
}
