package main

import (
	"fmt"

	"github.com/cwbudde/algo-sparam/plot"
	"github.com/cwbudde/algo-sparam/timedomain"
	"github.com/cwbudde/algo-sparam/units"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

type tdrFlags struct {
	layoutFlags
	window   string
	beta     float64
	padding  int
	response string
}

func newTDRCmd(a *app) *cobra.Command {
	var f tdrFlags

	cmd := &cobra.Command{
		Use:   "tdr [flags] request.json",
		Short: "Compute chart geometry for the time-domain response of every series",
		Long: `tdr converts each series into its low-pass impulse or step response
and lays the responses out like the plot command. Series must be sampled on
a uniform harmonic frequency grid.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTDR(&f, args[0])
		},
	}

	f.register(cmd)
	fs := cmd.Flags()
	fs.StringVar(&f.window, "window", "hann", "Spectral window: rectangular, hann, hamming, blackman, kaiser")
	fs.Float64Var(&f.beta, "beta", timedomain.DefaultConfig().KaiserBeta, "Kaiser window beta")
	fs.IntVar(&f.padding, "padding", 1, "Zero-padding factor")
	fs.StringVar(&f.response, "response", "impulse", "Response to plot: impulse, step")

	return cmd
}

func (a *app) runTDR(f *tdrFlags, path string) error {
	if err := f.validateFormat(); err != nil {
		return err
	}
	w, err := timedomain.ParseWindow(f.window)
	if err != nil {
		return err
	}
	if f.response != "impulse" && f.response != "step" {
		return fmt.Errorf("invalid response: %s (must be impulse or step)", f.response)
	}

	req, err := a.readRequest(path)
	if err != nil {
		return err
	}

	traces := make([]plot.Trace, len(req.Plots))
	for i, s := range req.Plots {
		if err := s.Validate(); err != nil {
			return &plot.SeriesError{Index: i, Name: s.Name, Err: err}
		}
		freqHz, err := units.Normalize(s.Freq, units.Hz, s.Unit)
		if err != nil {
			return &plot.SeriesError{Index: i, Name: s.Name, Err: err}
		}
		resp, err := timedomain.Transform(freqHz, s.S,
			timedomain.WithWindow(w),
			timedomain.WithKaiserBeta(f.beta),
			timedomain.WithPadding(f.padding),
		)
		if err != nil {
			return &plot.SeriesError{Index: i, Name: s.Name, Err: err}
		}
		a.log.Debug("transformed series", "index", i, "name", s.Name, "samples", resp.Len())

		y := resp.Impulse
		if f.response == "step" {
			y = resp.Step
		}
		traces[i] = plot.Trace{Name: s.Name, X: resp.Time, Y: y}
	}

	settings := f.settings()
	geom, err := plot.BuildTraces(traces, f.viewPort(), settings, plot.Labels{
		X: func(v float64) string { return humanize.SIWithDigits(v, 2, "s") },
		Y: func(v float64) string { return humanize.FtoaWithDigits(v, 3) },
	})
	if err != nil {
		return err
	}

	if err := a.emitGeometry(&f.layoutFlags, geom, settings, f.response); err != nil {
		return fmt.Errorf("write geometry: %w", err)
	}
	return nil
}
