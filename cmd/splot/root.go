package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// app carries the I/O streams and logger shared by all subcommands.
type app struct {
	stdin   io.Reader
	stdout  io.Writer
	stderr  io.Writer
	verbose bool
	log     *slog.Logger
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdin: stdin, stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "splot",
		Short: "Lay out S-parameter traces as chart geometry",
		Long: `splot derives a component (dB, phase, group delay, ...) from measured
S-parameter series and computes axis paths, ticks, scales and smooth trace
paths for a viewport. Output is JSON or a standalone SVG.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log debug diagnostics to stderr")

	root.AddCommand(
		newPlotCmd(a),
		newTDRCmd(a),
		newUnitsCmd(a),
	)
	return root
}
