// Package plot turns S-parameter series into chart geometry: linear X/Y
// scales, axis and zero-reference paths, evenly spaced ticks, and one smooth
// monotone path per series.
//
// All output is in the scales' local pixel frame with screen orientation:
// larger Y values map to smaller pixel rows. Paths are SVG path data strings.
//
// # Usage
//
//	settings := plot.ApplyOptions(
//	    plot.WithInsets(20, 40, 60, 20),
//	    plot.WithTicks(10, 8),
//	    plot.WithPlotUnit(units.GHz),
//	)
//	geom, err := plot.Build(series, sparam.QuantityDB, plot.ViewPort{X: 800, Y: 400}, settings)
//
// Build never returns partial geometry: any malformed series, unknown unit or
// unknown quantity aborts the call. An empty series list is not an error; it
// yields axis paths only.
package plot
