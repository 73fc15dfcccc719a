package plot

import "math"

// Limits is the bounding extent of all traces.
type Limits struct {
	YMin float64 `json:"yMin"`
	YMax float64 `json:"yMax"`
	XMin float64 `json:"xMin"`
	XMax float64 `json:"xMax"`
}

// Trace is one already-derived X/Y data series.
type Trace struct {
	Name string
	X    []float64
	Y    []float64
}

// ComputeLimits returns the global min/max of X and Y over all traces.
//
// Only finite values count, so a -Inf decibel sample cannot stretch the axis
// to infinity. A dimension without any finite value collapses to [0, 0]. ok
// is false when traces is empty.
func ComputeLimits(traces []Trace) (lim Limits, ok bool) {
	if len(traces) == 0 {
		return Limits{}, false
	}

	xMin, xMax := extent(math.Inf(1), math.Inf(-1), nil)
	yMin, yMax := xMin, xMax
	for _, tr := range traces {
		xMin, xMax = extent(xMin, xMax, tr.X)
		yMin, yMax = extent(yMin, yMax, tr.Y)
	}

	lim = Limits{YMin: yMin, YMax: yMax, XMin: xMin, XMax: xMax}
	if xMin > xMax {
		lim.XMin, lim.XMax = 0, 0
	}
	if yMin > yMax {
		lim.YMin, lim.YMax = 0, 0
	}
	return lim, true
}

func extent(lo, hi float64, values []float64) (float64, float64) {
	for _, v := range values {
		if !finite(v) {
			continue
		}
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// StraddlesZero reports whether the Y domain spans both signs.
func (l Limits) StraddlesZero() bool {
	return l.YMin < 0 && l.YMax > 0
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
