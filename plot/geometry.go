package plot

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/cwbudde/algo-sparam/sparam"
	"github.com/cwbudde/algo-sparam/units"
	"github.com/dustin/go-humanize"
	"honnef.co/go/curve"
)

// Geometry is everything a chart needs to draw one frame.
//
// For an empty input only the axis paths, scales and nothing else are set:
// ticks and plot paths are nil, ZeroPath is empty and Limits is nil.
type Geometry struct {
	YAxisPath string       `json:"yAxisPath"`
	XAxisPath string       `json:"xAxisPath"`
	TicksY    []Tick       `json:"ticksY"`
	TicksX    []Tick       `json:"ticksX"`
	ZeroPath  string       `json:"zeroPath,omitempty"`
	PlotPaths []SeriesPath `json:"plotPaths"`
	YScale    LinearScale  `json:"yScale"`
	XScale    LinearScale  `json:"xScale"`
	Limits    *Limits      `json:"limits"`
}

// SeriesPath is the drawn path of one trace together with the data points
// it was built from (in data units, not pixels).
type SeriesPath struct {
	Name     string        `json:"name,omitempty"`
	Path     string        `json:"path"`
	PathData []curve.Point `json:"pathData"`
	// Curve is Path before serialization, in viewport pixels.
	Curve curve.BezPath `json:"-"`
}

// MarshalJSON writes PathData points as {"x":..,"y":..}; coordinates that
// JSON cannot represent (such as -Inf dB) become null.
func (p SeriesPath) MarshalJSON() ([]byte, error) {
	type point struct {
		X any `json:"x"`
		Y any `json:"y"`
	}
	data := make([]point, len(p.PathData))
	for i, pt := range p.PathData {
		data[i] = point{X: finiteOrNil(pt.X), Y: finiteOrNil(pt.Y)}
	}
	return json.Marshal(struct {
		Name     string  `json:"name,omitempty"`
		Path     string  `json:"path"`
		PathData []point `json:"pathData"`
	}{p.Name, p.Path, data})
}

func finiteOrNil(v float64) any {
	if !finite(v) {
		return nil
	}
	return v
}

// SeriesError identifies the input series that aborted a build.
type SeriesError struct {
	Index int
	Name  string
	Err   error
}

func (e *SeriesError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("plot: series %d (%s): %v", e.Index, e.Name, e.Err)
	}
	return fmt.Sprintf("plot: series %d: %v", e.Index, e.Err)
}

func (e *SeriesError) Unwrap() error {
	return e.Err
}

// Labels renders tick text for each axis. A nil func falls back to the
// shortest decimal form of the value.
type Labels struct {
	X func(float64) string
	Y func(float64) string
}

// Build derives the selected quantity for every series and lays the result
// out in a viewport of size vp.
//
// Frequencies are normalized to s.PlotFreqUnit first. The call fails as a
// whole on the first invalid series; errors from individual series are
// wrapped in a *SeriesError.
func Build(series []sparam.Series, q sparam.Quantity, vp ViewPort, s AxisSettings) (*Geometry, error) {
	if !q.Valid() {
		return nil, fmt.Errorf("plot: %w: %v", sparam.ErrUnknownQuantity, q)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	traces := make([]Trace, 0, len(series))
	for i, ser := range series {
		d, err := sparam.Decorate(ser, s.PlotFreqUnit)
		if err != nil {
			return nil, &SeriesError{Index: i, Name: ser.Name, Err: err}
		}
		y, err := d.Values(q)
		if err != nil {
			return nil, &SeriesError{Index: i, Name: ser.Name, Err: err}
		}
		traces = append(traces, Trace{Name: ser.Name, X: d.Freq, Y: y})
	}

	unit := s.PlotFreqUnit
	return BuildTraces(traces, vp, s, Labels{
		X: func(v float64) string {
			text, _ := units.Format(v, unit, 3)
			return text
		},
		Y: quantityLabel(q),
	})
}

func quantityLabel(q sparam.Quantity) func(float64) string {
	if q == sparam.QuantityGroupDelay {
		return func(v float64) string { return humanize.SIWithDigits(v, 2, "s") }
	}
	return func(v float64) string { return humanize.FtoaWithDigits(v, 3) }
}

// BuildTraces lays out already-derived traces. It is the geometry half of
// Build and is used directly for data that is not frequency based, such as
// time-domain responses.
func BuildTraces(traces []Trace, vp ViewPort, s AxisSettings, labels Labels) (*Geometry, error) {
	if err := vp.Validate(); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	for i, tr := range traces {
		if len(tr.X) != len(tr.Y) {
			return nil, &SeriesError{
				Index: i,
				Name:  tr.Name,
				Err:   fmt.Errorf("%w: %d x values, %d y values", sparam.ErrMalformedSeries, len(tr.X), len(tr.Y)),
			}
		}
	}

	xLo, xHi := s.InsetLeft, vp.X-s.InsetRight
	yLo, yHi := s.InsetTop, vp.Y-s.InsetBottom

	var yAxis, xAxis curve.BezPath
	yAxis.MoveTo(curve.Pt(0, yLo))
	yAxis.LineTo(curve.Pt(0, yHi))
	xAxis.MoveTo(curve.Pt(xLo, 0))
	xAxis.LineTo(curve.Pt(xHi, 0))

	geom := &Geometry{
		YAxisPath: pathString(yAxis, s.Precision),
		XAxisPath: pathString(xAxis, s.Precision),
	}

	lim, ok := ComputeLimits(traces)
	if !ok {
		geom.YScale = NewLinearScale(0, vp.Y, yHi, yLo)
		geom.XScale = NewLinearScale(0, vp.X, xLo, xHi)
		return geom, nil
	}

	yScale := NewLinearScale(lim.YMin, lim.YMax, yHi, yLo)
	xScale := NewLinearScale(lim.XMin, lim.XMax, xLo, xHi)
	geom.YScale = yScale
	geom.XScale = xScale
	geom.Limits = &lim

	geom.TicksY = Ticks(lim.YMin, lim.YMax, s.YTicks, yScale, labels.Y)
	geom.TicksX = Ticks(lim.XMin, lim.XMax, s.XTicks, xScale, labels.X)

	if lim.StraddlesZero() {
		y0 := yScale.Apply(0)
		var zero curve.BezPath
		zero.MoveTo(curve.Pt(0, y0))
		zero.LineTo(curve.Pt(vp.X-s.InsetRight-s.InsetLeft, y0))
		geom.ZeroPath = pathString(zero, s.Precision)
	}

	geom.PlotPaths = make([]SeriesPath, len(traces))
	for i, tr := range traces {
		data := make([]curve.Point, len(tr.X))
		pixels := make([]curve.Point, len(tr.X))
		for j := range tr.X {
			data[j] = curve.Pt(tr.X[j], tr.Y[j])
			// A collapsed scale maps every value, even -Inf, to its
			// midpoint, so undefined samples are judged on the data.
			if !finite(tr.X[j]) || !finite(tr.Y[j]) {
				pixels[j] = curve.Pt(math.NaN(), math.NaN())
				continue
			}
			pixels[j] = curve.Pt(xScale.Apply(tr.X[j]), yScale.Apply(tr.Y[j]))
		}
		path := monotonePath(pixels)
		geom.PlotPaths[i] = SeriesPath{
			Name:     tr.Name,
			Path:     pathString(path, s.Precision),
			PathData: data,
			Curve:    path,
		}
	}

	return geom, nil
}

// pathString serializes p as SVG path data. A positive precision rounds
// every coordinate to that many fractional digits first.
func pathString(p curve.BezPath, precision int) string {
	if precision > 0 {
		scale := math.Pow10(precision)
		round := func(pt curve.Point) curve.Point {
			return curve.Pt(roundTo(pt.X, scale), roundTo(pt.Y, scale))
		}
		for i := range p {
			p[i].P0 = round(p[i].P0)
			p[i].P1 = round(p[i].P1)
			p[i].P2 = round(p[i].P2)
		}
	}
	return p.SVG(curve.SVGOptions{})
}

func roundTo(v, scale float64) float64 {
	r := math.Round(v*scale) / scale
	if r == 0 {
		return 0
	}
	return r
}
