package plot

import (
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/cwbudde/algo-sparam/internal/testutil"
	"github.com/cwbudde/algo-sparam/sparam"
	"github.com/cwbudde/algo-sparam/units"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"honnef.co/go/curve"
)

var testViewPort = ViewPort{X: 800, Y: 400}

func testSettings() AxisSettings {
	return ApplyOptions(
		WithInsets(10, 20, 30, 40),
		WithTicks(4, 4),
		WithPlotUnit(units.GHz),
	)
}

// realSeries builds a series whose real parts are re, on a 1..n GHz grid.
func realSeries(name string, re ...float64) sparam.Series {
	s := sparam.Series{Name: name, Unit: units.GHz}
	for i, v := range re {
		s.Freq = append(s.Freq, float64(i+1))
		s.S = append(s.S, sparam.Sample{Re: v})
	}
	return s
}

func TestBuildEmptyInput(t *testing.T) {
	geom, err := Build(nil, sparam.QuantityDB, testViewPort, testSettings())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	if geom.YAxisPath != "M0,10 L0,380" {
		t.Fatalf("YAxisPath=%q", geom.YAxisPath)
	}
	if geom.XAxisPath != "M30,0 L760,0" {
		t.Fatalf("XAxisPath=%q", geom.XAxisPath)
	}
	if geom.TicksY != nil || geom.TicksX != nil {
		t.Fatalf("expected nil ticks, got %v / %v", geom.TicksY, geom.TicksX)
	}
	if geom.ZeroPath != "" {
		t.Fatalf("expected no zero path, got %q", geom.ZeroPath)
	}
	if geom.PlotPaths != nil || geom.Limits != nil {
		t.Fatalf("expected nil plot paths and limits")
	}

	testutil.RequireNearlyEqual(t, geom.XScale.Apply(0), 30, 0)
	testutil.RequireNearlyEqual(t, geom.XScale.Apply(800), 760, 0)
	testutil.RequireNearlyEqual(t, geom.YScale.Apply(0), 380, 0)
	testutil.RequireNearlyEqual(t, geom.YScale.Apply(400), 10, 0)
}

func TestBuildGlobalLimitsAndZeroLine(t *testing.T) {
	series := []sparam.Series{
		realSeries("a", -2, 3, 0.5),
		realSeries("b", -5, 1),
	}

	geom, err := Build(series, sparam.QuantityRe, testViewPort, testSettings())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	want := Limits{YMin: -5, YMax: 3, XMin: 1, XMax: 3}
	if d := cmp.Diff(&want, geom.Limits); d != "" {
		t.Fatalf("limits mismatch (-want +got):\n%s", d)
	}

	// yScale(0) over [-5, 3] -> [380, 10] is 148.75; width is 800-40-30.
	if geom.ZeroPath != "M0,148.75 L730,148.75" {
		t.Fatalf("ZeroPath=%q", geom.ZeroPath)
	}

	if len(geom.PlotPaths) != 2 {
		t.Fatalf("got %d plot paths, want 2", len(geom.PlotPaths))
	}
	wantData := []curve.Point{curve.Pt(1, -5), curve.Pt(2, 1)}
	if d := cmp.Diff(wantData, geom.PlotPaths[1].PathData); d != "" {
		t.Fatalf("pathData mismatch (-want +got):\n%s", d)
	}
	if geom.PlotPaths[0].Name != "a" || geom.PlotPaths[1].Name != "b" {
		t.Fatalf("series names not preserved: %+v", geom.PlotPaths)
	}
	// Two points draw a straight segment.
	if geom.PlotPaths[1].Path != "M30,380 L395,102.5" {
		t.Fatalf("Path=%q", geom.PlotPaths[1].Path)
	}
}

func TestBuildNoZeroLineWhenDomainIsOneSided(t *testing.T) {
	geom, err := Build([]sparam.Series{realSeries("", 1, 2, 3)}, sparam.QuantityRe, testViewPort, testSettings())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if geom.ZeroPath != "" {
		t.Fatalf("expected no zero path, got %q", geom.ZeroPath)
	}
}

func TestBuildTickCounts(t *testing.T) {
	s := testSettings()
	s.XTicks = 3
	s.YTicks = 6

	geom, err := Build([]sparam.Series{realSeries("", -1, 2, 5, 2)}, sparam.QuantityRe, testViewPort, s)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if len(geom.TicksX) != 4 {
		t.Fatalf("got %d x ticks, want 4", len(geom.TicksX))
	}
	if len(geom.TicksY) != 7 {
		t.Fatalf("got %d y ticks, want 7", len(geom.TicksY))
	}

	labels := make([]float64, len(geom.TicksX))
	offsets := make([]float64, len(geom.TicksX))
	for i, tk := range geom.TicksX {
		labels[i] = tk.Label
		offsets[i] = tk.Offset
	}
	opt := cmpopts.EquateApprox(0, 1e-9)
	if d := cmp.Diff([]float64{1, 2, 3, 4}, labels, opt); d != "" {
		t.Fatalf("x labels mismatch (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]float64{30, 30 + 730.0/3, 30 + 2*730.0/3, 760}, offsets, opt); d != "" {
		t.Fatalf("x offsets mismatch (-want +got):\n%s", d)
	}
	if geom.TicksX[0].Text != "1 GHz" || geom.TicksX[3].Text != "4 GHz" {
		t.Fatalf("x tick text = %q..%q", geom.TicksX[0].Text, geom.TicksX[3].Text)
	}
}

func TestBuildYTicksSpanDomain(t *testing.T) {
	geom, err := Build([]sparam.Series{realSeries("", -2, 3), realSeries("", -5, 1)}, sparam.QuantityRe, testViewPort, testSettings())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if len(geom.TicksY) != 5 {
		t.Fatalf("got %d y ticks, want 5", len(geom.TicksY))
	}
	first, last := geom.TicksY[0], geom.TicksY[4]
	if first.Label != -5 || last.Label != 3 {
		t.Fatalf("tick span [%v, %v], want [-5, 3]", first.Label, last.Label)
	}
	if first.Offset != 380 || last.Offset != 10 {
		t.Fatalf("tick offsets [%v, %v], want [380, 10]", first.Offset, last.Offset)
	}
	for i := 1; i < len(geom.TicksY); i++ {
		testutil.RequireNearlyEqual(t, geom.TicksY[i].Label-geom.TicksY[i-1].Label, 2, 1e-12)
	}
}

func TestBuildNormalizesFrequencyUnit(t *testing.T) {
	s := sparam.Series{
		Freq: []float64{100, 200, 300},
		Unit: units.MHz,
		S:    []sparam.Sample{{Re: 1}, {Re: 0.5}, {Re: 0.25}},
	}
	geom, err := Build([]sparam.Series{s}, sparam.QuantityMag, testViewPort, testSettings())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	testutil.RequireNearlyEqual(t, geom.Limits.XMin, 0.1, 1e-12)
	testutil.RequireNearlyEqual(t, geom.Limits.XMax, 0.3, 1e-12)
}

func TestBuildMinusInfDecibelsSplitsPath(t *testing.T) {
	s := realSeries("refl", 1, 0.5, 0, 0.25, 0.1)

	geom, err := Build([]sparam.Series{s}, sparam.QuantityDB, testViewPort, testSettings())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if !math.IsInf(geom.PlotPaths[0].PathData[2].Y, -1) {
		t.Fatalf("pathData must keep -Inf, got %v", geom.PlotPaths[0].PathData[2])
	}
	testutil.RequireNearlyEqual(t, geom.Limits.YMax, 0, dbEps)
	testutil.RequireNearlyEqual(t, geom.Limits.YMin, -20, dbEps)

	path := geom.PlotPaths[0].Path
	if strings.Count(path, "M") != 2 {
		t.Fatalf("expected two subpaths around the -Inf sample: %q", path)
	}
	if strings.Contains(path, "NaN") || strings.Contains(path, "Inf") {
		t.Fatalf("path contains non-finite coordinates: %q", path)
	}

	raw, err := json.Marshal(geom)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if !strings.Contains(string(raw), `{"x":3,"y":null}`) {
		t.Fatalf("-Inf point not encoded as null: %s", raw)
	}
}

func TestBuildAllZeroMagnitudeDrawsNothing(t *testing.T) {
	geom, err := Build([]sparam.Series{realSeries("open", 0, 0, 0)}, sparam.QuantityDB, testViewPort, testSettings())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	sp := geom.PlotPaths[0]
	if sp.Path != "" {
		t.Fatalf("path=%q want empty", sp.Path)
	}
	if len(sp.PathData) != 3 {
		t.Fatalf("pathData length=%d want=3", len(sp.PathData))
	}
	for i, pt := range sp.PathData {
		if !math.IsInf(pt.Y, -1) {
			t.Fatalf("pathData[%d]=%v want -Inf", i, pt)
		}
	}
}

func TestBuildTracesSkipsNonFiniteOnCollapsedDomain(t *testing.T) {
	traces := []Trace{
		{Name: "flat", X: []float64{1, 2, 3}, Y: []float64{5, 5, 5}},
		{Name: "gap", X: []float64{1, 2, 3}, Y: []float64{math.NaN(), 5, math.Inf(1)}},
	}
	geom, err := BuildTraces(traces, testViewPort, testSettings(), Labels{})
	if err != nil {
		t.Fatalf("BuildTraces error: %v", err)
	}

	if got := geom.PlotPaths[0].Path; strings.Count(got, "M") != 1 {
		t.Fatalf("flat trace path=%q want one subpath", got)
	}
	// Only the middle sample is drawable: a lone point.
	if got := geom.PlotPaths[1].Path; got != "M395,195 Z" {
		t.Fatalf("gap trace path=%q want a single point", got)
	}
}

func TestBuildScaleMonotonicity(t *testing.T) {
	geom, err := Build([]sparam.Series{realSeries("", -3, 7, 2)}, sparam.QuantityRe, testViewPort, testSettings())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	xs := make([]float64, 0, 11)
	ys := make([]float64, 0, 11)
	for i := 0; i <= 10; i++ {
		xs = append(xs, geom.XScale.Apply(1+0.2*float64(i)))
		ys = append(ys, geom.YScale.Apply(-3+float64(i)))
	}
	testutil.RequireMonotonic(t, xs, true)
	testutil.RequireMonotonic(t, ys, false)
}

func TestBuildIsIdempotent(t *testing.T) {
	series := []sparam.Series{realSeries("a", 0.1, 0.7, 0.3, 0.9)}
	a, err := Build(series, sparam.QuantityDeg, testViewPort, testSettings())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	b, err := Build(series, sparam.QuantityDeg, testViewPort, testSettings())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if d := cmp.Diff(a, b); d != "" {
		t.Fatalf("repeated builds differ:\n%s", d)
	}
}

func TestBuildMalformedSeries(t *testing.T) {
	bad := sparam.Series{Name: "bad", Freq: []float64{1, 2}, Unit: units.GHz, S: []sparam.Sample{{Re: 1}}}

	geom, err := Build([]sparam.Series{realSeries("ok", 1, 2), bad}, sparam.QuantityRe, testViewPort, testSettings())
	if geom != nil {
		t.Fatal("expected no geometry on error")
	}
	if !errors.Is(err, sparam.ErrMalformedSeries) {
		t.Fatalf("err=%v want ErrMalformedSeries", err)
	}
	var serr *SeriesError
	if !errors.As(err, &serr) {
		t.Fatalf("err=%T want *SeriesError", err)
	}
	if serr.Index != 1 || serr.Name != "bad" {
		t.Fatalf("SeriesError=%+v", serr)
	}
}

func TestBuildInvalidInputs(t *testing.T) {
	ok := []sparam.Series{realSeries("", 1, 2)}

	if _, err := Build(ok, sparam.Quantity(0), testViewPort, testSettings()); !errors.Is(err, sparam.ErrUnknownQuantity) {
		t.Fatalf("quantity: err=%v", err)
	}

	s := testSettings()
	s.PlotFreqUnit = "lightyear"
	if _, err := Build(ok, sparam.QuantityRe, testViewPort, s); !errors.Is(err, units.ErrInvalidUnit) {
		t.Fatalf("plot unit: err=%v", err)
	}

	badUnit := realSeries("", 1, 2)
	badUnit.Unit = "Ghz"
	if _, err := Build([]sparam.Series{badUnit}, sparam.QuantityRe, testViewPort, testSettings()); !errors.Is(err, units.ErrInvalidUnit) {
		t.Fatalf("series unit: err=%v", err)
	}

	if _, err := Build(ok, sparam.QuantityRe, ViewPort{X: 0, Y: 100}, testSettings()); !errors.Is(err, ErrInvalidViewPort) {
		t.Fatalf("viewport: err=%v", err)
	}

	s = testSettings()
	s.YTicks = 0
	if _, err := Build(ok, sparam.QuantityRe, testViewPort, s); !errors.Is(err, ErrInvalidSettings) {
		t.Fatalf("ticks: err=%v", err)
	}
}

func TestBuildTracesRejectsRaggedTrace(t *testing.T) {
	_, err := BuildTraces([]Trace{{X: []float64{1, 2}, Y: []float64{1}}}, testViewPort, testSettings(), Labels{})
	if !errors.Is(err, sparam.ErrMalformedSeries) {
		t.Fatalf("err=%v want ErrMalformedSeries", err)
	}
}

func TestBuildGroupDelayLabels(t *testing.T) {
	freq := testutil.LinearGrid(1e9, 2e9, 11)
	s := sparam.Series{Unit: units.Hz, Freq: freq}
	for _, c := range testutil.DelayLine(freq, 2e-9) {
		s.S = append(s.S, sparam.FromComplex(c))
	}

	geom, err := Build([]sparam.Series{s}, sparam.QuantityGroupDelay, testViewPort, testSettings())
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	testutil.RequireNearlyEqual(t, geom.Limits.YMin, 2e-9, 1e-18)
	if got := geom.TicksY[0].Text; !strings.HasSuffix(got, " ns") {
		t.Fatalf("tick text %q, want nanoseconds", got)
	}
}

func TestApplyOptions(t *testing.T) {
	s := ApplyOptions(WithInsets(-1, 5, -1, 7), WithTicks(0, 3), WithPrecision(2), nil)
	def := DefaultAxisSettings()

	if s.InsetTop != def.InsetTop || s.InsetBottom != 5 || s.InsetLeft != def.InsetLeft || s.InsetRight != 7 {
		t.Fatalf("insets=%+v", s)
	}
	if s.XTicks != def.XTicks || s.YTicks != 3 || s.Precision != 2 {
		t.Fatalf("ticks/precision=%+v", s)
	}
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate error: %v", err)
	}
}

func TestBuildPrecision(t *testing.T) {
	s := testSettings()
	s.Precision = 2
	geom, err := Build([]sparam.Series{realSeries("", -2, 1)}, sparam.QuantityRe, ViewPort{X: 333, Y: 333}, s)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	for _, p := range []string{geom.ZeroPath, geom.PlotPaths[0].Path} {
		for _, field := range strings.FieldsFunc(p, func(r rune) bool { return r == ' ' || r == ',' }) {
			field = strings.TrimLeft(field, "MLCZ")
			if i := strings.IndexByte(field, '.'); i >= 0 && len(field)-i-1 > 2 {
				t.Fatalf("coordinate %q has more than 2 fractional digits in %q", field, p)
			}
		}
	}
}
