// Package jsapi adapts the plotting functions to the JavaScript host API.
//
// Arguments arrive as JSON text (the bridge stringifies JS values) and
// results are built from map[string]any, []any, float64, string and nil
// only, so that syscall/js can convert them with js.ValueOf. Absent outputs
// are nil and surface as null.
package jsapi

import (
	"encoding/json"
	"fmt"

	"github.com/cwbudde/algo-sparam/plot"
	"github.com/cwbudde/algo-sparam/sparam"
	"github.com/cwbudde/algo-sparam/units"
)

// NormalizeFreq converts a JSON array of frequencies from unit in to unit
// out.
func NormalizeFreq(freqsJSON []byte, out, in string) ([]any, error) {
	var freqs []float64
	if err := json.Unmarshal(freqsJSON, &freqs); err != nil {
		return nil, fmt.Errorf("jsapi: frequencies: %w", err)
	}

	outUnit, err := units.Parse(out)
	if err != nil {
		return nil, err
	}
	inUnit, err := units.Parse(in)
	if err != nil {
		return nil, err
	}
	res, err := units.Normalize(freqs, outUnit, inUnit)
	if err != nil {
		return nil, err
	}
	return floats(res), nil
}

// SComponents decomposes a JSON array of {re, im} samples into the host's
// component object {sRe, sIm, sMag, sDb, sAngle, sDeg}.
func SComponents(samplesJSON []byte) (map[string]any, error) {
	var samples []sparam.Sample
	if err := json.Unmarshal(samplesJSON, &samples); err != nil {
		return nil, fmt.Errorf("jsapi: samples: %w", err)
	}
	return components(sparam.Decompose(samples)), nil
}

func components(c sparam.Components) map[string]any {
	return map[string]any{
		"sRe":    floats(c.Re),
		"sIm":    floats(c.Im),
		"sMag":   floats(c.Mag),
		"sDb":    floats(c.DB),
		"sAngle": floats(c.Angle),
		"sDeg":   floats(c.Deg),
	}
}

// PlotData builds the geometry for plots (a JSON array of series) showing
// quantity typ, in a viewport {x, y} with the given axis settings. Settings
// fields that are missing keep their defaults.
func PlotData(plotsJSON []byte, typ string, viewPortJSON, settingsJSON []byte) (map[string]any, error) {
	var series []sparam.Series
	if err := json.Unmarshal(plotsJSON, &series); err != nil {
		return nil, fmt.Errorf("jsapi: plots: %w", err)
	}
	var vp plot.ViewPort
	if err := json.Unmarshal(viewPortJSON, &vp); err != nil {
		return nil, fmt.Errorf("jsapi: viewport: %w", err)
	}
	settings := plot.DefaultAxisSettings()
	if len(settingsJSON) > 0 {
		if err := json.Unmarshal(settingsJSON, &settings); err != nil {
			return nil, fmt.Errorf("jsapi: axis settings: %w", err)
		}
	}

	q, err := sparam.ParseQuantity(typ)
	if err != nil {
		return nil, err
	}

	geom, err := plot.Build(series, q, vp, settings)
	if err != nil {
		return nil, err
	}
	return geometry(geom), nil
}

func geometry(g *plot.Geometry) map[string]any {
	out := map[string]any{
		"yAxisPath": g.YAxisPath,
		"xAxisPath": g.XAxisPath,
		"ticksY":    ticks(g.TicksY),
		"ticksX":    ticks(g.TicksX),
		"zeroPath":  nil,
		"plotPaths": nil,
		"yScale":    scale(g.YScale),
		"xScale":    scale(g.XScale),
		"limits":    nil,
	}
	if g.ZeroPath != "" {
		out["zeroPath"] = g.ZeroPath
	}
	if g.PlotPaths != nil {
		paths := make([]any, len(g.PlotPaths))
		for i, p := range g.PlotPaths {
			data := make([]any, len(p.PathData))
			for j, pt := range p.PathData {
				data[j] = map[string]any{"x": pt.X, "y": pt.Y}
			}
			paths[i] = map[string]any{
				"name":     p.Name,
				"path":     p.Path,
				"pathData": data,
			}
		}
		out["plotPaths"] = paths
	}
	if g.Limits != nil {
		out["limits"] = map[string]any{
			"yMin": g.Limits.YMin,
			"yMax": g.Limits.YMax,
			"xMin": g.Limits.XMin,
			"xMax": g.Limits.XMax,
		}
	}
	return out
}

func ticks(ts []plot.Tick) any {
	if ts == nil {
		return nil
	}
	out := make([]any, len(ts))
	for i, t := range ts {
		out[i] = map[string]any{"label": t.Label, "offset": t.Offset, "text": t.Text}
	}
	return out
}

func scale(s plot.LinearScale) map[string]any {
	return map[string]any{
		"domain": []any{s.Domain[0], s.Domain[1]},
		"range":  []any{s.Range[0], s.Range[1]},
	}
}

func floats(v []float64) []any {
	out := make([]any, len(v))
	for i, f := range v {
		out[i] = f
	}
	return out
}

// ErrorResult wraps err as the host's {error: "..."} object.
func ErrorResult(err error) map[string]any {
	return map[string]any{"error": err.Error()}
}
