package main

import (
	"fmt"
	"image/color"
	"io"

	"github.com/cwbudde/algo-sparam/plot"
	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgsvg"
	"honnef.co/go/curve"
)

const (
	tickSize  = 5
	fontSize  = 10
	legendGap = 12
)

var zeroColor = color.Gray{Y: 0x99}

// svgCanvas draws viewport pixels (origin top left, y down) onto a vgsvg
// canvas, whose origin is bottom left.
type svgCanvas struct {
	*vgsvg.Canvas
	height float64
	face   font.Face
}

func (c *svgCanvas) pt(x, y float64) vg.Point {
	return vg.Point{X: vg.Length(x), Y: vg.Length(c.height - y)}
}

func (c *svgCanvas) line(x0, y0, x1, y1 float64) {
	var p vg.Path
	p.Move(c.pt(x0, y0))
	p.Line(c.pt(x1, y1))
	c.Stroke(p)
}

// path converts a path in viewport pixels.
func (c *svgCanvas) path(bp curve.BezPath) vg.Path {
	at := func(q curve.Point) vg.Point { return c.pt(q.X, q.Y) }
	var p vg.Path
	for _, el := range bp {
		switch el.Kind {
		case curve.MoveToKind:
			p.Move(at(el.P0))
		case curve.LineToKind:
			p.Line(at(el.P0))
		case curve.QuadToKind:
			p.QuadTo(at(el.P0), at(el.P1))
		case curve.CubicToKind:
			p.CubeTo(at(el.P0), at(el.P1), at(el.P2))
		case curve.ClosePathKind:
			p.Close()
		}
	}
	return p
}

// text draws s with its baseline at y. align is 0 for left, 0.5 for
// centered and 1 for right aligned text.
func (c *svgCanvas) text(x, y float64, s string, align float64) {
	w := float64(c.face.Width(s))
	c.FillString(c.face, c.pt(x-align*w, y), s)
}

// writeSVG renders g as a standalone SVG document. Axis and zero lines are
// placed from the insets and scales; plot paths are already in viewport
// pixels.
func writeSVG(w io.Writer, g *plot.Geometry, vp plot.ViewPort, s plot.AxisSettings, title string) error {
	c := &svgCanvas{
		Canvas: vgsvg.New(vg.Length(vp.X), vg.Length(vp.Y)),
		height: vp.Y,
		face:   font.DefaultCache.Lookup(gplot.DefaultFont, vg.Points(fontSize)),
	}

	xLo, xHi := s.InsetLeft, vp.X-s.InsetRight
	yLo, yHi := s.InsetTop, vp.Y-s.InsetBottom

	c.SetColor(color.Black)
	c.SetLineWidth(1)
	c.line(xLo, yLo, xLo, yHi)
	c.line(xLo, yHi, xHi, yHi)
	for _, t := range g.TicksY {
		c.line(xLo-tickSize, t.Offset, xLo, t.Offset)
		c.text(xLo-2*tickSize, t.Offset+fontSize*0.35, t.Text, 1)
	}
	for _, t := range g.TicksX {
		c.line(t.Offset, yHi, t.Offset, yHi+tickSize)
		c.text(t.Offset, yHi+tickSize+fontSize, t.Text, 0.5)
	}

	if title != "" {
		c.text(xLo, yLo/2+fontSize*0.35, title, 0)
	}

	if g.ZeroPath != "" {
		y0 := g.YScale.Apply(0)
		c.SetColor(zeroColor)
		c.SetLineDash([]vg.Length{4, 3}, 0)
		c.line(xLo, y0, xHi, y0)
		c.SetLineDash(nil, 0)
	}

	c.SetLineWidth(1.5)
	legendY := yLo + fontSize
	for i, p := range g.PlotPaths {
		c.SetColor(plotutil.Color(i))
		if len(p.Curve) > 0 {
			c.Stroke(c.path(p.Curve))
		}
		if p.Name == "" {
			continue
		}
		c.line(xHi-legendGap*2, legendY-fontSize*0.35, xHi-legendGap, legendY-fontSize*0.35)
		c.text(xHi-legendGap*2-4, legendY, p.Name, 1)
		legendY += fontSize + 4
	}

	if _, err := c.WriteTo(w); err != nil {
		return fmt.Errorf("write svg: %w", err)
	}
	return nil
}
