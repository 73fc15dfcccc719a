package plot

import (
	"math"

	"honnef.co/go/curve"
)

// monotoneX appends a cubic spline through pts to path. The spline is
// monotone in y between neighbouring points as long as x is monotone (the
// Steffen method), so a trace never overshoots its samples.
//
// A lone point becomes a closed zero-length subpath so that renderers with
// round caps still show it.
type monotoneX struct {
	path   *curve.BezPath
	n      int
	x0, y0 float64
	x1, y1 float64
	t0     float64
}

func (m *monotoneX) point(x, y float64) {
	if m.n > 0 && x == m.x1 && y == m.y1 {
		return
	}

	t1 := math.NaN()
	switch m.n {
	case 0:
		m.n = 1
		m.path.MoveTo(curve.Pt(x, y))
	case 1:
		m.n = 2
	case 2:
		m.n = 3
		t1 = m.slope3(x, y)
		m.bezier(m.slope2(t1), t1)
	default:
		t1 = m.slope3(x, y)
		m.bezier(m.t0, t1)
	}

	m.x0, m.x1 = m.x1, x
	m.y0, m.y1 = m.y1, y
	m.t0 = t1
}

func (m *monotoneX) end() {
	switch m.n {
	case 1:
		m.path.ClosePath()
	case 2:
		m.path.LineTo(curve.Pt(m.x1, m.y1))
	case 3:
		m.bezier(m.t0, m.slope2(m.t0))
	}
	m.n = 0
}

// slope3 is the tangent at (x1, y1) given the next point (x2, y2).
func (m *monotoneX) slope3(x2, y2 float64) float64 {
	h0 := m.x1 - m.x0
	h1 := x2 - m.x1
	s0 := (m.y1 - m.y0) / nonZero(h0, h1)
	s1 := (y2 - m.y1) / nonZero(h1, h0)
	p := (s0*h1 + s1*h0) / (h0 + h1)
	t := (sign(s0) + sign(s1)) * math.Min(math.Min(math.Abs(s0), math.Abs(s1)), 0.5*math.Abs(p))
	if math.IsNaN(t) {
		return 0
	}
	return t
}

// slope2 is the one-sided tangent at an endpoint given the neighbour's t.
func (m *monotoneX) slope2(t float64) float64 {
	h := m.x1 - m.x0
	if h == 0 {
		return t
	}
	return (3*(m.y1-m.y0)/h - t) / 2
}

func (m *monotoneX) bezier(t0, t1 float64) {
	dx := (m.x1 - m.x0) / 3
	m.path.CubicTo(
		curve.Pt(m.x0+dx, m.y0+dx*t0),
		curve.Pt(m.x1-dx, m.y1-dx*t1),
		curve.Pt(m.x1, m.y1),
	)
}

// nonZero returns h, or a zero signed like other when h is zero, so a
// vertical step yields an infinite slope of the right sign.
func nonZero(h, other float64) float64 {
	if h != 0 {
		return h
	}
	if other < 0 {
		return math.Copysign(0, -1)
	}
	return 0
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// monotonePath builds the spline through pts in pixel space. Non-finite
// points break the trace into separate subpaths.
func monotonePath(pts []curve.Point) curve.BezPath {
	var path curve.BezPath
	m := monotoneX{path: &path}
	for _, pt := range pts {
		if pt.IsNaN() || pt.IsInf() {
			m.end()
			continue
		}
		m.point(pt.X, pt.Y)
	}
	m.end()
	return path
}
