package plot

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-sparam/units"
)

// Errors returned by plot functions.
var (
	ErrInvalidViewPort = errors.New("plot: viewport dimensions must be positive and finite")
	ErrInvalidSettings = errors.New("plot: invalid axis settings")
)

// ViewPort is the pixel size of the drawable area.
type ViewPort struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Validate checks that both dimensions are positive and finite.
func (vp ViewPort) Validate() error {
	if !(vp.X > 0) || !(vp.Y > 0) || math.IsInf(vp.X, 0) || math.IsInf(vp.Y, 0) {
		return fmt.Errorf("%w: %gx%g", ErrInvalidViewPort, vp.X, vp.Y)
	}
	return nil
}

// AxisSettings configures margins, tick counts and the frequency unit of the
// X axis.
type AxisSettings struct {
	InsetTop     float64    `json:"insetTop"`
	InsetBottom  float64    `json:"insetBottom"`
	InsetLeft    float64    `json:"insetLeft"`
	InsetRight   float64    `json:"insetRight"`
	YTicks       int        `json:"yTicks"`
	XTicks       int        `json:"xTicks"`
	PlotFreqUnit units.Unit `json:"plotFreqUnit"`
	// Precision is the number of fractional digits in emitted path data.
	// Zero keeps the shortest exact representation.
	Precision int `json:"precision,omitempty"`
}

// Option mutates AxisSettings.
type Option func(*AxisSettings)

// DefaultAxisSettings returns sensible defaults.
func DefaultAxisSettings() AxisSettings {
	return AxisSettings{
		InsetTop:     20,
		InsetBottom:  40,
		InsetLeft:    60,
		InsetRight:   20,
		YTicks:       8,
		XTicks:       10,
		PlotFreqUnit: units.GHz,
	}
}

// WithInsets sets the pixel margins. Negative values are ignored.
func WithInsets(top, bottom, left, right float64) Option {
	return func(s *AxisSettings) {
		if top >= 0 {
			s.InsetTop = top
		}
		if bottom >= 0 {
			s.InsetBottom = bottom
		}
		if left >= 0 {
			s.InsetLeft = left
		}
		if right >= 0 {
			s.InsetRight = right
		}
	}
}

// WithTicks sets the number of tick intervals on each axis.
func WithTicks(x, y int) Option {
	return func(s *AxisSettings) {
		if x > 0 {
			s.XTicks = x
		}
		if y > 0 {
			s.YTicks = y
		}
	}
}

// WithPlotUnit sets the frequency unit of the X axis.
func WithPlotUnit(u units.Unit) Option {
	return func(s *AxisSettings) {
		s.PlotFreqUnit = u
	}
}

// WithPrecision limits the fractional digits of emitted path data.
func WithPrecision(digits int) Option {
	return func(s *AxisSettings) {
		if digits >= 0 {
			s.Precision = digits
		}
	}
}

// ApplyOptions applies zero or more options to the default settings.
func ApplyOptions(opts ...Option) AxisSettings {
	s := DefaultAxisSettings()

	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	return s
}

// Validate checks settings that would otherwise produce NaN geometry.
func (s *AxisSettings) Validate() error {
	for _, inset := range []float64{s.InsetTop, s.InsetBottom, s.InsetLeft, s.InsetRight} {
		if inset < 0 || math.IsNaN(inset) || math.IsInf(inset, 0) {
			return fmt.Errorf("%w: inset %v", ErrInvalidSettings, inset)
		}
	}
	if s.XTicks < 1 || s.YTicks < 1 {
		return fmt.Errorf("%w: tick counts must be >= 1 (x=%d, y=%d)", ErrInvalidSettings, s.XTicks, s.YTicks)
	}
	if s.Precision < 0 {
		return fmt.Errorf("%w: precision %d", ErrInvalidSettings, s.Precision)
	}
	if _, err := s.PlotFreqUnit.Scale(); err != nil {
		return err
	}
	return nil
}
