package timedomain

import (
	"github.com/cwbudde/algo-sparam/internal/window"
)

// Window selects the spectral taper applied before the inverse transform.
type Window = window.Type

// Supported windows.
const (
	Rectangular = window.TypeRectangular
	Hann        = window.TypeHann
	Hamming     = window.TypeHamming
	Blackman    = window.TypeBlackman
	Kaiser      = window.TypeKaiser
)

// ParseWindow resolves a case-insensitive window name such as "hann".
func ParseWindow(s string) (Window, error) {
	return window.ParseType(s)
}

// Config holds the transform parameters.
type Config struct {
	Window     Window
	KaiserBeta float64
	// Padding multiplies the transform length. Larger values interpolate
	// the time axis more finely without changing its span.
	Padding int
}

// Option mutates Config.
type Option func(*Config)

// DefaultConfig returns a Hann-windowed transform without extra padding.
func DefaultConfig() Config {
	return Config{
		Window:     Hann,
		KaiserBeta: window.DefaultKaiserBeta,
		Padding:    1,
	}
}

// WithWindow selects the spectral window.
func WithWindow(w Window) Option {
	return func(c *Config) {
		c.Window = w
	}
}

// WithKaiserBeta sets the Kaiser shape parameter. Negative values are
// ignored.
func WithKaiserBeta(beta float64) Option {
	return func(c *Config) {
		if beta >= 0 {
			c.KaiserBeta = beta
		}
	}
}

// WithPadding sets the zero-padding factor. Values below 1 are ignored.
func WithPadding(factor int) Option {
	return func(c *Config) {
		if factor >= 1 {
			c.Padding = factor
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
