// Package window generates taper coefficients for spectral weighting.
package window

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
	TypeKaiser
)

// DefaultKaiserBeta is the Kaiser shape used when no beta is configured.
const DefaultKaiserBeta = 6

var (
	ErrUnknownType      = errors.New("window: unknown window type")
	ErrInvalidLength    = errors.New("window: size must be > 0")
	ErrInvalidBeta      = errors.New("window: kaiser beta must be >= 0")
	errMismatchedLength = errors.New("window: samples and coefficients must have same length")
)

var (
	hannCoeffs     = []float64{0.5, -0.5}
	hammingCoeffs  = []float64{0.54, -0.46}
	blackmanCoeffs = []float64{0.42, -0.5, 0.08}
)

var names = [...]string{
	TypeRectangular: "rectangular",
	TypeHann:        "hann",
	TypeHamming:     "hamming",
	TypeBlackman:    "blackman",
	TypeKaiser:      "kaiser",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(names) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return names[t]
}

// Types returns every supported window type.
func Types() []Type {
	return []Type{TypeRectangular, TypeHann, TypeHamming, TypeBlackman, TypeKaiser}
}

// ParseType resolves a case-insensitive window name.
func ParseType(s string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, name := range names {
		if name == key {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}

// Option configures window generation.
type Option func(*config)

type config struct {
	beta float64
}

func defaultConfig() config {
	return config{beta: DefaultKaiserBeta}
}

// WithBeta sets the Kaiser shape parameter. Negative values are ignored.
func WithBeta(beta float64) Option {
	return func(c *config) {
		if beta >= 0 {
			c.beta = beta
		}
	}
}

// Generate returns symmetric window coefficients of the given length.
func Generate(t Type, length int, opts ...Option) ([]float64, error) {
	return generate(t, length, opts, func(i int) float64 {
		if length <= 1 {
			return 0.5
		}
		return float64(i) / float64(length-1)
	})
}

// Half returns the falling half of a symmetric window: the first coefficient
// is the window centre (1 for every supported type) and the last is its
// edge. It is the taper applied to one-sided spectra.
func Half(t Type, length int, opts ...Option) ([]float64, error) {
	return generate(t, length, opts, func(i int) float64 {
		if length <= 1 {
			return 0.5
		}
		return 0.5 + 0.5*float64(i)/float64(length-1)
	})
}

// ApplyInPlace multiplies samples with coefficients in place.
func ApplyInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}
	vecmath.MulBlockInPlace(samples, coeffs)
	return nil
}

func generate(t Type, length int, opts []Option, position func(int) float64) ([]float64, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}
	if t < 0 || int(t) >= len(names) {
		return nil, fmt.Errorf("%w: %v", ErrUnknownType, t)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if t == TypeKaiser && (cfg.beta < 0 || math.IsNaN(cfg.beta)) {
		return nil, fmt.Errorf("%w: %f", ErrInvalidBeta, cfg.beta)
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = evalWindow(t, position(i), cfg)
	}
	return out, nil
}

func evalWindow(t Type, x float64, cfg config) float64 {
	if x < 0 {
		x = 0
	}
	if x > 1 {
		x = 1
	}

	switch t {
	case TypeHann:
		return cosineFromCoeffs(x, hannCoeffs)
	case TypeHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	case TypeBlackman:
		return cosineFromCoeffs(x, blackmanCoeffs)
	case TypeKaiser:
		return kaiserAt(x, cfg.beta)
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func kaiserAt(x, beta float64) float64 {
	if beta <= 0 {
		return 1
	}

	r := 2*x - 1
	term := math.Sqrt(math.Max(0, 1-r*r))

	return besselI0(beta*term) / besselI0(beta)
}

// besselI0 returns a polynomial approximation of the modified Bessel
// function I0.
func besselI0(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		y := x / 3.75
		y *= y

		return 1.0 + y*(3.5156229+y*(3.0899424+y*(1.2067492+y*(0.2659732+y*(0.0360768+y*0.0045813)))))
	}

	y := 3.75 / ax

	return (math.Exp(ax) / math.Sqrt(ax)) *
		(0.39894228 + y*(0.01328592+y*(0.00225319+y*(-0.00157565+y*(0.00916281+y*(-0.02057706+y*(0.02635537+y*(-0.01647633+y*0.00392377))))))))
}
