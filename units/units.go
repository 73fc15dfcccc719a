package units

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/cwbudde/algo-vecmath"
	"github.com/dustin/go-humanize"
)

// ErrInvalidUnit is returned for unrecognized frequency unit tags.
var ErrInvalidUnit = errors.New("units: invalid frequency unit")

// Unit is a frequency unit tag.
type Unit string

const (
	Hz  Unit = "HZ"
	KHz Unit = "KHZ"
	MHz Unit = "MHZ"
	GHz Unit = "GHZ"
	THz Unit = "THZ"
	PHz Unit = "PHZ"
)

// All returns the known units in ascending order of scale.
func All() []Unit {
	return []Unit{Hz, KHz, MHz, GHz, THz, PHz}
}

// scale returns the multiplier of u relative to Hz.
func scale(u Unit) (float64, bool) {
	switch u {
	case Hz:
		return 1, true
	case KHz:
		return 1e3, true
	case MHz:
		return 1e6, true
	case GHz:
		return 1e9, true
	case THz:
		return 1e12, true
	case PHz:
		return 1e15, true
	default:
		return 0, false
	}
}

// Parse maps a unit symbol in any letter case onto its canonical tag.
func Parse(s string) (Unit, error) {
	u := Unit(strings.ToUpper(strings.TrimSpace(s)))
	if !u.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidUnit, s)
	}
	return u, nil
}

// UnmarshalJSON decodes a unit tag with the same leniency as Parse.
func (u *Unit) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("units: %w", err)
	}
	p, err := Parse(s)
	if err != nil {
		return err
	}
	*u = p
	return nil
}

// Valid reports whether u is a known unit tag.
func (u Unit) Valid() bool {
	_, ok := scale(u)
	return ok
}

// Scale returns the multiplier of u relative to Hz.
func (u Unit) Scale() (float64, error) {
	f, ok := scale(u)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidUnit, string(u))
	}
	return f, nil
}

// Symbol returns the conventional spelling of u ("kHz", "GHz").
func (u Unit) Symbol() string {
	switch u {
	case Hz:
		return "Hz"
	case KHz:
		return "kHz"
	default:
		if !u.Valid() {
			return string(u)
		}
		return string(u[:1]) + "Hz"
	}
}

// Factor returns the multiplier converting values in unit in to unit out.
func Factor(out, in Unit) (float64, error) {
	inScale, err := in.Scale()
	if err != nil {
		return 0, err
	}
	outScale, err := out.Scale()
	if err != nil {
		return 0, err
	}
	return inScale / outScale, nil
}

// Normalize converts frequencies expressed in unit in to unit out.
//
// The result has the same length as freqs; freqs is not modified.
func Normalize(freqs []float64, out, in Unit) ([]float64, error) {
	factor, err := Factor(out, in)
	if err != nil {
		return nil, err
	}
	dst := make([]float64, len(freqs))
	if len(freqs) > 0 {
		vecmath.ScaleBlock(dst, freqs, factor)
	}
	return dst, nil
}

// ForRange picks the largest unit in which maxHz is at least 1.
func ForRange(maxHz float64) Unit {
	best := Hz
	for _, u := range All() {
		f, _ := scale(u)
		if maxHz/f >= 1 {
			best = u
		}
	}
	return best
}

// Format renders a frequency given in unit u as an SI string such as
// "1.5 GHz", keeping at most digits fractional digits.
func Format(value float64, u Unit, digits int) (string, error) {
	f, err := u.Scale()
	if err != nil {
		return "", err
	}
	return humanize.SIWithDigits(value*f, digits, "Hz"), nil
}
