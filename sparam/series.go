package sparam

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-sparam/units"
)

// Errors returned by sparam functions.
var (
	ErrMalformedSeries = errors.New("sparam: frequency and sample counts differ")
	ErrUnknownQuantity = errors.New("sparam: unknown quantity")
	ErrTooFewPoints    = errors.New("sparam: at least 2 points required")
	ErrFrequencyOrder  = errors.New("sparam: frequencies must be strictly increasing")
)

// Sample is one complex S-parameter point.
type Sample struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

// FromComplex converts a complex128 into a Sample.
func FromComplex(c complex128) Sample {
	return Sample{Re: real(c), Im: imag(c)}
}

// Complex returns s as a complex128.
func (s Sample) Complex() complex128 { return complex(s.Re, s.Im) }

// Series is one measured S-parameter trace.
//
// Freq and S are parallel: Freq[i] is the frequency of S[i], expressed in
// Unit.
type Series struct {
	Name string     `json:"name,omitempty"`
	Freq []float64  `json:"freq"`
	Unit units.Unit `json:"unit"`
	S    []Sample   `json:"s"`
}

// Validate checks that the frequency and sample slices line up and that the
// unit tag is known.
func (s *Series) Validate() error {
	if len(s.Freq) != len(s.S) {
		return fmt.Errorf("%w: %d frequencies, %d samples", ErrMalformedSeries, len(s.Freq), len(s.S))
	}
	if _, err := s.Unit.Scale(); err != nil {
		return err
	}
	return nil
}
