package sparam

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sparam/units"
)

// Decorated is a series with every derived component and its frequency axis
// normalized to a plot unit.
type Decorated struct {
	Name string `json:"name,omitempty"`
	Components
	// Freq is the frequency axis in the plot unit.
	Freq []float64 `json:"freq"`
	// FreqHz is the frequency axis in Hz.
	FreqHz []float64 `json:"-"`
}

// Decorate validates s, decomposes its samples and normalizes its frequency
// axis to plotUnit.
func Decorate(s Series, plotUnit units.Unit) (Decorated, error) {
	if err := s.Validate(); err != nil {
		return Decorated{}, err
	}
	freq, err := units.Normalize(s.Freq, plotUnit, s.Unit)
	if err != nil {
		return Decorated{}, err
	}
	freqHz, err := units.Normalize(s.Freq, units.Hz, s.Unit)
	if err != nil {
		return Decorated{}, err
	}
	return Decorated{
		Name:       s.Name,
		Components: Decompose(s.S),
		Freq:       freq,
		FreqHz:     freqHz,
	}, nil
}

// Values returns the slice for quantity q. The six direct components are
// returned without copying; unwrapped phase and group delay are computed on
// demand.
func (d *Decorated) Values(q Quantity) ([]float64, error) {
	switch q {
	case QuantityRe:
		return d.Re, nil
	case QuantityIm:
		return d.Im, nil
	case QuantityMag:
		return d.Mag, nil
	case QuantityDB:
		return d.DB, nil
	case QuantityAngle:
		return d.Angle, nil
	case QuantityDeg:
		return d.Deg, nil
	case QuantityUnwrapped:
		unwrapped := UnwrapPhase(d.Angle)
		for i := range unwrapped {
			unwrapped[i] *= 180 / math.Pi
		}
		if unwrapped == nil {
			unwrapped = []float64{}
		}
		return unwrapped, nil
	case QuantityGroupDelay:
		if len(d.FreqHz) == 0 {
			return []float64{}, nil
		}
		return GroupDelay(d.FreqHz, UnwrapPhase(d.Angle))
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownQuantity, q)
	}
}
