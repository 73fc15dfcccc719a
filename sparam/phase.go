package sparam

import (
	"fmt"
	"math"
)

// UnwrapPhase returns a new phase slice with +/-2*pi discontinuities removed.
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}
	out := make([]float64, len(phase))
	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		switch {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}
		out[i] = phase[i] + offset
	}
	return out
}

// GroupDelay computes τ = -dφ/dω in seconds from unwrapped phase in radians
// sampled at freqHz.
//
// Interior points use a centered difference over the two neighbours, the
// endpoints one-sided differences. freqHz must be strictly increasing.
func GroupDelay(freqHz, unwrapped []float64) ([]float64, error) {
	if len(freqHz) != len(unwrapped) {
		return nil, fmt.Errorf("%w: %d frequencies, %d phase points", ErrMalformedSeries, len(freqHz), len(unwrapped))
	}
	if len(freqHz) < 2 {
		return nil, fmt.Errorf("group delay: %w: %d", ErrTooFewPoints, len(freqHz))
	}
	for i := 1; i < len(freqHz); i++ {
		if !(freqHz[i] > freqHz[i-1]) {
			return nil, fmt.Errorf("group delay: %w at index %d", ErrFrequencyOrder, i)
		}
	}

	last := len(freqHz) - 1
	out := make([]float64, len(freqHz))
	for i := range out {
		lo, hi := i-1, i+1
		switch i {
		case 0:
			lo = 0
		case last:
			hi = last
		}
		dphi := unwrapped[hi] - unwrapped[lo]
		dw := 2 * math.Pi * (freqHz[hi] - freqHz[lo])
		out[i] = -dphi / dw
	}
	return out, nil
}
