package testutil

import (
	"math"
	"math/cmplx"
)

// LinearGrid returns n frequencies evenly spaced over [start, stop].
func LinearGrid(start, stop float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

// DelayLine returns the response e^{-j2πfτ} of an ideal lossless delay of
// delay seconds at each frequency in Hz.
func DelayLine(freqHz []float64, delay float64) []complex128 {
	out := make([]complex128, len(freqHz))
	for i, f := range freqHz {
		out[i] = cmplx.Exp(complex(0, -2*math.Pi*f*delay))
	}
	return out
}

// OnePole returns the transmission 1/(1 + jf/fc) of a first-order low-pass
// with corner frequency fc at each frequency in Hz.
func OnePole(freqHz []float64, fc float64) []complex128 {
	out := make([]complex128, len(freqHz))
	for i, f := range freqHz {
		out[i] = 1 / complex(1, f/fc)
	}
	return out
}
