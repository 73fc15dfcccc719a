package timedomain

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-sparam/internal/window"
	"github.com/cwbudde/algo-sparam/sparam"
)

// Errors returned by Transform.
var (
	ErrTooFewPoints   = errors.New("timedomain: at least 2 frequency points required")
	ErrNonUniformGrid = errors.New("timedomain: frequencies must lie on a uniform harmonic grid")
	ErrLengthMismatch = errors.New("timedomain: frequency and sample counts differ")
	ErrGridTooLarge   = errors.New("timedomain: transform length exceeds MaxLength")
)

// MaxLength is the largest inverse FFT Transform performs. It bounds the
// bins extrapolated below the first frequency as well as the padding.
const MaxLength = 1 << 20

const (
	// gridTolerance is the allowed deviation of a frequency from its grid
	// position, relative to the step.
	gridTolerance = 1e-6
	// harmonicTolerance is the allowed deviation of f0/Δf from an integer.
	harmonicTolerance = 1e-3
)

// Response is the time-domain view of one series.
type Response struct {
	// Time is the sample time in seconds, starting at 0 with step 1/(N*Δf).
	Time []float64 `json:"time"`
	// Impulse is the band-limited impulse response.
	Impulse []float64 `json:"impulse"`
	// Step is the running sum of Impulse. Its final value equals the
	// (extrapolated) DC value of the series.
	Step []float64 `json:"step"`
}

// Len returns the number of time samples.
func (r *Response) Len() int { return len(r.Time) }

// Transform computes the low-pass impulse and step response of s sampled at
// freqHz.
func Transform(freqHz []float64, s []sparam.Sample, opts ...Option) (*Response, error) {
	cfg := ApplyOptions(opts...)

	if len(freqHz) != len(s) {
		return nil, fmt.Errorf("%w: %d frequencies, %d samples", ErrLengthMismatch, len(freqHz), len(s))
	}
	if len(freqHz) < 2 {
		return nil, fmt.Errorf("%w: %d", ErrTooFewPoints, len(freqHz))
	}

	df, k0, err := harmonicGrid(freqHz)
	if err != nil {
		return nil, err
	}

	bins := k0 + len(s)
	if bins > MaxLength/2 {
		return nil, fmt.Errorf("%w: %d one-sided bins", ErrGridTooLarge, bins)
	}
	if cfg.Padding > MaxLength/(2*bins) {
		return nil, fmt.Errorf("%w: %d bins padded %dx", ErrGridTooLarge, bins, cfg.Padding)
	}

	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := 0; k < k0; k++ {
		re[k] = s[0].Re
	}
	for i, v := range s {
		re[k0+i] = v.Re
		im[k0+i] = v.Im
	}
	// DC of a real signal is real.
	im[0] = 0

	taper, err := window.Half(cfg.Window, bins, window.WithBeta(cfg.KaiserBeta))
	if err != nil {
		return nil, fmt.Errorf("timedomain: %w", err)
	}
	if err := window.ApplyInPlace(re, taper); err != nil {
		return nil, fmt.Errorf("timedomain: %w", err)
	}
	if err := window.ApplyInPlace(im, taper); err != nil {
		return nil, fmt.Errorf("timedomain: %w", err)
	}

	n := nextPow2(2 * bins * cfg.Padding)
	spectrum := make([]complex128, n)
	spectrum[0] = complex(re[0], 0)
	for k := 1; k < bins; k++ {
		c := complex(re[k], im[k])
		spectrum[k] = c
		spectrum[n-k] = cmplx.Conj(c)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("timedomain: create FFT plan: %w", err)
	}
	out := make([]complex128, n)
	if err := plan.Inverse(out, spectrum); err != nil {
		return nil, fmt.Errorf("timedomain: inverse FFT failed: %w", err)
	}

	resp := &Response{
		Time:    make([]float64, n),
		Impulse: make([]float64, n),
		Step:    make([]float64, n),
	}
	dt := 1 / (float64(n) * df)
	sum := 0.0
	for i, v := range out {
		resp.Time[i] = float64(i) * dt
		resp.Impulse[i] = real(v)
		sum += real(v)
		resp.Step[i] = sum
	}

	return resp, nil
}

// harmonicGrid returns the grid step and the bin index of freqHz[0].
func harmonicGrid(freqHz []float64) (float64, int, error) {
	f0 := freqHz[0]
	df := freqHz[1] - f0
	if !(df > 0) || math.IsInf(df, 0) || f0 < 0 {
		return 0, 0, fmt.Errorf("%w: start %g, step %g", ErrNonUniformGrid, f0, df)
	}

	for i, f := range freqHz {
		want := f0 + float64(i)*df
		if math.Abs(f-want) > gridTolerance*df {
			return 0, 0, fmt.Errorf("%w: f[%d]=%g, want %g", ErrNonUniformGrid, i, f, want)
		}
	}

	ratio := f0 / df
	if ratio > MaxLength {
		return 0, 0, fmt.Errorf("%w: start %g is %.0f steps of %g above DC", ErrGridTooLarge, f0, ratio, df)
	}
	k0 := math.Round(ratio)
	if math.Abs(ratio-k0) > harmonicTolerance {
		return 0, 0, fmt.Errorf("%w: start %g is not a multiple of step %g", ErrNonUniformGrid, f0, df)
	}

	return df, int(k0), nil
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
