// Package timedomain converts a band-limited S-parameter series into its
// low-pass impulse and step responses, as a time-domain reflectometer (TDR)
// would display them.
//
// The series must be sampled on a uniform harmonic grid: f[i] = (k0+i)*Δf
// for some integer k0 >= 0. Bins below k0 (including DC) are extrapolated
// from the real part of the first sample. The one-sided spectrum is tapered
// with the falling half of a window, mirrored into a Hermitian spectrum and
// inverse transformed, which yields a real impulse response.
package timedomain
