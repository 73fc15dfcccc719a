//go:build !fastmath

package plot

// dbEps is the tolerance for decibel values checked against math.Log10.
const dbEps = 1e-9
