//go:build fastmath

package plot

// dbEps is the tolerance for decibel values computed by the approximate
// logarithm.
const dbEps = 1e-4
