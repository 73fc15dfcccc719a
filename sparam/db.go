//go:build !fastmath

package sparam

import "math"

// magnitudeToDB converts a linear magnitude to decibels.
func magnitudeToDB(mag float64) float64 {
	return 20 * math.Log10(mag)
}
