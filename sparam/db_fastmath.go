//go:build fastmath

package sparam

import (
	"math"

	"github.com/meko-christian/algo-approx"
)

// ln10 is the natural logarithm of 10, used for log base conversions.
const ln10 = 2.30258509299404568401799145468436421

// magnitudeToDB converts a linear magnitude to decibels using a fast
// logarithm approximation. Exact zero still maps to -Inf.
func magnitudeToDB(mag float64) float64 {
	if mag == 0 {
		return math.Inf(-1)
	}
	return 20 * approx.FastLog(mag) / ln10
}
