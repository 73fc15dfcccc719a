package testutil

import (
	"math"
	"testing"
)

// RequireNearlyEqual fails t if got and want differ by more than eps.
// Infinities compare equal when they have the same sign.
func RequireNearlyEqual(t *testing.T, got, want, eps float64) {
	t.Helper()
	if !nearlyEqual(got, want, eps) {
		t.Fatalf("got %v, want %v (eps %v)", got, want, eps)
	}
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if !nearlyEqual(got[i], want[i], eps) {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], math.Abs(got[i]-want[i]), eps)
		}
	}
}

// RequireMonotonic fails t if values are not non-decreasing (increasing
// true) or non-increasing (increasing false).
func RequireMonotonic(t *testing.T, values []float64, increasing bool) {
	t.Helper()
	for i := 1; i < len(values); i++ {
		if increasing && values[i] < values[i-1] {
			t.Fatalf("index %d: %v < %v, want non-decreasing", i, values[i], values[i-1])
		}
		if !increasing && values[i] > values[i-1] {
			t.Fatalf("index %d: %v > %v, want non-increasing", i, values[i], values[i-1])
		}
	}
}

func nearlyEqual(a, b, eps float64) bool {
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}
	return math.Abs(a-b) <= eps
}
