// Package sparam holds the S-parameter data model and derives the scalar
// representations a chart plots: real and imaginary parts, magnitude,
// decibels, and phase in radians or degrees.
//
// A [Series] is one measured trace: parallel frequency and complex sample
// slices plus the frequency unit they were recorded in. [Decompose] turns the
// samples into [Components]; [Decorate] additionally normalizes the frequency
// axis to a plot unit, producing the [Decorated] form consumed by the plot
// package.
//
// Magnitudes are computed with SIMD kernels from algo-vecmath when the CPU
// supports them. Building with the fastmath tag swaps the decibel conversion
// for a fast logarithm approximation.
package sparam
