package sparam

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Components are the scalar representations of a slice of samples. Every
// slice has the length of the input and index i derives from sample i.
type Components struct {
	Re    []float64 `json:"sRe"`
	Im    []float64 `json:"sIm"`
	Mag   []float64 `json:"sMag"`
	DB    []float64 `json:"sDb"`
	Angle []float64 `json:"sAngle"`
	Deg   []float64 `json:"sDeg"`
}

// Len returns the number of samples the components were derived from.
func (c *Components) Len() int { return len(c.Re) }

// Decompose derives magnitude, decibels and phase for each sample.
//
//	Mag   = sqrt(re² + im²)
//	DB    = 20·log10(Mag)      (-Inf when Mag is 0)
//	Angle = atan2(im, re)
//	Deg   = Angle·180/π
func Decompose(samples []Sample) Components {
	n := len(samples)
	c := Components{
		Re:    make([]float64, n),
		Im:    make([]float64, n),
		Mag:   make([]float64, n),
		DB:    make([]float64, n),
		Angle: make([]float64, n),
		Deg:   make([]float64, n),
	}
	if n == 0 {
		return c
	}

	for i, s := range samples {
		c.Re[i] = s.Re
		c.Im[i] = s.Im
	}

	vecmath.Magnitude(c.Mag, c.Re, c.Im)

	for i := range samples {
		c.DB[i] = magnitudeToDB(c.Mag[i])
		c.Angle[i] = math.Atan2(c.Im[i], c.Re[i])
		c.Deg[i] = c.Angle[i] * 180 / math.Pi
	}

	return c
}
