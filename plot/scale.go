package plot

// LinearScale maps a data domain linearly onto a pixel range.
//
// A degenerate domain (min == max) maps every value to the middle of the
// range.
type LinearScale struct {
	Domain [2]float64 `json:"domain"`
	Range  [2]float64 `json:"range"`
}

// NewLinearScale returns the scale mapping [d0, d1] onto [r0, r1].
func NewLinearScale(d0, d1, r0, r1 float64) LinearScale {
	return LinearScale{Domain: [2]float64{d0, d1}, Range: [2]float64{r0, r1}}
}

// Apply maps a domain value to its pixel offset.
func (s LinearScale) Apply(v float64) float64 {
	d0, d1 := s.Domain[0], s.Domain[1]
	r0, r1 := s.Range[0], s.Range[1]
	span := d1 - d0
	if span == 0 {
		return r0 + (r1-r0)*0.5
	}
	t := (v - d0) / span
	return r0*(1-t) + r1*t
}

// Invert maps a pixel offset back into the domain.
func (s LinearScale) Invert(px float64) float64 {
	return LinearScale{Domain: s.Range, Range: s.Domain}.Apply(px)
}
