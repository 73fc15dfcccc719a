package plot

import "strconv"

// Tick is one axis tick: the data value, its pixel offset along the axis and
// a display label.
type Tick struct {
	Label  float64 `json:"label"`
	Offset float64 `json:"offset"`
	Text   string  `json:"text,omitempty"`
}

// Ticks returns n+1 evenly spaced ticks over [lo, hi], both ends included.
// format renders the label text; nil uses the shortest decimal form.
func Ticks(lo, hi float64, n int, scale LinearScale, format func(float64) string) []Tick {
	if n < 1 {
		return nil
	}
	if format == nil {
		format = func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	}

	ticks := make([]Tick, 0, n+1)
	for i := 0; i <= n; i++ {
		v := lo + (hi-lo)*(float64(i)/float64(n))
		ticks = append(ticks, Tick{
			Label:  v,
			Offset: scale.Apply(v),
			Text:   format(v),
		})
	}
	return ticks
}
