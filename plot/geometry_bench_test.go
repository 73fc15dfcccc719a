package plot

import (
	"fmt"
	"testing"

	"github.com/cwbudde/algo-sparam/internal/testutil"
	"github.com/cwbudde/algo-sparam/sparam"
	"github.com/cwbudde/algo-sparam/units"
)

func BenchmarkBuild(b *testing.B) {
	sizes := []int{201, 1601, 16001}
	seriesCounts := []int{1, 4}
	for _, size := range sizes {
		for _, count := range seriesCounts {
			b.Run(fmt.Sprintf("%dx%d", size, count), func(b *testing.B) {
				freq := testutil.LinearGrid(10e6, 20e9, size)
				series := make([]sparam.Series, count)
				for i := range series {
					s := sparam.Series{Name: fmt.Sprintf("S%d1", i+1), Unit: units.Hz, Freq: freq}
					for _, c := range testutil.OnePole(freq, float64(i+1)*1e9) {
						s.S = append(s.S, sparam.FromComplex(c))
					}
					series[i] = s
				}
				settings := ApplyOptions(WithPrecision(2))

				b.ReportAllocs()
				b.ResetTimer()

				for range b.N {
					if _, err := Build(series, sparam.QuantityDB, testViewPort, settings); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
