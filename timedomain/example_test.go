package timedomain_test

import (
	"fmt"

	"github.com/cwbudde/algo-sparam/sparam"
	"github.com/cwbudde/algo-sparam/timedomain"
)

func ExampleTransform() {
	freq := []float64{0, 1e9, 2e9, 3e9}
	s := []sparam.Sample{{Re: 0.2}, {Re: 0.2}, {Re: 0.2}, {Re: 0.2}}

	resp, err := timedomain.Transform(freq, s, timedomain.WithWindow(timedomain.Rectangular))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(resp.Len())
	fmt.Printf("%.3g s\n", resp.Time[1])
	fmt.Printf("%.3f\n", resp.Step[resp.Len()-1])
	// Output:
	// 8
	// 1.25e-10 s
	// 0.200
}
