package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-orm/dsp/spectrum"
)

func ExampleFrequencies() {
	fmt.Println(spectrum.Frequencies(4, 1))
	// Output:
	// [0 0.25 -0.5 -0.25]
}

func ExampleDominantBin() {
	// The DC bin is never selected, even when it is the largest.
	mag := []float64{100, 2, 7, 7}
	fmt.Println(spectrum.DominantBin(mag))
	// Output:
	// 2
}

func ExampleTransformer() {
	tr, _ := spectrum.NewTransformer(8)
	mag, _ := tr.MagnitudeOf([]float64{1, 1, 1, 1, 1, 1, 1, 1})
	fmt.Printf("%.1f %.1f\n", mag[0], mag[1])
	// Output:
	// 8.0 0.0
}
