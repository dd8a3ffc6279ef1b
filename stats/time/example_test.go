package time_test

import (
	"fmt"
	"math"

	timestats "github.com/cwbudde/algo-orm/stats/time"
)

func ExampleCalculate() {
	s := timestats.Calculate([]float64{1, -1, math.NaN(), 1, -1})
	fmt.Printf("rms=%.1f zc=%d missing=%d p2p=%.1f\n", s.RMS, s.ZeroCrossings, s.Missing, s.PeakToPeak)

	// Output:
	// rms=1.0 zc=3 missing=1 p2p=2.0
}
