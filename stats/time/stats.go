// Package time summarizes recorded device readings in the time domain.
//
// Missing samples are stored as NaN by the loader; every function here skips
// them and reports how many were skipped.
package time

import "math"

// Stats holds time-domain statistics of one device column.
type Stats struct {
	Length  int // samples including missing ones
	Missing int // NaN samples
	Mean    float64
	RMS     float64
	StdDev  float64 // population standard deviation
	Max     float64
	MaxPos  int
	Min     float64
	MinPos  int
	// PeakToPeak is Max - Min.
	PeakToPeak    float64
	ZeroCrossings int
}

// Valid returns the number of non-missing samples.
func (s Stats) Valid() int { return s.Length - s.Missing }

// Calculate computes all statistics in a single pass. Mean and variance
// use Welford's update for numerical stability. Zero crossings are counted
// between consecutive valid samples of opposite sign. A column without valid
// samples yields zero statistics.
func Calculate(signal []float64) Stats {
	st := Stats{Length: len(signal)}

	var (
		mean   float64
		m2     float64
		sumSq  float64
		valid  int
		last   float64
		seeded bool
	)

	for i, x := range signal {
		if math.IsNaN(x) {
			st.Missing++
			continue
		}

		valid++
		delta := x - mean
		mean += delta / float64(valid)
		m2 += delta * (x - mean)
		sumSq += x * x

		if !seeded {
			st.Max, st.MaxPos = x, i
			st.Min, st.MinPos = x, i
			seeded = true
		} else {
			if x > st.Max {
				st.Max, st.MaxPos = x, i
			}
			if x < st.Min {
				st.Min, st.MinPos = x, i
			}
			if last*x < 0 {
				st.ZeroCrossings++
			}
		}
		last = x
	}

	if valid == 0 {
		return st
	}

	n := float64(valid)
	st.Mean = mean
	st.RMS = math.Sqrt(sumSq / n)
	st.StdDev = math.Sqrt(m2 / n)
	st.PeakToPeak = st.Max - st.Min
	return st
}
