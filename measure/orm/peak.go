package orm

import (
	"fmt"

	"github.com/cwbudde/algo-orm/dsp/spectrum"
)

// Peak is the dominant non-DC component of a signal's DFT.
type Peak struct {
	// Bin is the DFT bin index, always >= 1.
	Bin int
	// Frequency is the signed bin frequency in cycles per sample.
	Frequency float64
	// Amplitude is the unnormalized magnitude |X[Bin]|.
	Amplitude float64
}

// ExtractPeak transforms samples without windowing and returns the largest
// magnitude bin in [1, N). Ties go to the lowest bin, so a constant signal
// yields bin 1. Fewer than two samples fail with [ErrInvalidInput].
func ExtractPeak(samples []float64) (Peak, error) {
	if len(samples) < 2 {
		return Peak{}, fmt.Errorf("%w: need at least 2 samples, got %d", ErrInvalidInput, len(samples))
	}
	tr, err := spectrum.NewTransformer(len(samples))
	if err != nil {
		return Peak{}, err
	}
	mag, err := tr.MagnitudeOf(samples)
	if err != nil {
		return Peak{}, err
	}
	return peakOf(mag), nil
}

func peakOf(mag []float64) Peak {
	k := spectrum.DominantBin(mag)
	return Peak{
		Bin:       k,
		Frequency: spectrum.BinFrequency(k, len(mag)),
		Amplitude: mag[k],
	}
}
