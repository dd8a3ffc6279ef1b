package spectrum

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// SIMD kernels are used when available. Scratch buffers are pooled, so in
// steady state this allocates only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// BinFrequency returns the signed frequency in cycles per sample of bin k in
// an n-point transform.
func BinFrequency(k, n int) float64 {
	if n <= 0 {
		return 0
	}
	if k < (n+1)/2 {
		return float64(k) / float64(n)
	}
	return float64(k-n) / float64(n)
}

// Frequencies returns the signed frequency of every bin of an n-point
// transform with sample spacing d. A non-positive d is treated as 1.
func Frequencies(n int, d float64) []float64 {
	if n <= 0 {
		return nil
	}
	if !(d > 0) {
		d = 1
	}
	out := make([]float64, n)
	for k := range out {
		out[k] = BinFrequency(k, n) / d
	}
	return out
}

// DominantBin returns the index of the largest magnitude in mag[1:], skipping
// the DC bin. Ties resolve to the lowest index, so an all-zero spectrum
// yields bin 1. A NaN magnitude wins the search, which keeps missing samples
// visible instead of hiding them behind a finite peak.
//
// It returns 0 when mag has fewer than two bins.
func DominantBin(mag []float64) int {
	if len(mag) < 2 {
		return 0
	}
	best := 1
	for k := 2; k < len(mag); k++ {
		if math.IsNaN(mag[best]) {
			break
		}
		if mag[k] > mag[best] || math.IsNaN(mag[k]) {
			best = k
		}
	}
	return best
}

// NearestBin returns the index of the entry in freqs closest to f by absolute
// distance. Ties resolve to the lowest index. It returns -1 for empty freqs.
func NearestBin(freqs []float64, f float64) int {
	if len(freqs) == 0 {
		return -1
	}
	best := 0
	bestDist := math.Abs(freqs[0] - f)
	for k := 1; k < len(freqs); k++ {
		if d := math.Abs(freqs[k] - f); d < bestDist {
			best = k
			bestDist = d
		}
	}
	return best
}

// RMS returns sqrt(mean(x^2)). It returns 0 for an empty slice.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return math.Sqrt(vecmath.DotProduct(x, x) / float64(len(x)))
}

// OneSided returns the positive-frequency half of an n-point spectrum,
// bins [1, n/2), with magnitudes scaled by 2/n so a unit sine reads 1.
func OneSided(coeffs []complex128) (freqs, amps []float64) {
	n := len(coeffs)
	if n < 4 {
		return nil, nil
	}
	half := n / 2
	mag := Magnitude(coeffs[1:half])
	freqs = make([]float64, len(mag))
	scale := 2 / float64(n)
	for i := range mag {
		freqs[i] = BinFrequency(i+1, n)
		mag[i] *= scale
	}
	return freqs, mag
}
