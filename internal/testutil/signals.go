package testutil

import (
	"math"
	"math/rand"
)

// SineBin generates amplitude*sin(2*pi*bin*i/n) for i in [0, n). The tone
// lands exactly on DFT bin `bin`, so its unnormalized magnitude there is
// amplitude*n/2.
func SineBin(amplitude float64, bin, n int) []float64 {
	out := make([]float64, n)
	step := 2 * math.Pi * float64(bin) / float64(n)
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// CosineBin is the cosine counterpart of [SineBin].
func CosineBin(amplitude float64, bin, n int) []float64 {
	out := make([]float64, n)
	step := 2 * math.Pi * float64(bin) / float64(n)
	for i := range out {
		out[i] = amplitude * math.Cos(step*float64(i))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Add returns the element-wise sum of equally long signals.
func Add(signals ...[]float64) []float64 {
	if len(signals) == 0 {
		return nil
	}
	out := make([]float64, len(signals[0]))
	for _, s := range signals {
		for i := range out {
			out[i] += s[i]
		}
	}
	return out
}
