package spectrum

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Transformer computes unnormalized forward DFTs of real sequences of one
// fixed length. Lengths the algo-fft planner rejects are served by gonum's
// mixed-radix FFT, so any length >= 1 is accepted.
//
// A Transformer owns its plan and scratch buffers and is not safe for
// concurrent use. Create one per goroutine.
type Transformer struct {
	n        int
	plan     *algofft.Plan[complex128]
	fallback *fourier.CmplxFFT
	in       []complex128
}

// NewTransformer creates a Transformer for sequences of length n.
func NewTransformer(n int) (*Transformer, error) {
	if n <= 0 {
		return nil, fmt.Errorf("spectrum: transform length must be > 0: %d", n)
	}

	t := &Transformer{
		n:  n,
		in: make([]complex128, n),
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		t.fallback = fourier.NewCmplxFFT(n)
	} else {
		t.plan = plan
	}

	return t, nil
}

// Len returns the sequence length the Transformer accepts.
func (t *Transformer) Len() int { return t.n }

// Fallback reports whether the gonum FFT serves this length.
func (t *Transformer) Fallback() bool { return t.plan == nil }

// Forward returns the DFT coefficients X[k] = sum x[n] exp(-2*pi*i*k*n/N).
// The returned slice is newly allocated.
func (t *Transformer) Forward(x []float64) ([]complex128, error) {
	if len(x) != t.n {
		return nil, fmt.Errorf("spectrum: input length %d does not match transform length %d", len(x), t.n)
	}

	for i, v := range x {
		t.in[i] = complex(v, 0)
	}

	out := make([]complex128, t.n)
	if t.plan == nil {
		return t.fallback.Coefficients(out, t.in), nil
	}

	if err := t.plan.Forward(out, t.in); err != nil {
		return nil, fmt.Errorf("spectrum: forward transform: %w", err)
	}

	return out, nil
}

// MagnitudeOf transforms x and returns its full N-bin magnitude spectrum.
func (t *Transformer) MagnitudeOf(x []float64) ([]float64, error) {
	coeffs, err := t.Forward(x)
	if err != nil {
		return nil, err
	}
	return Magnitude(coeffs), nil
}
