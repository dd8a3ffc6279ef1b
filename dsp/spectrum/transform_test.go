package spectrum

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-orm/internal/testutil"
)

func naiveDFT(x []float64) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := range out {
		var acc complex128
		for i, v := range x {
			acc += complex(v, 0) * cmplx.Rect(1, -2*math.Pi*float64(k*i)/float64(n))
		}
		out[k] = acc
	}
	return out
}

func TestTransformerMatchesNaiveDFT(t *testing.T) {
	for _, n := range []int{2, 3, 7, 12, 16, 64, 100} {
		tr, err := NewTransformer(n)
		if err != nil {
			t.Fatalf("n=%d: NewTransformer: %v", n, err)
		}
		if tr.Len() != n {
			t.Fatalf("n=%d: Len()=%d", n, tr.Len())
		}

		x := testutil.DeterministicNoise(int64(n), 1, n)
		got, err := tr.Forward(x)
		if err != nil {
			t.Fatalf("n=%d: Forward: %v", n, err)
		}

		want := naiveDFT(x)
		for k := range want {
			if cmplx.Abs(got[k]-want[k]) > 1e-9 {
				t.Fatalf("n=%d bin %d: got %v want %v (fallback=%v)", n, k, got[k], want[k], tr.Fallback())
			}
		}
	}
}

func TestTransformerReuse(t *testing.T) {
	tr, err := NewTransformer(16)
	if err != nil {
		t.Fatalf("NewTransformer: %v", err)
	}

	a, _ := tr.MagnitudeOf(testutil.SineBin(1, 2, 16))
	_, _ = tr.MagnitudeOf(testutil.DC(3, 16))
	b, _ := tr.MagnitudeOf(testutil.SineBin(1, 2, 16))
	testutil.RequireSliceNearlyEqual(t, a, b, 0)
}

func TestTransformerSineMagnitude(t *testing.T) {
	tr, err := NewTransformer(64)
	if err != nil {
		t.Fatalf("NewTransformer: %v", err)
	}
	mag, err := tr.MagnitudeOf(testutil.SineBin(10, 3, 64))
	if err != nil {
		t.Fatalf("MagnitudeOf: %v", err)
	}
	testutil.RequireNearlyEqual(t, "bin 3", mag[3], 320, 1e-9)
	testutil.RequireNearlyEqual(t, "bin 61", mag[61], 320, 1e-9)
	testutil.RequireNearlyEqual(t, "dc", mag[0], 0, 1e-9)
}

func TestTransformerErrors(t *testing.T) {
	if _, err := NewTransformer(0); err == nil {
		t.Fatal("expected error for zero length")
	}

	tr, err := NewTransformer(8)
	if err != nil {
		t.Fatalf("NewTransformer: %v", err)
	}
	if _, err := tr.Forward(make([]float64, 4)); err == nil {
		t.Fatal("expected error for length mismatch")
	}
}
