package spectrum

import (
	"testing"

	"github.com/cwbudde/algo-orm/internal/testutil"
)

func BenchmarkTransformerMagnitude(b *testing.B) {
	sizes := []struct {
		name string
		size int
	}{
		{"1K", 1024},
		{"1000", 1000},
		{"4K", 4096},
	}

	for _, testCase := range sizes {
		b.Run(testCase.name, func(b *testing.B) {
			tr, err := NewTransformer(testCase.size)
			if err != nil {
				b.Fatal(err)
			}
			x := testutil.DeterministicNoise(1, 1, testCase.size)

			b.SetBytes(int64(testCase.size * 8))
			b.ResetTimer()

			for range b.N {
				_, _ = tr.MagnitudeOf(x)
			}
		})
	}
}
