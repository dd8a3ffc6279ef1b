package orm

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/algo-orm/dsp/spectrum"
)

// spectrumSet holds the magnitude spectrum and dominant peak of every device
// of one run. Each device is transformed once.
type spectrumSet struct {
	n        int
	freqs    []float64
	mags     map[string][]float64
	peaks    map[string]Peak
	fallback bool
}

func (s *spectrumSet) magnitude(name string) []float64 { return s.mags[name] }

func (s *spectrumSet) peak(name string) Peak { return s.peaks[name] }

// computeSpectra transforms the named columns of src on up to workers
// goroutines. Each goroutine owns its transformer and writes only its own
// slots, so the result does not depend on scheduling.
func computeSpectra(src Samples, names []string, workers int) (*spectrumSet, error) {
	n := src.Len()
	set := &spectrumSet{
		n:     n,
		freqs: spectrum.Frequencies(n, 1),
		mags:  make(map[string][]float64, len(names)),
		peaks: make(map[string]Peak, len(names)),
	}
	if len(names) == 0 {
		return set, nil
	}
	if n < 2 {
		return nil, fmt.Errorf("%w: column %q has %d samples, need at least 2", ErrInvalidInput, names[0], n)
	}

	cols := make([][]float64, len(names))
	for i, name := range names {
		col, ok := src.Column(name)
		if !ok {
			return nil, fmt.Errorf("orm: unknown column %q", name)
		}
		cols[i] = col
	}

	if workers < 1 {
		workers = 1
	}
	if workers > len(names) {
		workers = len(names)
	}

	mags := make([][]float64, len(names))
	fallback := make([]bool, workers)
	chunk := (len(names) + workers - 1) / workers

	var g errgroup.Group
	for w := range workers {
		lo := w * chunk
		hi := min(lo+chunk, len(names))
		if lo >= hi {
			continue
		}
		g.Go(func() error {
			tr, err := spectrum.NewTransformer(n)
			if err != nil {
				return err
			}
			fallback[w] = tr.Fallback()
			for i := lo; i < hi; i++ {
				mag, err := tr.MagnitudeOf(cols[i])
				if err != nil {
					return fmt.Errorf("orm: spectrum of %q: %w", names[i], err)
				}
				mags[i] = mag
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for i, name := range names {
		set.mags[name] = mags[i]
		set.peaks[name] = peakOf(mags[i])
	}
	for _, fb := range fallback {
		set.fallback = set.fallback || fb
	}
	return set, nil
}
