package orm

import (
	"testing"

	"github.com/cwbudde/algo-orm/dataset"
	"github.com/cwbudde/algo-orm/dsp/spectrum"
)

type column struct {
	name    string
	samples []float64
}

func newTable(t *testing.T, cols ...column) *dataset.Table {
	t.Helper()
	names := make([]string, len(cols))
	data := make([][]float64, len(cols))
	for i, c := range cols {
		names[i] = c.name
		data[i] = c.samples
	}
	tbl, err := dataset.New(names, data)
	if err != nil {
		t.Fatalf("dataset.New: %v", err)
	}
	return tbl
}

func magnitudeOf(t *testing.T, x []float64) []float64 {
	t.Helper()
	tr, err := spectrum.NewTransformer(len(x))
	if err != nil {
		t.Fatalf("NewTransformer: %v", err)
	}
	mag, err := tr.MagnitudeOf(x)
	if err != nil {
		t.Fatalf("MagnitudeOf: %v", err)
	}
	return mag
}
