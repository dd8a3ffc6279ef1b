package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-orm/dataset"
	"github.com/cwbudde/algo-orm/internal/testutil"
	"github.com/cwbudde/algo-orm/measure/orm"
)

func sampleMatrix() *orm.Matrix {
	m := orm.NewMatrix([]string{"BPH1(R)", "BPH2(R)"}, []string{"C1(R)", "C2(R)"})
	m.Set(0, 0, 0.4)
	m.Set(0, 1, -1.25)
	m.Set(1, 0, 0.000123)
	m.Set(1, 1, 2)
	return m
}

func TestWriteMatrix(t *testing.T) {
	tests := []struct {
		name   string
		format string
		want   string
	}{
		{
			name:   "response",
			format: ResponseFormat,
			want:   ",C1(R),C2(R)\nBPH1(R),0.4000,-1.2500\nBPH2(R),0.0001,2.0000\n",
		},
		{
			name:   "uncertainty",
			format: UncertaintyFormat,
			want:   ",C1(R),C2(R)\nBPH1(R),4.0000e-01,-1.2500e+00\nBPH2(R),1.2300e-04,2.0000e+00\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteMatrix(&buf, sampleMatrix(), tc.format); err != nil {
				t.Fatalf("WriteMatrix: %v", err)
			}
			if got := buf.String(); got != tc.want {
				t.Fatalf("got:\n%s\nwant:\n%s", got, tc.want)
			}
		})
	}
}

func TestWriteMatrixEmpty(t *testing.T) {
	var buf bytes.Buffer
	m := orm.NewMatrix(nil, []string{"C1(R)"})
	if err := WriteMatrix(&buf, m, ResponseFormat); err != nil {
		t.Fatalf("WriteMatrix: %v", err)
	}
	if got := buf.String(); got != ",C1(R)\n" {
		t.Fatalf("got %q", got)
	}
}

func TestWriteParams(t *testing.T) {
	var buf bytes.Buffer
	params := []orm.ActuatorParams{{
		Name:       "C1(R)",
		PeakToPeak: 19.9518,
		Peak:       orm.Peak{Bin: 61, Frequency: -0.046875, Amplitude: 320},
	}}
	if err := WriteParams(&buf, params); err != nil {
		t.Fatalf("WriteParams: %v", err)
	}
	want := "Corrector,Peak-to-Peak,Dominant Freq Idx,Dominant Freq,Max FFT Amp\n" +
		"C1(R),19.952,61,-0.047,320.000\n"
	if got := buf.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteErrorsAndExcluded(t *testing.T) {
	var buf bytes.Buffer
	errs := orm.ErrorTable{"C1(R)": 40}
	if err := WriteErrors(&buf, []string{"C1(R)", "B1(R)"}, errs); err != nil {
		t.Fatalf("WriteErrors: %v", err)
	}
	if got, want := buf.String(), "Device,RMS Error\nC1(R),4.0000e+01\nB1(R),0.0000e+00\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}

	buf.Reset()
	if err := WriteExcluded(&buf, []string{"BPV9(R)"}); err != nil {
		t.Fatalf("WriteExcluded: %v", err)
	}
	if got, want := buf.String(), "BPM Name\nBPV9(R)\n"; got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestWriteHeatmapPNG(t *testing.T) {
	tests := []struct {
		name string
		m    *orm.Matrix
	}{
		{"regular", sampleMatrix()},
		{"constant", orm.NewMatrix([]string{"B1(R)"}, []string{"C1(R)"})},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := WriteHeatmapPNG(&buf, tc.m, "test"); err != nil {
				t.Fatalf("WriteHeatmapPNG: %v", err)
			}
			if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
				t.Fatal("output is not a PNG stream")
			}
		})
	}

	if err := WriteHeatmapPNG(&bytes.Buffer{}, orm.NewMatrix(nil, nil), "empty"); !errors.Is(err, ErrEmptyMatrix) {
		t.Fatalf("err=%v want ErrEmptyMatrix", err)
	}
}

func TestSave(t *testing.T) {
	n := 64
	tbl, err := dataset.New(
		[]string{"C1(R)", "BPH1(R)", "BPV1(R)"},
		[][]float64{testutil.SineBin(10, 3, n), testutil.SineBin(4, 3, n), testutil.DC(0, n)},
	)
	if err != nil {
		t.Fatalf("dataset.New: %v", err)
	}
	res, err := orm.Run(tbl, []string{"C1"}, []string{"BPH1", "BPV1"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	dir := t.TempDir()
	written, err := Save(dir, res, true)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	// The vertical plane is empty, so it gets CSV files but no heatmaps.
	want := []string{
		"corrector_params.csv", "device_errors.csv", "excluded_bpms.csv",
		"response_horizontal.csv", "response_horizontal.png",
		"uncertainty_horizontal.csv", "uncertainty_horizontal.png",
		"response_vertical.csv", "uncertainty_vertical.csv",
	}
	if len(written) != len(want) {
		t.Fatalf("written=%v", written)
	}
	for i, name := range want {
		if filepath.Base(written[i]) != name {
			t.Fatalf("written[%d]=%s want %s", i, written[i], name)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "response_horizontal.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "BPH1(R),0.4000") {
		t.Fatalf("unexpected response table:\n%s", data)
	}
}
