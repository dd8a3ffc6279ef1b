package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-orm/internal/testutil"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func fixture(t *testing.T) (dir, data, corr, bpms string) {
	t.Helper()
	dir = t.TempDir()
	n := 64
	c1 := testutil.SineBin(10, 3, n)
	b1 := testutil.SineBin(4, 3, n)
	var b strings.Builder
	b.WriteString("C1(R),BPH1(R),BPV1(R)\n")
	for i := range n {
		fmt.Fprintf(&b, "%v,%v,0\n", c1[i], b1[i])
	}
	data = writeFile(t, dir, "run.csv", b.String())
	corr = writeFile(t, dir, "corr.txt", "C1\n")
	bpms = writeFile(t, dir, "bpms.txt", "BPH1\n  BPV1  \n\n")
	return dir, data, corr, bpms
}

func TestRunPrintsTables(t *testing.T) {
	dir, data, corr, bpms := fixture(t)
	out := filepath.Join(dir, "out")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-data", data, "-correctors", corr, "-bpms", bpms, "-out", out, "-png", "-summary"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit=%d stderr=%s", code, stderr.String())
	}

	got := stdout.String()
	for _, want := range []string{"Response matrix (horizontal)", "0.4000", "Excluded BPMs", "BPV1(R)", "(empty)", "corrector", "excluded"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
	if _, err := os.Stat(filepath.Join(out, "response_horizontal.png")); err != nil {
		t.Fatalf("heatmap not written: %v", err)
	}
}

func TestRunExitCodes(t *testing.T) {
	dir, data, corr, bpms := fixture(t)
	bad := writeFile(t, dir, "bad.csv", "C1(R),BPH1(R)\n1,2\n3\n")

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"missing flags", []string{"-data", data}, 2},
		{"png without out", []string{"-data", data, "-correctors", corr, "-bpms", bpms, "-png"}, 2},
		{"malformed table", []string{"-data", bad, "-correctors", corr, "-bpms", bpms}, 1},
		{"missing list", []string{"-data", data, "-correctors", filepath.Join(dir, "nope.txt"), "-bpms", bpms}, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tc.args, &stdout, &stderr); code != tc.code {
				t.Fatalf("exit=%d want %d stderr=%s", code, tc.code, stderr.String())
			}
		})
	}
}
