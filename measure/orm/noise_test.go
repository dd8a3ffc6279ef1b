package orm

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-orm/internal/testutil"
)

func TestActuatorErrorZeroesOnlyDominantBin(t *testing.T) {
	mag := []float64{1, 5, 2, 5}
	got := ActuatorError(mag, peakOf(mag))
	testutil.RequireNearlyEqual(t, "error", got, math.Sqrt(30.0/4), 1e-12)
	testutil.RequireSliceNearlyEqual(t, mag, []float64{1, 5, 2, 5}, 0)
}

func TestActuatorErrorCleanSineKeepsMirror(t *testing.T) {
	p, _ := ExtractPeak(testutil.SineBin(10, 3, 64))
	mag := magnitudeOf(t, testutil.SineBin(10, 3, 64))

	// Only one of the +f/-f pair is removed; the other contributes 320/sqrt(64).
	testutil.RequireNearlyEqual(t, "error", ActuatorError(mag, p), 40, 1e-9)
}

func TestSensorError(t *testing.T) {
	mag := []float64{0, 4, 0, 4}

	testutil.RequireNearlyEqual(t, "one tone", SensorError(mag, []float64{0.25}), 2, 1e-12)
	testutil.RequireNearlyEqual(t, "both halves", SensorError(mag, []float64{0.25, -0.25}), 0, 1e-12)
	testutil.RequireNearlyEqual(t, "no actuators", SensorError(mag, nil), math.Sqrt(8), 1e-12)
	// 0.125 sits halfway between bins 0 and 1; the lower index is zeroed.
	testutil.RequireNearlyEqual(t, "tie", SensorError([]float64{2, 4, 0, 0}, []float64{0.125}), 2, 1e-12)
	testutil.RequireSliceNearlyEqual(t, mag, []float64{0, 4, 0, 4}, 0)
}

func TestEstimateErrors(t *testing.T) {
	n := 64
	tbl := newTable(t,
		column{"C1(R)", testutil.SineBin(10, 3, n)},
		column{"C2(R)", testutil.SineBin(5, 7, n)},
		column{"BPH1(R)", testutil.Add(testutil.SineBin(4, 3, n), testutil.SineBin(1, 7, n))},
		column{"BPV1(R)", testutil.SineBin(2, 7, n)},
	)
	devs := ResolveDevices(tbl, []string{"C1", "C2"}, []string{"BPH1", "BPV1"})

	errs, err := EstimateErrors(tbl, devs)
	if err != nil {
		t.Fatalf("EstimateErrors: %v", err)
	}
	if len(errs) != 4 {
		t.Fatalf("len(errs)=%d want=4", len(errs))
	}

	testutil.RequireNearlyEqual(t, "C1", errs["C1(R)"], 40, 1e-9)
	testutil.RequireNearlyEqual(t, "C2", errs["C2(R)"], 20, 1e-9)
	// One bin of each tone pair is removed; the mirrors remain.
	testutil.RequireNearlyEqual(t, "BPH1", errs["BPH1(R)"], math.Sqrt(128*128+32*32)/8, 1e-9)
	testutil.RequireNearlyEqual(t, "BPV1", errs["BPV1(R)"], 64.0/8, 1e-9)
	if errs.Get("nobody") != 0 {
		t.Fatal("absent device should read 0")
	}
}
