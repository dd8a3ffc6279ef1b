package orm

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-orm/dsp/spectrum"
)

// ActuatorParams summarizes one actuator's excitation.
type ActuatorParams struct {
	Name string
	// PeakToPeak is max - min of the raw samples, ignoring NaN.
	PeakToPeak float64
	Peak       Peak
}

// Plane pairs the response and uncertainty matrices of one sensor plane.
type Plane struct {
	Response    *ResponseMatrix
	Uncertainty *Matrix
}

// Result holds every output of one analysis run. A Result is never updated;
// the next run produces a new one.
type Result struct {
	Samples    int
	Devices    DeviceSet
	Actuators  []ActuatorParams
	Errors     ErrorTable
	Horizontal Plane
	Vertical   Plane
}

// Plane returns the matrices of plane g.
func (r *Result) Plane(g Group) Plane {
	if g == Vertical {
		return r.Vertical
	}
	return r.Horizontal
}

// Analyzer runs the full response matrix pipeline.
type Analyzer struct {
	cfg config
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer(opts ...Option) *Analyzer {
	return &Analyzer{cfg: applyOptions(opts)}
}

// Run is a one-shot analysis with a default-configured [Analyzer].
func Run(src Samples, actuators, sensors []string, opts ...Option) (*Result, error) {
	return NewAnalyzer(opts...).Run(src, actuators, sensors)
}

// Run resolves the raw device names against src and executes every stage.
// Each device is transformed once and the spectra are shared by the error
// estimator and both response matrices. On error no partial result is
// returned.
func (a *Analyzer) Run(src Samples, actuators, sensors []string) (*Result, error) {
	cfg := a.cfg
	devs := resolveDevices(src, actuators, sensors, cfg)
	cfg.logger.Printf("resolved %d actuators, %d horizontal, %d vertical, %d excluded sensors",
		len(devs.Actuators), len(devs.Horizontal), len(devs.Vertical), len(devs.Excluded))
	for _, name := range devs.Excluded {
		cfg.logger.Printf("excluded dead sensor %s", name)
	}

	set, err := computeSpectra(src, devs.devices(), cfg.workers)
	if err != nil {
		return nil, err
	}
	if set.fallback {
		cfg.logger.Printf("transform length %d served by fallback FFT", set.n)
	}

	res := &Result{
		Samples:   src.Len(),
		Devices:   devs,
		Actuators: actuatorParams(src, set, devs.Actuators),
		Errors:    estimateErrors(set, devs),
	}

	for _, g := range []Group{Horizontal, Vertical} {
		resp := buildResponse(set, devs.Actuators, devs.Sensors(g), g)
		plane := Plane{
			Response:    resp,
			Uncertainty: PropagateErrors(resp, res.Errors),
		}
		if g == Vertical {
			res.Vertical = plane
		} else {
			res.Horizontal = plane
		}
		rows, cols := resp.Values.Dims()
		cfg.logger.Printf("%s response matrix %dx%d", g, rows, cols)
	}

	return res, nil
}

func actuatorParams(src Samples, set *spectrumSet, actuators []string) []ActuatorParams {
	out := make([]ActuatorParams, len(actuators))
	for i, name := range actuators {
		col, _ := src.Column(name)
		out[i] = ActuatorParams{
			Name:       name,
			PeakToPeak: peakToPeak(col),
			Peak:       set.peak(name),
		}
	}
	return out
}

func peakToPeak(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return floats.Max(x) - floats.Min(x)
}

// DisplaySpectrum returns the positive-frequency amplitude spectrum of
// samples, bins [1, N/2) scaled by 2/N, as shown in spectrum plots.
func DisplaySpectrum(samples []float64) (freqs, amps []float64, err error) {
	if len(samples) < 2 {
		return nil, nil, fmt.Errorf("%w: need at least 2 samples, got %d", ErrInvalidInput, len(samples))
	}
	tr, err := spectrum.NewTransformer(len(samples))
	if err != nil {
		return nil, nil, err
	}
	coeffs, err := tr.Forward(samples)
	if err != nil {
		return nil, nil, err
	}
	freqs, amps = spectrum.OneSided(coeffs)
	return freqs, amps, nil
}
