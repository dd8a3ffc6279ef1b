package orm

import (
	"github.com/cwbudde/algo-orm/dsp/spectrum"
)

// ErrorTable maps a device column to its RMS residual noise figure.
type ErrorTable map[string]float64

// Get returns the error of device, or 0 when it has no entry.
func (e ErrorTable) Get(device string) float64 {
	return e[device]
}

// ActuatorError returns the RMS over all N bins of mag after zeroing the
// dominant bin p.Bin. DC and the mirrored negative-frequency half stay in.
// mag is not modified.
func ActuatorError(mag []float64, p Peak) float64 {
	residual := append([]float64(nil), mag...)
	if p.Bin >= 0 && p.Bin < len(residual) {
		residual[p.Bin] = 0
	}
	return spectrum.RMS(residual)
}

// SensorError returns the RMS over all N bins of mag after zeroing, for each
// actuator frequency, the bin nearest to it. mag is not modified.
func SensorError(mag []float64, actuatorFreqs []float64) float64 {
	return sensorError(mag, spectrum.Frequencies(len(mag), 1), actuatorFreqs)
}

func sensorError(mag, binFreqs, actuatorFreqs []float64) float64 {
	residual := append([]float64(nil), mag...)
	for _, f := range actuatorFreqs {
		if k := spectrum.NearestBin(binFreqs, f); k >= 0 {
			residual[k] = 0
		}
	}
	return spectrum.RMS(residual)
}

// EstimateErrors computes the noise figure of every actuator and every live
// sensor in devs.
func EstimateErrors(src Samples, devs DeviceSet, opts ...Option) (ErrorTable, error) {
	cfg := applyOptions(opts)
	set, err := computeSpectra(src, devs.devices(), cfg.workers)
	if err != nil {
		return nil, err
	}
	return estimateErrors(set, devs), nil
}

func estimateErrors(set *spectrumSet, devs DeviceSet) ErrorTable {
	sensors := devs.AllSensors()
	errs := make(ErrorTable, len(devs.Actuators)+len(sensors))

	freqs := make([]float64, len(devs.Actuators))
	for j, name := range devs.Actuators {
		p := set.peak(name)
		freqs[j] = p.Frequency
		errs[name] = ActuatorError(set.magnitude(name), p)
	}

	for _, name := range sensors {
		errs[name] = sensorError(set.magnitude(name), set.freqs, freqs)
	}

	return errs
}
