package orm

import (
	"github.com/cwbudde/algo-orm/dsp/spectrum"
)

// ResponseMatrix is the orbit response of one sensor plane. Rows follow the
// plane's sensors and columns the actuators.
type ResponseMatrix struct {
	Group Group
	// Values holds R[i][j] = SensorAmp[i][j] / ActuatorAmp[i][j], or 0 where
	// the actuator amplitude is 0.
	Values *Matrix
	// SensorAmp holds the sensor magnitude at the bin nearest each
	// actuator's dominant frequency.
	SensorAmp *Matrix
	// ActuatorAmp holds each actuator's dominant magnitude repeated down
	// its column.
	ActuatorAmp *Matrix
}

// BuildResponseMatrix builds the response matrix of plane g.
func BuildResponseMatrix(src Samples, devs DeviceSet, g Group, opts ...Option) (*ResponseMatrix, error) {
	cfg := applyOptions(opts)
	sensors := devs.Sensors(g)
	names := append(append([]string(nil), devs.Actuators...), sensors...)
	set, err := computeSpectra(src, names, cfg.workers)
	if err != nil {
		return nil, err
	}
	return buildResponse(set, devs.Actuators, sensors, g), nil
}

func buildResponse(set *spectrumSet, actuators, sensors []string, g Group) *ResponseMatrix {
	resp := &ResponseMatrix{
		Group:       g,
		Values:      NewMatrix(sensors, actuators),
		SensorAmp:   NewMatrix(sensors, actuators),
		ActuatorAmp: NewMatrix(sensors, actuators),
	}
	if len(sensors) == 0 || len(actuators) == 0 {
		return resp
	}

	bins := make([]int, len(actuators))
	amps := make([]float64, len(actuators))
	for j, name := range actuators {
		p := set.peak(name)
		bins[j] = spectrum.NearestBin(set.freqs, p.Frequency)
		amps[j] = p.Amplitude
	}

	for i, name := range sensors {
		mag := set.magnitude(name)
		for j, ac := range amps {
			ab := mag[bins[j]]
			r := 0.0
			if ac != 0 {
				r = ab / ac
			}
			resp.Values.Set(i, j, r)
			resp.SensorAmp.Set(i, j, ab)
			resp.ActuatorAmp.Set(i, j, ac)
		}
	}
	return resp
}
