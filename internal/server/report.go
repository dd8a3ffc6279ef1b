package server

import (
	"math"
	"strconv"

	"github.com/cwbudde/algo-orm/dataset"
	"github.com/cwbudde/algo-orm/measure/orm"
	timestats "github.com/cwbudde/algo-orm/stats/time"
)

// number encodes NaN and infinities as JSON null.
type number float64

func (n number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'g', -1, 64), nil
}

type matrixJSON struct {
	Rows   []string   `json:"rows"`
	Cols   []string   `json:"cols"`
	Values [][]number `json:"values"`
}

type planeJSON struct {
	Response    matrixJSON `json:"response"`
	SensorAmp   matrixJSON `json:"sensorAmplitude"`
	ActuatorAmp matrixJSON `json:"actuatorAmplitude"`
	Uncertainty matrixJSON `json:"uncertainty"`
}

type actuatorJSON struct {
	Name       string `json:"name"`
	PeakToPeak number `json:"peakToPeak"`
	Bin        int    `json:"bin"`
	Frequency  number `json:"frequency"`
	Amplitude  number `json:"amplitude"`
}

type analysisJSON struct {
	Samples    int               `json:"samples"`
	Actuators  []actuatorJSON    `json:"actuators"`
	Errors     map[string]number `json:"errors"`
	Excluded   []string          `json:"excluded"`
	Horizontal planeJSON         `json:"horizontal"`
	Vertical   planeJSON         `json:"vertical"`
	Warning    string            `json:"warning,omitempty"`
}

type spectrumJSON struct {
	Device      string   `json:"device"`
	Frequencies []number `json:"frequencies"`
	Amplitudes  []number `json:"amplitudes"`
}

type deviceJSON struct {
	Name          string `json:"name"`
	Role          string `json:"role"`
	Length        int    `json:"length"`
	Missing       int    `json:"missing"`
	Mean          number `json:"mean"`
	RMS           number `json:"rms"`
	StdDev        number `json:"stdDev"`
	Min           number `json:"min"`
	Max           number `json:"max"`
	PeakToPeak    number `json:"peakToPeak"`
	ZeroCrossings int    `json:"zeroCrossings"`
}

func encodeDevices(tbl *dataset.Table, devs orm.DeviceSet) []deviceJSON {
	groups := []struct {
		role  string
		names []string
	}{
		{"corrector", devs.Actuators},
		{"horizontal", devs.Horizontal},
		{"vertical", devs.Vertical},
		{"excluded", devs.Excluded},
	}

	out := []deviceJSON{}
	for _, g := range groups {
		for _, name := range g.names {
			col, _ := tbl.Column(name)
			st := timestats.Calculate(col)
			out = append(out, deviceJSON{
				Name:          name,
				Role:          g.role,
				Length:        st.Length,
				Missing:       st.Missing,
				Mean:          number(st.Mean),
				RMS:           number(st.RMS),
				StdDev:        number(st.StdDev),
				Min:           number(st.Min),
				Max:           number(st.Max),
				PeakToPeak:    number(st.PeakToPeak),
				ZeroCrossings: st.ZeroCrossings,
			})
		}
	}
	return out
}

func numbers(x []float64) []number {
	out := make([]number, len(x))
	for i, v := range x {
		out[i] = number(v)
	}
	return out
}

func encodeMatrix(m *orm.Matrix) matrixJSON {
	rows, _ := m.Dims()
	out := matrixJSON{
		Rows:   nonNil(m.Rows),
		Cols:   nonNil(m.Cols),
		Values: make([][]number, rows),
	}
	for i := range rows {
		if m.Empty() {
			out.Values[i] = []number{}
			continue
		}
		out.Values[i] = numbers(m.Row(i))
	}
	return out
}

func encodePlane(p orm.Plane) planeJSON {
	return planeJSON{
		Response:    encodeMatrix(p.Response.Values),
		SensorAmp:   encodeMatrix(p.Response.SensorAmp),
		ActuatorAmp: encodeMatrix(p.Response.ActuatorAmp),
		Uncertainty: encodeMatrix(p.Uncertainty),
	}
}

func encodeAnalysis(res *orm.Result, warn *dataset.QualityWarning) analysisJSON {
	out := analysisJSON{
		Samples:    res.Samples,
		Actuators:  make([]actuatorJSON, len(res.Actuators)),
		Errors:     make(map[string]number, len(res.Errors)),
		Excluded:   nonNil(res.Devices.Excluded),
		Horizontal: encodePlane(res.Horizontal),
		Vertical:   encodePlane(res.Vertical),
	}
	for i, p := range res.Actuators {
		out.Actuators[i] = actuatorJSON{
			Name:       p.Name,
			PeakToPeak: number(p.PeakToPeak),
			Bin:        p.Peak.Bin,
			Frequency:  number(p.Peak.Frequency),
			Amplitude:  number(p.Peak.Amplitude),
		}
	}
	for name, e := range res.Errors {
		out.Errors[name] = number(e)
	}
	if warn != nil {
		out.Warning = warn.Error()
	}
	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
