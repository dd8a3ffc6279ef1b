// Package report writes analysis results as CSV tables and PNG heatmaps.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/cwbudde/algo-orm/measure/orm"
)

// Cell formats used for exported tables.
const (
	ResponseFormat    = "%.4f"
	UncertaintyFormat = "%.4e"
	ParamFormat       = "%.3f"
)

// ParamsHeader is the header row of the actuator parameter table.
var ParamsHeader = []string{"Corrector", "Peak-to-Peak", "Dominant Freq Idx", "Dominant Freq", "Max FFT Amp"}

// WriteMatrix writes m as CSV: a header row of column labels behind an empty
// top-left cell, then one row per row label. Cells use format.
func WriteMatrix(w io.Writer, m *orm.Matrix, format string) error {
	cw := csv.NewWriter(w)

	header := append([]string{""}, m.Cols...)
	if err := cw.Write(header); err != nil {
		return err
	}

	record := make([]string, len(m.Cols)+1)
	for i, label := range m.Rows {
		record[0] = label
		for j := range m.Cols {
			record[j+1] = fmt.Sprintf(format, m.At(i, j))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteParams writes one row per actuator under [ParamsHeader].
func WriteParams(w io.Writer, params []orm.ActuatorParams) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ParamsHeader); err != nil {
		return err
	}
	for _, p := range params {
		err := cw.Write([]string{
			p.Name,
			fmt.Sprintf(ParamFormat, p.PeakToPeak),
			strconv.Itoa(p.Peak.Bin),
			fmt.Sprintf(ParamFormat, p.Peak.Frequency),
			fmt.Sprintf(ParamFormat, p.Peak.Amplitude),
		})
		if err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteErrors writes the noise figure of each named device, in order.
func WriteErrors(w io.Writer, devices []string, errs orm.ErrorTable) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Device", "RMS Error"}); err != nil {
		return err
	}
	for _, name := range devices {
		if err := cw.Write([]string{name, fmt.Sprintf(UncertaintyFormat, errs.Get(name))}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteExcluded writes the excluded sensor list.
func WriteExcluded(w io.Writer, names []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"BPM Name"}); err != nil {
		return err
	}
	for _, name := range names {
		if err := cw.Write([]string{name}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
