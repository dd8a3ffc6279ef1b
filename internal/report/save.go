package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cwbudde/algo-orm/measure/orm"
)

// Save writes every table of res into dir and returns the written paths.
// With png set, non-empty response and uncertainty matrices are also
// rendered as heatmaps.
func Save(dir string, res *orm.Result, png bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("report: create %s: %w", dir, err)
	}

	var written []string
	write := func(name string, fn func(io.Writer) error) error {
		path := filepath.Join(dir, name)
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("report: %w", err)
		}
		if err := fn(f); err != nil {
			f.Close()
			return fmt.Errorf("report: write %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("report: close %s: %w", path, err)
		}
		written = append(written, path)
		return nil
	}

	devices := append(append([]string(nil), res.Devices.Actuators...), res.Devices.AllSensors()...)
	err := write("corrector_params.csv", func(w io.Writer) error { return WriteParams(w, res.Actuators) })
	if err == nil {
		err = write("device_errors.csv", func(w io.Writer) error { return WriteErrors(w, devices, res.Errors) })
	}
	if err == nil {
		err = write("excluded_bpms.csv", func(w io.Writer) error { return WriteExcluded(w, res.Devices.Excluded) })
	}
	if err != nil {
		return written, err
	}

	for _, g := range []orm.Group{orm.Horizontal, orm.Vertical} {
		plane := res.Plane(g)
		tables := []struct {
			name   string
			title  string
			m      *orm.Matrix
			format string
		}{
			{"response_" + g.String(), "Response matrix (" + g.String() + ")", plane.Response.Values, ResponseFormat},
			{"uncertainty_" + g.String(), "Uncertainty (" + g.String() + ")", plane.Uncertainty, UncertaintyFormat},
		}
		for _, tb := range tables {
			if err := write(tb.name+".csv", func(w io.Writer) error { return WriteMatrix(w, tb.m, tb.format) }); err != nil {
				return written, err
			}
			if !png || tb.m.Empty() {
				continue
			}
			if err := write(tb.name+".png", func(w io.Writer) error { return WriteHeatmapPNG(w, tb.m, tb.title) }); err != nil {
				return written, err
			}
		}
	}
	return written, nil
}
