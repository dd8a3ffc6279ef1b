package report

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/cwbudde/algo-orm/measure/orm"
)

// ErrEmptyMatrix is returned when a heatmap is requested for a matrix
// without rows or columns.
var ErrEmptyMatrix = errors.New("report: empty matrix")

const (
	heatmapWidth  = 8 * vg.Inch
	heatmapHeight = 6 * vg.Inch
	paletteSize   = 64
)

// grid adapts a labelled matrix to plotter.GridXYZ. Row 0 is drawn at the
// top, as in a table.
type grid struct {
	m *orm.Matrix
}

func (g grid) Dims() (c, r int) {
	rows, cols := g.m.Dims()
	return cols, rows
}

func (g grid) Z(c, r int) float64 {
	rows, _ := g.m.Dims()
	return g.m.At(rows-1-r, c)
}

func (g grid) X(c int) float64 { return float64(c) }

func (g grid) Y(r int) float64 { return float64(r) }

// Heatmap renders m as a colour-mapped grid with its labels on the axes.
func Heatmap(m *orm.Matrix, title string) (*plot.Plot, error) {
	if m.Empty() {
		return nil, ErrEmptyMatrix
	}

	hm := plotter.NewHeatMap(grid{m}, palette.Heat(paletteSize, 1))
	lo, hi := finiteRange(m)
	if lo == hi {
		hi = lo + 1
	}
	hm.Min, hm.Max = lo, hi

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Corrector"
	p.Y.Label.Text = "BPM"
	p.Add(hm)

	rows, _ := m.Dims()
	p.X.Tick.Marker = labelTicks(m.Cols, func(i int) float64 { return float64(i) })
	p.Y.Tick.Marker = labelTicks(m.Rows, func(i int) float64 { return float64(rows - 1 - i) })
	return p, nil
}

// WriteHeatmapPNG renders m and writes it to w as PNG.
func WriteHeatmapPNG(w io.Writer, m *orm.Matrix, title string) error {
	p, err := Heatmap(m, title)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(heatmapWidth, heatmapHeight, "png")
	if err != nil {
		return fmt.Errorf("report: heatmap canvas: %w", err)
	}
	if _, err := wt.WriteTo(w); err != nil {
		return fmt.Errorf("report: write heatmap: %w", err)
	}
	return nil
}

func labelTicks(labels []string, pos func(int) float64) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(labels))
	for i, label := range labels {
		ticks[i] = plot.Tick{Value: pos(i), Label: label}
	}
	return ticks
}

func finiteRange(m *orm.Matrix) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	rows, _ := m.Dims()
	for i := range rows {
		for _, v := range m.Row(i) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			lo = math.Min(lo, v)
			hi = math.Max(hi, v)
		}
	}
	if math.IsInf(lo, 1) {
		return 0, 0
	}
	return lo, hi
}
