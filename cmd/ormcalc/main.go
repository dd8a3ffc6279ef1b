// Command ormcalc estimates orbit response matrices from a recorded
// corrector excitation run.
//
// Usage:
//
//	ormcalc -data run.csv -correctors correctors.txt -bpms bpms.txt [flags]
//
// The sample table is a CSV file with one column per device, named
// "<device>(R)", and one sample per row. The device lists hold one name per
// line.
//
// Examples:
//
//	ormcalc -data run.csv -correctors hcm.txt -bpms bpm.txt
//	ormcalc -data run.csv -correctors hcm.txt -bpms bpm.txt -out results -png
//	ormcalc -data run.csv -correctors hcm.txt -bpms bpm.txt -workers 8 -v -summary
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-orm/dataset"
	"github.com/cwbudde/algo-orm/internal/report"
	"github.com/cwbudde/algo-orm/measure/orm"
	timestats "github.com/cwbudde/algo-orm/stats/time"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ormcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dataPath := fs.String("data", "", "sample table CSV (required)")
	corrPath := fs.String("correctors", "", "corrector list, one name per line (required)")
	bpmPath := fs.String("bpms", "", "BPM list, one name per line (required)")
	outDir := fs.String("out", "", "directory for CSV exports")
	png := fs.Bool("png", false, "also render heatmaps into -out")
	workers := fs.Int("workers", 1, "goroutines computing device spectra")
	verbose := fs.Bool("v", false, "log run details to stderr")
	summary := fs.Bool("summary", false, "print time-domain statistics of every device")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: ormcalc -data FILE -correctors FILE -bpms FILE [flags]\n\n")
		fmt.Fprintf(stderr, "Estimates orbit response matrices and their uncertainties.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := log.New(stderr, "ormcalc: ", 0)
	if *dataPath == "" || *corrPath == "" || *bpmPath == "" {
		fs.Usage()
		return 2
	}
	if *png && *outDir == "" {
		logger.Print("-png requires -out")
		return 2
	}

	tbl, warn, err := dataset.Load(*dataPath)
	if err != nil {
		logger.Print(err)
		return 1
	}
	if warn != nil {
		logger.Printf("warning: %v", warn)
	}

	correctors, err := dataset.LoadDeviceList(*corrPath)
	if err != nil {
		logger.Print(err)
		return 1
	}
	bpms, err := dataset.LoadDeviceList(*bpmPath)
	if err != nil {
		logger.Print(err)
		return 1
	}

	opts := []orm.Option{orm.WithWorkers(*workers)}
	if *verbose {
		opts = append(opts, orm.WithLogger(logger))
	}
	res, err := orm.Run(tbl, correctors, bpms, opts...)
	if err != nil {
		logger.Print(err)
		return 1
	}
	if len(res.Devices.Actuators) == 0 {
		logger.Print("warning: none of the listed correctors has a column in the table")
	}

	if *summary {
		if err := printSummary(stdout, tbl, res.Devices); err != nil {
			logger.Printf("write output: %v", err)
			return 1
		}
	}
	if err := printResult(stdout, res); err != nil {
		logger.Printf("write output: %v", err)
		return 1
	}

	if *outDir != "" {
		written, err := report.Save(*outDir, res, *png)
		for _, path := range written {
			logger.Printf("wrote %s", path)
		}
		if err != nil {
			logger.Print(err)
			return 1
		}
	}
	return 0
}

func printResult(w io.Writer, res *orm.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Corrector\tPeak-to-Peak\tBin\tFreq\tAmplitude\n")
	fmt.Fprintf(tw, "---------\t------------\t---\t----\t---------\n")
	for _, p := range res.Actuators {
		fmt.Fprintf(tw, "%s\t%.3f\t%d\t%.4f\t%.3f\n", p.Name, p.PeakToPeak, p.Peak.Bin, p.Peak.Frequency, p.Peak.Amplitude)
	}

	for _, g := range []orm.Group{orm.Horizontal, orm.Vertical} {
		plane := res.Plane(g)
		fmt.Fprintf(tw, "\nResponse matrix (%s)\n", g)
		printMatrix(tw, plane.Response.Values, "%.4f")
		fmt.Fprintf(tw, "\nUncertainty (%s)\n", g)
		printMatrix(tw, plane.Uncertainty, "%.4e")
	}

	if len(res.Devices.Excluded) > 0 {
		fmt.Fprintf(tw, "\nExcluded BPMs (all samples zero)\n")
		for _, name := range res.Devices.Excluded {
			fmt.Fprintf(tw, "%s\n", name)
		}
	}
	return tw.Flush()
}

func printSummary(w io.Writer, tbl *dataset.Table, devs orm.DeviceSet) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Device\tRole\tMissing\tMean\tRMS\tStd\tPeak-to-Peak\tZero Crossings\n")
	fmt.Fprintf(tw, "------\t----\t-------\t----\t---\t---\t------------\t--------------\n")
	roles := []struct {
		role  string
		names []string
	}{
		{"corrector", devs.Actuators},
		{"horizontal", devs.Horizontal},
		{"vertical", devs.Vertical},
		{"excluded", devs.Excluded},
	}
	for _, r := range roles {
		for _, name := range r.names {
			col, _ := tbl.Column(name)
			st := timestats.Calculate(col)
			fmt.Fprintf(tw, "%s\t%s\t%d\t%.4g\t%.4g\t%.4g\t%.4g\t%d\n",
				name, r.role, st.Missing, st.Mean, st.RMS, st.StdDev, st.PeakToPeak, st.ZeroCrossings)
		}
	}
	fmt.Fprintf(tw, "\n")
	return tw.Flush()
}

func printMatrix(tw *tabwriter.Writer, m *orm.Matrix, format string) {
	if m.Empty() {
		fmt.Fprintf(tw, "(empty)\n")
		return
	}
	fmt.Fprintf(tw, "BPM")
	for _, c := range m.Cols {
		fmt.Fprintf(tw, "\t%s", c)
	}
	fmt.Fprintf(tw, "\n")
	for i, r := range m.Rows {
		fmt.Fprintf(tw, "%s", r)
		for j := range m.Cols {
			fmt.Fprintf(tw, "\t"+format, m.At(i, j))
		}
		fmt.Fprintf(tw, "\n")
	}
}
