package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// missingTokens are cell values treated as absent, matching the defaults of
// common CSV tooling.
var missingTokens = map[string]struct{}{
	"":     {},
	"nan":  {},
	"na":   {},
	"n/a":  {},
	"null": {},
	"none": {},
}

func isMissing(cell string) bool {
	_, ok := missingTokens[strings.ToLower(cell)]
	return ok
}

// Load reads a CSV sample table from path. See [Read].
func Load(path string) (*Table, *QualityWarning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	t, warn, err := Read(f)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, nil, err
	}
	return t, warn, nil
}

// Read parses a CSV sample table. The first record names the columns; every
// further record is one sample. Empty header cells are named "Unnamed: <i>".
//
// Columns holding any non-numeric text are dropped. Missing cells become NaN.
// Both conditions are reported through the returned *QualityWarning, which is
// nil for a clean table. Structural problems return a *LoadError.
func Read(r io.Reader) (*Table, *QualityWarning, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, &LoadError{Err: ErrNoColumns}
	}
	if err != nil {
		return nil, nil, parseLoadError(err)
	}

	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	names := make([]string, len(header))
	seen := make(map[string]struct{}, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if h == "" {
			h = fmt.Sprintf("Unnamed: %d", i)
		}
		if _, dup := seen[h]; dup {
			return nil, nil, &LoadError{Line: 1, Err: fmt.Errorf("%w: %q", ErrDuplicateColumn, h)}
		}
		seen[h] = struct{}{}
		names[i] = h
	}

	cols := make([][]float64, len(names))
	missing := make([]int, len(names))
	text := make([]bool, len(names))

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, parseLoadError(err)
		}
		for i, cell := range rec {
			cell = strings.TrimSpace(cell)
			if isMissing(cell) {
				cols[i] = append(cols[i], math.NaN())
				missing[i]++
				continue
			}
			// Out-of-range values parse to ±Inf with ErrRange and stay numeric.
			v, perr := strconv.ParseFloat(cell, 64)
			if perr != nil && !errors.Is(perr, strconv.ErrRange) {
				text[i] = true
			}
			cols[i] = append(cols[i], v)
		}
	}

	if len(cols[0]) < 2 {
		return nil, nil, &LoadError{Err: fmt.Errorf("%w: got %d", ErrTooFewSamples, len(cols[0]))}
	}

	var warn QualityWarning
	keptNames := make([]string, 0, len(names))
	keptCols := make([][]float64, 0, len(cols))
	for i, name := range names {
		if text[i] {
			warn.TextColumns = append(warn.TextColumns, name)
			continue
		}
		if missing[i] > 0 {
			warn.Missing += missing[i]
			warn.Columns = append(warn.Columns, name)
		}
		keptNames = append(keptNames, name)
		keptCols = append(keptCols, cols[i])
	}

	t, err := New(keptNames, keptCols)
	if err != nil {
		return nil, nil, &LoadError{Err: err}
	}
	if warn.Missing == 0 && len(warn.TextColumns) == 0 {
		return t, nil, nil
	}
	return t, &warn, nil
}

func parseLoadError(err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		cause := pe.Err
		if errors.Is(cause, csv.ErrFieldCount) {
			cause = ErrRaggedRow
		}
		return &LoadError{Line: pe.Line, Err: cause}
	}
	return &LoadError{Err: err}
}
