package dataset

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoColumns       = errors.New("table has no columns")
	ErrTooFewSamples   = errors.New("table needs at least 2 samples")
	ErrDuplicateColumn = errors.New("duplicate column name")
	ErrRaggedRow       = errors.New("row length does not match header")
	ErrLengthMismatch  = errors.New("columns differ in length")
)

// LoadError reports a sample table or device list that could not be read.
// No partial result accompanies a LoadError.
type LoadError struct {
	Path string // empty when reading from a stream
	Line int    // 1-based input line, 0 when not tied to a line
	Err  error
}

func (e *LoadError) Error() string {
	var b strings.Builder
	b.WriteString("dataset: load")
	if e.Path != "" {
		fmt.Fprintf(&b, " %s", e.Path)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " line %d", e.Line)
	}
	fmt.Fprintf(&b, ": %v", e.Err)
	return b.String()
}

func (e *LoadError) Unwrap() error { return e.Err }

// QualityWarning describes a table that loaded but is not clean. It is
// returned next to a valid table, never instead of one.
type QualityWarning struct {
	// Missing is the number of empty or NaN cells.
	Missing int
	// Columns lists the columns holding missing cells, in header order.
	Columns []string
	// TextColumns lists columns dropped because they hold non-numeric text.
	TextColumns []string
}

func (w *QualityWarning) Error() string {
	var parts []string
	if w.Missing > 0 {
		parts = append(parts, fmt.Sprintf("%d missing values in %s", w.Missing, strings.Join(w.Columns, ", ")))
	}
	if len(w.TextColumns) > 0 {
		parts = append(parts, "non-numeric columns dropped: "+strings.Join(w.TextColumns, ", "))
	}
	return "dataset: " + strings.Join(parts, "; ")
}
