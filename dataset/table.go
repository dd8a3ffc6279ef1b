package dataset

import "fmt"

// Table is an ordered collection of named float64 columns of equal length.
// A Table is never modified after construction and is safe for concurrent
// readers.
type Table struct {
	names []string
	index map[string]int
	cols  [][]float64
	rows  int
}

// New builds a Table from parallel name and column slices. The column data
// is not copied.
func New(names []string, cols [][]float64) (*Table, error) {
	if len(names) == 0 {
		return nil, ErrNoColumns
	}
	if len(names) != len(cols) {
		return nil, fmt.Errorf("dataset: %d names for %d columns", len(names), len(cols))
	}

	t := &Table{
		names: append([]string(nil), names...),
		index: make(map[string]int, len(names)),
		cols:  cols,
		rows:  len(cols[0]),
	}
	for i, name := range names {
		if _, dup := t.index[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, name)
		}
		if len(cols[i]) != t.rows {
			return nil, fmt.Errorf("%w: %q has %d samples, want %d", ErrLengthMismatch, name, len(cols[i]), t.rows)
		}
		t.index[name] = i
	}
	return t, nil
}

// Len returns the number of samples per column.
func (t *Table) Len() int { return t.rows }

// Columns returns the column names in table order.
func (t *Table) Columns() []string { return append([]string(nil), t.names...) }

// Has reports whether the table holds a column called name.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Column returns the samples of the named column. The slice is shared with
// the table and must not be modified.
func (t *Table) Column(name string) ([]float64, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.cols[i], true
}

// AllZero reports whether every sample of the named column is exactly zero.
// NaN samples are not zero. Unknown columns report false.
func (t *Table) AllZero(name string) bool {
	col, ok := t.Column(name)
	if !ok {
		return false
	}
	for _, v := range col {
		if v != 0 {
			return false
		}
	}
	return true
}
