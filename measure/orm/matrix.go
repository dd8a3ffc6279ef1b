package orm

import (
	"slices"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense float64 matrix with row and column labels. It implements
// [mat.Matrix]. A matrix with no rows or no columns is valid and holds no
// storage.
type Matrix struct {
	Rows []string
	Cols []string
	data *mat.Dense
}

// NewMatrix returns a zero matrix labelled by rows and cols. The label
// slices are copied.
func NewMatrix(rows, cols []string) *Matrix {
	m := &Matrix{
		Rows: append([]string(nil), rows...),
		Cols: append([]string(nil), cols...),
	}
	if len(rows) > 0 && len(cols) > 0 {
		m.data = mat.NewDense(len(rows), len(cols), nil)
	}
	return m
}

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (r, c int) { return len(m.Rows), len(m.Cols) }

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	if m.data == nil {
		panic(mat.ErrIndexOutOfRange)
	}
	return m.data.At(i, j)
}

// T returns the transpose view of m.
func (m *Matrix) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// Set sets the element at row i, column j.
func (m *Matrix) Set(i, j int, v float64) {
	if m.data == nil {
		panic(mat.ErrIndexOutOfRange)
	}
	m.data.Set(i, j, v)
}

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	if m.data == nil {
		panic(mat.ErrIndexOutOfRange)
	}
	return mat.Row(nil, i, m.data)
}

// Empty reports whether m has no elements.
func (m *Matrix) Empty() bool { return m.data == nil }

// Dense returns the backing matrix, or nil when m is empty.
func (m *Matrix) Dense() *mat.Dense { return m.data }

// Equal reports whether m and o have identical labels and bit-identical
// elements.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if !slices.Equal(m.Rows, o.Rows) || !slices.Equal(m.Cols, o.Cols) {
		return false
	}
	if m.data == nil || o.data == nil {
		return m.data == nil && o.data == nil
	}
	return mat.Equal(m.data, o.data)
}
