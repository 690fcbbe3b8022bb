// Package matrix implements the dense, row-major matrix used by the wiggle
// training kernel.
//
// A Matrix never changes shape after creation. Every operation that combines
// two matrices checks conformance and panics on a mismatch.
package matrix

import "fmt"

// Matrix is a dense 2-D buffer of float64 values stored row-major.
//
// The element at (r, c) lives at index r*cols + c of the backing slice, and
// len(data) == rows*cols holds for the lifetime of the value.
//
// Example:
//
//	m := matrix.New(2, 3)
//	m.Set(1, 2, 4.5)
//	v := m.At(1, 2) // 4.5
type Matrix struct {
	rows int
	cols int
	data []float64
}

// New creates a zero-filled matrix with the given shape.
// Panics if either dimension is not positive.
func New(rows, cols int) *Matrix {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("matrix.New: invalid shape (%d, %d)", rows, cols))
	}
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

// FromSlice creates a rows×cols matrix holding a copy of data.
func FromSlice(rows, cols int, data []float64) *Matrix {
	m := New(rows, cols)
	if len(data) != len(m.data) {
		panic(fmt.Sprintf("matrix.FromSlice: shape (%d, %d) requires %d elements, got %d",
			rows, cols, len(m.data), len(data)))
	}
	copy(m.data, data)
	return m
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int {
	return m.rows
}

// Cols returns the number of columns.
func (m *Matrix) Cols() int {
	return m.cols
}

// Shape returns (rows, cols).
func (m *Matrix) Shape() (rows, cols int) {
	return m.rows, m.cols
}

// Data returns the backing slice.
//
// WARNING: the slice is a live view; writes modify the matrix.
func (m *Matrix) Data() []float64 {
	return m.data
}

// At returns the element at (r, c).
// Panics if the index is out of bounds.
func (m *Matrix) At(r, c int) float64 {
	return m.data[m.index("At", r, c)]
}

// Set stores v at (r, c).
// Panics if the index is out of bounds.
func (m *Matrix) Set(r, c int, v float64) {
	m.data[m.index("Set", r, c)] = v
}

// SameShape reports whether m and other have identical dimensions.
func (m *Matrix) SameShape(other *Matrix) bool {
	return m.rows == other.rows && m.cols == other.cols
}

// Equal reports whether both matrices have the same shape and elements.
func (m *Matrix) Equal(other *Matrix) bool {
	if !m.SameShape(other) {
		return false
	}
	for i, v := range m.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of m.
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{rows: m.rows, cols: m.cols, data: make([]float64, len(m.data))}
	copy(c.data, m.data)
	return c
}

func (m *Matrix) index(op string, r, c int) int {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(fmt.Sprintf("Matrix.%s: index (%d, %d) out of bounds for shape (%d, %d)",
			op, r, c, m.rows, m.cols))
	}
	return r*m.cols + c
}

func (m *Matrix) mustSameShape(op string, other *Matrix) {
	if !m.SameShape(other) {
		panic(fmt.Sprintf("Matrix.%s: shape mismatch (%d, %d) vs (%d, %d)",
			op, m.rows, m.cols, other.rows, other.cols))
	}
}
