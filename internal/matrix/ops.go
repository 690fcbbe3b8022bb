package matrix

import "fmt"

// Apply replaces every element x with f(x).
func (m *Matrix) Apply(f func(float64) float64) {
	for i, v := range m.data {
		m.data[i] = f(v)
	}
}

// ApplyAt replaces the element at (r, c) with f of its current value.
func (m *Matrix) ApplyAt(r, c int, f func(float64) float64) {
	i := m.index("ApplyAt", r, c)
	m.data[i] = f(m.data[i])
}

// Add returns the elementwise sum m + other as a new matrix.
// Panics if the shapes differ.
func (m *Matrix) Add(other *Matrix) *Matrix {
	m.mustSameShape("Add", other)
	out := m.Clone()
	for i, v := range other.data {
		out.data[i] += v
	}
	return out
}

// AddInPlace adds other into m elementwise.
// Panics if the shapes differ.
func (m *Matrix) AddInPlace(other *Matrix) {
	m.mustSameShape("AddInPlace", other)
	for i, v := range other.data {
		m.data[i] += v
	}
}

// Dot returns the matrix product m · other.
//
// The product is computed by plain triple-nested accumulation; the result has
// shape (m.Rows(), other.Cols()). Panics if m.Cols() != other.Rows().
func (m *Matrix) Dot(other *Matrix) *Matrix {
	if m.cols != other.rows {
		panic(fmt.Sprintf("Matrix.Dot: inner dimensions differ (%d, %d) · (%d, %d)",
			m.rows, m.cols, other.rows, other.cols))
	}
	out := New(m.rows, other.cols)
	m.dotInto(out, other)
	return out
}

// DotInto writes m · other into dst, which must already have the result shape.
func (m *Matrix) DotInto(dst, other *Matrix) {
	if m.cols != other.rows {
		panic(fmt.Sprintf("Matrix.DotInto: inner dimensions differ (%d, %d) · (%d, %d)",
			m.rows, m.cols, other.rows, other.cols))
	}
	if dst.rows != m.rows || dst.cols != other.cols {
		panic(fmt.Sprintf("Matrix.DotInto: destination shape (%d, %d), want (%d, %d)",
			dst.rows, dst.cols, m.rows, other.cols))
	}
	m.dotInto(dst, other)
}

func (m *Matrix) dotInto(dst, other *Matrix) {
	for i := 0; i < m.rows; i++ {
		for j := 0; j < other.cols; j++ {
			var acc float64
			for k := 0; k < m.cols; k++ {
				acc += m.data[i*m.cols+k] * other.data[k*other.cols+j]
			}
			dst.data[i*dst.cols+j] = acc
		}
	}
}

// Row returns a 1×cols copy of row r.
func (m *Matrix) Row(r int) *Matrix {
	if r < 0 || r >= m.rows {
		panic(fmt.Sprintf("Matrix.Row: row %d out of bounds for %d rows", r, m.rows))
	}
	out := New(1, m.cols)
	copy(out.data, m.data[r*m.cols:(r+1)*m.cols])
	return out
}

// CopyFrom overwrites m's buffer with other's.
// Panics if the shapes differ.
func (m *Matrix) CopyFrom(other *Matrix) {
	m.mustSameShape("CopyFrom", other)
	copy(m.data, other.data)
}

// LoadStrided fills m from flat, a sequence of samples that are each stride
// values wide (the features followed by one label column).
//
// The mode is chosen by m's width:
//   - one column: m receives the label column, i.e. every stride-th element
//     starting at index 0 of flat
//   - otherwise: m receives the feature columns; an element is skipped when it
//     sits on a stride boundary ((i+1)%stride == 0) and the write cursor is at
//     the start of a destination row
//
// Loading stops once m is full. Panics if flat cannot fill m.
//
// Example:
//
//	flat := []float64{0, 0, 0, 0, 1, 1, 1, 0, 1, 1, 1, 1}
//	in := matrix.New(4, 2)
//	in.LoadStrided(flat, 3)  // [[0 0] [0 1] [1 0] [1 1]]
//	out := matrix.New(4, 1)
//	out.LoadStrided(flat[2:], 3)  // [[0] [1] [1] [1]]
func (m *Matrix) LoadStrided(flat []float64, stride int) {
	if stride <= 0 {
		panic(fmt.Sprintf("Matrix.LoadStrided: invalid stride %d", stride))
	}

	j := 0
	if m.cols == 1 {
		for i := 0; i < len(flat) && j < len(m.data); i += stride {
			m.data[j] = flat[i]
			j++
		}
	} else {
		for i := 0; i < len(flat) && j < len(m.data); i++ {
			if (i+1)%stride == 0 && j%m.cols == 0 {
				continue
			}
			m.data[j] = flat[i]
			j++
		}
	}

	if j < len(m.data) {
		panic(fmt.Sprintf("Matrix.LoadStrided: %d values with stride %d fill only %d of %d elements",
			len(flat), stride, j, len(m.data)))
	}
}
