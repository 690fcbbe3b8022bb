package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Dense copies m into a gonum dense matrix.
func (m *Matrix) Dense() *mat.Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return mat.NewDense(m.rows, m.cols, data)
}

// FromDense copies a gonum matrix into a new Matrix.
func FromDense(d mat.Matrix) *Matrix {
	r, c := d.Dims()
	m := New(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.data[i*c+j] = d.At(i, j)
		}
	}
	return m
}

// String renders the matrix with gonum's formatter.
func (m *Matrix) String() string {
	return fmt.Sprintf("%.7g", mat.Formatted(m.Dense(), mat.Squeeze()))
}

// Named returns the matrix rendered under name, one row per line, each
// line indented by pad spaces.
func (m *Matrix) Named(name string, pad int) string {
	prefix := fmt.Sprintf("%*s", pad+len(name)+3, "")
	return fmt.Sprintf("%*s%s = %.7g", pad, "", name,
		mat.Formatted(m.Dense(), mat.Prefix(prefix), mat.Squeeze()))
}
