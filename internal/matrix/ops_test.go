package matrix_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/born-ml/wiggle/internal/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// TestApply tests in-place pointwise transforms.
func TestApply(t *testing.T) {
	m := matrix.FromSlice(2, 2, []float64{1, 2, 3, 4})
	m.Apply(func(v float64) float64 { return v * v })
	assert.Equal(t, []float64{1, 4, 9, 16}, m.Data())

	m.ApplyAt(1, 0, func(v float64) float64 { return v + 0.5 })
	assert.Equal(t, 9.5, m.At(1, 0))
	assert.Equal(t, 16.0, m.At(1, 1))
}

// TestAdd_Commutative tests that A+B == B+A for random conformant inputs.
func TestAdd_Commutative(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	for trial := 0; trial < 20; trial++ {
		rows, cols := 1+rng.IntN(5), 1+rng.IntN(5)
		a := matrix.Random(rows, cols, rng, matrix.Range{Min: -10, Max: 10})
		b := matrix.Random(rows, cols, rng, matrix.Range{Min: -10, Max: 10})

		ab := a.Add(b)
		ba := b.Add(a)
		require.True(t, ab.Equal(ba), "trial %d", trial)
		assert.Equal(t, a.At(0, 0)+b.At(0, 0), ab.At(0, 0))
	}
}

// TestAdd_DoesNotMutate tests that Add returns a new matrix.
func TestAdd_DoesNotMutate(t *testing.T) {
	a := matrix.FromSlice(1, 2, []float64{1, 2})
	b := matrix.FromSlice(1, 2, []float64{10, 20})

	sum := a.Add(b)
	assert.Equal(t, []float64{11, 22}, sum.Data())
	assert.Equal(t, []float64{1, 2}, a.Data())

	a.AddInPlace(b)
	assert.Equal(t, []float64{11, 22}, a.Data())
}

// TestAdd_ShapeMismatch tests that non-identical shapes panic.
func TestAdd_ShapeMismatch(t *testing.T) {
	a := matrix.New(2, 3)
	b := matrix.New(3, 2)

	assert.Panics(t, func() { a.Add(b) })
	assert.Panics(t, func() { a.AddInPlace(b) })
	assert.Panics(t, func() { a.CopyFrom(b) })
}

// TestDot tests a hand-computed product.
func TestDot(t *testing.T) {
	a := matrix.FromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := matrix.FromSlice(3, 2, []float64{7, 8, 9, 10, 11, 12})

	c := a.Dot(b)
	assert.Equal(t, []float64{58, 64, 139, 154}, c.Data())
}

// TestDot_ShapeLaw tests that dot(A,B) has shape (A.rows, B.cols).
func TestDot_ShapeLaw(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for trial := 0; trial < 20; trial++ {
		n, k, m := 1+rng.IntN(6), 1+rng.IntN(6), 1+rng.IntN(6)
		a := matrix.New(n, k)
		b := matrix.New(k, m)

		c := a.Dot(b)
		assert.Equal(t, n, c.Rows())
		assert.Equal(t, m, c.Cols())
	}
}

// TestDot_MatchesGonum tests the triple loop against gonum's product.
func TestDot_MatchesGonum(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 22))
	a := matrix.Random(4, 5, rng, matrix.Range{Min: -1, Max: 1})
	b := matrix.Random(5, 3, rng, matrix.Range{Min: -1, Max: 1})

	var want mat.Dense
	want.Mul(a.Dense(), b.Dense())

	got := a.Dot(b)
	assert.True(t, mat.EqualApprox(&want, got.Dense(), 1e-12))
}

// TestDot_InnerMismatch tests that a.cols != b.rows panics.
func TestDot_InnerMismatch(t *testing.T) {
	a := matrix.New(2, 3)
	b := matrix.New(2, 3)
	assert.Panics(t, func() { a.Dot(b) })
}

// TestDotInto tests writing into a caller-owned destination.
func TestDotInto(t *testing.T) {
	a := matrix.FromSlice(1, 2, []float64{1, 1})
	b := matrix.FromSlice(2, 2, []float64{1, 2, 3, 4})
	dst := matrix.Full(1, 2, math.NaN())

	a.DotInto(dst, b)
	assert.Equal(t, []float64{4, 6}, dst.Data())
	assert.Panics(t, func() { a.DotInto(matrix.New(2, 2), b) })
}

// TestRow tests that Row returns a detached 1×cols copy.
func TestRow(t *testing.T) {
	m := matrix.FromSlice(3, 2, []float64{1, 2, 3, 4, 5, 6})
	r := m.Row(1)

	assert.Equal(t, 1, r.Rows())
	assert.Equal(t, []float64{3, 4}, r.Data())

	r.Set(0, 0, 99)
	assert.Equal(t, 3.0, m.At(1, 0))
	assert.Panics(t, func() { m.Row(3) })
}

// TestCopyFrom tests buffer loading.
func TestCopyFrom(t *testing.T) {
	src := matrix.FromSlice(1, 3, []float64{1, 2, 3})
	dst := matrix.New(1, 3)
	dst.CopyFrom(src)

	assert.True(t, dst.Equal(src))
}

var orTable = []float64{
	0, 0, 0,
	0, 1, 1,
	1, 0, 1,
	1, 1, 1,
}

// TestLoadStrided_Features tests that feature mode drops the label column.
func TestLoadStrided_Features(t *testing.T) {
	in := matrix.New(4, 2)
	in.LoadStrided(orTable, 3)

	assert.Equal(t, []float64{0, 0, 0, 1, 1, 0, 1, 1}, in.Data())
}

// TestLoadStrided_Labels tests that a single-column destination takes every
// stride-th element.
func TestLoadStrided_Labels(t *testing.T) {
	out := matrix.New(4, 1)
	out.LoadStrided(orTable[2:], 3)
	assert.Equal(t, []float64{0, 1, 1, 1}, out.Data())

	first := matrix.New(4, 1)
	first.LoadStrided(orTable, 3)
	assert.Equal(t, []float64{0, 0, 1, 1}, first.Data(), "label mode starts at index 0")
}

// TestLoadStrided_RowRoundTrip tests that Row(i) reproduces each example's
// features in order.
func TestLoadStrided_RowRoundTrip(t *testing.T) {
	const stride = 4
	flat := []float64{
		1, 2, 3, 0.5,
		4, 5, 6, 0.25,
		7, 8, 9, 0.125,
	}
	in := matrix.New(3, stride-1)
	in.LoadStrided(flat, stride)

	for i := 0; i < 3; i++ {
		assert.Equal(t, flat[i*stride:i*stride+stride-1], in.Row(i).Data(), "row %d", i)
	}
}

// TestLoadStrided_Short tests that an undersized input panics.
func TestLoadStrided_Short(t *testing.T) {
	m := matrix.New(4, 2)
	assert.Panics(t, func() { m.LoadStrided(orTable[:6], 3) })
	assert.Panics(t, func() { m.LoadStrided(orTable, 0) })
}
