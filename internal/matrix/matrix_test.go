package matrix_test

import (
	"math/rand/v2"
	"testing"

	"github.com/born-ml/wiggle/internal/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew tests zero-filled construction.
func TestNew(t *testing.T) {
	m := matrix.New(3, 4)

	rows, cols := m.Shape()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 4, cols)
	require.Len(t, m.Data(), 12)
	for i, v := range m.Data() {
		assert.Zero(t, v, "element %d", i)
	}
}

// TestNew_InvalidShape tests that non-positive dimensions panic.
func TestNew_InvalidShape(t *testing.T) {
	assert.Panics(t, func() { matrix.New(0, 3) })
	assert.Panics(t, func() { matrix.New(2, -1) })
}

// TestFromSlice tests construction from a literal and that the input is copied.
func TestFromSlice(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5, 6}
	m := matrix.FromSlice(2, 3, data)
	data[0] = 100

	assert.Equal(t, 1.0, m.At(0, 0))
	assert.Equal(t, 6.0, m.At(1, 2))
	assert.Panics(t, func() { matrix.FromSlice(2, 2, data) })
}

// TestAtSet tests row-major element addressing.
func TestAtSet(t *testing.T) {
	m := matrix.New(2, 3)
	m.Set(1, 2, 4.5)
	m.Set(0, 1, -1)

	assert.Equal(t, 4.5, m.At(1, 2))
	assert.Equal(t, 4.5, m.Data()[1*3+2])
	assert.Equal(t, -1.0, m.Data()[1])
}

// TestAtSet_OutOfBounds tests that out-of-range access panics.
func TestAtSet_OutOfBounds(t *testing.T) {
	m := matrix.New(2, 2)

	assert.Panics(t, func() { m.At(2, 0) })
	assert.Panics(t, func() { m.At(0, 2) })
	assert.Panics(t, func() { m.At(-1, 0) })
	assert.Panics(t, func() { m.Set(0, 5, 1) })
	assert.Panics(t, func() { m.ApplyAt(3, 3, func(v float64) float64 { return v }) })
}

// TestFill tests constant fill.
func TestFill(t *testing.T) {
	m := matrix.Full(2, 2, 7)
	for _, v := range m.Data() {
		assert.Equal(t, 7.0, v)
	}

	m.Fill(-3)
	for _, v := range m.Data() {
		assert.Equal(t, -3.0, v)
	}
}

// TestRandomize_Range tests that every sample lands inside the requested range.
func TestRandomize_Range(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	m := matrix.Random(10, 10, rng, matrix.Range{Min: 5, Max: 10})

	for _, v := range m.Data() {
		assert.GreaterOrEqual(t, v, 5.0)
		assert.Less(t, v, 10.0)
	}
}

// TestRandomize_DefaultRange tests that a zero Range samples from [0, 1).
func TestRandomize_DefaultRange(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	m := matrix.New(8, 8)
	m.Randomize(rng, matrix.Range{})

	distinct := map[float64]struct{}{}
	for _, v := range m.Data() {
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
		distinct[v] = struct{}{}
	}
	assert.Greater(t, len(distinct), 1, "cells must be sampled independently")
}

// TestRandomize_Seeded tests that equal seeds give equal matrices.
func TestRandomize_Seeded(t *testing.T) {
	a := matrix.Random(3, 3, rand.New(rand.NewPCG(9, 9)), matrix.UnitRange)
	b := matrix.Random(3, 3, rand.New(rand.NewPCG(9, 9)), matrix.UnitRange)
	c := matrix.Random(3, 3, rand.New(rand.NewPCG(9, 10)), matrix.UnitRange)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

// TestRandomize_NilSource tests that a missing generator panics.
func TestRandomize_NilSource(t *testing.T) {
	assert.Panics(t, func() { matrix.New(1, 1).Randomize(nil, matrix.UnitRange) })
}

// TestClone tests that clones do not share storage.
func TestClone(t *testing.T) {
	m := matrix.FromSlice(1, 3, []float64{1, 2, 3})
	c := m.Clone()
	c.Set(0, 0, 9)

	assert.Equal(t, 1.0, m.At(0, 0))
	assert.Equal(t, 9.0, c.At(0, 0))
}

// TestNamed tests that named rendering keeps the name and values.
func TestNamed(t *testing.T) {
	m := matrix.FromSlice(2, 2, []float64{1, 2, 3, 4})

	s := m.Named("ws1", 4)
	assert.Contains(t, s, "ws1 = ")
	assert.Contains(t, s, "4")
	assert.NotEmpty(t, m.String())
}

// TestDense tests the round trip through gonum.
func TestDense(t *testing.T) {
	m := matrix.FromSlice(2, 3, []float64{1, 2, 3, 4, 5, 6})
	d := m.Dense()

	r, c := d.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, 6.0, d.At(1, 2))

	d.Set(0, 0, 42)
	assert.Equal(t, 1.0, m.At(0, 0), "Dense must copy")
	assert.True(t, matrix.FromDense(m.Dense()).Equal(m))
}
