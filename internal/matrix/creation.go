package matrix

import (
	"fmt"
	"math/rand/v2"
)

// Range is a half-open interval [Min, Max) for uniform sampling.
type Range struct {
	Min float64
	Max float64
}

// UnitRange is [0, 1), used when a zero Range is given.
var UnitRange = Range{Min: 0, Max: 1}

func (r Range) orDefault() Range {
	if r == (Range{}) {
		return UnitRange
	}
	if r.Max < r.Min {
		panic(fmt.Sprintf("matrix.Range: max %v < min %v", r.Max, r.Min))
	}
	return r
}

// Sample draws one value uniformly from r using rng.
func (r Range) Sample(rng *rand.Rand) float64 {
	r = r.orDefault()
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// Full creates a rows×cols matrix with every element set to v.
func Full(rows, cols int, v float64) *Matrix {
	m := New(rows, cols)
	m.Fill(v)
	return m
}

// Random creates a rows×cols matrix with elements drawn independently and
// uniformly from r.
//
// Example:
//
//	rng := rand.New(rand.NewPCG(42, 42))
//	w := matrix.Random(2, 3, rng, matrix.Range{Min: -1, Max: 1})
func Random(rows, cols int, rng *rand.Rand, r Range) *Matrix {
	m := New(rows, cols)
	m.Randomize(rng, r)
	return m
}

// Fill sets every element to v.
func (m *Matrix) Fill(v float64) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Randomize resamples every element from r. A zero Range means [0, 1).
func (m *Matrix) Randomize(rng *rand.Rand, r Range) {
	if rng == nil {
		panic("Matrix.Randomize: nil random source")
	}
	r = r.orDefault()
	for i := range m.data {
		m.data[i] = r.Sample(rng)
	}
}
