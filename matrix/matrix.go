// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"math/rand/v2"

	"github.com/born-ml/wiggle/internal/matrix"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense row-major float64 matrix.
type Matrix = matrix.Matrix

// Range is a half-open interval [Min, Max) for random initialization.
type Range = matrix.Range

// UnitRange is [0, 1).
var UnitRange = matrix.UnitRange

// New creates a zero-filled rows×cols matrix.
func New(rows, cols int) *Matrix {
	return matrix.New(rows, cols)
}

// FromSlice creates a rows×cols matrix holding a copy of data.
func FromSlice(rows, cols int, data []float64) *Matrix {
	return matrix.FromSlice(rows, cols, data)
}

// Full creates a rows×cols matrix with every cell set to v.
func Full(rows, cols int, v float64) *Matrix {
	return matrix.Full(rows, cols, v)
}

// Random creates a rows×cols matrix with cells drawn uniformly from r.
//
// Example:
//
//	rng := rand.New(rand.NewPCG(42, 42))
//	w := matrix.Random(2, 2, rng, matrix.Range{Min: -1, Max: 1})
func Random(rows, cols int, rng *rand.Rand, r Range) *Matrix {
	return matrix.Random(rows, cols, rng, r)
}

// FromDense copies any gonum matrix.
func FromDense(m mat.Matrix) *Matrix {
	return matrix.FromDense(m)
}
