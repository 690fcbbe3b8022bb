// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package dataset provides the training tables used by wiggle examples.
//
// A Dataset pairs an input matrix with a target matrix row for row. The
// built-in tables cover the two-input logic gates and n-bit binary adders:
//
//	ds := dataset.XOR.Dataset()
//	adder := dataset.Adder(2) // 16 rows, 4 inputs, 3 outputs
package dataset

import (
	"github.com/born-ml/wiggle/internal/dataset"
	"github.com/born-ml/wiggle/internal/matrix"
)

// Dataset pairs inputs with targets.
type Dataset = dataset.Dataset

// Gate is a named two-input truth table.
type Gate = dataset.Gate

// ErrUnknownGate is returned by GateByName.
var ErrUnknownGate = dataset.ErrUnknownGate

// Logic gates.
var (
	OR   = dataset.OR
	AND  = dataset.AND
	NAND = dataset.NAND
	XOR  = dataset.XOR
)

// New pairs inputs with targets. Row counts must match.
func New(inputs, targets *matrix.Matrix) *Dataset {
	return dataset.New(inputs, targets)
}

// FromSamples splits a flat table of rows of width stride into inputs (the
// first stride-1 columns) and targets (the last column).
func FromSamples(flat []float64, stride int) *Dataset {
	return dataset.FromSamples(flat, stride)
}

// Gates returns every built-in gate.
func Gates() []Gate {
	return dataset.Gates()
}

// GateByName looks a gate up by name or symbol.
func GateByName(name string) (Gate, error) {
	return dataset.GateByName(name)
}

// Adder returns the full truth table of a bits-wide binary adder.
func Adder(bits int) *Dataset {
	return dataset.Adder(bits)
}
