// Package dataset holds labeled training tables for the wiggle kernel.
package dataset

import (
	"fmt"

	"github.com/born-ml/wiggle/internal/matrix"
)

// Dataset pairs an input matrix with a target matrix. Row i of each is one
// training example.
type Dataset struct {
	Inputs  *matrix.Matrix
	Targets *matrix.Matrix
}

// New creates a Dataset. Panics if the row counts differ.
func New(inputs, targets *matrix.Matrix) *Dataset {
	if inputs.Rows() != targets.Rows() {
		panic(fmt.Sprintf("dataset.New: %d input rows vs %d target rows",
			inputs.Rows(), targets.Rows()))
	}
	return &Dataset{Inputs: inputs, Targets: targets}
}

// FromSamples builds a single-label Dataset from flat, a sequence of samples
// that are each stride values wide: stride-1 features followed by the label.
//
// Example:
//
//	ds := dataset.FromSamples(dataset.XOR.Table, 3)
//	ds.Len()     // 4
//	ds.Features() // 2
func FromSamples(flat []float64, stride int) *Dataset {
	if stride < 2 {
		panic(fmt.Sprintf("dataset.FromSamples: stride %d leaves no feature columns", stride))
	}
	if len(flat) == 0 || len(flat)%stride != 0 {
		panic(fmt.Sprintf("dataset.FromSamples: %d values is not a whole number of %d-wide samples",
			len(flat), stride))
	}

	rows := len(flat) / stride
	inputs := matrix.New(rows, stride-1)
	inputs.LoadStrided(flat, stride)

	targets := matrix.New(rows, 1)
	targets.LoadStrided(flat[stride-1:], stride)

	return New(inputs, targets)
}

// Len returns the number of examples.
func (d *Dataset) Len() int {
	return d.Inputs.Rows()
}

// Features returns the input width.
func (d *Dataset) Features() int {
	return d.Inputs.Cols()
}

// Outputs returns the target width.
func (d *Dataset) Outputs() int {
	return d.Targets.Cols()
}

// Example returns copies of the i-th input and target rows.
func (d *Dataset) Example(i int) (input, target *matrix.Matrix) {
	return d.Inputs.Row(i), d.Targets.Row(i)
}
