package nn

import (
	"fmt"

	"github.com/born-ml/wiggle/internal/matrix"
)

// Trace is the activation record of one forward pass.
//
// It holds Layers()+1 rows: activation 0 is the input buffer and the last
// activation is the output. A Trace is scratch owned by the caller; every
// Forward call overwrites it, and Cost and the estimators leave it holding the
// last example they processed.
type Trace struct {
	acts []*matrix.Matrix
}

// NewTrace allocates a zeroed trace shaped for n.
func (n *Network) NewTrace() *Trace {
	acts := make([]*matrix.Matrix, len(n.arch))
	for i, w := range n.arch {
		acts[i] = matrix.New(1, w)
	}
	return &Trace{acts: acts}
}

// SetInput copies a 1×w0 row into the input buffer.
// Panics on a shape mismatch.
func (t *Trace) SetInput(row *matrix.Matrix) {
	t.acts[0].CopyFrom(row)
}

// Input returns the input buffer. The matrix is live.
func (t *Trace) Input() *matrix.Matrix {
	return t.acts[0]
}

// Output returns the last activation. Callers must not modify it.
func (t *Trace) Output() *matrix.Matrix {
	return t.acts[len(t.acts)-1]
}

// Activation returns activation i, 0 being the input.
func (t *Trace) Activation(i int) *matrix.Matrix {
	return t.acts[i]
}

// Len returns the number of activation rows.
func (t *Trace) Len() int {
	return len(t.acts)
}

// loadRow copies row r of m into the input buffer without allocating.
func (t *Trace) loadRow(m *matrix.Matrix, r int) {
	in := t.acts[0].Data()
	cols := m.Cols()
	copy(in, m.Data()[r*cols:(r+1)*cols])
}

// Forward runs the network over tr's input:
// activation[i+1] = σ(activation[i] · W[i] + b[i]) for every layer in order.
func (n *Network) Forward(tr *Trace) {
	n.mustMatchTrace("Forward", tr)
	for i := range n.weights {
		next := tr.acts[i+1]
		tr.acts[i].DotInto(next, n.weights[i])
		next.AddInPlace(n.biases[i])
		next.Apply(Sigmoid)
	}
}

// Predict runs input through the network on a fresh trace and returns a copy
// of the output row.
func (n *Network) Predict(input *matrix.Matrix) *matrix.Matrix {
	tr := n.NewTrace()
	tr.SetInput(input)
	n.Forward(tr)
	return tr.Output().Clone()
}

func (n *Network) mustMatchTrace(op string, tr *Trace) {
	if len(tr.acts) != len(n.arch) {
		panic(fmt.Sprintf("Network.%s: trace has %d activations, network needs %d",
			op, len(tr.acts), len(n.arch)))
	}
	for i, w := range n.arch {
		if tr.acts[i].Cols() != w {
			panic(fmt.Sprintf("Network.%s: trace activation %d has width %d, want %d",
				op, i, tr.acts[i].Cols(), w))
		}
	}
}
