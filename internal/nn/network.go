// Package nn implements the wiggle feed-forward network and its two gradient
// estimators.
//
// A Network is a stack of affine layers, each followed by an elementwise
// logistic sigmoid. Forward passes write into a caller-owned Trace, so the
// network itself only holds trainable parameters:
//
//	net := nn.New(2, 2, 1)
//	net.Randomize(rng, matrix.UnitRange)
//
//	tr := net.NewTrace()
//	tr.SetInput(matrix.FromSlice(1, 2, []float64{0, 1}))
//	net.Forward(tr)
//	y := tr.Output().At(0, 0)
//
// Gradients are estimated either numerically (FiniteDiff) or analytically
// (Backprop); both return a Gradient with the network's parameter shapes.
package nn

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/born-ml/wiggle/internal/matrix"
)

// Network is a fully connected sigmoid network.
//
// For architecture [w0, w1, ..., wL] layer i (0-based) holds a weight matrix
// of shape (w[i], w[i+1]) and a bias row of shape (1, w[i+1]).
type Network struct {
	arch    []int
	weights []*matrix.Matrix
	biases  []*matrix.Matrix
}

// New creates a network with zero-filled parameters.
// Panics if arch has fewer than two entries or a non-positive width.
func New(arch ...int) *Network {
	if len(arch) < 2 {
		panic(fmt.Sprintf("nn.New: architecture needs at least 2 widths, got %v", arch))
	}
	for i, w := range arch {
		if w <= 0 {
			panic(fmt.Sprintf("nn.New: width %d at index %d must be > 0", w, i))
		}
	}

	layers := len(arch) - 1
	n := &Network{
		arch:    append([]int(nil), arch...),
		weights: make([]*matrix.Matrix, layers),
		biases:  make([]*matrix.Matrix, layers),
	}
	for i := 0; i < layers; i++ {
		n.weights[i] = matrix.New(arch[i], arch[i+1])
		n.biases[i] = matrix.New(1, arch[i+1])
	}
	return n
}

// Randomize resamples every weight and bias from r using rng.
func (n *Network) Randomize(rng *rand.Rand, r matrix.Range) {
	for i := range n.weights {
		n.weights[i].Randomize(rng, r)
		n.biases[i].Randomize(rng, r)
	}
}

// Fill sets every weight and bias to v.
func (n *Network) Fill(v float64) {
	for i := range n.weights {
		n.weights[i].Fill(v)
		n.biases[i].Fill(v)
	}
}

// Arch returns a copy of the layer widths.
func (n *Network) Arch() []int {
	return append([]int(nil), n.arch...)
}

// Layers returns the number of affine layers (len(Arch()) - 1).
func (n *Network) Layers() int {
	return len(n.weights)
}

// InputWidth returns w0.
func (n *Network) InputWidth() int {
	return n.arch[0]
}

// OutputWidth returns wL.
func (n *Network) OutputWidth() int {
	return n.arch[len(n.arch)-1]
}

// Weight returns layer i's weight matrix. The matrix is live.
func (n *Network) Weight(i int) *matrix.Matrix {
	return n.weights[i]
}

// Bias returns layer i's bias row. The matrix is live.
func (n *Network) Bias(i int) *matrix.Matrix {
	return n.biases[i]
}

// NumParams returns the total count of scalar weights and biases.
func (n *Network) NumParams() int {
	total := 0
	for i := range n.weights {
		total += len(n.weights[i].Data()) + len(n.biases[i].Data())
	}
	return total
}

// Params returns a flat copy of every parameter, layer by layer, weights
// (row-major) before biases.
func (n *Network) Params() []float64 {
	out := make([]float64, 0, n.NumParams())
	for i := range n.weights {
		out = append(out, n.weights[i].Data()...)
		out = append(out, n.biases[i].Data()...)
	}
	return out
}

// SetParams loads parameters in the order produced by Params.
func (n *Network) SetParams(flat []float64) {
	if len(flat) != n.NumParams() {
		panic(fmt.Sprintf("Network.SetParams: got %d values, want %d", len(flat), n.NumParams()))
	}
	off := 0
	for i := range n.weights {
		off += copy(n.weights[i].Data(), flat[off:])
		off += copy(n.biases[i].Data(), flat[off:])
	}
}

// Clone returns a deep copy of the network.
func (n *Network) Clone() *Network {
	c := &Network{
		arch:    n.Arch(),
		weights: make([]*matrix.Matrix, len(n.weights)),
		biases:  make([]*matrix.Matrix, len(n.biases)),
	}
	for i := range n.weights {
		c.weights[i] = n.weights[i].Clone()
		c.biases[i] = n.biases[i].Clone()
	}
	return c
}

// String renders every layer's weights and biases.
func (n *Network) String() string {
	var sb strings.Builder
	sb.WriteString("[\n")
	for i := range n.weights {
		sb.WriteString(n.weights[i].Named(fmt.Sprintf("ws%d", i+1), 4))
		sb.WriteString("\n")
		sb.WriteString(n.biases[i].Named(fmt.Sprintf("bs%d", i+1), 4))
		sb.WriteString("\n")
	}
	sb.WriteString("]")
	return sb.String()
}
