package nn

import (
	"fmt"
	"math"

	"github.com/born-ml/wiggle/internal/matrix"
	"gonum.org/v1/gonum/floats"
)

// Gradient holds ∂cost/∂parameter for every weight and bias of a network.
// Weights[i] and Biases[i] have the shapes of the network's layer i.
type Gradient struct {
	Weights []*matrix.Matrix
	Biases  []*matrix.Matrix
}

// NewGradient allocates a zero gradient shaped like n.
func NewGradient(n *Network) *Gradient {
	g := &Gradient{
		Weights: make([]*matrix.Matrix, n.Layers()),
		Biases:  make([]*matrix.Matrix, n.Layers()),
	}
	for i := range n.weights {
		g.Weights[i] = matrix.New(n.weights[i].Shape())
		g.Biases[i] = matrix.New(n.biases[i].Shape())
	}
	return g
}

// Layers returns the number of layers.
func (g *Gradient) Layers() int {
	return len(g.Weights)
}

// Zero clears every cell.
func (g *Gradient) Zero() {
	for i := range g.Weights {
		g.Weights[i].Fill(0)
		g.Biases[i].Fill(0)
	}
}

// Scale multiplies every cell by c.
func (g *Gradient) Scale(c float64) {
	for i := range g.Weights {
		floats.Scale(c, g.Weights[i].Data())
		floats.Scale(c, g.Biases[i].Data())
	}
}

// Flatten returns every cell in the order of Network.Params.
func (g *Gradient) Flatten() []float64 {
	var out []float64
	for i := range g.Weights {
		out = append(out, g.Weights[i].Data()...)
		out = append(out, g.Biases[i].Data()...)
	}
	return out
}

// Norm returns the Euclidean norm of the gradient.
func (g *Gradient) Norm() float64 {
	return floats.Norm(g.Flatten(), 2)
}

// MaxAbsDiff returns the largest absolute per-cell difference between g and
// other. Panics if the shapes differ.
func (g *Gradient) MaxAbsDiff(other *Gradient) float64 {
	if !g.Matches(other) {
		panic("Gradient.MaxAbsDiff: gradient shapes differ")
	}
	return floats.Distance(g.Flatten(), other.Flatten(), math.Inf(1))
}

// Matches reports whether other has the same layer shapes as g.
func (g *Gradient) Matches(other *Gradient) bool {
	if len(g.Weights) != len(other.Weights) {
		return false
	}
	for i := range g.Weights {
		if !g.Weights[i].SameShape(other.Weights[i]) || !g.Biases[i].SameShape(other.Biases[i]) {
			return false
		}
	}
	return true
}

// MatchesNetwork reports whether g has n's parameter shapes.
func (g *Gradient) MatchesNetwork(n *Network) bool {
	if len(g.Weights) != n.Layers() {
		return false
	}
	for i := range g.Weights {
		if !g.Weights[i].SameShape(n.weights[i]) || !g.Biases[i].SameShape(n.biases[i]) {
			return false
		}
	}
	return true
}

// String renders the gradient layer by layer.
func (g *Gradient) String() string {
	s := "[\n"
	for i := range g.Weights {
		s += g.Weights[i].Named(fmt.Sprintf("dws%d", i+1), 4) + "\n"
		s += g.Biases[i].Named(fmt.Sprintf("dbs%d", i+1), 4) + "\n"
	}
	return s + "]"
}
