package nn

import (
	"github.com/born-ml/wiggle/internal/dataset"
	"github.com/born-ml/wiggle/internal/matrix"
)

// Deltas is the backward-pass scratch of Backprop: one 1×w[i] row per
// activation holding ∂cost/∂activation for the current example.
type Deltas struct {
	rows []*matrix.Matrix
}

// NewDeltas allocates zeroed delta rows shaped for n.
func NewDeltas(n *Network) *Deltas {
	rows := make([]*matrix.Matrix, len(n.arch))
	for i, w := range n.arch {
		rows[i] = matrix.New(1, w)
	}
	return &Deltas{rows: rows}
}

// Layer returns delta row i.
func (d *Deltas) Layer(i int) *matrix.Matrix {
	return d.rows[i]
}

func (d *Deltas) matchesNetwork(n *Network) bool {
	if len(d.rows) != len(n.arch) {
		return false
	}
	for i, w := range n.arch {
		if d.rows[i].Rows() != 1 || d.rows[i].Cols() != w {
			return false
		}
	}
	return true
}

// Zero clears every delta row.
func (d *Deltas) Zero() {
	for _, r := range d.rows {
		r.Fill(0)
	}
}

// Backprop computes the gradient of the mean squared error analytically by
// reverse-mode chain rule through every sigmoid layer, averaged over the
// dataset.
type Backprop struct{}

// Name implements Estimator.
func (Backprop) Name() string {
	return BackpropName
}

// Estimate implements Estimator.
func (b Backprop) Estimate(n *Network, ds *dataset.Dataset) *Gradient {
	g := NewGradient(n)
	b.EstimateInto(g, n, ds, n.NewTrace(), NewDeltas(n))
	return g
}

// EstimateInto writes the gradient into g using caller-provided scratch.
//
// For every example: run forward, seed delta[L][j] = out[j] - target[j], then
// for l = L..1 and every unit j with activation a:
//
//	s = 2 * delta[l][j] * a * (1 - a)
//	g.bias[l-1][j] += s
//	g.weight[l-1][k][j] += s * activation[l-1][k]
//	delta[l-1][k] += s * weight[l-1][k][j]
//
// After the last example every cell is divided by the number of examples.
//
// The factor 2 is applied again at every layer it propagates through, so the
// cells of layer i (0-based) are 2^(Layers()-1-i) times ∂cost/∂parameter.
// Only the output layer holds the exact derivative; every layer still points
// in the descent direction.
func (Backprop) EstimateInto(g *Gradient, n *Network, ds *dataset.Dataset, tr *Trace, d *Deltas) {
	n.mustMatchDataset("Backprop", ds)
	n.mustMatchTrace("Backprop", tr)
	if !g.MatchesNetwork(n) {
		panic("Backprop.EstimateInto: gradient does not match network")
	}
	if !d.matchesNetwork(n) {
		panic("Backprop.EstimateInto: deltas do not match network")
	}

	g.Zero()
	last := n.Layers()
	targets := ds.Targets.Data()
	outs := ds.Targets.Cols()
	rows := ds.Len()

	for i := 0; i < rows; i++ {
		tr.loadRow(ds.Inputs, i)
		n.Forward(tr)

		d.Zero()
		out := tr.Output().Data()
		seed := d.rows[last].Data()
		for j := 0; j < outs; j++ {
			seed[j] = out[j] - targets[i*outs+j]
		}

		for l := last; l >= 1; l-- {
			act := tr.acts[l].Data()
			delta := d.rows[l].Data()
			prevAct := tr.acts[l-1].Data()
			prevDelta := d.rows[l-1].Data()

			w := n.weights[l-1].Data()
			gw := g.Weights[l-1].Data()
			gb := g.Biases[l-1].Data()
			cols := n.weights[l-1].Cols()

			for j, a := range act {
				s := 2 * delta[j] * SigmoidPrime(a)
				gb[j] += s
				for k, pa := range prevAct {
					gw[k*cols+j] += s * pa
					prevDelta[k] += s * w[k*cols+j]
				}
			}
		}
	}

	g.Scale(1 / float64(rows))
}
