package nn

import (
	"fmt"

	"github.com/born-ml/wiggle/internal/dataset"
	"github.com/born-ml/wiggle/internal/matrix"
)

// FiniteDiff estimates the gradient with forward differences.
//
// Each scalar parameter p is nudged to p+Eps, the full-dataset cost is
// recomputed, and (C' - C) / Eps is recorded before p is restored. That is one
// pass over the dataset per parameter, which makes this the slow reference
// estimator that Backprop is checked against.
type FiniteDiff struct {
	Eps float64
}

// Name implements Estimator.
func (FiniteDiff) Name() string {
	return FiniteDiffName
}

// Estimate implements Estimator.
//
// Parameters are visited layer by layer, weights before biases, row-major.
func (f FiniteDiff) Estimate(n *Network, ds *dataset.Dataset) *Gradient {
	if f.Eps <= 0 {
		panic(fmt.Sprintf("FiniteDiff.Estimate: eps must be > 0, got %g", f.Eps))
	}

	tr := n.NewTrace()
	base := n.Cost(ds, tr)
	g := NewGradient(n)

	for i := range n.weights {
		f.perturb(n, ds, tr, base, n.weights[i], g.Weights[i])
		f.perturb(n, ds, tr, base, n.biases[i], g.Biases[i])
	}

	return g
}

func (f FiniteDiff) perturb(n *Network, ds *dataset.Dataset, tr *Trace, base float64, param, grad *matrix.Matrix) {
	p := param.Data()
	dst := grad.Data()
	for k := range p {
		saved := p[k]
		p[k] = saved + f.Eps
		dst[k] = (n.Cost(ds, tr) - base) / f.Eps
		p[k] = saved
	}
}
