package train

import (
	"github.com/born-ml/wiggle/internal/dataset"
	"github.com/born-ml/wiggle/internal/nn"
)

// Mismatch describes one example the network gets wrong.
type Mismatch struct {
	Row       int
	Input     []float64
	Want      []float64
	Got       []float64 // raw network outputs
	Predicted []float64 // outputs thresholded to 0 or 1
}

// Report is the outcome of Evaluate.
type Report struct {
	Rows       int
	Failures   int
	Mismatches []Mismatch
}

// OK reports whether every row was predicted correctly.
func (r Report) OK() bool {
	return r.Failures == 0
}

// Evaluate runs every input of ds through net, thresholds each output at
// threshold (> threshold is 1) and counts rows whose bit vector differs from
// the target row.
func Evaluate(net *nn.Network, ds *dataset.Dataset, threshold float64) Report {
	rep := Report{Rows: ds.Len()}
	tr := net.NewTrace()

	for i := 0; i < ds.Len(); i++ {
		in, want := ds.Example(i)
		tr.SetInput(in)
		net.Forward(tr)

		got := tr.Output().Clone().Data()
		pred := make([]float64, len(got))
		wrong := false
		for j, v := range got {
			if v > threshold {
				pred[j] = 1
			}
			if pred[j] != want.At(0, j) {
				wrong = true
			}
		}

		if wrong {
			rep.Failures++
			rep.Mismatches = append(rep.Mismatches, Mismatch{
				Row:       i,
				Input:     in.Data(),
				Want:      want.Data(),
				Got:       got,
				Predicted: pred,
			})
		}
	}

	return rep
}
