package nn

import (
	"fmt"

	"github.com/born-ml/wiggle/internal/dataset"
)

// Cost returns the mean squared error of n over ds.
//
// Squared errors are summed across output columns and averaged across
// examples. Each example is loaded into tr and run forward, so tr ends up
// holding the last row of ds. A nil tr gets a fresh trace.
//
// Panics if ds's inputs and targets disagree on row count, or if the widths
// do not match the network.
func (n *Network) Cost(ds *dataset.Dataset, tr *Trace) float64 {
	n.mustMatchDataset("Cost", ds)
	if tr == nil {
		tr = n.NewTrace()
	}

	targets := ds.Targets.Data()
	outs := ds.Targets.Cols()
	rows := ds.Len()

	var c float64
	for i := 0; i < rows; i++ {
		tr.loadRow(ds.Inputs, i)
		n.Forward(tr)
		out := tr.Output().Data()
		for j := 0; j < outs; j++ {
			d := out[j] - targets[i*outs+j]
			c += d * d
		}
	}

	return c / float64(rows)
}

func (n *Network) mustMatchDataset(op string, ds *dataset.Dataset) {
	if ds.Inputs.Rows() != ds.Targets.Rows() {
		panic(fmt.Sprintf("Network.%s: %d input rows vs %d target rows",
			op, ds.Inputs.Rows(), ds.Targets.Rows()))
	}
	if ds.Inputs.Cols() != n.InputWidth() {
		panic(fmt.Sprintf("Network.%s: dataset has %d features, network input width is %d",
			op, ds.Inputs.Cols(), n.InputWidth()))
	}
	if ds.Targets.Cols() != n.OutputWidth() {
		panic(fmt.Sprintf("Network.%s: dataset has %d targets, network output width is %d",
			op, ds.Targets.Cols(), n.OutputWidth()))
	}
}
