// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides fully connected sigmoid networks and their gradients.
//
// # Overview
//
// This package contains:
//   - Network: weights and biases for an architecture such as [2, 2, 1]
//   - Trace: caller-owned activations for one forward pass
//   - Gradient: one partial derivative per weight and bias
//   - Estimators: Backprop and FiniteDiff
//
// # Basic Usage
//
//	import (
//	    "math/rand/v2"
//
//	    "github.com/born-ml/wiggle/dataset"
//	    "github.com/born-ml/wiggle/matrix"
//	    "github.com/born-ml/wiggle/nn"
//	)
//
//	func main() {
//	    net := nn.New(2, 2, 1)
//	    net.Randomize(rand.New(rand.NewPCG(1, 1)), matrix.UnitRange)
//
//	    ds := dataset.OR.Dataset()
//	    fmt.Println(net.Cost(ds, nil))
//
//	    g := nn.Backprop{}.Estimate(net, ds)
//	    fmt.Println(g)
//	}
//
// # Forward Pass
//
// A Trace holds one activation matrix per layer. Reusing a trace across calls
// avoids allocation:
//
//	tr := net.NewTrace()
//	tr.SetInput(matrix.FromSlice(1, 2, []float64{1, 0}))
//	net.Forward(tr)
//	y := tr.Output()
//
// # Gradient Estimators
//
// Backprop propagates the error backwards layer by layer. Its output layer is
// the exact derivative of the mean squared error; layer i of L is scaled by
// 2^(L-1-i). FiniteDiff perturbs each parameter by Eps and measures the
// change in cost; it is slow and approximate but makes a useful cross-check
// on a single-layer network:
//
//	net := nn.New(2, 1)
//	bp := nn.Backprop{}.Estimate(net, ds)
//	approx := nn.FiniteDiff{Eps: 1e-3}.Estimate(net, ds)
//	fmt.Println(bp.MaxAbsDiff(approx))
package nn
