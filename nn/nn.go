// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/wiggle/internal/nn"
)

// Network is a fully connected sigmoid network.
type Network = nn.Network

// Trace holds the activations of one forward pass.
type Trace = nn.Trace

// Gradient holds one partial derivative per network parameter.
type Gradient = nn.Gradient

// Deltas is scratch space reused by Backprop.EstimateInto.
type Deltas = nn.Deltas

// Estimator computes the gradient of a network's cost over a dataset.
type Estimator = nn.Estimator

// Backprop computes the gradient by backpropagation. Hidden layers come out
// scaled by a power of two; see EstimateInto.
type Backprop = nn.Backprop

// FiniteDiff approximates the gradient with forward differences.
type FiniteDiff = nn.FiniteDiff

// Estimator names accepted by NewEstimator.
const (
	BackpropName   = nn.BackpropName
	FiniteDiffName = nn.FiniteDiffName
)

// New creates a zero-initialized network for arch.
//
// Example:
//
//	net := nn.New(4, 8, 3) // 4 inputs, 8 hidden units, 3 outputs
func New(arch ...int) *Network {
	return nn.New(arch...)
}

// NewGradient creates a zero gradient shaped like n.
func NewGradient(n *Network) *Gradient {
	return nn.NewGradient(n)
}

// NewDeltas creates backprop scratch space shaped like n.
func NewDeltas(n *Network) *Deltas {
	return nn.NewDeltas(n)
}

// NewEstimator returns the estimator registered under name.
func NewEstimator(name string, eps float64) (Estimator, error) {
	return nn.NewEstimator(name, eps)
}

// Sigmoid is the logistic function.
func Sigmoid(x float64) float64 {
	return nn.Sigmoid(x)
}
