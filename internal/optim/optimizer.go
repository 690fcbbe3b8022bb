// Package optim implements parameter updates for wiggle networks.
//
// This package provides:
//   - Optimizer interface: applies an estimated gradient to a network
//   - SGD: plain gradient descent, param -= lr * grad
//
// Example usage:
//
//	opt := optim.NewSGD(optim.SGDConfig{LR: 0.1})
//	est := nn.Backprop{}
//
//	for epoch := 0; epoch < epochs; epoch++ {
//	    g := est.Estimate(net, ds)
//	    opt.Step(net, g)
//	}
package optim

import (
	"github.com/born-ml/wiggle/internal/nn"
)

// Optimizer is the base interface for update rules.
type Optimizer interface {
	// Step applies g to n's weights and biases in place.
	Step(n *nn.Network, g *nn.Gradient)

	// GetLR returns the current learning rate.
	GetLR() float64
}
