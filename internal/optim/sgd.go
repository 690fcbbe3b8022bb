package optim

import (
	"fmt"

	"github.com/born-ml/wiggle/internal/nn"
	"gonum.org/v1/gonum/floats"
)

// DefaultLR is the learning rate used when SGDConfig.LR is zero.
const DefaultLR = 0.1

// SGD implements plain gradient descent.
//
// Update rule:
//
//	param = param - lr * gradient
//
// There is no momentum, no per-parameter rate and no clipping.
//
// Example:
//
//	sgd := optim.NewSGD(optim.SGDConfig{LR: 1})
//	sgd.Step(net, nn.Backprop{}.Estimate(net, ds))
type SGD struct {
	lr float64
}

// SGDConfig holds configuration for SGD.
type SGDConfig struct {
	LR float64 // Learning rate (default: 0.1)
}

// NewSGD creates a new SGD optimizer. Panics on a negative learning rate.
func NewSGD(config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = DefaultLR
	}
	if config.LR < 0 {
		panic(fmt.Sprintf("optim.NewSGD: learning rate must be > 0, got %g", config.LR))
	}
	return &SGD{lr: config.LR}
}

// Step performs param -= lr * grad on every weight and bias cell.
// Panics if g does not have n's shapes.
func (s *SGD) Step(n *nn.Network, g *nn.Gradient) {
	if !g.MatchesNetwork(n) {
		panic("SGD.Step: gradient does not match network")
	}
	for i := 0; i < n.Layers(); i++ {
		floats.AddScaled(n.Weight(i).Data(), -s.lr, g.Weights[i].Data())
		floats.AddScaled(n.Bias(i).Data(), -s.lr, g.Biases[i].Data())
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
// Panics unless lr > 0.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	if lr <= 0 {
		panic(fmt.Sprintf("SGD.SetLR: learning rate must be > 0, got %g", lr))
	}
	s.lr = lr
}
