package optim_test

import (
	"testing"

	"github.com/born-ml/wiggle/internal/dataset"
	"github.com/born-ml/wiggle/internal/nn"
	"github.com/born-ml/wiggle/internal/optim"
	"github.com/stretchr/testify/assert"
)

// TestSGD_SimpleUpdate tests param -= lr * grad.
func TestSGD_SimpleUpdate(t *testing.T) {
	net := nn.New(1, 1)
	net.Weight(0).Set(0, 0, 2.0)
	net.Bias(0).Set(0, 0, -1.0)

	g := nn.NewGradient(net)
	g.Weights[0].Set(0, 0, 1.0)
	g.Biases[0].Set(0, 0, -4.0)

	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.1})
	optimizer.Step(net, g)

	// Expected: w = 2.0 - 0.1 * 1.0, b = -1.0 - 0.1 * -4.0
	assert.InDelta(t, 1.9, net.Weight(0).At(0, 0), 1e-12)
	assert.InDelta(t, -0.6, net.Bias(0).At(0, 0), 1e-12)
	assert.Equal(t, 1.0, g.Weights[0].At(0, 0), "gradient is read-only")
}

// TestSGD_ZeroGradient tests that a zero gradient leaves parameters alone.
func TestSGD_ZeroGradient(t *testing.T) {
	net := nn.New(2, 3, 1)
	net.Fill(0.25)
	before := net.Params()

	optim.NewSGD(optim.SGDConfig{LR: 5}).Step(net, nn.NewGradient(net))
	assert.Equal(t, before, net.Params())
}

// TestSGD_ShapeMismatch tests that a foreign gradient panics.
func TestSGD_ShapeMismatch(t *testing.T) {
	net := nn.New(2, 2, 1)
	assert.Panics(t, func() {
		optim.NewSGD(optim.SGDConfig{}).Step(net, nn.NewGradient(nn.New(2, 1)))
	})
}

// TestSGD_GetSetLR tests learning rate getter/setter and the default.
func TestSGD_GetSetLR(t *testing.T) {
	optimizer := optim.NewSGD(optim.SGDConfig{})
	assert.Equal(t, optim.DefaultLR, optimizer.GetLR())

	optimizer.SetLR(0.001)
	assert.Equal(t, 0.001, optimizer.GetLR())

	assert.Panics(t, func() { optim.NewSGD(optim.SGDConfig{LR: -1}) })
}

// TestSGD_SetLRInvalid tests that SetLR rejects the rates NewSGD rejects.
func TestSGD_SetLRInvalid(t *testing.T) {
	optimizer := optim.NewSGD(optim.SGDConfig{LR: 0.5})

	assert.PanicsWithValue(t, "SGD.SetLR: learning rate must be > 0, got -1", func() { optimizer.SetLR(-1) })
	assert.Panics(t, func() { optimizer.SetLR(0) })
	assert.Equal(t, 0.5, optimizer.GetLR(), "rejected rate must not stick")
}

// TestSGD_DecreasesCost tests that a small backprop step lowers the cost.
func TestSGD_DecreasesCost(t *testing.T) {
	net := nn.New(2, 2, 1)
	net.Fill(0.5)
	ds := dataset.AND.Dataset()

	var optimizer optim.Optimizer = optim.NewSGD(optim.SGDConfig{LR: 0.1})
	before := net.Cost(ds, nil)
	optimizer.Step(net, nn.Backprop{}.Estimate(net, ds))

	assert.Less(t, net.Cost(ds, nil), before)
}
