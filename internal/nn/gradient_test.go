package nn_test

import (
	"testing"

	"github.com/born-ml/wiggle/internal/nn"
	"github.com/stretchr/testify/assert"
)

// TestGradient_Shapes tests that a new gradient mirrors the network.
func TestGradient_Shapes(t *testing.T) {
	net := nn.New(3, 4, 2)
	g := nn.NewGradient(net)

	assert.Equal(t, 2, g.Layers())
	assert.True(t, g.MatchesNetwork(net))
	assert.False(t, g.MatchesNetwork(nn.New(3, 4, 1)))
	assert.Len(t, g.Flatten(), net.NumParams())
}

// TestGradient_ScaleNorm tests scaling and the Euclidean norm.
func TestGradient_ScaleNorm(t *testing.T) {
	g := nn.NewGradient(nn.New(1, 1))
	g.Weights[0].Set(0, 0, 3)
	g.Biases[0].Set(0, 0, 4)

	assert.InDelta(t, 5.0, g.Norm(), 1e-12)

	g.Scale(2)
	assert.Equal(t, []float64{6, 8}, g.Flatten())

	g.Zero()
	assert.Equal(t, 0.0, g.Norm())
}

// TestGradient_MaxAbsDiff tests the L∞ distance.
func TestGradient_MaxAbsDiff(t *testing.T) {
	net := nn.New(2, 1)
	a := nn.NewGradient(net)
	b := nn.NewGradient(net)
	a.Weights[0].Set(1, 0, 0.5)
	b.Biases[0].Set(0, 0, -0.75)

	assert.Equal(t, 0.75, a.MaxAbsDiff(b))
	assert.Panics(t, func() { a.MaxAbsDiff(nn.NewGradient(nn.New(3, 1))) })
}

// TestGradient_String tests layer naming in the rendering.
func TestGradient_String(t *testing.T) {
	s := nn.NewGradient(nn.New(2, 2, 1)).String()
	assert.Contains(t, s, "dws1")
	assert.Contains(t, s, "dbs2")
}
