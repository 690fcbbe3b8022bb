package nn

import (
	"fmt"

	"github.com/born-ml/wiggle/internal/dataset"
)

// Estimator computes the gradient of a network's cost over a dataset.
//
// Implementations may use n's parameters as scratch while they run but must
// leave them unchanged on return.
type Estimator interface {
	// Estimate returns ∂Cost/∂parameter for every weight and bias of n.
	Estimate(n *Network, ds *dataset.Dataset) *Gradient

	// Name identifies the estimator in logs.
	Name() string
}

// Estimator names accepted by NewEstimator.
const (
	BackpropName   = "backprop"
	FiniteDiffName = "finite-diff"
)

// NewEstimator returns the estimator registered under name. eps is used only
// by the finite-difference estimator.
func NewEstimator(name string, eps float64) (Estimator, error) {
	switch name {
	case BackpropName:
		return Backprop{}, nil
	case FiniteDiffName:
		if eps <= 0 {
			return nil, fmt.Errorf("finite-diff: eps must be > 0 (got %g)", eps)
		}
		return FiniteDiff{Eps: eps}, nil
	default:
		return nil, fmt.Errorf("unknown estimator %q (want %s or %s)", name, BackpropName, FiniteDiffName)
	}
}
