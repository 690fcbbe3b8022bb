package nn

import "math"

// Sigmoid is the logistic function σ(x) = 1 / (1 + exp(-x)).
//
// The formula is used as is: large negative inputs overflow exp to +Inf and
// the result saturates to 0.
func Sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

// SigmoidPrime returns dσ/dx expressed through the activation a = σ(x):
// a * (1 - a).
func SigmoidPrime(a float64) float64 {
	return a * (1 - a)
}
