package autodiff

import "math"

// machineEpsilon is the smallest float64 increment such that 1+eps != 1.
const machineEpsilon = 2.220446049250313e-16

// Func is a scalar function of n real inputs, expressed in terms of the Dual
// elementary operations in dual.go; one evaluation on Duals yields both the
// function value and the analytic gradient.
type Func func(x []Dual) Dual

// PlainFunc is the finite-difference counterpart of Func: a scalar function
// of n real inputs evaluated at plain float64s.
type PlainFunc func(x []float64) float64

// Gradient evaluates f once on Duals seeded with the identity tangent basis
// at x, returning the function value and its gradient with respect to every
// input in a single pass.
func Gradient(f Func, x []float64) (value float64, grad []float64) {
	n := len(x)
	inputs := make([]Dual, n)
	for i, xi := range x {
		inputs[i] = Var(xi, i, n)
	}
	out := f(inputs)
	return out.Val, out.Deriv
}

// NumericGradient computes the function value and gradient of f at x via
// central finite differences, with per-component step
// h = max(|x_i|, 1) * eps^(1/3). Used for validation and when f cannot be
// expressed in the Dual elementary operation set.
func NumericGradient(f PlainFunc, x []float64) (value float64, grad []float64) {
	cubeRootEps := math.Cbrt(machineEpsilon)
	n := len(x)
	grad = make([]float64, n)
	xPlus := make([]float64, n)
	copy(xPlus, x)
	xMinus := make([]float64, n)
	copy(xMinus, x)

	for i := 0; i < n; i++ {
		step := math.Max(math.Abs(x[i]), 1) * cubeRootEps
		xPlus[i] = x[i] + step
		xMinus[i] = x[i] - step
		grad[i] = (f(xPlus) - f(xMinus)) / (2 * step)
		xPlus[i] = x[i]
		xMinus[i] = x[i]
	}

	return f(x), grad
}
