// Package autodiff implements forward-mode automatic differentiation over a
// fixed elementary-operation set, plus a central-finite-difference fallback,
// for computing the gradient of a scalar function of several real inputs at
// a single point. This is the engine behind the derived-observable linear
// error propagation: the gradient, not the function value alone, is what
// turns input fluctuations into output fluctuations.
package autodiff

import "math"

// Dual is a multi-directional dual number: a primal value paired with one
// tangent component per independent input variable. Evaluating a function
// once on Duals seeded with the identity tangent basis yields the function
// value and its full gradient in a single pass — equivalently, on a
// length-n tangent vector — rather than one evaluation per input as plain
// single-tangent dual numbers would require.
type Dual struct {
	Val   float64
	Deriv []float64
}

// Const returns a Dual with zero gradient — the representation of a
// constant (non-differentiated) operand, e.g. a broadcast scalar.
func Const(val float64, nvars int) Dual {
	return Dual{Val: val, Deriv: make([]float64, nvars)}
}

// Var returns a Dual seeded with the identity tangent for variable index i
// among nvars independent inputs.
func Var(val float64, i, nvars int) Dual {
	d := Const(val, nvars)
	d.Deriv[i] = 1
	return d
}

func (d Dual) nvars() int { return len(d.Deriv) }

func combine(a, b Dual, val float64, da, db float64) Dual {
	n := a.nvars()
	out := Dual{Val: val, Deriv: make([]float64, n)}
	for i := 0; i < n; i++ {
		out.Deriv[i] = da*a.Deriv[i] + db*b.Deriv[i]
	}
	return out
}

func unary(a Dual, val, dval float64) Dual {
	out := Dual{Val: val, Deriv: make([]float64, a.nvars())}
	for i, g := range a.Deriv {
		out.Deriv[i] = dval * g
	}
	return out
}

// Add returns a + b.
func Add(a, b Dual) Dual { return combine(a, b, a.Val+b.Val, 1, 1) }

// Sub returns a - b.
func Sub(a, b Dual) Dual { return combine(a, b, a.Val-b.Val, 1, -1) }

// Mul returns a * b.
func Mul(a, b Dual) Dual { return combine(a, b, a.Val*b.Val, b.Val, a.Val) }

// Quo returns a / b.
func Quo(a, b Dual) Dual {
	return combine(a, b, a.Val/b.Val, 1/b.Val, -a.Val/(b.Val*b.Val))
}

// Neg returns -a.
func Neg(a Dual) Dual { return unary(a, -a.Val, -1) }

// Pow returns a ** p for a constant real exponent p; the exponent itself is
// not differentiated, treating "power" as a unary-in-base operation.
func Pow(a Dual, p float64) Dual {
	val := math.Pow(a.Val, p)
	var dval float64
	if a.Val != 0 {
		dval = p * math.Pow(a.Val, p-1)
	}
	return unary(a, val, dval)
}

// Exp returns e ** a.
func Exp(a Dual) Dual {
	val := math.Exp(a.Val)
	return unary(a, val, val)
}

// Log returns ln(a).
func Log(a Dual) Dual { return unary(a, math.Log(a.Val), 1/a.Val) }

// Sqrt returns sqrt(a).
func Sqrt(a Dual) Dual {
	val := math.Sqrt(a.Val)
	return unary(a, val, 0.5/val)
}

// Abs returns |a|. Not differentiable at 0; the derivative there is taken to
// be 0, matching a subgradient choice rather than raising an error.
func Abs(a Dual) Dual {
	sign := 1.0
	if a.Val < 0 {
		sign = -1.0
	} else if a.Val == 0 {
		sign = 0.0
	}
	return unary(a, math.Abs(a.Val), sign)
}

// Sin returns sin(a).
func Sin(a Dual) Dual { return unary(a, math.Sin(a.Val), math.Cos(a.Val)) }

// Cos returns cos(a).
func Cos(a Dual) Dual { return unary(a, math.Cos(a.Val), -math.Sin(a.Val)) }

// Tan returns tan(a).
func Tan(a Dual) Dual {
	c := math.Cos(a.Val)
	return unary(a, math.Tan(a.Val), 1/(c*c))
}

// Sinh returns sinh(a).
func Sinh(a Dual) Dual { return unary(a, math.Sinh(a.Val), math.Cosh(a.Val)) }

// Cosh returns cosh(a).
func Cosh(a Dual) Dual { return unary(a, math.Cosh(a.Val), math.Sinh(a.Val)) }

// Tanh returns tanh(a).
func Tanh(a Dual) Dual {
	val := math.Tanh(a.Val)
	return unary(a, val, 1-val*val)
}

// Asinh returns arcsinh(a).
func Asinh(a Dual) Dual {
	return unary(a, math.Asinh(a.Val), 1/math.Sqrt(a.Val*a.Val+1))
}

// Acosh returns arccosh(a).
func Acosh(a Dual) Dual {
	return unary(a, math.Acosh(a.Val), 1/math.Sqrt(a.Val*a.Val-1))
}
