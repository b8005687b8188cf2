package obs

import (
	"math"

	"github.com/latticeqcd/goerrors/internal/autodiff"
)

// Add returns a+b, error-propagated through Derive.
func Add(a, b *Obs) (*Obs, error) {
	return Derive(
		func(x []autodiff.Dual) autodiff.Dual { return autodiff.Add(x[0], x[1]) },
		func(x []float64) float64 { return x[0] + x[1] },
		Analytic, a, b,
	)
}

// Sub returns a-b, error-propagated through Derive.
func Sub(a, b *Obs) (*Obs, error) {
	return Derive(
		func(x []autodiff.Dual) autodiff.Dual { return autodiff.Sub(x[0], x[1]) },
		func(x []float64) float64 { return x[0] - x[1] },
		Analytic, a, b,
	)
}

// Mul returns a*b, error-propagated through Derive.
func Mul(a, b *Obs) (*Obs, error) {
	return Derive(
		func(x []autodiff.Dual) autodiff.Dual { return autodiff.Mul(x[0], x[1]) },
		func(x []float64) float64 { return x[0] * x[1] },
		Analytic, a, b,
	)
}

// Quo returns a/b, error-propagated through Derive.
func Quo(a, b *Obs) (*Obs, error) {
	return Derive(
		func(x []autodiff.Dual) autodiff.Dual { return autodiff.Quo(x[0], x[1]) },
		func(x []float64) float64 { return x[0] / x[1] },
		Analytic, a, b,
	)
}

// Neg returns -a.
func Neg(a *Obs) (*Obs, error) {
	return Derive(
		func(x []autodiff.Dual) autodiff.Dual { return autodiff.Neg(x[0]) },
		func(x []float64) float64 { return -x[0] },
		Analytic, a,
	)
}

// AddConst returns a+c for a plain float64 constant c.
func AddConst(a *Obs, c float64) (*Obs, error) {
	return Add(a, Broadcast(c))
}

// MulConst returns a*c for a plain float64 constant c.
func MulConst(a *Obs, c float64) (*Obs, error) {
	return Mul(a, Broadcast(c))
}

// Pow returns a**p for a fixed, non-observable exponent p.
func Pow(a *Obs, p float64) (*Obs, error) {
	return Derive(
		func(x []autodiff.Dual) autodiff.Dual { return autodiff.Pow(x[0], p) },
		func(x []float64) float64 { return math.Pow(x[0], p) },
		Analytic, a,
	)
}

// Exp returns exp(a).
func Exp(a *Obs) (*Obs, error) {
	return Derive(
		func(x []autodiff.Dual) autodiff.Dual { return autodiff.Exp(x[0]) },
		func(x []float64) float64 { return math.Exp(x[0]) },
		Analytic, a,
	)
}

// Log returns log(a).
func Log(a *Obs) (*Obs, error) {
	return Derive(
		func(x []autodiff.Dual) autodiff.Dual { return autodiff.Log(x[0]) },
		func(x []float64) float64 { return math.Log(x[0]) },
		Analytic, a,
	)
}

// Sqrt returns sqrt(a).
func Sqrt(a *Obs) (*Obs, error) {
	return Derive(
		func(x []autodiff.Dual) autodiff.Dual { return autodiff.Sqrt(x[0]) },
		func(x []float64) float64 { return math.Sqrt(x[0]) },
		Analytic, a,
	)
}

// Abs returns |a|. The gradient is discontinuous at a.Value()==0; callers
// relying on error propagation through the sign change should prefer Numeric
// mode explicitly via Derive.
func Abs(a *Obs) (*Obs, error) {
	return Derive(
		func(x []autodiff.Dual) autodiff.Dual { return autodiff.Abs(x[0]) },
		func(x []float64) float64 { return math.Abs(x[0]) },
		Analytic, a,
	)
}

// Sin returns sin(a).
func Sin(a *Obs) (*Obs, error) {
	return Derive(
		func(x []autodiff.Dual) autodiff.Dual { return autodiff.Sin(x[0]) },
		func(x []float64) float64 { return math.Sin(x[0]) },
		Analytic, a,
	)
}

// Cos returns cos(a).
func Cos(a *Obs) (*Obs, error) {
	return Derive(
		func(x []autodiff.Dual) autodiff.Dual { return autodiff.Cos(x[0]) },
		func(x []float64) float64 { return math.Cos(x[0]) },
		Analytic, a,
	)
}

// Tan returns tan(a).
func Tan(a *Obs) (*Obs, error) {
	return Derive(
		func(x []autodiff.Dual) autodiff.Dual { return autodiff.Tan(x[0]) },
		func(x []float64) float64 { return math.Tan(x[0]) },
		Analytic, a,
	)
}

// Sinh returns sinh(a).
func Sinh(a *Obs) (*Obs, error) {
	return Derive(
		func(x []autodiff.Dual) autodiff.Dual { return autodiff.Sinh(x[0]) },
		func(x []float64) float64 { return math.Sinh(x[0]) },
		Analytic, a,
	)
}

// Cosh returns cosh(a).
func Cosh(a *Obs) (*Obs, error) {
	return Derive(
		func(x []autodiff.Dual) autodiff.Dual { return autodiff.Cosh(x[0]) },
		func(x []float64) float64 { return math.Cosh(x[0]) },
		Analytic, a,
	)
}

// Tanh returns tanh(a).
func Tanh(a *Obs) (*Obs, error) {
	return Derive(
		func(x []autodiff.Dual) autodiff.Dual { return autodiff.Tanh(x[0]) },
		func(x []float64) float64 { return math.Tanh(x[0]) },
		Analytic, a,
	)
}
