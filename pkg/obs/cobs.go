package obs

import (
	"math"

	"github.com/latticeqcd/goerrors/internal/autodiff"
)

// CObs is a complex-valued observable: a pair of real Obs carried
// component-wise. Addition, subtraction and conjugation act on Re and Im
// independently; MulC and Abs combine both components. Every operation is
// built from the Derive-based real arithmetic of this package.
type CObs struct {
	Re *Obs
	Im *Obs
}

// NewCObs pairs a real and imaginary Obs into a CObs.
func NewCObs(re, im *Obs) *CObs {
	return &CObs{Re: re, Im: im}
}

// Conj returns the complex conjugate, negating the imaginary part.
func (c *CObs) Conj() (*CObs, error) {
	negIm, err := Neg(c.Im)
	if err != nil {
		return nil, err
	}
	return &CObs{Re: c.Re, Im: negIm}, nil
}

// AddC returns a+b for complex observables.
func AddC(a, b *CObs) (*CObs, error) {
	re, err := Add(a.Re, b.Re)
	if err != nil {
		return nil, err
	}
	im, err := Add(a.Im, b.Im)
	if err != nil {
		return nil, err
	}
	return &CObs{Re: re, Im: im}, nil
}

// SubC returns a-b for complex observables.
func SubC(a, b *CObs) (*CObs, error) {
	re, err := Sub(a.Re, b.Re)
	if err != nil {
		return nil, err
	}
	im, err := Sub(a.Im, b.Im)
	if err != nil {
		return nil, err
	}
	return &CObs{Re: re, Im: im}, nil
}

// MulC returns a*b for complex observables, via the standard
// (ac-bd) + i(ad+bc) expansion, each term propagated through Derive.
func MulC(a, b *CObs) (*CObs, error) {
	ac, err := Mul(a.Re, b.Re)
	if err != nil {
		return nil, err
	}
	bd, err := Mul(a.Im, b.Im)
	if err != nil {
		return nil, err
	}
	ad, err := Mul(a.Re, b.Im)
	if err != nil {
		return nil, err
	}
	bc, err := Mul(a.Im, b.Re)
	if err != nil {
		return nil, err
	}
	re, err := Sub(ac, bd)
	if err != nil {
		return nil, err
	}
	im, err := Add(ad, bc)
	if err != nil {
		return nil, err
	}
	return &CObs{Re: re, Im: im}, nil
}

// Abs returns |z| = sqrt(re^2 + im^2) as a real Obs, computed as a genuine
// two-input derivation rather than composed from the unary real Abs, since
// the gradient mixes both components.
func (c *CObs) Abs() (*Obs, error) {
	return Derive(
		func(x []autodiff.Dual) autodiff.Dual {
			re, im := x[0], x[1]
			return autodiff.Sqrt(autodiff.Add(autodiff.Mul(re, re), autodiff.Mul(im, im)))
		},
		func(x []float64) float64 {
			return math.Hypot(x[0], x[1])
		},
		Analytic, c.Re, c.Im,
	)
}
