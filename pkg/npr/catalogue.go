// Package npr provides the fixed gamma-matrix catalogue and the
// momentum-tagged matrix type used in lattice non-perturbative
// renormalization (NPR).
package npr

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

func newCDense4(rows [4][4]complex128) *mat.CDense {
	data := make([]complex128, 0, 16)
	for _, row := range rows {
		data = append(data, row[:]...)
	}
	return mat.NewCDense(4, 4, data)
}

func gammaX() *mat.CDense {
	return newCDense4([4][4]complex128{
		{0, 0, 0, 1i},
		{0, 0, 1i, 0},
		{0, -1i, 0, 0},
		{-1i, 0, 0, 0},
	})
}

func gammaY() *mat.CDense {
	return newCDense4([4][4]complex128{
		{0, 0, 0, -1},
		{0, 0, 1, 0},
		{0, 1, 0, 0},
		{-1, 0, 0, 0},
	})
}

func gammaZ() *mat.CDense {
	return newCDense4([4][4]complex128{
		{0, 0, 1i, 0},
		{0, 0, 0, -1i},
		{-1i, 0, 0, 0},
		{0, 1i, 0, 0},
	})
}

func gammaT() *mat.CDense {
	return newCDense4([4][4]complex128{
		{0, 0, 1, 0},
		{0, 0, 0, 1},
		{1, 0, 0, 0},
		{0, 1, 0, 0},
	})
}

func gamma5() *mat.CDense {
	return newCDense4([4][4]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, -1, 0},
		{0, 0, 0, -1},
	})
}

func identity4() *mat.CDense {
	return newCDense4([4][4]complex128{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	})
}

// matMul returns a*b for two 4x4 complex matrices.
func matMul(a, b *mat.CDense) *mat.CDense {
	var out mat.CDense
	out.Mul(a, b)
	return &out
}

// commutatorHalf returns 0.5*(a*b - b*a), used for the Sigma_mu,nu tensors.
func commutatorHalf(a, b *mat.CDense) *mat.CDense {
	ab := matMul(a, b)
	ba := matMul(b, a)
	out := mat.NewCDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out.Set(i, j, 0.5*(ab.At(i, j)-ba.At(i, j)))
		}
	}
	return out
}

// Grid returns the 4x4 complex gamma matrix identified by tag, using the
// Grid lattice-QCD labeling convention. Unknown tags return a lookup error.
func Grid(tag string) (*mat.CDense, error) {
	gx, gy, gz, gt := gammaX(), gammaY(), gammaZ(), gammaT()
	g5 := gamma5()

	switch tag {
	case "Identity":
		return identity4(), nil
	case "Gamma5":
		return g5, nil
	case "GammaX":
		return gx, nil
	case "GammaY":
		return gy, nil
	case "GammaZ":
		return gz, nil
	case "GammaT":
		return gt, nil
	case "GammaXGamma5":
		return matMul(gx, g5), nil
	case "GammaYGamma5":
		return matMul(gy, g5), nil
	case "GammaZGamma5":
		return matMul(gz, g5), nil
	case "GammaTGamma5":
		return matMul(gt, g5), nil
	case "SigmaXT":
		return commutatorHalf(gx, gt), nil
	case "SigmaXY":
		return commutatorHalf(gx, gy), nil
	case "SigmaXZ":
		return commutatorHalf(gx, gz), nil
	case "SigmaYT":
		return commutatorHalf(gy, gt), nil
	case "SigmaYZ":
		return commutatorHalf(gy, gz), nil
	case "SigmaZT":
		return commutatorHalf(gz, gt), nil
	default:
		return nil, newLookupError(fmt.Sprintf("npr: unknown gamma structure %q", tag))
	}
}
