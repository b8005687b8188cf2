package npr

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a momentum-tagged complex matrix: a plain composition over
// *mat.CDense plus two optional momentum vectors, in place of a decorated
// matrix subclass. Operators delegate to the inner matrix and propagate
// momentum labels via the compatibility check below.
type Matrix struct {
	M      *mat.CDense
	MomIn  []float64
	MomOut []float64
}

// NewMatrix wraps m with optional incoming/outgoing momentum tags. Either
// may be nil to mean "untagged".
func NewMatrix(m *mat.CDense, momIn, momOut []float64) *Matrix {
	return &Matrix{M: m, MomIn: momIn, MomOut: momOut}
}

// Mul returns a*b. Under matrix multiplication the incoming momentum of a
// and the outgoing momentum of b are carried through unchanged; where both
// operands carry the *same* momentum role (a's MomIn and b's MomIn, or a's
// MomOut and b's MomOut) they must agree componentwise if both present —
// absent tags propagate from whichever operand carries them.
func Mul(a, b *Matrix) (*Matrix, error) {
	momIn, err := propagateMom(a.MomIn, b.MomIn)
	if err != nil {
		return nil, err
	}
	momOut, err := propagateMom(a.MomOut, b.MomOut)
	if err != nil {
		return nil, err
	}

	var out mat.CDense
	out.Mul(a.M, b.M)
	return &Matrix{M: &out, MomIn: momIn, MomOut: momOut}, nil
}

// propagateMom resolves the momentum tag for a single role (in or out)
// across two operands: if both are present they must match within floating
// tolerance, otherwise whichever is present wins.
func propagateMom(a, b []float64) ([]float64, error) {
	if a != nil && b != nil {
		if len(a) != len(b) {
			return nil, newInvariantError("npr: momentum tags have mismatched dimension")
		}
		for i := range a {
			if math.Abs(a[i]-b[i]) > 1e-9*math.Max(1, math.Abs(a[i])) {
				return nil, newInvariantError("npr: momentum tags do not match")
			}
		}
		return b, nil
	}
	if b != nil {
		return b, nil
	}
	return a, nil
}

// G5H returns the gamma_5-hermitian conjugate (I_3 kron gamma5) * M^H *
// (I_3 kron gamma5), with momentum labels swapped. Defined only for 12x12
// matrices (three Dirac-index blocks of the 4x4 gamma5).
func (m *Matrix) G5H() (*Matrix, error) {
	rows, cols := m.M.Dims()
	if rows != 12 || cols != 12 {
		return nil, newInvariantError("npr: G5H only works for 12x12 matrices")
	}

	g5 := gamma5()
	extended := mat.NewCDense(12, 12, nil)
	for block := 0; block < 3; block++ {
		off := block * 4
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				extended.Set(off+i, off+j, g5.At(i, j))
			}
		}
	}

	conjTranspose := mat.NewCDense(12, 12, nil)
	for i := 0; i < 12; i++ {
		for j := 0; j < 12; j++ {
			conjTranspose.Set(i, j, cmplxConj(m.M.At(j, i)))
		}
	}

	var tmp, result mat.CDense
	tmp.Mul(extended, conjTranspose)
	result.Mul(&tmp, extended)

	return &Matrix{M: &result, MomIn: m.MomOut, MomOut: m.MomIn}, nil
}

func cmplxConj(z complex128) complex128 {
	return complex(real(z), -imag(z))
}
