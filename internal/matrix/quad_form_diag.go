package matrix

import (
	"github.com/pkg/errors"

	"github.com/born-ml/agrad/internal/autodiff"
)

const opQuadFormDiag = "quad_form_diag"

// QuadFormDiag returns diag(v) · m · diag(v), that is
//
//	result(i, j) = v(i) · v(j) · m(i, j)
//
// with the diagonal computed as v(i) · v(i) · m(i, i). m must be square and v
// must have one entry per row; otherwise an error wrapping ErrShape is
// returned and nothing is recorded on the tape.
func QuadFormDiag(m *Matrix, v Vector) (*Matrix, error) {
	if err := validateQuadFormDiag(m, len(v)); err != nil {
		return nil, err
	}
	if err := checkVars(opQuadFormDiag, m.data, v); err != nil {
		return nil, err
	}

	n := len(v)
	out := make([]autodiff.Var, n*n)
	for i := range n {
		out[i*n+i] = v[i].Mul(v[i]).Mul(m.data[i*n+i])
		for j := i + 1; j < n; j++ {
			vv := v[i].Mul(v[j])
			out[j*n+i] = vv.Mul(m.data[j*n+i])
			out[i*n+j] = vv.Mul(m.data[i*n+j])
		}
	}
	return &Matrix{rows: n, cols: n, data: out}, nil
}

// QuadFormDiagFloats is QuadFormDiag with a constant scaling vector. Each
// product v(i) · v(j) is folded into a single node per entry.
func QuadFormDiagFloats(m *Matrix, v []float64) (*Matrix, error) {
	if err := validateQuadFormDiag(m, len(v)); err != nil {
		return nil, err
	}
	if err := checkVars(opQuadFormDiag, m.data); err != nil {
		return nil, err
	}

	n := len(v)
	out := make([]autodiff.Var, n*n)
	for i := range n {
		for j := range n {
			out[i*n+j] = m.data[i*n+j].MulConst(v[i] * v[j])
		}
	}
	return &Matrix{rows: n, cols: n, data: out}, nil
}

func validateQuadFormDiag(m *Matrix, size int) error {
	if m == nil {
		return errors.Wrapf(ErrShape, "%s: nil matrix", opQuadFormDiag)
	}
	if err := RequireSquare(opQuadFormDiag, m); err != nil {
		return err
	}
	rows, _ := m.Dims()
	return RequireEqual(opQuadFormDiag, "matrix size", rows, "vector size", size)
}
