// Package matrix composes matrices and vectors of tracked variables.
//
// Every entry is an autodiff.Var, so matrix-level functions are expressed
// entry by entry through the scalar operator layer and each entry takes part
// in the tape on its own. Shapes are validated before any node is recorded.
//
// Dense constant or initial-value matrices are exchanged with gonum
// (gonum.org/v1/gonum/mat).
package matrix

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/agrad/internal/autodiff"
)

// Matrix is a dense row-major matrix of variables.
type Matrix struct {
	rows, cols int
	data       []autodiff.Var
}

// New creates a rows×cols matrix over data, which is used in row-major order
// and not copied.
func New(rows, cols int, data []autodiff.Var) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, errors.Wrapf(ErrShape, "matrix: negative dimensions %dx%d", rows, cols)
	}
	if err := RequireEqual("matrix", "rows*cols", rows*cols, "len(data)", len(data)); err != nil {
		return nil, err
	}
	return &Matrix{rows: rows, cols: cols, data: data}, nil
}

// FromDense records every entry of m as a constant on t.
func FromDense(t *autodiff.Tape, m mat.Matrix) *Matrix {
	return fromDense(m, t.Const)
}

// IndependentDense records every entry of m as an independent variable on t.
func IndependentDense(t *autodiff.Tape, m mat.Matrix) *Matrix {
	return fromDense(m, t.Var)
}

func fromDense(m mat.Matrix, leaf func(float64) autodiff.Var) *Matrix {
	r, c := m.Dims()
	data := make([]autodiff.Var, 0, r*c)
	for i := range r {
		for j := range c {
			data = append(data, leaf(m.At(i, j)))
		}
	}
	return &Matrix{rows: r, cols: c, data: data}
}

// Dims returns the number of rows and columns. A nil matrix is 0×0.
func (m *Matrix) Dims() (r, c int) {
	if m == nil {
		return 0, 0
	}
	return m.rows, m.cols
}

// At returns the entry at row i, column j. It panics if either is out of range.
func (m *Matrix) At(i, j int) autodiff.Var {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(errors.Errorf("matrix: index (%d, %d) out of range for %dx%d", i, j, m.rows, m.cols))
	}
	return m.data[i*m.cols+j]
}

// Vars returns the entries in row-major order. The slice is shared with m.
func (m *Matrix) Vars() []autodiff.Var {
	return m.data
}

// Values returns the forward values as a gonum matrix. A matrix with a zero
// dimension yields nil, since gonum has no empty dense matrix.
func (m *Matrix) Values() *mat.Dense {
	if m.rows == 0 || m.cols == 0 {
		return nil
	}
	vals := make([]float64, len(m.data))
	for i, v := range m.data {
		vals[i] = v.Value()
	}
	return mat.NewDense(m.rows, m.cols, vals)
}

// AsVector returns the entries of a single-row or single-column matrix.
func (m *Matrix) AsVector() (Vector, error) {
	if err := RequireVector("as_vector", m); err != nil {
		return nil, err
	}
	return Vector(m.data), nil
}

// Vector is a sequence of variables.
type Vector []autodiff.Var

// ConstVector records xs as constants on t.
func ConstVector(t *autodiff.Tape, xs []float64) Vector {
	v := make(Vector, len(xs))
	for i, x := range xs {
		v[i] = t.Const(x)
	}
	return v
}

// IndependentVector records xs as independent variables on t.
func IndependentVector(t *autodiff.Tape, xs []float64) Vector {
	return Vector(t.Vars(xs...))
}

// Values returns the forward values.
func (v Vector) Values() []float64 {
	vals := make([]float64, len(v))
	for i, x := range v {
		vals[i] = x.Value()
	}
	return vals
}

// checkVars reports the first variable that is stale or belongs to a different
// tape than the others, so composition can fail before recording anything.
func checkVars(op string, groups ...[]autodiff.Var) error {
	var tp *autodiff.Tape
	for _, g := range groups {
		for i, v := range g {
			if !v.Valid() {
				return errors.Wrapf(autodiff.ErrStaleVar, "%s: entry %d", op, i)
			}
			if tp == nil {
				tp = v.Tape()
			} else if v.Tape() != tp {
				return errors.Wrapf(autodiff.ErrForeignVar, "%s: entry %d", op, i)
			}
		}
	}
	return nil
}
