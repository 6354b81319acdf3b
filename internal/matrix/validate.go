package matrix

import "github.com/pkg/errors"

// ErrShape is wrapped by every structural validation failure.
var ErrShape = errors.New("shape mismatch")

// Dimser is anything with matrix dimensions, including *Matrix and gonum's
// mat.Matrix.
type Dimser interface {
	Dims() (r, c int)
}

// RequireSquare checks that m has as many rows as columns.
func RequireSquare(op string, m Dimser) error {
	if m == nil {
		return errors.Wrapf(ErrShape, "%s: nil matrix", op)
	}
	r, c := m.Dims()
	if r != c {
		return errors.Wrapf(ErrShape, "%s: expecting a square matrix; rows (%d) != cols (%d)", op, r, c)
	}
	return nil
}

// RequireEqual checks that two dimensions agree.
func RequireEqual(op, nameA string, a int, nameB string, b int) error {
	if a != b {
		return errors.Wrapf(ErrShape, "%s: %s (%d) != %s (%d)", op, nameA, a, nameB, b)
	}
	return nil
}

// RequireVector checks that m has a single row or a single column.
func RequireVector(op string, m Dimser) error {
	if m == nil {
		return errors.Wrapf(ErrShape, "%s: nil matrix", op)
	}
	r, c := m.Dims()
	if r != 1 && c != 1 {
		return errors.Wrapf(ErrShape, "%s: expecting a vector; got %dx%d", op, r, c)
	}
	return nil
}
