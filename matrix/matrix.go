// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix composes matrices and vectors of autodiff variables.
//
// Example:
//
//	t := autodiff.NewTape()
//	m := matrix.IndependentDense(t, mat.NewDense(2, 2, []float64{1, 2, 3, 4}))
//	v := matrix.IndependentVector(t, []float64{5, 7})
//
//	out, err := matrix.QuadFormDiag(m, v)  // diag(v) · m · diag(v)
//	if errors.Is(err, matrix.ErrShape) {
//	    // m not square, or len(v) != rows(m); nothing was recorded
//	}
package matrix

import (
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/agrad/autodiff"
	"github.com/born-ml/agrad/internal/matrix"
)

// Matrix is a dense row-major matrix of variables.
type Matrix = matrix.Matrix

// Vector is a sequence of variables.
type Vector = matrix.Vector

// Dimser is anything with matrix dimensions.
type Dimser = matrix.Dimser

// ErrShape is wrapped by every structural validation failure.
var ErrShape = matrix.ErrShape

// New creates a rows×cols matrix over data in row-major order.
func New(rows, cols int, data []autodiff.Var) (*Matrix, error) {
	return matrix.New(rows, cols, data)
}

// FromDense records the entries of m as constants.
func FromDense(t *autodiff.Tape, m mat.Matrix) *Matrix {
	return matrix.FromDense(t, m)
}

// IndependentDense records the entries of m as independent variables.
func IndependentDense(t *autodiff.Tape, m mat.Matrix) *Matrix {
	return matrix.IndependentDense(t, m)
}

// ConstVector records xs as constants.
func ConstVector(t *autodiff.Tape, xs []float64) Vector {
	return matrix.ConstVector(t, xs)
}

// IndependentVector records xs as independent variables.
func IndependentVector(t *autodiff.Tape, xs []float64) Vector {
	return matrix.IndependentVector(t, xs)
}

// QuadFormDiag returns diag(v) · m · diag(v).
func QuadFormDiag(m *Matrix, v Vector) (*Matrix, error) {
	return matrix.QuadFormDiag(m, v)
}

// QuadFormDiagFloats returns diag(v) · m · diag(v) for a constant v.
func QuadFormDiagFloats(m *Matrix, v []float64) (*Matrix, error) {
	return matrix.QuadFormDiagFloats(m, v)
}

// RequireSquare checks that m is square.
func RequireSquare(op string, m Dimser) error {
	return matrix.RequireSquare(op, m)
}

// RequireEqual checks that two dimensions agree.
func RequireEqual(op, nameA string, a int, nameB string, b int) error {
	return matrix.RequireEqual(op, nameA, a, nameB, b)
}

// RequireVector checks that m has a single row or column.
func RequireVector(op string, m Dimser) error {
	return matrix.RequireVector(op, m)
}
