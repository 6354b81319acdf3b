// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/born-ml/agrad/autodiff"
	"github.com/born-ml/agrad/matrix"
)

// TestQuadFormDiag verifies the re-exported quadratic form.
func TestQuadFormDiag(t *testing.T) {
	tp := autodiff.NewTape()
	m := matrix.FromDense(tp, mat.NewDense(2, 2, []float64{1, 2, 3, 4}))
	v := matrix.IndependentVector(tp, []float64{5, 7})

	out, err := matrix.QuadFormDiag(m, v)
	require.NoError(t, err)

	want := mat.NewDense(2, 2, []float64{25, 70, 105, 196})
	assert.True(t, mat.Equal(want, out.Values()))
}

// TestShapeErrors verifies ErrShape survives the re-export.
func TestShapeErrors(t *testing.T) {
	tp := autodiff.NewTape()
	m := matrix.FromDense(tp, mat.NewDense(2, 3, nil))

	_, err := matrix.QuadFormDiag(m, matrix.ConstVector(tp, []float64{1, 2}))
	assert.True(t, errors.Is(err, matrix.ErrShape))
	assert.True(t, errors.Is(matrix.RequireEqual("op", "a", 1, "b", 2), matrix.ErrShape))
	assert.NoError(t, matrix.RequireSquare("op", mat.NewDense(3, 3, nil)))
}
