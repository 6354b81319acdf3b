// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package autodiff_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/agrad/autodiff"
)

// TestPublicAPI verifies the re-exported tape API end to end.
func TestPublicAPI(t *testing.T) {
	tp := autodiff.NewTape(autodiff.WithChunkSize(16))

	x := tp.Var(0.1)
	y := tp.Var(2)
	f := autodiff.Log1p(x).Mul(autodiff.InvSqrt(y))

	grad, err := tp.Grad(f, x, y)
	require.NoError(t, err)
	assert.InDelta(t, math.Log1p(0.1)/math.Sqrt(2), f.Value(), 1e-15)
	assert.InDelta(t, 1/(1.1*math.Sqrt(2)), grad[0], 1e-12)
	assert.InDelta(t, -0.5*math.Log1p(0.1)*math.Pow(2, -1.5), grad[1], 1e-12)
}

// TestPublicErrors verifies sentinel errors survive the re-export.
func TestPublicErrors(t *testing.T) {
	tp := autodiff.NewTape()
	m := tp.Mark()
	x := tp.Var(1)
	require.NoError(t, tp.Rewind(m))

	_, err := tp.Grad(tp.Const(0), x)
	assert.True(t, errors.Is(err, autodiff.ErrStaleVar))

	other := autodiff.NewTape()
	_, err = tp.Grad(tp.Const(0), other.Var(1))
	assert.True(t, errors.Is(err, autodiff.ErrForeignVar))
}

// TestPublicGradient verifies the driver functions.
func TestPublicGradient(t *testing.T) {
	f := func(_ *autodiff.Tape, x []autodiff.Var) autodiff.Var {
		return autodiff.LogInvLogit(x[0]).Add(autodiff.Sin(x[1]))
	}

	fx, grad, err := autodiff.Gradient(f, []float64{0.3, 1.2})
	require.NoError(t, err)
	assert.False(t, math.IsNaN(fx))
	assert.Len(t, grad, 2)

	require.NoError(t, autodiff.CheckGradient(f, []float64{0.3, 1.2}, 1e-6))

	results := autodiff.GradientBatch(f, [][]float64{{0.3, 1.2}, {-4, 0}}, autodiff.DefaultBatchConfig())
	require.Len(t, results, 2)
	assert.Equal(t, fx, results[0].Value)
	assert.Equal(t, grad, results[0].Grad)
	assert.NoError(t, results[1].Err)
}
