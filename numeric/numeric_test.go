// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/agrad/numeric"
)

// TestSign verifies the re-exported Sign, including its NaN convention.
func TestSign(t *testing.T) {
	assert.Equal(t, 0, numeric.Sign(0))
	assert.Equal(t, -1, numeric.Sign(-2))
	assert.Equal(t, 1, numeric.Sign(math.NaN()))
}

// TestLogInvLogit verifies the re-exported helper stays finite at extremes.
func TestLogInvLogit(t *testing.T) {
	assert.Equal(t, -1e10, numeric.LogInvLogit(-1e10))
	assert.Zero(t, numeric.LogInvLogit(1e10))
}
