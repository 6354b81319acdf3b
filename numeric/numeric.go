// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package numeric provides closed-form helpers on plain float64 values.
//
// None of these functions record anything on a tape. Sign in particular is
// not differentiable and has no tracked counterpart.
package numeric

import "github.com/born-ml/agrad/internal/numeric"

// Sign returns 0 for zero, -1 for negative x and 1 otherwise (including NaN).
func Sign(x float64) int { return numeric.Sign(x) }

// InvSqrt returns 1/sqrt(x).
func InvSqrt(x float64) float64 { return numeric.InvSqrt(x) }

// InvLogit returns the logistic sigmoid of x.
func InvLogit(x float64) float64 { return numeric.InvLogit(x) }

// LogInvLogit returns log(InvLogit(x)) without overflow.
func LogInvLogit(x float64) float64 { return numeric.LogInvLogit(x) }

// Log1mInvLogit returns log(1 - InvLogit(x)).
func Log1mInvLogit(x float64) float64 { return numeric.Log1mInvLogit(x) }

// Log1pExp returns log(1 + exp(x)) without overflow.
func Log1pExp(x float64) float64 { return numeric.Log1pExp(x) }

// Logit returns log(u / (1 - u)).
func Logit(u float64) float64 { return numeric.Logit(u) }
