// Package numeric provides closed-form scalar helpers on plain float64 values.
//
// Nothing here touches a tape. The tracked operations in the autodiff package
// use these functions for their forward values, and callers can use them
// directly when no derivative is needed. Functions that are not differentiable
// (Sign) exist only here, so a tracked variable cannot be passed to them.
package numeric

import "math"

// Sign returns 0 if x is zero, -1 if x is negative and 1 otherwise.
//
// NaN is neither zero nor negative, so Sign(NaN) is 1.
func Sign(x float64) int {
	switch {
	case x == 0:
		return 0
	case x < 0:
		return -1
	default:
		return 1
	}
}

// InvSqrt returns 1/sqrt(x).
//
// InvSqrt(0) is +Inf and InvSqrt(x) is NaN for x < 0.
func InvSqrt(x float64) float64 {
	return 1 / math.Sqrt(x)
}

// InvLogit returns the logistic sigmoid 1/(1+exp(-x)).
//
// The negative branch is written in terms of exp(x) so that exp never
// overflows.
func InvLogit(x float64) float64 {
	if x < 0 {
		e := math.Exp(x)
		return e / (1 + e)
	}
	return 1 / (1 + math.Exp(-x))
}

// LogInvLogit returns log(InvLogit(x)), the log of the logistic sigmoid.
//
// For x < 0 it evaluates x - log1p(exp(x)), otherwise -log1p(exp(-x)). Both
// branches only ever exponentiate a non-positive number.
func LogInvLogit(x float64) float64 {
	if x < 0 {
		return x - math.Log1p(math.Exp(x))
	}
	return -math.Log1p(math.Exp(-x))
}

// Log1mInvLogit returns log(1 - InvLogit(x)), which equals LogInvLogit(-x).
func Log1mInvLogit(x float64) float64 {
	return LogInvLogit(-x)
}

// Log1pExp returns log(1 + exp(x)) without overflowing for large x.
func Log1pExp(x float64) float64 {
	if x > 0 {
		return x + math.Log1p(math.Exp(-x))
	}
	return math.Log1p(math.Exp(x))
}

// Logit returns log(u / (1 - u)).
func Logit(u float64) float64 {
	return math.Log(u / (1 - u))
}
