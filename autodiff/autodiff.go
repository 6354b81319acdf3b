// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// Expressions are built from Vars recorded on a Tape. Every operation stores
// its forward value and local partial derivatives when it is composed, so a
// single reverse sweep yields exact derivatives of one output with respect to
// any number of inputs.
//
// Example:
//
//	import "github.com/born-ml/agrad/autodiff"
//
//	func main() {
//	    t := autodiff.NewTape()
//
//	    x := t.Var(0.1)
//	    y := t.Var(2)
//	    f := autodiff.Log1p(x).Mul(autodiff.InvSqrt(y))
//
//	    grad, err := t.Grad(f, x, y)  // [∂f/∂x, ∂f/∂y]
//	}
//
// Tapes are reused across evaluations with Mark and Rewind:
//
//	m := t.Mark()
//	for iter := 0; iter < n; iter++ {
//	    // ... compose, t.Grad(...) ...
//	    _ = t.Rewind(m)
//	}
package autodiff

import (
	"log/slog"

	"github.com/born-ml/agrad/internal/autodiff"
	"github.com/born-ml/agrad/internal/autodiff/ops"
	"github.com/born-ml/agrad/internal/parallel"
)

// Tape is the evaluation context that records operations.
type Tape = autodiff.Tape

// Var is a handle to a recorded value.
type Var = autodiff.Var

// Mark is a captured tape size for Rewind.
type Mark = autodiff.Mark

// Kind identifies the operation that produced a Var.
type Kind = ops.Kind

// Option configures a Tape.
type Option = autodiff.Option

// Func is a scalar function of a vector of variables.
type Func = autodiff.Func

// Result is the outcome of one evaluation in GradientBatch.
type Result = autodiff.Result

// BatchConfig controls parallelism in GradientBatch.
type BatchConfig = parallel.Config

// Mismatch and GradientMismatchError are reported by CheckGradient.
type (
	Mismatch              = autodiff.Mismatch
	GradientMismatchError = autodiff.GradientMismatchError
)

// Errors.
var (
	ErrStaleVar   = autodiff.ErrStaleVar
	ErrForeignVar = autodiff.ErrForeignVar
	ErrStaleMark  = autodiff.ErrStaleMark
	ErrExhausted  = autodiff.ErrExhausted
)

// NewTape creates an empty tape.
func NewTape(opts ...Option) *Tape {
	return autodiff.NewTape(opts...)
}

// WithChunkSize sets the number of nodes per arena chunk.
func WithChunkSize(n int) Option {
	return autodiff.WithChunkSize(n)
}

// WithMaxNodes caps the number of live nodes.
func WithMaxNodes(n int) Option {
	return autodiff.WithMaxNodes(n)
}

// WithLogger sets the logger for arena events.
func WithLogger(logger *slog.Logger) Option {
	return autodiff.WithLogger(logger)
}

// DefaultBatchConfig returns a BatchConfig sized to the number of CPUs.
func DefaultBatchConfig() BatchConfig {
	return parallel.DefaultConfig()
}

// Log1p returns log(1 + x).
func Log1p(x Var) Var { return autodiff.Log1p(x) }

// InvSqrt returns 1/sqrt(x).
func InvSqrt(x Var) Var { return autodiff.InvSqrt(x) }

// LogInvLogit returns the log of the logistic sigmoid of x.
func LogInvLogit(x Var) Var { return autodiff.LogInvLogit(x) }

// Log returns the natural logarithm of x.
func Log(x Var) Var { return autodiff.Log(x) }

// Exp returns e**x.
func Exp(x Var) Var { return autodiff.Exp(x) }

// Expm1 returns e**x - 1.
func Expm1(x Var) Var { return autodiff.Expm1(x) }

// Log1pExp returns log(1 + exp(x)).
func Log1pExp(x Var) Var { return autodiff.Log1pExp(x) }

// InvLogit returns the logistic sigmoid of x.
func InvLogit(x Var) Var { return autodiff.InvLogit(x) }

// Tanh returns the hyperbolic tangent of x.
func Tanh(x Var) Var { return autodiff.Tanh(x) }

// Sin returns the sine of x.
func Sin(x Var) Var { return autodiff.Sin(x) }

// Cos returns the cosine of x.
func Cos(x Var) Var { return autodiff.Cos(x) }

// Sqrt returns the square root of x.
func Sqrt(x Var) Var { return autodiff.Sqrt(x) }

// Square returns x*x.
func Square(x Var) Var { return autodiff.Square(x) }

// Pow returns x**p for a constant p.
func Pow(x Var, p float64) Var { return autodiff.Pow(x, p) }

// ConstSub returns c - x.
func ConstSub(c float64, x Var) Var { return autodiff.ConstSub(c, x) }

// ConstDiv returns c / x.
func ConstDiv(c float64, x Var) Var { return autodiff.ConstDiv(c, x) }

// Gradient evaluates f and its gradient at x on a fresh tape.
func Gradient(f Func, x []float64, opts ...Option) (float64, []float64, error) {
	return autodiff.Gradient(f, x, opts...)
}

// GradientBatch evaluates f and its gradient at every point, one tape per worker.
func GradientBatch(f Func, points [][]float64, cfg BatchConfig, opts ...Option) []Result {
	return autodiff.GradientBatch(f, points, cfg, opts...)
}

// CheckGradient compares the gradient of f at x with finite differences.
func CheckGradient(f Func, x []float64, tol float64) error {
	return autodiff.CheckGradient(f, x, tol)
}
