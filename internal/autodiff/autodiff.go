// Package autodiff implements scalar reverse-mode automatic differentiation.
//
// Architecture:
//   - Tape: the evaluation context. Owns an arena of nodes (internal/tape)
//     and is the only place nodes are created
//   - Var: a small value-type handle to one node. Copies share the node
//   - Operator layer: Var methods (Add, Mul, ...) and functions (Log1p,
//     InvSqrt, LogInvLogit, ...) compute the forward value and the local
//     partial derivatives at composition time and record one node each
//   - Gradient engine: Grad seeds the output with 1 and sweeps the arena in
//     reverse creation order, chaining every node exactly once
//
// Usage:
//
//	t := autodiff.NewTape()
//	x := t.Var(49)
//	y := autodiff.InvSqrt(x)   // y.Value() == 1/7
//	g, err := t.Grad(y, x)     // g[0] == -0.5/(7*49)
//
// In a hot loop, bracket each evaluation with Mark and Rewind (or use Scope
// or Gradient) so the arena is reused instead of growing.
//
// A Tape must not be shared between goroutines. Run parallel evaluations on
// separate tapes (see GradientBatch). Vars from different tapes cannot be
// combined.
package autodiff

import (
	"log/slog"

	"github.com/born-ml/agrad/internal/tape"
)

// Option configures a Tape.
type Option = tape.Option

// WithChunkSize sets the number of nodes per arena chunk.
func WithChunkSize(n int) Option {
	return tape.WithChunkSize(n)
}

// WithMaxNodes caps the number of live nodes. Exceeding the cap panics.
func WithMaxNodes(n int) Option {
	return tape.WithMaxNodes(n)
}

// WithLogger sets the logger for arena growth and rewind events.
func WithLogger(logger *slog.Logger) Option {
	return tape.WithLogger(logger)
}
