package autodiff

import (
	"github.com/pkg/errors"

	"github.com/born-ml/agrad/internal/autodiff/ops"
)

// Backward runs the reverse sweep for out.
//
// Algorithm:
//  1. Zero the adjoints of every live node
//  2. Seed out with adjoint 1
//  3. Walk nodes from out down to the first one; each node with a nonzero
//     adjoint adds adjoint × stored partial into its operands
//
// Operands are always older than the nodes that use them, so by the time a
// node is reached every consumer has already contributed to its adjoint and
// no sorting is needed. Afterwards Var.Adjoint returns ∂out/∂v for any live v.
func (t *Tape) Backward(out Var) error {
	if err := t.check(out); err != nil {
		return errors.Wrap(err, "backward: output")
	}

	t.arena.ZeroAdjoints(t.arena.Len())
	t.arena.At(out.idx).Adjoint = 1
	for i := out.idx; i >= 0; i-- {
		ops.Chain(t.arena, i)
	}
	return nil
}

// Grad computes the derivative of out with respect to each of wrt, in order.
//
// Every handle is validated before the sweep starts; a stale or foreign Var
// fails the whole call. Grad may be called repeatedly on the same tape;
// adjoints never accumulate across calls.
func (t *Tape) Grad(out Var, wrt ...Var) ([]float64, error) {
	for i, v := range wrt {
		if err := t.check(v); err != nil {
			return nil, errors.Wrapf(err, "grad: input %d", i)
		}
	}
	if err := t.Backward(out); err != nil {
		return nil, errors.Wrap(err, "grad")
	}

	grad := make([]float64, len(wrt))
	for i, v := range wrt {
		grad[i] = t.arena.At(v.idx).Adjoint
	}
	return grad, nil
}
