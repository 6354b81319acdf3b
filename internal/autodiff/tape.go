package autodiff

import (
	"github.com/pkg/errors"

	"github.com/born-ml/agrad/internal/autodiff/ops"
	"github.com/born-ml/agrad/internal/tape"
)

// Mark is a captured tape size. See Tape.Mark.
type Mark = tape.Mark

// Tape records operations during the forward pass and computes gradients
// during the backward pass.
//
// Usage:
//
//	t := NewTape()
//	m := t.Mark()
//	x := t.Var(0.1)
//	y := Log1p(x)
//	grad, err := t.Grad(y, x)
//	_ = t.Rewind(m)
type Tape struct {
	arena *tape.Arena
}

// NewTape creates an empty tape.
func NewTape(opts ...Option) *Tape {
	return &Tape{arena: tape.New(opts...)}
}

// Var creates an independent variable.
func (t *Tape) Var(x float64) Var {
	return t.alloc(ops.NewVar(x))
}

// Vars creates one independent variable per value.
func (t *Tape) Vars(xs ...float64) []Var {
	vs := make([]Var, len(xs))
	for i, x := range xs {
		vs[i] = t.Var(x)
	}
	return vs
}

// Const creates a constant. It can be combined with variables like any Var
// but has no operands of its own.
func (t *Tape) Const(x float64) Var {
	return t.alloc(ops.NewConst(x))
}

// Len returns the number of recorded nodes.
func (t *Tape) Len() int {
	return t.arena.Len()
}

// Mark captures the current size of the tape.
func (t *Tape) Mark() Mark {
	return t.arena.Mark()
}

// Rewind discards every node recorded after m. Vars referring to them become
// stale: using them panics, and Grad reports ErrStaleVar.
func (t *Tape) Rewind(m Mark) error {
	return t.arena.Rewind(m)
}

// Reset discards every node.
func (t *Tape) Reset() {
	t.arena.Reset()
}

// Release returns unused arena chunks to the garbage collector.
func (t *Tape) Release() {
	t.arena.Release()
}

// Scope runs fn and then rewinds the tape to its size before the call, even
// if fn panics. Vars created inside fn must not escape it.
func (t *Tape) Scope(fn func() error) (err error) {
	m := t.Mark()
	defer func() {
		if rerr := t.Rewind(m); rerr != nil && err == nil {
			err = rerr
		}
	}()
	return fn()
}

func (t *Tape) alloc(n tape.Node) Var {
	idx := t.arena.Alloc(n)
	return Var{tape: t, idx: idx, gen: t.arena.Generation()}
}

// check reports whether v can be dereferenced on t.
func (t *Tape) check(v Var) error {
	switch {
	case v.tape == nil:
		return errors.Wrap(ErrStaleVar, "uninitialized variable")
	case v.tape != t:
		return errors.WithStack(ErrForeignVar)
	case !t.arena.Valid(v.idx, v.gen):
		return errors.Wrapf(ErrStaleVar, "node %d (generation %d)", v.idx, v.gen)
	}
	return nil
}

func (t *Tape) mustCheck(op string, vs ...Var) {
	for _, v := range vs {
		if err := t.check(v); err != nil {
			panic(errors.Wrap(err, op))
		}
	}
}

func (t *Tape) node(v Var) *tape.Node {
	t.mustCheck("deref", v)
	return t.arena.At(v.idx)
}
