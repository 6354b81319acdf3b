package autodiff

import (
	"fmt"

	"github.com/born-ml/agrad/internal/autodiff/ops"
	"github.com/born-ml/agrad/internal/tape"
)

// Var is a handle to one node on a Tape.
//
// Vars are small values; copying one does not copy the node. A Var is valid
// until the tape is rewound past the point where it was created. The zero Var
// is never valid.
type Var struct {
	tape *Tape
	idx  tape.Index
	gen  uint32
}

// Value returns the forward value. It is available as soon as the Var exists.
func (v Var) Value() float64 {
	return v.tape.node(v).Value
}

// Adjoint returns the derivative of the last output passed to Grad or
// Backward with respect to v. It is zero before any sweep.
func (v Var) Adjoint() float64 {
	return v.tape.node(v).Adjoint
}

// Kind returns the operation that produced v.
func (v Var) Kind() ops.Kind {
	return ops.Kind(v.tape.node(v).Kind)
}

// Tape returns the tape v was recorded on.
func (v Var) Tape() *Tape {
	return v.tape
}

// Valid reports whether v still refers to a live node.
func (v Var) Valid() bool {
	return v.tape != nil && v.tape.check(v) == nil
}

// String implements fmt.Stringer.
func (v Var) String() string {
	if !v.Valid() {
		return "var(<stale>)"
	}
	n := v.tape.arena.At(v.idx)
	return fmt.Sprintf("%s(%g)", ops.Kind(n.Kind), n.Value)
}

// Grad computes the derivative of v with respect to each of wrt.
// It is shorthand for v.Tape().Grad(v, wrt...).
func (v Var) Grad(wrt []Var) ([]float64, error) {
	if v.tape == nil {
		return nil, v.tape.check(v)
	}
	return v.tape.Grad(v, wrt...)
}

// Add returns v + w.
func (v Var) Add(w Var) Var {
	return v.tape.binary("add", v, w, ops.NewAdd)
}

// Sub returns v - w.
func (v Var) Sub(w Var) Var {
	return v.tape.binary("sub", v, w, ops.NewSub)
}

// Mul returns v * w.
func (v Var) Mul(w Var) Var {
	return v.tape.binary("mul", v, w, ops.NewMul)
}

// Div returns v / w.
func (v Var) Div(w Var) Var {
	return v.tape.binary("div", v, w, ops.NewDiv)
}

// Neg returns -v.
func (v Var) Neg() Var {
	return v.tape.unary("neg", v, ops.NewNeg)
}

// AddConst returns v + c.
func (v Var) AddConst(c float64) Var {
	return v.tape.withConst("add_const", v, c, ops.NewAddConst)
}

// SubConst returns v - c.
func (v Var) SubConst(c float64) Var {
	return v.tape.withConst("sub_const", v, c, ops.NewSubConst)
}

// MulConst returns v * c.
func (v Var) MulConst(c float64) Var {
	return v.tape.withConst("mul_const", v, c, ops.NewMulConst)
}

// DivConst returns v / c.
func (v Var) DivConst(c float64) Var {
	return v.tape.withConst("div_const", v, c, ops.NewDivConst)
}

func (t *Tape) unary(op string, x Var, newNode func(tape.Index, float64) tape.Node) Var {
	t.mustCheck(op, x)
	return t.alloc(newNode(x.idx, t.arena.At(x.idx).Value))
}

func (t *Tape) binary(op string, a, b Var, newNode func(tape.Index, float64, tape.Index, float64) tape.Node) Var {
	t.mustCheck(op, a, b)
	av, bv := t.arena.At(a.idx).Value, t.arena.At(b.idx).Value
	return t.alloc(newNode(a.idx, av, b.idx, bv))
}

func (t *Tape) withConst(op string, x Var, c float64, newNode func(tape.Index, float64, float64) tape.Node) Var {
	t.mustCheck(op, x)
	return t.alloc(newNode(x.idx, t.arena.At(x.idx).Value, c))
}
