// Package ops defines the closed set of elementary operations recorded on a tape.
//
// Each operation is a Kind. For every kind the package provides:
//   - a constructor (NewLog1p, NewMul, ...) returning the node with its
//     forward value and the local partial derivative(s) with respect to each
//     operand, evaluated at the point of composition
//   - an entry in the chain dispatch table that pushes the node's adjoint
//     into its operands during the backward sweep
//
// Adding an elementary function means adding a Kind, its name and arity, a
// constructor and (only if the generic multiply-add does not fit) a chain
// function.
//
// Supported operations:
//   - Var, Const: leaves (no operands)
//   - Add, Sub, Mul, Div, Neg: arithmetic (d(a*b)/da = b, d(a/b)/db = -a/b²)
//   - AddConst, SubConst, ConstSub, MulConst, DivConst, ConstDiv: arithmetic
//     with a constant folded into the stored partial
//   - Square, Sqrt, InvSqrt, Pow: powers
//   - Exp, Expm1, Log, Log1p, Log1pExp: exponentials and logarithms
//   - InvLogit, LogInvLogit, Tanh: sigmoids
//   - Sin, Cos: trigonometric
package ops

import (
	"fmt"

	"github.com/born-ml/agrad/internal/tape"
)

// Kind identifies an elementary operation.
type Kind uint8

// Operation kinds.
const (
	Var Kind = iota
	Const
	Add
	Sub
	Mul
	Div
	Neg
	AddConst
	SubConst
	ConstSub
	MulConst
	DivConst
	ConstDiv
	Square
	Sqrt
	InvSqrt
	Pow
	Exp
	Expm1
	Log
	Log1p
	Log1pExp
	InvLogit
	LogInvLogit
	Tanh
	Sin
	Cos

	numKinds
)

type kindInfo struct {
	name  string
	arity uint8
	chain chainFunc
}

// chainFunc adds n.Adjoint times each stored partial into the operands of n.
type chainFunc func(a *tape.Arena, n *tape.Node)

var kinds = [numKinds]kindInfo{
	Var:         {"var", 0, nil},
	Const:       {"const", 0, nil},
	Add:         {"add", 2, chainAdd},
	Sub:         {"sub", 2, chainSub},
	Mul:         {"mul", 2, chainBinary},
	Div:         {"div", 2, chainBinary},
	Neg:         {"neg", 1, chainNeg},
	AddConst:    {"add_const", 1, chainIdentity},
	SubConst:    {"sub_const", 1, chainIdentity},
	ConstSub:    {"const_sub", 1, chainNeg},
	MulConst:    {"mul_const", 1, chainUnary},
	DivConst:    {"div_const", 1, chainUnary},
	ConstDiv:    {"const_div", 1, chainUnary},
	Square:      {"square", 1, chainUnary},
	Sqrt:        {"sqrt", 1, chainUnary},
	InvSqrt:     {"inv_sqrt", 1, chainUnary},
	Pow:         {"pow", 1, chainUnary},
	Exp:         {"exp", 1, chainUnary},
	Expm1:       {"expm1", 1, chainUnary},
	Log:         {"log", 1, chainUnary},
	Log1p:       {"log1p", 1, chainUnary},
	Log1pExp:    {"log1p_exp", 1, chainUnary},
	InvLogit:    {"inv_logit", 1, chainUnary},
	LogInvLogit: {"log_inv_logit", 1, chainUnary},
	Tanh:        {"tanh", 1, chainUnary},
	Sin:         {"sin", 1, chainUnary},
	Cos:         {"cos", 1, chainUnary},
}

// String returns the operation name.
func (k Kind) String() string {
	if k >= numKinds {
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
	return kinds[k].name
}

// Arity returns the number of operands the operation takes.
func (k Kind) Arity() int {
	if k >= numKinds {
		return 0
	}
	return int(kinds[k].arity)
}

// IsLeaf reports whether the operation has no operands.
func (k Kind) IsLeaf() bool {
	return k.Arity() == 0
}

// Chain propagates the adjoint of node i into its operands.
// Nodes with a zero adjoint contribute nothing and are skipped.
func Chain(a *tape.Arena, i tape.Index) {
	n := a.At(i)
	if n.Adjoint == 0 || Kind(n.Kind) >= numKinds {
		return
	}
	if f := kinds[n.Kind].chain; f != nil {
		f(a, n)
	}
}

func chainUnary(a *tape.Arena, n *tape.Node) {
	a.At(n.Operands[0]).Adjoint += n.Adjoint * n.Partials[0]
}

func chainBinary(a *tape.Arena, n *tape.Node) {
	a.At(n.Operands[0]).Adjoint += n.Adjoint * n.Partials[0]
	a.At(n.Operands[1]).Adjoint += n.Adjoint * n.Partials[1]
}

func chainIdentity(a *tape.Arena, n *tape.Node) {
	a.At(n.Operands[0]).Adjoint += n.Adjoint
}

func chainNeg(a *tape.Arena, n *tape.Node) {
	a.At(n.Operands[0]).Adjoint -= n.Adjoint
}

func chainAdd(a *tape.Arena, n *tape.Node) {
	a.At(n.Operands[0]).Adjoint += n.Adjoint
	a.At(n.Operands[1]).Adjoint += n.Adjoint
}

func chainSub(a *tape.Arena, n *tape.Node) {
	a.At(n.Operands[0]).Adjoint += n.Adjoint
	a.At(n.Operands[1]).Adjoint -= n.Adjoint
}
