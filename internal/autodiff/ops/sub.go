package ops

import "github.com/born-ml/agrad/internal/tape"

// NewSub creates the node for a - b.
//
// Backward pass:
//   - d(a-b)/da = 1
//   - d(a-b)/db = -1
func NewSub(a tape.Index, av float64, b tape.Index, bv float64) tape.Node {
	return arithBinary(Sub, av-bv, a, av, 1, b, bv, -1)
}

// NewSubConst creates the node for x - c.
func NewSubConst(x tape.Index, xv, c float64) tape.Node {
	return arithUnary(SubConst, xv-c, x, xv, 1)
}

// NewConstSub creates the node for c - x.
func NewConstSub(c float64, x tape.Index, xv float64) tape.Node {
	return arithUnary(ConstSub, c-xv, x, xv, -1)
}

// NewNeg creates the node for -x.
func NewNeg(x tape.Index, xv float64) tape.Node {
	return arithUnary(Neg, -xv, x, xv, -1)
}
