package ops

import "github.com/born-ml/agrad/internal/tape"

// NewMul creates the node for a * b.
//
// Backward pass:
//   - d(a*b)/da = b
//   - d(a*b)/db = a
func NewMul(a tape.Index, av float64, b tape.Index, bv float64) tape.Node {
	return arithBinary(Mul, av*bv, a, av, bv, b, bv, av)
}

// NewMulConst creates the node for x * c.
func NewMulConst(x tape.Index, xv, c float64) tape.Node {
	return arithUnary(MulConst, xv*c, x, xv, c)
}

// NewSquare creates the node for x².
//
// Backward pass:
//   - d(x²)/dx = 2x
func NewSquare(x tape.Index, xv float64) tape.Node {
	return arithUnary(Square, xv*xv, x, xv, 2*xv)
}
