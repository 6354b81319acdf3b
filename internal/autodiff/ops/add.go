package ops

import "github.com/born-ml/agrad/internal/tape"

// NewAdd creates the node for a + b.
//
// Backward pass:
//   - d(a+b)/da = 1
//   - d(a+b)/db = 1
func NewAdd(a tape.Index, av float64, b tape.Index, bv float64) tape.Node {
	return arithBinary(Add, av+bv, a, av, 1, b, bv, 1)
}

// NewAddConst creates the node for x + c.
func NewAddConst(x tape.Index, xv, c float64) tape.Node {
	return arithUnary(AddConst, xv+c, x, xv, 1)
}
