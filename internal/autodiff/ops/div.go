package ops

import "github.com/born-ml/agrad/internal/tape"

// NewDiv creates the node for a / b.
//
// Backward pass:
//   - d(a/b)/da = 1/b
//   - d(a/b)/db = -a/b² = -(a/b)/b
func NewDiv(a tape.Index, av float64, b tape.Index, bv float64) tape.Node {
	v := av / bv
	return arithBinary(Div, v, a, av, 1/bv, b, bv, -v/bv)
}

// NewDivConst creates the node for x / c.
func NewDivConst(x tape.Index, xv, c float64) tape.Node {
	return arithUnary(DivConst, xv/c, x, xv, 1/c)
}

// NewConstDiv creates the node for c / x.
//
// Backward pass:
//   - d(c/x)/dx = -c/x² = -(c/x)/x
func NewConstDiv(c float64, x tape.Index, xv float64) tape.Node {
	v := c / xv
	return arithUnary(ConstDiv, v, x, xv, -v/xv)
}
