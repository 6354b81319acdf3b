package ops

import "github.com/born-ml/agrad/internal/tape"

// NewVar creates an independent variable: a leaf whose adjoint is read back
// after the sweep.
func NewVar(v float64) tape.Node {
	return tape.Leaf(uint8(Var), v)
}

// NewConst creates a constant leaf. Its adjoint is accumulated like any other
// node but is never reported.
func NewConst(v float64) tape.Node {
	return tape.Leaf(uint8(Const), v)
}
