package ops

import (
	"math"

	"github.com/born-ml/agrad/internal/numeric"
	"github.com/born-ml/agrad/internal/tape"
)

// NewExp creates the node for exp(x).
//
// Backward pass:
//   - d(exp(x))/dx = exp(x) = y
func NewExp(x tape.Index, xv float64) tape.Node {
	v := math.Exp(xv)
	return tape.Unary(uint8(Exp), v, x, v)
}

// NewExpm1 creates the node for exp(x) - 1.
func NewExpm1(x tape.Index, xv float64) tape.Node {
	return tape.Unary(uint8(Expm1), math.Expm1(xv), x, math.Exp(xv))
}

// NewLog1pExp creates the node for log(1 + exp(x)).
//
// Backward pass:
//   - d(log(1+exp(x)))/dx = sigmoid(x)
func NewLog1pExp(x tape.Index, xv float64) tape.Node {
	return tape.Unary(uint8(Log1pExp), numeric.Log1pExp(xv), x, numeric.InvLogit(xv))
}
