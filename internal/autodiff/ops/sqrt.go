package ops

import (
	"math"

	"github.com/born-ml/agrad/internal/tape"
)

// NewSqrt creates the node for sqrt(x).
//
// Backward pass:
//   - d(sqrt(x))/dx = 0.5 / sqrt(x)
func NewSqrt(x tape.Index, xv float64) tape.Node {
	v := math.Sqrt(xv)
	return tape.Unary(uint8(Sqrt), v, x, 0.5/v)
}

// NewPow creates the node for x^p with a constant exponent.
//
// Backward pass:
//   - d(x^p)/dx = p * x^(p-1), and 0 for p = 0 (x^0 is constant, even at x = 0)
//
// math.Pow(NaN, 0) is 1, so the partial is where a NaN operand shows up.
func NewPow(x tape.Index, xv, p float64) tape.Node {
	d := 0.0
	if p != 0 {
		d = p * math.Pow(xv, p-1)
	}
	return arithUnary(Pow, math.Pow(xv, p), x, xv, d)
}
