package ops

import (
	"github.com/born-ml/agrad/internal/numeric"
	"github.com/born-ml/agrad/internal/tape"
)

// NewInvSqrt creates the node for 1/sqrt(x).
//
// Backward pass:
//   - d(x^(-1/2))/dx = -0.5 * x^(-3/2) = -0.5 * y / x, where y = 1/sqrt(x)
//
// At x = 0 the value is +Inf and the partial -Inf. For x < 0 both are NaN.
func NewInvSqrt(x tape.Index, xv float64) tape.Node {
	v := numeric.InvSqrt(xv)
	return tape.Unary(uint8(InvSqrt), v, x, -0.5*v/xv)
}
