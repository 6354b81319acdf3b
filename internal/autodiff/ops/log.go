package ops

import (
	"math"

	"github.com/born-ml/agrad/internal/tape"
)

// NewLog creates the node for log(x).
//
// Backward pass:
//   - d(log(x))/dx = 1 / x
func NewLog(x tape.Index, xv float64) tape.Node {
	return tape.Unary(uint8(Log), math.Log(xv), x, 1/xv)
}

// NewLog1p creates the node for log(1 + x).
//
// Backward pass:
//   - d(log1p(x))/dx = 1 / (1 + x)
//
// NaN propagates to both the value and the partial.
func NewLog1p(x tape.Index, xv float64) tape.Node {
	return tape.Unary(uint8(Log1p), math.Log1p(xv), x, 1/(1+xv))
}
