package ops

import (
	"math"

	"github.com/born-ml/agrad/internal/tape"
)

// NewTanh creates the node for tanh(x).
//
// Backward pass:
//   - d(tanh(x))/dx = 1 - tanh²(x)
func NewTanh(x tape.Index, xv float64) tape.Node {
	v := math.Tanh(xv)
	return tape.Unary(uint8(Tanh), v, x, 1-v*v)
}
