package ops

import (
	"math"

	"github.com/born-ml/agrad/internal/tape"
)

// NewCos creates the node for cos(x).
//
// Backward pass:
//   - d(cos(x))/dx = -sin(x)
func NewCos(x tape.Index, xv float64) tape.Node {
	s, c := math.Sincos(xv)
	return tape.Unary(uint8(Cos), c, x, -s)
}
