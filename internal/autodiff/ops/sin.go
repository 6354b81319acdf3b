package ops

import (
	"math"

	"github.com/born-ml/agrad/internal/tape"
)

// NewSin creates the node for sin(x).
//
// Backward pass:
//   - d(sin(x))/dx = cos(x)
func NewSin(x tape.Index, xv float64) tape.Node {
	s, c := math.Sincos(xv)
	return tape.Unary(uint8(Sin), s, x, c)
}
