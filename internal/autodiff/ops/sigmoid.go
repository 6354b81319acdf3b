package ops

import (
	"github.com/born-ml/agrad/internal/numeric"
	"github.com/born-ml/agrad/internal/tape"
)

// NewInvLogit creates the node for the logistic sigmoid σ(x) = 1 / (1 + exp(-x)).
//
// Backward pass:
//   - dσ/dx = σ(x) * (1 - σ(x))
func NewInvLogit(x tape.Index, xv float64) tape.Node {
	v := numeric.InvLogit(xv)
	return tape.Unary(uint8(InvLogit), v, x, v*(1-v))
}

// NewLogInvLogit creates the node for log(σ(x)) as a single fused node.
//
// Forward keeps the overflow-safe branch of numeric.LogInvLogit:
//
//	x < 0:  x - log1p(exp(x))
//	x >= 0: -log1p(exp(-x))
//
// Backward pass:
//   - d(log σ(x))/dx = 1 - σ(x) = σ(-x)
//
// σ(-x) is evaluated with the same branching, so the partial is 1 for very
// negative x and 0 for very positive x instead of NaN.
func NewLogInvLogit(x tape.Index, xv float64) tape.Node {
	return tape.Unary(uint8(LogInvLogit), numeric.LogInvLogit(xv), x, numeric.InvLogit(-xv))
}
