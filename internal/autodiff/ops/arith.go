package ops

import (
	"math"

	"github.com/born-ml/agrad/internal/tape"
)

// Arithmetic partials are constants or the other operand's value, so a NaN
// operand would otherwise vanish from the adjoints. When any operand value is
// NaN every stored partial is NaN, and so is every adjoint swept through the
// node.

func arithUnary(k Kind, v float64, x tape.Index, xv, dx float64) tape.Node {
	if math.IsNaN(xv) {
		dx = math.NaN()
	}
	return tape.Unary(uint8(k), v, x, dx)
}

func arithBinary(k Kind, v float64, a tape.Index, av, da float64, b tape.Index, bv, db float64) tape.Node {
	if math.IsNaN(av) || math.IsNaN(bv) {
		da, db = math.NaN(), math.NaN()
	}
	return tape.Binary(uint8(k), v, a, da, b, db)
}
