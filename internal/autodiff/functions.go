package autodiff

import (
	"github.com/pkg/errors"

	"github.com/born-ml/agrad/internal/autodiff/ops"
	"github.com/born-ml/agrad/internal/tape"
)

// Log1p returns log(1 + x).
func Log1p(x Var) Var {
	return x.tape.unary("log1p", x, ops.NewLog1p)
}

// InvSqrt returns 1/sqrt(x).
//
// InvSqrt of zero is +Inf with derivative -Inf; of a negative number, NaN
// with derivative NaN. Neither is an error.
func InvSqrt(x Var) Var {
	return x.tape.unary("inv_sqrt", x, ops.NewInvSqrt)
}

// LogInvLogit returns the log of the logistic sigmoid, log(1/(1+exp(-x))).
// It does not overflow for any finite x.
func LogInvLogit(x Var) Var {
	return x.tape.unary("log_inv_logit", x, ops.NewLogInvLogit)
}

// Log returns the natural logarithm of x.
func Log(x Var) Var {
	return x.tape.unary("log", x, ops.NewLog)
}

// Exp returns e**x.
func Exp(x Var) Var {
	return x.tape.unary("exp", x, ops.NewExp)
}

// Expm1 returns e**x - 1.
func Expm1(x Var) Var {
	return x.tape.unary("expm1", x, ops.NewExpm1)
}

// Log1pExp returns log(1 + exp(x)), the softplus function.
func Log1pExp(x Var) Var {
	return x.tape.unary("log1p_exp", x, ops.NewLog1pExp)
}

// InvLogit returns the logistic sigmoid 1/(1+exp(-x)).
func InvLogit(x Var) Var {
	return x.tape.unary("inv_logit", x, ops.NewInvLogit)
}

// Tanh returns the hyperbolic tangent of x.
func Tanh(x Var) Var {
	return x.tape.unary("tanh", x, ops.NewTanh)
}

// Sin returns the sine of x.
func Sin(x Var) Var {
	return x.tape.unary("sin", x, ops.NewSin)
}

// Cos returns the cosine of x.
func Cos(x Var) Var {
	return x.tape.unary("cos", x, ops.NewCos)
}

// Sqrt returns the square root of x.
func Sqrt(x Var) Var {
	return x.tape.unary("sqrt", x, ops.NewSqrt)
}

// Square returns x*x as a single node.
func Square(x Var) Var {
	return x.tape.unary("square", x, ops.NewSquare)
}

// Pow returns x**p for a constant exponent p.
func Pow(x Var, p float64) Var {
	return x.tape.withConst("pow", x, p, ops.NewPow)
}

// ConstSub returns c - x.
func ConstSub(c float64, x Var) Var {
	return x.tape.withConst("const_sub", x, c, func(i tape.Index, xv, c float64) tape.Node {
		return ops.NewConstSub(c, i, xv)
	})
}

// ConstDiv returns c / x.
func ConstDiv(c float64, x Var) Var {
	return x.tape.withConst("const_div", x, c, func(i tape.Index, xv, c float64) tape.Node {
		return ops.NewConstDiv(c, i, xv)
	})
}

// Sum returns the sum of xs. The sum of no terms is a zero constant.
func (t *Tape) Sum(xs ...Var) Var {
	if len(xs) == 0 {
		return t.Const(0)
	}
	acc := xs[0]
	t.mustCheck("sum", acc)
	for _, x := range xs[1:] {
		acc = t.binary("sum", acc, x, ops.NewAdd)
	}
	return acc
}

// Dot returns the inner product of a and b. It panics if their lengths differ.
func (t *Tape) Dot(a, b []Var) Var {
	if len(a) != len(b) {
		panic(errors.Errorf("dot: length mismatch %d != %d", len(a), len(b)))
	}
	if len(a) == 0 {
		return t.Const(0)
	}
	acc := t.binary("dot", a[0], b[0], ops.NewMul)
	for i := 1; i < len(a); i++ {
		acc = t.binary("dot", acc, t.binary("dot", a[i], b[i], ops.NewMul), ops.NewAdd)
	}
	return acc
}
