package ops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/agrad/internal/tape"
)

const (
	epsilonGrad = 1e-6
	tolerance   = 1e-6
)

// numericalPartial estimates df/dx with a central difference.
func numericalPartial(f func(float64) float64, x float64) float64 {
	return (f(x+epsilonGrad) - f(x-epsilonGrad)) / (2 * epsilonGrad)
}

func TestKind_Table(t *testing.T) {
	for k := Kind(0); k < numKinds; k++ {
		info := kinds[k]
		require.NotEmpty(t, info.name, "kind %d has no name", k)
		if info.arity == 0 {
			assert.Nil(t, info.chain, "%s is a leaf and must not chain", k)
		} else {
			assert.NotNil(t, info.chain, "%s has operands but no chain", k)
		}
	}

	assert.Equal(t, "log1p", Log1p.String())
	assert.Equal(t, "inv_sqrt", InvSqrt.String())
	assert.Equal(t, "kind(250)", Kind(250).String())
	assert.Equal(t, 2, Mul.Arity())
	assert.True(t, Const.IsLeaf())
	assert.False(t, Neg.IsLeaf())
}

func TestUnary_PartialsMatchFiniteDifference(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		node func(tape.Index, float64) tape.Node
		f    func(float64) float64
		at   []float64
	}{
		{"neg", Neg, NewNeg, func(x float64) float64 { return -x }, []float64{-2, 3}},
		{"square", Square, NewSquare, func(x float64) float64 { return x * x }, []float64{-1.5, 0, 2}},
		{"sqrt", Sqrt, NewSqrt, math.Sqrt, []float64{0.3, 4}},
		{"inv_sqrt", InvSqrt, NewInvSqrt, func(x float64) float64 { return 1 / math.Sqrt(x) }, []float64{0.7, 49}},
		{"exp", Exp, NewExp, math.Exp, []float64{-2, 0, 1.5}},
		{"expm1", Expm1, NewExpm1, math.Expm1, []float64{-1, 1e-3, 2}},
		{"log", Log, NewLog, math.Log, []float64{0.2, 3}},
		{"log1p", Log1p, NewLog1p, math.Log1p, []float64{-0.5, 0.1, 7}},
		{"log1p_exp", Log1pExp, NewLog1pExp, func(x float64) float64 { return math.Log1p(math.Exp(x)) }, []float64{-3, 0, 4}},
		{"inv_logit", InvLogit, NewInvLogit, func(x float64) float64 { return 1 / (1 + math.Exp(-x)) }, []float64{-2, 0, 3}},
		{"log_inv_logit", LogInvLogit, NewLogInvLogit, func(x float64) float64 { return math.Log(1 / (1 + math.Exp(-x))) }, []float64{-4, -0.1, 0.1, 5}},
		{"tanh", Tanh, NewTanh, math.Tanh, []float64{-1, 0.5}},
		{"sin", Sin, NewSin, math.Sin, []float64{-2, 0, 1}},
		{"cos", Cos, NewCos, math.Cos, []float64{-2, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, x := range tt.at {
				n := tt.node(0, x)
				assert.Equal(t, uint8(tt.kind), n.Kind)
				assert.Equal(t, uint8(1), n.Arity)
				assert.InDelta(t, tt.f(x), n.Value, 1e-12, "value at %v", x)
				assert.InDelta(t, numericalPartial(tt.f, x), n.Partials[0], tolerance, "partial at %v", x)
			}
		})
	}
}

func TestBinary_Partials(t *testing.T) {
	tests := []struct {
		name   string
		node   func(tape.Index, float64, tape.Index, float64) tape.Node
		a, b   float64
		value  float64
		da, db float64
	}{
		{"add", NewAdd, 2, 3, 5, 1, 1},
		{"sub", NewSub, 2, 3, -1, 1, -1},
		{"mul", NewMul, 2, 3, 6, 3, 2},
		{"div", NewDiv, 3, 2, 1.5, 0.5, -0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.node(0, tt.a, 1, tt.b)
			assert.Equal(t, uint8(2), n.Arity)
			assert.Equal(t, [tape.MaxOperands]tape.Index{0, 1}, n.Operands)
			assert.InDelta(t, tt.value, n.Value, 1e-15)
			assert.InDelta(t, tt.da, n.Partials[0], 1e-15)
			assert.InDelta(t, tt.db, n.Partials[1], 1e-15)
		})
	}
}

func TestConstOperand_Partials(t *testing.T) {
	tests := []struct {
		name  string
		node  tape.Node
		value float64
		d     float64
	}{
		{"x+c", NewAddConst(0, 2, 5), 7, 1},
		{"x-c", NewSubConst(0, 2, 5), -3, 1},
		{"c-x", NewConstSub(5, 0, 2), 3, -1},
		{"x*c", NewMulConst(0, 2, 5), 10, 5},
		{"x/c", NewDivConst(0, 2, 5), 0.4, 0.2},
		{"c/x", NewConstDiv(5, 0, 2), 2.5, -1.25},
		{"x^3", NewPow(0, 2, 3), 8, 12},
		{"x^0.5", NewPow(0, 4, 0.5), 2, 0.25},
		{"x^0 at 0", NewPow(0, 0, 0), 1, 0},
		{"x^0", NewPow(0, 3, 0), 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.value, tt.node.Value, 1e-15)
			assert.InDelta(t, tt.d, tt.node.Partials[0], 1e-15)
		})
	}
}

func TestChain(t *testing.T) {
	a := tape.New()
	x := a.Alloc(NewVar(2))
	y := a.Alloc(NewVar(3))
	p := a.Alloc(NewMul(x, 2, y, 3))    // 6
	s := a.Alloc(NewSub(p, 6, x, 2))    // 4
	q := a.Alloc(NewConstSub(10, s, 4)) // 6
	r := a.Alloc(NewAddConst(q, 6, 1))  // 7
	a.At(r).Adjoint = 1

	for i := r; i >= 0; i-- {
		Chain(a, i)
	}

	// r = 10 - (x*y - x) + 1  =>  dr/dx = -(y - 1) = -2, dr/dy = -x = -2
	assert.Equal(t, -2.0, a.At(x).Adjoint)
	assert.Equal(t, -2.0, a.At(y).Adjoint)
}

func TestChain_SkipsZeroAdjoint(t *testing.T) {
	a := tape.New()
	x := a.Alloc(NewVar(0))
	y := a.Alloc(NewInvSqrt(x, 0)) // partial is -Inf

	Chain(a, y)
	assert.Zero(t, a.At(x).Adjoint, "0 * -Inf must not turn into NaN")
}

func TestChain_Leaf(t *testing.T) {
	a := tape.New()
	x := a.Alloc(NewConst(1))
	a.At(x).Adjoint = 3

	assert.NotPanics(t, func() { Chain(a, x) })
	assert.Equal(t, 3.0, a.At(x).Adjoint)
}
