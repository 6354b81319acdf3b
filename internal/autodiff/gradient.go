package autodiff

import (
	"github.com/pkg/errors"

	"github.com/born-ml/agrad/internal/parallel"
)

// Func is a scalar function of a vector of variables, expressed with the
// operations of this package on t.
type Func func(t *Tape, x []Var) Var

// Result is the outcome of one gradient evaluation.
type Result struct {
	Value float64
	Grad  []float64
	Err   error
}

// Gradient evaluates f and its gradient at x on t.
//
// The evaluation runs inside Scope, so the tape is back at its previous size
// when Gradient returns. Vars from the evaluation must not be kept.
func (t *Tape) Gradient(f Func, x []float64) (fx float64, grad []float64, err error) {
	err = t.Scope(func() error {
		xs := t.Vars(x...)
		y := f(t, xs)
		if err := t.check(y); err != nil {
			return errors.Wrap(err, "gradient: result")
		}
		fx = t.arena.At(y.idx).Value

		var gerr error
		grad, gerr = t.Grad(y, xs...)
		return gerr
	})
	return fx, grad, err
}

// Gradient evaluates f and its gradient at x on a fresh tape.
func Gradient(f Func, x []float64, opts ...Option) (float64, []float64, error) {
	return NewTape(opts...).Gradient(f, x)
}

// GradientBatch evaluates f and its gradient at every point. Each worker owns
// a private tape that is reused across its points. Results are in input
// order; a panic inside f is reported in that point's Err, wrapping the
// panic value when it is an error.
func GradientBatch(f Func, points [][]float64, cfg parallel.Config, opts ...Option) []Result {
	tapes := make([]*Tape, cfg.Workers())
	for i := range tapes {
		tapes[i] = NewTape(opts...)
	}

	results := make([]Result, len(points))
	parallel.ForWorker(len(points), func(w, i int) {
		defer func() {
			if r := recover(); r != nil {
				results[i] = Result{Err: recovered(i, r)}
			}
		}()
		v, g, err := tapes[w].Gradient(f, points[i])
		results[i] = Result{Value: v, Grad: g, Err: err}
	}, cfg)
	return results
}

func recovered(i int, r any) error {
	if err, ok := r.(error); ok {
		return errors.Wrapf(err, "gradient: point %d: panic", i)
	}
	return errors.Errorf("gradient: point %d: panic: %v", i, r)
}
