package autodiff

import (
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats/scalar"
)

// CheckGradient compares the reverse-mode gradient of f at x with central
// finite differences. Components that differ by more than tol, both
// absolutely and relatively, are reported in a *GradientMismatchError.
func CheckGradient(f Func, x []float64, tol float64) error {
	t := NewTape()
	_, grad, err := t.Gradient(f, x)
	if err != nil {
		return err
	}

	eval := func(p []float64) float64 {
		m := t.Mark()
		defer func() { _ = t.Rewind(m) }()
		return f(t, t.Vars(p...)).Value()
	}
	numerical := fd.Gradient(nil, eval, x, &fd.Settings{Formula: fd.Central})

	var mismatches []Mismatch
	for i := range grad {
		if !scalar.EqualWithinAbsOrRel(grad[i], numerical[i], tol, tol) {
			mismatches = append(mismatches, Mismatch{Index: i, Reverse: grad[i], Numerical: numerical[i]})
		}
	}
	if len(mismatches) > 0 {
		return &GradientMismatchError{Mismatches: mismatches}
	}
	return nil
}
