package autodiff

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/born-ml/agrad/internal/tape"
)

var (
	// ErrStaleVar is reported for a Var whose node was discarded by a rewind,
	// or for the zero Var.
	ErrStaleVar = errors.New("autodiff: stale variable")

	// ErrForeignVar is reported when a Var is used with a tape that did not
	// create it.
	ErrForeignVar = errors.New("autodiff: variable belongs to another tape")

	// ErrStaleMark is reported when rewinding to a discarded position.
	ErrStaleMark = tape.ErrStaleMark

	// ErrExhausted is the panic value when a tape exceeds WithMaxNodes.
	ErrExhausted = tape.ErrExhausted
)

// Mismatch is one gradient component that disagrees with finite differences.
type Mismatch struct {
	Index     int
	Reverse   float64 // From the backward sweep.
	Numerical float64 // From central differences.
}

// GradientMismatchError is returned by CheckGradient.
type GradientMismatchError struct {
	Mismatches []Mismatch
}

func (e *GradientMismatchError) Error() string {
	parts := make([]string, len(e.Mismatches))
	for i, m := range e.Mismatches {
		parts[i] = fmt.Sprintf("[%d] reverse=%g numerical=%g", m.Index, m.Reverse, m.Numerical)
	}
	return "autodiff: gradient mismatch: " + strings.Join(parts, ", ")
}
