package matrix

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func TestRequireSquare(t *testing.T) {
	assert.NoError(t, RequireSquare("op", mat.NewDense(3, 3, nil)))

	err := RequireSquare("op", mat.NewDense(2, 3, nil))
	assert.True(t, errors.Is(err, ErrShape))
	assert.Equal(t, "op: expecting a square matrix; rows (2) != cols (3): shape mismatch", err.Error())

	err = RequireSquare("op", nil)
	assert.True(t, errors.Is(err, ErrShape))
}

func TestRequireEqual(t *testing.T) {
	assert.NoError(t, RequireEqual("op", "a", 4, "b", 4))

	err := RequireEqual("op", "matrix size", 3, "vector size", 2)
	assert.True(t, errors.Is(err, ErrShape))
	assert.Equal(t, "op: matrix size (3) != vector size (2): shape mismatch", err.Error())
}

func TestRequireVector(t *testing.T) {
	assert.NoError(t, RequireVector("op", mat.NewDense(1, 5, nil)))
	assert.NoError(t, RequireVector("op", mat.NewDense(5, 1, nil)))
	assert.Error(t, RequireVector("op", mat.NewDense(2, 2, nil)))
	assert.Error(t, RequireVector("op", nil))
}
