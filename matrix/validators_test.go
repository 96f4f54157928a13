// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvnet/matrix"
)

func TestValidators(t *testing.T) {
	a := mustDense(t, 2, 3, nil)
	b := mustDense(t, 3, 2, nil)
	sq := mustDense(t, 2, 2, nil)

	assert.NoError(t, matrix.ValidateNotNil(a))
	assert.ErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateNotNil((*matrix.Dense)(nil)), matrix.ErrNilMatrix)

	assert.NoError(t, matrix.ValidateSameShape(a, a.Clone()))
	assert.ErrorIs(t, matrix.ValidateSameShape(a, b), matrix.ErrShapeMismatch)

	assert.NoError(t, matrix.ValidateSquare(sq))
	assert.ErrorIs(t, matrix.ValidateSquare(a), matrix.ErrNonSquare)

	assert.NoError(t, matrix.ValidateBinarySameShape(a, hide{a}))
	assert.ErrorIs(t, matrix.ValidateBinarySameShape(a, nil), matrix.ErrNilMatrix)
	assert.ErrorIs(t, matrix.ValidateBinarySameShape(a, sq), matrix.ErrShapeMismatch)

	assert.NoError(t, matrix.ValidateMulCompatible(a, b))
	assert.ErrorIs(t, matrix.ValidateMulCompatible(a, a), matrix.ErrShapeMismatch)
	assert.ErrorIs(t, matrix.ValidateMulCompatible(nil, a), matrix.ErrNilMatrix)
}
