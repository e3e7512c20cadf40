// Package matrix_test contains unit tests for the Dense implementation
// in the matrix package.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/hillimg/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, -1)                      // attempt to create with negative columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestNewDenseFromShape covers empty and ragged literals.
func TestNewDenseFromShape(t *testing.T) {
	_, err := matrix.NewDenseFrom(nil)          // no rows at all
	require.ErrorIs(t, err, matrix.ErrBadShape) // expect ErrBadShape

	_, err = matrix.NewDenseFrom([][]int64{{}}) // one empty row
	require.ErrorIs(t, err, matrix.ErrBadShape) // expect ErrBadShape

	_, err = matrix.NewDenseFrom([][]int64{{1, 2}, {3}}) // ragged second row
	require.ErrorIs(t, err, matrix.ErrBadShape)          // expect ErrBadShape
}

// TestNewDenseFromCopies verifies the literal is copied, not aliased.
func TestNewDenseFromCopies(t *testing.T) {
	rows := [][]int64{{1, 2}, {3, 4}}
	m := MustDenseFrom(t, rows)

	// mutate the source literal; the matrix keeps its own copy
	rows[0][0] = 99
	require.Equal(t, int64(1), MustAt(t, m, 0, 0))
	require.Equal(t, [][]int64{{1, 2}, {3, 4}}, m.ToRows())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2) // create a 2x2 Dense matrix
	require.NoError(t, err)         // assert matrix creation succeeded

	_, err = m.At(-1, 0)                          // negative row index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2)                           // column index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(2, 0, 7)                          // row index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange
}

// TestSetGetClone validates Set/At and that Clone does not share storage.
func TestSetGetClone(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, -42))
	require.Equal(t, int64(-42), MustAt(t, m, 1, 2))

	clone := m.Clone()
	require.True(t, clone.Equal(m))
	require.NoError(t, clone.Set(1, 2, 5)) // modify the clone only
	require.Equal(t, int64(-42), MustAt(t, m, 1, 2))
	require.False(t, clone.Equal(m))

	data := m.Data()
	data[0] = 100 // Data returns a copy
	require.Equal(t, int64(0), MustAt(t, m, 0, 0))
}

// TestIdentityAndString checks Identity and the diagnostic String format.
func TestIdentityAndString(t *testing.T) {
	id, err := matrix.Identity(2)
	require.NoError(t, err)
	require.True(t, id.IsSquare())
	require.Equal(t, "[1, 0]\n[0, 1]\n", id.String())

	_, err = matrix.Identity(0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestEqualNil covers nil handling of Equal.
func TestEqualNil(t *testing.T) {
	var a, b *matrix.Dense
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(MustDenseFrom(t, [][]int64{{1}})))
}
