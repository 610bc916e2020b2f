// Package blockmatrix_test exercises both Matrix backings through the shared
// contract: accessor bounds, increment accumulation, row/column sums, clone
// isolation, and reset semantics.
package blockmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vtsynergy/DistributedSBP/blockmatrix"
)

// backings enumerates every Matrix implementation under test.
// New contract-level tests should run against all of them.
func backings(t *testing.T, n int) map[string]blockmatrix.Matrix {
	t.Helper()
	dense, err := blockmatrix.NewDense(n)
	require.NoError(t, err)
	hashed, err := blockmatrix.NewHashed(n)
	require.NoError(t, err)

	return map[string]blockmatrix.Matrix{"Dense": dense, "Hashed": hashed}
}

func TestConstructors_RejectBadDimension(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := blockmatrix.NewDense(n)
		require.ErrorIs(t, err, blockmatrix.ErrBadDimension, "NewDense(%d)", n)
		_, err = blockmatrix.NewHashed(n)
		require.ErrorIs(t, err, blockmatrix.ErrBadDimension, "NewHashed(%d)", n)
	}
}

func TestMatrix_IncAccumulatesAndAtReads(t *testing.T) {
	for name, m := range backings(t, 3) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, m.Inc(0, 2, 3))
			require.NoError(t, m.Inc(0, 2, 4))
			require.NoError(t, m.Inc(2, 0, 1))
			require.NoError(t, m.Inc(1, 1, 0)) // zero increment is a no-op

			got, err := m.At(0, 2)
			require.NoError(t, err)
			require.Equal(t, int64(7), got)

			got, err = m.At(1, 1)
			require.NoError(t, err)
			require.Zero(t, got)
		})
	}
}

func TestMatrix_AccessorBounds(t *testing.T) {
	for name, m := range backings(t, 2) {
		t.Run(name, func(t *testing.T) {
			_, err := m.At(-1, 0)
			require.ErrorIs(t, err, blockmatrix.ErrOutOfRange)
			_, err = m.At(0, 2)
			require.ErrorIs(t, err, blockmatrix.ErrOutOfRange)
			require.ErrorIs(t, m.Inc(2, 0, 1), blockmatrix.ErrOutOfRange)
			_, err = m.RowSum(2)
			require.ErrorIs(t, err, blockmatrix.ErrOutOfRange)
			_, err = m.ColSum(-1)
			require.ErrorIs(t, err, blockmatrix.ErrOutOfRange)
		})
	}
}

func TestMatrix_NegativeIncrementRejected(t *testing.T) {
	for name, m := range backings(t, 2) {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, m.Inc(0, 0, -1), blockmatrix.ErrNegativeWeight)
		})
	}
}

func TestMatrix_RowAndColSums(t *testing.T) {
	for name, m := range backings(t, 3) {
		t.Run(name, func(t *testing.T) {
			// Row 0: 5 + 2; Col 1: 5 + 9.
			require.NoError(t, m.Inc(0, 1, 5))
			require.NoError(t, m.Inc(0, 2, 2))
			require.NoError(t, m.Inc(2, 1, 9))

			row, err := m.RowSum(0)
			require.NoError(t, err)
			require.Equal(t, int64(7), row)

			col, err := m.ColSum(1)
			require.NoError(t, err)
			require.Equal(t, int64(14), col)

			empty, err := m.RowSum(1)
			require.NoError(t, err)
			require.Zero(t, empty)
		})
	}
}

func TestMatrix_CloneIsolation(t *testing.T) {
	for name, m := range backings(t, 2) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, m.Inc(1, 0, 8))
			clone := m.Clone()

			require.NoError(t, clone.Inc(1, 0, 1))
			require.NoError(t, m.Inc(0, 1, 2))

			orig, err := m.At(1, 0)
			require.NoError(t, err)
			require.Equal(t, int64(8), orig, "clone mutation leaked into original")

			cloned, err := clone.At(0, 1)
			require.NoError(t, err)
			require.Zero(t, cloned, "original mutation leaked into clone")
		})
	}
}

func TestMatrix_ResetReshapesAndZeroes(t *testing.T) {
	for name, m := range backings(t, 4) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, m.Inc(3, 3, 6))
			require.NoError(t, m.Reset(2))
			require.Equal(t, 2, m.Dim())

			got, err := m.At(0, 0)
			require.NoError(t, err)
			require.Zero(t, got)

			// Former top corner is now out of range.
			_, err = m.At(3, 3)
			require.ErrorIs(t, err, blockmatrix.ErrOutOfRange)

			require.ErrorIs(t, m.Reset(0), blockmatrix.ErrBadDimension)
		})
	}
}
