// SPDX-License-Identifier: MIT

// Package blockmatrix: public contract and sentinel error set.
// All operations MUST return these sentinels and tests MUST check them via
// errors.Is. No operation panics on user-triggered conditions.
package blockmatrix

import "errors"

// Sentinel errors for blockmatrix operations.
var (
	// ErrBadDimension is returned when a requested dimension is < 1.
	ErrBadDimension = errors.New("blockmatrix: dimension must be >= 1")

	// ErrOutOfRange indicates a row or column index outside [0, Dim()).
	// Public accessors MUST return this, not panic.
	ErrOutOfRange = errors.New("blockmatrix: index out of range")

	// ErrNegativeWeight indicates a negative increment. Aggregate edge
	// counts only ever grow; decrements signal a caller bug.
	ErrNegativeWeight = errors.New("blockmatrix: negative weight increment")
)

// cellKey is an ordered (row, col) pair used by the hashed backing.
// Using ints keeps the key compact and hash-friendly.
type cellKey struct {
	row int
	col int
}

// Matrix is the aggregate-matrix contract consumed by the partition core.
// Implementations must be square and independent after Clone.
//
// Complexity notes: all methods are expected O(1) except Clone (O(cells)),
// RowSum/ColSum (O(n)), and Reset (O(cells) release + O(n²)/O(1) realloc).
type Matrix interface {
	// Dim returns the number of blocks n (matrix is n×n).
	Dim() int

	// At returns the aggregate weight of cell (i, j).
	// Returns ErrOutOfRange for invalid indices.
	At(i, j int) (int64, error)

	// Inc adds w to cell (i, j). w must be non-negative.
	// Returns ErrOutOfRange or ErrNegativeWeight.
	Inc(i, j int, w int64) error

	// RowSum returns the sum over row i (out-weight of block i).
	RowSum(i int) (int64, error)

	// ColSum returns the sum over column j (in-weight of block j).
	ColSum(j int) (int64, error)

	// Clone returns a deep copy sharing no mutable state with the receiver.
	Clone() Matrix

	// Reset discards all cells and re-shapes the matrix to n×n, zeroed.
	// Returns ErrBadDimension when n < 1.
	Reset(n int) error
}
