// SPDX-License-Identifier: MIT

// Package blockmatrix - Hashed (sparse) storage.
//
// Purpose:
//   - Memory proportional to the number of non-zero cells, for blockmodels
//     whose block count is large relative to the realized block adjacency.
//   - Identical contract and error behavior as Dense; only storage differs.
//
// Determinism:
//   - Map iteration order is never exposed: RowSum/ColSum walk indices.
package blockmatrix

import "fmt"

// hashedErrorf wraps a sentinel with a uniform Hashed context and coordinates.
func hashedErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Hashed.%s(%d,%d): %w", method, i, j, err)
}

// Hashed is a sparse aggregate matrix keyed by (row, col).
// Absent keys read as zero; zero increments never materialize a key.
type Hashed struct {
	n     int
	cells map[cellKey]int64
}

// Compile-time assertion for interface conformance.
var _ Matrix = (*Hashed)(nil)

// NewHashed creates an n×n sparse matrix with no materialized cells.
//
// Errors: ErrBadDimension when n < 1.
// Time: O(1). Space: O(1) until cells are written.
func NewHashed(n int) (*Hashed, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewHashed(%d): %w", n, ErrBadDimension)
	}

	return &Hashed{n: n, cells: make(map[cellKey]int64)}, nil
}

// Dim returns the block count n.
func (m *Hashed) Dim() int { return m.n }

// At returns cell (i, j); absent cells read as zero. O(1).
func (m *Hashed) At(i, j int) (int64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, hashedErrorf("At", i, j, ErrOutOfRange)
	}

	return m.cells[cellKey{row: i, col: j}], nil
}

// Inc adds w to cell (i, j). Zero increments do not materialize a key. O(1).
func (m *Hashed) Inc(i, j int, w int64) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return hashedErrorf("Inc", i, j, ErrOutOfRange)
	}
	if w < 0 {
		return hashedErrorf("Inc", i, j, ErrNegativeWeight)
	}
	if w == 0 {
		return nil
	}
	m.cells[cellKey{row: i, col: j}] += w

	return nil
}

// RowSum returns the sum over row i.
// Iterates column indices, not map order, for deterministic accumulation.
// O(n).
func (m *Hashed) RowSum(i int) (int64, error) {
	if i < 0 || i >= m.n {
		return 0, hashedErrorf("RowSum", i, 0, ErrOutOfRange)
	}
	var sum int64
	for j := 0; j < m.n; j++ {
		sum += m.cells[cellKey{row: i, col: j}]
	}

	return sum, nil
}

// ColSum returns the sum over column j. O(n).
func (m *Hashed) ColSum(j int) (int64, error) {
	if j < 0 || j >= m.n {
		return 0, hashedErrorf("ColSum", 0, j, ErrOutOfRange)
	}
	var sum int64
	for i := 0; i < m.n; i++ {
		sum += m.cells[cellKey{row: i, col: j}]
	}

	return sum, nil
}

// Clone returns an independent deep copy. O(cells).
func (m *Hashed) Clone() Matrix {
	cells := make(map[cellKey]int64, len(m.cells))
	for k, v := range m.cells {
		cells[k] = v
	}

	return &Hashed{n: m.n, cells: cells}
}

// Reset re-shapes to n×n and discards all cells. O(1) amortized.
func (m *Hashed) Reset(n int) error {
	if n < 1 {
		return fmt.Errorf("Hashed.Reset(%d): %w", n, ErrBadDimension)
	}
	m.n = n
	m.cells = make(map[cellKey]int64)

	return nil
}
