// SPDX-License-Identifier: MIT

// Package blockmatrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Cache-friendly flat buffer with the explicit index formula i*n + j.
//   - Safety at the public surface: At/Inc return errors instead of panicking.
//   - Fixed loop orders; no map iteration anywhere.
//
// Complexity quicksheet:
//   - NewDense: O(n²) zero-init; At/Inc: O(1); RowSum/ColSum: O(n);
//     Clone: O(n²); Reset: O(n²).
package blockmatrix

import "fmt"

// denseErrorf wraps a sentinel with a uniform Dense context and coordinates.
func denseErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, i, j, err)
}

// Dense is a concrete row-major aggregate matrix.
//   - n holds the block count (matrix is n×n).
//   - data is a flat buffer of length n*n in row-major order (offset i*n + j).
type Dense struct {
	n    int
	data []int64
}

// Compile-time assertion for interface conformance.
var _ Matrix = (*Dense)(nil)

// NewDense creates an n×n zero matrix using row-major storage.
//
// Errors: ErrBadDimension when n < 1.
// Time: O(n²) zero-init. Space: O(n²).
func NewDense(n int) (*Dense, error) {
	if n < 1 {
		return nil, fmt.Errorf("NewDense(%d): %w", n, ErrBadDimension)
	}

	return &Dense{n: n, data: make([]int64, n*n)}, nil
}

// Dim returns the block count n.
func (m *Dense) Dim() int { return m.n }

// At returns cell (i, j). O(1).
func (m *Dense) At(i, j int) (int64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, denseErrorf("At", i, j, ErrOutOfRange)
	}

	return m.data[i*m.n+j], nil
}

// Inc adds w to cell (i, j). O(1).
func (m *Dense) Inc(i, j int, w int64) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return denseErrorf("Inc", i, j, ErrOutOfRange)
	}
	if w < 0 {
		return denseErrorf("Inc", i, j, ErrNegativeWeight)
	}
	m.data[i*m.n+j] += w

	return nil
}

// RowSum returns the sum over row i. O(n), single contiguous scan.
func (m *Dense) RowSum(i int) (int64, error) {
	if i < 0 || i >= m.n {
		return 0, denseErrorf("RowSum", i, 0, ErrOutOfRange)
	}
	var sum int64
	base := i * m.n
	for j := 0; j < m.n; j++ {
		sum += m.data[base+j]
	}

	return sum, nil
}

// ColSum returns the sum over column j. O(n), strided scan.
func (m *Dense) ColSum(j int) (int64, error) {
	if j < 0 || j >= m.n {
		return 0, denseErrorf("ColSum", 0, j, ErrOutOfRange)
	}
	var sum int64
	for i := 0; i < m.n; i++ {
		sum += m.data[i*m.n+j]
	}

	return sum, nil
}

// Clone returns an independent deep copy. O(n²).
func (m *Dense) Clone() Matrix {
	buf := make([]int64, len(m.data))
	copy(buf, m.data)

	return &Dense{n: m.n, data: buf}
}

// Reset re-shapes to n×n and zeroes every cell. O(n²).
func (m *Dense) Reset(n int) error {
	if n < 1 {
		return fmt.Errorf("Dense.Reset(%d): %w", n, ErrBadDimension)
	}
	m.n = n
	m.data = make([]int64, n*n)

	return nil
}
